package command

// Reader gives lines of session input one at a time. Each line is either
// source to lex or a Prefix-started command; callers pass it to Parse.
type Reader interface {
	// ReadCommand blocks until a non-blank line is available and returns it.
	// At end of input it returns "" and io.EOF. A final line that ends
	// without a newline is returned normally, with io.EOF held back for the
	// call after it.
	ReadCommand() (string, error)

	// Close releases whatever the Reader holds open, such as a terminal. It
	// must be called once the Reader is done with.
	Close() error
}
