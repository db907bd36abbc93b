// Package input contains readers that get lines of session input from the CLI
// or other sources of input.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// DirectReader implements command.Reader and reads lines from any generic
// input stream directly. It can be used generically with any io.Reader but
// does not sanitize the input of control and escape sequences.
//
// DirectReader should not be used directly; instead, create one with
// [NewDirectReader].
type DirectReader struct {
	r             *bufio.Reader
	blanksAllowed bool
}

// InteractiveReader implements command.Reader and reads lines from stdin
// using a go implementation of the GNU Readline library. This keeps input
// clear of all typing and editing escape sequences and enables the use of
// line history. This should in general only be used when directly connected
// to a TTY for input.
//
// InteractiveReader should not be used directly; instead, create one with
// [NewInteractiveReader].
type InteractiveReader struct {
	rl            *readline.Instance
	blanksAllowed bool
	prompt        string
}

// NewDirectReader creates a new DirectReader that reads from a buffered reader
// on r.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{
		r: bufio.NewReader(r),
	}
}

// NewInteractiveReader creates a new InteractiveReader that shows the given
// prompt. If historyFile is not empty, lines are saved to it and history from
// earlier sessions is loaded from it. The returned InteractiveReader must have
// Close() called on it before disposal to properly teardown readline
// resources.
func NewInteractiveReader(prompt, historyFile string) (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveReader{
		rl:     rl,
		prompt: prompt,
	}, nil
}

// Close cleans up resources associated with the DirectReader. It does not
// close the underlying io.Reader.
func (dr *DirectReader) Close() error {
	return nil
}

// Close cleans up readline resources and other resources associated with the
// InteractiveReader.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}

// ReadCommand reads the next line from the input. Unless blank lines are
// allowed, this function blocks until a line containing non-space characters
// is read. The returned line has surrounding whitespace removed.
//
// If at end of input, the returned string will be empty and error will be
// io.EOF. If any other error occurs, the returned string will be empty and
// error will be that error.
func (dr *DirectReader) ReadCommand() (string, error) {
	return readNonBlank(dr.blanksAllowed, func() (string, error) {
		return dr.r.ReadString('\n')
	})
}

// ReadCommand reads the next line from stdin. It behaves the same as
// DirectReader.ReadCommand, except that an interrupt (Ctrl-C) discards the
// line being typed and reading continues.
func (ir *InteractiveReader) ReadCommand() (string, error) {
	return readNonBlank(ir.blanksAllowed, func() (string, error) {
		line, err := ir.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return "", nil
		}
		return line, err
	})
}

func readNonBlank(blanksAllowed bool, readLine func() (string, error)) (string, error) {
	for {
		line, err := readLine()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line != "" || blanksAllowed {
			return line, nil
		}
	}
}

// AllowBlank sets whether blank lines are returned. By default they are
// skipped.
func (dr *DirectReader) AllowBlank(allow bool) {
	dr.blanksAllowed = allow
}

// AllowBlank sets whether blank lines are returned. By default they are
// skipped.
func (ir *InteractiveReader) AllowBlank(allow bool) {
	ir.blanksAllowed = allow
}

// SetPrompt updates the prompt to the given text.
func (ir *InteractiveReader) SetPrompt(p string) {
	ir.prompt = p
	ir.rl.SetPrompt(p)
}

// Prompt gets the current prompt.
func (ir *InteractiveReader) Prompt() string {
	return ir.prompt
}
