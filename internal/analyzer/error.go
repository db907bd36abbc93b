package analyzer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dekarrin/tkrlang/internal/cursor"
)

// ExpectationKind is the category of thing an analyzer was expecting when it
// failed.
type ExpectationKind int

const (
	// Unknown means the analyzer has no better description than "not this".
	Unknown ExpectationKind = iota

	// Anything means any symbol at all would have been accepted.
	Anything

	// EndOfInput means the analyzer required the input to be exhausted.
	EndOfInput

	// SpecificToken means one particular symbol was required.
	SpecificToken

	// Described means the expectation is given as free text.
	Described
)

// Expectation describes what an analyzer needed to see in order to succeed.
type Expectation[I any] struct {
	Kind ExpectationKind

	// Token is the required symbol; only valid when Kind is SpecificToken.
	Token I

	// Label is the description; only valid when Kind is Described.
	Label string
}

// ExpectUnknown returns an Expectation of kind Unknown.
func ExpectUnknown[I any]() Expectation[I] {
	return Expectation[I]{Kind: Unknown}
}

// ExpectAny returns an Expectation of kind Anything.
func ExpectAny[I any]() Expectation[I] {
	return Expectation[I]{Kind: Anything}
}

// ExpectEOF returns an Expectation of kind EndOfInput.
func ExpectEOF[I any]() Expectation[I] {
	return Expectation[I]{Kind: EndOfInput}
}

// ExpectToken returns an Expectation for the specific symbol t.
func ExpectToken[I any](t I) Expectation[I] {
	return Expectation[I]{Kind: SpecificToken, Token: t}
}

// ExpectLabel returns an Expectation described by label.
func ExpectLabel[I any](label string) Expectation[I] {
	return Expectation[I]{Kind: Described, Label: label}
}

// String returns a human-readable description of the expectation.
func (e Expectation[I]) String() string {
	switch e.Kind {
	case Anything:
		return "any symbol"
	case EndOfInput:
		return "end of input"
	case SpecificToken:
		return describe(e.Token)
	case Described:
		return e.Label
	default:
		return "something else"
	}
}

// Error is the failure produced by an Analyzer. Pos and Unexpected are always
// those of the innermost primitive that failed; combinators may replace
// Expecting but never the location.
type Error[I any] struct {
	// Pos is the absolute offset in the input at which matching stopped.
	Pos int

	// Unexpected is the symbol found at Pos. It is the zero value if EOF is
	// true.
	Unexpected I

	// EOF is whether the analyzer ran into the end of input at Pos.
	EOF bool

	// Expecting is what would have been needed at Pos.
	Expecting Expectation[I]
}

// Error returns the message for the error.
func (e *Error[I]) Error() string {
	return fmt.Sprintf("at position %d: unexpected %s; expecting %s", e.Pos, e.UnexpectedString(), e.Expecting)
}

// UnexpectedString returns a human-readable description of what was found at
// the error position.
func (e *Error[I]) UnexpectedString() string {
	if e.EOF {
		return "end of input"
	}
	return describe(e.Unexpected)
}

// AsError returns the *Error[I] inside err, if there is one.
func AsError[I any](err error) (*Error[I], bool) {
	var aErr *Error[I]
	if errors.As(err, &aErr) {
		return aErr, true
	}
	return nil, false
}

// newError creates an error at the current position of c, taking the
// unexpected symbol from whatever c currently points at.
func newError[I any](c *cursor.Cursor[I], exp Expectation[I]) *Error[I] {
	sym, ok := c.Peek()
	return &Error[I]{
		Pos:        c.Position(),
		Unexpected: sym,
		EOF:        !ok,
		Expecting:  exp,
	}
}

func describe(v any) string {
	switch x := v.(type) {
	case rune:
		return strconv.QuoteRune(x)
	case string:
		return strconv.Quote(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}
