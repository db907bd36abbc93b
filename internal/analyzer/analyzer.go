// Package analyzer is a backtracking parser-combinator toolkit. An Analyzer
// attempts to consume a prefix of an input sequence held in a cursor and either
// produces a value, leaving the cursor advanced past what it consumed, or fails
// with an *Error, leaving the cursor wherever the failing primitive stopped.
//
// Analyzers are built from a small set of primitives (AnyOne, Token, Tokens,
// Satisfy, EOF, Val, Fail) composed with combinators (Map, And, With, Skip, Or,
// Choice, Attempt, Optional, Many, Msg, Then). Ordered choice and Optional do
// not rewind the cursor when an alternative fails; Attempt is the only
// combinator that ever moves the cursor backwards, and callers opt into it
// exactly where an alternative can consume input before failing.
//
// Rules that must refer to themselves are built with a Handle, which is bound
// to its analyzer after construction.
package analyzer

import (
	"github.com/dekarrin/tkrlang/internal/cursor"
)

// Analyzer recognizes and transforms a prefix of a sequence of I, producing an
// O. On failure the returned error is an *Error[I].
type Analyzer[I, O any] interface {
	// Analyze runs the analyzer at the current position of c.
	Analyze(c *cursor.Cursor[I]) (O, error)
}

// Func is an adapter that allows the use of an ordinary function as an
// Analyzer. Functions used this way must follow the same contract as any other
// Analyzer, and should return an *Error[I] on failure.
type Func[I, O any] func(c *cursor.Cursor[I]) (O, error)

// Analyze calls f(c).
func (f Func[I, O]) Analyze(c *cursor.Cursor[I]) (O, error) {
	return f(c)
}

// Pair is the result of And.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Option is the result of Optional. Present is false when the wrapped analyzer
// failed.
type Option[O any] struct {
	Value   O
	Present bool
}

// Get returns the value and whether it is present.
func (o Option[O]) Get() (O, bool) {
	return o.Value, o.Present
}

// Some returns an Option holding v.
func Some[O any](v O) Option[O] {
	return Option[O]{Value: v, Present: true}
}

// None returns an empty Option.
func None[O any]() Option[O] {
	return Option[O]{}
}

// Run creates a cursor over data and runs a on it from the start. Nothing
// checks that all of data was consumed; compose with EOF for that.
func Run[I, O any](a Analyzer[I, O], data []I) (O, error) {
	return a.Analyze(cursor.New(data))
}
