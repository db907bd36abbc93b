// Package cursor provides a position-addressable view over an in-memory
// sequence of input symbols. It is the only mutable state an analysis touches;
// analyzers advance it as they match and rewind it only to positions they
// recorded earlier.
package cursor

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned (wrapped) when a position outside of [0, Len()]
// is requested.
var ErrOutOfBounds = errors.New("position out of bounds")

// Cursor is a read position into a fixed sequence of symbols. The position is
// always in the range [0, Len()]; a position equal to Len() means the cursor is
// at end of input.
//
// Cursor should not be used directly; create one with [New].
type Cursor[T any] struct {
	data []T
	pos  int
}

// New creates a new Cursor at position 0 over the given data. The slice is not
// copied and must not be modified while the Cursor is in use.
func New[T any](data []T) *Cursor[T] {
	return &Cursor[T]{data: data}
}

// Peek returns the symbol at the current position. If the cursor is at end of
// input, the zero value and false are returned.
func (c *Cursor[T]) Peek() (T, bool) {
	return c.PeekAt(0)
}

// PeekAt returns the symbol offset symbols past the current position without
// consuming anything. If that is beyond the end of input (or before the start
// of it), the zero value and false are returned.
func (c *Cursor[T]) PeekAt(offset int) (T, bool) {
	idx := c.pos + offset
	if idx < 0 || idx >= len(c.data) {
		var zero T
		return zero, false
	}
	return c.data[idx], true
}

// Next returns the symbol at the current position and advances past it. If the
// cursor is at end of input, the zero value and false are returned and the
// position does not change.
func (c *Cursor[T]) Next() (T, bool) {
	sym, ok := c.Peek()
	if ok {
		c.pos++
	}
	return sym, ok
}

// Position returns the current absolute offset into the data.
func (c *Cursor[T]) Position() int {
	return c.pos
}

// SetPosition moves the cursor to absolute offset p. It returns an error that
// wraps ErrOutOfBounds if p is negative or greater than Len(); the position is
// unchanged in that case.
func (c *Cursor[T]) SetPosition(p int) error {
	if p < 0 || p > len(c.data) {
		return fmt.Errorf("set position %d (length %d): %w", p, len(c.data), ErrOutOfBounds)
	}
	c.pos = p
	return nil
}

// Advance moves the cursor forward by n symbols. It fails in the same way as
// SetPosition if that would move the cursor out of bounds.
func (c *Cursor[T]) Advance(n int) error {
	return c.SetPosition(c.pos + n)
}

// AtEnd returns whether there are no more symbols to read.
func (c *Cursor[T]) AtEnd() bool {
	return c.pos >= len(c.data)
}

// Len returns the total number of symbols in the data, consumed or not.
func (c *Cursor[T]) Len() int {
	return len(c.data)
}

// Slice returns the symbols in [from, to). Bounds are clamped to the data; if
// from is not before to, an empty slice is returned.
func (c *Cursor[T]) Slice(from, to int) []T {
	if from < 0 {
		from = 0
	}
	if to > len(c.data) {
		to = len(c.data)
	}
	if from >= to {
		return []T{}
	}
	return c.data[from:to]
}
