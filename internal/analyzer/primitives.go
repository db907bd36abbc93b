package analyzer

import (
	"github.com/dekarrin/tkrlang/internal/cursor"
)

// file primitives.go contains the leaf analyzers that read symbols directly
// from the cursor.

type anyOne[I any] struct{}

// AnyOne returns an Analyzer that consumes and produces any single symbol. It
// fails only at end of input.
func AnyOne[I any]() Analyzer[I, I] {
	return anyOne[I]{}
}

func (anyOne[I]) Analyze(c *cursor.Cursor[I]) (I, error) {
	sym, ok := c.Next()
	if !ok {
		return sym, newError(c, ExpectAny[I]())
	}
	return sym, nil
}

type token[I comparable] struct {
	want I
}

// Token returns an Analyzer that consumes and produces exactly the symbol x.
func Token[I comparable](x I) Analyzer[I, I] {
	return token[I]{want: x}
}

func (t token[I]) Analyze(c *cursor.Cursor[I]) (I, error) {
	sym, ok := c.Peek()
	if !ok || sym != t.want {
		var zero I
		return zero, newError(c, ExpectToken(t.want))
	}
	c.Next()
	return sym, nil
}

type tokens[I comparable] struct {
	want []I
}

// Tokens returns an Analyzer that consumes the exact sequence xs. Symbols are
// consumed as they match, so on failure the cursor is left at the first
// mismatching symbol, not where the sequence started; wrap in Attempt when that
// matters.
func Tokens[I comparable](xs []I) Analyzer[I, []I] {
	cp := make([]I, len(xs))
	copy(cp, xs)
	return tokens[I]{want: cp}
}

func (t tokens[I]) Analyze(c *cursor.Cursor[I]) ([]I, error) {
	matched := make([]I, 0, len(t.want))
	for _, want := range t.want {
		sym, ok := c.Peek()
		if !ok || sym != want {
			return nil, newError(c, ExpectToken(want))
		}
		c.Next()
		matched = append(matched, sym)
	}
	return matched, nil
}

// String returns an Analyzer that consumes the runes of s in order and
// produces s. It has the same partial-consumption behavior as Tokens.
func String(s string) Analyzer[rune, string] {
	return Map(Tokens([]rune(s)), func(r []rune) string {
		return string(r)
	})
}

type satisfy[I any] struct {
	pred func(I) bool
}

// Satisfy returns an Analyzer that consumes and produces one symbol for which
// pred returns true.
func Satisfy[I any](pred func(I) bool) Analyzer[I, I] {
	return satisfy[I]{pred: pred}
}

func (s satisfy[I]) Analyze(c *cursor.Cursor[I]) (I, error) {
	sym, ok := c.Peek()
	if !ok || !s.pred(sym) {
		var zero I
		return zero, newError(c, ExpectUnknown[I]())
	}
	c.Next()
	return sym, nil
}

type eof[I any] struct{}

// EOF returns an Analyzer that succeeds without consuming anything if and only
// if the cursor is at end of input.
func EOF[I any]() Analyzer[I, struct{}] {
	return eof[I]{}
}

func (eof[I]) Analyze(c *cursor.Cursor[I]) (struct{}, error) {
	if !c.AtEnd() {
		return struct{}{}, newError(c, ExpectEOF[I]())
	}
	return struct{}{}, nil
}

type val[I, O any] struct {
	v O
}

// Val returns an Analyzer that always succeeds with x and consumes nothing.
func Val[I, O any](x O) Analyzer[I, O] {
	return val[I, O]{v: x}
}

func (v val[I, O]) Analyze(*cursor.Cursor[I]) (O, error) {
	return v.v, nil
}

type fail[I, O any] struct {
	exp Expectation[I]
}

// Fail returns an Analyzer that always fails at the current position without
// consuming anything.
func Fail[I, O any]() Analyzer[I, O] {
	return fail[I, O]{exp: ExpectUnknown[I]()}
}

// FailWith is Fail with the given expectation in the produced error.
func FailWith[I, O any](exp Expectation[I]) Analyzer[I, O] {
	return fail[I, O]{exp: exp}
}

func (f fail[I, O]) Analyze(c *cursor.Cursor[I]) (O, error) {
	var zero O
	return zero, newError(c, f.exp)
}
