package analyzer

import (
	"github.com/dekarrin/tkrlang/internal/cursor"
)

// Handle is a late-bound Analyzer. A grammar rule that needs to call itself
// creates a Handle, builds its body using the Handle wherever the recursive
// call belongs, and then binds the body to the Handle.
//
//	depth := NewHandle[rune, int]()
//	var inner Analyzer[rune, int] = depth
//	depth.Bind(Map(
//		With(Token('('), Skip(Optional(inner), Token(')'))),
//		func(o Option[int]) int { return o.Value + 1 },
//	))
//
// Handle should not be used directly; create one with [NewHandle].
type Handle[I, O any] struct {
	a Analyzer[I, O]
}

// NewHandle creates an unbound Handle.
func NewHandle[I, O any]() *Handle[I, O] {
	return &Handle[I, O]{}
}

// Bind sets the analyzer that h runs. It replaces any previously bound one.
func (h *Handle[I, O]) Bind(a Analyzer[I, O]) {
	h.a = a
}

// Bound returns whether Bind has been called on h.
func (h *Handle[I, O]) Bound() bool {
	return h.a != nil
}

// Analyze runs the bound analyzer. It panics if h has not been bound, since
// that is a mistake in how the grammar was constructed.
func (h *Handle[I, O]) Analyze(c *cursor.Cursor[I]) (O, error) {
	if h.a == nil {
		panic("analyzer handle used before Bind was called")
	}
	return h.a.Analyze(c)
}
