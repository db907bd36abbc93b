package analyzer

import (
	"github.com/dekarrin/tkrlang/internal/cursor"
)

// file combinators.go contains analyzers that are composed of other analyzers.

// Map returns an Analyzer that transforms the value produced by a with f.
// Failures pass through unchanged.
func Map[I, A, B any](a Analyzer[I, A], f func(A) B) Analyzer[I, B] {
	return Func[I, B](func(c *cursor.Cursor[I]) (B, error) {
		v, err := a.Analyze(c)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(v), nil
	})
}

// And returns an Analyzer that runs a and then b, producing both values. The
// first failure aborts the sequence and the cursor is left where that failure
// occurred.
func And[I, A, B any](a Analyzer[I, A], b Analyzer[I, B]) Analyzer[I, Pair[A, B]] {
	return Func[I, Pair[A, B]](func(c *cursor.Cursor[I]) (Pair[A, B], error) {
		first, err := a.Analyze(c)
		if err != nil {
			return Pair[A, B]{}, err
		}
		second, err := b.Analyze(c)
		if err != nil {
			return Pair[A, B]{}, err
		}
		return Pair[A, B]{First: first, Second: second}, nil
	})
}

// With is And that keeps only the value produced by b.
func With[I, A, B any](a Analyzer[I, A], b Analyzer[I, B]) Analyzer[I, B] {
	return Func[I, B](func(c *cursor.Cursor[I]) (B, error) {
		if _, err := a.Analyze(c); err != nil {
			var zero B
			return zero, err
		}
		return b.Analyze(c)
	})
}

// Skip is And that keeps only the value produced by a.
func Skip[I, A, B any](a Analyzer[I, A], b Analyzer[I, B]) Analyzer[I, A] {
	return Func[I, A](func(c *cursor.Cursor[I]) (A, error) {
		v, err := a.Analyze(c)
		if err != nil {
			return v, err
		}
		if _, err := b.Analyze(c); err != nil {
			var zero A
			return zero, err
		}
		return v, nil
	})
}

// As returns an Analyzer that runs a and then produces x in place of its
// value.
func As[I, A, B any](a Analyzer[I, A], x B) Analyzer[I, B] {
	return With(a, Val[I](x))
}

// Or returns an Analyzer that runs a and, if a fails, runs b from wherever the
// cursor was left. The cursor is not rewound between the two; if a can consume
// input before failing, wrap it in Attempt. When both fail, b's error is the
// one returned.
func Or[I, O any](a, b Analyzer[I, O]) Analyzer[I, O] {
	return Func[I, O](func(c *cursor.Cursor[I]) (O, error) {
		v, err := a.Analyze(c)
		if err == nil {
			return v, nil
		}
		return b.Analyze(c)
	})
}

// Choice expands alts into right-nested calls to Or, so that the first
// alternative is tried first and the last alternative's error is returned if
// all fail. With no alternatives, Choice always fails.
func Choice[I, O any](alts ...Analyzer[I, O]) Analyzer[I, O] {
	if len(alts) == 0 {
		return Fail[I, O]()
	}
	if len(alts) == 1 {
		return alts[0]
	}
	return Or(alts[0], Choice(alts[1:]...))
}

// Attempt returns an Analyzer that runs a and, if a fails, moves the cursor
// back to where it was before a ran. It does not change the error. On success
// the cursor stays advanced.
func Attempt[I, O any](a Analyzer[I, O]) Analyzer[I, O] {
	return Func[I, O](func(c *cursor.Cursor[I]) (O, error) {
		start := c.Position()
		v, err := a.Analyze(c)
		if err != nil {
			// start was a valid position when it was recorded and the data
			// does not change, so this cannot fail.
			_ = c.SetPosition(start)
		}
		return v, err
	})
}

// Optional returns an Analyzer that always succeeds, producing a present
// Option if a succeeded and an empty one if it failed. Like Or, it does not
// rewind the cursor when a fails after consuming input.
func Optional[I, O any](a Analyzer[I, O]) Analyzer[I, Option[O]] {
	return Func[I, Option[O]](func(c *cursor.Cursor[I]) (Option[O], error) {
		v, err := a.Analyze(c)
		if err != nil {
			return None[O](), nil
		}
		return Some(v), nil
	})
}

// Msg returns an Analyzer that replaces the expectation of any error from a
// with the given label. The position and unexpected symbol are kept.
func Msg[I, O any](a Analyzer[I, O], label string) Analyzer[I, O] {
	return Expecting(a, ExpectLabel[I](label))
}

// Expecting is Msg with an arbitrary Expectation.
func Expecting[I, O any](a Analyzer[I, O], exp Expectation[I]) Analyzer[I, O] {
	return Func[I, O](func(c *cursor.Cursor[I]) (O, error) {
		v, err := a.Analyze(c)
		if err != nil {
			aErr, ok := AsError[I](err)
			if !ok {
				return v, err
			}
			relabeled := *aErr
			relabeled.Expecting = exp
			return v, &relabeled
		}
		return v, nil
	})
}

// Then returns an Analyzer that runs a, passes its value to f, and runs the
// Analyzer that f returns from the position a stopped at. This allows a rule to
// decide how to continue, or whether to fail, based on what was matched.
func Then[I, A, B any](a Analyzer[I, A], f func(A) Analyzer[I, B]) Analyzer[I, B] {
	return Func[I, B](func(c *cursor.Cursor[I]) (B, error) {
		v, err := a.Analyze(c)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(v).Analyze(c)
	})
}
