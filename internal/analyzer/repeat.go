package analyzer

import (
	"fmt"

	"github.com/dekarrin/tkrlang/internal/cursor"
)

type repeat[I, O any] struct {
	a   Analyzer[I, O]
	min int

	// max < 0 means unbounded.
	max int
}

// Many returns an Analyzer that runs a until it fails, producing every value
// in order. Zero matches is a success.
func Many[I, O any](a Analyzer[I, O]) Analyzer[I, []O] {
	return ManyN(a, 0, -1)
}

// Many1 is Many that requires at least one match.
func Many1[I, O any](a Analyzer[I, O]) Analyzer[I, []O] {
	return ManyN(a, 1, -1)
}

// Exactly returns an Analyzer that runs a exactly n times.
func Exactly[I, O any](a Analyzer[I, O], n int) Analyzer[I, []O] {
	return ManyN(a, n, n)
}

// ManyN returns an Analyzer that runs a repeatedly, stopping when a fails or
// after max matches. A negative max means there is no upper limit.
//
// The repetition fails with a's error if fewer than min matches were made, and
// also if the failing iteration consumed input before failing, so that a
// partially matched final element is never silently dropped.
//
// An iteration that succeeds without moving the cursor ends the repetition
// once min has been met, as running it again could never make progress.
func ManyN[I, O any](a Analyzer[I, O], min, max int) Analyzer[I, []O] {
	if min < 0 {
		panic(fmt.Sprintf("repetition minimum must be non-negative, got %d", min))
	}
	if max >= 0 && max < min {
		panic(fmt.Sprintf("repetition maximum %d is less than minimum %d", max, min))
	}
	return repeat[I, O]{a: a, min: min, max: max}
}

func (r repeat[I, O]) Analyze(c *cursor.Cursor[I]) ([]O, error) {
	results := make([]O, 0)

	for r.max < 0 || len(results) < r.max {
		start := c.Position()
		v, err := r.a.Analyze(c)
		if err != nil {
			if len(results) < r.min {
				return nil, err
			}
			if c.Position() != start {
				return nil, err
			}
			break
		}
		results = append(results, v)

		if c.Position() == start && len(results) >= r.min {
			break
		}
	}

	return results, nil
}
