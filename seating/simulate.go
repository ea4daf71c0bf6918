package seating

import (
	"fmt"
)

// Step applies r to every interior cell of g simultaneously and returns the
// new snapshot. g is read-only; the border of the result is Floor.
// Complexity: O(W×H×cost(r)).
func Step(g *Grid, r Rule) *Grid {
	next := &Grid{Width: g.Width, Height: g.Height, cells: blank(g.Width, g.Height)}
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			next.cells[y][x] = r.Next(g, y, x)
		}
	}

	return next
}

// Stabilize steps g under r until a step leaves the grid unchanged and
// reports the occupied count at that fixed point.
// Returns ErrNoConvergence if MaxIterations steps pass without one, the
// context error on cancellation, or the first OnStep error.
func Stabilize(g *Grid, r Rule, opts ...Option) (*Result, error) {
	// 1) Apply options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger.With().Str("rule", ruleName(r)).Logger()

	cur := g
	for i := 0; i < o.MaxIterations; i++ {
		// 2) Cancellation check once per step
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		// 3) Produce the next snapshot from the untouched current one
		next := Step(cur, r)
		if o.OnStep != nil {
			if err := o.OnStep(i+1, next); err != nil {
				return nil, err
			}
		}

		// 4) Fixed point reached
		if next.Equal(cur) {
			occ := next.Occupied()
			log.Debug().Int("steps", i).Int("occupied", occ).Msg("seating stabilized")

			return &Result{Occupied: occ, Steps: i, Final: next}, nil
		}
		log.Trace().Int("step", i+1).Int("occupied", next.Occupied()).Msg("seating step")
		cur = next
	}

	return nil, fmt.Errorf("%w after %d iterations", ErrNoConvergence, o.MaxIterations)
}

func ruleName(r Rule) string {
	if s, ok := r.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%T", r)
}
