package neighbor

import (
	"fmt"

	"github.com/pdok/zgrid/morton"
)

// Cycle is a fixed, non-empty sequence of strategies and a position in it.
// It is a value: Next returns the following position and wraps after the last step.
type Cycle struct {
	steps []Strategy
	pos   int
}

// DefaultCycle shares bits at every level of the grid, coarsest first,
// followed by the ancestry through the whole grid.
// A 16x16 grid gets the four steps BitsAt(WholeGrid), BitsAt(TopLevelParent),
// BitsAt(SecondLevelParent) and AncestryThrough(WholeGrid). Larger grids add deeper levels,
// an 8x8 grid has three steps and a 4x4 grid two. Grids below 4x4 have no levels and cycle
// SharesNoBits only.
func DefaultCycle(bits morton.Bits) (Cycle, error) {
	levels := bits.Levels()
	if len(levels) == 0 {
		return NewCycle(bits, NoBits())
	}
	steps := make([]Strategy, 0, len(levels)+1)
	for _, l := range levels {
		steps = append(steps, BitsAt(l))
	}
	steps = append(steps, AncestryThrough(morton.WholeGrid))
	return NewCycle(bits, steps...)
}

// NewCycle validates every step up front
func NewCycle(bits morton.Bits, steps ...Strategy) (Cycle, error) {
	if len(steps) == 0 {
		return Cycle{}, fmt.Errorf("%w: empty cycle", ErrUnknownStrategy)
	}
	cl := New(bits)
	for i, step := range steps {
		if err := cl.Validate(step); err != nil {
			return Cycle{}, fmt.Errorf("step %d (%v) of cycle: %w", i, step, err)
		}
	}
	return Cycle{steps: append([]Strategy(nil), steps...)}, nil
}

func (c Cycle) Current() Strategy {
	if len(c.steps) == 0 {
		return Strategy{}
	}
	return c.steps[c.pos]
}

func (c Cycle) Next() Cycle {
	if len(c.steps) == 0 {
		return c
	}
	c.pos = (c.pos + 1) % len(c.steps)
	return c
}

func (c Cycle) Position() int {
	return c.pos
}

func (c Cycle) Len() int {
	return len(c.steps)
}

func (c Cycle) Steps() []Strategy {
	return append([]Strategy(nil), c.steps...)
}
