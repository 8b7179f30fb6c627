// Package neighbor classifies the cells of a grid as related or unrelated to one selected
// cell, purely by inspecting their Z codes.
package neighbor

import (
	"fmt"

	"github.com/pdok/zgrid/grid"
	"github.com/pdok/zgrid/mathhelp"
	"github.com/pdok/zgrid/morton"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Matches is the set of matched cells with their codes.
// Iteration follows the collection order at classification time.
type Matches struct {
	m *orderedmap.OrderedMap[grid.Coordinate, morton.Z]
}

func newMatches() *Matches {
	return &Matches{m: orderedmap.New[grid.Coordinate, morton.Z]()}
}

func (ms *Matches) add(c grid.Coordinate, z morton.Z) {
	ms.m.Set(c, z)
}

func (ms *Matches) Contains(c grid.Coordinate) bool {
	if ms == nil {
		return false
	}
	_, ok := ms.m.Get(c)
	return ok
}

func (ms *Matches) Len() int {
	if ms == nil {
		return 0
	}
	return ms.m.Len()
}

func (ms *Matches) Coordinates() []grid.Coordinate {
	if ms == nil {
		return nil
	}
	coordinates := make([]grid.Coordinate, 0, ms.m.Len())
	for p := ms.m.Oldest(); p != nil; p = p.Next() {
		coordinates = append(coordinates, p.Key)
	}
	return coordinates
}

// Codes returns the codes of the matches by coordinate
func (ms *Matches) Codes() map[grid.Coordinate]morton.Z {
	if ms == nil {
		return nil
	}
	codes := make(map[grid.Coordinate]morton.Z, ms.m.Len())
	for p := ms.m.Oldest(); p != nil; p = p.Next() {
		codes[p.Key] = p.Value
	}
	return codes
}

// Classifier evaluates strategies against collections of cells of one grid size.
// It holds no state besides the bit width, so one value can be shared freely.
type Classifier struct {
	bits morton.Bits
}

func New(bits morton.Bits) Classifier {
	return Classifier{bits: bits}
}

func (cl Classifier) Bits() morton.Bits {
	return cl.bits
}

// Validate checks a strategy against the bit width. Meant for setup, an error here is a
// mismatch between grid size and levels, not a bad selection.
func (cl Classifier) Validate(s Strategy) error {
	if err := cl.bits.Validate(); err != nil {
		return err
	}
	switch s.Kind {
	case SharesBitsAt, SharesAncestryThrough:
		_, err := cl.bits.Shift(s.Level)
		return err
	case SharesNoBits, WithinSequence:
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnknownStrategy, s.Kind)
	}
}

// Classify returns the cells related to cells[selected] under s.
//
// An out of range selected yields ErrNoSelection, which callers driving this every tick should
// treat as "nothing selected". Any other error is a configuration error.
// SharesNoBits is not reflexive: the selected cell is only part of the result if its code is 0.
func (cl Classifier) Classify(cells []grid.Coordinate, selected int, s Strategy) (*Matches, error) {
	if err := cl.Validate(s); err != nil {
		return nil, err
	}
	if selected < 0 || selected >= len(cells) {
		return nil, fmt.Errorf("%w: index %d of %d cells", ErrNoSelection, selected, len(cells))
	}
	codes := make([]morton.Z, len(cells))
	for i, c := range cells {
		z, err := cl.bits.ToZ(c.X(), c.Y())
		if err != nil {
			return nil, err
		}
		codes[i] = z
	}

	match := cl.relation(s, codes[selected], selected)
	matches := newMatches()
	for i, c := range cells {
		if match(i, codes[i]) {
			matches.add(c, codes[i])
		}
	}
	return matches, nil
}

// relation returns the match test relative to the selected code. s must be valid.
func (cl Classifier) relation(s Strategy, selectedZ morton.Z, selected int) func(i int, z morton.Z) bool {
	switch s.Kind {
	case SharesBitsAt:
		shift := cl.bits.MustShift(s.Level)
		group := morton.Group(selectedZ, shift)
		return func(_ int, z morton.Z) bool {
			return morton.Group(z, shift) == group
		}
	case SharesAncestryThrough:
		shift := cl.bits.MustShift(s.Level)
		prefix := morton.Prefix(selectedZ, shift)
		return func(_ int, z morton.Z) bool {
			return morton.Prefix(z, shift) == prefix
		}
	case SharesNoBits:
		return func(_ int, z morton.Z) bool {
			return z&selectedZ == 0
		}
	case WithinSequence:
		return func(i int, _ morton.Z) bool {
			return uint(mathhelp.AbsDiff(i, selected)) <= s.Radius
		}
	}
	panic(fmt.Errorf("%w: %v", ErrUnknownStrategy, s.Kind))
}
