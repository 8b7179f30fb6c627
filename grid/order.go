package grid

import (
	"cmp"
	"slices"

	"github.com/pdok/zgrid/morton"
)

// Order sorts the cells in place by their Z code, ascending.
// Sorting an already ordered collection leaves it as is.
func Order(cells []Coordinate) {
	slices.SortStableFunc(cells, func(a, b Coordinate) int {
		return cmp.Compare(a.Z(), b.Z())
	})
}

// IsOrdered reports whether the cells are in Z order
func IsOrdered(cells []Coordinate) bool {
	return slices.IsSortedFunc(cells, func(a, b Coordinate) int {
		return cmp.Compare(a.Z(), b.Z())
	})
}

// Cell is a coordinate with its code cached
type Cell struct {
	Coordinate
	Z morton.Z
}

// Sequence is a collection of cells that keeps the code next to each coordinate,
// so ordering it every tick does not re-encode.
type Sequence struct {
	grid  Grid
	cells []Cell
}

// NewSequence checks every coordinate against the grid once.
func NewSequence(g Grid, coordinates []Coordinate) (*Sequence, error) {
	cells := make([]Cell, len(coordinates))
	for i, c := range coordinates {
		z, err := g.Z(c)
		if err != nil {
			return nil, err
		}
		cells[i] = Cell{Coordinate: c, Z: z}
	}
	return &Sequence{grid: g, cells: cells}, nil
}

func (s *Sequence) Grid() Grid {
	return s.grid
}

// Order sorts the sequence in place by the cached codes
func (s *Sequence) Order() {
	slices.SortStableFunc(s.cells, func(a, b Cell) int {
		return cmp.Compare(a.Z, b.Z)
	})
}

func (s *Sequence) Len() int {
	return len(s.cells)
}

func (s *Sequence) At(i int) (Cell, bool) {
	if i < 0 || i >= len(s.cells) {
		return Cell{}, false
	}
	return s.cells[i], true
}

// IndexOf returns the current position of a coordinate, -1 if absent
func (s *Sequence) IndexOf(c Coordinate) int {
	return slices.IndexFunc(s.cells, func(cell Cell) bool {
		return cell.Coordinate == c
	})
}

// Coordinates returns a copy of the coordinates in their current order
func (s *Sequence) Coordinates() []Coordinate {
	coordinates := make([]Coordinate, len(s.cells))
	for i := range s.cells {
		coordinates[i] = s.cells[i].Coordinate
	}
	return coordinates
}

// Cells returns a copy of the cells in their current order
func (s *Sequence) Cells() []Cell {
	return slices.Clone(s.cells)
}

// Groups returns the per-level 2-bit groups of the cell at i
func (s *Sequence) Groups(i int) []uint {
	cell, ok := s.At(i)
	if !ok {
		return nil
	}
	return s.grid.Bits.Groups(cell.Z)
}
