// Package grid enumerates the cells of a square power-of-two grid and orders them
// along the Z-order curve.
package grid

import (
	"errors"
	"fmt"

	"github.com/pdok/zgrid/mathhelp"
	"github.com/pdok/zgrid/morton"
)

var ErrDimension = errors.New("grid: invalid dimension")

// Coordinate identifies a cell
type Coordinate [2]uint

// X is the column of the cell
func (c Coordinate) X() uint { return c[0] }

// Y is the row of the cell
func (c Coordinate) Y() uint { return c[1] }

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c[0], c[1])
}

// Z returns the code of the cell, assuming it fits in 32 bits per axis
func (c Coordinate) Z() morton.Z {
	return morton.MustToZ(c[0], c[1])
}

// Enumerate returns all coordinates of a dim x dim grid in row-major order:
// all y for x=0, then all y for x=1, etc.
func Enumerate(dim uint) ([]Coordinate, error) {
	if _, err := checkDim(dim); err != nil {
		return nil, err
	}
	cells := make([]Coordinate, 0, dim*dim)
	for x := uint(0); x < dim; x++ {
		for y := uint(0); y < dim; y++ {
			cells = append(cells, Coordinate{x, y})
		}
	}
	return cells, nil
}

func checkDim(dim uint) (morton.Bits, error) {
	if !mathhelp.IsPow2(dim) {
		return 0, fmt.Errorf("%w: %d is not a power of two", ErrDimension, dim)
	}
	bits, err := morton.BitsFor(dim)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDimension, err)
	}
	return bits, nil
}

// Grid is a validated square grid
type Grid struct {
	Dim  uint
	Bits morton.Bits
}

// New validates dim, which should be checked once at startup.
func New(dim uint) (Grid, error) {
	bits, err := checkDim(dim)
	if err != nil {
		return Grid{}, err
	}
	return Grid{Dim: dim, Bits: bits}, nil
}

func MustNew(dim uint) Grid {
	g, err := New(dim)
	if err != nil {
		panic(err)
	}
	return g
}

// Cells returns a fresh row-major collection covering the grid exactly once
func (g Grid) Cells() []Coordinate {
	cells, err := Enumerate(g.Dim)
	if err != nil {
		panic(fmt.Errorf("grid was not created with New: %w", err))
	}
	return cells
}

func (g Grid) Len() int {
	return int(g.Dim * g.Dim)
}

func (g Grid) Contains(c Coordinate) bool {
	return c.X() < g.Dim && c.Y() < g.Dim
}

// Z returns the code of a cell of this grid
func (g Grid) Z(c Coordinate) (morton.Z, error) {
	return g.Bits.ToZ(c.X(), c.Y())
}
