// Package quadrant derives the implicit quadtree of a grid from Z codes.
// No tree is stored: a quadrant at a level is identified by the prefix of the codes of
// the cells inside it.
//
// Quadrants (x grows to the right, y grows up):
//
//	|-------|
//	| 2 | 3 |
//	|-------|
//	| 0 | 1 |
//	|-------|
package quadrant

import (
	"github.com/pdok/zgrid/grid"
	"github.com/pdok/zgrid/intgeom"
	"github.com/pdok/zgrid/mathhelp"
	"github.com/pdok/zgrid/morton"
)

const (
	// left        = 0b00
	right = 0b01
	// bottom      = 0b00
	top = 0b10
	// bottomleft  = bottom | left  // 0b00
	// bottomright = bottom | right // 0b01
	// topleft     = top | left     // 0b10
	// topright    = top | right    // 0b11
)

type Q = uint // quadrant index (0, 1, 2 or 3), the 2-bit group of a level

type Quadrant struct {
	z      morton.Z // prefix of the codes of all cells inside
	level  morton.Level
	extent intgeom.Extent // in cells, maxX and maxY are exclusive
}

func (q Quadrant) Z() morton.Z { return q.z }

func (q Quadrant) Level() morton.Level { return q.level }

func (q Quadrant) Extent() intgeom.Extent { return q.extent }

// Index is the position of the quadrant inside its parent
func (q Quadrant) Index() Q {
	return q.z & 0b11
}

// Of returns the quadrant at level l that contains the cell
func Of(bits morton.Bits, c grid.Coordinate, l morton.Level) (Quadrant, error) {
	z, err := bits.ToZ(c.X(), c.Y())
	if err != nil {
		return Quadrant{}, err
	}
	shift, err := bits.Shift(l)
	if err != nil {
		return Quadrant{}, err
	}
	return fromPrefix(morton.Prefix(z, shift), l, shift), nil
}

// All returns the quadrants at level l in Z order, by splitting the whole grid level by level
func All(bits morton.Bits, l morton.Level) ([]Quadrant, error) {
	shift, err := bits.Shift(l)
	if err != nil {
		return nil, err
	}
	top := Children(0)
	prefixes := top[:]
	for depth := morton.WholeGrid; depth < l; depth++ {
		next := make([]morton.Z, 0, 4*len(prefixes))
		for _, prefix := range prefixes {
			children := Children(prefix)
			next = append(next, children[:]...)
		}
		prefixes = next
	}
	quadrants := make([]Quadrant, len(prefixes))
	for i, prefix := range prefixes {
		quadrants[i] = fromPrefix(prefix, l, shift)
	}
	return quadrants, nil
}

// fromPrefix builds the quadrant whose cells' codes start with prefix when shifted by shift
func fromPrefix(prefix morton.Z, l morton.Level, shift uint) Quadrant {
	qx, qy := morton.FromZ(prefix)
	span := int64(mathhelp.Pow2(shift / 2)) // cells on one side
	return Quadrant{
		z:     prefix,
		level: l,
		extent: intgeom.Extent{
			int64(qx) * span,   // minx
			int64(qy) * span,   // miny
			int64(qx+1) * span, // maxx
			int64(qy+1) * span, // maxy
		},
	}
}

// Children returns the codes of the 4 quadrants one level deeper, in Z order
func Children(parentZ morton.Z) [4]morton.Z {
	parentX, parentY := morton.FromZ(parentZ)
	quadrantZs := [4]morton.Z{}
	for i := Q(0); i < 4; i++ {
		x := parentX*2 + oneIfRight(i)
		y := parentY*2 + oneIfTop(i)
		quadrantZs[i] = morton.MustToZ(x, y)
	}
	return quadrantZs
}

func oneIfRight(quadrantI Q) uint {
	return quadrantI & right
}

func oneIfTop(quadrantI Q) uint {
	return (quadrantI & top) >> 1
}
