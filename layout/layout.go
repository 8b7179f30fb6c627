// Package layout places the cells of a grid on a canvas and writes what a renderer would draw:
// cells, the curve through them, quadrant outlines and highlights.
package layout

import (
	"github.com/pdok/zgrid/grid"
	"github.com/pdok/zgrid/intgeom"
	"github.com/pdok/zgrid/quadrant"
)

// Layout places cell (x, y) at x*(CellSize+Padding), y*(CellSize+Padding).
// y grows downwards, as on a screen.
type Layout struct {
	CellSize intgeom.M
	Padding  intgeom.M
}

func (l Layout) step() intgeom.M {
	return l.CellSize + l.Padding
}

// CellExtent is the square drawn for a cell
func (l Layout) CellExtent(c grid.Coordinate) intgeom.Extent {
	minX := intgeom.M(c.X()) * l.step()
	minY := intgeom.M(c.Y()) * l.step()
	return intgeom.Extent{minX, minY, minX + l.CellSize, minY + l.CellSize}
}

// Center is where the curve passes through a cell
func (l Layout) Center(c grid.Coordinate) intgeom.Point {
	return l.CellExtent(c).Centroid()
}

// Curve returns the points of the line through the cells in their current order
func (l Layout) Curve(cells []grid.Coordinate) []intgeom.Point {
	points := make([]intgeom.Point, len(cells))
	for i, c := range cells {
		points[i] = l.Center(c)
	}
	return points
}

// Segments returns the lines between consecutive cells
func (l Layout) Segments(cells []grid.Coordinate) []intgeom.Line {
	if len(cells) < 2 {
		return nil
	}
	segments := make([]intgeom.Line, len(cells)-1)
	for i := 1; i < len(cells); i++ {
		segments[i-1] = intgeom.Line{l.Center(cells[i-1]), l.Center(cells[i])}
	}
	return segments
}

// CurveLength is the total length of the curve along the axes
func (l Layout) CurveLength(cells []grid.Coordinate) intgeom.M {
	var length intgeom.M
	for _, segment := range l.Segments(cells) {
		length += segment.ManhattanLength()
	}
	return length
}

// QuadrantExtent spans the cells of a quadrant, without the padding after the last cell
func (l Layout) QuadrantExtent(q quadrant.Quadrant) intgeom.Extent {
	e := q.Extent()
	return intgeom.Extent{
		e.MinX() * l.step(),
		e.MinY() * l.step(),
		e.MaxX()*l.step() - l.Padding,
		e.MaxY()*l.step() - l.Padding,
	}
}

// Canvas is the extent of the whole grid
func (l Layout) Canvas(g grid.Grid) intgeom.Extent {
	size := intgeom.M(g.Dim)*l.step() - l.Padding
	return intgeom.Extent{0, 0, size, size}
}
