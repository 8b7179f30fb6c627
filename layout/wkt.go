package layout

import (
	"fmt"
	"io"

	"github.com/go-spatial/geom"
	"github.com/go-spatial/geom/encoding/wkt"
	"github.com/muesli/reflow/truncate"

	"github.com/pdok/zgrid/grid"
	"github.com/pdok/zgrid/intgeom"
	"github.com/pdok/zgrid/morton"
	"github.com/pdok/zgrid/quadrant"
	"github.com/pdok/zgrid/session"
)

// WktMustEncode encodes g, cut off at maxLen characters unless maxLen is 0
func WktMustEncode(g geom.Geometry, maxLen uint) string {
	if maxLen == 0 {
		return wkt.MustEncode(g)
	}
	return truncate.StringWithTail(wkt.MustEncode(g), maxLen, "...")
}

// Wkt writes the geometries of a frame, one per line
type Wkt struct {
	Layout Layout
	MaxLen uint
}

func (w Wkt) extents(out io.Writer, extents []intgeom.Extent) error {
	for _, e := range extents {
		if _, err := fmt.Fprintln(out, WktMustEncode(e.ToGeomPolygon(), w.MaxLen)); err != nil {
			return err
		}
	}
	return nil
}

// Cells writes a polygon per cell
func (w Wkt) Cells(out io.Writer, cells []grid.Coordinate) error {
	extents := make([]intgeom.Extent, len(cells))
	for i, c := range cells {
		extents[i] = w.Layout.CellExtent(c)
	}
	return w.extents(out, extents)
}

// Curve writes the line through the cells. Fewer than two cells have no curve.
func (w Wkt) Curve(out io.Writer, cells []grid.Coordinate) error {
	if len(cells) < 2 {
		return nil
	}
	_, err := fmt.Fprintln(out, WktMustEncode(intgeom.ToGeomLineString(w.Layout.Curve(cells)), w.MaxLen))
	return err
}

// Quadrants writes the outline of every quadrant at level l
func (w Wkt) Quadrants(out io.Writer, bits morton.Bits, l morton.Level) error {
	quadrants, err := quadrant.All(bits, l)
	if err != nil {
		return err
	}
	extents := make([]intgeom.Extent, len(quadrants))
	for i, q := range quadrants {
		extents[i] = w.Layout.QuadrantExtent(q)
	}
	return w.extents(out, extents)
}

// Ancestry writes the outlines of the quadrants around the selected cell, coarsest first.
// Without a selection nothing is written.
func (w Wkt) Ancestry(out io.Writer, bits morton.Bits, frame session.Frame) error {
	selected, ok := frame.SelectedCell()
	if !ok {
		return nil
	}
	levels := bits.Levels()
	extents := make([]intgeom.Extent, len(levels))
	for i, l := range levels {
		q, err := quadrant.Of(bits, selected.Coordinate, l)
		if err != nil {
			return err
		}
		extents[i] = w.Layout.QuadrantExtent(q)
	}
	return w.extents(out, extents)
}

// Highlights writes a polygon per highlighted cell of the frame, in curve order
func (w Wkt) Highlights(out io.Writer, frame session.Frame) error {
	var extents []intgeom.Extent
	for _, cell := range frame.Cells {
		if frame.Highlighted(cell.Coordinate) {
			extents = append(extents, w.Layout.CellExtent(cell.Coordinate))
		}
	}
	return w.extents(out, extents)
}

// Centers writes a point per cell, which is where the curve bends
func (w Wkt) Centers(out io.Writer, cells []grid.Coordinate) error {
	for _, c := range cells {
		if _, err := fmt.Fprintln(out, WktMustEncode(w.Layout.Center(c).ToGeomPoint(), w.MaxLen)); err != nil {
			return err
		}
	}
	return nil
}
