// Package intgeom resembles github.com/go-spatial/geom but uses int64s,
// which is what cells and screen pixels of a grid are measured in.
// Conversion to go-spatial/geom happens only when encoding output.
package intgeom

import (
	"github.com/go-spatial/geom"
)

// M is short for measure, an ordinate or distance in whole units (cells or pixels).
type M = int64

// ToGeomOrd turns an ordinate into a floating point one
func ToGeomOrd(o M) float64 {
	return float64(o)
}

// ToGeomLineString connects the points in order
func ToGeomLineString(points []Point) geom.LineString {
	ls := make(geom.LineString, len(points))
	for i, p := range points {
		ls[i] = p.ToGeomPoint()
	}
	return ls
}
