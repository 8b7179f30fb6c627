package intgeom

import (
	"github.com/go-spatial/geom"
)

// Extent represents the minx, miny, maxx and maxy.
// maxX and maxY are exclusive when testing containment.
type Extent [4]M

// ToGeomPolygon returns the extent as a closed ring
func (e Extent) ToGeomPolygon() geom.Polygon {
	v := e.Vertices()
	ring := make([][2]float64, 0, len(v)+1)
	for _, p := range v {
		ring = append(ring, [2]float64{ToGeomOrd(p[0]), ToGeomOrd(p[1])})
	}
	ring = append(ring, ring[0])
	return geom.Polygon{ring}
}

/* ========================= ATTRIBUTES ========================= */

// Vertices return the vertices of the Bounding Box. The vertices are ordered in the following manner.
// (minx,miny), (maxx,miny), (maxx,maxy), (minx,maxy)
func (e Extent) Vertices() [][2]M {
	return [][2]M{
		{e.MinX(), e.MinY()},
		{e.MaxX(), e.MinY()},
		{e.MaxX(), e.MaxY()},
		{e.MinX(), e.MaxY()},
	}
}

// MaxX is the larger of the x values.
func (e Extent) MaxX() M {
	return e[2]
}

// MinX  is the smaller of the x values.
func (e Extent) MinX() M {
	return e[0]
}

// MaxY is the larger of the y values.
func (e Extent) MaxY() M {
	return e[3]
}

// MinY is the smaller of the y values.
func (e Extent) MinY() M {
	return e[1]
}

// XSpan is the distance of the Extent in X
func (e Extent) XSpan() M {
	return e[2] - e[0]
}

// YSpan is the distance of the Extent in Y
func (e Extent) YSpan() M {
	return e[3] - e[1]
}

// Centroid is the middle of the extent, rounded down
func (e Extent) Centroid() Point {
	return Point{e.MinX() + e.XSpan()/2, e.MinY() + e.YSpan()/2}
}

// ContainsPoint checks whether a point lies in the extent, excluding the max edges
func (e Extent) ContainsPoint(pt Point) bool {
	return e.MinX() <= pt[0] && pt[0] < e.MaxX() &&
		e.MinY() <= pt[1] && pt[1] < e.MaxY()
}

// ContainsExtent checks whether o lies completely inside e
func (e Extent) ContainsExtent(o Extent) bool {
	return e.MinX() <= o.MinX() && o.MaxX() <= e.MaxX() &&
		e.MinY() <= o.MinY() && o.MaxY() <= e.MaxY()
}

// Area of the extent
func (e Extent) Area() M {
	return e.XSpan() * e.YSpan()
}
