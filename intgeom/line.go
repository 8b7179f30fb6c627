package intgeom

// Line has exactly two points
type Line [2][2]M

// ManhattanLength is the sum of the spans along both axes
func (l Line) ManhattanLength() M {
	dx := l[1][0] - l[0][0]
	dy := l[1][1] - l[0][1]
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
