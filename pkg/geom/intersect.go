package geom

import "math"

// IntersectLines solves the two normal-form equations. Parallel and
// coincident lines report false.
func IntersectLines(a, b Line) (Point, bool) {
	ax, ay := a.Direction.Normal()
	bx, by := b.Direction.Normal()

	det := float64(ax*by - ay*bx)
	if math.Abs(det) < Eps {
		return Point{}, false
	}

	x := (float64(by)*(-a.C) - float64(ay)*(-b.C)) / det
	y := (-float64(bx)*(-a.C) + float64(ax)*(-b.C)) / det
	return Point{X: x, Y: y}, true
}

// IntersectSegments returns the crossing point of s and t when it lies on
// both segments.
func IntersectSegments(s, t Segment) (Point, bool) {
	x1, y1, x2, y2 := s.A.X, s.A.Y, s.B.X, s.B.Y
	x3, y3, x4, y4 := t.A.X, t.A.Y, t.B.X, t.B.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < Eps {
		return Point{}, false
	}

	c1 := x1*y2 - y1*x2
	c2 := x3*y4 - y3*x4
	p := Point{
		X: (c1*(x3-x4) - (x1-x2)*c2) / denom,
		Y: (c1*(y3-y4) - (y1-y2)*c2) / denom,
	}

	if s.Contains(p) && t.Contains(p) {
		return p, true
	}
	return Point{}, false
}
