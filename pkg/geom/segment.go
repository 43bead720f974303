package geom

import "math"

type Segment struct {
	A Point `json:"a"`
	B Point `json:"b"`
}

func (s Segment) Length() float64 {
	return Distance(s.A, s.B)
}

// Equal ignores endpoint order.
func (s Segment) Equal(o Segment) bool {
	return (s.A.Equal(o.A) && s.B.Equal(o.B)) || (s.A.Equal(o.B) && s.B.Equal(o.A))
}

// Contains reports whether p lies on s, endpoints included.
func (s Segment) Contains(p Point) bool {
	ex, ey := s.B.X-s.A.X, s.B.Y-s.A.Y
	px, py := p.X-s.A.X, p.Y-s.A.Y

	if math.Abs(ex*py-ey*px) > Eps {
		return false
	}

	dot := px*ex + py*ey
	if dot < -Eps {
		return false
	}

	return dot-(ex*ex+ey*ey) <= Eps
}

// Param returns the position of p along s, projected on the axis with the
// larger extent.
func (s Segment) Param(p Point) float64 {
	dx, dy := s.B.X-s.A.X, s.B.Y-s.A.Y
	if math.Abs(dx) >= math.Abs(dy) {
		if dx == 0 {
			return 0
		}
		return (p.X - s.A.X) / dx
	}
	return (p.Y - s.A.Y) / dy
}

// BoundarySegments returns the four edges of [0,size]², counter-clockwise
// from the origin.
func BoundarySegments(size int) [4]Segment {
	s := float64(size)
	return [...]Segment{
		{A: Point{0, 0}, B: Point{s, 0}},
		{A: Point{s, 0}, B: Point{s, s}},
		{A: Point{s, s}, B: Point{0, s}},
		{A: Point{0, s}, B: Point{0, 0}},
	}
}
