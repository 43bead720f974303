package geom

import (
	"fmt"
	"math"
)

// Eps is the tolerance shared by every geometric comparison.
const Eps = 1e-9

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y int) Point {
	return Point{X: float64(x), Y: float64(y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) IsLattice() bool {
	return p.X == math.Trunc(p.X) && p.Y == math.Trunc(p.Y) &&
		!math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) InBox(size int) bool {
	s := float64(size)
	return p.X >= 0 && p.X <= s && p.Y >= 0 && p.Y <= s
}

// Equal reports whether p and q are within Eps on both axes.
func (p Point) Equal(q Point) bool {
	return math.Abs(p.X-q.X) < Eps && math.Abs(p.Y-q.Y) < Eps
}

func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

func distanceSq(p, q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}
