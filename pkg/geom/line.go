package geom

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDegenerateLine = errors.New("cannot create a line from identical points")
	ErrNotLattice     = errors.New("line points must differ by an integer vector")
)

// LineKey identifies a line independently of the points used to build it.
type LineKey struct {
	Direction Direction
	C         float64
}

func (k LineKey) String() string {
	return fmt.Sprintf("%s,%g", k.Direction, k.C)
}

// Line is the infinite line n·p + c = 0 with n the normal of Direction.
type Line struct {
	Direction Direction `json:"direction"`
	Anchor    Point     `json:"anchor"`
	C         float64   `json:"c"`
}

func (l Line) Key() LineKey {
	return LineKey{Direction: l.Direction, C: l.C}
}

func (l Line) String() string {
	return fmt.Sprintf("line{%s through %s}", l.Direction, l.Anchor)
}

func computeC(d Direction, anchor Point) float64 {
	nx, ny := d.Normal()
	c := -(float64(nx)*anchor.X + float64(ny)*anchor.Y)
	if c == 0 {
		// fold -0 into +0 so keys print and compare the same
		c = 0
	}
	return c
}

// CreateLine builds the line through a and b. The points must differ by an
// integer vector; lattice endpoints keep C exact.
func CreateLine(a, b Point) (Line, error) {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return Line{}, ErrDegenerateLine
	}

	if dx != math.Trunc(dx) || dy != math.Trunc(dy) {
		return Line{}, ErrNotLattice
	}

	d, err := NormalizeDirection(int(dx), int(dy))
	if err != nil {
		return Line{}, err
	}

	return Line{
		Direction: d,
		Anchor:    a,
		C:         computeC(d, a),
	}, nil
}

func (l Line) Contains(p Point) bool {
	nx, ny := l.Direction.Normal()
	return math.Abs(float64(nx)*p.X+float64(ny)*p.Y+l.C) < Eps
}
