package geom

import (
	"errors"
	"fmt"
)

var ErrInvalidDirection = errors.New("zero-length direction is invalid")

// Direction is a gcd-reduced integer vector with dx > 0, or dx == 0 and dy > 0.
type Direction struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

func (d Direction) String() string {
	return fmt.Sprintf("%d,%d", d.DX, d.DY)
}

// Normal returns n = (-dy, dx).
func (d Direction) Normal() (nx, ny int) {
	return -d.DY, d.DX
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func NormalizeDirection(dx, dy int) (Direction, error) {
	if dx == 0 && dy == 0 {
		return Direction{}, ErrInvalidDirection
	}

	g := gcd(dx, dy)
	nx, ny := dx/g, dy/g
	if nx < 0 || (nx == 0 && ny < 0) {
		nx, ny = -nx, -ny
	}

	return Direction{DX: nx, DY: ny}, nil
}

// CanonicalDirections normalizes every direction and drops repeats, keeping
// first-seen order. Zero vectors are rejected.
func CanonicalDirections(directions []Direction) (canonical []Direction, err error) {
	seen := make(map[Direction]struct{}, len(directions))
	for _, d := range directions {
		n, err := NormalizeDirection(d.DX, d.DY)
		if err != nil {
			return nil, err
		}

		if _, c := seen[n]; c {
			continue
		}

		seen[n] = struct{}{}
		canonical = append(canonical, n)
	}

	return canonical, nil
}
