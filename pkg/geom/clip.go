package geom

import "math"

type bound struct {
	vertical bool // x = value when true, y = value otherwise
	value    float64
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClipToBox intersects l with [0,size]². It returns false when the line
// touches the square in fewer than two distinct points. A line lying on a
// boundary edge clips to that whole edge.
func ClipToBox(l Line, size int) (Segment, bool) {
	s := float64(size)
	bounds := [...]bound{{true, 0}, {true, s}, {false, 0}, {false, s}}
	d, anchor := l.Direction, l.Anchor

	var points []Point
	for _, b := range bounds {
		if b.vertical {
			if d.DX == 0 {
				if math.Abs(anchor.X-b.value) < Eps {
					points = append(points, Point{b.value, 0}, Point{b.value, s})
					break
				}
				continue
			}

			t := (b.value - anchor.X) / float64(d.DX)
			y := anchor.Y + float64(d.DY)*t
			if y >= -Eps && y <= s+Eps {
				points = append(points, Point{b.value, clamp(y, 0, s)})
			}
			continue
		}

		if d.DY == 0 {
			if math.Abs(anchor.Y-b.value) < Eps {
				points = append(points, Point{0, b.value}, Point{s, b.value})
				break
			}
			continue
		}

		t := (b.value - anchor.Y) / float64(d.DY)
		x := anchor.X + float64(d.DX)*t
		if x >= -Eps && x <= s+Eps {
			points = append(points, Point{clamp(x, 0, s), b.value})
		}
	}

	unique := dedupePoints(points)
	if len(unique) < 2 {
		return Segment{}, false
	}

	return farthestPair(unique), true
}

func dedupePoints(points []Point) (unique []Point) {
	for _, p := range points {
		dup := false
		for _, q := range unique {
			if Distance(p, q) < Eps {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, p)
		}
	}
	return
}

func farthestPair(points []Point) (seg Segment) {
	best := -1.0
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if d := distanceSq(points[i], points[j]); d > best {
				best = d
				seg = Segment{A: points[i], B: points[j]}
			}
		}
	}
	return
}

// MatchesBoundary reports whether l runs exactly along one board edge, corner
// to corner. A line that misses the square counts as matching.
func MatchesBoundary(l Line, size int) bool {
	seg, ok := ClipToBox(l, size)
	if !ok {
		return true
	}

	for _, edge := range BoundarySegments(size) {
		if seg.Equal(edge) {
			return true
		}
	}
	return false
}
