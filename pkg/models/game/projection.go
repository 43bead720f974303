package game

import (
	"github.com/HuXin0817/lattice-rooms/pkg/geom"
	"github.com/HuXin0817/lattice-rooms/pkg/rooms"
)

// Segments clips every played line to the board, in move order.
func (s State) Segments() []geom.Segment {
	return rooms.ClipLines(s.Config.Size, s.Lines)
}

// Intersections returns the pairwise crossings of the drawn segments, merged
// within geom.Eps.
func (s State) Intersections() []geom.Point {
	segments := s.Segments()
	idx := rooms.NewPointIndex()
	for i := range segments {
		for j := i + 1; j < len(segments); j++ {
			if p, c := geom.IntersectSegments(segments[i], segments[j]); c {
				idx.Add(p)
			}
		}
	}
	return idx.Points()
}
