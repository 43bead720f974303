package rooms

import (
	"sort"

	"github.com/HuXin0817/lattice-rooms/pkg/geom"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

type edgeKey struct {
	U, V int
}

// Arrangement is the planar graph built from the board boundary and the
// clipped lines.
type Arrangement struct {
	Vertices   *PointIndex
	Edges      map[edgeKey]struct{}
	Components int
}

func (a *Arrangement) Rooms() int {
	rooms := len(a.Edges) - a.Vertices.Len() + a.Components
	return max(rooms, 1)
}

// ClipLines clips every line to the board, dropping lines that miss it.
func ClipLines(size int, lines []geom.Line) (segments []geom.Segment) {
	for _, l := range lines {
		if seg, c := geom.ClipToBox(l, size); c {
			segments = append(segments, seg)
		}
	}
	return
}

// Build constructs the arrangement for lines on a board of the given size.
func Build(size int, lines []geom.Line) *Arrangement {
	boundary := geom.BoundarySegments(size)
	lineSegments := ClipLines(size, lines)

	segments := make([]geom.Segment, 0, len(boundary)+len(lineSegments))
	segments = append(segments, boundary[:]...)
	segments = append(segments, lineSegments...)

	vertices := NewPointIndex()
	for _, s := range segments {
		vertices.Add(s.A)
		vertices.Add(s.B)
	}

	for i := range lineSegments {
		for j := i + 1; j < len(lineSegments); j++ {
			if p, c := geom.IntersectSegments(lineSegments[i], lineSegments[j]); c {
				vertices.Add(p)
			}
		}
	}

	a := &Arrangement{
		Vertices: vertices,
		Edges:    make(map[edgeKey]struct{}),
	}

	g := simple.NewUndirectedGraph()
	for _, s := range segments {
		a.splitSegment(g, s)
	}

	a.Components = len(topo.ConnectedComponents(g))
	if a.Components == 0 {
		a.Components = vertices.Len()
	}

	return a
}

type onSegment struct {
	id int
	t  float64
}

func (a *Arrangement) splitSegment(g *simple.UndirectedGraph, s geom.Segment) {
	if s.Length() < geom.Eps {
		return
	}

	var hits []onSegment
	for id := range a.Vertices.Len() {
		p := a.Vertices.Get(id)
		if s.Contains(p) {
			hits = append(hits, onSegment{id: id, t: s.Param(p)})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].t < hits[j].t })

	for i := 0; i+1 < len(hits); i++ {
		u, v := hits[i], hits[i+1]
		if v.t-u.t < geom.Eps || u.id == v.id {
			continue
		}

		k := edgeKey{min(u.id, v.id), max(u.id, v.id)}
		if _, c := a.Edges[k]; c {
			continue
		}

		a.Edges[k] = struct{}{}
		g.SetEdge(g.NewEdge(simple.Node(k.U), simple.Node(k.V)))
	}
}

// CountRooms returns the number of regions the lines and the board boundary
// divide [0,size]² into. A non-positive size has no rooms.
func CountRooms(size int, lines []geom.Line) int {
	if size <= 0 {
		return 0
	}
	return Build(size, lines).Rooms()
}
