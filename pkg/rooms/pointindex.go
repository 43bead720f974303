package rooms

import (
	"math"

	"github.com/HuXin0817/lattice-rooms/pkg/geom"
)

// cellSize is much larger than geom.Eps, so two points that merge always sit
// in the same or adjacent buckets.
const cellSize = 1e-6

type cell struct {
	X, Y int64
}

// PointIndex stores distinct points, merging any two closer than geom.Eps.
type PointIndex struct {
	points  []geom.Point
	buckets map[cell][]int
}

func NewPointIndex() *PointIndex {
	return &PointIndex{buckets: make(map[cell][]int)}
}

func cellOf(p geom.Point) cell {
	return cell{
		X: int64(math.Floor(p.X / cellSize)),
		Y: int64(math.Floor(p.Y / cellSize)),
	}
}

// Add returns the id of p, inserting it when no stored point is within Eps.
func (idx *PointIndex) Add(p geom.Point) int {
	if id, c := idx.Find(p); c {
		return id
	}

	id := len(idx.points)
	idx.points = append(idx.points, p)
	k := cellOf(p)
	idx.buckets[k] = append(idx.buckets[k], id)
	return id
}

func (idx *PointIndex) Find(p geom.Point) (int, bool) {
	k := cellOf(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, id := range idx.buckets[cell{k.X + dx, k.Y + dy}] {
				if geom.Distance(idx.points[id], p) < geom.Eps {
					return id, true
				}
			}
		}
	}
	return -1, false
}

func (idx *PointIndex) Get(id int) geom.Point {
	return idx.points[id]
}

func (idx *PointIndex) Len() int {
	return len(idx.points)
}

func (idx *PointIndex) Points() []geom.Point {
	return append([]geom.Point(nil), idx.points...)
}
