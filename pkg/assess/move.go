package assess

import (
	"sort"

	"github.com/HuXin0817/lattice-rooms/pkg/geom"
	"github.com/HuXin0817/lattice-rooms/pkg/models/game"
	"github.com/zyedidia/generic/mapset"
)

// Candidate is a legal move together with the state it leads to.
type Candidate struct {
	game.Move
	NextState game.State
	Heuristic int
}

// Heuristic is the room budget left before the target is reached.
func Heuristic(s game.State) int {
	return s.Config.TargetRooms - s.Rooms
}

// NextMoves enumerates one move per distinct line reachable from a lattice
// anchor along an admissible direction, best heuristic first, keeping at most
// limit of them. limit <= 0 keeps all.
func NextMoves(s game.State, limit int) (candidates []Candidate) {
	size := s.Config.Size

	existing := mapset.New[geom.LineKey]()
	for _, l := range s.Lines {
		existing.Put(l.Key())
	}
	seen := mapset.New[geom.LineKey]()

	for x := 0; x <= size; x++ {
		for y := 0; y <= size; y++ {
			anchor := geom.NewPoint(x, y)
			for _, d := range s.Config.Directions {
				b := geom.NewPoint(x+d.DX, y+d.DY)
				if !b.InBox(size) {
					continue
				}

				line, err := geom.CreateLine(anchor, b)
				if err != nil {
					continue
				}

				k := line.Key()
				if existing.Has(k) || seen.Has(k) {
					continue
				}
				seen.Put(k)

				m := game.Move{A: anchor, B: b}
				next, err := game.ApplyMove(s, m)
				if err != nil {
					continue
				}

				candidates = append(candidates, Candidate{
					Move:      m,
					NextState: next,
					Heuristic: Heuristic(next),
				})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Heuristic > candidates[j].Heuristic
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return
}

// BetterMoves keeps the candidates sharing the best heuristic.
func BetterMoves(candidates []Candidate) (better []Candidate) {
	for _, c := range candidates {
		switch {
		case len(better) == 0 || c.Heuristic == better[0].Heuristic:
			better = append(better, c)
		case c.Heuristic > better[0].Heuristic:
			better = append(better[:0], c)
		}
	}
	return
}
