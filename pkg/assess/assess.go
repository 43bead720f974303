package assess

import (
	"context"
	"math/rand"

	"github.com/HuXin0817/lattice-rooms/pkg/models/game"
	"golang.org/x/sync/errgroup"
)

const (
	WinScore  = 1_000_000
	LossScore = -WinScore

	MaxBranchingFactor = 14
	DefaultDepth       = 3
)

// Decision is a chosen move, the state it produces and its score.
type Decision struct {
	Move      game.Move  `json:"move"`
	NextState game.State `json:"nextState"`
	Score     int        `json:"score"`
}

// Searcher picks moves. It owns its random source and is not safe for
// concurrent use; give each goroutine its own.
type Searcher struct {
	Depth        int
	MaxBranching int
	Parallel     int
	Rand         *rand.Rand
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{
		Depth:        DefaultDepth,
		MaxBranching: MaxBranchingFactor,
	}

	for _, option := range options {
		option(s)
	}

	if s.Rand == nil {
		s.Rand = newDefaultRand()
	}
	return s
}

// Evaluate scores s for maximizing. Finished states favour quick wins and
// slow losses; otherwise the remaining room budget is the estimate.
func Evaluate(s game.State, maximizing game.Turn) int {
	if s.Status == game.Finished {
		if s.Loser == maximizing {
			return LossScore + s.Rooms
		}
		return WinScore - s.Rooms
	}
	return Heuristic(s)
}

// DFS is alpha-beta minimax to the given depth.
func (s *Searcher) DFS(state game.State, depth, alpha, beta int, maximizing game.Turn) (score int) {
	if depth <= 0 || state.Status == game.Finished {
		return Evaluate(state, maximizing)
	}

	nextMoves := NextMoves(state, s.MaxBranching)
	if len(nextMoves) == 0 {
		if state.NowPlayer == maximizing {
			return LossScore
		}
		return WinScore
	}

	if state.NowPlayer == maximizing {
		score = LossScore
		for _, m := range nextMoves {
			score = max(score, s.DFS(m.NextState, depth-1, alpha, beta, maximizing))
			alpha = max(alpha, score)
			if alpha >= beta {
				break
			}
		}
		return
	}

	score = WinScore
	for _, m := range nextMoves {
		score = min(score, s.DFS(m.NextState, depth-1, alpha, beta, maximizing))
		beta = min(beta, score)
		if alpha >= beta {
			break
		}
	}
	return
}

// Assess returns the search value of playing c, from the mover's side.
func (s *Searcher) Assess(c Candidate, maximizing game.Turn) int {
	return s.DFS(c.NextState, s.Depth-1, LossScore, WinScore, maximizing)
}

func (s *Searcher) pick(decisions []Decision) Decision {
	return decisions[s.Rand.Intn(len(decisions))]
}

// Greedy picks uniformly among the moves with the best heuristic.
func (s *Searcher) Greedy(state game.State) (Decision, bool) {
	better := BetterMoves(NextMoves(state, s.MaxBranching))
	if len(better) == 0 {
		return Decision{}, false
	}

	c := better[s.Rand.Intn(len(better))]
	return Decision{Move: c.Move, NextState: c.NextState, Score: c.Heuristic}, true
}

// AlphaBeta runs the search from state and picks uniformly among the root
// moves reaching the best score.
func (s *Searcher) AlphaBeta(state game.State) (Decision, bool) {
	if state.Status != game.Playing {
		return Decision{}, false
	}

	nextMoves := NextMoves(state, s.MaxBranching)
	if len(nextMoves) == 0 {
		return Decision{}, false
	}

	if s.Parallel > 1 {
		return s.pick(s.parallelRoot(state, nextMoves)), true
	}

	maximizing := state.NowPlayer
	alpha, beta := LossScore, WinScore
	bestScore := LossScore
	var best []Decision

	for _, m := range nextMoves {
		score := s.DFS(m.NextState, s.Depth-1, alpha, beta, maximizing)
		d := Decision{Move: m.Move, NextState: m.NextState, Score: score}
		switch {
		case score > bestScore:
			bestScore = score
			best = append(best[:0], d)
		case score == bestScore:
			best = append(best, d)
		}

		alpha = max(alpha, score)
		if alpha >= beta {
			break
		}
	}

	return s.pick(best), true
}

func (s *Searcher) parallelRoot(state game.State, nextMoves []Candidate) (best []Decision) {
	maximizing := state.NowPlayer
	scores := make([]int, len(nextMoves))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(s.Parallel)
	for i, m := range nextMoves {
		g.Go(func() error {
			worker := &Searcher{Depth: s.Depth, MaxBranching: s.MaxBranching}
			scores[i] = worker.Assess(m, maximizing)
			return nil
		})
	}
	_ = g.Wait()

	bestScore := LossScore
	for i, m := range nextMoves {
		d := Decision{Move: m.Move, NextState: m.NextState, Score: scores[i]}
		switch {
		case scores[i] > bestScore:
			bestScore = scores[i]
			best = append(best[:0], d)
		case scores[i] == bestScore:
			best = append(best, d)
		}
	}
	return
}

// ChooseBestMove prefers the alpha-beta result and falls back to the greedy
// pick. false means the side to move has no legal move.
func (s *Searcher) ChooseBestMove(state game.State) (Decision, bool) {
	if d, c := s.AlphaBeta(state); c {
		return d, true
	}
	return s.Greedy(state)
}

// ChooseBestMove runs a fresh Searcher built from options.
func ChooseBestMove(state game.State, options ...Option) (Decision, bool) {
	return NewSearcher(options...).ChooseBestMove(state)
}
