package assess

import (
	"math/rand"
	"time"
)

type Option func(*Searcher)

// WithDepth sets the number of plies searched, the root move included.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		s.Depth = depth
	}
}

func WithMaxBranching(n int) Option {
	return func(s *Searcher) {
		s.MaxBranching = n
	}
}

// WithRand injects the source used to break ties.
func WithRand(r *rand.Rand) Option {
	return func(s *Searcher) {
		s.Rand = r
	}
}

func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithParallel scores root moves on up to n goroutines. Each root move is
// searched with a full window, so scores are exact but no pruning crosses
// sibling branches.
func WithParallel(n int) Option {
	return func(s *Searcher) {
		s.Parallel = n
	}
}

func newDefaultRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
