package game

import (
	"fmt"

	"github.com/HuXin0817/lattice-rooms/pkg/geom"
)

type Turn int8

const (
	Player1 Turn = 0
	Player2 Turn = 1

	// NoLoser marks a state that has not finished.
	NoLoser Turn = -1
)

func (t Turn) String() string {
	switch t {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return ""
}

func (t Turn) Next() Turn {
	if t == Player1 {
		return Player2
	}
	return Player1
}

// Index is the 0-based player index used by callers keeping per-player data.
func (t Turn) Index() int { return int(t) }

type Status string

const (
	Playing  Status = "playing"
	Finished Status = "finished"
)

type Move struct {
	A geom.Point `json:"a"`
	B geom.Point `json:"b"`
}

func NewMove(ax, ay, bx, by int) Move {
	return Move{A: geom.NewPoint(ax, ay), B: geom.NewPoint(bx, by)}
}

func (m Move) String() string {
	return fmt.Sprintf("%s -> %s", m.A, m.B)
}

// State is an immutable snapshot of a game. Lines is never mutated after the
// state is built; every accepted move produces a new State.
type State struct {
	Config     Config      `json:"config"`
	Lines      []geom.Line `json:"lines"`
	Rooms      int         `json:"rooms"`
	NowPlayer  Turn        `json:"turn"`
	MoveNumber int         `json:"moveNumber"`
	Status     Status      `json:"status"`
	Loser      Turn        `json:"loser"`
}

// New returns a fresh playing state for config with its directions
// canonicalized and deduplicated.
func New(config Config) State {
	return State{
		Config:    config.canonical(),
		Rooms:     1,
		NowPlayer: Player1,
		Status:    Playing,
		Loser:     NoLoser,
	}
}

func (s State) Finished() bool {
	return s.Status == Finished
}

// HasLine reports whether a line with key k is already on the board.
func (s State) HasLine(k geom.LineKey) bool {
	for _, l := range s.Lines {
		if l.Key() == k {
			return true
		}
	}
	return false
}

// WithTargetRooms returns a copy with a new target. A playing state whose
// rooms already reach the target finishes, and the player who moved last loses.
func (s State) WithTargetRooms(target int) State {
	s.Config.TargetRooms = target
	if s.Status != Finished && s.Rooms >= target {
		s.Status = Finished
		s.Loser = s.NowPlayer.Next()
	}
	return s
}

// Forfeit finishes a playing state with the side to move as loser.
func (s State) Forfeit() State {
	if s.Status == Finished {
		return s
	}
	s.Status = Finished
	s.Loser = s.NowPlayer
	return s
}
