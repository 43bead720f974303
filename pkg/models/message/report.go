package message

import (
	"time"

	"github.com/HuXin0817/lattice-rooms/pkg/models/game"
	"github.com/bytedance/sonic"
)

// MoveRecord is one ply of a finished game.
type MoveRecord struct {
	Step   int       `json:"step"`
	Player game.Turn `json:"player"`
	Move   game.Move `json:"move"`
	Score  int       `json:"score"`
	Rooms  int       `json:"rooms"`
}

// GameReport summarises one self-play game. It is written as a JSON line.
type GameReport struct {
	TimeStamp `json:"timestamp"`
	GameUid   `json:"uid"`
	Config    game.Config   `json:"config"`
	Moves     []MoveRecord  `json:"moves"`
	Rooms     int           `json:"rooms"`
	Loser     game.Turn     `json:"loser"`
	Forfeit   bool          `json:"forfeit"`
	Elapsed   time.Duration `json:"elapsed"`
}

func NewGameReport(str string) (report GameReport, err error) {
	err = sonic.UnmarshalString(str, &report)
	return
}

func (r GameReport) String() string {
	str, _ := sonic.MarshalString(r)
	return str
}

// Winner is the other side of Loser, or game.NoLoser for an unfinished game.
func (r GameReport) Winner() game.Turn {
	if r.Loser == game.NoLoser {
		return game.NoLoser
	}
	return r.Loser.Next()
}
