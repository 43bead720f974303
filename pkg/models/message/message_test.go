package message

import (
	"testing"
	"time"

	"github.com/HuXin0817/lattice-rooms/pkg/models/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameUid(t *testing.T) {
	a, b := NewGameUid(), NewGameUid()
	assert.NotEqual(t, a, b)
	assert.True(t, a.Valid())
	assert.False(t, GameUid("not-a-uid").Valid())
}

func TestGameReportLine(t *testing.T) {
	report := GameReport{
		TimeStamp: NewTimeStamp(time.Now()),
		GameUid:   NewGameUid(),
		Config:    game.DefaultConfig(),
		Moves: []MoveRecord{
			{Step: 1, Player: game.Player1, Move: game.NewMove(2, 0, 2, 1), Score: 7, Rooms: 2},
		},
		Rooms:   2,
		Loser:   game.Player2,
		Elapsed: time.Second,
	}

	line := report.String()
	assert.Contains(t, line, `"uid":"`+string(report.GameUid)+`"`)
	assert.NotContains(t, line, "\n")

	got, err := NewGameReport(line)
	require.NoError(t, err)
	assert.Equal(t, report, got)
	assert.Equal(t, game.Player1, got.Winner())

	assert.Equal(t, game.NoLoser, GameReport{Loser: game.NoLoser}.Winner())

	_, err = NewGameReport("{")
	assert.Error(t, err)
}
