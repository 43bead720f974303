package main

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/HuXin0817/lattice-rooms/pkg/assess"
	"github.com/HuXin0817/lattice-rooms/pkg/geom"
	"github.com/HuXin0817/lattice-rooms/pkg/models/game"
	"github.com/HuXin0817/lattice-rooms/pkg/models/message"
	"github.com/HuXin0817/lattice-rooms/pkg/models/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	o, err := parseOptions([]string{"-n", "3", "-size", "5", "-target", "4", "-preset", "orthogonal", "-parallel", "ON", "-seed", "9"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 3, o.Games)
	assert.Equal(t, model.On, o.Parallel)

	c, err := o.GameConfig()
	require.NoError(t, err)
	assert.Equal(t, 5, c.Size)
	assert.Len(t, c.Directions, 2)

	o, err = parseOptions([]string{"-dirs", "1,2;2,1"}, io.Discard)
	require.NoError(t, err)
	c, err = o.GameConfig()
	require.NoError(t, err)
	assert.Equal(t, []geom.Direction{{DX: 1, DY: 2}, {DX: 2, DY: 1}}, c.Directions)

	for _, args := range [][]string{
		{"-n", "0"},
		{"-depth", "0"},
		{"-size", "1"},
		{"-preset", "hexagonal"},
		{"-preset", "custom"},
		{"-parallel", "maybe"},
		{"-branching", "-1"},
	} {
		_, err := parseOptions(args, io.Discard)
		assert.Error(t, err, strings.Join(args, " "))
	}
}

func TestNewSearcher(t *testing.T) {
	o, err := parseOptions([]string{"-depth", "2", "-branching", "3", "-seed", "4"}, io.Discard)
	require.NoError(t, err)

	searcher := newSearcher(o, 0)
	assert.Equal(t, 2, searcher.Depth)
	assert.Equal(t, 3, searcher.MaxBranching)
	assert.Zero(t, searcher.Parallel)

	o, err = parseOptions(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, assess.MaxBranchingFactor, newSearcher(o, 0).MaxBranching)
}

func TestSummaryProgress(t *testing.T) {
	var s Summary
	s.Add(message.GameReport{Loser: game.Player2})
	s.Add(message.GameReport{Loser: game.Player2})
	s.Add(message.GameReport{Loser: game.Player1, Forfeit: true})

	assert.Equal(t, "self-play P1 2 : 1 P2", s.Progress())
	assert.Equal(t, 1, s.Forfeits)
}

func TestPlayGame(t *testing.T) {
	dirs, _ := game.PresetDirections(game.Orthogonal)
	config := game.NewConfig(4, 3, dirs)

	report, err := PlayGame(context.Background(), config, assess.NewSearcher(assess.WithDepth(2), assess.WithSeed(5)))
	require.NoError(t, err)

	assert.True(t, report.GameUid.Valid())
	assert.False(t, report.Forfeit)
	assert.GreaterOrEqual(t, report.Rooms, 3)
	require.NotEmpty(t, report.Moves)

	last := report.Moves[len(report.Moves)-1]
	assert.Equal(t, last.Player, report.Loser)
	for i, m := range report.Moves {
		assert.Equal(t, i+1, m.Step)
		assert.Equal(t, game.Turn(i%2), m.Player)
	}
}

func TestPlayGameForfeit(t *testing.T) {
	config := game.NewConfig(4, 3, []geom.Direction{})

	report, err := PlayGame(context.Background(), config, assess.NewSearcher(assess.WithSeed(1)))
	require.NoError(t, err)
	assert.True(t, report.Forfeit)
	assert.Equal(t, game.Player1, report.Loser)
	assert.Empty(t, report.Moves)
	assert.Equal(t, 1, report.Rooms)
}

func TestPlayGameCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PlayGame(ctx, game.DefaultConfig(), assess.NewSearcher())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun(t *testing.T) {
	o, err := parseOptions([]string{"-n", "4", "-size", "4", "-target", "3", "-preset", "orthogonal", "-depth", "2", "-workers", "2", "-seed", "3"}, io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	summary, err := Run(context.Background(), o, &out, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Games)
	assert.Equal(t, 4, summary.Wins[0]+summary.Wins[1])
	assert.Zero(t, summary.Forfeits)

	var lines int
	scanner := bufio.NewScanner(&out)
	scanner.Buffer(nil, 1<<20)
	for scanner.Scan() {
		report, err := message.NewGameReport(scanner.Text())
		require.NoError(t, err)
		assert.Equal(t, 4, report.Config.Size)
		lines++
	}
	assert.Equal(t, 4, lines)

	var printed bytes.Buffer
	summary.Print(&printed)
	assert.Contains(t, printed.String(), "4 games")
}
