package svc

import (
	"testing"

	"github.com/HuXin0817/lattice-rooms/pkg/geom"
	"github.com/HuXin0817/lattice-rooms/pkg/models/game"
	"github.com/HuXin0817/lattice-rooms/pkg/session"
	"github.com/HuXin0817/lattice-rooms/serve/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gameConfig(size, target int, preset, directions string) config.Config {
	var c config.Config
	c.Game.Size = size
	c.Game.TargetRooms = target
	c.Game.Preset = preset
	c.Game.Directions = directions
	return c
}

func TestDefaultGame(t *testing.T) {
	c, preset, err := DefaultGame(gameConfig(11, 20, "orthogonal-diagonals", ""))
	require.NoError(t, err)
	assert.Equal(t, game.DefaultConfig(), c)
	assert.Equal(t, game.OrthogonalDiagonals, preset)

	c, preset, err = DefaultGame(gameConfig(7, 5, "custom", "1,2;2,1"))
	require.NoError(t, err)
	assert.Equal(t, game.Custom, preset)
	assert.Equal(t, []geom.Direction{{DX: 1, DY: 2}, {DX: 2, DY: 1}}, c.Directions)
	assert.Equal(t, 7, c.Size)

	_, _, err = DefaultGame(gameConfig(7, 5, "custom", ""))
	assert.ErrorIs(t, err, game.ErrDirectionText)

	_, _, err = DefaultGame(gameConfig(7, 5, "hexagonal", ""))
	assert.Error(t, err)

	_, _, err = DefaultGame(gameConfig(100, 5, "orthogonal", ""))
	assert.ErrorIs(t, err, session.ErrInvalidConfig)
}

func TestNewServiceContext(t *testing.T) {
	svcCtx, err := NewServiceContext(gameConfig(5, 3, "orthogonal", ""))
	require.NoError(t, err)

	s, err := svcCtx.Sessions.Create(nil)
	require.NoError(t, err)
	snap := s.Snapshot()
	assert.Equal(t, 5, snap.Config.Size)
	assert.Equal(t, game.Orthogonal, snap.Preset)

	_, err = NewServiceContext(gameConfig(5, 3, "custom", "0,0"))
	assert.Error(t, err)

	assert.Panics(t, func() { MustNewServiceContext(gameConfig(1, 3, "orthogonal", "")) })
}
