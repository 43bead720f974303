package svc

import (
	"fmt"

	"github.com/HuXin0817/lattice-rooms/pkg/assess"
	"github.com/HuXin0817/lattice-rooms/pkg/geom"
	"github.com/HuXin0817/lattice-rooms/pkg/models/game"
	"github.com/HuXin0817/lattice-rooms/pkg/session"
	"github.com/HuXin0817/lattice-rooms/serve/internal/config"
)

type ServiceContext struct {
	Config   config.Config
	Sessions *session.Manager
}

func NewServiceContext(c config.Config, options ...session.Option) (*ServiceContext, error) {
	defaults, preset, err := DefaultGame(c)
	if err != nil {
		return nil, err
	}

	options = append([]session.Option{
		session.WithDefaultConfig(defaults, preset),
		session.WithSearchOptions(
			assess.WithDepth(c.Game.SearchDepth),
			assess.WithParallel(c.Game.Parallel),
		),
	}, options...)

	return &ServiceContext{
		Config:   c,
		Sessions: session.NewManager(options...),
	}, nil
}

func MustNewServiceContext(c config.Config) *ServiceContext {
	svcCtx, err := NewServiceContext(c)
	if err != nil {
		panic(err)
	}
	return svcCtx
}

// DefaultGame resolves the Game section into the config new sessions start with.
func DefaultGame(c config.Config) (game.Config, game.Preset, error) {
	preset := game.Preset(c.Game.Preset)

	var dirs []geom.Direction
	if preset == game.Custom {
		parsed, err := game.ParseDirections(c.Game.Directions)
		if err != nil {
			return game.Config{}, "", err
		}
		dirs = parsed
	} else {
		presetDirs, found := game.PresetDirections(preset)
		if !found {
			return game.Config{}, "", fmt.Errorf("unknown preset %q", preset)
		}
		dirs = presetDirs
	}

	defaults := game.NewConfig(c.Game.Size, c.Game.TargetRooms, dirs)
	if err := session.ValidateConfig(defaults); err != nil {
		return game.Config{}, "", err
	}
	return defaults, preset, nil
}
