package logic

import (
	"context"
	"fmt"

	"github.com/HuXin0817/lattice-rooms/pkg/geom"
	"github.com/HuXin0817/lattice-rooms/pkg/models/game"
	"github.com/HuXin0817/lattice-rooms/pkg/session"
	"github.com/HuXin0817/lattice-rooms/serve/internal/svc"
	"github.com/HuXin0817/lattice-rooms/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type SessionLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewSessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SessionLogic {
	return &SessionLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Create starts a session. An empty request uses the service defaults.
func (l *SessionLogic) Create(req *types.CreateSessionRequest) (*types.SessionResponse, error) {
	if *req == (types.CreateSessionRequest{}) {
		s, err := l.svcCtx.Sessions.Create(nil)
		if err != nil {
			return nil, err
		}
		snap := s.Snapshot()
		return &snap, nil
	}

	defaults, preset, err := svc.DefaultGame(l.svcCtx.Config)
	if err != nil {
		return nil, err
	}

	dirs := defaults.Directions
	switch {
	case req.Directions != "":
		if dirs, err = game.ParseDirections(req.Directions); err != nil {
			return nil, err
		}
	case req.Preset != "" && game.Preset(req.Preset) != preset:
		found := false
		if dirs, found = game.PresetDirections(game.Preset(req.Preset)); !found {
			return nil, fmt.Errorf("%w: preset %q has no directions", session.ErrInvalidConfig, req.Preset)
		}
	}

	c := game.NewConfig(req.Size, req.TargetRooms, dirs)
	s, err := l.svcCtx.Sessions.Create(&c)
	if err != nil {
		return nil, err
	}

	l.Infof("created session %s for %dx%d board", s.ID(), c.Size, c.Size)
	snap := s.Snapshot()
	return &snap, nil
}

func (l *SessionLogic) Get(req *types.SessionPath) (*types.SessionResponse, error) {
	s, err := l.svcCtx.Sessions.Get(req.Id)
	if err != nil {
		return nil, err
	}

	snap := s.Snapshot()
	return &snap, nil
}

func (l *SessionLogic) Delete(req *types.SessionPath) error {
	return l.svcCtx.Sessions.Delete(req.Id)
}

func (l *SessionLogic) NewGame(req *types.SessionPath) (*types.SessionResponse, error) {
	s, err := l.svcCtx.Sessions.Get(req.Id)
	if err != nil {
		return nil, err
	}

	snap := s.StartNewGame()
	return &snap, nil
}

func (l *SessionLogic) ClearSelection(req *types.SessionPath) (*types.SessionResponse, error) {
	s, err := l.svcCtx.Sessions.Get(req.Id)
	if err != nil {
		return nil, err
	}

	snap := s.ClearSelection()
	return &snap, nil
}

// Select marks a point without submitting anything.
func (l *SessionLogic) Select(req *types.PointRequest) (*types.SessionResponse, error) {
	s, err := l.svcCtx.Sessions.Get(req.Id)
	if err != nil {
		return nil, err
	}

	snap := s.SelectPoint(geom.NewPoint(req.X, req.Y))
	return &snap, nil
}
