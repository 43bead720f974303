package logic

import (
	"context"
	"fmt"

	"github.com/HuXin0817/lattice-rooms/pkg/models/game"
	"github.com/HuXin0817/lattice-rooms/pkg/session"
	"github.com/HuXin0817/lattice-rooms/serve/internal/svc"
	"github.com/HuXin0817/lattice-rooms/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type SettingsLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewSettingsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SettingsLogic {
	return &SettingsLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// UpdateConfig applies the fields that are set. Nothing changes unless
// every field is valid.
func (l *SettingsLogic) UpdateConfig(req *types.UpdateConfigRequest) (*types.SessionResponse, error) {
	s, err := l.svcCtx.Sessions.Get(req.Id)
	if err != nil {
		return nil, err
	}

	update := session.ConfigUpdate{
		Directions:  req.Directions,
		Size:        req.Size,
		TargetRooms: req.TargetRooms,
	}
	if req.Preset != nil {
		preset := game.Preset(*req.Preset)
		update.Preset = &preset
	}

	snap, err := s.Configure(update)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// SetPlayer toggles AI control for player 1 or 2.
func (l *SettingsLogic) SetPlayer(req *types.PlayerRequest) (*types.SessionResponse, error) {
	if req.Player != 1 && req.Player != 2 {
		return nil, fmt.Errorf("%w: %d", session.ErrInvalidPlayer, req.Player)
	}

	s, err := l.svcCtx.Sessions.Get(req.Id)
	if err != nil {
		return nil, err
	}

	snap, err := s.SetAIPlayer(game.Turn(req.Player-1), req.AI)
	if err != nil {
		return nil, err
	}

	l.Infof("session %s: player %d AI %t", req.Id, req.Player, req.AI)
	return &snap, nil
}
