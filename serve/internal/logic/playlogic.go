package logic

import (
	"context"
	"errors"

	"github.com/HuXin0817/lattice-rooms/pkg/geom"
	"github.com/HuXin0817/lattice-rooms/pkg/models/game"
	"github.com/HuXin0817/lattice-rooms/pkg/session"
	"github.com/HuXin0817/lattice-rooms/serve/internal/svc"
	"github.com/HuXin0817/lattice-rooms/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type PlayLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewPlayLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PlayLogic {
	return &PlayLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *PlayLogic) Point(req *types.PointRequest) (*types.PlayResponse, error) {
	s, err := l.svcCtx.Sessions.Get(req.Id)
	if err != nil {
		return nil, err
	}

	return l.respond(s.HandlePoint(geom.NewPoint(req.X, req.Y)))
}

func (l *PlayLogic) Move(req *types.MoveRequest) (*types.PlayResponse, error) {
	s, err := l.svcCtx.Sessions.Get(req.Id)
	if err != nil {
		return nil, err
	}

	return l.respond(s.Play(game.NewMove(req.Ax, req.Ay, req.Bx, req.By)))
}

func (l *PlayLogic) respond(snap session.Snapshot, err error) (*types.PlayResponse, error) {
	var moveErr *game.MoveError
	switch {
	case err == nil:
		return &types.PlayResponse{Session: snap}, nil
	case errors.As(err, &moveErr):
		l.Debugf("session %s rejected move: %v", snap.ID, moveErr)
		return &types.PlayResponse{
			Session: snap,
			Error:   &types.ErrorResponse{Code: string(moveErr.Code), Message: moveErr.Message},
		}, nil
	default:
		return nil, err
	}
}

func (l *PlayLogic) AIMove(req *types.SessionPath) (*types.AIMoveResponse, error) {
	s, err := l.svcCtx.Sessions.Get(req.Id)
	if err != nil {
		return nil, err
	}

	snap, moved := s.RequestAIMove()
	return &types.AIMoveResponse{
		Moved:   moved,
		Session: snap,
	}, nil
}
