package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/HuXin0817/lattice-rooms/pkg/models/game"
	"github.com/HuXin0817/lattice-rooms/pkg/session"
	"github.com/HuXin0817/lattice-rooms/serve/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func init() {
	httpx.SetErrorHandlerCtx(ErrorHandler)
}

// ErrorHandler maps domain errors to a status code and a JSON body.
func ErrorHandler(_ context.Context, err error) (int, any) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound, types.ErrorResponse{Code: "not_found", Message: err.Error()}
	case errors.Is(err, session.ErrAIPlayerTurn):
		return http.StatusConflict, types.ErrorResponse{Code: "ai_turn", Message: err.Error()}
	case errors.Is(err, session.ErrInvalidConfig), errors.Is(err, game.ErrDirectionText):
		return http.StatusBadRequest, types.ErrorResponse{Code: "invalid_config", Message: err.Error()}
	case errors.Is(err, session.ErrInvalidPlayer):
		return http.StatusBadRequest, types.ErrorResponse{Code: "invalid_player", Message: err.Error()}
	default:
		return http.StatusBadRequest, types.ErrorResponse{Code: "bad_request", Message: err.Error()}
	}
}
