package handler

import (
	"net/http"

	"github.com/HuXin0817/lattice-rooms/serve/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func Routes(serverCtx *svc.ServiceContext) []rest.Route {
	return []rest.Route{
		{Method: http.MethodPost, Path: "/sessions", Handler: CreateSessionHandler(serverCtx)},
		{Method: http.MethodGet, Path: "/sessions/:id", Handler: GetSessionHandler(serverCtx)},
		{Method: http.MethodDelete, Path: "/sessions/:id", Handler: DeleteSessionHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/sessions/:id/new", Handler: NewGameHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/sessions/:id/points", Handler: PointHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/sessions/:id/selection", Handler: SelectHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/sessions/:id/selection/clear", Handler: ClearSelectionHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/sessions/:id/moves", Handler: MoveHandler(serverCtx)},
		{Method: http.MethodPost, Path: "/sessions/:id/ai", Handler: AIMoveHandler(serverCtx)},
		{Method: http.MethodPut, Path: "/sessions/:id/config", Handler: UpdateConfigHandler(serverCtx)},
		{Method: http.MethodPut, Path: "/sessions/:id/players/:player", Handler: SetPlayerHandler(serverCtx)},
	}
}

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(Routes(serverCtx), rest.WithPrefix("/api"))
}
