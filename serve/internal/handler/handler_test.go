package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/HuXin0817/lattice-rooms/pkg/geom"
	"github.com/HuXin0817/lattice-rooms/pkg/models/game"
	"github.com/HuXin0817/lattice-rooms/pkg/session"
	"github.com/HuXin0817/lattice-rooms/serve/internal/config"
	"github.com/HuXin0817/lattice-rooms/serve/internal/svc"
	"github.com/HuXin0817/lattice-rooms/serve/internal/types"
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/router"
)

func TestMain(m *testing.M) {
	logx.Disable()
	os.Exit(m.Run())
}

type testServer struct {
	t      *testing.T
	router http.Handler
}

func newTestServer(t *testing.T) *testServer {
	var c config.Config
	c.Game.Size = 4
	c.Game.TargetRooms = 10
	c.Game.Preset = string(game.Orthogonal)
	c.Game.SearchDepth = 2

	svcCtx, err := svc.NewServiceContext(c, session.WithSeed(1))
	require.NoError(t, err)

	r := router.NewRouter()
	for _, route := range Routes(svcCtx) {
		require.NoError(t, r.Handle(route.Method, route.Path, route.Handler))
	}
	return &testServer{t: t, router: r}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) snapshot(w *httptest.ResponseRecorder, code int) session.Snapshot {
	require.Equal(s.t, code, w.Code, w.Body.String())
	var snap session.Snapshot
	require.NoError(s.t, sonic.Unmarshal(w.Body.Bytes(), &snap))
	return snap
}

func (s *testServer) failure(w *httptest.ResponseRecorder, code int) types.ErrorResponse {
	require.Equal(s.t, code, w.Code, w.Body.String())
	var resp types.ErrorResponse
	require.NoError(s.t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *testServer) play(w *httptest.ResponseRecorder) types.PlayResponse {
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var resp types.PlayResponse
	require.NoError(s.t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *testServer) create() string {
	snap := s.snapshot(s.do(http.MethodPost, "/sessions", ""), http.StatusCreated)
	require.NotEmpty(s.t, snap.ID)
	return snap.ID
}

func TestCreateAndGet(t *testing.T) {
	s := newTestServer(t)

	snap := s.snapshot(s.do(http.MethodPost, "/sessions", ""), http.StatusCreated)
	assert.Equal(t, 4, snap.Config.Size)
	assert.Equal(t, 10, snap.Config.TargetRooms)
	assert.Equal(t, game.Orthogonal, snap.Preset)

	got := s.snapshot(s.do(http.MethodGet, "/sessions/"+snap.ID, ""), http.StatusOK)
	assert.Equal(t, snap.ID, got.ID)
	assert.Equal(t, 1, got.Game.Rooms)

	custom := s.snapshot(s.do(http.MethodPost, "/sessions", `{"size":6,"targetRooms":4,"directions":"1,1;1,-1"}`), http.StatusCreated)
	assert.Equal(t, 6, custom.Config.Size)
	assert.Equal(t, 4, custom.Config.TargetRooms)
	assert.Equal(t, game.Custom, custom.Preset)
	assert.Equal(t, []geom.Direction{{DX: 1, DY: 1}, {DX: 1, DY: -1}}, custom.Game.Config.Directions)

	resp := s.failure(s.do(http.MethodPost, "/sessions", `{"size":99}`), http.StatusBadRequest)
	assert.Equal(t, "invalid_config", resp.Code)
}

func TestUnknownSession(t *testing.T) {
	s := newTestServer(t)

	resp := s.failure(s.do(http.MethodGet, "/sessions/nope", ""), http.StatusNotFound)
	assert.Equal(t, "not_found", resp.Code)

	s.failure(s.do(http.MethodPost, "/sessions/nope/ai", ""), http.StatusNotFound)
	s.failure(s.do(http.MethodDelete, "/sessions/nope", ""), http.StatusNotFound)
}

func TestPointsAndMoves(t *testing.T) {
	s := newTestServer(t)
	id := s.create()

	resp := s.play(s.do(http.MethodPost, "/sessions/"+id+"/points", `{"x":2,"y":0}`))
	assert.Nil(t, resp.Error)
	require.NotNil(t, resp.Session.Selected)

	resp = s.play(s.do(http.MethodPost, "/sessions/"+id+"/points", `{"x":2,"y":3}`))
	assert.Nil(t, resp.Error)
	assert.Nil(t, resp.Session.Selected)
	assert.Equal(t, 2, resp.Session.Game.Rooms)
	assert.Equal(t, game.Player2, resp.Session.Game.NowPlayer)
	assert.Len(t, resp.Session.Segments, 1)

	resp = s.play(s.do(http.MethodPost, "/sessions/"+id+"/moves", `{"ax":0,"ay":0,"bx":1,"by":1}`))
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(game.CodeDirectionNotAllowed), resp.Error.Code)
	assert.Equal(t, 1, resp.Session.Game.MoveNumber)

	resp = s.play(s.do(http.MethodPost, "/sessions/"+id+"/moves", `{"ax":2,"ay":1,"bx":2,"by":2}`))
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(game.CodeDuplicateLine), resp.Error.Code)

	// A rejected click keeps the first point selected.
	s.play(s.do(http.MethodPost, "/sessions/"+id+"/points", `{"x":0,"y":0}`))
	resp = s.play(s.do(http.MethodPost, "/sessions/"+id+"/points", `{"x":0,"y":4}`))
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(game.CodeLineMatchesBoundary), resp.Error.Code)
	require.NotNil(t, resp.Session.Selected)
	assert.Equal(t, resp.Error.Message, resp.Session.Message)

	resp = s.play(s.do(http.MethodPost, "/sessions/"+id+"/moves", `{"ax":0,"ay":2,"bx":1,"by":2}`))
	assert.Nil(t, resp.Error)
	assert.Equal(t, 4, resp.Session.Game.Rooms)
	assert.Len(t, resp.Session.Intersections, 1)

	snap := s.snapshot(s.do(http.MethodPost, "/sessions/"+id+"/new", ""), http.StatusOK)
	assert.Equal(t, 0, snap.Game.MoveNumber)
}

func TestSelection(t *testing.T) {
	s := newTestServer(t)
	id := s.create()

	snap := s.snapshot(s.do(http.MethodPost, "/sessions/"+id+"/selection", `{"x":1,"y":1}`), http.StatusOK)
	require.NotNil(t, snap.Selected)
	assert.Equal(t, geom.NewPoint(1, 1), *snap.Selected)

	snap = s.snapshot(s.do(http.MethodPost, "/sessions/"+id+"/selection/clear", ""), http.StatusOK)
	assert.Nil(t, snap.Selected)
}

func TestUpdateConfig(t *testing.T) {
	s := newTestServer(t)
	id := s.create()

	snap := s.snapshot(s.do(http.MethodPut, "/sessions/"+id+"/config", `{"size":6,"targetRooms":3}`), http.StatusOK)
	assert.Equal(t, 6, snap.Config.Size)
	assert.Equal(t, 3, snap.Config.TargetRooms)

	snap = s.snapshot(s.do(http.MethodPut, "/sessions/"+id+"/config", `{"preset":"orthogonal-diagonals"}`), http.StatusOK)
	assert.Equal(t, game.OrthogonalDiagonals, snap.Preset)
	assert.Len(t, snap.Game.Config.Directions, 4)

	snap = s.snapshot(s.do(http.MethodPut, "/sessions/"+id+"/config", `{"directions":"2,1"}`), http.StatusOK)
	assert.Equal(t, game.Custom, snap.Preset)
	assert.Equal(t, []geom.Direction{{DX: 2, DY: 1}}, snap.Game.Config.Directions)

	resp := s.failure(s.do(http.MethodPut, "/sessions/"+id+"/config", `{"directions":"two,one"}`), http.StatusBadRequest)
	assert.Equal(t, "invalid_config", resp.Code)

	s.failure(s.do(http.MethodPut, "/sessions/"+id+"/config", `{"size":1}`), http.StatusBadRequest)

	resp = s.failure(s.do(http.MethodPut, "/sessions/"+id+"/config", `{"targetRooms":0}`), http.StatusBadRequest)
	assert.Equal(t, "invalid_config", resp.Code)

	got := s.snapshot(s.do(http.MethodGet, "/sessions/"+id, ""), http.StatusOK)
	assert.Equal(t, 3, got.Config.TargetRooms)
	assert.Equal(t, game.Playing, got.Game.Status)
}

func TestUpdateConfigIsAllOrNothing(t *testing.T) {
	s := newTestServer(t)
	id := s.create()

	s.play(s.do(http.MethodPost, "/sessions/"+id+"/moves", `{"ax":2,"ay":0,"bx":2,"by":1}`))

	resp := s.failure(s.do(http.MethodPut, "/sessions/"+id+"/config", `{"preset":"orthogonal-diagonals","size":99}`), http.StatusBadRequest)
	assert.Equal(t, "invalid_config", resp.Code)

	snap := s.snapshot(s.do(http.MethodGet, "/sessions/"+id, ""), http.StatusOK)
	assert.Equal(t, game.Orthogonal, snap.Preset)
	assert.Len(t, snap.Game.Config.Directions, 2)
	assert.Equal(t, 4, snap.Config.Size)
	assert.Equal(t, 1, snap.Game.MoveNumber)
}

func TestAIPlayer(t *testing.T) {
	s := newTestServer(t)
	id := s.create()

	s.failure(s.do(http.MethodPut, "/sessions/"+id+"/players/3", `{"ai":true}`), http.StatusBadRequest)

	snap := s.snapshot(s.do(http.MethodPut, "/sessions/"+id+"/players/1", `{"ai":true}`), http.StatusOK)
	assert.Equal(t, [2]bool{true, false}, snap.AIPlayers)

	resp := s.failure(s.do(http.MethodPost, "/sessions/"+id+"/points", `{"x":2,"y":0}`), http.StatusConflict)
	assert.Equal(t, "ai_turn", resp.Code)

	w := s.do(http.MethodPost, "/sessions/"+id+"/ai", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var ai types.AIMoveResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &ai))
	assert.True(t, ai.Moved)
	assert.Equal(t, 1, ai.Session.Game.MoveNumber)

	// Player 2 is human, so the AI stays put.
	w = s.do(http.MethodPost, "/sessions/"+id+"/ai", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &ai))
	assert.False(t, ai.Moved)
}

func TestDeleteSession(t *testing.T) {
	s := newTestServer(t)
	id := s.create()

	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, "/sessions/"+id, "").Code)
	s.failure(s.do(http.MethodGet, "/sessions/"+id, ""), http.StatusNotFound)
}
