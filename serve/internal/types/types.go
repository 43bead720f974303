package types

import "github.com/HuXin0817/lattice-rooms/pkg/session"

type SessionPath struct {
	Id string `path:"id"`
}

type CreateSessionRequest struct {
	Size        int    `json:"size,optional"`
	TargetRooms int    `json:"targetRooms,optional"`
	Preset      string `json:"preset,optional,options=orthogonal|orthogonal-diagonals|custom"`
	Directions  string `json:"directions,optional"`
}

type PointRequest struct {
	Id string `path:"id"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

type MoveRequest struct {
	Id string `path:"id"`
	Ax int    `json:"ax"`
	Ay int    `json:"ay"`
	Bx int    `json:"bx"`
	By int    `json:"by"`
}

type UpdateConfigRequest struct {
	Id          string  `path:"id"`
	Size        *int    `json:"size,optional"`
	TargetRooms *int    `json:"targetRooms,optional"`
	Preset      *string `json:"preset,optional"`
	Directions  *string `json:"directions,optional"`
}

type PlayerRequest struct {
	Id     string `path:"id"`
	Player int    `path:"player"`
	AI     bool   `json:"ai"`
}

type SessionResponse = session.Snapshot

// PlayResponse carries the session after a move attempt. A rejected move is
// reported in Error with the session unchanged.
type PlayResponse struct {
	Session session.Snapshot `json:"session"`
	Error   *ErrorResponse   `json:"error,omitempty"`
}

type AIMoveResponse struct {
	Moved   bool             `json:"moved"`
	Session session.Snapshot `json:"session"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
