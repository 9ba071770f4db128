package http

import "ludo-server/internal/room"

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status      string `json:"status"`
	Rooms       int    `json:"rooms"`
	Connections int    `json:"connections"`
}

// RoomListResponse is returned by GET /rooms.
type RoomListResponse struct {
	Rooms []room.View `json:"rooms"`
}

// PathResponse is returned by GET /paths/:color.
type PathResponse struct {
	Color  int   `json:"color"`
	Fields []int `json:"fields"`
}

// ServerConfigResponse tells clients how to reach the game endpoint.
type ServerConfigResponse struct {
	WSPath      string `json:"wsPath"`
	MaxPlayers  int    `json:"maxPlayers"`
	PathLength  int    `json:"pathLength"`
	EntryIndex  int    `json:"entryIndex"`
	ReadLimit   int64  `json:"readLimit"`
	RoomIDChars int    `json:"roomIdLength"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
