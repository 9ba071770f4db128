package ws

import "ludo-server/internal/room"

// Handler receives the connection lifecycle events of every session.
type Handler interface {
	Opened(s room.Session)
	Handle(s room.Session, msg string)
	Closed(s room.Session)
}
