package shared

import (
	"errors"
	"strings"
)

// Commands accepted from clients. Most of them are also echoed to the other
// members of the room under the same name.
const (
	CmdCreate       = "create"
	CmdJoin         = "join"
	CmdReady        = "ready"
	CmdVisualRoll   = "visualroll"
	CmdNextPlayer   = "nextplayer"
	CmdPieceOutRoll = "pieceoutroll"
	CmdRoll         = "roll"
	CmdMove         = "move"
	CmdMoveWin      = "movewin"
	CmdMovePieceOut = "movepieceout"
)

// Responses that only the server emits.
const (
	RespCreated = "created"
	RespJoined  = "joined"
	RespStart   = "start"
	RespError   = "error"
)

// Error kinds carried by "error:<kind>" frames.
const (
	KindRoomNotFound       = "roomnotfound"
	KindRoomFull           = "roomfull"
	KindPlayerDisconnected = "playerdisconnected"
)

var ErrMalformedFrame = errors.New("malformed frame")

// Frame is one text message of the form COMMAND:DATA.
type Frame struct {
	Command string `json:"command"`
	Data    string `json:"data"`
}

// ParseFrame splits raw on the first ':'. Data is empty when there is no separator.
func ParseFrame(raw string) (Frame, error) {
	command, data, _ := strings.Cut(raw, ":")
	if command == "" {
		return Frame{}, ErrMalformedFrame
	}
	return Frame{Command: command, Data: data}, nil
}

func (f Frame) String() string {
	return f.Command + ":" + f.Data
}

// NewFrame builds a frame for sending.
func NewFrame(command, data string) Frame {
	return Frame{Command: command, Data: data}
}

// ErrorFrame builds an "error:<kind>" frame.
func ErrorFrame(kind string) Frame {
	return Frame{Command: RespError, Data: kind}
}
