// Package dispatch turns inbound COMMAND:DATA frames into room operations.
package dispatch

import (
	"errors"
	"fmt"
	"strconv"

	"ludo-server/internal/room"
	"ludo-server/internal/shared"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidNumber  = errors.New("invalid number")
)

type Dispatcher struct {
	rooms *room.Manager
	log   *logrus.Logger
}

func New(rooms *room.Manager, log *logrus.Logger) *Dispatcher {
	return &Dispatcher{rooms: rooms, log: log}
}

func (d *Dispatcher) Opened(s room.Session) {
	d.log.WithField("session", s.ID()).Info("client connected")
}

// Closed tears down the rooms of a departed session.
func (d *Dispatcher) Closed(s room.Session) {
	logCtx := d.log.WithField("session", s.ID())
	if v, ok := d.rooms.FindRoomBySession(s); ok {
		logCtx = logCtx.WithFields(logrus.Fields{"room": v.Code, "phase": v.Phase})
	}
	logCtx.Info("client disconnected")
	d.rooms.Disconnect(s)
}

// Handle processes one inbound frame. Any failure aborts only this message:
// it is logged and the connection stays open.
func (d *Dispatcher) Handle(s room.Session, raw string) {
	logCtx := d.log.WithField("session", s.ID())
	defer func() {
		if rec := recover(); rec != nil {
			logCtx.WithField("frame", raw).Errorf("handler panic: %v", rec)
		}
	}()

	logCtx.WithField("frame", raw).Debug("frame received")
	if err := d.dispatch(s, raw); err != nil {
		logCtx.WithField("frame", raw).WithError(err).Warn("frame rejected")
	}
}

func (d *Dispatcher) dispatch(s room.Session, raw string) error {
	f, err := shared.ParseFrame(raw)
	if err != nil {
		return err
	}

	switch f.Command {
	case shared.CmdCreate:
		code := d.rooms.CreateRoom(s)
		d.reply(s, shared.NewFrame(shared.RespCreated, code))
		return nil

	case shared.CmdJoin:
		return d.join(s, f.Data)

	case shared.CmdReady:
		return d.rooms.SetReady(s, f.Data == "true")

	case shared.CmdVisualRoll, shared.CmdPieceOutRoll:
		return d.rooms.Relay(s, f)

	case shared.CmdNextPlayer:
		_, err := d.rooms.AdvanceTurn(s)
		return err

	case shared.CmdRoll:
		n, err := atoi(f.Data)
		if err != nil {
			return err
		}
		return d.rooms.SetAvailableMoves(s, n, f.Data)

	case shared.CmdMove:
		return d.move(s, room.MoveStandard, f.Data)
	case shared.CmdMoveWin:
		return d.move(s, room.MoveWin, f.Data)
	case shared.CmdMovePieceOut:
		return d.move(s, room.MovePieceOut, f.Data)
	}
	return fmt.Errorf("%w: %q", ErrUnknownCommand, f.Command)
}

func (d *Dispatcher) join(s room.Session, code string) error {
	err := d.rooms.JoinRoom(code, s)
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		d.reply(s, shared.ErrorFrame(shared.KindRoomNotFound))
	case errors.Is(err, room.ErrRoomFull):
		d.reply(s, shared.ErrorFrame(shared.KindRoomFull))
	case err == nil:
		d.reply(s, shared.NewFrame(shared.RespJoined, code))
	default:
		return err
	}
	return nil
}

func (d *Dispatcher) move(s room.Session, kind room.MoveKind, data string) error {
	piece, err := atoi(data)
	if err != nil {
		return err
	}
	_, err = d.rooms.MovePiece(s, kind, piece)
	return err
}

func (d *Dispatcher) reply(s room.Session, f shared.Frame) {
	if err := s.Send(f.String()); err != nil {
		d.log.WithField("session", s.ID()).WithError(err).Debug("reply failed")
	}
}

func atoi(data string) (int, error) {
	n, err := strconv.Atoi(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, data)
	}
	return n, nil
}
