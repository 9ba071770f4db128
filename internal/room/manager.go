package room

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"ludo-server/internal/config"
	"ludo-server/internal/game"
	"ludo-server/internal/shared"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MoveKind selects the policy applied to a piece move.
type MoveKind int

const (
	MoveStandard MoveKind = iota // availableMoves steps, capture
	MoveWin                      // availableMoves steps, no capture
	MovePieceOut                 // onto the first track cell, capture
)

func (k MoveKind) Command() string {
	switch k {
	case MoveWin:
		return shared.CmdMoveWin
	case MovePieceOut:
		return shared.CmdMovePieceOut
	default:
		return shared.CmdMove
	}
}

// Manager owns every room. A single mutex serializes all state changes,
// lookups and the broadcasts that follow them.
type Manager struct {
	mu    sync.Mutex
	store Store
	cfg   config.Config
	log   *logrus.Logger
}

func NewManager(s Store, cfg config.Config, log *logrus.Logger) *Manager {
	return &Manager{store: s, cfg: cfg, log: log}
}

// CreateRoom allocates a room with a fresh code and puts s in it.
func (m *Manager) CreateRoom(s Session) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := newRoom(m.newCode())
	r.Members = append(r.Members, s)
	m.store.SaveRoom(r)

	m.log.WithFields(logrus.Fields{"room": r.Code, "session": s.ID()}).Info("room created")
	return r.Code
}

func (m *Manager) newCode() string {
	n := m.cfg.Room.IDLength
	if n <= 0 || n > 32 {
		n = 6
	}
	for {
		code := strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
		if _, taken := m.store.GetRoom(code); !taken {
			return code
		}
	}
}

func (m *Manager) JoinRoom(code string, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	// Members is a set: joining a room twice is accepted and changes nothing.
	if r.Has(s) {
		return nil
	}
	if r.Full() {
		return ErrRoomFull
	}
	r.Members = append(r.Members, s)
	m.store.SaveRoom(r)

	m.log.WithFields(logrus.Fields{
		"room":    code,
		"session": s.ID(),
		"members": len(r.Members),
	}).Info("session joined room")
	return nil
}

// FindRoomBySession returns a copy of the first room containing s.
func (m *Manager) FindRoomBySession(s Session) (View, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.roomOf(s)
	if !ok {
		return View{}, false
	}
	return r.view(), true
}

func (m *Manager) roomOf(s Session) (*Room, bool) {
	for _, r := range m.store.Rooms() {
		if r.Has(s) {
			return r, true
		}
	}
	return nil, false
}

func (m *Manager) DestroyRoom(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destroy(code)
}

func (m *Manager) destroy(code string) {
	m.store.DeleteRoom(code)
	m.log.WithField("room", code).Info("room destroyed")
}

// SetReady moves the ready counter of every room holding s. A room whose
// counter reaches exactly four for the first time starts the game.
func (m *Manager) SetReady(s Session, ready bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	found := false
	for _, r := range m.store.Rooms() {
		if !r.Has(s) {
			continue
		}
		found = true
		if ready {
			r.ReadyCount++
		} else {
			r.ReadyCount--
		}
		if r.ReadyCount == MaxMembers && r.Seats == nil {
			m.start(r)
		}
		m.store.SaveRoom(r)
	}
	if !found {
		return ErrNotInRoom
	}
	return nil
}

// start seats the members in join order and tells each its player number.
func (m *Manager) start(r *Room) {
	r.Turn = &Turn{CurrentPlayer: 1}
	r.Seats = make(map[int]Session, len(r.Members))
	for i, member := range r.Members {
		seat := i + 1
		r.Seats[seat] = member
		m.send(member, shared.NewFrame(shared.RespStart, strconv.Itoa(seat)))
	}
	m.log.WithFields(logrus.Fields{"room": r.Code, "players": len(r.Seats)}).Info("game started")
}

// activeRoomOf returns the room of s, requiring the game to have started.
func (m *Manager) activeRoomOf(s Session) (*Room, error) {
	r, ok := m.roomOf(s)
	if !ok {
		return nil, ErrNotInRoom
	}
	if r.Turn == nil {
		return nil, fmt.Errorf("room %s: %w", r.Code, ErrGameNotStarted)
	}
	return r, nil
}

// AdvanceTurn passes the turn on when s holds the current seat. Requests
// from anyone else are ignored and report false.
func (m *Manager) AdvanceTurn(s Session) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.activeRoomOf(s)
	if err != nil {
		return false, err
	}
	if !r.IsSeatHolder(r.Turn.CurrentPlayer, s) {
		m.log.WithFields(logrus.Fields{
			"room":    r.Code,
			"session": s.ID(),
			"seat":    r.SeatOf(s),
			"current": r.Turn.CurrentPlayer,
		}).Debug("nextplayer from non-current player ignored")
		return false, nil
	}

	r.Turn.CurrentPlayer = r.Turn.CurrentPlayer%MaxMembers + 1
	m.store.SaveRoom(r)
	m.broadcast(r, s, shared.NewFrame(shared.CmdNextPlayer, strconv.Itoa(r.Turn.CurrentPlayer)))
	return true, nil
}

// SetAvailableMoves records a roll. Any member may call it; data is relayed
// to the others verbatim.
func (m *Manager) SetAvailableMoves(s Session, n int, data string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.activeRoomOf(s)
	if err != nil {
		return err
	}
	r.Turn.AvailableMoves = n
	m.store.SaveRoom(r)
	m.broadcast(r, s, shared.NewFrame(shared.CmdRoll, data))
	return nil
}

// Relay forwards a cosmetic frame to the other members of the sender's room.
func (m *Manager) Relay(s Session, f shared.Frame) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.roomOf(s)
	if !ok {
		return ErrNotInRoom
	}
	m.broadcast(r, s, f)
	return nil
}

// MovePiece applies a move for the current player's color and broadcasts the
// resulting piece table to the other members.
func (m *Manager) MovePiece(s Session, kind MoveKind, piece int) (game.Pieces, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.activeRoomOf(s)
	if err != nil {
		return nil, err
	}

	color := r.Turn.CurrentPlayer
	switch kind {
	case MovePieceOut:
		_, err = game.MovePieceOut(r.Pieces, piece, color)
	default:
		_, err = game.ResolveMove(r.Pieces, game.Move{
			Piece:   piece,
			Color:   color,
			Steps:   r.Turn.AvailableMoves,
			Capture: kind == MoveStandard,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("room %s: %w", r.Code, err)
	}
	m.store.SaveRoom(r)
	m.log.WithFields(logrus.Fields{
		"room":    r.Code,
		"session": s.ID(),
		"seat":    r.SeatOf(s),
		"color":   color,
		"piece":   piece,
		"command": kind.Command(),
	}).Debug("piece moved")
	if kind == MoveWin && game.HasFinished(r.Pieces, color) {
		m.log.WithFields(logrus.Fields{"room": r.Code, "color": color}).Info("color finished")
	}

	m.broadcast(r, s, shared.NewFrame(kind.Command(), r.Pieces.String()))
	return r.Pieces.Clone(), nil
}

// Disconnect tears down every room holding s after telling the remaining
// members. It returns the codes of the destroyed rooms.
func (m *Manager) Disconnect(s Session) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var codes []string
	for _, r := range m.store.Rooms() {
		if !r.Has(s) {
			continue
		}
		m.broadcast(r, s, shared.ErrorFrame(shared.KindPlayerDisconnected))
		m.destroy(r.Code)
		codes = append(codes, r.Code)
	}
	return codes
}

func (m *Manager) Get(code string) (View, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(code)
	if !ok {
		return View{}, false
	}
	return r.view(), true
}

func (m *Manager) List() []View {
	m.mu.Lock()
	defer m.mu.Unlock()

	rooms := m.store.Rooms()
	out := make([]View, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.view())
	}
	return out
}
