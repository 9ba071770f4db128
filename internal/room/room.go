package room

import (
	"errors"
	"time"

	"ludo-server/internal/game"
)

const MaxMembers = 4

const (
	PhaseLobby  = "lobby"
	PhaseActive = "active"
)

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomFull       = errors.New("room is full")
	ErrNotInRoom      = errors.New("session is not in a room")
	ErrGameNotStarted = errors.New("game has not started")
)

// Turn is present once the room is active.
type Turn struct {
	CurrentPlayer  int `json:"currentPlayer"`
	AvailableMoves int `json:"availableMoves"`
}

type Room struct {
	Code       string
	Members    []Session // join order
	ReadyCount int
	Pieces     game.Pieces
	Turn       *Turn
	Seats      map[int]Session // player number -> session, set on start
	CreatedAt  time.Time
}

func newRoom(code string) *Room {
	return &Room{
		Code:      code,
		Pieces:    game.NewPieces(),
		CreatedAt: time.Now(),
	}
}

func (r *Room) Has(s Session) bool {
	for _, m := range r.Members {
		if m == s {
			return true
		}
	}
	return false
}

func (r *Room) Full() bool {
	return len(r.Members) >= MaxMembers
}

func (r *Room) Phase() string {
	if r.Turn != nil {
		return PhaseActive
	}
	return PhaseLobby
}

// IsSeatHolder reports whether s occupies the given seat.
func (r *Room) IsSeatHolder(seat int, s Session) bool {
	if r.Seats == nil {
		return false
	}
	holder, ok := r.Seats[seat]
	return ok && holder == s
}

// SeatOf returns the player number of s, or 0 before the game starts.
func (r *Room) SeatOf(s Session) int {
	for seat, holder := range r.Seats {
		if holder == s {
			return seat
		}
	}
	return 0
}

// View is a copy of a room's state safe to hand out of the manager.
type View struct {
	Code       string      `json:"code"`
	Members    int         `json:"members"`
	ReadyCount int         `json:"readyCount"`
	Phase      string      `json:"phase"`
	Turn       *Turn       `json:"turn,omitempty"`
	Pieces     game.Pieces `json:"pieces"`
	Finished   []int       `json:"finished,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func (r *Room) view() View {
	v := View{
		Code:       r.Code,
		Members:    len(r.Members),
		ReadyCount: r.ReadyCount,
		Phase:      r.Phase(),
		Pieces:     r.Pieces.Clone(),
		Finished:   game.Finished(r.Pieces),
		CreatedAt:  r.CreatedAt,
	}
	if r.Turn != nil {
		t := *r.Turn
		v.Turn = &t
	}
	return v
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(code string)
	Rooms() []*Room
}
