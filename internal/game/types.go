package game

import (
	"sort"
	"strconv"
	"strings"
)

const (
	NumColors      = 4
	PiecesPerColor = 4
	NumPieces      = NumColors * PiecesPerColor // 16

	TrackLength = 40
	PathLength  = PiecesPerColor + TrackLength + PiecesPerColor // 48

	// Field id layout: 1-16 home slots, 17-32 finish slots, 33-72 shared track.
	FirstHomeField   = 1
	FirstFinishField = FirstHomeField + NumPieces // 17
	FirstTrackField  = FirstFinishField + NumPieces // 33
	LastTrackField   = FirstTrackField + TrackLength - 1 // 72

	// Path index of the first track cell, where a piece leaving home lands.
	EntryIndex = PiecesPerColor
)

// Pieces maps piece id (1..16) to the field id it currently occupies.
type Pieces map[int]int

// NewPieces returns the start position: every piece on the home slot with its own id.
func NewPieces() Pieces {
	p := make(Pieces, NumPieces)
	for id := 1; id <= NumPieces; id++ {
		p[id] = id
	}
	return p
}

// Clone returns an independent copy.
func (p Pieces) Clone() Pieces {
	out := make(Pieces, len(p))
	for id, field := range p {
		out[id] = field
	}
	return out
}

// OccupantOf returns the lowest piece id standing on field.
func (p Pieces) OccupantOf(field int) (int, bool) {
	for _, id := range p.ids() {
		if p[id] == field {
			return id, true
		}
	}
	return 0, false
}

// String renders the table as comma separated "pieceId:fieldId" pairs.
func (p Pieces) String() string {
	pairs := make([]string, 0, len(p))
	for _, id := range p.ids() {
		pairs = append(pairs, strconv.Itoa(id)+":"+strconv.Itoa(p[id]))
	}
	return strings.Join(pairs, ",")
}

func (p Pieces) ids() []int {
	ids := make([]int, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ColorOfPiece returns the color owning a piece id, 0 when the id is out of range.
func ColorOfPiece(id int) int {
	if id < 1 || id > NumPieces {
		return 0
	}
	return (id-1)/PiecesPerColor + 1
}

// Move describes a piece movement request after the caller resolved policy.
type Move struct {
	Piece   int
	Color   int
	Steps   int
	Capture bool
}
