package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidColor   = errors.New("invalid color")
	ErrUnknownPiece   = errors.New("unknown piece")
	ErrFieldNotOnPath = errors.New("piece is not on the color path")
	ErrMoveOutOfRange = errors.New("move leaves the color path")
)

// ResolveMove walks m.Piece m.Steps cells along the path of m.Color and places
// it there, re-homing whatever piece stood on the target when m.Capture is set.
// The table is mutated in place and returned for broadcasting. On error the
// table is left untouched.
func ResolveMove(p Pieces, m Move) (Pieces, error) {
	if !ValidColor(m.Color) {
		return p, fmt.Errorf("%w: %d", ErrInvalidColor, m.Color)
	}
	field, ok := p[m.Piece]
	if !ok {
		return p, fmt.Errorf("%w: %d", ErrUnknownPiece, m.Piece)
	}

	path := Path(m.Color)
	current := PathIndex(m.Color, field)
	if current < 0 {
		return p, fmt.Errorf("%w: piece %d on field %d, color %d", ErrFieldNotOnPath, m.Piece, field, m.Color)
	}

	target := current + m.Steps
	if target < 0 || target >= len(path) {
		return p, fmt.Errorf("%w: piece %d index %d%+d, color %d", ErrMoveOutOfRange, m.Piece, current, m.Steps, m.Color)
	}

	place(p, m.Piece, path[target], m.Capture)
	return p, nil
}

// MovePieceOut puts a piece on the first track cell of the color's path,
// regardless of where it stood, capturing any occupant.
func MovePieceOut(p Pieces, piece, color int) (Pieces, error) {
	if !ValidColor(color) {
		return p, fmt.Errorf("%w: %d", ErrInvalidColor, color)
	}
	if _, ok := p[piece]; !ok {
		return p, fmt.Errorf("%w: %d", ErrUnknownPiece, piece)
	}

	place(p, piece, Path(color)[EntryIndex], true)
	return p, nil
}

func place(p Pieces, piece, target int, capture bool) {
	if capture {
		if occupant, ok := p.OccupantOf(target); ok {
			rehome(p, occupant)
		}
	}
	p[piece] = target
}

// rehome sends a piece to the lowest free home slot of its own color. When all
// four are taken the piece stays where it is.
func rehome(p Pieces, piece int) {
	color := ColorOfPiece(piece)
	if color == 0 {
		return
	}
	for n := 0; n < PiecesPerColor; n++ {
		home := HomeField(color, n)
		if _, taken := p.OccupantOf(home); !taken {
			p[piece] = home
			return
		}
	}
}
