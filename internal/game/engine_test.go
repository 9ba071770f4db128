package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPieces(t *testing.T) {
	p := NewPieces()
	require.Len(t, p, NumPieces)
	for id := 1; id <= NumPieces; id++ {
		assert.Equal(t, id, p[id])
	}
}

func TestPieces_String(t *testing.T) {
	p := NewPieces()
	assert.Equal(t, "1:1,2:2,3:3,4:4,5:5,6:6,7:7,8:8,9:9,10:10,11:11,12:12,13:13,14:14,15:15,16:16", p.String())
}

func TestResolveMove_Standard(t *testing.T) {
	p := NewPieces()
	p[1] = 33

	_, err := ResolveMove(p, Move{Piece: 1, Color: 1, Steps: 5, Capture: true})
	require.NoError(t, err)
	assert.Equal(t, 38, p[1])
}

func TestResolveMove_CaptureRehomesToLowestFreeSlot(t *testing.T) {
	p := NewPieces()
	// color 2 has pieces 5 and 6 out; slot 5 is free, slot 6 is free
	p[5] = 40
	p[6] = 50
	p[1] = 35

	_, err := ResolveMove(p, Move{Piece: 1, Color: 1, Steps: 5, Capture: true})
	require.NoError(t, err)
	assert.Equal(t, 40, p[1])
	assert.Equal(t, 5, p[5], "captured piece goes to the lowest free home slot")
	assert.Equal(t, 50, p[6])

	// now slot 5 is taken, the next capture uses slot 6
	p[2] = 48
	_, err = ResolveMove(p, Move{Piece: 2, Color: 1, Steps: 2, Capture: true})
	require.NoError(t, err)
	assert.Equal(t, 50, p[2])
	assert.Equal(t, 6, p[6])
}

func TestResolveMove_CaptureUsesOccupantColor(t *testing.T) {
	p := NewPieces()
	p[13] = 63
	p[14] = 64
	p[9] = 60 // color 3 piece

	_, err := ResolveMove(p, Move{Piece: 9, Color: 3, Steps: 4, Capture: true})
	require.NoError(t, err)
	assert.Equal(t, 64, p[9])
	assert.Equal(t, 13, p[14], "first free slot of color 4 is 13")
	assert.Equal(t, 63, p[13])
}

func TestResolveMove_WithoutCaptureLeavesOccupant(t *testing.T) {
	p := NewPieces()
	p[1] = 70
	p[2] = 18 // own piece in finish

	_, err := ResolveMove(p, Move{Piece: 1, Color: 1, Steps: 4, Capture: false})
	require.NoError(t, err)
	assert.Equal(t, 18, p[1])
	assert.Equal(t, 18, p[2])
}

func TestResolveMove_OutOfRange(t *testing.T) {
	p := NewPieces()
	p[1] = 19 // finish index 46

	before := p.Clone()
	_, err := ResolveMove(p, Move{Piece: 1, Color: 1, Steps: 2, Capture: true})
	assert.ErrorIs(t, err, ErrMoveOutOfRange)
	assert.Equal(t, before, p)
}

func TestResolveMove_Errors(t *testing.T) {
	p := NewPieces()

	_, err := ResolveMove(p, Move{Piece: 1, Color: 9, Steps: 1})
	assert.ErrorIs(t, err, ErrInvalidColor)

	_, err = ResolveMove(p, Move{Piece: 17, Color: 1, Steps: 1})
	assert.ErrorIs(t, err, ErrUnknownPiece)

	// piece 5 sits in color 2's home, which is not on color 1's path
	_, err = ResolveMove(p, Move{Piece: 5, Color: 1, Steps: 1})
	assert.ErrorIs(t, err, ErrFieldNotOnPath)
}

func TestMovePieceOut(t *testing.T) {
	p := NewPieces()

	_, err := MovePieceOut(p, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, Path(1)[EntryIndex], p[3])
}

func TestMovePieceOut_CapturesOccupant(t *testing.T) {
	p := NewPieces()
	p[7] = 43 // color 2 piece resting on color 2's entry

	_, err := MovePieceOut(p, 8, 2)
	require.NoError(t, err)
	assert.Equal(t, 43, p[8])
	assert.Equal(t, 7, p[7])
}

func TestMovePieceOut_CapturesOpponent(t *testing.T) {
	p := NewPieces()
	p[1] = 53

	_, err := MovePieceOut(p, 9, 3)
	require.NoError(t, err)
	assert.Equal(t, 53, p[9])
	assert.Equal(t, 1, p[1])
}

func TestRehome_AllSlotsTakenStaysPut(t *testing.T) {
	p := Pieces{1: 40, 2: 1, 3: 2, 4: 3, 5: 4}
	rehome(p, 1)
	assert.Equal(t, 40, p[1])
}

func TestCapture_EveryTrackFieldIsConsistent(t *testing.T) {
	for color := 1; color <= NumColors; color++ {
		for steps := 1; steps <= 6; steps++ {
			p := NewPieces()
			mover := HomeField(color, 0)
			victimColor := color%NumColors + 1
			victim := HomeField(victimColor, 1)

			p[mover] = Path(color)[EntryIndex]
			target := Path(color)[EntryIndex+steps]
			p[victim] = target

			_, err := ResolveMove(p, Move{Piece: mover, Color: color, Steps: steps, Capture: true})
			require.NoError(t, err)
			assert.Equal(t, target, p[mover])
			assert.Equal(t, HomeField(victimColor, 1), p[victim])
		}
	}
}
