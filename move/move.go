// Package move applies a single piece move to a board state, producing a
// child state whether or not the move actually displaced the piece.
package move

import (
	"fmt"

	"github.com/sokobox/iwsolve/board"
	"github.com/sokobox/iwsolve/internal/assert"
	"github.com/sokobox/iwsolve/loader"
)

// Directions enumerates the four piece moves, in the fixed order the search
// expands them.
const (
	Up    = 'u'
	Down  = 'd'
	Left  = 'l'
	Right = 'r'
)

// Directions lists the four moves in expansion order.
var Directions = [4]byte{Up, Down, Left, Right}

// Invert returns the opposite direction of dir.
func Invert(dir byte) byte {
	switch dir {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return 0
	}
}

// ErrInvalidPiece is returned when piece does not name one of the state's
// pieces.
var ErrInvalidPiece = fmt.Errorf("move: invalid piece digit")

// ErrInvalidDirection is returned when dir is not one of Up, Down, Left,
// Right.
var ErrInvalidDirection = fmt.Errorf("move: invalid direction")

func isValidDirection(dir byte) bool {
	return dir == Up || dir == Down || dir == Left || dir == Right
}

// Apply expands s by moving piece one step in direction dir. For a valid
// piece and direction it always returns a child state distinct from s (an
// invalid one yields a nil child and ErrInvalidPiece or
// ErrInvalidDirection): the child's solution is extended
// by (piece, dir) before the move is attempted, win or lose. moved reports
// whether the piece's coordinates actually changed; a rejected move still
// yields a usable, if useless, child, which callers should simply not
// enqueue.
func Apply(s *board.State, piece, dir byte) (child *board.State, moved bool, err error) {
	id := int(piece - '0')
	valid := piece >= '0' && id < s.NumPieces
	assert.Assert(valid, "move: piece digit out of range")
	if !valid {
		return nil, false, ErrInvalidPiece
	}
	assert.Assert(isValidDirection(dir), "move: direction out of range")
	if !isValidDirection(dir) {
		return nil, false, ErrInvalidDirection
	}

	prevX, prevY := s.PieceX[id], s.PieceY[id]

	child = s.Clone()
	child.SetMove(piece, dir)

	loader.MoveOneStep(child, id, dir)

	moved = child.PieceX[id] != prevX || child.PieceY[id] != prevY
	return child, moved, nil
}
