package loader

import "github.com/sokobox/iwsolve/board"

// delta returns the (dx, dy) unit displacement for a direction byte, or
// (0, 0) for an unrecognized one.
func delta(dir byte) (dx, dy int) {
	switch dir {
	case 'u':
		return 0, -1
	case 'd':
		return 0, 1
	case 'l':
		return -1, 0
	case 'r':
		return 1, 0
	default:
		return 0, 0
	}
}

// MoveOneStep attempts to slide piece id one cell in direction dir within
// s, mutating s.Map and s.PieceX/PieceY in place. Blocked by the grid edge,
// a wall, or another piece, the piece simply doesn't move and s is left as
// it was found.
//
// A piece landing on an unsatisfied-goal cell is rendered as a
// satisfied-goal overlay rather than its bare digit, so board.Winning can
// tell a covered goal from an empty one by looking at Map alone. Leaving
// that cell later restores the goal marker from Background, since a goal's
// satisfaction is a function of what currently sits on it, not a one-time
// transition.
func MoveOneStep(s *board.State, id int, dir byte) {
	dx, dy := delta(dir)
	x, y := s.PieceX[id], s.PieceY[id]
	nx, ny := x+dx, y+dy

	if ny < 0 || ny >= s.Height || nx < 0 || nx >= s.Width {
		return
	}
	if s.Background[ny][nx] == board.Wall {
		return
	}
	for other := 0; other < s.NumPieces; other++ {
		if other != id && s.PieceX[other] == nx && s.PieceY[other] == ny {
			return
		}
	}

	s.Map[y][x] = s.Background[y][x]
	if board.IsUnsatisfiedGoal(s.Background[ny][nx]) {
		s.Map[ny][nx] = byte(satisfiedBase + id)
	} else {
		s.Map[ny][nx] = byte('0' + id)
	}
	s.PieceX[id], s.PieceY[id] = nx, ny
}
