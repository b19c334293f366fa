package loader

import (
	"github.com/sokobox/iwsolve/board"
	"github.com/sokobox/iwsolve/internal/scan"
)

// maxPieces bounds the piece census: one decimal digit per id.
const maxPieces = 10

// FindPieces determines s.NumPieces from the highest digit present in
// s.Map, then locates each piece id's unique cell. A map where some id in
// [0, NumPieces) is absent or appears more than once is rejected: piece ids
// must run 0..NumPieces-1 with no gaps and no repeats.
func FindPieces(s *board.State) error {
	maxID := -1
	for _, row := range s.Map {
		for pos := 0; pos < len(row); {
			idx := scan.DigitIndexAt(row, pos)
			if idx < 0 {
				break
			}
			if id := int(row[idx] - '0'); id > maxID {
				maxID = id
			}
			pos = idx + 1
		}
	}
	if maxID < 0 {
		return &ValidateError{Kind: NoPieces, Row: -1, Col: -1}
	}
	numPieces := maxID + 1
	if numPieces > maxPieces {
		return &ValidateError{Kind: TooManyPieces, Row: -1, Col: numPieces}
	}

	pieceX := make([]int, numPieces)
	pieceY := make([]int, numPieces)
	count := make([]int, numPieces)
	for y, row := range s.Map {
		for pos := 0; pos < len(row); {
			idx := scan.DigitIndexAt(row, pos)
			if idx < 0 {
				break
			}
			id := int(row[idx] - '0')
			count[id]++
			pieceX[id], pieceY[id] = idx, y
			pos = idx + 1
		}
	}
	for id := 0; id < numPieces; id++ {
		if count[id] == 0 {
			return &ValidateError{Kind: MissingPiece, Row: -1, Col: id}
		}
		if count[id] > 1 {
			return &ValidateError{Kind: DuplicatePiece, Row: -1, Col: id}
		}
	}

	s.NumPieces = numPieces
	s.PieceX = pieceX
	s.PieceY = pieceY
	return nil
}
