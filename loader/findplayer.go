package loader

import (
	"github.com/sokobox/iwsolve/board"
	"github.com/sokobox/iwsolve/internal/scan"
)

// FindPlayer locates the actor glyph in s.Map, if present. A map with no
// actor is valid (s.HasPlayer stays false); a map with more than one actor
// is not.
func FindPlayer(s *board.State) error {
	found := false
	for y, row := range s.Map {
		x := scan.ByteIndex(row, ActorGlyph)
		if x < 0 {
			continue
		}
		if found {
			return &ValidateError{Kind: MultiplePlayers, Row: y, Col: x}
		}
		found = true
		s.PlayerX, s.PlayerY = x, y
		s.HasPlayer = true

		if rest := scan.ByteIndex(row[x+1:], ActorGlyph); rest >= 0 {
			return &ValidateError{Kind: MultiplePlayers, Row: y, Col: x + 1 + rest}
		}
	}
	return nil
}
