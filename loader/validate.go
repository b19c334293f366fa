package loader

import (
	"github.com/coregx/ahocorasick"
	"github.com/sokobox/iwsolve/board"
)

// Validate scans s.Map for glyphs outside the cell alphabet. It runs before
// find_player and find_pieces, so it checks against the full candidate
// alphabet (every digit, every piece-specific goal letter) rather than the
// state's actual piece census.
//
// The scan itself is an Aho-Corasick automaton over the (small, fixed) set
// of one-byte alphabet patterns: a "many short literals, one pass" matcher,
// the same approach worth reaching for whenever a pattern set compiles down
// to nothing but a literal alternation.
func Validate(s *board.State) error {
	automaton, err := buildAlphabetAutomaton()
	if err != nil {
		return err
	}

	for y, row := range s.Map {
		pos := 0
		for pos < len(row) {
			m := automaton.Find(row, pos)
			if m == nil || m.Start != pos {
				return &ValidateError{Kind: BadGlyph, Row: y, Col: pos}
			}
			pos = m.End
		}
	}
	return nil
}

func buildAlphabetAutomaton() (*ahocorasick.Automaton, error) {
	builder := ahocorasick.NewBuilder()
	for _, c := range inputAlphabet() {
		builder.AddPattern([]byte{c})
	}
	return builder.Build()
}
