package loader

import "github.com/sokobox/iwsolve/board"

// ActorGlyph marks the player/actor cell in a map file. It never blocks
// piece movement and is never itself moved; FindPlayer records its
// position for informational purposes only.
const ActorGlyph = '@'

// goalBase is 'I', the first of the nine additional goal markers 'I'..'Q'.
// MoveOneStep treats them exactly like 'G': any piece covering one of them
// satisfies it.
const goalBase = 'I'

// maxPieceSpecificGoals bounds piece-specific goal markers to the nine
// letters 'I'..'Q'.
const maxPieceSpecificGoals = 'Q' - goalBase + 1

// satisfiedBase is 'a', the first of the ten satisfied-goal overlays
// 'a'..'j' that Map (never Background, never a loaded file) uses to record
// that piece id = glyph - satisfiedBase currently occupies some goal cell.
// These never appear in an input map file: see DESIGN.md's account of this
// open question.
const satisfiedBase = 'a'

// inputAlphabet lists every glyph Validate accepts in a freshly loaded map
// file: the ten piece digits and all nine piece-specific goal markers, since
// the piece census hasn't been computed yet at this point in loading.
// Satisfied-goal overlays are deliberately excluded: they are Map's internal
// vocabulary for states the search produces, never input.
func inputAlphabet() []byte {
	alphabet := []byte{board.Empty, board.Wall, board.Goal, ActorGlyph}
	for i := 0; i < 10; i++ {
		alphabet = append(alphabet, byte('0'+i))
	}
	for i := 0; i < maxPieceSpecificGoals; i++ {
		alphabet = append(alphabet, byte(goalBase+i))
	}
	return alphabet
}
