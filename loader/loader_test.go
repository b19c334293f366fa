package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sokobox/iwsolve/board"
)

func writeMap(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadSimpleMap(t *testing.T) {
	path := writeMap(t, "#####\n#0  #\n#  G#\n#####\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Height != 4 || s.Width != 5 {
		t.Fatalf("dimensions = %dx%d, want 4x5", s.Height, s.Width)
	}
	if s.NumPieces != 1 {
		t.Fatalf("NumPieces = %d, want 1", s.NumPieces)
	}
	if s.PieceX[0] != 1 || s.PieceY[0] != 1 {
		t.Fatalf("piece 0 at (%d,%d), want (1,1)", s.PieceX[0], s.PieceY[0])
	}
	if s.HasPlayer {
		t.Fatal("HasPlayer = true, want false (no actor glyph present)")
	}
	if s.Winning() {
		t.Fatal("freshly loaded map with an unsatisfied goal reports Winning")
	}
}

func TestLoadAlreadySolvedMap(t *testing.T) {
	path := writeMap(t, "#####\n#0  #\n#####\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.Winning() {
		t.Fatal("map with no goal markers should already be winning")
	}
}

func TestLoadPlayerGlyph(t *testing.T) {
	path := writeMap(t, "#####\n#0@G#\n#####\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.HasPlayer {
		t.Fatal("HasPlayer = false, want true")
	}
	if s.PlayerX != 2 || s.PlayerY != 1 {
		t.Fatalf("player at (%d,%d), want (2,1)", s.PlayerX, s.PlayerY)
	}
	// the actor glyph is not part of the piece census
	if s.NumPieces != 1 {
		t.Fatalf("NumPieces = %d, want 1", s.NumPieces)
	}
}

func TestLoadRaggedRowsRejected(t *testing.T) {
	path := writeMap(t, "####\n#0 #\n#G#\n####\n")
	_, err := Load(path)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || loadErr.Kind != RaggedRows {
		t.Fatalf("err = %v, want RaggedRows LoadError", err)
	}
}

func TestLoadBadGlyphRejected(t *testing.T) {
	path := writeMap(t, "#####\n#0?G#\n#####\n")
	_, err := Load(path)
	var valErr *ValidateError
	if !errors.As(err, &valErr) || valErr.Kind != BadGlyph {
		t.Fatalf("err = %v, want BadGlyph ValidateError", err)
	}
}

func TestLoadDuplicatePieceRejected(t *testing.T) {
	path := writeMap(t, "#####\n#00 #\n#  G#\n#####\n")
	_, err := Load(path)
	var valErr *ValidateError
	if !errors.As(err, &valErr) || valErr.Kind != DuplicatePiece {
		t.Fatalf("err = %v, want DuplicatePiece ValidateError", err)
	}
}

func TestLoadMissingPieceRejected(t *testing.T) {
	// piece "1" appears with no piece "0", leaving a gap in the census.
	path := writeMap(t, "#####\n#1  #\n#  G#\n#####\n")
	_, err := Load(path)
	var valErr *ValidateError
	if !errors.As(err, &valErr) || valErr.Kind != MissingPiece {
		t.Fatalf("err = %v, want MissingPiece ValidateError", err)
	}
}

func TestLoadNoPiecesRejected(t *testing.T) {
	path := writeMap(t, "#####\n#   #\n#  G#\n#####\n")
	_, err := Load(path)
	var valErr *ValidateError
	if !errors.As(err, &valErr) || valErr.Kind != NoPieces {
		t.Fatalf("err = %v, want NoPieces ValidateError", err)
	}
}

func TestMoveOneStepBlockedByWall(t *testing.T) {
	s := mustLoad(t, "#####\n#0  #\n#  G#\n#####\n")
	MoveOneStep(s, 0, 'l')
	if s.PieceX[0] != 1 || s.PieceY[0] != 1 {
		t.Fatalf("piece moved through a wall to (%d,%d)", s.PieceX[0], s.PieceY[0])
	}
}

func TestMoveOneStepBlockedByPiece(t *testing.T) {
	s := mustLoad(t, "######\n#0 1 #\n#  G #\n######\n")
	MoveOneStep(s, 0, 'r')
	if s.PieceX[0] != 2 || s.PieceY[0] != 1 {
		t.Fatalf("piece 0 moved to (%d,%d), want (2,1) after one step right", s.PieceX[0], s.PieceY[0])
	}
	MoveOneStep(s, 0, 'r')
	if s.PieceX[0] != 2 || s.PieceY[0] != 1 {
		t.Fatalf("piece 0 moved into piece 1's cell: now at (%d,%d)", s.PieceX[0], s.PieceY[0])
	}
}

func TestMoveOneStepOntoGoalAndOff(t *testing.T) {
	s := mustLoad(t, "#####\n#0G #\n#####\n")
	MoveOneStep(s, 0, 'r')
	if s.Map[1][2] == board.Goal {
		t.Fatal("goal cell still shows unsatisfied marker after piece moved onto it")
	}
	if !s.Winning() {
		t.Fatal("the map's only goal is covered, so Winning() should now be true")
	}

	MoveOneStep(s, 0, 'r')
	if s.Map[1][1] != board.Empty {
		t.Fatalf("vacated non-goal cell = %q, want empty space", s.Map[1][1])
	}
	if s.Map[1][2] != board.Goal {
		t.Fatalf("goal reappears as %q after piece left, want %q", s.Map[1][2], byte(board.Goal))
	}
	if s.Winning() {
		t.Fatal("goal is uncovered again, so Winning() should be false")
	}
}

func mustLoad(t *testing.T, contents string) *board.State {
	t.Helper()
	path := writeMap(t, contents)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}
