package loader

import (
	"bytes"
	"os"

	"github.com/sokobox/iwsolve/board"
	"github.com/sokobox/iwsolve/internal/scan"
)

// Load reads a map file from path and turns it into a board.State ready for
// search: rows parsed, background derived, player and pieces located, and
// the whole grid validated against the cell alphabet.
func Load(path string) (*board.State, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Kind: ReadFailed, Path: path, Row: -1, Cause: err}
	}

	rows := splitRows(raw)
	if len(rows) == 0 {
		return nil, &LoadError{Kind: EmptyFile, Path: path, Row: -1}
	}

	width := len(rows[0])
	for i, row := range rows {
		if !scan.IsASCII(row) {
			return nil, &LoadError{Kind: NonASCII, Path: path, Row: i}
		}
		if len(row) != width {
			return nil, &LoadError{Kind: RaggedRows, Path: path, Row: i}
		}
	}

	s := &board.State{
		Height: len(rows),
		Width:  width,
		Map:    rows,
	}
	s.Background = deriveBackground(rows)

	if err := Validate(s); err != nil {
		return nil, err
	}
	if err := FindPlayer(s); err != nil {
		return nil, err
	}
	if err := FindPieces(s); err != nil {
		return nil, err
	}
	return s, nil
}

// splitRows breaks raw into lines on '\n', trimming a trailing '\r' from
// each and dropping the empty trailing row a final newline produces.
func splitRows(raw []byte) [][]byte {
	lines := bytes.Split(raw, []byte{'\n'})
	if len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	rows := make([][]byte, len(lines))
	for i, line := range lines {
		rows[i] = bytes.TrimSuffix(line, []byte{'\r'})
	}
	return rows
}

// deriveBackground computes the immutable floor beneath every cell: walls
// and goal markers pass through unchanged, while piece and actor cells
// become plain floor (the data model never lets a piece start already
// sitting on a goal; doing so in a map file has to be spelled with the
// piece's digit and no goal marker underneath).
func deriveBackground(rows [][]byte) [][]byte {
	bg := make([][]byte, len(rows))
	for y, row := range rows {
		bgRow := make([]byte, len(row))
		for x, c := range row {
			if board.IsDigit(c) || c == ActorGlyph {
				bgRow[x] = board.Empty
			} else {
				bgRow[x] = c
			}
		}
		bg[y] = bgRow
	}
	return bg
}
