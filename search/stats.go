package search

import "fmt"

// Stats reports the outcome of one search run, in the exact field set and
// order printed to the user.
type Stats struct {
	Solution          string
	ElapsedSeconds    float64
	Expanded          int
	Generated         int
	Duplicated        int
	AuxMemoryBytes    int
	NumPieces         int
	Steps             int
	EmptySpaces       int
	SolvedWidth       int
	ExpandedPerSecond float64
}

// String renders the statistics block in the fixed report format.
func (s Stats) String() string {
	return fmt.Sprintf(
		"Solution path: %s\n"+
			"Execution time: %g\n"+
			"Expanded nodes: %d\n"+
			"Generated nodes: %d\n"+
			"Duplicated nodes: %d\n"+
			"Auxiliary memory usage (bytes): %d\n"+
			"Number of pieces in the puzzle: %d\n"+
			"Number of steps in solution: %d\n"+
			"Number of empty spaces: %d\n"+
			"Solved by IW(%d)\n"+
			"Number of nodes expanded per second: %g\n",
		s.Solution, s.ElapsedSeconds, s.Expanded, s.Generated, s.Duplicated,
		s.AuxMemoryBytes, s.NumPieces, s.Steps, s.EmptySpaces, s.SolvedWidth,
		s.ExpandedPerSecond,
	)
}

func expandedPerSecond(expanded int, elapsed float64) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(expanded) / elapsed
}
