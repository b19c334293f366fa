// Package iwsolve solves grid-based sliding-piece puzzles by Iterated
// Width search.
//
// Given a map file, Solve loads and validates it, then runs the configured
// search algorithm (plain BFS, BFS with exact duplicate pruning, or
// IW(1..n) novelty pruning) to find a sequence of (piece, direction)
// moves that satisfies every goal cell.
//
// Basic usage:
//
//	stats, err := iwsolve.Solve("puzzle.txt", search.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(stats)
package iwsolve

import (
	"github.com/sokobox/iwsolve/loader"
	"github.com/sokobox/iwsolve/search"
)

// Solve loads the map at path and runs cfg's configured algorithm against
// it, returning the run's statistics.
func Solve(path string, cfg search.Config) (*search.Stats, error) {
	s, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	return search.Run(s, cfg)
}
