// Package search implements the three Iterated Width engine algorithms:
// plain BFS, BFS with exact duplicate pruning, and IW(1..n) novelty
// pruning, plus the statistics each run produces.
package search

import (
	"github.com/sokobox/iwsolve/board"
	"github.com/sokobox/iwsolve/internal/assert"
)

// Run validates cfg and dispatches to the selected algorithm. A negative
// piece count in initial is an invariant violation: it panics in a debug
// build and is returned as an InvariantViolation EngineError otherwise.
func Run(initial *board.State, cfg Config) (*Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	assert.Assert(initial.NumPieces >= 0, "search: negative piece count")
	if initial.NumPieces < 0 {
		return nil, &EngineError{Kind: InvariantViolation, Message: "negative piece count"}
	}
	switch cfg.Algorithm {
	case 1:
		return Algorithm1(initial, cfg)
	case 2:
		return Algorithm2(initial, cfg)
	default:
		return Algorithm3(initial, cfg)
	}
}

// checkLimit reports a ResourceExhausted EngineError once expanded reaches
// cfg.MaxStates (zero means unbounded).
func checkLimit(expanded int, cfg Config) error {
	if cfg.MaxStates > 0 && expanded >= cfg.MaxStates {
		return &EngineError{Kind: ResourceExhausted, Message: "reached configured max states"}
	}
	return nil
}

// invariantError wraps a move package error (piece or direction out of
// range) as the search-level diagnostic a release build surfaces once an
// invariant is violated.
func invariantError(err error) error {
	return &EngineError{Kind: InvariantViolation, Message: err.Error()}
}
