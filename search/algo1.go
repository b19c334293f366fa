package search

import (
	"time"

	"github.com/sokobox/iwsolve/board"
	"github.com/sokobox/iwsolve/move"
	"github.com/sokobox/iwsolve/queue"
)

// Algorithm1 is uninformed breadth-first search: every accepted child is
// enqueued, with no duplicate detection. duplicated is always 0.
func Algorithm1(initial *board.State, cfg Config) (*Stats, error) {
	start := time.Now()

	q := queue.New()
	q.Push(initial)

	expanded, generated := 0, 0
	var winner *board.State

	for !q.IsEmpty() {
		cur, _ := q.Pop()
		expanded++
		if err := checkLimit(expanded, cfg); err != nil {
			return nil, err
		}

		if cur.Winning() {
			winner = cur
			break
		}

		for piece := 0; piece < cur.NumPieces; piece++ {
			for _, dir := range move.Directions {
				child, moved, err := move.Apply(cur, byte('0'+piece), dir)
				if err != nil {
					return nil, invariantError(err)
				}
				if !moved {
					continue
				}
				generated++
				q.Push(child)
			}
		}
	}
	q.Drain()

	return finishStats(winner, initial, expanded, generated, 0, 0, initial.NumPieces, time.Since(start)), nil
}

// finishStats builds the final Stats block. winner is nil when the search
// exhausted the open list without finding a goal state.
func finishStats(winner, initial *board.State, expanded, generated, duplicated, auxBytes, solvedWidth int, elapsed time.Duration) *Stats {
	seconds := elapsed.Seconds()
	s := &Stats{
		ElapsedSeconds:    seconds,
		Expanded:          expanded,
		Generated:         generated,
		Duplicated:        duplicated,
		AuxMemoryBytes:    auxBytes,
		NumPieces:         initial.NumPieces,
		SolvedWidth:       solvedWidth,
		ExpandedPerSecond: expandedPerSecond(expanded, seconds),
	}
	if winner != nil {
		s.Solution = winner.Solution()
		s.Steps = winner.SolutionLen() / 2
		s.EmptySpaces = winner.EmptySpaces()
	}
	return s
}
