package search

import (
	"time"

	"github.com/sokobox/iwsolve/bitpack"
	"github.com/sokobox/iwsolve/board"
	"github.com/sokobox/iwsolve/move"
	"github.com/sokobox/iwsolve/queue"
	"github.com/sokobox/iwsolve/radix"
)

// Algorithm2 is breadth-first search with exact duplicate pruning: a child
// whose packed key has already been seen is dropped and counted as
// duplicated instead of enqueued.
func Algorithm2(initial *board.State, cfg Config) (*Stats, error) {
	start := time.Now()

	widths := bitpack.ComputeWidths(initial.NumPieces, initial.Height, initial.Width)
	nbits := widths.PackedSize(initial.NumPieces) * 8

	seen := radix.NewSet()
	seen.Insert(packedKey(initial), nbits)

	q := queue.New()
	q.Push(initial)

	expanded, generated, duplicated := 0, 0, 0
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

				key := packedKey(child)
				if seen.Contains(key, nbits) {
					duplicated++
					continue
				}
				seen.Insert(key, nbits)
				generated++
				q.Push(child)
			}
		}
	}
	q.Drain()

	return finishStats(winner, initial, expanded, generated, duplicated, seen.MemoryBytes(), initial.NumPieces, time.Since(start)), nil
}

func packedKey(s *board.State) []byte {
	return bitpack.Encode(s.PieceX, s.PieceY, s.Height, s.Width)
}
