package search

import (
	"time"

	"github.com/sokobox/iwsolve/bitpack"
	"github.com/sokobox/iwsolve/board"
	"github.com/sokobox/iwsolve/move"
	"github.com/sokobox/iwsolve/queue"
	"github.com/sokobox/iwsolve/radix"
)

// Algorithm3 is Iterated Width search: for widths w = 1, 2, ..., maxWidth it
// restarts BFS from the initial state with w fresh k-subset radix trees,
// pruning any child that introduces no novel s-combination of piece atoms
// for any s in 1..w. The first width at which a solution is found wins.
func Algorithm3(initial *board.State, cfg Config) (*Stats, error) {
	start := time.Now()

	maxWidth := cfg.MaxWidth
	if maxWidth <= 0 || maxWidth > initial.NumPieces {
		maxWidth = initial.NumPieces
	}

	if initial.NumPieces == 0 {
		// Boundary behaviour: num_pieces = 0 terminates the outer loop
		// immediately, no search performed.
		return finishStats(nil, initial, 0, 0, 0, 0, 0, time.Since(start)), nil
	}

	widths := bitpack.ComputeWidths(initial.NumPieces, initial.Height, initial.Width)
	initKey := packedKey(initial)

	expanded, duplicated := 0, 0
	generated := 1 // the initial state counts toward generated, even when the map is solved immediately
	var winner *board.State
	auxBytes := 0
	solvedWidth := maxWidth

	for w := 1; w <= maxWidth; w++ {
		trees := make([]*radix.SubsetSet, w+1) // trees[1..w]; trees[0] unused
		for s := 1; s <= w; s++ {
			trees[s] = radix.NewSubsetSet(s)
			trees[s].InsertAllCombinations(initKey, initial.NumPieces, widths)
		}

		q := queue.New()
		q.Push(initial)
		found := false

		for !q.IsEmpty() {
			cur, _ := q.Pop()
			expanded++
			if err := checkLimit(expanded, cfg); err != nil {
				return nil, err
			}

			if cur.Winning() {
				winner = cur
				found = true
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
					novel := false
					for s := 1; s <= w; s++ {
						if trees[s].ContainsAnyMissingCombination(key, initial.NumPieces, widths) {
							novel = true
						}
						trees[s].InsertAllCombinations(key, initial.NumPieces, widths)
					}

					if novel {
						generated++
						q.Push(child)
					} else {
						duplicated++
					}
				}
			}
		}
		q.Drain()

		auxBytes = 0
		for s := 1; s <= w; s++ {
			auxBytes += trees[s].MemoryBytes()
		}

		if found {
			solvedWidth = w
			break
		}
	}

	return finishStats(winner, initial, expanded, generated, duplicated, auxBytes, solvedWidth, time.Since(start)), nil
}
