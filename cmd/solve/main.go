// Command solve runs the Iterated Width engine against a single map file
// and prints its statistics to standard output.
//
// Usage:
//
//	solve [-algo 1|2|3] [-max-width N] [-max-states N] <map-path>
//
// Flags must come before the map path.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sokobox/iwsolve"
	"github.com/sokobox/iwsolve/search"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	algo := fs.Int("algo", 3, "search algorithm: 1 (BFS), 2 (BFS + exact dedup), 3 (Iterated Width)")
	maxWidth := fs.Int("max-width", 0, "cap Algorithm 3's outer width loop (0: puzzle's own piece count)")
	maxStates := fs.Int("max-states", 0, "abort after expanding this many states (0: unbounded)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: solve [-algo 1|2|3] [-max-width N] [-max-states N] <map-path>")
		return 2
	}

	cfg := search.Config{Algorithm: *algo, MaxWidth: *maxWidth, MaxStates: *maxStates}
	stats, err := iwsolve.Solve(fs.Arg(0), cfg)
	if err != nil {
		fmt.Fprintf(stderr, "solve: %v\n", err)
		return 1
	}

	fmt.Fprint(stdout, stats)
	return 0
}
