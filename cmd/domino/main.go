// domino: apply list transforms to a hand of domino tiles.
//
// Usage:
//
//	domino [--tiles JSON|-] <command> [flags]
//
// Commands:
//
//	sort      Sort tiles by pip total
//	dedupe    Remove every tile whose value appears more than once
//	flip      Swap the halves of every tile
//	remove    Remove tiles whose pips add up to a total
//	add       Add a tile, or remove it if already present
//	show      Print the hand with doubles and duplicates marked
//	stats     Count doubles, pairs and threes
//	tui       Open the interactive board
package main

import (
	"os"

	"github.com/Mr-Dark-debug/dominoes/internal/cli"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cli.SetVersion(Version, GitCommit, BuildTime)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
