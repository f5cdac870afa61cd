// Package tui implements the interactive domino board.
//
// Built with Charmbracelet's BubbleTea and Lipgloss. The model holds the
// only copy of the hand; every key press that changes it calls a pure
// transform from package domino and replaces the hand wholesale.
//
// Component architecture:
//
//	model.go    root model, key routing, Init/Update/View
//	theme.go    palette and styles, tile faces from config
//	header.go   top bar and footer hints
//	board.go    tile faces drawn as 3×3 dot grids
//	detail.go   counters panel
//	diffview.go what the last action added or removed
//	strip.go    the "[a,b]" manipulate strip
//	helpers.go  clamping and wrapping helpers
package tui
