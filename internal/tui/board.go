package tui

import (
	"strings"

	"github.com/Mr-Dark-debug/dominoes/internal/domino"
)

const (
	dotMark   = "●"
	blankMark = " "
)

// renderBoard lays the hand out on the table, wrapping rows to width.
func renderBoard(m *Model, width int) string {
	inner := maxInt(width-6, 8) // border + padding

	if len(m.hand) == 0 {
		empty := emptyStateStyle.Render("No tiles on the table.\n\n" +
			"Press r to reset or n to add one.")
		return tableStyle.Width(maxInt(width-2, 1)).Render(empty)
	}

	tiles := make([]string, len(m.hand))
	for i, t := range m.hand {
		tiles[i] = renderTile(m.faceFor(t), t)
	}

	return tableStyle.Width(maxInt(width-2, 1)).Render(wrapBlocks(tiles, inner, 1))
}

// faceFor picks the face color for t. Doubles win over duplicates.
func (m *Model) faceFor(t domino.Tile) tileFace {
	switch {
	case t.IsDouble():
		return m.styles.double
	case domino.IsDuplicated(m.hand, t):
		return m.styles.duplicate
	default:
		return m.styles.plain
	}
}

// renderTile draws one upright tile: A on top, B below, a rule between.
func renderTile(face tileFace, t domino.Tile) string {
	var lines []string
	lines = append(lines, renderHalf(face, t.A)...)
	lines = append(lines, face.divider.Render(strings.Repeat("─", 5)))
	lines = append(lines, renderHalf(face, t.B)...)
	return face.box.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// renderHalf draws the 3×3 dot grid for pip as three rows of five cells.
func renderHalf(face tileFace, pip int) []string {
	grid := domino.DotGrid(pip)
	gap := face.dot.Render(" ")

	rows := make([]string, 3)
	for r := 0; r < 3; r++ {
		cells := make([]string, 3)
		for c := 0; c < 3; c++ {
			mark := blankMark
			if grid[r*3+c] {
				mark = dotMark
			}
			cells[c] = face.dot.Render(mark)
		}
		rows[r] = strings.Join(cells, gap)
	}
	return rows
}
