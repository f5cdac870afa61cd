package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/dominoes/internal/analysis"
)

// renderDetail renders the counters shown under the board.
func renderDetail(m *Model) string {
	s := analysis.Stats(m.hand)

	var lines []string
	lines = append(lines, panelTitleStyle.Render("Counts"))
	lines = append(lines, "")
	lines = append(lines, detailRow("Double Numbers", s.Doubles))
	lines = append(lines, detailRow("Pairs", s.Pairs))
	lines = append(lines, detailRow("Threes", s.Threes))
	lines = append(lines, "")
	lines = append(lines, detailRow("Tiles", s.Tiles))
	lines = append(lines, detailRow("Pip Total", s.PipTotal))

	return strings.Join(lines, "\n")
}

// renderDetailPanel wraps detail in a styled panel.
func renderDetailPanel(m *Model, width int) string {
	return panelStyle.Width(maxInt(width-2, 1)).Render(renderDetail(m))
}

// ── helpers ──

func detailRow(label string, value int) string {
	valueStyle := detailValueStyle
	if label == "Threes" && value > 0 {
		valueStyle = valueStyle.Foreground(colorYellow)
	}
	return detailLabelStyle.Render(fmt.Sprintf("%-15s", label)) + valueStyle.Render(fmt.Sprintf("%d", value))
}
