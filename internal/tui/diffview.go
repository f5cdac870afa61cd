package tui

import (
	"strings"

	"github.com/Mr-Dark-debug/dominoes/internal/domino"
)

// renderDiff shows what the last action took off or put on the table,
// in the style of a unified diff.
func renderDiff(m *Model, width int) string {
	title := panelTitleStyle.Render("Last Change")
	if m.lastAction == "" {
		return title + "\n\n" + dimStyle.Render("No changes yet.")
	}

	var lines []string
	lines = append(lines, title+"  "+dimStyle.Render(m.lastAction))
	lines = append(lines, "")

	if m.lastChange.Empty() {
		lines = append(lines, dimStyle.Render("  same tiles, new order"))
		return strings.Join(lines, "\n")
	}

	if len(m.lastChange.Removed) > 0 {
		lines = append(lines, diffDelStyle.Render(wrapTiles("- ", m.lastChange.Removed, width)))
	}
	if len(m.lastChange.Added) > 0 {
		lines = append(lines, diffAddStyle.Render(wrapTiles("+ ", m.lastChange.Added, width)))
	}
	return strings.Join(lines, "\n")
}

// renderDiffPanel wraps the change log in a styled panel.
func renderDiffPanel(m *Model, width int) string {
	return panelStyle.Width(maxInt(width-2, 1)).Render(renderDiff(m, width-6))
}

// wrapTiles prints tiles after prefix, continuing on indented lines
// once width is reached.
func wrapTiles(prefix string, h domino.Hand, width int) string {
	indent := strings.Repeat(" ", len(prefix))
	var b strings.Builder
	line := prefix
	for i, t := range h {
		s := t.String()
		if i > 0 && len(line)+1+len(s) > width {
			b.WriteString(line + "\n")
			line = indent
		} else if i > 0 {
			line += " "
		}
		line += s
	}
	b.WriteString(line)
	return b.String()
}
