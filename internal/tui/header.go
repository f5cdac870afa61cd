package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/dominoes/internal/domino"
)

// renderHeader produces the top bar:
//
//	DOMINO'S TEST  |  7 tiles  |  sort key: asc
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("DOMINO'S TEST")
	sep := headerSepStyle.Render(" │ ")

	parts := []string{
		brand,
		sep,
		headerMetaStyle.Render(fmt.Sprintf("%d tiles", len(m.hand))),
		sep,
		headerMetaStyle.Render("sort key: " + string(m.order)),
	}

	content := strings.Join(parts, "")

	return headerBarStyle.Width(m.width).Render(content)
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	var left, right string

	switch m.mode {
	case ModeAdd:
		left = renderAddPrompt(m)
		right = renderHints([]hint{
			{"0-6 ↑↓", "pip"},
			{"tab", "field"},
			{"enter", "add/remove"},
			{"esc", "cancel"},
		})
	case ModeRemove:
		cursor := inputCursorStyle.Render(" ")
		left = inputBarStyle.Render(fmt.Sprintf("remove total: %s%s", m.totalInput, cursor))
		right = renderHints([]hint{
			{"enter", "remove"},
			{"esc", "cancel"},
		})
	default:
		if m.statusMsg != "" {
			if m.err != nil {
				left = statusErrStyle.Render(m.statusMsg)
			} else {
				left = statusStyle.Render(m.statusMsg)
			}
		}
		right = renderHints([]hint{
			{"a/d", "sort"},
			{"u", "dedupe"},
			{"f", "flip"},
			{"n", "add"},
			{"x", "remove"},
			{"r", "reset"},
			{"q", "quit"},
		})
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorSurface).
		Width(m.width).
		Render(bar)
}

// renderAddPrompt shows the two pip fields with the focused one highlighted.
func renderAddPrompt(m *Model) string {
	fields := make([]string, 2)
	for i, v := range m.newTile {
		style := inputFieldStyle
		if i == m.addField {
			style = inputFocusStyle
		}
		fields[i] = style.Render(fmt.Sprintf("%d", v))
	}
	label := fmt.Sprintf("tile (%d-%d):", domino.MinPip, domino.MaxPip)
	return inputBarStyle.Render(label) + fields[0] + fields[1]
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
