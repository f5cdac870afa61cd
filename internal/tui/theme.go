package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/dominoes/internal/config"
)

// ────────────────────────────────────────────────────────────
// Color Palette (felt table)
// ────────────────────────────────────────────────────────────
//
// Chrome colors live here. Tile face colors come from config.Theme so
// users can restyle the board without touching code.

var (
	// Base
	colorFelt    = lipgloss.Color("#115e59")
	colorSurface = lipgloss.Color("#134e4a")
	colorWood    = lipgloss.Color("#451a03")

	// Text
	colorText      = lipgloss.Color("#f0fdfa")
	colorTextDim   = lipgloss.Color("#99f6e4")
	colorTextMuted = lipgloss.Color("#5eead4")
	colorInk       = lipgloss.Color("#000000")

	// Accents
	colorBlue   = lipgloss.Color("#3b82f6")
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")

	// Structural
	colorDivider = lipgloss.Color("#2dd4bf")
)

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Panel chrome
var (
	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDivider)

	tableStyle = lipgloss.NewStyle().
			Background(colorWood).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorText)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)
)

// Counters and change log
var (
	detailLabelStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Bold(true)

	diffAddStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	diffDelStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(1, 2)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface).
			Padding(0, 1)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Background(colorSurface).
			Bold(true).
			Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// Input prompts
var (
	inputBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface).
			Padding(0, 1)

	inputFieldStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	inputFocusStyle = lipgloss.NewStyle().
			Background(colorBlue).
			Foreground(colorText).
			Bold(true).
			Padding(0, 1)

	inputCursorStyle = lipgloss.NewStyle().
				Background(colorText).
				Foreground(colorFelt)
)

// ────────────────────────────────────────────────────────────
// Tile faces
// ────────────────────────────────────────────────────────────

// tileFace is one color scheme for a tile: the box and the marks drawn
// inside it share a background so nested resets don't punch holes.
type tileFace struct {
	box     lipgloss.Style
	dot     lipgloss.Style
	divider lipgloss.Style
}

// tileStyles colors tile faces by category.
type tileStyles struct {
	double    tileFace
	duplicate tileFace
	plain     tileFace
}

func newTileStyles(t config.Theme) tileStyles {
	face := func(bg string) tileFace {
		back := lipgloss.Color(bg)
		return tileFace{
			box: lipgloss.NewStyle().
				Background(back).
				Foreground(colorInk).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorInk).
				BorderBackground(colorWood),
			dot: lipgloss.NewStyle().
				Background(back).
				Foreground(lipgloss.Color(t.Dot)).
				Bold(true),
			divider: lipgloss.NewStyle().
				Background(back).
				Foreground(colorInk),
		}
	}
	return tileStyles{
		double:    face(t.Double),
		duplicate: face(t.Duplicate),
		plain:     face(t.Plain),
	}
}
