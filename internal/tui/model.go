package tui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"

	"github.com/Mr-Dark-debug/dominoes/internal/config"
	"github.com/Mr-Dark-debug/dominoes/internal/domino"
)

// ────────────────────────────────────────────────────────────
// Input modes
// ────────────────────────────────────────────────────────────

// Mode represents what the keyboard is currently driving.
type Mode int

const (
	ModeBoard Mode = iota
	ModeAdd
	ModeRemove
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the domino board.
// It holds the only copy of the hand; rendering is delegated
// to component functions in separate files.
type Model struct {
	logger *charmlog.Logger
	styles tileStyles

	// Data
	hand       domino.Hand
	initial    domino.Hand
	order      domino.Order
	lastAction string
	lastChange domino.Change

	// UI state
	mode       Mode
	newTile    [2]int
	addField   int
	totalInput string
	width      int
	height     int

	// Status
	statusMsg string
	err       error
}

// NewModel creates a board from cfg. A nil logger discards output.
func NewModel(cfg config.Config, logger *charmlog.Logger) (Model, error) {
	hand, err := cfg.StartingHand()
	if err != nil {
		return Model{}, fmt.Errorf("starting hand: %w", err)
	}
	if logger == nil {
		logger = charmlog.New(io.Discard)
	}
	return Model{
		logger:    logger,
		styles:    newTileStyles(cfg.Theme),
		hand:      hand,
		initial:   hand.Clone(),
		order:     cfg.Order(),
		statusMsg: fmt.Sprintf("%d tiles", len(hand)),
	}, nil
}

// Hand returns a copy of the current hand.
func (m Model) Hand() domino.Hand {
	return m.hand.Clone()
}

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Domino's Test")
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// apply replaces the hand and records what changed.
func (m *Model) apply(action string, next domino.Hand) {
	m.lastChange = domino.Diff(m.hand, next)
	m.lastAction = action
	m.hand = next
	m.err = nil
	m.statusMsg = fmt.Sprintf("%s: %d tiles", action, len(next))
	m.logger.Debug("hand updated", "action", action, "tiles", len(next),
		"removed", len(m.lastChange.Removed), "added", len(m.lastChange.Added))
}

// fail surfaces err in the status bar; the hand is left untouched.
func (m *Model) fail(err error) {
	m.err = err
	m.statusMsg = fmt.Sprintf("Error: %v", err)
	m.logger.Warn("action rejected", "err", err)
}

// handleKey routes keyboard input based on current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// ── Global ──

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeAdd:
		return m.handleAddKey(key)
	case ModeRemove:
		return m.handleRemoveKey(key)
	}

	// ── Board ──

	switch key {
	case "q":
		return m, tea.Quit
	case "a":
		m.apply("sort ascending", domino.Sort(m.hand, domino.Ascending))
	case "d":
		m.apply("sort descending", domino.Sort(m.hand, domino.Descending))
	case "s":
		m.apply("sort "+string(m.order), domino.Sort(m.hand, m.order))
	case "u":
		m.apply("remove duplicates", domino.RemoveDuplicates(m.hand))
	case "f":
		m.apply("flip", domino.Flip(m.hand))
	case "r":
		m.apply("reset", m.initial.Clone())
	case "n":
		m.mode = ModeAdd
		m.addField = 0
	case "x":
		m.mode = ModeRemove
		m.totalInput = ""
	}
	return m, nil
}

// handleAddKey edits the two pip fields. Values are clamped to the pip
// range as they are typed, so the toggle only fails if that clamp is bypassed.
func (m Model) handleAddKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		m.mode = ModeBoard
	case "tab", "left", "right", "h", "l":
		m.addField = 1 - m.addField
	case "up", "k", "+":
		m.newTile[m.addField] = clamp(m.newTile[m.addField]+1, domino.MinPip, domino.MaxPip)
	case "down", "j", "-":
		m.newTile[m.addField] = clamp(m.newTile[m.addField]-1, domino.MinPip, domino.MaxPip)
	case "enter":
		tile := domino.T(m.newTile[0], m.newTile[1])
		next, err := domino.Toggle(m.hand, tile)
		if err != nil {
			m.fail(err)
			return m, nil
		}
		m.apply("toggle "+tile.String(), next)
		m.newTile = [2]int{}
		m.mode = ModeBoard
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			m.newTile[m.addField] = clamp(int(key[0]-'0'), domino.MinPip, domino.MaxPip)
		}
	}
	return m, nil
}

// handleRemoveKey edits the free-form total. Blank input is a no-op.
func (m Model) handleRemoveKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		m.mode = ModeBoard
		m.totalInput = ""
	case "backspace":
		if len(m.totalInput) > 0 {
			m.totalInput = m.totalInput[:len(m.totalInput)-1]
		}
	case "enter":
		input := m.totalInput
		m.totalInput = ""
		m.mode = ModeBoard
		if strings.TrimSpace(input) == "" {
			return m, nil
		}
		next, err := domino.RemoveByInput(m.hand, input)
		if err != nil {
			m.fail(err)
			return m, nil
		}
		m.apply("remove total "+strings.TrimSpace(input), next)
	default:
		if len(key) == 1 && (key[0] == '-' || (key[0] >= '0' && key[0] <= '9')) {
			m.totalInput += key
		}
	}
	return m, nil
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)

	bodyHeight := m.height - 2 // header + footer

	body := m.renderMainLayout(bodyHeight)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderMainLayout puts the board on top and the panels beneath it.
func (m Model) renderMainLayout(totalHeight int) string {
	board := renderBoard(&m, m.width)
	strip := renderStrip(&m, m.width)

	// Responsive: stack panels on narrow terminals
	var panels string
	if m.width < 60 {
		panels = lipgloss.JoinVertical(lipgloss.Left,
			renderDetailPanel(&m, m.width),
			renderDiffPanel(&m, m.width))
	} else {
		leftWidth := m.width * 40 / 100
		rightWidth := m.width - leftWidth
		panels = lipgloss.JoinHorizontal(lipgloss.Top,
			renderDetailPanel(&m, leftWidth),
			renderDiffPanel(&m, rightWidth))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, board, panels, strip)
	return lipgloss.NewStyle().MaxHeight(maxInt(totalHeight, 1)).Render(body)
}
