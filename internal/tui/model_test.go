package tui

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mr-Dark-debug/dominoes/internal/config"
	"github.com/Mr-Dark-debug/dominoes/internal/domino"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

// press feeds keys through Update, one message per key.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestNewModelStartsWithDefaultHand(t *testing.T) {
	m := newTestModel(t)
	if !reflect.DeepEqual(m.Hand(), domino.DefaultHand()) {
		t.Errorf("expected default hand, got %v", m.Hand())
	}
	if m.mode != ModeBoard {
		t.Errorf("expected board mode, got %v", m.mode)
	}
}

func TestNewModelRejectsBadHand(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Hand = [][]int{{9, 9}}
	if _, err := NewModel(cfg, nil); !errors.Is(err, domino.ErrInvalidPip) {
		t.Errorf("expected ErrInvalidPip, got %v", err)
	}
}

func TestBoardKeys(t *testing.T) {
	start := domino.DefaultHand()
	tests := []struct {
		key  string
		want domino.Hand
	}{
		{"a", domino.Sort(start, domino.Ascending)},
		{"d", domino.Sort(start, domino.Descending)},
		{"s", domino.Sort(start, domino.Ascending)},
		{"u", domino.RemoveDuplicates(start)},
		{"f", domino.Flip(start)},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := press(t, newTestModel(t), tt.key)
			if !reflect.DeepEqual(m.Hand(), tt.want) {
				t.Errorf("after %q: got %v, want %v", tt.key, m.Hand(), tt.want)
			}
		})
	}
}

func TestResetRestoresStartingHand(t *testing.T) {
	m := press(t, newTestModel(t), "u", "f", "r")
	if !reflect.DeepEqual(m.Hand(), domino.DefaultHand()) {
		t.Errorf("expected default hand after reset, got %v", m.Hand())
	}
}

func TestAddModeTogglesTile(t *testing.T) {
	m := newTestModel(t)

	// [2,2] is absent: appended.
	m = press(t, m, "n", "2", "tab", "2", "enter")
	hand := m.Hand()
	if len(hand) != 8 || hand[7] != domino.T(2, 2) {
		t.Fatalf("expected [2,2] appended, got %v", hand)
	}
	if m.mode != ModeBoard {
		t.Errorf("expected board mode after enter, got %v", m.mode)
	}
	if m.newTile != [2]int{} {
		t.Errorf("expected input reset, got %v", m.newTile)
	}

	// Same tile again: removed.
	m = press(t, m, "n", "2", "tab", "2", "enter")
	if !reflect.DeepEqual(m.Hand(), domino.DefaultHand()) {
		t.Errorf("expected [2,2] removed, got %v", m.Hand())
	}
}

func TestAddModeClampsInput(t *testing.T) {
	m := press(t, newTestModel(t), "n", "9")
	if m.newTile[0] != domino.MaxPip {
		t.Errorf("expected 9 clamped to %d, got %d", domino.MaxPip, m.newTile[0])
	}
	m = press(t, m, "tab", "down")
	if m.newTile[1] != domino.MinPip {
		t.Errorf("expected down from 0 to stay %d, got %d", domino.MinPip, m.newTile[1])
	}
	m = press(t, m, "esc")
	if m.mode != ModeBoard || len(m.Hand()) != 7 {
		t.Errorf("esc should cancel without changes: mode=%v hand=%v", m.mode, m.Hand())
	}
}

func TestRemoveMode(t *testing.T) {
	m := press(t, newTestModel(t), "x", "7", "enter")
	want := domino.RemoveByTotal(domino.DefaultHand(), 7)
	if !reflect.DeepEqual(m.Hand(), want) {
		t.Errorf("expected %v, got %v", want, m.Hand())
	}
	if len(m.lastChange.Removed) != 4 {
		t.Errorf("expected 4 removed in change log, got %v", m.lastChange.Removed)
	}
}

func TestRemoveModeBlankIsNoop(t *testing.T) {
	m := press(t, newTestModel(t), "x", "1", "backspace", "enter")
	if !reflect.DeepEqual(m.Hand(), domino.DefaultHand()) {
		t.Errorf("expected unchanged hand, got %v", m.Hand())
	}
	if m.lastAction != "" {
		t.Errorf("expected no recorded action, got %q", m.lastAction)
	}
}

func TestRemoveModeIgnoresLetters(t *testing.T) {
	m := press(t, newTestModel(t), "x", "a", "b")
	if m.totalInput != "" {
		t.Errorf("expected letters ignored, got %q", m.totalInput)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}

	// In an input mode q is just a key.
	m = press(t, m, "x")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil {
		t.Error("q should not quit while typing a total")
	}
}

func TestViewRendersBoard(t *testing.T) {
	m := newTestModel(t)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("expected placeholder before size, got %q", got)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	m = next.(Model)
	m = press(t, m, "u")

	view := m.View()
	for _, want := range []string{"DOMINO'S TEST", "Double Numbers", "Threes", "[6,1]", "remove duplicates", dotMark} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewNarrowAndEmpty(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 60})
	m = next.(Model)
	m = press(t, m, "x", "7", "enter", "x", "6", "enter", "x", "2", "enter", "x", "3", "enter")

	if len(m.Hand()) != 0 {
		t.Fatalf("expected empty hand, got %v", m.Hand())
	}
	if view := m.View(); !strings.Contains(view, "No tiles on the table.") {
		t.Errorf("expected empty state in view:\n%s", view)
	}
}

func TestRenderHalf(t *testing.T) {
	face := newTileStyles(config.DefaultConfig().Theme).plain
	for pip := domino.MinPip; pip <= domino.MaxPip; pip++ {
		rows := renderHalf(face, pip)
		n := 0
		for _, r := range rows {
			n += strings.Count(r, dotMark)
		}
		if n != pip {
			t.Errorf("pip %d rendered %d dots", pip, n)
		}
	}
}
