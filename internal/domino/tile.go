package domino

import (
	"encoding/json"
	"fmt"
)

// Pip bounds, inclusive.
const (
	MinPip = 0
	MaxPip = 6
)

// Tile is one domino: two pip values, stored in display order.
type Tile struct {
	A int
	B int
}

// T is shorthand for Tile{A: a, B: b}.
func T(a, b int) Tile {
	return Tile{A: a, B: b}
}

// Sum returns the pip total.
func (t Tile) Sum() int {
	return t.A + t.B
}

// IsDouble reports whether both halves carry the same value.
func (t Tile) IsDouble() bool {
	return t.A == t.B
}

// Flip swaps the halves.
func (t Tile) Flip() Tile {
	return Tile{A: t.B, B: t.A}
}

// Key returns the orientation-free form of t: the smaller pip first.
// Two tiles are the same domino exactly when their keys are equal.
func (t Tile) Key() Tile {
	if t.A > t.B {
		return t.Flip()
	}
	return t
}

// Equal compares ignoring orientation.
func (t Tile) Equal(o Tile) bool {
	return t.Key() == o.Key()
}

// Validate checks both pips against [MinPip, MaxPip].
func (t Tile) Validate() error {
	if t.A < MinPip || t.A > MaxPip {
		return pipError("first", t.A)
	}
	if t.B < MinPip || t.B > MaxPip {
		return pipError("second", t.B)
	}
	return nil
}

// String renders the tile as "[a,b]".
func (t Tile) String() string {
	return fmt.Sprintf("[%d,%d]", t.A, t.B)
}

// MarshalJSON encodes the tile as a two-element array.
func (t Tile) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{t.A, t.B})
}

// UnmarshalJSON decodes a two-element array. Range is not checked here;
// callers validate once the whole list is known.
func (t *Tile) UnmarshalJSON(b []byte) error {
	var pair []int
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("decoding tile: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("decoding tile: want 2 pips, got %d", len(pair))
	}
	t.A, t.B = pair[0], pair[1]
	return nil
}
