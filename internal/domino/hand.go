package domino

import (
	"sort"
	"strconv"
	"strings"
)

// Hand is an ordered list of tiles. Order is display order; duplicates are
// allowed until RemoveDuplicates runs.
type Hand []Tile

// DefaultHand returns the starting hand shown on a fresh board.
func DefaultHand() Hand {
	return Hand{
		T(6, 1),
		T(4, 3),
		T(5, 1),
		T(3, 4),
		T(1, 1),
		T(3, 4),
		T(1, 2),
	}
}

// Clone returns a copy that shares no backing array with h.
func (h Hand) Clone() Hand {
	out := make(Hand, len(h))
	copy(out, h)
	return out
}

// Validate checks every tile in h.
func (h Hand) Validate() error {
	for _, t := range h {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// String renders h as "[a,b] [c,d] ...".
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, t := range h {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// groupCounts counts occurrences per orientation-free value.
func groupCounts(h Hand) map[Tile]int {
	counts := make(map[Tile]int, len(h))
	for _, t := range h {
		counts[t.Key()]++
	}
	return counts
}

// ────────────────────────────────────────────────────────────
// Counts
// ────────────────────────────────────────────────────────────

// CountDoubles returns how many tiles have equal halves.
func CountDoubles(h Hand) int {
	n := 0
	for _, t := range h {
		if t.IsDouble() {
			n++
		}
	}
	return n
}

// CountThrees returns the number of distinct tile values that occur more
// than twice. It counts groups, not tiles: five copies of [3,4] count once.
func CountThrees(h Hand) int {
	n := 0
	for _, c := range groupCounts(h) {
		if c > 2 {
			n++
		}
	}
	return n
}

// Duplicates returns every tile whose value already appeared earlier in h,
// in list order. The first occurrence of each value is not included, so
// len(Duplicates(h)) is the number of surplus copies ("pairs").
func Duplicates(h Hand) Hand {
	seen := make(map[Tile]bool, len(h))
	var out Hand
	for _, t := range h {
		k := t.Key()
		if seen[k] {
			out = append(out, t)
			continue
		}
		seen[k] = true
	}
	return out
}

// IsDuplicated reports whether t's value occurs more than once in h.
func IsDuplicated(h Hand, t Tile) bool {
	k := t.Key()
	n := 0
	for _, o := range h {
		if o.Key() == k {
			n++
			if n > 1 {
				return true
			}
		}
	}
	return false
}

// ────────────────────────────────────────────────────────────
// Transforms
// ────────────────────────────────────────────────────────────

// Sort orders tiles by pip total, ascending or descending. Equal totals
// are ordered by the first pip in the same direction; tiles equal on both
// keep their relative order.
func Sort(h Hand, o Order) Hand {
	out := h.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Sum() != b.Sum() {
			if o == Descending {
				return a.Sum() > b.Sum()
			}
			return a.Sum() < b.Sum()
		}
		if o == Descending {
			return a.A > b.A
		}
		return a.A < b.A
	})
	return out
}

// RemoveDuplicates drops every copy of any value that appears more than
// once. A value seen twice disappears entirely; it is not reduced to one.
func RemoveDuplicates(h Hand) Hand {
	counts := groupCounts(h)
	out := make(Hand, 0, len(h))
	for _, t := range h {
		if counts[t.Key()] <= 1 {
			out = append(out, t)
		}
	}
	return out
}

// Flip swaps the halves of every tile.
func Flip(h Hand) Hand {
	out := make(Hand, len(h))
	for i, t := range h {
		out[i] = t.Flip()
	}
	return out
}

// RemoveByTotal keeps the tiles whose pip total differs from total.
func RemoveByTotal(h Hand, total int) Hand {
	out := make(Hand, 0, len(h))
	for _, t := range h {
		if t.Sum() != total {
			out = append(out, t)
		}
	}
	return out
}

// RemoveByInput applies RemoveByTotal to free-form input. Blank input
// leaves the hand unchanged.
func RemoveByInput(h Hand, input string) (Hand, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return h.Clone(), nil
	}
	total, err := strconv.Atoi(input)
	if err != nil {
		return nil, &ValidationError{
			Field:   "total",
			Value:   input,
			Message: "must be a whole number",
			Cause:   ErrInvalidTotal,
		}
	}
	return RemoveByTotal(h, total), nil
}

// Toggle adds t to the end of h, unless a tile of the same value (in
// either orientation) is already present, in which case the first such
// tile is removed instead.
func Toggle(h Hand, t Tile) (Hand, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	for i, o := range h {
		if o.Equal(t) {
			out := make(Hand, 0, len(h)-1)
			out = append(out, h[:i]...)
			return append(out, h[i+1:]...), nil
		}
	}
	return Append(h, t)
}

// Append adds t to the end of h without the toggle check.
func Append(h Hand, t Tile) (Hand, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	out := make(Hand, 0, len(h)+1)
	out = append(out, h...)
	return append(out, t), nil
}
