package domino

// FromPairs builds a Hand from raw [a,b] pairs and validates every pip.
func FromPairs(pairs [][2]int) (Hand, error) {
	h := make(Hand, len(pairs))
	for i, p := range pairs {
		h[i] = T(p[0], p[1])
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// Pairs returns h as raw [a,b] pairs.
func (h Hand) Pairs() [][2]int {
	out := make([][2]int, len(h))
	for i, t := range h {
		out[i] = [2]int{t.A, t.B}
	}
	return out
}

// Change summarizes how one hand became another. Tiles are compared in
// stored orientation, so a flip shows up as removals plus additions.
type Change struct {
	Removed Hand
	Added   Hand
}

// Empty reports whether nothing was added or removed.
func (c Change) Empty() bool {
	return len(c.Removed) == 0 && len(c.Added) == 0
}

// Diff compares before and after as multisets. Removed keeps before's
// order, Added keeps after's order.
func Diff(before, after Hand) Change {
	remaining := make(map[Tile]int, len(after))
	for _, t := range after {
		remaining[t]++
	}
	var c Change
	for _, t := range before {
		if remaining[t] > 0 {
			remaining[t]--
			continue
		}
		c.Removed = append(c.Removed, t)
	}

	kept := make(map[Tile]int, len(before))
	for _, t := range before {
		kept[t]++
	}
	for _, t := range after {
		if kept[t] > 0 {
			kept[t]--
			continue
		}
		c.Added = append(c.Added, t)
	}
	return c
}
