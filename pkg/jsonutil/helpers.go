// Package jsonutil provides JSON helpers for tile lists.
//
// Tile lists travel as arrays of two-element integer arrays, e.g.
// [[6,1],[4,3]]. The CLI reads them from flags and stdin and writes
// them back to stdout; the config loader reuses ParsePairs for hands
// given as strings.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ParsePairs decodes a JSON array of two-element integer arrays.
// An empty or whitespace-only string yields an empty, non-nil slice.
func ParsePairs(s string) ([][2]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return [][2]int{}, nil
	}
	var raw [][]int
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("parsing tile list: %w", err)
	}
	pairs := make([][2]int, len(raw))
	for i, p := range raw {
		if len(p) != 2 {
			return nil, fmt.Errorf("parsing tile list: entry %d has %d values, want 2", i, len(p))
		}
		pairs[i] = [2]int{p[0], p[1]}
	}
	return pairs, nil
}

// ReadPairs reads all of r and decodes it with ParsePairs.
func ReadPairs(r io.Reader) ([][2]int, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading tile list: %w", err)
	}
	return ParsePairs(string(b))
}

// FormatPairs encodes pairs compactly: [[6,1],[4,3]].
// A nil slice encodes as [] rather than null.
func FormatPairs(pairs [][2]int) string {
	if pairs == nil {
		pairs = [][2]int{}
	}
	return MustMarshal(pairs)
}

// PrettyJSON formats a JSON string with indentation for display.
// Returns the original string if it's not valid JSON.
func PrettyJSON(s string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), "", "  "); err != nil {
		return s
	}
	return buf.String()
}

// MustMarshal marshals a value to JSON, panicking on error.
// Use only for values known to be marshalable (e.g., maps, slices).
func MustMarshal(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("jsonutil.MustMarshal: %v", err))
	}
	return string(b)
}
