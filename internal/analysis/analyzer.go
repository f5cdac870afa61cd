// Package analysis summarizes a domino hand: the counts shown under the
// board, the spread of pip totals, and which values are over-represented.
//
// Everything is derived from the transform functions in package domino;
// nothing here changes the hand.
package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Mr-Dark-debug/dominoes/internal/domino"
)

// Analyzer builds reports for hands.
type Analyzer struct {
	now func() time.Time
}

// NewAnalyzer creates an analyzer that stamps reports with the wall clock.
func NewAnalyzer() *Analyzer {
	return &Analyzer{now: time.Now}
}

// ============================================================
// Counts
// ============================================================

// HandStats holds the three counters the board displays plus totals.
type HandStats struct {
	Tiles    int     `json:"tiles"`
	Doubles  int     `json:"doubles"`
	Pairs    int     `json:"pairs"`
	Threes   int     `json:"threes"`
	PipTotal int     `json:"pip_total"`
	MeanSum  float64 `json:"mean_sum"`
}

// Stats computes the counters for h.
func Stats(h domino.Hand) HandStats {
	s := HandStats{
		Tiles:   len(h),
		Doubles: domino.CountDoubles(h),
		Pairs:   len(domino.Duplicates(h)),
		Threes:  domino.CountThrees(h),
	}
	for _, t := range h {
		s.PipTotal += t.Sum()
	}
	if s.Tiles > 0 {
		s.MeanSum = math.Round(float64(s.PipTotal)/float64(s.Tiles)*100) / 100
	}
	return s
}

// ============================================================
// Groups
// ============================================================

// Group is one orientation-free tile value and how often it occurs.
type Group struct {
	Tile  domino.Tile `json:"tile"`
	Count int         `json:"count"`
}

// Groups lists every distinct value in h with its count, most frequent
// first, then by pip total and first pip.
func Groups(h domino.Hand) []Group {
	counts := make(map[domino.Tile]int)
	for _, t := range h {
		counts[t.Key()]++
	}
	groups := make([]Group, 0, len(counts))
	for k, c := range counts {
		groups = append(groups, Group{Tile: k, Count: c})
	}
	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Tile.Sum() != b.Tile.Sum() {
			return a.Tile.Sum() < b.Tile.Sum()
		}
		return a.Tile.A < b.Tile.A
	})
	return groups
}

// ============================================================
// Pip total distribution
// ============================================================

// SumBucket counts tiles with a given pip total.
type SumBucket struct {
	Total int `json:"total"`
	Count int `json:"count"`
}

// SumHistogram returns one bucket per possible total (0..12), including
// empty ones, so renderers get a fixed axis.
func SumHistogram(h domino.Hand) []SumBucket {
	buckets := make([]SumBucket, 2*domino.MaxPip+1)
	for i := range buckets {
		buckets[i].Total = i
	}
	for _, t := range h {
		if s := t.Sum(); s >= 0 && s < len(buckets) {
			buckets[s].Count++
		}
	}
	return buckets
}

// ============================================================
// Full Report
// ============================================================

// Report is the complete output of `domino stats`.
type Report struct {
	GeneratedAt string      `json:"generated_at"`
	Hand        domino.Hand `json:"hand"`
	Stats       HandStats   `json:"stats"`
	Groups      []Group     `json:"groups"`
	Histogram   []SumBucket `json:"histogram"`
	Warnings    []string    `json:"warnings"`
}

// Analyze runs every pass over h.
func (a *Analyzer) Analyze(h domino.Hand) *Report {
	report := &Report{
		GeneratedAt: a.now().Format(time.RFC3339),
		Hand:        h.Clone(),
		Stats:       Stats(h),
		Groups:      Groups(h),
		Histogram:   SumHistogram(h),
	}

	for _, g := range report.Groups {
		if g.Count > 2 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s appears %d times", g.Tile, g.Count))
		}
	}
	if report.Stats.Pairs > 0 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("remove duplicates would drop %d tiles", len(h)-len(domino.RemoveDuplicates(h))))
	}

	return report
}

// FormatReport generates a human-readable markdown report.
func (a *Analyzer) FormatReport(report *Report) string {
	var b strings.Builder

	b.WriteString("# Domino Hand Report\n\n")
	b.WriteString(fmt.Sprintf("**Generated:** %s\n", report.GeneratedAt))
	b.WriteString(fmt.Sprintf("**Hand:** `%s`\n\n", report.Hand))

	s := report.Stats
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Tiles | %d |\n", s.Tiles))
	b.WriteString(fmt.Sprintf("| Double Numbers | %d |\n", s.Doubles))
	b.WriteString(fmt.Sprintf("| Pairs | %d |\n", s.Pairs))
	b.WriteString(fmt.Sprintf("| Threes | %d |\n", s.Threes))
	b.WriteString(fmt.Sprintf("| Pip Total | %d |\n", s.PipTotal))
	b.WriteString(fmt.Sprintf("| Mean Sum | %.2f |\n\n", s.MeanSum))

	if len(report.Groups) > 0 {
		b.WriteString("## Values\n\n")
		b.WriteString("| Tile | Count |\n")
		b.WriteString("|------|-------|\n")
		for _, g := range report.Groups {
			b.WriteString(fmt.Sprintf("| %s | %d |\n", g.Tile, g.Count))
		}
		b.WriteString("\n")
	}

	if s.Tiles > 0 {
		b.WriteString("## Pip Totals\n\n")
		for _, bk := range report.Histogram {
			if bk.Count == 0 {
				continue
			}
			b.WriteString(fmt.Sprintf("- %2d: %s %d\n", bk.Total, strings.Repeat("#", bk.Count), bk.Count))
		}
		b.WriteString("\n")
	}

	if len(report.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range report.Warnings {
			b.WriteString(fmt.Sprintf("- %s\n", w))
		}
	}

	return b.String()
}
