package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Mr-Dark-debug/dominoes/internal/analysis"
	"github.com/Mr-Dark-debug/dominoes/internal/tui"
	"github.com/Mr-Dark-debug/dominoes/pkg/jsonutil"
)

// Output formats for the stats command.
const (
	formatTable    = "table"
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

// headerRow is the row index lipgloss/table passes to StyleFunc for headers.
const headerRow = -1

// statsCommand creates the "stats" subcommand.
func (c *CLI) statsCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count doubles, pairs and threes in the hand",
		RunE: func(cmd *cobra.Command, args []string) error {
			hand, err := c.loadHand()
			if err != nil {
				return err
			}
			analyzer := analysis.NewAnalyzer()
			report := analyzer.Analyze(hand)
			w := cmd.OutOrStdout()

			switch format {
			case formatJSON:
				fmt.Fprintln(w, jsonutil.PrettyJSON(jsonutil.MustMarshal(report)))
			case formatMarkdown:
				fmt.Fprint(w, analyzer.FormatReport(report))
			case formatTable:
				fmt.Fprintln(w, renderStatsTable(report))
			default:
				return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatTable, formatMarkdown, formatJSON)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, markdown, json")
	return cmd
}

// renderStatsTable draws the counters as a bordered table.
func renderStatsTable(r *analysis.Report) string {
	s := r.Stats
	rows := [][]string{
		{"Tiles", strconv.Itoa(s.Tiles)},
		{"Double Numbers", strconv.Itoa(s.Doubles)},
		{"Pairs", strconv.Itoa(s.Pairs)},
		{"Threes", strconv.Itoa(s.Threes)},
		{"Pip Total", strconv.Itoa(s.PipTotal)},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Metric", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == headerRow:
				return styleTableHeader
			case col == 0:
				return styleTableLabel
			default:
				return styleTableCell
			}
		})

	out := StyleTitle.Render("Hand") + " " + StyleValue.Render(r.Hand.String()) + "\n" + t.Render()
	for _, w := range r.Warnings {
		out += "\n" + StyleDuplicate.Render("! "+w)
	}
	return out
}

// tuiCommand creates the "tui" subcommand.
func (c *CLI) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config
			if c.tiles != "" {
				hand, err := c.loadHand()
				if err != nil {
					return err
				}
				cfg.Hand = nil
				for _, p := range hand.Pairs() {
					cfg.Hand = append(cfg.Hand, []int{p[0], p[1]})
				}
			}
			c.Logger.Debug("opening board", "log_file", cfg.LogFile)
			return tui.Run(cfg)
		},
	}
}
