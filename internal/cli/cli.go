// Package cli implements the domino command-line interface.
//
// Each transform from package domino is exposed as a subcommand that reads
// a tile list, applies the transform and prints the resulting list as JSON.
// The tui subcommand opens the interactive board instead.
//
// # Input
//
// The tile list comes from --tiles: a JSON array such as [[6,1],[4,3]],
// or "-" to read one from stdin. Without --tiles the configured starting
// hand is used.
//
// # Logging
//
// Logs go to stderr via charmbracelet/log. --verbose switches to debug.
//
// # Example
//
//	domino --tiles '[[6,1],[4,3],[5,1]]' remove 7
//	[[5,1]]
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Mr-Dark-debug/dominoes/internal/config"
	"github.com/Mr-Dark-debug/dominoes/internal/domino"
	"github.com/Mr-Dark-debug/dominoes/pkg/jsonutil"
)

var (
	version = "dev"     // semantic version (e.g., "v1.2.3")
	commit  = "unknown" // git commit SHA
	date    = "unknown" // build timestamp
)

// SetVersion sets the version information displayed by --version.
// main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	in io.Reader

	configPath string
	tiles      string
	verbose    bool
	pretty     bool
}

// New creates a CLI that logs to w.
func New(w io.Writer) *CLI {
	return &CLI{
		Logger: newLogger(w, log.InfoLevel),
		Config: config.DefaultConfig(),
		in:     os.Stdin,
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "domino",
		Short:        "Sort, dedupe, flip and filter domino tiles",
		Long:         `domino applies list transforms to a hand of domino tiles (pairs of pips 0-6) and prints the result, or opens an interactive board.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg

			level := cfg.Level()
			if c.verbose {
				level = log.DebugLevel
			}
			c.Logger.SetLevel(level)
			c.Logger.Debug("config loaded", "path", c.configPath)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("domino %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().StringVar(&c.configPath, "config", config.DefaultPath(), "path to config file")
	root.PersistentFlags().StringVarP(&c.tiles, "tiles", "t", "", `tile list as JSON, or "-" for stdin (default: configured hand)`)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&c.pretty, "pretty", false, "indent JSON output")

	root.AddCommand(c.sortCommand())
	root.AddCommand(c.dedupeCommand())
	root.AddCommand(c.flipCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.tuiCommand())

	return root
}

// Execute runs the domino CLI and returns an error if any command fails.
func Execute() error {
	c := New(os.Stderr)
	err := c.RootCommand().ExecuteContext(context.Background())
	if domino.IsValidation(err) {
		c.Logger.Warn("rejected input", "allowed pips", fmt.Sprintf("%d-%d", domino.MinPip, domino.MaxPip))
	}
	return err
}

// =============================================================================
// Input / Output
// =============================================================================

// loadHand resolves --tiles into a validated hand.
func (c *CLI) loadHand() (domino.Hand, error) {
	var (
		pairs [][2]int
		err   error
	)
	switch c.tiles {
	case "":
		hand, err := c.Config.StartingHand()
		if err != nil {
			return nil, fmt.Errorf("configured hand: %w", err)
		}
		c.Logger.Debug("using configured hand", "tiles", len(hand))
		return hand, nil
	case "-":
		pairs, err = jsonutil.ReadPairs(c.in)
	default:
		pairs, err = jsonutil.ParsePairs(c.tiles)
	}
	if err != nil {
		return nil, err
	}

	hand, err := domino.FromPairs(pairs)
	if err != nil {
		return nil, fmt.Errorf("tile list: %w", err)
	}
	c.Logger.Debug("loaded hand", "tiles", len(hand))
	return hand, nil
}

// writeHand prints h as a JSON list, indented when --pretty is set.
func (c *CLI) writeHand(w io.Writer, h domino.Hand) error {
	out := jsonutil.FormatPairs(h.Pairs())
	if c.pretty {
		out = jsonutil.PrettyJSON(out)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
