// Package config loads domino settings from a TOML file.
//
// A missing file is not an error; defaults apply. Environment variables
// DOMINO_HAND (JSON tile list) and DOMINO_LOG (log file path) override
// the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	charmlog "github.com/charmbracelet/log"

	"github.com/Mr-Dark-debug/dominoes/internal/domino"
	"github.com/Mr-Dark-debug/dominoes/pkg/jsonutil"
)

// Environment overrides.
const (
	EnvHand    = "DOMINO_HAND"
	EnvLogFile = "DOMINO_LOG"
)

// Config holds user settings for the CLI and the board.
type Config struct {
	// Hand is the starting hand, as [a,b] pairs. Reset returns to it.
	Hand [][]int `toml:"hand"`

	// SortOrder is the direction the board's sort key uses first: "asc" or "desc".
	SortOrder string `toml:"sort_order"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFile receives board logs. Empty disables logging in the board,
	// which owns the terminal.
	LogFile string `toml:"log_file"`

	Theme Theme `toml:"theme"`
}

// Theme sets tile face colors. Values are anything lipgloss.Color accepts.
type Theme struct {
	Double    string `toml:"double"`
	Duplicate string `toml:"duplicate"`
	Plain     string `toml:"plain"`
	Dot       string `toml:"dot"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() Config {
	return Config{
		Hand:      toRows(domino.DefaultHand().Pairs()),
		SortOrder: string(domino.Ascending),
		LogLevel:  "info",
		Theme: Theme{
			Double:    "#93c5fd",
			Duplicate: "#fde047",
			Plain:     "#ffffff",
			Dot:       "#b91c1c",
		},
	}
}

// DefaultPath returns ~/.domino/config.toml.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".domino", "config.toml")
}

// Load reads path over the defaults, applies environment overrides and
// validates the result.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// defaults
		case err != nil:
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return Config{}, fmt.Errorf("reading config %s: unknown key %q", path, undecoded[0].String())
			}
		}
	}

	if v := os.Getenv(EnvHand); v != "" {
		pairs, err := jsonutil.ParsePairs(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvHand, err)
		}
		cfg.Hand = toRows(pairs)
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the hand, sort order and log level.
func (c Config) Validate() error {
	if _, err := c.StartingHand(); err != nil {
		return fmt.Errorf("config hand: %w", err)
	}
	if _, err := domino.ParseOrder(c.SortOrder); err != nil {
		return fmt.Errorf("config sort_order: %w", err)
	}
	if _, err := charmlog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config log_level: %w", err)
	}
	return nil
}

// StartingHand converts Hand into a validated domino.Hand.
func (c Config) StartingHand() (domino.Hand, error) {
	pairs := make([][2]int, len(c.Hand))
	for i, row := range c.Hand {
		if len(row) != 2 {
			return nil, fmt.Errorf("entry %d has %d values, want 2", i, len(row))
		}
		pairs[i] = [2]int{row[0], row[1]}
	}
	return domino.FromPairs(pairs)
}

// Order returns the parsed sort order, falling back to ascending.
func (c Config) Order() domino.Order {
	o, err := domino.ParseOrder(c.SortOrder)
	if err != nil {
		return domino.Ascending
	}
	return o
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() charmlog.Level {
	l, err := charmlog.ParseLevel(c.LogLevel)
	if err != nil {
		return charmlog.InfoLevel
	}
	return l
}

func toRows(pairs [][2]int) [][]int {
	rows := make([][]int, len(pairs))
	for i, p := range pairs {
		rows[i] = []int{p[0], p[1]}
	}
	return rows
}
