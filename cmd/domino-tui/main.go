// domino-tui: the interactive domino board.
//
// Usage:
//
//	domino-tui [flags]
//
// Flags:
//
//	--config  Path to TOML config file (default: ~/.domino/config.toml)
//	--log     Write board logs to this file
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Mr-Dark-debug/dominoes/internal/config"
	"github.com/Mr-Dark-debug/dominoes/internal/tui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "Path to TOML config file")
	logFile := flag.String("log", "", "Write board logs to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config %s: %v\n", *configPath, err)
		os.Exit(1)
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	if err := tui.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running board: %v\n", err)
		os.Exit(1)
	}
}
