package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"

	"github.com/Mr-Dark-debug/dominoes/internal/config"
)

// Run opens the board full-screen and blocks until the user quits.
// The board owns the terminal, so logs go to cfg.LogFile or nowhere.
func Run(cfg config.Config) error {
	logger, closeLog, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	model, err := NewModel(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("board started", "tiles", len(model.hand))
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	if fm, ok := final.(Model); ok {
		logger.Info("board closed", "hand", fm.hand.String())
	}
	return nil
}

func openLog(cfg config.Config) (*charmlog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return charmlog.New(io.Discard), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := charmlog.NewWithOptions(f, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           cfg.Level(),
	})
	return logger, func() { f.Close() }, nil
}
