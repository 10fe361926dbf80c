package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// newLogger builds the logger from the global flags. Without --log-file it
// writes to fallback, which is io.Discard while a TUI owns the terminal.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "runner",
	})
	return logger, closeFn, nil
}

// loadConfig loads the runner config and applies the --variant flag.
func loadConfig() (config.RunnerConfig, config.Variant, error) {
	variant, err := config.ParseVariant(flagVariant)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}
	return config.ApplyVariant(cfg, variant), variant, nil
}

// themeID resolves the theme from an optional argument, then --theme.
func themeID(args []string) (string, error) {
	id := flagTheme
	if len(args) > 0 {
		id = args[0]
	}
	if id == "" {
		id = registry.DefaultTheme
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown theme %q, run 'runner themes' to see available themes", id)
	}
	return id, nil
}
