// Package logging builds the zap loggers used by the CLI and the TUI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

const DefaultLevel = "info"

// New returns a console logger on stderr when path is empty, or a JSON
// logger appending to path otherwise.
func New(level, path string) (*zap.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	var cfg zap.Config
	if path == "" {
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	} else {
		cfg = zap.NewProductionConfig()
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
	}
	cfg.Level = lvl

	return cfg.Build()
}

// NewQuiet is New for full-screen programs: without a file it discards
// everything so the terminal is left to the UI.
func NewQuiet(level, path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	return New(level, path)
}
