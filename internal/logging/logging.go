// Package logging builds the zap logger. The TUI owns the terminal, so log
// output goes to a file or nowhere.
package logging

import (
	"fmt"

	"tabshell/internal/config"

	"go.uber.org/zap"
)

// New returns a JSON file logger for cfg, or a no-op logger when cfg.File is empty.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}
	level, err := cfg.ZapLevel()
	if err != nil {
		return nil, fmt.Errorf("logging: level %q: %w", cfg.Level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.File}
	zc.ErrorOutputPaths = []string{cfg.File}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: open %s: %w", cfg.File, err)
	}
	return logger, nil
}
