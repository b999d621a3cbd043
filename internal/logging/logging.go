// Package logging builds the zerolog loggers used by the CLI and the TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/registrame/registrame/internal/config"
)

// New creates a human-readable logger writing to w, used by CLI commands.
func New(cfg *config.Config, w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).
		With().
		Timestamp().
		Str("app", "registrame").
		Logger().
		Level(parseLevel(cfg.LogLevel))
}

// NewFile creates a JSON logger appending to path, used while the TUI owns
// the terminal. An empty path yields a disabled logger. The returned close
// function must be called on exit.
func NewFile(cfg *config.Config, path string) (zerolog.Logger, func() error, error) {
	if path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(f).
		With().
		Timestamp().
		Str("app", "registrame").
		Logger().
		Level(parseLevel(cfg.LogLevel))
	return logger, f.Close, nil
}

func parseLevel(raw string) zerolog.Level {
	if raw == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
