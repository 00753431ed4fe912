// Package logging builds the process-wide structured logger from
// configuration.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/MyriadColors/repl-space-miner-go/internal/infrastructure/config"
)

// New constructs a slog.Logger per the logging configuration. Unknown
// values fall back to text on stderr at info level.
func New(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stderr
	if cfg.Output == "stdout" {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler)
}
