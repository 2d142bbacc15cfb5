// Package logging builds the structured logger for the CLI.
package logging

import (
	"io"
	"log/slog"

	"github.com/ccin2p3/fistsum/internal/config"
)

// formatJSON selects the JSON handler; anything else gets text.
const formatJSON = "json"

// New builds an slog.Logger per the logging configuration. Verbose
// forces debug level, quiet raises the floor to error.
func New(w io.Writer, cfg config.LoggingConfig, verbose, quiet bool) *slog.Logger {
	level := parseLevel(cfg.Level)
	if verbose {
		level = slog.LevelDebug
	}

	if quiet {
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == formatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
