// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// New builds a logger that writes text to stderr and, when file is
// non-empty, JSON records to that file as well. Unknown levels fall back to
// info. The returned closer is nil when no file handler was opened.
func New(level string, file string) (*slog.Logger, io.Closer) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, opts),
	}

	var closer io.Closer
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			slog.New(handlers[0]).Warn("could not open log file", "path", file, "error", err)
		} else {
			handlers = append(handlers, slog.NewJSONHandler(f, opts))
			closer = f
		}
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer
}
