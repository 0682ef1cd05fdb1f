// Package logging configures log/slog for the junctionbox CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Init returns a text-handler logger. It leaves slog's default logger
// untouched; callers that want one process-wide logger call slog.SetDefault.
//
// path: log file path, appended to and created with its directory if needed.
// Empty path logs to stderr.
// level: "debug", "info", "warn" or "error"; anything else means info.
//
// The returned closer releases the file (a no-op for stderr).
func Init(path, level string) (*slog.Logger, func() error, error) {
	var (
		w      io.Writer = os.Stderr
		closer           = func() error { return nil }
	)
	if path != "" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, err
			}
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, f.Close
	}

	return New(w, level), closer, nil
}

// New returns a text-handler logger writing to w at level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
