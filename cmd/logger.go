package cmd

import (
	"io"
	"log/slog"
)

// newLogger creates a text-handler slog.Logger at the named level.
// Unknown level names fall back to info.
func newLogger(levelStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(outW, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
