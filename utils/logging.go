package utils

import (
	"log/slog"
	"os"
)

// NewLogger builds the process logger. "json" is what we run in
// production; anything else falls back to a human-readable text handler.
func NewLogger(format string) *slog.Logger {
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, nil))
	}
}
