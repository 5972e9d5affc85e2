// Package logging wires slog to stdout and, once the database is up, to the
// system_logs table for ERROR+ records.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the default JSON logger before any other subsystem starts.
func Setup() {
	slog.SetDefault(slog.New(NewJSONHandler()))
}

// NewJSONHandler returns the stdout handler used at boot and again inside the
// MultiHandler fan-out. The level comes from LOG_LEVEL, defaulting to info.
func NewJSONHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	})
}

func parseLevel(s string) slog.Level {
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
