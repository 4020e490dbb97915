// Package logging configures the process-wide slog logger with tint.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a colored default logger at the given level name. Unknown
// names fall back to INFO.
func Setup(level string) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      ParseLevel(level),
			TimeFormat: time.Kitchen,
		}),
	))
}

// ParseLevel maps a config level name to a slog level.
func ParseLevel(level string) slog.Level {
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
