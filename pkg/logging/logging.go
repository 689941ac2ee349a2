// Package logging configures the process-wide slog logger.
//
// Usage:
//
//	logging.Setup()                            // from LOG_LEVEL and LOG_FORMAT env
//	logging.SetupWith("debug", "json")         // explicit level and format
//
// The text format uses tint for colored, human-friendly output; json is meant
// for log collectors.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures logging from the LOG_LEVEL and LOG_FORMAT env vars
// (default: info, text).
func Setup() {
	SetupWith(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// SetupWith installs a default logger writing to stderr.
func SetupWith(level, format string) {
	slog.SetDefault(New(os.Stderr, ParseLevel(level), format))
}

// New builds a logger for the given writer, level and format.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}

// ParseLevel maps debug, warn and error to their slog levels; anything else
// is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
