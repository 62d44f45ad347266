package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// NewLogger returns a slog.Logger for cfg. Production logs JSON to stdout; everything else
// gets colored output on stderr.
func NewLogger(cfg *Config) *slog.Logger {
	return newLogger(cfg, os.Stdout, os.Stderr)
}

func newLogger(cfg *Config, stdout, stderr io.Writer) *slog.Logger {
	level := ParseLevel(cfg.LogLevel)
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

// ParseLevel maps debug, info, warn and error to slog levels. Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
