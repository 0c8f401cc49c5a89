package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var log *slog.Logger

func init() {
	level := slog.LevelInfo
	if os.Getenv("STROKELENS_DEBUG") == "true" {
		level = slog.LevelDebug
	}
	SetOutput(os.Stderr, level)
}

// SetOutput replaces the process logger with a text handler writing to w.
func SetOutput(w io.Writer, level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}
	log = slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps a config string to a slog level. Unknown strings yield info.
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

func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	log.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	log.Error(msg, args...)
}
