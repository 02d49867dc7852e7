package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger *slog.Logger
	once   sync.Once
)

// Init initializes the global structured logger. The level comes from
// PANTRYCOACH_LOG_LEVEL (debug, info, warn, error), defaulting to info.
func Init() {
	once.Do(func() {
		opts := &slog.HandlerOptions{Level: levelFromEnv()}
		handler := slog.NewTextHandler(os.Stderr, opts)
		logger = slog.New(handler)
		slog.SetDefault(logger)
	})
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("PANTRYCOACH_LOG_LEVEL")) {
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

// L returns the global logger instance.
func L() *slog.Logger {
	if logger == nil {
		Init()
	}
	return logger
}

// Info is a shorthand for L().Info.
func Info(msg string, args ...any) {
	L().Info(msg, args...)
}

// Warn is a shorthand for L().Warn.
func Warn(msg string, args ...any) {
	L().Warn(msg, args...)
}

// Error is a shorthand for L().Error.
func Error(msg string, args ...any) {
	L().Error(msg, args...)
}

// Debug is a shorthand for L().Debug.
func Debug(msg string, args ...any) {
	L().Debug(msg, args...)
}
