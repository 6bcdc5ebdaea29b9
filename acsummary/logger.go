package acsummary

import (
	"log/slog"
	"os"
)

var pkgLogger *slog.Logger
var pkgLogLevel *slog.LevelVar

func init() {
	pkgLogLevel = new(slog.LevelVar)
	pkgLogLevel.Set(slog.LevelInfo)

	handlerOptions := &slog.HandlerOptions{
		Level: pkgLogLevel,
	}
	pkgLogger = slog.New(slog.NewTextHandler(os.Stderr, handlerOptions))
}

// SetLogger allows an external package to set the logger for this package.
// Note: SetLogLevel only affects the default package logger; a custom logger
// needs its own LevelVar to stay adjustable.
func SetLogger(l *slog.Logger) {
	pkgLogger = l
}

// SetLogLevel sets the log level dynamically without recreating the logger.
// Safe to call concurrently.
func SetLogLevel(level slog.Level) {
	pkgLogLevel.Set(level)
}
