package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

var logger *slog.Logger

// Init replaces the package logger. Output goes to stderr.
func Init(verbose bool, json bool) {
	InitWriter(os.Stderr, verbose, json)
}

// InitWriter is Init with an explicit destination, used by tests.
func InitWriter(w io.Writer, verbose bool, json bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if json {
		logger = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}),
		)
	} else {
		logger = slog.New(
			tint.NewHandler(w, &tint.Options{
				Level:      level,
				TimeFormat: time.Kitchen,
			}))
	}
	slog.SetDefault(logger)
}

func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

func init() {
	Init(false, false)
}
