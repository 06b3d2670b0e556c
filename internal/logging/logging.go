package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the package-level structured logger. It is replaced by Setup
// and defaults to a text handler on stderr at info level.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Verbose reports whether debug-level logging is enabled.
var Verbose bool

// Setup configures the package logger. verbose enables debug-level output,
// jsonOutput switches from text to JSON lines, and w is the destination
// (nil means stderr). Called once from the root command before any
// subcommand runs.
func Setup(verbose, jsonOutput bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	Verbose = verbose

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	Logger = slog.New(handler)
}

// Debug logs a debug-level message. Silent unless Setup enabled verbose mode.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info-level message.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning-level message.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error-level message.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// With returns a logger with the given attributes attached to every record.
func With(args ...any) *slog.Logger {
	return Logger.With(args...)
}
