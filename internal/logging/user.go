package logging

import (
	"fmt"
	"io"
	"os"
)

// User-facing output, separate from the structured slog stream: status
// lines the operator reads on the console. Informational output goes
// to stdout, warnings and errors to stderr so scripted callers can
// split them. Credential material must never pass through here.

var (
	userOut io.Writer = os.Stdout
	userErr io.Writer = os.Stderr
)

// UserInfo prints a progress line to stdout.
func UserInfo(format string, args ...any) {
	fmt.Fprintf(userOut, "ℹ "+format+"\n", args...)
}

// UserSuccess prints a completion line to stdout.
func UserSuccess(format string, args ...any) {
	fmt.Fprintf(userOut, "✓ "+format+"\n", args...)
}

// UserWarning prints a degraded-but-continuing line to stderr.
func UserWarning(format string, args ...any) {
	fmt.Fprintf(userErr, "⚠ "+format+"\n", args...)
}

// UserError prints a failure line to stderr.
func UserError(format string, args ...any) {
	fmt.Fprintf(userErr, "✗ "+format+"\n", args...)
}
