// Package logging provides logging utilities for kioskctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("locating browser", "browser", kind)
//	logging.Warn("scheduled task registration failed", "task", name, "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Using settings file %s", path)
//	logging.UserSuccess("Account %s created", name)
//	logging.UserWarning("Browser not found; continuing without kiosk launch")
//	logging.UserError("Failed to create account: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
