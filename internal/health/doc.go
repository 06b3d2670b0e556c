// Package health implements the read-only probes behind `kioskctl status`.
//
// A Checker inspects the five kiosk artifacts (local account, auto-logon
// registry values, browser binary, scheduled task, encrypted credential)
// plus the Windows build number, and aggregates them into a Report.
// Probes are independent: a failing probe lands in Report.Errors and the
// remaining probes still run. Nothing in this package mutates the machine.
package health
