// Package config owns the merged kiosk settings and the rules that
// produce them.
//
// # Resolution
//
// Three sources feed one immutable Settings record, in rising
// precedence: built-in defaults, the operator-owned settings file, and
// explicit command-line overrides. Each source above the defaults is
// expressed as an Overlay whose fields are pointers; a nil field means
// "this source does not set the field", so a legitimate zero value can
// never be confused with an unset one. Overlays are combined with
// mergo and then materialized over the defaults by Resolve.
//
// # Legacy compatibility
//
// Older settings files carry confirmAutoLogin instead of
// disableAutoLogin. A source that sets only the legacy key contributes
// disableAutoLogin = !confirmAutoLogin; an explicit disableAutoLogin in
// the same source always wins. The rule is applied per source before
// merging, so a file's legacy key can never shadow another source's
// explicit value.
//
// # Files
//
// The settings file is operator-edited JSON; comments and trailing
// commas are tolerated (JSONC). A file that fails to parse is discarded
// whole, never partially applied.
package config
