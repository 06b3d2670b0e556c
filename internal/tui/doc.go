// Package tui provides terminal user interface components for kioskctl.
//
// This package uses the Bubble Tea framework for the interactive
// pieces of the CLI.
//
// # Settings Wizard
//
// The wizard walks the operator through the kiosk settings for
// `kioskctl init`:
//
//	settings, err := tui.RunWizard(config.DefaultSettings(), catalog)
//	if settings == nil {
//	    // cancelled
//	}
//
// Steps: account name, display name, target URL, browser selection,
// auto-logon/install toggles, minimum build, confirmation. Esc goes
// back one step (or cancels from the first), Ctrl+C cancels anywhere.
//
// # Confirm Prompt
//
// Confirm presents a yes/no question, used by the advisory build gate:
//
//	ok, err := tui.Confirm("Continue anyway?")
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
