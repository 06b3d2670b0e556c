package provision

import (
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/config"
)

// ConfirmFunc asks the operator a yes/no question and reports the
// answer. May return an error when no interactive terminal is
// available.
type ConfirmFunc func(question string) (bool, error)

// Options controls a single provisioning run.
type Options struct {
	// Settings is the fully resolved configuration record.
	Settings config.Settings

	// CredentialPath is the resolved location of the DPAPI credential
	// artifact. Empty means the run has no stored secret.
	CredentialPath string

	// DryRun plans mutations instead of applying them.
	DryRun bool

	// DisableRequestedViaCLI records that --disable-autologon was
	// passed on the command line this run.
	DisableRequestedViaCLI bool

	// ConfirmDisable records that --confirm was passed alongside the
	// opt-out flag.
	ConfirmDisable bool

	// AssumeYes skips interactive prompts, answering yes.
	AssumeYes bool

	// Confirm is the prompt used by the advisory build gate. When nil
	// the gate warns and continues, as if the run were non-interactive.
	Confirm ConfirmFunc
}

// Result reports what a provisioning run did (or, under DryRun, would
// have done).
type Result struct {
	AccountCreated   bool
	BrowserPath      string
	BrowserInstalled bool
	AutoLogonEnabled bool
	TaskRegistered   bool

	// Planned lists the mutations a dry run would apply.
	Planned []string

	// Warnings lists non-fatal degradations with manual remediation
	// guidance.
	Warnings []string
}
