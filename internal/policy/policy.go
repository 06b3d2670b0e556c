// Package policy decides whether automatic sign-in may be enabled.
//
// The decision is pure: it reads the already-merged settings flags plus
// two booleans describing the current invocation's command line, and it
// never touches storage, the registry, or OS services. Callers act on
// the returned boolean and surface the error message verbatim.
package policy

import (
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/errors"
)

// ConfirmationMessage is shown when a CLI request to switch auto-logon
// off arrives without the confirmation flag. It must reach the operator
// unchanged.
const ConfirmationMessage = "disabling auto-logon was requested on the command line but not confirmed; " +
	"re-run with both --disable-autologon and --confirm to apply it"

// ShouldEnableAutoLogon reconciles the merged settings with the current
// invocation's command-line intent. Evaluated strictly in order:
//
//  1. enable=false: the master switch is off, nothing else matters.
//  2. disable=true: auto-logon stays off. If the opt-out was requested
//     on this run's command line and not confirmed, the function
//     refuses to decide silently and fails instead; a bare flag could
//     be an accidental invocation.
//  3. Otherwise auto-logon is enabled.
//
// disableRequestedViaCLI and confirmedViaCLI are deliberately not part
// of the settings record: "the operator explicitly passed this flag on
// this run" is not expressible from merged settings alone.
func ShouldEnableAutoLogon(enable, disable, disableRequestedViaCLI, confirmedViaCLI bool) (bool, error) {
	if !enable {
		return false, nil
	}

	if disable {
		if disableRequestedViaCLI && !confirmedViaCLI {
			return false, errors.ConfirmationRequired(ConfirmationMessage)
		}
		return false, nil
	}

	return true, nil
}
