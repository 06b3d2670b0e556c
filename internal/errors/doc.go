// Package errors provides typed errors with exit codes for kioskctl.
//
// # Error Types
//
// KioskError is the base error type that wraps an error with an exit code:
//
//	type KioskError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Each failure class maps to a distinct, documented exit code so
// automation can tell "the operator said no" apart from "something
// broke":
//
//	ExitSuccess              = 0  // Success
//	ExitGeneralError         = 1  // General/unknown errors
//	ExitConfigError          = 2  // Configuration error
//	ExitConfirmationRequired = 3  // CLI auto-logon opt-out not confirmed
//	ExitAborted              = 4  // Operator declined to continue
//	ExitProvisionFailed      = 5  // Fatal provisioning failure
//	ExitSecretError          = 6  // Credential artifact operation failed
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.ConfigError("failed to parse settings", err)
//	errors.ConfirmationRequired(msg)
//	errors.Aborted("build below advisory minimum")
//	errors.ProvisionFailed("failed to create account", err)
//	errors.SecretError("failed to encrypt credential", err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
