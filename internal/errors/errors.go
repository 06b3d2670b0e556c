package errors

import (
	"errors"
	"fmt"
)

// Exit codes for kioskctl
const (
	ExitSuccess              = 0
	ExitGeneralError         = 1
	ExitConfigError          = 2
	ExitConfirmationRequired = 3
	ExitAborted              = 4
	ExitProvisionFailed      = 5
	ExitSecretError          = 6
)

// KioskError is the base error type for kioskctl
type KioskError struct {
	Code    int
	Message string
	Cause   error
}

func (e *KioskError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *KioskError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *KioskError) ExitCode() int {
	return e.Code
}

// New creates a new KioskError
func New(code int, message string) *KioskError {
	return &KioskError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a KioskError
func Wrap(code int, message string, cause error) *KioskError {
	return &KioskError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *KioskError {
	return Wrap(ExitConfigError, message, cause)
}

// ConfirmationRequired returns an error for an unconfirmed CLI request to
// switch auto-logon off. The message carries the remediation (which two
// flags to pass together) and must reach the operator verbatim.
func ConfirmationRequired(message string) *KioskError {
	return New(ExitConfirmationRequired, message)
}

// Aborted returns an error for a run the operator declined to continue
func Aborted(message string) *KioskError {
	return New(ExitAborted, message)
}

// ProvisionFailed returns an error for a fatal provisioning step
func ProvisionFailed(message string, cause error) *KioskError {
	return Wrap(ExitProvisionFailed, message, cause)
}

// SecretError returns an error for credential artifact operations
func SecretError(message string, cause error) *KioskError {
	return Wrap(ExitSecretError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *KioskError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var kioskErr *KioskError
	if errors.As(err, &kioskErr) {
		return kioskErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
