// Package secret produces and validates the opaque encrypted credential
// artifact.
//
// The artifact is a DPAPI blob created by PowerShell's
// ConvertFrom-SecureString under the encrypting account's identity;
// only that identity can decrypt it. The plaintext exists in this
// process only between the prompt and the pipe into PowerShell, and is
// never logged or written to disk.
package secret

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/logging"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
)

// PromptFunc reads a secret value from the operator without echoing it.
type PromptFunc func(label string) (string, error)

// TerminalPrompt reads a password from the controlling terminal.
func TerminalPrompt(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal; cannot prompt for %s", label)
	}

	fmt.Fprintf(os.Stderr, "%s: ", label)
	value, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}
	return string(value), nil
}

// Provisioner creates and validates credential artifacts.
type Provisioner struct {
	exec system.CommandExecutor
	fs   system.FileSystem

	// Prompt is replaceable for tests and non-interactive callers.
	Prompt PromptFunc
}

// NewProvisioner creates a Provisioner that prompts on the terminal.
func NewProvisioner(exec system.CommandExecutor, fs system.FileSystem) *Provisioner {
	return &Provisioner{exec: exec, fs: fs, Prompt: TerminalPrompt}
}

// encryptScript reads the plaintext from stdin and emits the DPAPI
// blob. Piping via stdin keeps the plaintext off the command line.
const encryptScript = `$p = [Console]::In.ReadToEnd().TrimEnd("` + "`r`n" + `"); ` +
	`ConvertTo-SecureString $p -AsPlainText -Force | ConvertFrom-SecureString`

// Save prompts for the kiosk account password twice and writes the
// encrypted artifact to path.
func (p *Provisioner) Save(ctx context.Context, path string) error {
	password, err := p.Prompt("Kiosk account password")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	confirm, err := p.Prompt("Confirm password")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	out, err := p.exec.ExecuteWithStdin(ctx, password, "powershell",
		"-NoProfile", "-NonInteractive", "-Command", encryptScript)
	if err != nil {
		return fmt.Errorf("failed to encrypt credential: %w", err)
	}

	blob := strings.TrimSpace(string(out))
	if blob == "" {
		return fmt.Errorf("encryption produced no output")
	}

	if err := p.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create credential directory: %w", err)
	}
	if err := p.fs.WriteFile(path, []byte(blob+"\r\n"), 0600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}

	logging.Debug("credential artifact written", "path", path)
	return nil
}

// Check verifies that the artifact at path decrypts under the current
// identity, without ever surfacing the plaintext.
func (p *Provisioner) Check(ctx context.Context, path string) error {
	if !p.fs.Exists(path) {
		return fmt.Errorf("credential file not found: %s", path)
	}

	script := fmt.Sprintf(
		"$enc = Get-Content -Raw '%s'; "+
			"$sec = ConvertTo-SecureString $enc; "+
			"if ($sec.Length -gt 0) { 'ok' }",
		strings.ReplaceAll(path, "'", "''"))

	out, err := p.exec.Execute(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	if err != nil {
		return fmt.Errorf("credential does not decrypt under the current identity: %w", err)
	}
	if !strings.Contains(string(out), "ok") {
		return fmt.Errorf("credential file is empty or malformed")
	}
	return nil
}

// Remove deletes the credential artifact. Removing an absent artifact
// is not an error.
func (p *Provisioner) Remove(path string) error {
	if err := p.fs.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove credential file: %w", err)
	}
	return nil
}
