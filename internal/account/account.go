// Package account provisions the restricted local kiosk account.
//
// All mutations go through PowerShell's LocalAccounts cmdlets. When a
// credential artifact is attached it is decrypted inside the PowerShell
// process via DPAPI; the plaintext never crosses into this process.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/logging"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
)

// Manager creates, inspects, and removes the local kiosk account.
type Manager struct {
	exec system.CommandExecutor
	fs   system.FileSystem
}

// NewManager creates an account Manager backed by the given executor.
func NewManager(exec system.CommandExecutor, fs system.FileSystem) *Manager {
	return &Manager{exec: exec, fs: fs}
}

// psQuote wraps s in PowerShell single quotes, doubling embedded quotes.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Exists reports whether the named local account exists.
func (m *Manager) Exists(ctx context.Context, name string) (bool, error) {
	script := fmt.Sprintf(
		"if (Get-LocalUser -Name %s -ErrorAction SilentlyContinue) { 'exists' }",
		psQuote(name))

	out, err := m.exec.Execute(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	if err != nil {
		return false, fmt.Errorf("failed to query account %s: %w", name, err)
	}

	return strings.Contains(string(out), "exists"), nil
}

// Create ensures the named account exists as an unprivileged member of
// the Users group. Returns created=false when the account was already
// present (create-or-skip). credentialPath may be empty, in which case
// the account is created without a password; otherwise it names the
// DPAPI-encrypted artifact whose plaintext becomes the account password.
func (m *Manager) Create(ctx context.Context, name, displayName, credentialPath string) (bool, error) {
	exists, err := m.Exists(ctx, name)
	if err != nil {
		return false, err
	}
	if exists {
		logging.Debug("account already exists, skipping creation", "account", name)
		return false, nil
	}

	if credentialPath != "" && !m.fs.Exists(credentialPath) {
		return false, fmt.Errorf("credential file not found: %s", credentialPath)
	}

	var script string
	if credentialPath != "" {
		// ConvertTo-SecureString decrypts the DPAPI blob under the
		// current identity; the plaintext stays inside PowerShell.
		script = fmt.Sprintf(
			"$enc = Get-Content -Raw %s; "+
				"$sec = ConvertTo-SecureString $enc; "+
				"New-LocalUser -Name %s -FullName %s -Password $sec -AccountNeverExpires -PasswordNeverExpires | Out-Null; "+
				"Add-LocalGroupMember -Group 'Users' -Member %s",
			psQuote(credentialPath), psQuote(name), psQuote(displayName), psQuote(name))
	} else {
		script = fmt.Sprintf(
			"New-LocalUser -Name %s -FullName %s -NoPassword -AccountNeverExpires | Out-Null; "+
				"Add-LocalGroupMember -Group 'Users' -Member %s",
			psQuote(name), psQuote(displayName), psQuote(name))
	}

	out, err := m.exec.Execute(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	if err != nil {
		return false, fmt.Errorf("failed to create account %s: %w (output: %s)", name, err, strings.TrimSpace(string(out)))
	}

	logging.Debug("account created", "account", name)
	return true, nil
}

// Delete removes the named local account. Deleting an absent account is
// not an error.
func (m *Manager) Delete(ctx context.Context, name string) error {
	exists, err := m.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	script := fmt.Sprintf("Remove-LocalUser -Name %s", psQuote(name))
	out, err := m.exec.Execute(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w (output: %s)", name, err, strings.TrimSpace(string(out)))
	}

	logging.Debug("account deleted", "account", name)
	return nil
}
