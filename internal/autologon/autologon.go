// Package autologon reconciles the Winlogon automatic sign-in registry
// values with the policy outcome.
//
// Enabling writes AutoAdminLogon, DefaultUserName, and DefaultPassword
// under the Winlogon key; the password value is produced by decrypting
// the DPAPI credential artifact inside PowerShell, so this process
// never handles the plaintext. Disabling clears all three values.
package autologon

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/logging"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
)

// winlogonKey is the registry key that controls automatic sign-in.
const winlogonKey = `HKLM\SOFTWARE\Microsoft\Windows NT\CurrentVersion\Winlogon`

// Configurator reads and writes the auto-logon registry state.
type Configurator struct {
	exec system.CommandExecutor
	fs   system.FileSystem
}

// NewConfigurator creates a Configurator backed by the given executor.
func NewConfigurator(exec system.CommandExecutor, fs system.FileSystem) *Configurator {
	return &Configurator{exec: exec, fs: fs}
}

// State describes the current auto-logon registry values.
type State struct {
	Enabled bool
	User    string
}

var (
	autoAdminRegex   = regexp.MustCompile(`AutoAdminLogon\s+REG_SZ\s+(\S+)`)
	defaultUserRegex = regexp.MustCompile(`DefaultUserName\s+REG_SZ\s+(\S+)`)
)

// Status reads the current auto-logon state from the registry.
func (c *Configurator) Status(ctx context.Context) (State, error) {
	out, err := c.exec.Execute(ctx, "reg", "query", winlogonKey)
	if err != nil {
		return State{}, fmt.Errorf("failed to query Winlogon key: %w", err)
	}

	state := State{}
	if m := autoAdminRegex.FindSubmatch(out); m != nil {
		state.Enabled = string(m[1]) == "1"
	}
	if m := defaultUserRegex.FindSubmatch(out); m != nil {
		state.User = string(m[1])
	}
	return state, nil
}

// psQuote wraps s in PowerShell single quotes, doubling embedded quotes.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Enable switches automatic sign-in on for the given account. The
// credential artifact at credentialPath is decrypted inside PowerShell
// and written as DefaultPassword. Winlogon requires the plaintext value
// there; the operator opted in to that trade-off by enabling
// auto-logon.
func (c *Configurator) Enable(ctx context.Context, account, credentialPath string) error {
	if credentialPath == "" {
		return fmt.Errorf("auto-logon requires a credential artifact; run `kioskctl secret set` first")
	}
	if !c.fs.Exists(credentialPath) {
		return fmt.Errorf("credential file not found: %s", credentialPath)
	}

	script := fmt.Sprintf(
		"$enc = Get-Content -Raw %s; "+
			"$sec = ConvertTo-SecureString $enc; "+
			"$cred = New-Object System.Management.Automation.PSCredential(%s, $sec); "+
			"$key = 'HKLM:\\SOFTWARE\\Microsoft\\Windows NT\\CurrentVersion\\Winlogon'; "+
			"Set-ItemProperty -Path $key -Name AutoAdminLogon -Value '1'; "+
			"Set-ItemProperty -Path $key -Name DefaultUserName -Value %s; "+
			"Set-ItemProperty -Path $key -Name DefaultPassword -Value $cred.GetNetworkCredential().Password",
		psQuote(credentialPath), psQuote(account), psQuote(account))

	out, err := c.exec.Execute(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	if err != nil {
		return fmt.Errorf("failed to enable auto-logon: %w (output: %s)", err, strings.TrimSpace(string(out)))
	}

	logging.Debug("auto-logon enabled", "account", account)
	return nil
}

// Disable switches automatic sign-in off and clears the stored
// credential values. Disabling an already-disabled machine is a no-op.
func (c *Configurator) Disable(ctx context.Context) error {
	script := "$key = 'HKLM:\\SOFTWARE\\Microsoft\\Windows NT\\CurrentVersion\\Winlogon'; " +
		"Set-ItemProperty -Path $key -Name AutoAdminLogon -Value '0'; " +
		"Remove-ItemProperty -Path $key -Name DefaultPassword -ErrorAction SilentlyContinue; " +
		"Remove-ItemProperty -Path $key -Name DefaultUserName -ErrorAction SilentlyContinue"

	out, err := c.exec.Execute(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	if err != nil {
		return fmt.Errorf("failed to disable auto-logon: %w (output: %s)", err, strings.TrimSpace(string(out)))
	}

	logging.Debug("auto-logon disabled")
	return nil
}
