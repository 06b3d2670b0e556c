package autologon

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
)

const winlogonEnabled = `
HKEY_LOCAL_MACHINE\SOFTWARE\Microsoft\Windows NT\CurrentVersion\Winlogon
    AutoAdminLogon    REG_SZ    1
    DefaultUserName    REG_SZ    cncpendant
`

const winlogonDisabled = `
HKEY_LOCAL_MACHINE\SOFTWARE\Microsoft\Windows NT\CurrentVersion\Winlogon
    AutoAdminLogon    REG_SZ    0
`

func TestStatus_Enabled(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("reg query", []byte(winlogonEnabled), nil)
	c := NewConfigurator(exec, system.NewMockFS())

	state, err := c.Status(context.Background())
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if !state.Enabled {
		t.Error("Enabled = false, want true")
	}
	if state.User != "cncpendant" {
		t.Errorf("User = %q, want %q", state.User, "cncpendant")
	}
}

func TestStatus_Disabled(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("reg query", []byte(winlogonDisabled), nil)
	c := NewConfigurator(exec, system.NewMockFS())

	state, err := c.Status(context.Background())
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if state.Enabled {
		t.Error("Enabled = true, want false")
	}
}

func TestStatus_MissingValues(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("reg query", []byte("HKEY_LOCAL_MACHINE\\...\\Winlogon\n"), nil)
	c := NewConfigurator(exec, system.NewMockFS())

	state, err := c.Status(context.Background())
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if state.Enabled || state.User != "" {
		t.Errorf("state = %+v, want zero state when values absent", state)
	}
}

func TestEnable(t *testing.T) {
	exec := system.NewMockExecutor()
	fs := system.NewMockFS()
	fs.AddFile(`C:\ProgramData\kioskctl\kiosk-password.txt`, []byte("dpapi-blob"), 0600)
	c := NewConfigurator(exec, fs)

	err := c.Enable(context.Background(), "cncpendant", `C:\ProgramData\kioskctl\kiosk-password.txt`)
	if err != nil {
		t.Fatalf("Enable() error = %v", err)
	}

	cmd, _ := exec.LastCommand()
	line := cmd.Line()
	if !strings.Contains(line, "AutoAdminLogon -Value '1'") {
		t.Errorf("command %q does not flip AutoAdminLogon on", line)
	}
	if !strings.Contains(line, "DefaultUserName") {
		t.Errorf("command %q does not set DefaultUserName", line)
	}
	if !strings.Contains(line, "ConvertTo-SecureString") {
		t.Errorf("command %q does not decrypt the credential inside PowerShell", line)
	}
	if strings.Contains(line, "dpapi-blob") {
		t.Errorf("command %q leaks the artifact contents", line)
	}
}

func TestEnable_NoCredential(t *testing.T) {
	c := NewConfigurator(system.NewMockExecutor(), system.NewMockFS())

	err := c.Enable(context.Background(), "cncpendant", "")
	if err == nil {
		t.Fatal("Enable() expected error without a credential artifact")
	}
	if !strings.Contains(err.Error(), "secret set") {
		t.Errorf("error %q does not point at the remediation command", err)
	}
}

func TestEnable_MissingFile(t *testing.T) {
	c := NewConfigurator(system.NewMockExecutor(), system.NewMockFS())

	if err := c.Enable(context.Background(), "cncpendant", `C:\nope`); err == nil {
		t.Error("Enable() expected error for missing credential file")
	}
}

func TestDisable(t *testing.T) {
	exec := system.NewMockExecutor()
	c := NewConfigurator(exec, system.NewMockFS())

	if err := c.Disable(context.Background()); err != nil {
		t.Fatalf("Disable() error = %v", err)
	}

	cmd, _ := exec.LastCommand()
	line := cmd.Line()
	if !strings.Contains(line, "AutoAdminLogon -Value '0'") {
		t.Errorf("command %q does not flip AutoAdminLogon off", line)
	}
	if !strings.Contains(line, "Remove-ItemProperty") {
		t.Errorf("command %q does not clear the stored credential values", line)
	}
}

func TestDisable_CommandFails(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("AutoAdminLogon", []byte("Access is denied."), errors.New("exit status 1"))
	c := NewConfigurator(exec, system.NewMockFS())

	if err := c.Disable(context.Background()); err == nil {
		t.Error("Disable() expected error when the registry write fails")
	}
}
