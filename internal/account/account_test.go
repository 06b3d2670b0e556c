package account

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
)

func TestExists(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("Get-LocalUser", []byte("exists\n"), nil)

	m := NewManager(exec, system.NewMockFS())
	got, err := m.Exists(context.Background(), "cncpendant")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !got {
		t.Error("Exists() = false, want true")
	}
}

func TestExists_Missing(t *testing.T) {
	exec := system.NewMockExecutor()
	// SilentlyContinue yields empty output, exit 0.
	m := NewManager(exec, system.NewMockFS())

	got, err := m.Exists(context.Background(), "cncpendant")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if got {
		t.Error("Exists() = true, want false")
	}
}

func TestCreate_NoPassword(t *testing.T) {
	exec := system.NewMockExecutor()
	m := NewManager(exec, system.NewMockFS())

	created, err := m.Create(context.Background(), "cncpendant", "CNC Pendant", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !created {
		t.Error("created = false, want true")
	}

	cmd, _ := exec.LastCommand()
	line := cmd.Line()
	if !strings.Contains(line, "New-LocalUser") {
		t.Errorf("command %q does not create a local user", line)
	}
	if !strings.Contains(line, "-NoPassword") {
		t.Errorf("command %q should create the account without a password", line)
	}
	if !strings.Contains(line, "Add-LocalGroupMember -Group 'Users'") {
		t.Errorf("command %q does not restrict the account to the Users group", line)
	}
}

func TestCreate_WithCredential(t *testing.T) {
	exec := system.NewMockExecutor()
	fs := system.NewMockFS()
	fs.AddFile(`C:\ProgramData\kioskctl\kiosk-password.txt`, []byte("dpapi-blob"), 0600)
	m := NewManager(exec, fs)

	created, err := m.Create(context.Background(), "cncpendant", "CNC Pendant", `C:\ProgramData\kioskctl\kiosk-password.txt`)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !created {
		t.Error("created = false, want true")
	}

	cmd, _ := exec.LastCommand()
	line := cmd.Line()
	if !strings.Contains(line, "ConvertTo-SecureString") {
		t.Errorf("command %q does not decrypt the credential inside PowerShell", line)
	}
	if strings.Contains(line, "dpapi-blob") {
		t.Errorf("command %q leaks the artifact contents onto the command line", line)
	}
}

func TestCreate_MissingCredentialFile(t *testing.T) {
	exec := system.NewMockExecutor()
	m := NewManager(exec, system.NewMockFS())

	_, err := m.Create(context.Background(), "cncpendant", "CNC Pendant", `C:\nope.txt`)
	if err == nil {
		t.Fatal("Create() expected error for missing credential file")
	}
	if !strings.Contains(err.Error(), `C:\nope.txt`) {
		t.Errorf("error %q does not name the missing file", err)
	}
}

func TestCreate_SkipsExisting(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("Get-LocalUser", []byte("exists"), nil)
	m := NewManager(exec, system.NewMockFS())

	created, err := m.Create(context.Background(), "cncpendant", "CNC Pendant", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created {
		t.Error("created = true, want false for an existing account")
	}

	// Only the existence probe should have run.
	if got := len(exec.Commands); got != 1 {
		t.Errorf("executed %d commands, want 1", got)
	}
}

func TestCreate_Fails(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("New-LocalUser", []byte("Access is denied."), errors.New("exit status 1"))
	m := NewManager(exec, system.NewMockFS())

	if _, err := m.Create(context.Background(), "cncpendant", "CNC Pendant", ""); err == nil {
		t.Error("Create() expected error when New-LocalUser fails")
	}
}

func TestDelete(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("Get-LocalUser", []byte("exists"), nil)
	m := NewManager(exec, system.NewMockFS())

	if err := m.Delete(context.Background(), "cncpendant"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	cmd, _ := exec.LastCommand()
	if !strings.Contains(cmd.Line(), "Remove-LocalUser") {
		t.Errorf("command %q does not remove the account", cmd.Line())
	}
}

func TestDelete_AbsentIsNoop(t *testing.T) {
	exec := system.NewMockExecutor()
	m := NewManager(exec, system.NewMockFS())

	if err := m.Delete(context.Background(), "cncpendant"); err != nil {
		t.Fatalf("Delete() error = %v, want nil for absent account", err)
	}
	if got := len(exec.Commands); got != 1 {
		t.Errorf("executed %d commands, want only the existence probe", got)
	}
}

func TestPsQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "'plain'"},
		{"O'Brien", "'O''Brien'"},
		{"", "''"},
	}
	for _, tt := range tests {
		if got := psQuote(tt.in); got != tt.want {
			t.Errorf("psQuote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
