package system

import (
	"context"
	"errors"
	"io/fs"
	"testing"
)

func TestMockFS_ReadWrite(t *testing.T) {
	m := NewMockFS()

	if err := m.WriteFile(`C:\test\file.txt`, []byte("hello"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := m.ReadFile(`C:\test\file.txt`)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("ReadFile() = %q, want %q", data, "hello")
	}
}

func TestMockFS_ReadMissing(t *testing.T) {
	m := NewMockFS()

	_, err := m.ReadFile(`C:\missing`)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFS_Exists(t *testing.T) {
	m := NewMockFS()
	m.AddFile(`C:\present\file.txt`, []byte("x"), 0644)

	if !m.Exists(`C:\present\file.txt`) {
		t.Error("Exists() = false for added file")
	}
	if m.Exists(`C:\absent`) {
		t.Error("Exists() = true for missing path")
	}
}

func TestMockFS_Remove(t *testing.T) {
	m := NewMockFS()
	m.AddFile(`C:\file`, []byte("x"), 0644)

	if err := m.Remove(`C:\file`); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if m.Exists(`C:\file`) {
		t.Error("file still exists after Remove()")
	}
	if err := m.Remove(`C:\file`); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("second Remove() error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFS_ErrorInjection(t *testing.T) {
	m := NewMockFS()
	injected := errors.New("disk on fire")
	m.WriteFileErr = injected

	if err := m.WriteFile(`C:\x`, nil, 0644); !errors.Is(err, injected) {
		t.Errorf("WriteFile() error = %v, want injected error", err)
	}
}

func TestMockExecutor_RecordsCommands(t *testing.T) {
	m := NewMockExecutor()
	ctx := context.Background()

	if _, err := m.Execute(ctx, "schtasks", "/Query", "/TN", "KioskLaunch"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	cmd, ok := m.LastCommand()
	if !ok {
		t.Fatal("LastCommand() found no commands")
	}
	if cmd.Name != "schtasks" {
		t.Errorf("Name = %q, want %q", cmd.Name, "schtasks")
	}
	if cmd.Line() != "schtasks /Query /TN KioskLaunch" {
		t.Errorf("Line() = %q", cmd.Line())
	}
}

func TestMockExecutor_SubstringMatch(t *testing.T) {
	m := NewMockExecutor()
	ctx := context.Background()

	m.AddResponse("Get-LocalUser", []byte("kiosk"), nil)

	out, err := m.Execute(ctx, "powershell", "-NoProfile", "-Command", "Get-LocalUser -Name kiosk")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if string(out) != "kiosk" {
		t.Errorf("output = %q, want %q", out, "kiosk")
	}
}

func TestMockExecutor_LongestMatchWins(t *testing.T) {
	m := NewMockExecutor()
	ctx := context.Background()

	m.AddResponse("reg query", []byte("generic"), nil)
	m.AddResponse("reg query HKLM", []byte("specific"), nil)

	out, _ := m.Execute(ctx, "reg", "query", "HKLM", "/v", "CurrentBuildNumber")
	if string(out) != "specific" {
		t.Errorf("output = %q, want longest pattern to win", out)
	}
}

func TestMockExecutor_StdinRecorded(t *testing.T) {
	m := NewMockExecutor()
	ctx := context.Background()

	if _, err := m.ExecuteWithStdin(ctx, "secret-input", "powershell", "-Command", "x"); err != nil {
		t.Fatalf("ExecuteWithStdin() error = %v", err)
	}

	cmd, _ := m.LastCommand()
	if cmd.Stdin != "secret-input" {
		t.Errorf("Stdin = %q, want %q", cmd.Stdin, "secret-input")
	}
}

func TestMockExecutor_LookPath(t *testing.T) {
	m := NewMockExecutor()
	m.AddLookPath("msedge.exe", `C:\Program Files (x86)\Microsoft\Edge\Application\msedge.exe`)

	path, err := m.LookPath("msedge.exe")
	if err != nil {
		t.Fatalf("LookPath() error = %v", err)
	}
	if path == "" {
		t.Error("LookPath() returned empty path")
	}

	if _, err := m.LookPath("chrome.exe"); err == nil {
		t.Error("LookPath() expected error for unregistered executable")
	}
}

func TestMockExecutor_DefaultResponse(t *testing.T) {
	m := NewMockExecutor()
	m.DefaultResponse = MockResponse{Output: []byte("fallback")}

	out, err := m.Execute(context.Background(), "whatever")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if string(out) != "fallback" {
		t.Errorf("output = %q, want default response", out)
	}
}
