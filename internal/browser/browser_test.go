package browser

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/config"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
)

func loadDefaultCatalog(t *testing.T) Catalog {
	t.Helper()
	catalog, err := LoadCatalog(system.NewMockFS(), `C:\ProgramData\kioskctl`)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	return catalog
}

func TestLoadCatalog_EmbeddedDefault(t *testing.T) {
	catalog := loadDefaultCatalog(t)

	edge, err := catalog.Entry(config.BrowserEdge)
	if err != nil {
		t.Fatalf("Entry(edge) error = %v", err)
	}
	if edge.Executable != "msedge.exe" {
		t.Errorf("edge executable = %q, want msedge.exe", edge.Executable)
	}
	if edge.Winget != "Microsoft.Edge" {
		t.Errorf("edge winget id = %q", edge.Winget)
	}
	if len(edge.ProbePaths) == 0 {
		t.Error("edge has no probe paths")
	}

	chrome, err := catalog.Entry(config.BrowserChrome)
	if err != nil {
		t.Fatalf("Entry(chrome) error = %v", err)
	}
	if chrome.Executable != "chrome.exe" {
		t.Errorf("chrome executable = %q, want chrome.exe", chrome.Executable)
	}
}

func TestLoadCatalog_OperatorOverride(t *testing.T) {
	fs := system.NewMockFS()
	// Key the override under the same path LoadCatalog computes, so the
	// lookup matches regardless of the host separator.
	fs.AddFile(filepath.Join(`C:\ProgramData\kioskctl`, CatalogFileName), []byte(`
[edge]
name = "Edge"
executable = "custom-edge.exe"
winget = "Microsoft.Edge"
probe_paths = ['D:\Portable\edge.exe']
kiosk_args = ["--kiosk", "{url}"]

[chrome]
name = "Chrome"
executable = "chrome.exe"
winget = "Google.Chrome"
probe_paths = ['D:\Portable\chrome.exe']
kiosk_args = ["--kiosk", "{url}"]
`), 0644)

	catalog, err := LoadCatalog(fs, `C:\ProgramData\kioskctl`)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	edge, _ := catalog.Entry(config.BrowserEdge)
	if edge.Executable != "custom-edge.exe" {
		t.Errorf("executable = %q, want operator override", edge.Executable)
	}
}

func TestLoadCatalog_IncompleteOverride(t *testing.T) {
	fs := system.NewMockFS()
	fs.AddFile(filepath.Join(`C:\ProgramData\kioskctl`, CatalogFileName), []byte(`
[edge]
name = "Edge"
executable = "msedge.exe"
winget = "Microsoft.Edge"
probe_paths = []
kiosk_args = ["--kiosk", "{url}"]
`), 0644)

	if _, err := LoadCatalog(fs, `C:\ProgramData\kioskctl`); err == nil {
		t.Error("LoadCatalog() expected error for catalog missing chrome")
	}
}

func TestKioskArguments(t *testing.T) {
	catalog := loadDefaultCatalog(t)
	edge, _ := catalog.Entry(config.BrowserEdge)

	args := edge.KioskArguments("http://cnc-controller.local/")

	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "--kiosk http://cnc-controller.local/") {
		t.Errorf("args %q missing kiosk flag with url", joined)
	}
	if strings.Contains(joined, "{url}") {
		t.Errorf("args %q still carry the placeholder", joined)
	}
	// Expanding must not mutate the catalog entry.
	if strings.Contains(strings.Join(edge.KioskArgs, " "), "cnc-controller") {
		t.Error("KioskArguments mutated the catalog template")
	}
}

func TestLaunchCommandLine(t *testing.T) {
	catalog := loadDefaultCatalog(t)
	chrome, _ := catalog.Entry(config.BrowserChrome)

	line := chrome.LaunchCommandLine(`C:\Program Files\Google\Chrome\Application\chrome.exe`, "http://mill.local/")
	if !strings.Contains(line, "chrome.exe") {
		t.Errorf("command line %q missing executable", line)
	}
	if !strings.Contains(line, "--kiosk") {
		t.Errorf("command line %q missing kiosk flag", line)
	}
}

func TestLocate_KnownPath(t *testing.T) {
	catalog := loadDefaultCatalog(t)
	fs := system.NewMockFS()
	fs.AddFile(`C:\Program Files (x86)\Microsoft\Edge\Application\msedge.exe`, []byte("MZ"), 0755)

	l := NewLocator(system.NewMockExecutor(), fs, catalog)
	path, err := l.Locate(context.Background(), config.BrowserEdge)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if path != `C:\Program Files (x86)\Microsoft\Edge\Application\msedge.exe` {
		t.Errorf("Locate() = %q, want the probed path", path)
	}
}

func TestLocate_PathFallback(t *testing.T) {
	catalog := loadDefaultCatalog(t)
	exec := system.NewMockExecutor()
	exec.AddLookPath("chrome.exe", `D:\Apps\chrome.exe`)

	l := NewLocator(exec, system.NewMockFS(), catalog)
	path, err := l.Locate(context.Background(), config.BrowserChrome)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if path != `D:\Apps\chrome.exe` {
		t.Errorf("Locate() = %q, want PATH fallback", path)
	}
}

func TestLocate_NotFoundIsNotAnError(t *testing.T) {
	catalog := loadDefaultCatalog(t)

	l := NewLocator(system.NewMockExecutor(), system.NewMockFS(), catalog)
	path, err := l.Locate(context.Background(), config.BrowserEdge)
	if err != nil {
		t.Fatalf("Locate() error = %v, want nil for a missing browser", err)
	}
	if path != "" {
		t.Errorf("Locate() = %q, want empty path", path)
	}
}

func TestInstall(t *testing.T) {
	catalog := loadDefaultCatalog(t)
	exec := system.NewMockExecutor()
	exec.AddLookPath("winget", `C:\Windows\winget.exe`)

	i := NewInstaller(exec, catalog)
	if err := i.Install(context.Background(), config.BrowserEdge); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	cmd, _ := exec.LastCommand()
	line := cmd.Line()
	if !strings.Contains(line, "winget install --id Microsoft.Edge --exact") {
		t.Errorf("command %q is not the expected winget invocation", line)
	}
}

func TestInstall_WingetMissing(t *testing.T) {
	catalog := loadDefaultCatalog(t)
	i := NewInstaller(system.NewMockExecutor(), catalog)

	err := i.Install(context.Background(), config.BrowserChrome)
	if err == nil {
		t.Fatal("Install() expected error without winget")
	}
	if !strings.Contains(err.Error(), "manually") {
		t.Errorf("error %q does not carry manual guidance", err)
	}
}
