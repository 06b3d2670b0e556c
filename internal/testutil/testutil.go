// Package testutil provides test utilities for command tests
package testutil

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/app"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/config"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
)

// TestEnv holds the test environment
type TestEnv struct {
	T     *testing.T
	Paths *config.Paths
	FS    *system.MockFS
	Exec  *system.MockExecutor
	App   *app.App
}

// NewTestEnv creates a test environment backed by mocks and installs it
// as the app default. The original default is restored via t.Cleanup.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	paths := &config.Paths{
		ConfigDir: `C:\ProgramData\kioskctl`,
		StateDir:  t.TempDir(),
	}

	fs := system.NewMockFS()
	exec := system.NewMockExecutor()

	testApp := app.New(
		app.WithPaths(paths),
		app.WithFS(fs),
		app.WithExec(exec),
	)

	originalDefault := app.Default
	app.SetDefault(testApp)
	t.Cleanup(func() {
		app.SetDefault(originalDefault)
	})

	return &TestEnv{
		T:     t,
		Paths: paths,
		FS:    fs,
		Exec:  exec,
		App:   testApp,
	}
}

// WriteSettings places a settings file in the mock config directory.
func (e *TestEnv) WriteSettings(data []byte) {
	e.T.Helper()
	e.FS.AddFile(e.Paths.SettingsPath(), data, 0o644)
}

// AddCredential places a credential artifact and returns its path.
func (e *TestEnv) AddCredential() string {
	e.T.Helper()
	path := filepath.Join(e.Paths.ConfigDir, config.DefaultCredentialFileName)
	e.FS.AddFile(path, []byte("01000000d08c9ddf0115"), 0o600)
	return path
}

// ProvisionedMachine configures the mock executor and file system to
// look like a healthy, fully provisioned kiosk.
func (e *TestEnv) ProvisionedMachine() {
	e.T.Helper()

	e.Exec.AddResponse("Get-LocalUser", []byte("exists"), nil)
	e.Exec.AddResponse(`reg query HKLM\SOFTWARE\Microsoft\Windows NT\CurrentVersion\Winlogon`,
		[]byte("    AutoAdminLogon    REG_SZ    1\r\n    DefaultUserName    REG_SZ    cncpendant\r\n"), nil)
	e.Exec.AddResponse(`reg query HKLM\SOFTWARE\Microsoft\Windows NT\CurrentVersion /v CurrentBuildNumber`,
		[]byte("    CurrentBuildNumber    REG_SZ    19045\r\n"), nil)
	e.Exec.AddResponse("schtasks /Query", []byte(config.TaskName), nil)

	e.FS.AddFile(`C:\Program Files (x86)\Microsoft\Edge\Application\msedge.exe`, []byte("exe"), 0o755)
	e.AddCredential()
}

// BareMachine configures the mocks to look like an unprovisioned
// machine on a current build.
func (e *TestEnv) BareMachine() {
	e.T.Helper()

	e.Exec.AddResponse("Get-LocalUser", []byte(""), nil)
	e.Exec.AddResponse(`reg query HKLM\SOFTWARE\Microsoft\Windows NT\CurrentVersion\Winlogon`,
		[]byte("    AutoAdminLogon    REG_SZ    0\r\n"), nil)
	e.Exec.AddResponse(`reg query HKLM\SOFTWARE\Microsoft\Windows NT\CurrentVersion /v CurrentBuildNumber`,
		[]byte("    CurrentBuildNumber    REG_SZ    19045\r\n"), nil)
	e.Exec.AddResponse("schtasks /Query", nil, errTaskNotFound)

	e.FS.AddFile(`C:\Program Files (x86)\Microsoft\Edge\Application\msedge.exe`, []byte("exe"), 0o755)
}

var errTaskNotFound = errors.New("ERROR: The system cannot find the file specified.")
