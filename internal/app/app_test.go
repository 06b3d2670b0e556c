package app

import (
	"testing"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/config"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
)

func TestNew(t *testing.T) {
	app := New()

	if app == nil {
		t.Fatal("New() returned nil")
	}

	// Should have default paths and real implementations
	if app.Paths == nil {
		t.Error("Paths should not be nil")
	}
	if app.FS == nil {
		t.Error("FS should not be nil")
	}
	if app.Exec == nil {
		t.Error("Exec should not be nil")
	}
}

func TestNew_WithPaths(t *testing.T) {
	customPaths := &config.Paths{
		ConfigDir: `C:\custom\config`,
		StateDir:  `C:\custom\state`,
	}

	app := New(WithPaths(customPaths))

	if app.Paths != customPaths {
		t.Error("WithPaths did not set custom paths")
	}
}

func TestNew_WithFS(t *testing.T) {
	mockFS := system.NewMockFS()

	app := New(WithFS(mockFS))

	if app.FS != mockFS {
		t.Error("WithFS did not set file system")
	}
}

func TestNew_WithExec(t *testing.T) {
	mockExec := system.NewMockExecutor()

	app := New(WithExec(mockExec))

	if app.Exec != mockExec {
		t.Error("WithExec did not set executor")
	}
}

func TestNew_MultipleOptions(t *testing.T) {
	customPaths := &config.Paths{ConfigDir: `C:\custom`}
	mockFS := system.NewMockFS()
	mockExec := system.NewMockExecutor()

	app := New(
		WithPaths(customPaths),
		WithFS(mockFS),
		WithExec(mockExec),
	)

	if app.Paths != customPaths {
		t.Error("Paths not set correctly")
	}
	if app.FS != mockFS {
		t.Error("FS not set correctly")
	}
	if app.Exec != mockExec {
		t.Error("Exec not set correctly")
	}
}

func TestSetDefault(t *testing.T) {
	// Save original default
	original := Default
	defer func() { Default = original }()

	customApp := New(WithPaths(&config.Paths{ConfigDir: `C:\custom`}))
	SetDefault(customApp)

	if Default != customApp {
		t.Error("SetDefault did not update Default")
	}
}

func TestResetDefault(t *testing.T) {
	// Save original default
	original := Default
	defer func() { Default = original }()

	// Set a custom default
	customApp := New(WithPaths(&config.Paths{ConfigDir: `C:\custom`}))
	SetDefault(customApp)

	// Reset to default
	ResetDefault()

	// Should have a new default app with default paths
	if Default == customApp {
		t.Error("ResetDefault did not create new Default")
	}
	if Default.Paths == nil {
		t.Error("ResetDefault should create app with default paths")
	}
}
