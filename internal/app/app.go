// Package app provides the application context for kioskctl.
// It allows dependency injection for testing.
package app

import (
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/config"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
)

// App holds the application dependencies
type App struct {
	// Paths holds the configured paths
	Paths *config.Paths

	// FS is the file system used for all file access
	FS system.FileSystem

	// Exec runs external commands
	Exec system.CommandExecutor
}

// Option is a function that configures the App
type Option func(*App)

// WithPaths sets custom paths
func WithPaths(paths *config.Paths) Option {
	return func(a *App) {
		a.Paths = paths
	}
}

// WithFS sets a custom file system
func WithFS(fs system.FileSystem) Option {
	return func(a *App) {
		a.FS = fs
	}
}

// WithExec sets a custom command executor
func WithExec(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Exec = exec
	}
}

// New creates a new App with the given options.
// Unset dependencies fall back to the real implementations.
func New(opts ...Option) *App {
	app := &App{
		Paths: config.DefaultPaths(),
		FS:    system.DefaultFS(),
		Exec:  system.DefaultExecutor(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
