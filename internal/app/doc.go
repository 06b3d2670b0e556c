// Package app provides the application context for kioskctl.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Paths *config.Paths          // File system paths
//	    FS    system.FileSystem      // File access
//	    Exec  system.CommandExecutor // External command execution
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	a := app.New()
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithPaths(testPaths),
//	    app.WithFS(mockFS),
//	    app.WithExec(mockExec),
//	)
//
// # Available Options
//
//	WithPaths(paths) // Custom path configuration
//	WithFS(fs)       // Custom file system
//	WithExec(exec)   // Custom command executor
package app
