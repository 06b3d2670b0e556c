package browser

import (
	"context"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/config"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/logging"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
)

// Locator finds an installed browser executable.
type Locator struct {
	fs      system.FileSystem
	exec    system.CommandExecutor
	catalog Catalog
}

// NewLocator creates a Locator over the given catalog.
func NewLocator(exec system.CommandExecutor, fs system.FileSystem, catalog Catalog) *Locator {
	return &Locator{fs: fs, exec: exec, catalog: catalog}
}

// Locate returns the executable path for a browser kind, probing the
// catalog's known install locations and then PATH. "Not found" is a
// normal result, reported as an empty path with a nil error.
func (l *Locator) Locate(ctx context.Context, kind config.BrowserKind) (string, error) {
	entry, err := l.catalog.Entry(kind)
	if err != nil {
		return "", err
	}

	for _, path := range entry.ProbePaths {
		if l.fs.Exists(path) {
			logging.Debug("browser found at known path", "browser", kind, "path", path)
			return path, nil
		}
	}

	if path, err := l.exec.LookPath(entry.Executable); err == nil {
		logging.Debug("browser found on PATH", "browser", kind, "path", path)
		return path, nil
	}

	logging.Debug("browser not found", "browser", kind)
	return "", nil
}
