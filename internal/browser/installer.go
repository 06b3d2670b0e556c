package browser

import (
	"context"
	"fmt"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/config"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/logging"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
)

// Installer installs a browser through winget. The install side effect
// only runs when the settings permit it and the operator passed the
// explicit install flag.
type Installer struct {
	exec    system.CommandExecutor
	catalog Catalog
}

// NewInstaller creates an Installer over the given catalog.
func NewInstaller(exec system.CommandExecutor, catalog Catalog) *Installer {
	return &Installer{exec: exec, catalog: catalog}
}

// Available reports whether the winget install mechanism is present.
func (i *Installer) Available() bool {
	_, err := i.exec.LookPath("winget")
	return err == nil
}

// Install installs the browser via winget. Interactive: winget's
// progress output goes straight to the operator's terminal.
func (i *Installer) Install(ctx context.Context, kind config.BrowserKind) error {
	entry, err := i.catalog.Entry(kind)
	if err != nil {
		return err
	}

	if !i.Available() {
		return fmt.Errorf("winget is not available; install %s manually and re-run", entry.Name)
	}

	logging.Debug("installing browser", "browser", kind, "package", entry.Winget)

	err = i.exec.ExecuteInteractive(ctx, "winget",
		"install", "--id", entry.Winget, "--exact",
		"--accept-package-agreements", "--accept-source-agreements")
	if err != nil {
		return fmt.Errorf("winget install of %s failed: %w", entry.Name, err)
	}

	return nil
}
