package cmd

import (
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/app"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/config"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/logging"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
)

// paths returns the default paths configuration.
// This is a helper to reduce repetition in commands.
func paths() *config.Paths {
	return app.Default.Paths
}

// fsys returns the application file system.
func fsys() system.FileSystem {
	return app.Default.FS
}

// executor returns the application command executor.
func executor() system.CommandExecutor {
	return app.Default.Exec
}

// settingsPath resolves the settings file path for a command's --config
// flag; empty means the default location.
func settingsPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return paths().SettingsPath()
}

// loadFileOverlay reads the settings file overlay. A missing file is
// normal (nil overlay); an unreadable or malformed file is surfaced as
// a warning and discarded whole, never partially applied.
func loadFileOverlay(path string) *config.Overlay {
	if !fsys().Exists(path) {
		logging.Debug("no settings file", "path", path)
		return nil
	}

	overlay, err := config.LoadOverlay(fsys(), path)
	if err != nil {
		logWarning("Ignoring settings file: %v", err)
		return nil
	}
	return overlay
}

// resolveSettings merges defaults, the settings file and the CLI
// overlay into the effective settings for this run.
func resolveSettings(configFlag string, cli *config.Overlay) (config.Settings, error) {
	file := loadFileOverlay(settingsPath(configFlag))
	return config.Resolve(config.DefaultSettings(), file, cli)
}

// credentialPath resolves the credential artifact location for the
// given settings. When the settings carry no reference, the artifact
// `kioskctl secret set` writes is used if present.
func credentialPath(s config.Settings) (string, error) {
	path, err := config.CredentialPath(paths(), s.EncryptedPasswordFile)
	if err != nil || path != "" {
		return path, err
	}

	fallback, err := config.CredentialPath(paths(), config.DefaultCredentialFileName)
	if err != nil {
		return "", err
	}
	if fsys().Exists(fallback) {
		return fallback, nil
	}
	return "", nil
}

func boolStatus(b bool) string {
	if b {
		return "✓"
	}
	return "✗"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
