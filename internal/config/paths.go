package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/logging"
)

// Paths holds the configured directories. ConfigDir carries the
// operator-owned settings file and the credential artifact; StateDir
// carries run state such as the provisioning event log.
type Paths struct {
	ConfigDir string `env:"KIOSKCTL_CONFIG_DIR"`
	StateDir  string `env:"KIOSKCTL_STATE_DIR"`
}

// DefaultPaths returns the default path configuration, rooted under
// %ProgramData% and overridable via KIOSKCTL_CONFIG_DIR and
// KIOSKCTL_STATE_DIR.
func DefaultPaths() *Paths {
	base := os.Getenv("ProgramData")
	if base == "" {
		base = `C:\ProgramData`
	}

	p := &Paths{
		ConfigDir: filepath.Join(base, "kioskctl"),
		StateDir:  filepath.Join(base, "kioskctl", "state"),
	}

	// Unset variables leave the defaults untouched.
	if err := env.Parse(p); err != nil {
		logging.Warn("ignoring environment path overrides", "error", err)
	}

	return p
}

// SettingsPath returns the path of the operator settings file.
func (p *Paths) SettingsPath() string {
	return filepath.Join(p.ConfigDir, SettingsFileName)
}
