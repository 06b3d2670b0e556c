// Package browser locates, installs, and describes the kiosk browsers.
//
// Probe paths, winget package IDs, and kiosk argument templates live in
// a TOML catalog: the embedded browsers.toml by default, replaced by an
// operator-provided browsers.toml in the config directory when present.
package browser

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kballard/go-shellquote"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/config"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/logging"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
)

//go:embed browsers.toml
var defaultCatalog []byte

// Entry describes one browser in the catalog.
type Entry struct {
	Name       string   `toml:"name"`
	Executable string   `toml:"executable"`
	Winget     string   `toml:"winget"`
	ProbePaths []string `toml:"probe_paths"`
	KioskArgs  []string `toml:"kiosk_args"`
}

// Catalog maps a browser kind to its entry.
type Catalog map[config.BrowserKind]Entry

// CatalogFileName is the operator override file under the config dir.
const CatalogFileName = "browsers.toml"

// LoadCatalog returns the browser catalog: the operator's browsers.toml
// from configDir when present, otherwise the embedded default.
func LoadCatalog(fsys system.FileSystem, configDir string) (Catalog, error) {
	data := defaultCatalog

	override := filepath.Join(configDir, CatalogFileName)
	if fsys.Exists(override) {
		read, err := fsys.ReadFile(override)
		if err != nil {
			return nil, fmt.Errorf("failed to read browser catalog %s: %w", override, err)
		}
		logging.Debug("using operator browser catalog", "path", override)
		data = read
	}

	var catalog Catalog
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse browser catalog: %w", err)
	}

	for _, kind := range []config.BrowserKind{config.BrowserEdge, config.BrowserChrome} {
		entry, ok := catalog[kind]
		if !ok {
			return nil, fmt.Errorf("browser catalog missing entry for %s", kind)
		}
		if entry.Executable == "" {
			return nil, fmt.Errorf("browser catalog entry %s has no executable", kind)
		}
		if len(entry.KioskArgs) == 0 {
			return nil, fmt.Errorf("browser catalog entry %s has no kiosk arguments", kind)
		}
	}

	return catalog, nil
}

// Entry returns the catalog entry for a browser kind.
func (c Catalog) Entry(kind config.BrowserKind) (Entry, error) {
	entry, ok := c[kind]
	if !ok {
		return Entry{}, fmt.Errorf("unknown browser %q", kind)
	}
	return entry, nil
}

// KioskArguments expands the entry's argument template for the target
// URL. "{url}" placeholders are replaced; everything else passes
// through unchanged.
func (e Entry) KioskArguments(url string) []string {
	args := make([]string, len(e.KioskArgs))
	for i, a := range e.KioskArgs {
		args[i] = strings.ReplaceAll(a, "{url}", url)
	}
	return args
}

// LaunchCommandLine renders the full kiosk launch invocation for
// display in logs, dry-run plans, and manual-fallback guidance.
func (e Entry) LaunchCommandLine(executable, url string) string {
	return shellquote.Join(append([]string{executable}, e.KioskArguments(url)...)...)
}
