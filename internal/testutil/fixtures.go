package testutil

import (
	"embed"
)

//go:embed fixtures/*.json fixtures/*.jsonc
var fixturesFS embed.FS

// LoadFixture loads a settings fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// ValidSettings returns a complete, well-formed settings file.
func ValidSettings() ([]byte, error) {
	return LoadFixture("valid_settings.json")
}

// InvalidSettings returns a settings file with an unknown browser value.
func InvalidSettings() ([]byte, error) {
	return LoadFixture("invalid_settings.json")
}

// LegacySettings returns a commented settings file using the legacy
// confirmAutoLogin key.
func LegacySettings() ([]byte, error) {
	return LoadFixture("legacy_settings.jsonc")
}
