// Package testutil provides test fixtures and utilities.
//
// # Test Environment
//
// NewTestEnv builds an app.App backed by system.MockFS and
// system.MockExecutor, installs it as the app default, and restores the
// original via t.Cleanup:
//
//	env := testutil.NewTestEnv(t)
//	env.ProvisionedMachine() // or env.BareMachine()
//
// The machine presets seed the mocks with realistic reg.exe, schtasks
// and PowerShell output so command tests exercise real parsing.
//
// # Fixtures
//
// Settings files are embedded using go:embed:
//
//	fixtures/valid_settings.json
//	fixtures/invalid_settings.json
//	fixtures/legacy_settings.jsonc
//
// Helper functions return the raw bytes:
//
//	data, err := testutil.ValidSettings()
//	data, err := testutil.InvalidSettings()
//	data, err := testutil.LegacySettings()
package testutil
