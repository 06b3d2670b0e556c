// Package health inspects the machine and reports how much of the
// kiosk is actually in place. It never mutates anything.
package health

import (
	"context"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/account"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/autologon"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/browser"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/config"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/logging"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/osinfo"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/task"
)

// Report is the result of a full status check.
type Report struct {
	AccountExists    bool              `json:"accountExists"`
	AutoLogonEnabled bool              `json:"autoLogonEnabled"`
	AutoLogonUser    string            `json:"autoLogonUser"`
	BrowserPath      string            `json:"browserPath"`
	TaskRegistered   bool              `json:"taskRegistered"`
	SecretStored     bool              `json:"secretStored"`
	BuildNumber      int               `json:"buildNumber"`
	Errors           map[string]string `json:"errors,omitempty"`
}

// Healthy reports whether every kiosk artifact is in place and
// auto-logon points at the kiosk account.
func (r Report) Healthy(s config.Settings) bool {
	if !r.AccountExists || r.BrowserPath == "" || !r.TaskRegistered {
		return false
	}
	wantAutoLogon := s.EnableAutoLogon && !s.DisableAutoLogon
	if wantAutoLogon && (!r.AutoLogonEnabled || r.AutoLogonUser != s.AccountName) {
		return false
	}
	return true
}

// Checker runs the read-only status probes.
type Checker struct {
	exec      system.CommandExecutor
	fs        system.FileSystem
	configDir string
}

// NewChecker returns a Checker using the given executor and file system.
func NewChecker(exec system.CommandExecutor, fs system.FileSystem, configDir string) *Checker {
	return &Checker{exec: exec, fs: fs, configDir: configDir}
}

// Check probes every kiosk artifact for the given settings. Probes are
// independent; a failing probe is recorded in Errors and the rest
// still run.
func (c *Checker) Check(ctx context.Context, s config.Settings, credentialPath string) Report {
	report := Report{Errors: map[string]string{}}

	accounts := account.NewManager(c.exec, c.fs)
	exists, err := accounts.Exists(ctx, s.AccountName)
	if err != nil {
		report.Errors["account"] = err.Error()
	} else {
		report.AccountExists = exists
	}

	autoCfg := autologon.NewConfigurator(c.exec, c.fs)
	state, err := autoCfg.Status(ctx)
	if err != nil {
		report.Errors["autologon"] = err.Error()
	} else {
		report.AutoLogonEnabled = state.Enabled
		report.AutoLogonUser = state.User
	}

	catalog, err := browser.LoadCatalog(c.fs, c.configDir)
	if err != nil {
		report.Errors["browser"] = err.Error()
	} else {
		locator := browser.NewLocator(c.exec, c.fs, catalog)
		path, err := locator.Locate(ctx, s.Browser)
		if err != nil {
			report.Errors["browser"] = err.Error()
		} else {
			report.BrowserPath = path
		}
	}

	registrar := task.NewRegistrar(c.exec, c.fs, "")
	report.TaskRegistered = registrar.Exists(ctx, config.TaskName)

	report.SecretStored = c.fs.Exists(credentialPath)

	build, err := osinfo.BuildNumber(ctx, c.exec)
	if err != nil {
		report.Errors["osinfo"] = err.Error()
	} else {
		report.BuildNumber = build
	}

	if len(report.Errors) == 0 {
		report.Errors = nil
	}

	logging.Debug("status check complete",
		"account", report.AccountExists,
		"autologon", report.AutoLogonEnabled,
		"task", report.TaskRegistered)

	return report
}
