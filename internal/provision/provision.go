// Package provision runs the sequential pipeline that turns a resolved
// configuration into an actual kiosk: account, browser, auto-logon,
// scheduled task.
package provision

import (
	"context"
	"fmt"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/account"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/audit"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/autologon"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/browser"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/config"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/errors"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/logging"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/osinfo"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/policy"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/task"
)

// Provisioner orchestrates a kiosk provisioning run with all necessary
// dependencies.
type Provisioner struct {
	exec  system.CommandExecutor
	fs    system.FileSystem
	paths *config.Paths
	audit *audit.Logger
}

// NewProvisioner creates a Provisioner using the given executor, file
// system and paths.
func NewProvisioner(exec system.CommandExecutor, fs system.FileSystem, paths *config.Paths) *Provisioner {
	return &Provisioner{
		exec:  exec,
		fs:    fs,
		paths: paths,
		audit: audit.NewLogger(paths.StateDir),
	}
}

// Run executes the provisioning pipeline. Steps run strictly in order:
// build gate, auto-logon policy, account, browser, auto-logon
// reconcile, scheduled task. Under DryRun all reads still execute but
// every mutation becomes a Result.Planned entry and no audit events
// are written.
func (p *Provisioner) Run(ctx context.Context, opts Options) (*Result, error) {
	s := opts.Settings
	logging.Debug("starting provisioning run",
		"account", s.AccountName, "browser", s.Browser, "dryRun", opts.DryRun)

	if err := s.Validate(); err != nil {
		return nil, errors.ConfigError("invalid settings", err)
	}

	result := &Result{}

	if err := p.buildGate(ctx, opts, result); err != nil {
		return nil, err
	}

	enableAutoLogon, err := policy.ShouldEnableAutoLogon(
		s.EnableAutoLogon, s.DisableAutoLogon,
		opts.DisableRequestedViaCLI, opts.ConfirmDisable)
	if err != nil {
		return nil, err
	}

	if err := p.ensureAccount(ctx, opts, result); err != nil {
		return nil, err
	}

	p.ensureBrowser(ctx, opts, result)

	if err := p.reconcileAutoLogon(ctx, opts, enableAutoLogon, result); err != nil {
		return nil, err
	}

	p.registerTask(ctx, opts, result)

	logging.Debug("provisioning run complete",
		"accountCreated", result.AccountCreated,
		"autoLogon", result.AutoLogonEnabled,
		"task", result.TaskRegistered,
		"warnings", len(result.Warnings))

	return result, nil
}

// buildGate checks the detected Windows build against the advisory
// minimum. It never blocks a run on its own: the operator (or --yes)
// decides, and an undetectable build is only a warning.
func (p *Provisioner) buildGate(ctx context.Context, opts Options, result *Result) error {
	minimum := opts.Settings.MinimumBuildNumber
	if minimum <= 0 {
		return nil
	}

	build, err := osinfo.BuildNumber(ctx, p.exec)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("could not determine Windows build number: %v", err))
		return nil
	}
	if build >= minimum {
		return nil
	}

	notice := fmt.Sprintf("detected Windows build %d is older than the recommended minimum %d", build, minimum)

	if opts.DryRun {
		result.Warnings = append(result.Warnings, notice)
		return nil
	}
	if opts.AssumeYes || opts.Confirm == nil {
		result.Warnings = append(result.Warnings, notice+"; continuing")
		return nil
	}

	ok, err := opts.Confirm(notice + ". Continue anyway?")
	if err != nil {
		result.Warnings = append(result.Warnings, notice+"; continuing")
		return nil
	}
	if !ok {
		return errors.Aborted("provisioning aborted: " + notice)
	}
	return nil
}

// ensureAccount creates the kiosk account if it does not exist.
// Failure here is fatal: nothing downstream can be trusted without the
// account.
func (p *Provisioner) ensureAccount(ctx context.Context, opts Options, result *Result) error {
	s := opts.Settings
	accounts := account.NewManager(p.exec, p.fs)

	if opts.DryRun {
		exists, err := accounts.Exists(ctx, s.AccountName)
		if err != nil {
			return errors.ProvisionFailed(
				fmt.Sprintf("failed to query account %s", s.AccountName), err)
		}
		if !exists {
			result.Planned = append(result.Planned,
				fmt.Sprintf("would create local account %s (%s)", s.AccountName, s.AccountDisplayName))
		}
		return nil
	}

	created, err := accounts.Create(ctx, s.AccountName, s.AccountDisplayName, opts.CredentialPath)
	if err != nil {
		return errors.ProvisionFailed(
			fmt.Sprintf("failed to create account %s", s.AccountName), err)
	}
	result.AccountCreated = created
	if created {
		p.logAudit(audit.EventAccountCreate, s.AccountName)
	}
	return nil
}

// ensureBrowser locates the configured browser, installing it first
// when the settings permit. A missing browser degrades the run instead
// of failing it.
func (p *Provisioner) ensureBrowser(ctx context.Context, opts Options, result *Result) {
	s := opts.Settings

	catalog, err := browser.LoadCatalog(p.fs, p.paths.ConfigDir)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("browser catalog unusable: %v", err))
		return
	}

	locator := browser.NewLocator(p.exec, p.fs, catalog)
	path, err := locator.Locate(ctx, s.Browser)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("browser lookup failed: %v", err))
		return
	}

	if path == "" && s.InstallBrowserIfMissing {
		installer := browser.NewInstaller(p.exec, catalog)
		switch {
		case opts.DryRun:
			result.Planned = append(result.Planned,
				fmt.Sprintf("would install %s via winget", s.Browser))
		case !installer.Available():
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s is not installed and winget is unavailable; install the browser manually and re-run", s.Browser))
		default:
			if err := installer.Install(ctx, s.Browser); err != nil {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("failed to install %s: %v", s.Browser, err))
			} else {
				result.BrowserInstalled = true
				p.logAudit(audit.EventBrowserInstall, string(s.Browser))
				// Relocate after install.
				path, _ = locator.Locate(ctx, s.Browser)
			}
		}
	}

	result.BrowserPath = path
	if path == "" && !opts.DryRun {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s executable not found; install it and re-run to register the launch task", s.Browser))
	}
}

// reconcileAutoLogon drives the Winlogon registry values toward the
// policy outcome.
func (p *Provisioner) reconcileAutoLogon(ctx context.Context, opts Options, enable bool, result *Result) error {
	s := opts.Settings
	configurator := autologon.NewConfigurator(p.exec, p.fs)

	if opts.DryRun {
		state, err := configurator.Status(ctx)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("could not read auto-logon state: %v", err))
			return nil
		}
		switch {
		case enable && (!state.Enabled || state.User != s.AccountName):
			result.Planned = append(result.Planned,
				fmt.Sprintf("would enable auto-logon for %s", s.AccountName))
		case !enable && state.Enabled:
			result.Planned = append(result.Planned, "would disable auto-logon")
		}
		result.AutoLogonEnabled = enable
		return nil
	}

	if enable {
		if err := configurator.Enable(ctx, s.AccountName, opts.CredentialPath); err != nil {
			return errors.ProvisionFailed("failed to enable auto-logon", err)
		}
		result.AutoLogonEnabled = true
		p.logAudit(audit.EventAutoLogonOn, s.AccountName)
		return nil
	}

	if err := configurator.Disable(ctx); err != nil {
		return errors.ProvisionFailed("failed to disable auto-logon", err)
	}
	p.logAudit(audit.EventAutoLogonOff, s.AccountName)
	return nil
}

// registerTask registers the logon-triggered browser launch. Failure
// is non-fatal: the account and browser work already succeeded, so the
// operator gets manual guidance instead of a failed run.
func (p *Provisioner) registerTask(ctx context.Context, opts Options, result *Result) {
	s := opts.Settings

	if result.BrowserPath == "" {
		if opts.DryRun {
			result.Planned = append(result.Planned,
				fmt.Sprintf("would register scheduled task %s once %s is installed", config.TaskName, s.Browser))
		} else {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("skipped scheduled task %s: no browser executable", config.TaskName))
		}
		return
	}

	catalog, err := browser.LoadCatalog(p.fs, p.paths.ConfigDir)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("browser catalog unusable: %v", err))
		return
	}
	entry, err := catalog.Entry(s.Browser)
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
		return
	}

	spec := task.Spec{
		Name:       config.TaskName,
		Account:    s.AccountName,
		Executable: result.BrowserPath,
		Args:       entry.KioskArguments(s.TargetURL),
	}

	if opts.DryRun {
		result.Planned = append(result.Planned,
			fmt.Sprintf("would register scheduled task %s running %s", spec.Name, spec.CommandLine()))
		result.TaskRegistered = false
		return
	}

	registrar := task.NewRegistrar(p.exec, p.fs, p.paths.StateDir)
	if err := registrar.Register(ctx, spec); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("failed to register scheduled task %s: %v; create it manually with: schtasks /Create /TN %s /SC ONLOGON /RU %s /TR \"%s\"",
				spec.Name, err, spec.Name, spec.Account, spec.CommandLine()))
		return
	}
	result.TaskRegistered = true
	p.logAudit(audit.EventTaskRegister, spec.Name)
}

// logAudit appends an event to the audit log. Audit failures never
// fail the run.
func (p *Provisioner) logAudit(eventType audit.EventType, details string) {
	if err := p.audit.LogEvent(eventType, details); err != nil {
		logging.Warn("failed to write audit event", "type", eventType, "error", err)
	}
}
