// Package task registers the scheduled action that launches the kiosk
// browser at logon of the kiosk account.
package task

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/logging"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
)

// Spec describes the scheduled task to register.
type Spec struct {
	Name       string   // task name in the scheduler
	Account    string   // account whose logon triggers the launch
	Executable string   // browser executable path
	Args       []string // kiosk-mode arguments
}

// CommandLine renders the launch invocation for display.
func (s Spec) CommandLine() string {
	return shellquote.Join(append([]string{s.Executable}, s.Args...)...)
}

// Registrar manages the kiosk launch task via schtasks.
type Registrar struct {
	exec     system.CommandExecutor
	fs       system.FileSystem
	stateDir string
}

// NewRegistrar creates a Registrar. stateDir holds the transient task
// XML handed to schtasks.
func NewRegistrar(exec system.CommandExecutor, fs system.FileSystem, stateDir string) *Registrar {
	return &Registrar{exec: exec, fs: fs, stateDir: stateDir}
}

// Exists reports whether the named task is registered.
func (r *Registrar) Exists(ctx context.Context, name string) bool {
	_, err := r.exec.Execute(ctx, "schtasks", "/Query", "/TN", name)
	return err == nil
}

// Register idempotently replaces the named scheduled task. /F makes
// schtasks overwrite an existing definition, so re-provisioning
// converges instead of failing.
func (r *Registrar) Register(ctx context.Context, spec Spec) error {
	xml, err := GenerateTaskXML(Data{
		Account:     spec.Account,
		Executable:  spec.Executable,
		Arguments:   strings.Join(spec.Args, " "),
		Description: fmt.Sprintf("Launches the kiosk browser at logon of %s", spec.Account),
	})
	if err != nil {
		return err
	}

	if err := r.fs.MkdirAll(r.stateDir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	xmlPath := filepath.Join(r.stateDir, spec.Name+".xml")
	if err := r.fs.WriteFile(xmlPath, []byte(xml), 0644); err != nil {
		return fmt.Errorf("failed to write task definition: %w", err)
	}
	defer func() {
		if err := r.fs.Remove(xmlPath); err != nil {
			logging.Debug("failed to remove transient task XML", "path", xmlPath, "error", err)
		}
	}()

	out, err := r.exec.Execute(ctx, "schtasks", "/Create", "/TN", spec.Name, "/XML", xmlPath, "/F")
	if err != nil {
		return fmt.Errorf("schtasks /Create failed: %w (output: %s)", err, strings.TrimSpace(string(out)))
	}

	logging.Debug("scheduled task registered", "task", spec.Name, "command", spec.CommandLine())
	return nil
}

// Unregister removes the named task. Removing an absent task is not an
// error.
func (r *Registrar) Unregister(ctx context.Context, name string) error {
	if !r.Exists(ctx, name) {
		return nil
	}

	out, err := r.exec.Execute(ctx, "schtasks", "/Delete", "/TN", name, "/F")
	if err != nil {
		return fmt.Errorf("schtasks /Delete failed: %w (output: %s)", err, strings.TrimSpace(string(out)))
	}

	logging.Debug("scheduled task removed", "task", name)
	return nil
}
