package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/account"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/audit"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/autologon"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/config"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/errors"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/logging"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/secret"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/task"
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Deprovision the kiosk",
	Long: `remove deletes the scheduled launch task and switches auto-logon off.
The local account and the stored credential are kept unless --account
and --secret are passed.`,
	Args: cobra.NoArgs,
	RunE: runRemove,
}

var (
	removeConfig  string
	removeAccount bool
	removeSecret  bool
	removeDryRun  bool
)

func init() {
	removeCmd.Flags().StringVarP(&removeConfig, "config", "c", "", "Settings file path (default: config dir kiosk.json)")
	removeCmd.Flags().BoolVar(&removeAccount, "account", false, "Also delete the local kiosk account")
	removeCmd.Flags().BoolVar(&removeSecret, "secret", false, "Also delete the stored credential artifact")
	removeCmd.Flags().BoolVar(&removeDryRun, "dry-run", false, "Report every action without performing any")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, err := resolveSettings(removeConfig, nil)
	if err != nil {
		return errors.ConfigError("failed to resolve settings", err)
	}

	credPath, err := credentialPath(settings)
	if err != nil {
		return errors.ConfigError("invalid credential reference", err)
	}

	auditLogger := audit.NewLogger(paths().StateDir)
	logAudit := func(eventType audit.EventType, details string) {
		if err := auditLogger.LogEvent(eventType, details); err != nil {
			logging.Warn("failed to write audit event", "type", eventType, "error", err)
		}
	}

	if removeDryRun {
		fmt.Println("Planned actions:")
		fmt.Printf("  - would delete scheduled task %s\n", config.TaskName)
		fmt.Println("  - would disable auto-logon")
		if removeAccount {
			fmt.Printf("  - would delete local account %s\n", settings.AccountName)
		}
		if removeSecret && credPath != "" {
			fmt.Printf("  - would delete credential artifact %s\n", credPath)
		}
		return nil
	}

	registrar := task.NewRegistrar(executor(), fsys(), paths().StateDir)
	if err := registrar.Unregister(ctx, config.TaskName); err != nil {
		return errors.ProvisionFailed("failed to delete scheduled task", err)
	}
	logAudit(audit.EventTaskDelete, config.TaskName)
	logInfo("Scheduled task %s removed", config.TaskName)

	configurator := autologon.NewConfigurator(executor(), fsys())
	if err := configurator.Disable(ctx); err != nil {
		return errors.ProvisionFailed("failed to disable auto-logon", err)
	}
	logAudit(audit.EventAutoLogonOff, settings.AccountName)
	logInfo("Auto-logon disabled")

	if removeAccount {
		accounts := account.NewManager(executor(), fsys())
		if err := accounts.Delete(ctx, settings.AccountName); err != nil {
			return errors.ProvisionFailed("failed to delete account", err)
		}
		logAudit(audit.EventAccountDelete, settings.AccountName)
		logInfo("Account %s deleted", settings.AccountName)
	}

	if removeSecret && credPath != "" {
		provisioner := secret.NewProvisioner(executor(), fsys())
		if err := provisioner.Remove(credPath); err != nil {
			return errors.SecretError("failed to delete credential artifact", err)
		}
		logAudit(audit.EventSecretDelete, credPath)
		logInfo("Credential artifact deleted")
	}

	logSuccess("Kiosk deprovisioned")
	return nil
}
