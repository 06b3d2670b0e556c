package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/errors"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/health"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current kiosk provisioning state",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var (
	statusConfig string
	statusJSON   bool
)

func init() {
	statusCmd.Flags().StringVarP(&statusConfig, "config", "c", "", "Settings file path (default: config dir kiosk.json)")
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output the report as JSON")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, err := resolveSettings(statusConfig, nil)
	if err != nil {
		return errors.ConfigError("failed to resolve settings", err)
	}

	credPath, err := credentialPath(settings)
	if err != nil {
		return errors.ConfigError("invalid credential reference", err)
	}

	checker := health.NewChecker(executor(), fsys(), paths().ConfigDir)
	report := checker.Check(ctx, settings, credPath)

	if statusJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Kiosk account: %s\n", settings.AccountName)
	fmt.Printf("Target URL: %s\n", settings.TargetURL)
	fmt.Printf("Browser: %s\n", settings.Browser)
	fmt.Println()

	fmt.Println("Checks:")
	fmt.Printf("  Account exists: %s\n", boolStatus(report.AccountExists))
	fmt.Printf("  Auto-logon: %s\n", boolStatus(report.AutoLogonEnabled))
	if report.AutoLogonEnabled {
		match := report.AutoLogonUser == settings.AccountName
		fmt.Printf("  Auto-logon user: %s %s\n", report.AutoLogonUser, boolStatus(match))
	}
	if report.BrowserPath != "" {
		fmt.Printf("  Browser found: ✓ (%s)\n", report.BrowserPath)
	} else {
		fmt.Printf("  Browser found: ✗\n")
	}
	fmt.Printf("  Launch task: %s\n", boolStatus(report.TaskRegistered))
	fmt.Printf("  Credential stored: %s\n", boolStatus(report.SecretStored))
	if report.BuildNumber > 0 {
		ok := report.BuildNumber >= settings.MinimumBuildNumber
		fmt.Printf("  Windows build: %d (minimum %d) %s\n", report.BuildNumber, settings.MinimumBuildNumber, boolStatus(ok))
	}

	if len(report.Errors) > 0 {
		fmt.Println()
		for probe, msg := range report.Errors {
			logWarning("  %s check failed: %s", probe, msg)
		}
	}

	fmt.Println()
	if report.Healthy(settings) {
		logSuccess("Kiosk is fully provisioned")
	} else {
		logInfo("Kiosk is not fully provisioned; run: kioskctl provision")
	}

	return nil
}
