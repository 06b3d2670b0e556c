package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/config"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/errors"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a settings file and print the effective settings",
	Long: `validate parses a settings file strictly and prints the settings a
provisioning run would use. Unlike provision, which warns and falls
back to defaults, validate exits non-zero on a malformed file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := paths().SettingsPath()
	if len(args) == 1 {
		path = args[0]
	}

	if !fsys().Exists(path) {
		logError("Settings file not found: %s", path)
		return errors.New(errors.ExitConfigError, fmt.Sprintf("settings file not found: %s", path))
	}

	overlay, err := config.LoadOverlay(fsys(), path)
	if err != nil {
		return errors.ConfigError("settings file is invalid", err)
	}

	settings, err := config.Resolve(config.DefaultSettings(), overlay, nil)
	if err != nil {
		return errors.ConfigError("failed to resolve settings", err)
	}
	if err := settings.Validate(); err != nil {
		return errors.ConfigError("settings file is invalid", err)
	}

	logSuccess("%s is valid", path)
	fmt.Println()
	fmt.Println("Effective settings:")
	fmt.Printf("  Account: %s (%s)\n", settings.AccountName, settings.AccountDisplayName)
	fmt.Printf("  Target URL: %s\n", settings.TargetURL)
	fmt.Printf("  Browser: %s\n", settings.Browser)
	fmt.Printf("  Auto-logon: enable=%s disable=%s\n", yesNo(settings.EnableAutoLogon), yesNo(settings.DisableAutoLogon))
	fmt.Printf("  Minimum build: %d\n", settings.MinimumBuildNumber)
	fmt.Printf("  Install browser if missing: %s\n", yesNo(settings.InstallBrowserIfMissing))
	if settings.EncryptedPasswordFile != "" {
		fmt.Printf("  Credential artifact: %s\n", settings.EncryptedPasswordFile)
	}

	return nil
}
