package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/browser"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/config"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/errors"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/tui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or edit the settings file interactively",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

var initConfig string

func init() {
	initCmd.Flags().StringVarP(&initConfig, "config", "c", "", "Settings file path (default: config dir kiosk.json)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := settingsPath(initConfig)

	// An existing file seeds the wizard so editing preserves values.
	defaults, err := resolveSettings(initConfig, nil)
	if err != nil {
		return errors.ConfigError("failed to resolve settings", err)
	}

	catalog, err := browser.LoadCatalog(fsys(), paths().ConfigDir)
	if err != nil {
		return errors.ConfigError("failed to load browser catalog", err)
	}

	settings, err := tui.RunWizard(defaults, catalog)
	if err != nil {
		return errors.New(errors.ExitGeneralError, err.Error())
	}
	if settings == nil {
		logInfo("Cancelled; settings file unchanged")
		return nil
	}

	if err := config.SaveSettings(fsys(), path, *settings); err != nil {
		return errors.ConfigError("failed to write settings file", err)
	}

	logSuccess("Settings written to %s", path)
	logInfo("Apply them with: kioskctl provision")
	return nil
}
