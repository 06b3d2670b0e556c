package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "kioskctl",
	Short: "CNC pendant kiosk provisioning CLI",
	Long: `kioskctl turns a Windows machine into a locked-down browser kiosk
showing a CNC controller's web UI.

Provisioning sets up:
  - A restricted local account for the kiosk
  - Optional automatic sign-in (DPAPI-encrypted credential)
  - A browser (Edge or Chrome), installed via winget if permitted
  - A scheduled task launching the browser in kiosk mode at logon`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
