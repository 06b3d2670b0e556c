package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/config"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/errors"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/logging"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/provision"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/tui"
)

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Provision the kiosk account, browser, auto-logon and launch task",
	Args:  cobra.NoArgs,
	RunE:  runProvision,
}

var (
	provConfig          string
	provAccount         string
	provDisplayName     string
	provURL             string
	provBrowser         string
	provEnableAutoLogon bool
	provDisableOptOut   bool
	provMinBuild        int
	provInstallBrowser  bool
	provPasswordFile    string
	provDryRun          bool
	provConfirm         bool
	provYes             bool
)

func init() {
	provisionCmd.Flags().StringVarP(&provConfig, "config", "c", "", "Settings file path (default: config dir kiosk.json)")
	provisionCmd.Flags().StringVar(&provAccount, "account", "", "Kiosk account name")
	provisionCmd.Flags().StringVar(&provDisplayName, "display-name", "", "Kiosk account display name")
	provisionCmd.Flags().StringVar(&provURL, "url", "", "Target URL the kiosk browser opens")
	provisionCmd.Flags().StringVar(&provBrowser, "browser", "", "Kiosk browser (edge|chrome)")
	provisionCmd.Flags().BoolVar(&provEnableAutoLogon, "enable-autologon", true, "Master switch for automatic sign-in")
	provisionCmd.Flags().BoolVar(&provDisableOptOut, "disable-autologon", false, "Switch automatic sign-in off (requires --confirm)")
	provisionCmd.Flags().IntVar(&provMinBuild, "min-build", 0, "Advisory minimum Windows build number")
	provisionCmd.Flags().BoolVar(&provInstallBrowser, "install-browser", false, "Install the browser via winget if missing")
	provisionCmd.Flags().StringVar(&provPasswordFile, "password-file", "", "Encrypted credential artifact (relative names resolve under the config dir)")
	provisionCmd.Flags().BoolVar(&provDryRun, "dry-run", false, "Report every action without performing any")
	provisionCmd.Flags().BoolVar(&provConfirm, "confirm", false, "Confirm disabling auto-logon from the command line")
	provisionCmd.Flags().BoolVar(&provYes, "yes", false, "Assume yes at the advisory build gate (unattended runs)")
	rootCmd.AddCommand(provisionCmd)
}

func runProvision(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cli, err := provisionOverlay(cmd)
	if err != nil {
		return err
	}

	settings, err := resolveSettings(provConfig, cli)
	if err != nil {
		return errors.ConfigError("failed to resolve settings", err)
	}
	logging.Debug("settings resolved",
		"account", settings.AccountName, "browser", settings.Browser,
		"enableAutoLogon", settings.EnableAutoLogon, "disableAutoLogon", settings.DisableAutoLogon)

	credPath, err := credentialPath(settings)
	if err != nil {
		return errors.ConfigError("invalid credential reference", err)
	}

	opts := provision.Options{
		Settings:               settings,
		CredentialPath:         credPath,
		DryRun:                 provDryRun,
		DisableRequestedViaCLI: cmd.Flags().Changed("disable-autologon") && provDisableOptOut,
		ConfirmDisable:         provConfirm,
		AssumeYes:              provYes,
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		opts.Confirm = tui.Confirm
	}

	if provDryRun {
		logInfo("Dry run: no changes will be made")
	} else {
		logInfo("Provisioning kiosk for account %s...", settings.AccountName)
	}

	result, err := provision.NewProvisioner(executor(), fsys(), paths()).Run(ctx, opts)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		logWarning("  %s", w)
	}

	if provDryRun {
		if len(result.Planned) == 0 {
			logSuccess("Nothing to do; the kiosk is already provisioned")
			return nil
		}
		fmt.Println("Planned actions:")
		for _, p := range result.Planned {
			fmt.Printf("  - %s\n", p)
		}
		return nil
	}

	logSuccess("Kiosk provisioned for account %s", settings.AccountName)
	if result.AccountCreated {
		fmt.Printf("  Account: created\n")
	} else {
		fmt.Printf("  Account: already present\n")
	}
	if result.BrowserPath != "" {
		fmt.Printf("  Browser: %s\n", result.BrowserPath)
	}
	fmt.Printf("  Auto-logon: %s\n", yesNo(result.AutoLogonEnabled))
	fmt.Printf("  Launch task: %s\n", boolStatus(result.TaskRegistered))
	if result.TaskRegistered {
		fmt.Printf("  Sign %s in (or reboot) to start the kiosk\n", settings.AccountName)
	}

	return nil
}

// provisionOverlay builds the CLI configuration source. A flag
// contributes only when explicitly set, so defaults here never shadow
// the settings file.
func provisionOverlay(cmd *cobra.Command) (*config.Overlay, error) {
	flags := cmd.Flags()
	overlay := &config.Overlay{}

	if flags.Changed("account") {
		overlay.AccountName = &provAccount
	}
	if flags.Changed("display-name") {
		overlay.AccountDisplayName = &provDisplayName
	}
	if flags.Changed("url") {
		overlay.TargetURL = &provURL
	}
	if flags.Changed("browser") {
		kind, err := config.ParseBrowser(provBrowser)
		if err != nil {
			return nil, errors.ConfigError("invalid --browser value", err)
		}
		overlay.Browser = &kind
	}
	if flags.Changed("enable-autologon") {
		overlay.EnableAutoLogon = &provEnableAutoLogon
	}
	if flags.Changed("disable-autologon") {
		overlay.DisableAutoLogon = &provDisableOptOut
	}
	if flags.Changed("min-build") {
		overlay.MinimumBuildNumber = &provMinBuild
	}
	if flags.Changed("install-browser") {
		overlay.InstallBrowserIfMissing = &provInstallBrowser
	}
	if flags.Changed("password-file") {
		overlay.EncryptedPasswordFile = &provPasswordFile
	}

	return overlay, nil
}
