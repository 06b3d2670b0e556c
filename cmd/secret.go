package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/audit"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/config"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/errors"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/logging"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/secret"
)

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage the encrypted kiosk credential",
}

var secretSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Prompt for the kiosk password and store it encrypted",
	Long: `set prompts for the kiosk account password twice and stores it as a
DPAPI-encrypted artifact. Encryption is tied to the identity running
this command; run it as the same user that will provision the kiosk.
The plaintext is never written to disk or logged.`,
	Args: cobra.NoArgs,
	RunE: runSecretSet,
}

var secretCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the stored credential decrypts under the current identity",
	Args:  cobra.NoArgs,
	RunE:  runSecretCheck,
}

var secretFile string

func init() {
	secretCmd.PersistentFlags().StringVar(&secretFile, "file", "", "Credential artifact path (relative names resolve under the config dir)")
	secretCmd.AddCommand(secretSetCmd)
	secretCmd.AddCommand(secretCheckCmd)
	rootCmd.AddCommand(secretCmd)
}

// secretArtifactPath resolves the artifact location for the secret
// subcommands.
func secretArtifactPath() (string, error) {
	ref := secretFile
	if ref == "" {
		ref = config.DefaultCredentialFileName
	}
	path, err := config.CredentialPath(paths(), ref)
	if err != nil {
		return "", errors.ConfigError("invalid credential path", err)
	}
	return path, nil
}

func runSecretSet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	path, err := secretArtifactPath()
	if err != nil {
		return err
	}

	provisioner := secret.NewProvisioner(executor(), fsys())
	if err := provisioner.Save(ctx, path); err != nil {
		return errors.SecretError("failed to store credential", err)
	}

	if err := audit.NewLogger(paths().StateDir).LogEvent(audit.EventSecretCreate, path); err != nil {
		logging.Warn("failed to write audit event", "error", err)
	}

	logSuccess("Credential stored at %s", path)
	logInfo("Reference it from the settings file or let provision pick it up automatically")
	return nil
}

func runSecretCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	path, err := secretArtifactPath()
	if err != nil {
		return err
	}

	provisioner := secret.NewProvisioner(executor(), fsys())
	if err := provisioner.Check(ctx, path); err != nil {
		return errors.SecretError("credential check failed", err)
	}

	logSuccess("Credential at %s decrypts under the current identity", path)
	return nil
}
