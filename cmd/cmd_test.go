package cmd

import (
	"strings"
	"testing"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/errors"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/testutil"
)

func runCommand(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func commandsContaining(env *testutil.TestEnv, substr string) []string {
	var matches []string
	for _, line := range env.Exec.CommandLines() {
		if strings.Contains(line, substr) {
			matches = append(matches, line)
		}
	}
	return matches
}

func TestProvisionCommand(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.BareMachine()
	env.AddCredential()

	err := runCommand("provision", "--yes", "--dry-run=false", "--disable-autologon=false")
	if err != nil {
		t.Fatalf("provision error = %v", err)
	}

	if got := commandsContaining(env, "New-LocalUser"); len(got) != 1 {
		t.Errorf("New-LocalUser commands = %d, want 1", len(got))
	}
	if got := commandsContaining(env, "schtasks /Create"); len(got) != 1 {
		t.Errorf("schtasks /Create commands = %d, want 1", len(got))
	}
	if got := commandsContaining(env, "AutoAdminLogon -Value '1'"); len(got) != 1 {
		t.Errorf("auto-logon enable commands = %d, want 1", len(got))
	}
}

func TestProvisionCommand_DryRun(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.BareMachine()
	env.AddCredential()

	err := runCommand("provision", "--dry-run", "--disable-autologon=false")
	if err != nil {
		t.Fatalf("provision --dry-run error = %v", err)
	}

	for _, substr := range []string{"New-LocalUser", "schtasks /Create", "Set-ItemProperty"} {
		if got := commandsContaining(env, substr); len(got) != 0 {
			t.Errorf("dry run executed %q: %v", substr, got)
		}
	}
}

func TestProvisionCommand_UnconfirmedDisable(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.BareMachine()
	env.AddCredential()

	err := runCommand("provision", "--disable-autologon", "--dry-run=false", "--confirm=false")
	if err == nil {
		t.Fatal("provision --disable-autologon without --confirm should fail")
	}
	if code := errors.GetExitCode(err); code != errors.ExitConfirmationRequired {
		t.Errorf("exit code = %d, want %d", code, errors.ExitConfirmationRequired)
	}
	// The failed run must not touch the machine.
	if got := commandsContaining(env, "New-LocalUser"); len(got) != 0 {
		t.Errorf("New-LocalUser commands = %d, want 0", len(got))
	}
}

func TestProvisionCommand_CLIOverridesFile(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.BareMachine()
	env.AddCredential()
	data, err := testutil.ValidSettings()
	if err != nil {
		t.Fatal(err)
	}
	env.WriteSettings(data) // file says chrome

	err = runCommand("provision", "--browser", "edge", "--install-browser=false",
		"--yes", "--dry-run=false", "--disable-autologon=false")
	if err != nil {
		t.Fatalf("provision error = %v", err)
	}

	// The registered task launches Edge, not the file's Chrome.
	if got := commandsContaining(env, "schtasks /Create"); len(got) != 1 {
		t.Fatalf("schtasks /Create commands = %d, want 1", len(got))
	}
}

func TestProvisionCommand_MalformedFileFallsBack(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.BareMachine()
	env.AddCredential()
	env.WriteSettings([]byte("{ not json"))

	err := runCommand("provision", "--yes", "--dry-run=false", "--disable-autologon=false")
	if err != nil {
		t.Fatalf("provision with malformed file error = %v, want fallback to defaults", err)
	}
}

func TestValidateCommand(t *testing.T) {
	env := testutil.NewTestEnv(t)

	data, err := testutil.ValidSettings()
	if err != nil {
		t.Fatal(err)
	}
	env.WriteSettings(data)

	if err := runCommand("validate"); err != nil {
		t.Errorf("validate error = %v", err)
	}
}

func TestValidateCommand_InvalidFile(t *testing.T) {
	env := testutil.NewTestEnv(t)

	data, err := testutil.InvalidSettings()
	if err != nil {
		t.Fatal(err)
	}
	env.WriteSettings(data)

	err = runCommand("validate")
	if err == nil {
		t.Fatal("validate should fail on an invalid browser value")
	}
	if code := errors.GetExitCode(err); code != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", code, errors.ExitConfigError)
	}
}

func TestValidateCommand_MissingFile(t *testing.T) {
	testutil.NewTestEnv(t)

	err := runCommand("validate", `C:\nope\kiosk.json`)
	if err == nil {
		t.Fatal("validate should fail on a missing file")
	}
	if code := errors.GetExitCode(err); code != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", code, errors.ExitConfigError)
	}
}

func TestStatusCommand(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.ProvisionedMachine()

	if err := runCommand("status"); err != nil {
		t.Errorf("status error = %v", err)
	}

	// status is read-only.
	for _, substr := range []string{"New-LocalUser", "schtasks /Create", "Set-ItemProperty"} {
		if got := commandsContaining(env, substr); len(got) != 0 {
			t.Errorf("status executed %q: %v", substr, got)
		}
	}
}

func TestSecretCheckCommand(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.AddCredential()
	env.Exec.AddResponse("ConvertTo-SecureString", []byte("ok"), nil)

	if err := runCommand("secret", "check"); err != nil {
		t.Errorf("secret check error = %v", err)
	}
}

func TestSecretCheckCommand_MissingArtifact(t *testing.T) {
	testutil.NewTestEnv(t)

	err := runCommand("secret", "check")
	if err == nil {
		t.Fatal("secret check should fail without an artifact")
	}
	if code := errors.GetExitCode(err); code != errors.ExitSecretError {
		t.Errorf("exit code = %d, want %d", code, errors.ExitSecretError)
	}
}

func TestRemoveCommand(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.ProvisionedMachine()

	err := runCommand("remove", "--account", "--secret", "--dry-run=false")
	if err != nil {
		t.Fatalf("remove error = %v", err)
	}

	if got := commandsContaining(env, "schtasks /Delete"); len(got) != 1 {
		t.Errorf("schtasks /Delete commands = %d, want 1", len(got))
	}
	if got := commandsContaining(env, "AutoAdminLogon -Value '0'"); len(got) != 1 {
		t.Errorf("auto-logon disable commands = %d, want 1", len(got))
	}
	if got := commandsContaining(env, "Remove-LocalUser"); len(got) != 1 {
		t.Errorf("Remove-LocalUser commands = %d, want 1", len(got))
	}
}

func TestRemoveCommand_DryRun(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.ProvisionedMachine()

	err := runCommand("remove", "--dry-run", "--account=false", "--secret=false")
	if err != nil {
		t.Fatalf("remove --dry-run error = %v", err)
	}
	if len(env.Exec.CommandLines()) != 0 {
		t.Errorf("dry run executed commands: %v", env.Exec.CommandLines())
	}
}

func TestHistoryCommand_Empty(t *testing.T) {
	testutil.NewTestEnv(t)

	if err := runCommand("history"); err != nil {
		t.Errorf("history error = %v", err)
	}
}
