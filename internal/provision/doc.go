// Package provision orchestrates kiosk provisioning.
//
// A Provisioner runs a strictly sequential pipeline over the external
// collaborators:
//
//  1. Advisory build gate — an old Windows build prompts for
//     confirmation; it never blocks unattended runs.
//  2. Auto-logon policy — decides whether automatic sign-in may be
//     enabled; an unconfirmed command-line opt-out is fatal.
//  3. Local account — ensure-exists; failure here aborts the run.
//  4. Browser — locate, optionally install via winget, relocate; a
//     missing browser degrades the run instead of failing it.
//  5. Auto-logon reconcile — drive the Winlogon values to the policy
//     outcome.
//  6. Scheduled task — register the logon-triggered kiosk launch;
//     failure is non-fatal and yields manual guidance.
//
// Every applied mutation is appended to the audit log. Under DryRun
// reads still execute, mutations become Result.Planned entries, and no
// audit events are written.
package provision
