// Package osinfo reads Windows version information for the advisory
// build gate.
package osinfo

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/logging"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
)

const currentVersionKey = `HKLM\SOFTWARE\Microsoft\Windows NT\CurrentVersion`

// buildNumberRegex extracts the REG_SZ value from reg.exe query output.
var buildNumberRegex = regexp.MustCompile(`CurrentBuildNumber\s+REG_SZ\s+(\d+)`)

// BuildNumber returns the current Windows build number from the
// registry. Returns 0 with an error when the build cannot be
// determined; callers treat that as "gate cannot be evaluated" rather
// than a fatal condition.
func BuildNumber(ctx context.Context, exec system.CommandExecutor) (int, error) {
	out, err := exec.Execute(ctx, "reg", "query", currentVersionKey, "/v", "CurrentBuildNumber")
	if err != nil {
		return 0, fmt.Errorf("failed to query build number: %w", err)
	}

	match := buildNumberRegex.FindSubmatch(out)
	if match == nil {
		return 0, fmt.Errorf("unexpected reg query output: %q", string(out))
	}

	build, err := strconv.Atoi(string(match[1]))
	if err != nil {
		return 0, fmt.Errorf("failed to parse build number %q: %w", match[1], err)
	}

	logging.Debug("detected Windows build", "build", build)
	return build, nil
}
