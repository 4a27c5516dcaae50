//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/oshokin/xcode-upkeep/internal/logger"
)

// XcodeExecutable is the process name of the Xcode IDE.
const XcodeExecutable = "Xcode"

// IsProcessRunning reports whether another process with the given executable name exists.
func IsProcessRunning(name string) (bool, error) {
	processList, err := ps.Processes()
	if err != nil {
		return false, fmt.Errorf("list processes: %w", err)
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if strings.EqualFold(process.Executable(), name) {
			return true, nil
		}
	}

	return false, nil
}

// WarnIfXcodeRunning logs a warning when Xcode is open. Lookup failures are
// only logged at debug level: the check is advisory.
func WarnIfXcodeRunning(ctx context.Context) {
	running, err := IsProcessRunning(XcodeExecutable)
	if err != nil {
		logger.DebugKV(ctx, "Unable to check for a running Xcode", "error", err)
		return
	}

	if running {
		logger.Warn(ctx, "Xcode is running; close the project before building or it may overwrite these changes")
	}
}
