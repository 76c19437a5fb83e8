//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-ps"
)

// ErrAlreadyRunning is returned when another instance of the named
// executable is already alive on this machine.
var ErrAlreadyRunning = errors.New("another instance is already running")

// EnsureSingleInstance scans the process table and fails when another
// process with the same executable name is found. The monitor owns the
// audio device and the gRPC port, so a second copy would only fight the
// first one.
func EnsureSingleInstance(executableName string) error {
	processList, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if process.Executable() == executableName {
			return fmt.Errorf("%w: %s (pid %d)", ErrAlreadyRunning, executableName, process.Pid())
		}
	}

	return nil
}
