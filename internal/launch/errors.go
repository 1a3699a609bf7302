package launch

import (
	"errors"
	"fmt"
)

var (
	// ErrScriptNotFound is returned when the target vanished before launch.
	ErrScriptNotFound = errors.New("script not found")
	// ErrInterrupted is returned when the user interrupts the acknowledgment prompt.
	ErrInterrupted = errors.New("interrupted")
	// ErrNoShell is returned when no shell interpreter can be resolved.
	ErrNoShell = errors.New("no shell interpreter available")
)

// ExecutionError reports a script that could not be run or exited non-zero.
type ExecutionError struct {
	Path     string
	ExitCode int // -1 when the process never produced an exit status
	Err      error
}

func (e *ExecutionError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s exited with status %d", e.Path, e.ExitCode)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
