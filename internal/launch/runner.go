package launch

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

var commandBuilder = exec.Command

// Runner executes one script and blocks until it exits.
type Runner interface {
	Run(path string) error
}

// ShellRunner runs scripts through a shell interpreter with the script path
// as its only argument.
type ShellRunner struct {
	Shell  []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShellRunner wires the runner to the process's standard streams.
func NewShellRunner(shell []string) *ShellRunner {
	return &ShellRunner{
		Shell:  shell,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (r *ShellRunner) Run(path string) error {
	if len(r.Shell) == 0 {
		return &ExecutionError{Path: path, ExitCode: -1, Err: ErrNoShell}
	}

	args := make([]string, 0, len(r.Shell))
	args = append(args, r.Shell[1:]...)
	args = append(args, path)

	cmd := commandBuilder(r.Shell[0], args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExecutionError{Path: path, ExitCode: exitErr.ExitCode(), Err: err}
	}
	return &ExecutionError{Path: path, ExitCode: -1, Err: err}
}
