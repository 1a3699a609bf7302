package launch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// Terminal is the part of the rendering backend that owns raw mode.
type Terminal interface {
	Suspend() error
	Resume() error
}

// Outcome describes one finished launch.
type Outcome struct {
	Path     string
	Err      error // nil, ErrScriptNotFound or *ExecutionError
	Duration time.Duration
}

// Controller hands the terminal to a script and takes it back afterwards.
type Controller struct {
	term   Terminal
	runner Runner
	in     io.Reader
	out    io.Writer
	log    logrus.FieldLogger

	// notifyInterrupt captures interrupts while the terminal is released.
	notifyInterrupt func() (<-chan os.Signal, func())
}

// NewController builds a controller reading acknowledgments from in and
// writing reports to out.
func NewController(term Terminal, runner Runner, in io.Reader, out io.Writer, log logrus.FieldLogger) *Controller {
	return &Controller{
		term:            term,
		runner:          runner,
		in:              in,
		out:             out,
		log:             log.WithField("component", "launch"),
		notifyInterrupt: notifyOSInterrupt,
	}
}

func notifyOSInterrupt() (<-chan os.Signal, func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	return ch, func() { signal.Stop(ch) }
}

// Launch suspends the terminal, runs the script at path, reports the result,
// waits for an acknowledgment and resumes the terminal. The terminal is
// resumed on every path. The returned error is non-nil only when the
// terminal could not be handed over or the user interrupted the prompt; a
// failing script is reported through Outcome.Err.
func (c *Controller) Launch(path string) (outcome Outcome, err error) {
	outcome.Path = path

	if err := c.term.Suspend(); err != nil {
		return outcome, fmt.Errorf("failed to suspend screen: %w", err)
	}
	defer func() {
		if resumeErr := c.term.Resume(); resumeErr != nil && err == nil {
			err = fmt.Errorf("failed to resume screen: %w", resumeErr)
		}
	}()

	fmt.Fprintf(c.out, "\nExecuting %s...\n", filepath.Base(path))

	interrupts, stop := c.notifyInterrupt()
	defer stop()

	start := time.Now()
	outcome.Err = c.run(path)
	outcome.Duration = time.Since(start)
	drain(interrupts)

	entry := c.log.WithField("path", path).WithField("duration", outcome.Duration)
	if outcome.Err != nil {
		entry.WithError(outcome.Err).Warn("script failed")
	} else {
		entry.Info("script finished")
	}

	c.report(outcome)
	if err := c.awaitAcknowledgment(interrupts); err != nil {
		return outcome, err
	}
	return outcome, nil
}

func (c *Controller) run(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		if err == nil || errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrScriptNotFound, path)
		}
		return &ExecutionError{Path: path, ExitCode: -1, Err: err}
	}
	return c.runner.Run(path)
}

func (c *Controller) report(outcome Outcome) {
	var execErr *ExecutionError
	switch {
	case outcome.Err == nil:
		fmt.Fprintf(c.out, "\n✓ %s finished successfully\n", outcome.Path)
	case errors.Is(outcome.Err, ErrScriptNotFound):
		fmt.Fprintf(c.out, "\n✗ Not found: %s\n", outcome.Path)
	case errors.As(outcome.Err, &execErr):
		fmt.Fprintf(c.out, "\n✗ Execution error: %s\n", execErr.Error())
	default:
		fmt.Fprintf(c.out, "\n✗ Execution error: %v\n", outcome.Err)
	}
	fmt.Fprint(c.out, "\nPress Enter to continue...")
}

func (c *Controller) awaitAcknowledgment(interrupts <-chan os.Signal) error {
	done := make(chan struct{})
	go func() {
		// EOF counts as an acknowledgment.
		_, _ = bufio.NewReader(c.in).ReadString('\n')
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-interrupts:
		fmt.Fprintln(c.out)
		return ErrInterrupted
	}
}

// drain discards interrupts delivered while the script was running.
func drain(ch <-chan os.Signal) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}
