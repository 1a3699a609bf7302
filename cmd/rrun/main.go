package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/rrun/internal/app"
	"github.com/kk-code-lab/rrun/internal/config"
	fsutil "github.com/kk-code-lab/rrun/internal/fs"
	"github.com/kk-code-lab/rrun/internal/launch"
	"github.com/kk-code-lab/rrun/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

const farewell = "Thank you for using rrun!"

// session is the interactive part of a run.
type session interface {
	Run()
	Close() error
}

var newSession = func(opts apppkg.Options) (session, error) {
	app, err := apppkg.NewApplication(opts)
	if err != nil {
		return nil, err
	}
	return app, nil
}

type flagValues struct {
	root     string
	patterns []string
	shell    string
	logFile  string
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags flagValues

	cmd := &cobra.Command{
		Use:   "rrun",
		Short: "Browse and run the scripts under a directory",
		Long: `rrun shows the scripts below a root directory (default ./scripts) in a
terminal menu. Navigate with the arrow keys, search the whole tree with "/",
and press Enter to run the highlighted script.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg = applyFlags(cmd, cfg, flags)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&flags.root, "root", "", "script root directory (env RRUN_ROOT, default \"scripts\")")
	cmd.Flags().StringSliceVar(&flags.patterns, "pattern", nil, "glob for script file names, repeatable (env RRUN_PATTERNS, default \"*.sh\")")
	cmd.Flags().StringVar(&flags.shell, "shell", "", "interpreter used to run scripts (env RRUN_SHELL, default bash or sh)")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "write diagnostics to this file (env RRUN_LOG_FILE)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "diagnostics level (env RRUN_LOG_LEVEL, default \"info\")")
	return cmd
}

// applyFlags overrides cfg with the flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg config.Config, flags flagValues) config.Config {
	changed := cmd.Flags().Changed
	if changed("root") {
		cfg.Root = flags.root
	}
	if changed("pattern") {
		cfg.Patterns = flags.patterns
	}
	if changed("shell") {
		cfg.Shell = flags.shell
	}
	if changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	return cfg
}

// run starts a session. The farewell line is written to out after the
// terminal is restored, however the session ends.
func run(cfg config.Config, out io.Writer) error {
	log, logCloser, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = logCloser.Close()
	}()

	matcher, err := fsutil.NewScriptMatcher(cfg.Patterns...)
	if err != nil {
		return err
	}
	shell, err := launch.DetectShell(cfg.Shell)
	if err != nil {
		return err
	}

	catalog := fsutil.NewCatalog(cfg.Root, matcher, log)
	if err := catalog.EnsureRoot(); err != nil {
		return fmt.Errorf("create script root: %w", err)
	}

	log.WithFields(logrus.Fields{
		"root":     cfg.Root,
		"patterns": strings.Join(matcher.Patterns(), ","),
		"shell":    strings.Join(shell, " "),
	}).Info("session started")

	// UTF-8 fallback keeps non-ASCII script names readable on terminals
	// that report a legacy encoding.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	defer fmt.Fprintln(out, "\n"+farewell)

	app, err := newSession(apppkg.Options{
		RootLabel: cfg.Root,
		Catalog:   catalog,
		Shell:     shell,
		Log:       log,
	})
	if err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	log.Info("session ended")
	return nil
}
