package app

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/rrun/internal/fs"
	"github.com/kk-code-lab/rrun/internal/launch"
	statepkg "github.com/kk-code-lab/rrun/internal/state"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	dirs map[string][]fsutil.Entry
	flat []fsutil.Entry
}

func (c *fakeCatalog) ListDirectory(rel string) []fsutil.Entry {
	entries := append([]fsutil.Entry(nil), c.dirs[rel]...)
	if rel != "" {
		entries = append([]fsutil.Entry{fsutil.ParentEntry()}, entries...)
	}
	return append(entries, fsutil.ExitEntry())
}

func (c *fakeCatalog) BuildFlat() []fsutil.Entry {
	return c.flat
}

func (c *fakeCatalog) AbsPath(rel string) string {
	return filepath.Join("/scripts", rel)
}

type fakeLauncher struct {
	mu     sync.Mutex
	paths  []string
	err    error
	runErr error
	during func()
}

func (l *fakeLauncher) Launch(path string) (launch.Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paths = append(l.paths, path)
	if l.during != nil {
		l.during()
	}
	return launch.Outcome{Path: path, Err: l.runErr}, l.err
}

func (l *fakeLauncher) launched() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.paths...)
}

func newTestCatalog() *fakeCatalog {
	backup := fsutil.Entry{Name: "backup", RelativePath: "backup", Kind: fsutil.KindDirectory}
	full := fsutil.Entry{Name: "full.sh", RelativePath: filepath.Join("backup", "full.sh"), Kind: fsutil.KindScript}
	deploy := fsutil.Entry{Name: "deploy.sh", RelativePath: "deploy.sh", Kind: fsutil.KindScript}
	return &fakeCatalog{
		dirs: map[string][]fsutil.Entry{
			"":       {backup, deploy},
			"backup": {full},
		},
		flat: []fsutil.Entry{backup, full, deploy},
	}
}

func newTestApp(t *testing.T, launcher Launcher) (*Application, tcell.SimulationScreen) {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	require.NoError(t, scr.Init())
	scr.SetSize(80, 24)

	log := logrus.New()
	log.SetOutput(io.Discard)

	app := newApplication(scr, newTestCatalog(), "scripts", launcher, log)
	t.Cleanup(func() { _ = app.Close() })
	return app, scr
}

func dispatch(app *Application, actions ...statepkg.Action) {
	for _, action := range actions {
		app.handleAction(action)
		app.reducer.Refresh(app.state)
	}
}

func TestNewApplicationStartsBrowsingRoot(t *testing.T) {
	app, _ := newTestApp(t, &fakeLauncher{})

	assert.Equal(t, statepkg.ModeBrowse, app.state.Mode)
	assert.Equal(t, "", app.state.CurrentPath)
	assert.Equal(t, 0, app.state.SelectedIndex)
	assert.Equal(t, 80, app.state.ScreenWidth)
	assert.Equal(t, 24, app.state.ScreenHeight)
	require.Len(t, app.state.Entries, 3)
	assert.Equal(t, 3, app.state.Catalog.Len())
}

func TestActivatingScriptLaunchesAndKeepsSelection(t *testing.T) {
	launcher := &fakeLauncher{runErr: &launch.ExecutionError{Path: "/scripts/deploy.sh", ExitCode: 1}}
	app, _ := newTestApp(t, launcher)

	dispatch(app, statepkg.NavigateDownAction{}, statepkg.ActivateAction{})

	assert.Equal(t, []string{filepath.Join("/scripts", "deploy.sh")}, launcher.launched())
	assert.Nil(t, app.state.PendingLaunch)
	require.NotNil(t, app.state.LastLaunch)
	assert.Equal(t, "deploy.sh", app.state.LastLaunch.Entry.Name)
	var execErr *launch.ExecutionError
	assert.True(t, errors.As(app.state.LastLaunch.Err, &execErr))
	assert.Equal(t, statepkg.ModeBrowse, app.state.Mode)
	assert.Equal(t, "", app.state.CurrentPath)
	assert.Equal(t, 1, app.state.SelectedIndex)
	assert.False(t, app.shouldQuit)
}

func TestLaunchFromSearchResolvesRelativePath(t *testing.T) {
	launcher := &fakeLauncher{}
	app, _ := newTestApp(t, launcher)

	dispatch(app,
		statepkg.SearchStartAction{},
		statepkg.SearchCharAction{Char: 'f'},
		statepkg.SearchCharAction{Char: 'u'},
		statepkg.ActivateAction{},
	)

	assert.Equal(t, []string{filepath.Join("/scripts", "backup", "full.sh")}, launcher.launched())
	assert.Equal(t, statepkg.ModeSearch, app.state.Mode)
	assert.Equal(t, "fu", app.state.Query)
	require.NotNil(t, app.state.LastLaunch)
	assert.NoError(t, app.state.LastLaunch.Err)
}

func TestInterruptAtPromptEndsSession(t *testing.T) {
	launcher := &fakeLauncher{err: launch.ErrInterrupted}
	app, _ := newTestApp(t, launcher)

	dispatch(app, statepkg.NavigateDownAction{}, statepkg.ActivateAction{})

	assert.True(t, app.shouldQuit)
	assert.NoError(t, app.state.LastError)
	require.NotNil(t, app.state.LastLaunch)
}

func TestInterruptDuringScriptKeepsSession(t *testing.T) {
	launcher := &fakeLauncher{}
	app, _ := newTestApp(t, launcher)
	app.signals = make(chan os.Signal, 4)
	launcher.during = func() { app.signals <- os.Interrupt }

	dispatch(app, statepkg.NavigateDownAction{}, statepkg.ActivateAction{})

	assert.False(t, app.shouldQuit)
	assert.Empty(t, app.signals)
}

func TestTerminateDuringScriptEndsSession(t *testing.T) {
	launcher := &fakeLauncher{}
	app, _ := newTestApp(t, launcher)
	app.signals = make(chan os.Signal, 4)
	launcher.during = func() {
		app.signals <- os.Interrupt
		app.signals <- syscall.SIGTERM
	}

	dispatch(app, statepkg.NavigateDownAction{}, statepkg.ActivateAction{})

	assert.True(t, app.shouldQuit)
	require.NotNil(t, app.state.LastLaunch)
}

func TestTerminalFailureIsShownAsError(t *testing.T) {
	terminalErr := errors.New("failed to resume screen: boom")
	app, _ := newTestApp(t, &fakeLauncher{err: terminalErr})

	dispatch(app, statepkg.NavigateDownAction{}, statepkg.ActivateAction{})

	assert.False(t, app.shouldQuit)
	assert.Equal(t, terminalErr, app.state.LastError)
}

func TestExitEntryQuits(t *testing.T) {
	launcher := &fakeLauncher{}
	app, _ := newTestApp(t, launcher)

	dispatch(app, statepkg.NavigateDownAction{}, statepkg.NavigateDownAction{}, statepkg.ActivateAction{})

	assert.True(t, app.shouldQuit)
	assert.Empty(t, launcher.launched())
}

func TestActivatingDirectoryDoesNotLaunch(t *testing.T) {
	launcher := &fakeLauncher{}
	app, _ := newTestApp(t, launcher)

	dispatch(app, statepkg.ActivateAction{})

	assert.Equal(t, "backup", app.state.CurrentPath)
	assert.Empty(t, launcher.launched())
	require.Len(t, app.state.Entries, 3)
	assert.True(t, app.state.Entries[0].IsParent())
}

func runApp(t *testing.T, app *Application) <-chan struct{} {
	t.Helper()
	done := make(chan struct{})
	go func() {
		app.Run()
		close(done)
	}()
	return done
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestRunQuitsOnQ(t *testing.T) {
	app, scr := newTestApp(t, &fakeLauncher{})

	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	waitDone(t, runApp(t, app))

	assert.True(t, app.state.QuitRequested)
}

func TestRunSearchAndLaunch(t *testing.T) {
	launcher := &fakeLauncher{}
	app, scr := newTestApp(t, launcher)

	scr.InjectKey(tcell.KeyRune, '/', tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'e', tcell.ModNone)
	scr.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	waitDone(t, runApp(t, app))

	assert.Equal(t, []string{filepath.Join("/scripts", "deploy.sh")}, launcher.launched())
	assert.Equal(t, "de", app.state.Query)
}

func TestRunRendersBrowseView(t *testing.T) {
	app, scr := newTestApp(t, &fakeLauncher{})

	scr.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	waitDone(t, runApp(t, app))

	cells, w, _ := scr.GetContents()
	var row strings.Builder
	for x := 0; x < w; x++ {
		if runes := cells[w+x].Runes; len(runes) > 0 {
			row.WriteRune(runes[0])
		}
	}
	assert.Contains(t, row.String(), "Browse: /")
}

func TestOpenTerminalStreamsPrefersTTY(t *testing.T) {
	tty, err := os.CreateTemp(t.TempDir(), "tty")
	require.NoError(t, err)

	streams := openTerminalStreamsInternal("linux", func() (*os.File, error) { return tty, nil })
	assert.Same(t, tty, streams.in)
	assert.Same(t, tty, streams.out)
	assert.Same(t, tty, streams.errOut)
	require.NotNil(t, streams.closer)
	assert.NoError(t, streams.closer.Close())
}

func TestOpenTerminalStreamsFallsBackToStdio(t *testing.T) {
	failing := func() (*os.File, error) { return nil, errors.New("no tty") }

	streams := openTerminalStreamsInternal("linux", failing)
	assert.Same(t, os.Stdin, streams.in)
	assert.Same(t, os.Stdout, streams.out)
	assert.Nil(t, streams.closer)

	called := false
	streams = openTerminalStreamsInternal("windows", func() (*os.File, error) {
		called = true
		return nil, nil
	})
	assert.False(t, called)
	assert.Same(t, os.Stderr, streams.errOut)
}
