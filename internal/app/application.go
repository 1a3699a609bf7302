package app

import (
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rrun/internal/launch"
	statepkg "github.com/kk-code-lab/rrun/internal/state"
	inputui "github.com/kk-code-lab/rrun/internal/ui/input"
	renderui "github.com/kk-code-lab/rrun/internal/ui/render"
	"github.com/sirupsen/logrus"
)

// Catalog is the script tree as seen by the application.
type Catalog interface {
	statepkg.Lister
	AbsPath(rel string) string
}

// Launcher runs one script with the terminal handed over to it.
type Launcher interface {
	Launch(path string) (launch.Outcome, error)
}

// Options configures a new Application.
type Options struct {
	RootLabel string
	Catalog   Catalog
	Shell     []string
	Log       logrus.FieldLogger
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	launcher   Launcher
	catalog    Catalog
	log        logrus.FieldLogger
	tty        io.Closer
	signals    chan os.Signal
	shouldQuit bool
}

// NewApplication initialises the terminal and builds the session.
func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	log := opts.Log
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	streams := openTerminalStreams()
	runner := &launch.ShellRunner{
		Shell:  opts.Shell,
		Stdin:  streams.in,
		Stdout: streams.out,
		Stderr: streams.errOut,
	}
	controller := launch.NewController(screen, runner, streams.in, streams.out, log)

	app := newApplication(screen, opts.Catalog, opts.RootLabel, controller, log)
	app.tty = streams.closer
	return app, nil
}

func newApplication(screen tcell.Screen, catalog Catalog, rootLabel string, launcher Launcher, log logrus.FieldLogger) *Application {
	state := statepkg.NewAppState()
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 10)
	reducer := statepkg.NewStateReducer(catalog)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	reducer.Refresh(state)
	reducer.RebuildCatalog(state)

	return &Application{
		screen:   screen,
		state:    state,
		reducer:  reducer,
		renderer: renderui.NewRenderer(screen, rootLabel),
		input:    inputHandler,
		actionCh: actionCh,
		launcher: launcher,
		catalog:  catalog,
		log:      log.WithField("component", "app"),
	}
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	if app.tty != nil {
		return app.tty.Close()
	}
	return nil
}
