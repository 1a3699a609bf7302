package app

import (
	"errors"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rrun/internal/launch"
	statepkg "github.com/kk-code-lab/rrun/internal/state"
)

// Run drives the session until the user exits, quits or interrupts it.
func (app *Application) Run() {
	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	app.signals = make(chan os.Signal, 4)
	signal.Notify(app.signals, terminationSignals()...)
	defer signal.Stop(app.signals)

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		app.reducer.Refresh(app.state)
		app.renderer.Render(app.state)

		select {
		case ev, ok := <-eventChan:
			if !ok {
				app.shouldQuit = true
				break
			}
			app.handleEvent(ev)
		case action := <-app.actionCh:
			app.handleAction(action)
		case sig := <-app.signals:
			app.log.WithField("signal", sig.String()).Info("session interrupted")
			app.shouldQuit = true
		case <-sigContCh:
			app.resumeAfterStop()
		}

		app.processActions()
	}
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	}
}

func (app *Application) processActions() {
	for {
		select {
		case action := <-app.actionCh:
			app.handleAction(action)
		default:
			return
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) {
	if action == nil {
		return
	}

	switch action.(type) {
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
	}
	if _, ok := action.(statepkg.RefreshCatalogAction); ok {
		app.log.WithField("entries", app.state.Catalog.Len()).Info("catalog rebuilt")
	}

	if app.state.QuitRequested {
		app.shouldQuit = true
		return
	}
	if app.state.PendingLaunch != nil {
		app.launchPending()
	}
}

// launchPending hands the terminal to the selected script and records the
// result once the user has acknowledged it.
func (app *Application) launchPending() {
	entry := *app.state.PendingLaunch
	path := app.catalog.AbsPath(entry.RelativePath)
	app.state.LastError = nil

	outcome, err := app.launcher.Launch(path)
	app.screen.Sync()
	if flushErr := flushConsoleInput(); flushErr != nil {
		app.log.WithError(flushErr).Debug("failed to flush console input")
	}
	if sig := drainSignals(app.signals); sig != nil {
		app.log.WithField("signal", sig.String()).Info("terminated while a script ran")
		app.shouldQuit = true
	}
	app.syncScreenSize()

	if err != nil {
		if errors.Is(err, launch.ErrInterrupted) {
			app.log.WithField("path", path).Info("interrupted at launch prompt")
			app.shouldQuit = true
		} else {
			app.state.LastError = err
		}
	}

	if _, reduceErr := app.reducer.Reduce(app.state, statepkg.LaunchCompletedAction{Entry: entry, Err: outcome.Err}); reduceErr != nil {
		app.state.LastError = reduceErr
	}
}

func (app *Application) syncScreenSize() {
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		app.state.ScreenWidth = w
		app.state.ScreenHeight = h
	}
}

// drainSignals drops interrupts that were meant for the script and returns
// the first other termination signal, if any.
func drainSignals(ch chan os.Signal) os.Signal {
	if ch == nil {
		return nil
	}
	var pending os.Signal
	for {
		select {
		case sig := <-ch:
			if sig != os.Interrupt && pending == nil {
				pending = sig
			}
		default:
			return pending
		}
	}
}
