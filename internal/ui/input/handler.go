package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rrun/internal/state"
)

const (
	searchKey = '/'
	quitKey   = 'q'
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the event ends the session.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	inSearch := ih.state != nil && ih.state.Mode == statepkg.ModeSearch

	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
		return true

	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
		return true

	case tcell.KeyEnter:
		ih.actionChan <- statepkg.ActivateAction{}
		return true

	case tcell.KeyEscape:
		if inSearch {
			ih.actionChan <- statepkg.SearchCancelAction{}
		}
		return true

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if inSearch {
			ih.actionChan <- statepkg.SearchBackspaceAction{}
		}
		return true

	case tcell.KeyCtrlR:
		ih.actionChan <- statepkg.RefreshCatalogAction{}
		return true

	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
		return true

	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			switch r {
			case 'c', 'C':
				ih.actionChan <- statepkg.QuitAction{}
				return false
			case 'r', 'R':
				ih.actionChan <- statepkg.RefreshCatalogAction{}
			case 'z', 'Z':
				ih.actionChan <- statepkg.SuspendAction{}
			}
			return true
		}
		if inSearch {
			if isPrintableASCII(r) {
				ih.actionChan <- statepkg.SearchCharAction{Char: r}
			}
			return true
		}

		switch r {
		case searchKey:
			ih.actionChan <- statepkg.SearchStartAction{}
		case quitKey:
			ih.actionChan <- statepkg.QuitAction{}
			return false
		}
		return true

	default:
		return true
	}
}

func isPrintableASCII(r rune) bool {
	return r >= 0x20 && r <= 0x7e
}
