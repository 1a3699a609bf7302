package state

import (
	fsutil "github.com/kk-code-lab/rrun/internal/fs"
	search "github.com/kk-code-lab/rrun/internal/search"
)

// Lister provides the directory and flat views of the script tree.
type Lister interface {
	ListDirectory(rel string) []FileEntry
	BuildFlat() []FileEntry
}

// ===== REDUCER =====

// StateReducer applies actions to state
type StateReducer struct {
	catalog Lister
}

// NewStateReducer creates a new reducer
func NewStateReducer(catalog Lister) *StateReducer {
	return &StateReducer{catalog: catalog}
}

// Refresh recomputes the directory view from the filesystem when browsing
// and clamps the selection to the active list.
func (r *StateReducer) Refresh(state *AppState) {
	if state.Mode == ModeBrowse {
		state.Entries = r.catalog.ListDirectory(state.CurrentPath)
	}
	state.clampSelection()
}

// RebuildCatalog snapshots the flat view used by search.
func (r *StateReducer) RebuildCatalog(state *AppState) {
	state.Catalog = search.NewIndex(r.catalog.BuildFlat())
	if state.Mode == ModeSearch {
		state.Matches = state.Catalog.Filter(state.Query)
	}
	state.clampSelection()
}

// Reduce applies action to state. Keys that do not apply to the current mode
// are ignored.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case NavigateDownAction:
		list := state.ActiveList()
		if len(list) == 0 || state.SelectedIndex >= len(list)-1 {
			return state, nil
		}
		state.SelectedIndex++
		return state, nil

	case NavigateUpAction:
		if len(state.ActiveList()) == 0 || state.SelectedIndex <= 0 {
			return state, nil
		}
		state.SelectedIndex--
		return state, nil

	case ActivateAction:
		return r.activate(state)

	// ===== SEARCH =====

	case SearchStartAction:
		if state.Mode != ModeBrowse {
			return state, nil
		}
		state.Mode = ModeSearch
		state.Query = ""
		state.Matches = nil
		state.SelectedIndex = 0
		return state, nil

	case SearchCharAction:
		if state.Mode != ModeSearch {
			return state, nil
		}
		state.Query += string(a.Char)
		r.updateMatches(state)
		state.SelectedIndex = 0
		return state, nil

	case SearchBackspaceAction:
		if state.Mode != ModeSearch {
			return state, nil
		}
		if state.Query != "" {
			runes := []rune(state.Query)
			state.Query = string(runes[:len(runes)-1])
		}
		r.updateMatches(state)
		state.SelectedIndex = 0
		return state, nil

	case SearchCancelAction:
		if state.Mode != ModeSearch {
			return state, nil
		}
		r.enterBrowse(state, state.CurrentPath)
		return state, nil

	// ===== CATALOG =====

	case RefreshCatalogAction:
		r.RebuildCatalog(state)
		return state, nil

	case LaunchCompletedAction:
		state.PendingLaunch = nil
		state.LastLaunch = &LaunchResult{Entry: a.Entry, Err: a.Err}
		if state.Mode == ModeSearch {
			r.updateMatches(state)
		}
		r.Refresh(state)
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		return state, nil

	case QuitAction:
		state.QuitRequested = true
		return state, nil
	}

	return state, nil
}

func (r *StateReducer) activate(state *AppState) (*AppState, error) {
	entry := state.CurrentEntry()
	if entry == nil {
		return state, nil
	}

	switch {
	case entry.IsParent():
		r.enterBrowse(state, fsutil.ParentPath(state.CurrentPath))
	case entry.IsDir():
		r.enterBrowse(state, entry.RelativePath)
	case entry.IsExit():
		state.QuitRequested = true
	case entry.IsScript():
		target := *entry
		state.PendingLaunch = &target
	}
	return state, nil
}

// enterBrowse switches to Browse mode at path, discarding any search state.
func (r *StateReducer) enterBrowse(state *AppState, path string) {
	state.Mode = ModeBrowse
	state.Query = ""
	state.Matches = nil
	state.CurrentPath = path
	state.SelectedIndex = 0
	state.Entries = r.catalog.ListDirectory(path)
}

func (r *StateReducer) updateMatches(state *AppState) {
	state.Matches = state.Catalog.Filter(state.Query)
}
