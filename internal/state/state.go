package state

import (
	fsutil "github.com/kk-code-lab/rrun/internal/fs"
	search "github.com/kk-code-lab/rrun/internal/search"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// Mode selects which list is active.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
)

func (m Mode) String() string {
	if m == ModeSearch {
		return "search"
	}
	return "browse"
}

// LaunchResult records the outcome of the most recent script run.
type LaunchResult struct {
	Entry FileEntry
	Err   error
}

// AppState is the single source of truth
type AppState struct {
	// Navigation
	Mode          Mode
	CurrentPath   string // relative to the script root, empty = root
	Query         string
	SelectedIndex int

	// Lists
	Entries []FileEntry   // directory view of CurrentPath
	Matches []FileEntry   // search results for Query
	Catalog *search.Index // flat snapshot used by search

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Requests for the application loop
	PendingLaunch *FileEntry
	QuitRequested bool

	// Status line
	LastLaunch *LaunchResult
	LastError  error
}

// NewAppState returns the session's initial state: Browse at the root.
func NewAppState() *AppState {
	return &AppState{
		Mode:          ModeBrowse,
		CurrentPath:   "",
		SelectedIndex: 0,
	}
}

// ActiveList returns the directory view in Browse mode and the matches in Search mode.
func (s *AppState) ActiveList() []FileEntry {
	if s.Mode == ModeSearch {
		return s.Matches
	}
	return s.Entries
}

// CurrentEntry returns the highlighted entry or nil when the active list is empty.
func (s *AppState) CurrentEntry() *FileEntry {
	list := s.ActiveList()
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(list) {
		return nil
	}
	return &list[s.SelectedIndex]
}

// clampSelection keeps SelectedIndex inside the active list.
func (s *AppState) clampSelection() {
	n := len(s.ActiveList())
	if s.SelectedIndex >= n {
		s.SelectedIndex = n - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}

// ViewportHeight is the number of list rows the current screen can draw.
func (s *AppState) ViewportHeight() int {
	if s.ScreenHeight <= 0 {
		return MaxVisibleRows
	}
	h := s.ScreenHeight - chromeRows
	if h > MaxVisibleRows {
		h = MaxVisibleRows
	}
	if h < 1 {
		h = 1
	}
	return h
}

// VisibleEntries returns the windowed slice of the active list and the
// highlighted row within it.
func (s *AppState) VisibleEntries() ([]FileEntry, int) {
	return VisibleWindow(s.ActiveList(), s.SelectedIndex, s.ViewportHeight())
}
