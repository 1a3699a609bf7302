package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type ActivateAction struct{}

// ===== SEARCH ACTIONS =====

type SearchStartAction struct{}
type SearchCharAction struct {
	Char rune
}
type SearchBackspaceAction struct{}
type SearchCancelAction struct{}

// ===== CATALOG ACTIONS =====

type RefreshCatalogAction struct{}

// LaunchCompletedAction is dispatched by the application once a script run
// has been acknowledged by the user.
type LaunchCompletedAction struct {
	Entry FileEntry
	Err   error
}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}

// SuspendAction hands the terminal back to the parent shell (job control).
type SuspendAction struct{}
