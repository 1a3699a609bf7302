package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/rrun/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles mode-specific help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	if state.Mode == statepkg.ModeSearch {
		return []string{
			"type: search",
			"↑↓: select",
			"↵: open/run",
			"⌫: delete",
			"Esc: back",
			"^R: rescan",
		}
	}
	return []string{
		"↑↓: select",
		"↵: open/run",
		"/: search",
		"^R: rescan",
		"q: quit",
	}
}
