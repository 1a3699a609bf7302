package render

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/rrun/internal/fs"
	"github.com/kk-code-lab/rrun/internal/launch"
	searchpkg "github.com/kk-code-lab/rrun/internal/search"
	statepkg "github.com/kk-code-lab/rrun/internal/state"
	"github.com/kk-code-lab/rrun/internal/textutil"
	"golang.org/x/text/unicode/norm"
)

const (
	titleText    = "rrun"
	searchCursor = '█'
	listStartY   = 2
)

// Renderer handles all UI rendering
type Renderer struct {
	screen     tcell.Screen
	theme      ColorTheme
	asciiWidth [128]int // width+1, zero means not cached
	wideWidth  map[rune]int
	rootLabel  string
}

// NewRenderer creates a new renderer. rootLabel is shown in the title bar.
func NewRenderer(screen tcell.Screen, rootLabel string) *Renderer {
	return &Renderer{
		screen:    screen,
		theme:     GetColorTheme(),
		wideWidth: make(map[rune]int),
		rootLabel: rootLabel,
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	if state == nil {
		r.screen.Show()
		return
	}

	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	r.drawHeader(w)
	if h > 1 {
		r.drawModeLine(state, w)
	}
	lastListRow := r.drawList(state, w, h)
	if h-2 > lastListRow {
		r.drawStatusLine(state, w, h-2)
	}
	if h-1 > lastListRow {
		r.drawFooter(state, w, h-1)
	}

	r.screen.Show()
}

// drawHeader renders the title bar with the script root
func (r *Renderer) drawHeader(w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	endX := r.drawTextLine(0, 0, w, titleText, style)
	if r.rootLabel != "" && endX+1 < w {
		label := r.truncateTextToWidth(textutil.SanitizeLabel(r.rootLabel), w-endX-1)
		endX = r.drawTextLine(endX+1, 0, w-endX-1, label, style.Bold(false))
	}
	r.fillLine(endX, 0, w, style)
}

// drawModeLine shows the current directory in Browse mode and the query in Search mode.
func (r *Renderer) drawModeLine(state *statepkg.AppState, w int) {
	base := tcell.StyleDefault
	if state.Mode == statepkg.ModeSearch {
		prefixStyle := base.Foreground(r.theme.MatchFg).Bold(true)
		endX := r.drawTextLine(0, 1, w, "Search: ", prefixStyle)
		query := textutil.SanitizeLabel(state.Query)
		endX = r.drawTextLine(endX, 1, w-endX, query, base)
		if endX < w {
			r.screen.SetContent(endX, 1, searchCursor, nil, base)
			endX++
		}
		count := fmt.Sprintf("  %d match", len(state.Matches))
		if len(state.Matches) != 1 {
			count += "es"
		}
		r.drawTextLine(endX, 1, w-endX, count, base.Foreground(r.theme.SyntheticFg))
		return
	}

	path := "/"
	if state.CurrentPath != "" {
		path = "/" + filepath.ToSlash(state.CurrentPath)
	}
	path = textutil.SanitizeLabel(path)
	endX := r.drawTextLine(0, 1, w, "Browse: ", base.Foreground(r.theme.DirectoryFg).Bold(true))
	r.drawTextLine(endX, 1, w-endX, r.truncateTextToWidth(path, w-endX), base)
}

// drawList renders the windowed active list and returns the last row used.
func (r *Renderer) drawList(state *statepkg.AppState, w, h int) int {
	window, highlighted := state.VisibleEntries()
	last := listStartY - 1

	if len(window) == 0 {
		if listStartY < h && state.Mode == statepkg.ModeSearch {
			msg := "(no matches)"
			if state.Query == "" {
				msg = "(type to search)"
			}
			r.drawTextLine(2, listStartY, w-2, msg, tcell.StyleDefault.Foreground(r.theme.SyntheticFg))
			return listStartY
		}
		return last
	}

	for i, entry := range window {
		y := listStartY + i
		if y >= h {
			break
		}
		r.drawEntryRow(state, entry, i == highlighted, w, y)
		last = y
	}
	return last
}

func (r *Renderer) drawEntryRow(state *statepkg.AppState, entry fsutil.Entry, selected bool, w, y int) {
	rowStyle := tcell.StyleDefault
	if selected {
		rowStyle = rowStyle.Reverse(true)
	}

	glyphStyle := rowStyle.Foreground(r.kindColor(entry))
	endX := r.drawTextLine(0, y, w, kindGlyph(entry)+" ", glyphStyle)

	label := textutil.SanitizeLabel(entryLabel(state, entry))
	labelStyle := rowStyle
	if entry.IsDir() {
		labelStyle = labelStyle.Foreground(r.theme.DirectoryFg).Bold(true)
	} else if entry.Kind == fsutil.KindSynthetic {
		labelStyle = labelStyle.Foreground(r.theme.SyntheticFg)
	}

	available := w - endX
	if state.Mode == statepkg.ModeSearch && r.measureTextWidth(label) <= available {
		spans := searchpkg.HighlightSpans(label, state.Query)
		matchStyle := labelStyle.Foreground(r.theme.MatchFg).Bold(true)
		endX = r.drawHighlightedText(endX, y, w, label, spans, labelStyle, matchStyle)
	} else {
		endX = r.drawTextLine(endX, y, available, r.truncateTextToWidth(label, available), labelStyle)
	}

	if selected {
		r.fillLine(endX, y, w, rowStyle)
	}
}

func (r *Renderer) kindColor(entry fsutil.Entry) tcell.Color {
	switch {
	case entry.IsDir():
		return r.theme.DirectoryFg
	case entry.IsScript():
		return r.theme.ScriptFg
	default:
		return r.theme.SyntheticFg
	}
}

func kindGlyph(entry fsutil.Entry) string {
	switch {
	case entry.IsParent():
		return "↩"
	case entry.IsExit():
		return "✕"
	case entry.IsDir():
		return "▸"
	default:
		return "•"
	}
}

// entryLabel shows names in Browse mode and root-relative paths in Search mode.
func entryLabel(state *statepkg.AppState, entry fsutil.Entry) string {
	label := entry.Name
	if state.Mode == statepkg.ModeSearch && entry.RelativePath != "" {
		label = norm.NFC.String(filepath.ToSlash(entry.RelativePath))
	}
	if entry.IsDir() {
		label += "/"
	}
	return label
}

// drawStatusLine shows the outcome of the last launch and the list position.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, y int) {
	base := tcell.StyleDefault
	endX := 0

	if text, ok := formatLaunchStatus(state.LastLaunch); text != "" {
		style := base.Foreground(r.theme.ErrorFg)
		if ok {
			style = base.Foreground(r.theme.SuccessFg)
		}
		endX = r.drawTextLine(0, y, w, r.truncateTextToWidth(textutil.SanitizeLabel(text), w), style)
	} else if state.LastError != nil {
		text := "✗ " + state.LastError.Error()
		endX = r.drawTextLine(0, y, w, r.truncateTextToWidth(textutil.SanitizeLabel(text), w), base.Foreground(r.theme.ErrorFg))
	}

	list := state.ActiveList()
	if len(list) == 0 {
		return
	}
	position := fmt.Sprintf("%d/%d", state.SelectedIndex+1, len(list))
	posWidth := r.measureTextWidth(position)
	if startX := w - posWidth; startX > endX {
		r.drawTextLine(startX, y, posWidth, position, base.Foreground(r.theme.SyntheticFg))
	}
}

// formatLaunchStatus describes a launch result; ok reports success.
func formatLaunchStatus(result *statepkg.LaunchResult) (string, bool) {
	if result == nil {
		return "", false
	}
	name := filepath.ToSlash(result.Entry.RelativePath)
	if name == "" {
		name = result.Entry.Name
	}
	if result.Err == nil {
		return "✓ " + name + " finished", true
	}

	var execErr *launch.ExecutionError
	switch {
	case errors.Is(result.Err, launch.ErrScriptNotFound):
		return "✗ not found: " + name, false
	case errors.As(result.Err, &execErr) && execErr.ExitCode >= 0:
		return fmt.Sprintf("✗ %s exited with status %d", name, execErr.ExitCode), false
	default:
		return "✗ " + name + ": " + result.Err.Error(), false
	}
}

func (r *Renderer) drawFooter(state *statepkg.AppState, w, y int) {
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Dim(true)
	text := r.truncateTextToWidth(buildFooterHelpText(state), w)
	endX := r.drawTextLine(0, y, w, text, style)
	r.fillLine(endX, y, w, style)
}
