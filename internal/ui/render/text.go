package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	searchpkg "github.com/kk-code-lab/rrun/internal/search"
)

const ellipsis = "…"

func (r *Renderer) cachedRuneWidth(ru rune) int {
	if ru >= 0 && ru < 128 {
		if w := r.asciiWidth[ru]; w != 0 {
			return w - 1
		}
		w := runewidth.RuneWidth(ru)
		r.asciiWidth[ru] = w + 1
		return w
	}

	if w, ok := r.wideWidth[ru]; ok {
		return w
	}
	w := runewidth.RuneWidth(ru)
	r.wideWidth[ru] = w
	return w
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += r.cachedRuneWidth(ru)
	}
	return width
}

func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if r.measureTextWidth(text) <= maxWidth {
		return text
	}

	ellipsisWidth := r.measureTextWidth(ellipsis)
	if maxWidth <= ellipsisWidth {
		return ellipsis
	}

	available := maxWidth - ellipsisWidth
	var builder strings.Builder
	currentWidth := 0
	for _, ru := range text {
		rw := r.cachedRuneWidth(ru)
		if currentWidth+rw > available {
			break
		}
		builder.WriteRune(ru)
		currentWidth += rw
	}
	builder.WriteString(ellipsis)
	return builder.String()
}

// drawTextLine draws text from startX and returns the column after the last
// drawn cell. Zero-width runes are attached to the preceding cell.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		if x-startX >= maxWidth {
			break
		}

		mainc := runes[i]
		i++

		var combc []rune
		for i < len(runes) && r.cachedRuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		w := r.cachedRuneWidth(mainc)
		if w <= 0 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}
		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

func (r *Renderer) fillLine(startX, y, endX int, style tcell.Style) {
	for x := startX; x < endX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawHighlightedText draws text, switching to highlightStyle inside spans.
func (r *Renderer) drawHighlightedText(startX, y, maxX int, text string, spans []searchpkg.MatchSpan, baseStyle, highlightStyle tcell.Style) int {
	x := startX
	spanIdx := 0

	for idx, ru := range []rune(text) {
		w := r.cachedRuneWidth(ru)
		if w <= 0 {
			w = 1
		}
		if x+w > maxX {
			break
		}

		for spanIdx < len(spans) && idx >= spans[spanIdx].End {
			spanIdx++
		}
		style := baseStyle
		if spanIdx < len(spans) && idx >= spans[spanIdx].Start {
			style = highlightStyle
		}

		r.screen.SetContent(x, y, ru, nil, style)
		x += w
	}
	return x
}
