package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// HighlightSpans returns the non-overlapping case-insensitive occurrences of
// query in text as rune spans. Folding matches Index.Filter, so every row the
// filter returns for a query in its name has a span.
func HighlightSpans(text, query string) []MatchSpan {
	if query == "" || text == "" {
		return nil
	}
	caser := cases.Fold()
	needle := caser.String(query)
	if needle == "" {
		return nil
	}

	// owner maps each byte of the folded text to the rune it came from.
	var folded strings.Builder
	var owner []int
	runeIdx := 0
	for _, r := range text {
		piece := caser.String(string(r))
		folded.WriteString(piece)
		for range len(piece) {
			owner = append(owner, runeIdx)
		}
		runeIdx++
	}
	hay := folded.String()

	var spans []MatchSpan
	for pos := 0; pos < len(hay); {
		i := strings.Index(hay[pos:], needle)
		if i < 0 {
			break
		}
		start := pos + i
		end := start + len(needle)
		pos = end

		span := MatchSpan{Start: owner[start], End: owner[end-1] + 1}
		if n := len(spans); n > 0 && spans[n-1].End > span.Start {
			span.Start = spans[n-1].End
		}
		if span.Start < span.End {
			spans = append(spans, span)
		}
	}
	return spans
}
