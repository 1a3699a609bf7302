package search

import (
	fsutil "github.com/kk-code-lab/rrun/internal/fs"
)

type Entry = fsutil.Entry

// MatchSpan is a half-open rune range [Start, End) of a highlighted match.
type MatchSpan struct {
	Start int
	End   int
}
