package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Index holds a flat catalog together with case-folded search keys.
type Index struct {
	entries []Entry
	names   []string
	paths   []string
}

// NewIndex folds the name and the NFC form of the relative path of every
// entry once.
func NewIndex(flat []Entry) *Index {
	caser := cases.Fold()
	idx := &Index{
		entries: flat,
		names:   make([]string, len(flat)),
		paths:   make([]string, len(flat)),
	}
	for i, e := range flat {
		idx.names[i] = caser.String(e.Name)
		idx.paths[i] = caser.String(norm.NFC.String(e.RelativePath))
	}
	return idx
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

// Filter returns the entries whose name or relative path contains query,
// ignoring case, in catalog order. An empty query matches nothing.
func (idx *Index) Filter(query string) []Entry {
	if idx == nil || query == "" {
		return nil
	}
	needle := cases.Fold().String(query)

	var matches []Entry
	for i, e := range idx.entries {
		if strings.Contains(idx.names[i], needle) || strings.Contains(idx.paths[i], needle) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Filter is a one-shot helper for callers without an Index.
func Filter(flat []Entry, query string) []Entry {
	if query == "" {
		return nil
	}
	return NewIndex(flat).Filter(query)
}
