package fs

import "path/filepath"

// Kind classifies a catalog entry.
type Kind int

const (
	KindDirectory Kind = iota
	KindScript
	KindSynthetic
)

// Labels of the synthetic entries.
const (
	ParentLabel = ".."
	ExitLabel   = "Exit"
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindScript:
		return "script"
	case KindSynthetic:
		return "synthetic"
	default:
		return "unknown"
	}
}

// Entry represents a single navigable item: a directory or script under the
// catalog root, or one of the synthetic ".." and "Exit" actions. Entries are
// values and are replaced wholesale when a listing is redone.
type Entry struct {
	Name         string
	RelativePath string // relative to the catalog root, empty for synthetic entries
	Kind         Kind
	IsSymlink    bool
}

// ParentEntry returns the synthetic back-navigation entry.
func ParentEntry() Entry {
	return Entry{Name: ParentLabel, Kind: KindSynthetic}
}

// ExitEntry returns the synthetic entry that ends the session.
func ExitEntry() Entry {
	return Entry{Name: ExitLabel, Kind: KindSynthetic}
}

func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

func (e Entry) IsScript() bool {
	return e.Kind == KindScript
}

func (e Entry) IsParent() bool {
	return e.Kind == KindSynthetic && e.Name == ParentLabel
}

func (e Entry) IsExit() bool {
	return e.Kind == KindSynthetic && e.Name == ExitLabel
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return e.Kind != KindSynthetic && IsHidden(e.Name)
}

// ParentPath returns the relative path of the directory containing rel.
// The root is the empty string.
func ParentPath(rel string) string {
	if rel == "" {
		return ""
	}
	parent := filepath.Dir(filepath.Clean(rel))
	if parent == "." || parent == string(filepath.Separator) {
		return ""
	}
	return parent
}
