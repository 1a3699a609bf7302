package fs

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"
)

// Catalog lists launchable entries below a root directory.
type Catalog struct {
	root    string
	scripts *ScriptMatcher
	log     logrus.FieldLogger
}

// NewCatalog creates a catalog rooted at root. A nil matcher falls back to
// DefaultScriptPattern and a nil logger discards output.
func NewCatalog(root string, scripts *ScriptMatcher, log logrus.FieldLogger) *Catalog {
	if scripts == nil {
		scripts, _ = NewScriptMatcher()
	}
	if log == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		log = discard
	}
	return &Catalog{
		root:    root,
		scripts: scripts,
		log:     log.WithField("component", "catalog"),
	}
}

// Root returns the catalog root as configured.
func (c *Catalog) Root() string {
	return c.root
}

// AbsPath resolves a relative entry path against the root.
func (c *Catalog) AbsPath(rel string) string {
	p := filepath.Join(c.root, rel)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// EnsureRoot creates the root directory if it does not exist yet.
func (c *Catalog) EnsureRoot() error {
	return os.MkdirAll(c.root, 0o755)
}

// ListDirectory returns the directory view for rel: an optional ".." entry
// when rel is not the root, subdirectories by name, scripts by name, and the
// Exit entry last. Read failures yield an empty listing.
func (c *Catalog) ListDirectory(rel string) []Entry {
	if err := c.EnsureRoot(); err != nil {
		c.log.WithError(err).Debug("cannot create root")
	}

	children := c.readEntries(rel)
	sort.SliceStable(children, func(i, j int) bool {
		if children[i].Kind != children[j].Kind {
			return children[i].Kind == KindDirectory
		}
		return children[i].Name < children[j].Name
	})

	listing := make([]Entry, 0, len(children)+2)
	if rel != "" {
		listing = append(listing, ParentEntry())
	}
	listing = append(listing, children...)
	listing = append(listing, ExitEntry())
	return listing
}

// readEntries reads one directory and returns its visible directories and
// scripts in encounter order.
func (c *Catalog) readEntries(rel string) []Entry {
	dirPath := filepath.Join(c.root, rel)
	dirEntries, err := os.ReadDir(dirPath)
	if err != nil {
		c.log.WithError(err).WithField("path", dirPath).Debug("cannot read directory")
		return nil
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		rawName := e.Name()
		fullPath := filepath.Join(dirPath, rawName)
		if isHiddenEntry(fullPath, rawName) {
			continue
		}

		isSymlink := e.Type()&os.ModeSymlink != 0
		isDir := e.IsDir()
		isRegular := e.Type().IsRegular()

		// For symlinks, classify by target
		if isSymlink {
			targetInfo, err := os.Stat(fullPath)
			if err != nil {
				continue
			}
			isDir = targetInfo.IsDir()
			isRegular = targetInfo.Mode().IsRegular()
		}

		name := norm.NFC.String(rawName)
		var kind Kind
		switch {
		case isDir:
			kind = KindDirectory
		case isRegular && c.scripts.Match(name):
			kind = KindScript
		default:
			continue
		}

		// RelativePath keeps the on-disk spelling so AbsPath and ListDirectory
		// reach the same file; display and matching normalise it themselves.
		entries = append(entries, Entry{
			Name:         name,
			RelativePath: filepath.Join(rel, rawName),
			Kind:         kind,
			IsSymlink:    isSymlink,
		})
	}
	return entries
}
