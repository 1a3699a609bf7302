package fs

import (
	"path/filepath"
	"sort"
)

// dirChain is the resolved path of a directory and of its ancestors.
type dirChain struct {
	path   string
	parent *dirChain
}

func (d *dirChain) contains(path string) bool {
	for ; d != nil; d = d.parent {
		if d.path == path {
			return true
		}
	}
	return false
}

// BuildFlat walks the whole tree depth-first and returns every visible
// directory and script. Siblings are ordered by name (case-sensitive, stable)
// and each directory is followed immediately by its own subtree. Unreadable
// subtrees contribute nothing. A directory that resolves to one of its own
// ancestors is listed but not descended into.
func (c *Catalog) BuildFlat() []Entry {
	type walkNode struct {
		entry Entry
		chain *dirChain
	}

	var flat []Entry
	var stack []walkNode

	push := func(rel string, chain *dirChain) {
		children := c.readEntries(rel)
		sortByName(children)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, walkNode{entry: children[i], chain: chain})
		}
	}

	push("", &dirChain{path: c.resolveDir("")})
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		flat = append(flat, node.entry)
		if !node.entry.IsDir() {
			continue
		}

		resolved := c.resolveDir(node.entry.RelativePath)
		if node.chain.contains(resolved) {
			c.log.WithField("path", node.entry.RelativePath).Debug("symlink cycle, not descending")
			continue
		}
		push(node.entry.RelativePath, &dirChain{path: resolved, parent: node.chain})
	}

	c.log.WithField("entries", len(flat)).Debug("catalog built")
	return flat
}

// resolveDir returns the symlink-free absolute path of rel, or the joined
// path when it cannot be resolved.
func (c *Catalog) resolveDir(rel string) string {
	p := c.AbsPath(rel)
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	return p
}

func sortByName(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}
