package fs

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// DefaultScriptPattern is used when no patterns are configured.
const DefaultScriptPattern = "*.sh"

// ScriptMatcher decides which regular files are launchable scripts.
type ScriptMatcher struct {
	patterns []string
	globs    []glob.Glob
}

// NewScriptMatcher compiles basename patterns such as "*.sh".
func NewScriptMatcher(patterns ...string) (*ScriptMatcher, error) {
	m := &ScriptMatcher{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid script pattern %q: %w", p, err)
		}
		m.patterns = append(m.patterns, p)
		m.globs = append(m.globs, g)
	}
	if len(m.globs) == 0 {
		m.patterns = []string{DefaultScriptPattern}
		m.globs = []glob.Glob{glob.MustCompile(DefaultScriptPattern)}
	}
	return m, nil
}

// Match reports whether name is a launchable script name.
func (m *ScriptMatcher) Match(name string) bool {
	for _, g := range m.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Patterns returns the compiled patterns in configuration order.
func (m *ScriptMatcher) Patterns() []string {
	out := make([]string, len(m.patterns))
	copy(out, m.patterns)
	return out
}
