package ignore

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// File is the per-tree ignore file name, looked up at the documentation root.
const File = ".mdlinkcheckignore"

type rule struct {
	pattern  string
	negated  bool
	dirOnly  bool
	anchored bool
}

// Matcher applies gitignore-like rules with "last rule wins" behavior.
type Matcher struct {
	rules []rule
}

// DefaultRules are always applied before user rules and can be re-included with '!'.
// Only repository metadata is skipped; vendored or generated pages are visited
// unless an ignore file says otherwise.
func DefaultRules() []string {
	return []string{".git/"}
}

// NewMatcher builds a matcher from user-provided ignore lines.
func NewMatcher(userRules []string) *Matcher {
	defaults := DefaultRules()
	all := make([]string, 0, len(defaults)+len(userRules))
	all = append(all, defaults...)
	all = append(all, userRules...)

	rules := make([]rule, 0, len(all))
	for _, line := range all {
		if parsed, ok := parseRule(line); ok {
			rules = append(rules, parsed)
		}
	}
	return &Matcher{rules: rules}
}

// ShouldIgnore returns true when relPath should be skipped by the walk.
func (m *Matcher) ShouldIgnore(relPath string, isDir bool) bool {
	if m == nil {
		return false
	}
	relPath = normalizePath(relPath)
	if relPath == "" || relPath == "." {
		return false
	}
	ignored := false
	for _, r := range m.rules {
		if r.matches(relPath, isDir) {
			ignored = !r.negated
		}
	}
	return ignored
}

func parseRule(line string) (rule, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return rule{}, false
	}

	var parsed rule
	if strings.HasPrefix(line, "!") {
		parsed.negated = true
		line = strings.TrimPrefix(line, "!")
	}
	if strings.HasPrefix(line, "/") {
		parsed.anchored = true
		line = strings.TrimPrefix(line, "/")
	}
	if strings.HasSuffix(line, "/") {
		parsed.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}

	line = normalizePath(line)
	if line == "" || !doublestar.ValidatePattern(line) {
		return rule{}, false
	}
	parsed.pattern = line
	return parsed, true
}

func (r rule) matches(relPath string, isDir bool) bool {
	if r.dirOnly {
		// A directory rule covers the directory itself and everything below it.
		for _, dir := range ancestors(relPath, isDir) {
			if r.matchPath(dir) {
				return true
			}
		}
		return false
	}

	if r.matchPath(relPath) {
		return true
	}
	// Patterns also exclude the contents of a matching directory.
	for _, dir := range ancestors(relPath, false) {
		if r.matchPath(dir) {
			return true
		}
	}
	return false
}

func (r rule) matchPath(relPath string) bool {
	if r.anchored || strings.Contains(r.pattern, "/") {
		if match(r.pattern, relPath) {
			return true
		}
		if r.anchored {
			return false
		}
		// Unanchored multi-segment patterns may start at any depth.
		return match("**/"+r.pattern, relPath)
	}
	return match(r.pattern, path.Base(relPath))
}

// ancestors lists the directory prefixes of relPath, shortest first,
// including relPath itself when it is a directory.
func ancestors(relPath string, includeSelf bool) []string {
	parts := strings.Split(relPath, "/")
	limit := len(parts) - 1
	if includeSelf {
		limit = len(parts)
	}
	out := make([]string, 0, limit)
	for i := 1; i <= limit; i++ {
		out = append(out, strings.Join(parts[:i], "/"))
	}
	return out
}

func match(pattern, value string) bool {
	ok, err := doublestar.Match(pattern, value)
	return err == nil && ok
}

func normalizePath(p string) string {
	p = filepath.ToSlash(p)
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "/")
	return p
}
