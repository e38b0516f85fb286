package links

import (
	"strings"

	"github.com/morozRed/mdlinkcheck/internal/docindex"
)

// PageContext is the category and slug declared so far in the page being scanned.
// Links seen before any front matter carry the empty context.
type PageContext struct {
	Category string
	Slug     string
}

// Observe returns the context after reading line. Unlike the index builder this
// matches the key against the untrimmed line, and a category line takes precedence
// over a slug line.
func (c PageContext) Observe(line string, fm docindex.FrontMatter) PageContext {
	if value, ok := pageValue(line, fm.CategoryKey, fm.Normalize); ok {
		c.Category = value
		return c
	}
	if value, ok := pageValue(line, fm.SlugKey, fm.Normalize); ok {
		c.Slug = value
	}
	return c
}

func pageValue(line, key string, normalize bool) (string, bool) {
	if key == "" || !strings.HasPrefix(line, key) {
		return "", false
	}
	value := line[len(key):]
	if normalize {
		value = strings.TrimSpace(value)
	}
	return value, true
}
