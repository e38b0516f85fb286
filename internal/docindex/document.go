package docindex

import (
	"fmt"
	"io"
	"strings"
)

// Document is one Markdown page as seen by the index: its front-matter identity and the
// flattened anchors of its headings.
type Document struct {
	Path        string   `json:"path"`
	Category    string   `json:"category"`
	Slug        string   `json:"slug"`
	HasCategory bool     `json:"has_category"`
	HasSlug     bool     `json:"has_slug"`
	Headings    []string `json:"headings,omitempty"`
}

// Matches reports whether the document is the target of a (category, slug, anchor) triple.
// The anchor must already be flattened; an empty anchor matches any declared document.
// Documents that never declared a category or slug are never linkable.
func (d *Document) Matches(category, slug, anchor string) bool {
	if !d.HasCategory || !d.HasSlug {
		return false
	}
	if d.Category != category || d.Slug != slug {
		return false
	}
	if anchor == "" {
		return true
	}
	for _, heading := range d.Headings {
		if heading == anchor {
			return true
		}
	}
	return false
}

// ID is the "category/slug" identity used in listings.
func (d *Document) ID() string {
	return d.Category + "/" + d.Slug
}

// Display writes the document identity followed by its headings.
func (d *Document) Display(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Document: %s\n\n", d.ID())
	for _, heading := range d.Headings {
		b.WriteString(heading)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
