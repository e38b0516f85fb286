package docindex

import (
	"fmt"
	"sort"

	"github.com/morozRed/mdlinkcheck/internal/anchor"
)

// Issue captures a non-fatal problem met while building the index or scanning a page.
type Issue struct {
	File     string `json:"file"`
	Severity string `json:"severity"` // warning | error
	Message  string `json:"message"`
}

// FilesystemError reports that the documentation tree could not be enumerated at all.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("cannot list documentation tree %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// Index is the read-only catalog of documents for one run.
type Index struct {
	root      string
	documents []*Document
	byID      map[string][]*Document
	files     []string
	issues    []Issue
	flatten   *anchor.Flattener
}

func newIndex(root string, flatten *anchor.Flattener) *Index {
	return &Index{
		root:    root,
		byID:    make(map[string][]*Document),
		flatten: flatten,
	}
}

// NewIndex builds an index directly from documents. Used when pages come from
// somewhere other than a directory walk.
func NewIndex(flatten *anchor.Flattener, documents ...*Document) *Index {
	idx := newIndex("", flatten)
	for _, doc := range documents {
		idx.add(doc)
	}
	return idx
}

func (idx *Index) add(doc *Document) {
	idx.documents = append(idx.documents, doc)
	key := indexKey(doc.Category, doc.Slug)
	idx.byID[key] = append(idx.byID[key], doc)
}

func indexKey(category, slug string) string {
	return category + "\x00" + slug
}

// Exists reports whether some document has exactly this category and slug and, when an
// anchor is given, a heading equal to the flattened anchor.
func (idx *Index) Exists(category, slug, anchorID string) bool {
	if anchorID != "" {
		anchorID = idx.flatten.Flatten(anchorID)
	}
	for _, doc := range idx.byID[indexKey(category, slug)] {
		if doc.Matches(category, slug, anchorID) {
			return true
		}
	}
	return false
}

// Lookup returns the documents declared with this category and slug.
func (idx *Index) Lookup(category, slug string) []*Document {
	matches := make([]*Document, 0)
	for _, doc := range idx.byID[indexKey(category, slug)] {
		if doc.HasCategory && doc.HasSlug {
			matches = append(matches, doc)
		}
	}
	return matches
}

// Documents returns the indexed documents sorted by category, slug and path.
func (idx *Index) Documents() []*Document {
	out := append([]*Document(nil), idx.documents...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		if out[i].Slug != out[j].Slug {
			return out[i].Slug < out[j].Slug
		}
		return out[i].Path < out[j].Path
	})
	return out
}

func (idx *Index) Len() int {
	return len(idx.documents)
}

// Root is the directory the index was built from.
func (idx *Index) Root() string {
	return idx.root
}

// Files lists the matching files found by the walk, in walk order.
func (idx *Index) Files() []string {
	return append([]string(nil), idx.files...)
}

// Issues lists the non-fatal problems met during the build.
func (idx *Index) Issues() []Issue {
	return append([]Issue(nil), idx.issues...)
}

// Flattener returns the flattener used for headings.
func (idx *Index) Flattener() *anchor.Flattener {
	return idx.flatten
}
