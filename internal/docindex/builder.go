package docindex

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/morozRed/mdlinkcheck/internal/anchor"
	"github.com/morozRed/mdlinkcheck/internal/ignore"
)

const maxLineBytes = 4 * 1024 * 1024

// FrontMatter names the metadata lines that declare a page's identity.
// Keys include their trailing space, e.g. "categories: ".
type FrontMatter struct {
	CategoryKey string `yaml:"category_key" json:"category_key"`
	SlugKey     string `yaml:"slug_key" json:"slug_key"`
	// Normalize trims the value after the key instead of cutting len(key) bytes
	// from the raw line.
	Normalize bool `yaml:"normalize" json:"normalize"`
}

func DefaultFrontMatter() FrontMatter {
	return FrontMatter{CategoryKey: "categories: ", SlugKey: "slug: "}
}

// IndexValue extracts a value from a line whose trimmed form starts with the trimmed key.
// Without Normalize the value is the raw line minus the first len(key) bytes, so
// indentation or a missing space shifts the cut.
func (fm FrontMatter) IndexValue(line, key string) (string, bool) {
	bare := trimControl(key)
	if bare == "" {
		return "", false
	}
	trimmed := trimControl(line)
	if !strings.HasPrefix(trimmed, bare) {
		return "", false
	}
	if fm.Normalize {
		return trimControl(strings.TrimPrefix(trimmed, bare)), true
	}
	if len(line) < len(key) {
		return "", true
	}
	return line[len(key):], true
}

// trimControl strips leading and trailing ASCII control characters and spaces.
// Unicode spaces such as U+00A0 are kept.
func trimControl(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}

// Options configures Build.
type Options struct {
	Root        string
	Extension   string
	FrontMatter FrontMatter
	Flattener   *anchor.Flattener
	Ignore      *ignore.Matcher
	Logger      *slog.Logger
}

// Build walks the tree under opts.Root and indexes every page with the configured
// extension. Only an unlistable root is fatal; per-file problems become issues.
func Build(ctx context.Context, opts Options) (*Index, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Extension == "" {
		opts.Extension = ".md"
	}
	if opts.FrontMatter.CategoryKey == "" && opts.FrontMatter.SlugKey == "" {
		opts.FrontMatter = DefaultFrontMatter()
	}

	if _, err := os.ReadDir(opts.Root); err != nil {
		return nil, &FilesystemError{Path: opts.Root, Err: err}
	}

	idx := newIndex(opts.Root, opts.Flattener)
	walkErr := filepath.WalkDir(opts.Root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		relPath := path
		if rel, relErr := filepath.Rel(opts.Root, path); relErr == nil {
			relPath = rel
		}
		if err != nil {
			if path == opts.Root {
				return &FilesystemError{Path: opts.Root, Err: err}
			}
			idx.warn(path, fmt.Sprintf("walk error: %v", err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path != opts.Root && opts.Ignore.ShouldIgnore(relPath, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), opts.Extension) {
			return nil
		}
		if !d.Type().IsRegular() {
			info, statErr := os.Stat(path)
			if statErr != nil || !info.Mode().IsRegular() {
				return nil
			}
		}

		idx.files = append(idx.files, path)
		doc, ok := idx.indexFile(path, opts)
		if ok {
			idx.add(doc)
		}
		return nil
	})
	if walkErr != nil {
		var fsErr *FilesystemError
		if errors.As(walkErr, &fsErr) {
			return nil, fsErr
		}
		return nil, walkErr
	}

	logger.Debug("document index built", "root", opts.Root, "files", len(idx.files), "documents", idx.Len())
	return idx, nil
}

func (idx *Index) indexFile(path string, opts Options) (*Document, bool) {
	f, err := os.Open(path)
	if err != nil {
		idx.warn(path, fmt.Sprintf("cannot open file: %v", err))
		return nil, false
	}
	defer f.Close()

	doc, err := ParseDocument(f, path, opts.FrontMatter, opts.Flattener)
	if err != nil {
		idx.warn(path, fmt.Sprintf("read stopped early, keeping partial document: %v", err))
	}
	return doc, true
}

// warn records a per-file problem. Callers decide how issues are shown.
func (idx *Index) warn(path, message string) {
	idx.issues = append(idx.issues, Issue{File: path, Severity: "warning", Message: message})
}

// ParseDocument streams a page and returns whatever was parsed, even when the
// read fails part way through.
func ParseDocument(r io.Reader, path string, fm FrontMatter, flatten *anchor.Flattener) (*Document, error) {
	doc := &Document{Path: path}
	err := ScanLines(r, func(line string) {
		if value, ok := fm.IndexValue(line, fm.SlugKey); ok {
			doc.Slug = value
			doc.HasSlug = true
		}
		if value, ok := fm.IndexValue(line, fm.CategoryKey); ok {
			doc.Category = value
			doc.HasCategory = true
		}
		if anchor.IsHeading(line) {
			doc.Headings = append(doc.Headings, flatten.Flatten(line))
		}
	})
	return doc, err
}

// ScanLines calls fn for each line of r without its line terminator.
func ScanLines(r io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	return scanner.Err()
}
