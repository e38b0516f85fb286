package links

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Extractor pulls raw link strings out of one line of a page.
type Extractor interface {
	Extract(line string) []string
}

// Syntax selects an Extractor.
type Syntax string

const (
	// SyntaxRegex matches every parenthesized substring, prose included.
	SyntaxRegex Syntax = "regex"
	// SyntaxMarkdown only yields destinations of Markdown links, images and autolinks.
	SyntaxMarkdown Syntax = "markdown"
	// SyntaxTreeSitter yields the same destinations as SyntaxMarkdown using the
	// tree-sitter inline grammar.
	SyntaxTreeSitter Syntax = "treesitter"
)

func ParseSyntax(value string) (Syntax, error) {
	switch Syntax(strings.ToLower(strings.TrimSpace(value))) {
	case "", SyntaxRegex:
		return SyntaxRegex, nil
	case SyntaxMarkdown:
		return SyntaxMarkdown, nil
	case SyntaxTreeSitter, "tree-sitter":
		return SyntaxTreeSitter, nil
	default:
		return "", fmt.Errorf("unsupported syntax %q (supported: regex, markdown, treesitter)", value)
	}
}

// NewExtractor accepts the same spellings as ParseSyntax. Unknown values fall back
// to the regex extractor.
func NewExtractor(syntax Syntax) Extractor {
	if parsed, err := ParseSyntax(string(syntax)); err == nil {
		syntax = parsed
	}
	switch syntax {
	case SyntaxMarkdown:
		return NewMarkdownExtractor()
	case SyntaxTreeSitter:
		return NewTreeSitterExtractor()
	default:
		return RegexExtractor{}
	}
}

var parenPattern = regexp.MustCompile(`\(.*?\)`)

// RegexExtractor yields the interior of every non-greedy "(...)" match.
type RegexExtractor struct{}

func (RegexExtractor) Extract(line string) []string {
	matches := parenPattern.FindAllString(line, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match[1:len(match)-1])
	}
	return out
}

// MarkdownExtractor parses each line with goldmark. Lines are parsed on their own so
// page context stays tied to the line a link appears on.
type MarkdownExtractor struct {
	parser parser.Parser
}

func NewMarkdownExtractor() *MarkdownExtractor {
	return &MarkdownExtractor{parser: goldmark.New().Parser()}
}

func (e *MarkdownExtractor) Extract(line string) []string {
	src := []byte(line)
	doc := e.parser.Parse(text.NewReader(src))

	var out []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			out = append(out, string(node.Destination))
		case *ast.Image:
			out = append(out, string(node.Destination))
		case *ast.AutoLink:
			out = append(out, string(node.URL(src)))
		}
		return ast.WalkContinue, nil
	})
	return out
}
