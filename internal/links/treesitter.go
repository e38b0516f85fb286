package links

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	inline "github.com/smacker/go-tree-sitter/markdown/tree-sitter-markdown-inline"
)

// TreeSitterExtractor parses each line with the tree-sitter Markdown inline
// grammar. It yields the same destinations as MarkdownExtractor but follows the
// tree-sitter reading of edge cases such as unbalanced brackets.
//
// A TreeSitterExtractor is not safe for concurrent use.
type TreeSitterExtractor struct {
	parser *sitter.Parser
}

func NewTreeSitterExtractor() *TreeSitterExtractor {
	p := sitter.NewParser()
	p.SetLanguage(inline.GetLanguage())
	return &TreeSitterExtractor{parser: p}
}

func (e *TreeSitterExtractor) Extract(line string) []string {
	src := []byte(line)
	tree, err := e.parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil
	}
	defer tree.Close()

	var out []string
	collectDestinations(tree.RootNode(), src, &out)
	return out
}

func collectDestinations(node *sitter.Node, src []byte, out *[]string) {
	if node == nil || node.IsNull() {
		return
	}
	switch node.Type() {
	case "link_destination":
		*out = append(*out, unwrapAngle(node.Content(src)))
		return
	case "uri_autolink":
		*out = append(*out, unwrapAngle(node.Content(src)))
		return
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		collectDestinations(node.NamedChild(i), src, out)
	}
}

func unwrapAngle(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, "<") && strings.HasSuffix(value, ">") {
		return value[1 : len(value)-1]
	}
	return value
}
