package treesitter

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/xonecas/bench/internal/highlight"
)

// goKeywords are the anonymous grammar nodes rendered as keywords.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// goNodeStyles maps named node types to Chroma token type names.
var goNodeStyles = map[string]string{
	"comment":                    "Comment",
	"interpreted_string_literal": "LiteralString",
	"raw_string_literal":         "LiteralString",
	"rune_literal":               "LiteralStringChar",
	"int_literal":                "LiteralNumberInteger",
	"float_literal":              "LiteralNumberFloat",
	"imaginary_literal":          "LiteralNumber",
	"true":                       "KeywordConstant",
	"false":                      "KeywordConstant",
	"nil":                        "KeywordConstant",
	"iota":                       "KeywordConstant",
	"type_identifier":            "KeywordType",
	"package_identifier":         "NameNamespace",
}

// Highlighter produces highlight events for Go source from its syntax tree.
// Ranges the tree does not style are emitted as unstyled Source events so
// the output covers the whole text.
type Highlighter struct{}

var errUnsupported = errors.New("treesitter: unsupported language")

func (Highlighter) Highlight(language, text string) ([]highlight.Event, error) {
	if language != "go" {
		return nil, fmt.Errorf("%w: %q", errUnsupported, language)
	}
	src := []byte(text)

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(golang.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("treesitter: parse: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, errors.New("treesitter: empty syntax tree")
	}

	w := &walker{}
	w.walk(root)
	return w.events(len(src)), nil
}

type styledRange struct {
	start, end int
	style      string
}

type walker struct {
	ranges []styledRange
}

func (w *walker) add(n *sitter.Node, style string) {
	start, end := int(n.StartByte()), int(n.EndByte())
	if start >= end {
		return
	}
	w.ranges = append(w.ranges, styledRange{start: start, end: end, style: style})
}

func (w *walker) walk(n *sitter.Node) {
	if style := classify(n); style != "" {
		w.add(n, style)
		return
	}
	var name *sitter.Node
	switch n.Type() {
	case "function_declaration", "method_declaration":
		name = n.ChildByFieldName("name")
	}
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if name != nil && child.StartByte() == name.StartByte() && child.EndByte() == name.EndByte() {
			w.add(child, "NameFunction")
			continue
		}
		w.walk(child)
	}
}

func classify(n *sitter.Node) string {
	if !n.IsNamed() {
		if goKeywords[n.Type()] {
			return "Keyword"
		}
		return ""
	}
	return goNodeStyles[n.Type()]
}

// events flattens the collected ranges, filling gaps with plain ranges.
func (w *walker) events(size int) []highlight.Event {
	var out []highlight.Event
	off := 0
	for _, r := range w.ranges {
		if r.start < off {
			continue
		}
		if r.start > off {
			out = append(out, highlight.Range(off, r.start))
		}
		end := min(r.end, size)
		out = append(out, highlight.Start(r.style), highlight.Range(r.start, end), highlight.End())
		off = end
	}
	if off < size {
		out = append(out, highlight.Range(off, size))
	}
	return out
}
