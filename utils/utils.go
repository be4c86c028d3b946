package utils

import (
	"context"
	"iter"
	urlParser "net/url"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/html"
	. "github.com/taglink/taglink-lsp/types"
)

type ParserWorker struct {
	parser *sitter.Parser
	busy   bool
}

var parsersPool = make([]*ParserWorker, 0)
var parsersLock sync.Mutex
var lang = html.GetLanguage()

func GetLanguage() *sitter.Language {
	return lang
}

func CreateParser() *sitter.Parser {
	p := sitter.NewParser()
	p.SetLanguage(lang)
	return p
}

func GetParser() *ParserWorker {
	parsersLock.Lock()
	defer parsersLock.Unlock()

	for _, p := range parsersPool {
		if !p.busy {
			p.busy = true
			return p
		}
	}

	parser := &ParserWorker{
		parser: CreateParser(),
		busy:   true,
	}

	parsersPool = append(parsersPool, parser)

	return parser
}

func (p *ParserWorker) Parse(text []byte) (tree *sitter.Tree, err error) {
	tree, err = p.parser.ParseCtx(context.Background(), nil, text)

	parsersLock.Lock()
	defer parsersLock.Unlock()

	if len(parsersPool) > 1 {
		p.parser.Close()
		index := slices.Index(parsersPool, p)
		parsersPool = slices.Delete(parsersPool, index, index+1)
	}

	p.busy = false

	return
}

func UriToPath(uri Uri) (string, error) {
	if strings.HasPrefix(uri, "/") {
		return uri, nil
	}

	url, err := urlParser.Parse(uri)

	if err != nil {
		return "", err
	}

	return url.Path, nil
}

func ToUri(path string) Uri {
	if strings.HasPrefix(path, "/") {
		path = "file://" + path
	}

	return path
}

func NormalizeUri(uri Uri) (Uri, error) {
	path, err := UriToPath(uri)

	if err != nil {
		return "", err
	}

	return ToUri(path), nil
}

func Ext(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

func GetClosestNode(node *Node, parentType string) *Node {
	for node != nil && node.Type() != parentType {
		node = node.Parent()
	}

	return node
}

func GetChildByType(node *Node, childType string) *Node {
	if node == nil {
		return nil
	}

	count := int(node.NamedChildCount())

	for i := 0; i < count; i++ {
		child := node.NamedChild(i)

		if child.Type() == childType {
			return child
		}
	}

	return nil
}

func IsTagName(node *Node) bool {
	return node != nil && node.Type() == "tag_name"
}

func IsErroneousEndTagName(node *Node) bool {
	return node != nil && node.Type() == "erroneous_end_tag_name"
}

func IsStartTag(node *Node) bool {
	return node != nil && node.Type() == "start_tag"
}

func IsEndTag(node *Node) bool {
	return node != nil && node.Type() == "end_tag"
}

func IsSelfClosingTag(node *Node) bool {
	return node != nil && node.Type() == "self_closing_tag"
}

func IsElement(node *Node) bool {
	if node == nil {
		return false
	}

	switch node.Type() {
	case "element", "script_element", "style_element":
		return true
	}

	return false
}

func P[T ~string | ~int32](src T) *T {
	return &src
}

func CreateQuery(pattern string) (*sitter.Query, error) {
	return sitter.NewQuery([]byte(pattern), lang)
}

func CreateCursor(q *sitter.Query, node *Node) *sitter.QueryCursor {
	c := sitter.NewQueryCursor()
	c.Exec(q, node)
	return c
}

func QueryIter(q *sitter.Query, node *Node) iter.Seq2[uint32, *Node] {
	c := CreateCursor(q, node)

	return func(yield func(uint32, *Node) bool) {
		defer c.Close()

		for {
			match, ok := c.NextMatch()

			if !ok {
				break
			}

			for _, cap := range match.Captures {
				if !yield(cap.Index, cap.Node) {
					return
				}
			}
		}
	}
}

func GetErrorNodesIter(root *Node) iter.Seq[*Node] {
	return func(yield func(*sitter.Node) bool) {
		if !root.HasError() {
			return
		}

		c := sitter.NewTreeCursor(root)
		defer c.Close()

		active := true
		var traverse func()

		traverse = func() {
			if !active {
				return
			}

			node := c.CurrentNode()

			if node.IsError() {
				active = yield(node)
				return
			}

			if !node.HasError() {
				return
			}

			if !c.GoToFirstChild() {
				return
			}

			for {
				traverse()

				if !active {
					return
				}

				if !c.GoToNextSibling() {
					break
				}
			}

			c.GoToParent()
		}

		traverse()
	}
}
