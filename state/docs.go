package state

import (
	"iter"
	"os"
	"sync"

	"github.com/redexp/textdocument"
	. "github.com/taglink/taglink-lsp/types"
	. "github.com/taglink/taglink-lsp/utils"
)

type Doc struct {
	*TextDocument

	Uri  Uri
	Open bool
}

type Docs map[Uri]*Doc

var documents sync.Map

func CreateDoc(uri Uri, text string) (doc *Doc, err error) {
	doc = &Doc{
		TextDocument: textdocument.NewTextDocument(text),
		Uri:          uri,
	}

	err = doc.SetParser(CreateParser())

	return
}

// CreateTempDoc parses with a pooled parser and does not keep one attached,
// for documents that are read once and never change.
func CreateTempDoc(uri Uri, text string) (doc *Doc, err error) {
	tree, err := GetParser().Parse([]byte(text))

	if err != nil {
		return
	}

	doc = &Doc{
		TextDocument: textdocument.NewTextDocument(text),
		Uri:          uri,
	}

	doc.Tree = tree

	return
}

func GetDoc(uri Uri) *Doc {
	value, ok := documents.Load(uri)

	if !ok {
		return nil
	}

	return value.(*Doc)
}

func OpenDoc(uri Uri) (doc *Doc, err error) {
	uri, err = NormalizeUri(uri)

	if err != nil {
		return
	}

	doc = GetDoc(uri)

	if doc != nil {
		return
	}

	text, err := GetText(uri)

	if err != nil {
		return
	}

	return OpenDocText(uri, text)
}

func OpenDocText(uri Uri, text string) (doc *Doc, err error) {
	doc, err = CreateDoc(uri, text)

	if err != nil {
		return
	}

	doc.Open = true

	documents.Store(uri, doc)

	return
}

func GetOpenDocsIter() iter.Seq2[Uri, *Doc] {
	return func(yield func(Uri, *Doc) bool) {
		documents.Range(func(key, value any) bool {
			return yield(key.(Uri), value.(*Doc))
		})
	}
}

func CloseDoc(uri Uri) {
	doc := GetDoc(uri)

	if doc == nil {
		return
	}

	documents.Delete(uri)
}

func RemoveDoc(uri Uri) error {
	uri, err := NormalizeUri(uri)

	if err != nil {
		return err
	}

	CloseDoc(uri)

	return nil
}

func TempDoc(uri Uri) (doc *Doc, err error) {
	uri, err = NormalizeUri(uri)

	if err != nil {
		return
	}

	doc = GetDoc(uri)

	if doc != nil {
		return
	}

	text, err := GetText(uri)

	if err != nil {
		return
	}

	return CreateTempDoc(uri, text)
}

func UriFileExist(uri Uri) bool {
	path, err := UriToPath(uri)

	if err != nil {
		return false
	}

	info, err := os.Stat(path)

	if err != nil {
		return false
	}

	return !info.IsDir()
}

func ToString(node *Node, doc *Doc) string {
	if node == nil {
		return ""
	}

	return node.Content([]byte(doc.Text))
}

func GetText(uri Uri) (text string, err error) {
	uri, err = NormalizeUri(uri)

	if err != nil {
		return
	}

	path, err := UriToPath(uri)

	if err != nil {
		return
	}

	bytes, err := os.ReadFile(path)

	if err != nil {
		return
	}

	text = string(bytes)

	return
}

func (docs Docs) Get(uri Uri) (doc *Doc, err error) {
	doc = docs[uri]

	if doc != nil {
		return
	}

	doc, err = TempDoc(uri)

	if err != nil {
		return
	}

	docs[uri] = doc

	return
}
