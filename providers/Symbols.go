package providers

import (
	. "github.com/taglink/taglink-lsp/state"
	. "github.com/taglink/taglink-lsp/types"
	. "github.com/taglink/taglink-lsp/utils"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func DocSymbols(_ *Ctx, params *proto.DocumentSymbolParams) (res any, err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	doc, err := TempDoc(uri)

	if err != nil {
		return
	}

	return elementSymbols(doc, doc.Tree.RootNode())
}

func elementSymbols(doc *Doc, node *Node) ([]proto.DocumentSymbol, error) {
	list := make([]proto.DocumentSymbol, 0)
	count := int(node.NamedChildCount())

	for i := 0; i < count; i++ {
		child := node.NamedChild(i)

		if !IsElement(child) {
			continue
		}

		name := ElementStartTagName(child)

		if name == nil {
			continue
		}

		r, err := doc.NodeToRange(child)

		if err != nil {
			return nil, err
		}

		sr, err := doc.NodeToRange(name)

		if err != nil {
			return nil, err
		}

		children, err := elementSymbols(doc, child)

		if err != nil {
			return nil, err
		}

		list = append(list, proto.DocumentSymbol{
			Kind:           proto.SymbolKindField,
			Name:           ToString(name, doc),
			Range:          *r,
			SelectionRange: *sr,
			Children:       children,
		})
	}

	return list, nil
}
