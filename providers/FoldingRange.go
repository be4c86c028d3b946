package providers

import (
	. "github.com/taglink/taglink-lsp/state"
	. "github.com/taglink/taglink-lsp/types"
	. "github.com/taglink/taglink-lsp/utils"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func FoldingRange(_ *Ctx, params *proto.FoldingRangeParams) (res []proto.FoldingRange, err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	doc, err := TempDoc(uri)

	if err != nil {
		return
	}

	q, err := CreateQuery(`
		(element) @element

		(comment) @comment
	`)

	if err != nil {
		return
	}

	defer q.Close()

	res = make([]proto.FoldingRange, 0)

	for index, node := range QueryIter(q, doc.Tree.RootNode()) {
		start := node.StartPoint().Row
		end := node.EndPoint().Row

		if start == end {
			continue
		}

		kind := "region"

		if index == 1 {
			kind = "comment"
		}

		res = append(res, proto.FoldingRange{
			StartLine: start,
			EndLine:   end,
			Kind:      P(kind),
		})
	}

	return
}
