package providers

import (
	. "github.com/taglink/taglink-lsp/state"
	. "github.com/taglink/taglink-lsp/types"
	. "github.com/taglink/taglink-lsp/utils"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func DocumentHighlight(_ *Ctx, params *proto.DocumentHighlightParams) (res []proto.DocumentHighlight, err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	doc, err := TempDoc(uri)

	if err != nil {
		return
	}

	node, err := doc.GetClosestNodeByPosition(&params.Position)

	if err != nil || node == nil {
		return
	}

	name := ClosestTagName(node)

	if name == nil {
		return
	}

	start, end := TagPair(name)

	res = make([]proto.DocumentHighlight, 0, 2)
	kind := P(proto.DocumentHighlightKindRead)

	for _, n := range []*Node{start, end} {
		if n == nil {
			continue
		}

		r, err := doc.NodeToRange(n)

		if err != nil {
			return nil, err
		}

		res = append(res, proto.DocumentHighlight{
			Range: *r,
			Kind:  kind,
		})
	}

	return
}
