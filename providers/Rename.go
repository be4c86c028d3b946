package providers

import (
	. "github.com/taglink/taglink-lsp/state"
	. "github.com/taglink/taglink-lsp/types"
	. "github.com/taglink/taglink-lsp/utils"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func PrepareRename(_ *Ctx, params *proto.PrepareRenameParams) (res any, err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	doc, err := TempDoc(uri)

	if err != nil {
		return
	}

	node, err := doc.GetClosestNodeByPosition(&params.Position)

	if err != nil || ClosestTagName(node) == nil {
		return
	}

	res = proto.DefaultBehavior{
		DefaultBehavior: true,
	}

	return
}

func Rename(_ *Ctx, params *proto.RenameParams) (res *proto.WorkspaceEdit, err error) {
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

	edits := make([]proto.TextEdit, 0, 2)

	for _, n := range []*Node{start, end} {
		if n == nil {
			continue
		}

		r, err := doc.NodeToRange(n)

		if err != nil {
			return nil, err
		}

		edits = append(edits, proto.TextEdit{
			Range:   *r,
			NewText: params.NewName,
		})
	}

	if len(edits) == 0 {
		return
	}

	res = &proto.WorkspaceEdit{
		Changes: map[proto.DocumentUri][]proto.TextEdit{
			uri: edits,
		},
	}

	return
}
