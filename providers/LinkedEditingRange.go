package providers

import (
	"context"
	"encoding/json"

	. "github.com/taglink/taglink-lsp/types"
	. "github.com/taglink/taglink-lsp/utils"
	proto "github.com/tliron/glsp/protocol_3_16"
)

const TextDocumentLinkedEditingRangeMethod = "textDocument/linkedEditingRange"

func LinkedEditingRange(c context.Context, _ *Ctx, params *proto.LinkedEditingRangeParams) (res *proto.LinkedEditingRanges, err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	return linkedAdapter.ProvideLinkedEditingRanges(c, uri, params.Position)
}

type LinkedEditingRangeFunc func(c context.Context, ctx *Ctx, params *proto.LinkedEditingRangeParams) (*proto.LinkedEditingRanges, error)

// LinkedEditingHandlers dispatches linkedEditingRange outside the protocol
// handler so the request context reaches the adapter.
type LinkedEditingHandlers struct {
	LinkedEditingRange LinkedEditingRangeFunc
}

func NewLinkedEditingHandlers() *LinkedEditingHandlers {
	return &LinkedEditingHandlers{
		LinkedEditingRange: LinkedEditingRange,
	}
}

func (req *LinkedEditingHandlers) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	return req.HandleWithContext(context.Background(), ctx)
}

func (req *LinkedEditingHandlers) HandleWithContext(c context.Context, ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	switch ctx.Method {
	case TextDocumentLinkedEditingRangeMethod:
		validMethod = true

		var params proto.LinkedEditingRangeParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.LinkedEditingRange(c, ctx, &params)
		}
	}

	return
}
