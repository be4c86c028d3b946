package providers

import (
	"context"
	"fmt"

	"github.com/sourcegraph/jsonrpc2"
	. "github.com/taglink/taglink-lsp/types"
	"github.com/tliron/glsp"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func CreateRequestHandler(handlers ...glsp.Handler) *RequestHandler {
	return &RequestHandler{
		Handlers: handlers,
	}
}

func NewProtocolHandlers() *proto.Handler {
	return &proto.Handler{
		Initialize:                    Initialize,
		Initialized:                   Initialized,
		SetTrace:                      SetTrace,
		CancelRequest:                 CancelRequest,
		TextDocumentDidOpen:           DocOpen,
		TextDocumentDidChange:         DocChange,
		TextDocumentDidClose:          DocClose,
		WorkspaceDidCreateFiles:       DocCreate,
		WorkspaceDidRenameFiles:       DocRename,
		WorkspaceDidDeleteFiles:       DocDelete,
		TextDocumentDocumentHighlight: DocumentHighlight,
		TextDocumentPrepareRename:     PrepareRename,
		TextDocumentRename:            Rename,
		TextDocumentFoldingRange:      FoldingRange,
		TextDocumentDocumentSymbol:    DocSymbols,
		TextDocumentHover:             Hover,
		TextDocumentCodeAction:        CodeAction,
	}
}

type RequestHandler struct {
	Handlers []glsp.Handler
}

// ContextHandler is a glsp.Handler that also accepts the request context.
// glsp.Context carries none, so transports that have one pass it here.
type ContextHandler interface {
	HandleWithContext(c context.Context, ctx *Ctx) (res any, validMethod bool, validParams bool, err error)
}

func (req *RequestHandler) RpcHandle(c context.Context, conn *jsonrpc2.Conn, r *jsonrpc2.Request) (res any, err error) {
	if r.Method == "exit" {
		err = conn.Close()
		return nil, err
	}

	ctx := &glsp.Context{
		Method: r.Method,
		Notify: func(method string, params any) {
			_ = conn.Notify(c, method, params)
		},
	}

	if r.Params != nil {
		ctx.Params = *r.Params
	}

	var validMethod bool
	var validParams bool

	res, validMethod, validParams, err = req.HandleWithContext(c, ctx)

	if !validMethod {
		return nil, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeMethodNotFound,
			Message: fmt.Sprintf("Method not found: %s", r.Method),
		}
	}

	if !validParams {
		e := &jsonrpc2.Error{
			Code: jsonrpc2.CodeInvalidParams,
		}

		if err != nil {
			e.Message = err.Error()
		}

		err = e
	}

	return res, err
}

func (req *RequestHandler) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	return req.HandleWithContext(context.Background(), ctx)
}

func (req *RequestHandler) HandleWithContext(c context.Context, ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	for _, h := range req.Handlers {
		if ch, ok := h.(ContextHandler); ok {
			res, validMethod, validParams, err = ch.HandleWithContext(c, ctx)
		} else {
			res, validMethod, validParams, err = h.Handle(ctx)
		}

		if validMethod {
			return
		}
	}

	return
}
