package providers

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/bep/debounce"
	. "github.com/taglink/taglink-lsp/i18n"
	. "github.com/taglink/taglink-lsp/state"
	. "github.com/taglink/taglink-lsp/types"
	. "github.com/taglink/taglink-lsp/utils"
	proto "github.com/tliron/glsp/protocol_3_16"
)

const (
	MismatchedTagError = iota
	UnclosedTagWarning
)

type DiagnosticData struct {
	Type uint8  `json:"type"`
	Name string `json:"name"`
}

func PublishDiagnostics(ctx *Ctx, uri Uri, doc *Doc) {
	if !supportDiagnostics || ctx == nil {
		return
	}

	if doc == nil {
		var err error
		doc, err = TempDoc(uri)

		if err != nil {
			LogDebug("Diagnostic open doc error: %s", err.Error())
			return
		}
	}

	list := collectDiagnostics(doc)

	ctx.Notify(proto.ServerTextDocumentPublishDiagnostics, proto.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: list,
	})
}

func collectDiagnostics(doc *Doc) []proto.Diagnostic {
	list := make([]proto.Diagnostic, 0)
	tree := doc.Tree.RootNode()

	for node := range GetErrorNodesIter(tree) {
		r, err := doc.NodeToRange(node)

		if err != nil {
			LogDebug("Diagnostic error: %s", err.Error())
			continue
		}

		list = append(list, proto.Diagnostic{
			Severity: P(proto.DiagnosticSeverityError),
			Range:    *r,
			Message:  L("syntax_error"),
		})
	}

	for name := range ErroneousEndTagNamesIter(tree) {
		element := GetClosestNode(name, "element")
		open := ElementStartTagName(element)

		if open == nil {
			continue
		}

		r, err := doc.NodeToRange(name)

		if err != nil {
			LogDebug("Diagnostic error: %s", err.Error())
			continue
		}

		openName := ToString(open, doc)

		list = append(list, proto.Diagnostic{
			Severity: P(proto.DiagnosticSeverityError),
			Range:    *r,
			Message:  L("mismatched_closing_tag", ToString(name, doc), openName),
			Data: DiagnosticData{
				Type: MismatchedTagError,
				Name: openName,
			},
		})
	}

	if !warnUnclosedTags {
		return list
	}

	for element := range UnclosedElementsIter(doc) {
		name := ElementStartTagName(element)

		r, err := doc.NodeToRange(name)

		if err != nil {
			LogDebug("Diagnostic error: %s", err.Error())
			continue
		}

		list = append(list, proto.Diagnostic{
			Severity: P(proto.DiagnosticSeverityWarning),
			Range:    *r,
			Message:  L("unclosed_element", ToString(name, doc)),
			Data: DiagnosticData{
				Type: UnclosedTagWarning,
				Name: ToString(name, doc),
			},
		})
	}

	return list
}

func diagnosticAllDocs(ctx *Ctx) {
	if !supportDiagnostics || root == nil {
		return
	}

	seen := make(UriSet)

	for uri, doc := range GetOpenDocsIter() {
		seen.Set(uri)
		PublishDiagnostics(ctx, uri, doc)
	}

	root.MarkupUris(func(uri Uri) error {
		if !seen.Has(uri) {
			PublishDiagnostics(ctx, uri, nil)
		}

		return nil
	})
}

type DocDebouncer struct {
	Docs     map[Uri]*Ctx
	Debounce func(func())

	// guards Docs, Set and Flush run on different goroutines
	lock sync.Mutex
}

var docDiagnostic = createDocDebouncer()

func createDocDebouncer() *DocDebouncer {
	return &DocDebouncer{
		Docs:     make(map[Uri]*Ctx),
		Debounce: debounce.New(200 * time.Millisecond),
	}
}

func (dd *DocDebouncer) Set(uri Uri, ctx *Ctx) {
	dd.lock.Lock()
	dd.Docs[uri] = ctx
	dd.lock.Unlock()

	dd.Debounce(func() {
		dd.Flush()
	})
}

func (dd *DocDebouncer) Flush() {
	dd.lock.Lock()
	docs := dd.Docs
	dd.Docs = make(map[Uri]*Ctx)
	dd.lock.Unlock()

	for uri, ctx := range docs {
		if !IsMarkupUri(uri) || !UriFileExist(uri) {
			continue
		}

		PublishDiagnostics(ctx, uri, nil)
	}
}

// Pull diagnostics, for clients that request instead of listening.

const TextDocumentDiagnosticMethod = "textDocument/diagnostic"

type DocumentDiagnosticParams struct {
	TextDocument proto.TextDocumentIdentifier `json:"textDocument"`
}

type FullDocumentDiagnosticReport struct {
	Kind  string             `json:"kind"`
	Items []proto.Diagnostic `json:"items"`
}

type TextDocumentDiagnosticFunc func(ctx *Ctx, params *DocumentDiagnosticParams) (any, error)

type DiagnosticHandler struct {
	TextDocumentDiagnostic TextDocumentDiagnosticFunc
}

func NewDiagnosticHandlers() *DiagnosticHandler {
	return &DiagnosticHandler{
		TextDocumentDiagnostic: TextDocumentDiagnostic,
	}
}

func (req *DiagnosticHandler) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	switch ctx.Method {
	case TextDocumentDiagnosticMethod:
		validMethod = true

		var params DocumentDiagnosticParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.TextDocumentDiagnostic(ctx, &params)
		}
	}

	return
}

func TextDocumentDiagnostic(_ *Ctx, params *DocumentDiagnosticParams) (any, error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return nil, err
	}

	doc, err := TempDoc(uri)

	if err != nil {
		return nil, err
	}

	return FullDocumentDiagnosticReport{
		Kind:  "full",
		Items: collectDiagnostics(doc),
	}, nil
}
