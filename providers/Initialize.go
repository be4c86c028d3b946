package providers

import (
	"fmt"
	"strings"

	"github.com/taglink/taglink-lsp/linked"
	. "github.com/taglink/taglink-lsp/state"
	. "github.com/taglink/taglink-lsp/types"
	. "github.com/taglink/taglink-lsp/utils"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func Initialize(ctx *Ctx, params *proto.InitializeParams) (any, error) {
	root = CreateRoot(Debugf)

	linkedAdapter = linked.CreateAdapter(linked.ResolverFunc(TempDoc), tagProvider)

	options, err := GetClientConfiguration(params.InitializationOptions)

	if err == nil {
		err = applyClientConfiguration(&options)

		if err != nil {
			return nil, err
		}
	}

	syncType := proto.TextDocumentSyncKindIncremental
	fileFilters := proto.FileOperationRegistrationOptions{
		Filters: []proto.FileOperationFilter{
			{
				Scheme: P("file"),
				Pattern: proto.FileOperationPattern{
					Glob: fmt.Sprintf("**/*.{%s}", strings.Join(AllExt, ",")),
				},
			},
		},
	}

	res := &proto.InitializeResult{
		ServerInfo: &proto.InitializeResultServerInfo{
			Name: ServerName,
		},
		Capabilities: proto.ServerCapabilities{
			TextDocumentSync: proto.TextDocumentSyncOptions{
				OpenClose: &proto.True,
				Change:    &syncType,
			},
			LinkedEditingRangeProvider: true,
			DocumentHighlightProvider:  true,
			FoldingRangeProvider:       true,
			DocumentSymbolProvider:     true,
			HoverProvider:              true,
			RenameProvider: proto.RenameOptions{
				PrepareProvider: &proto.True,
			},
			CodeActionProvider: proto.CodeActionOptions{
				CodeActionKinds: []proto.CodeActionKind{
					proto.CodeActionKindQuickFix,
				},
			},
			Workspace: &proto.ServerCapabilitiesWorkspace{
				WorkspaceFolders: &proto.WorkspaceFoldersServerCapabilities{
					Supported: &proto.True,
				},
				FileOperations: &proto.ServerCapabilitiesWorkspaceFileOperations{
					DidCreate: &fileFilters,
					DidRename: &fileFilters,
					DidDelete: &fileFilters,
				},
			},
		},
	}

	if params.WorkspaceFolders != nil {
		folders := make([]string, len(params.WorkspaceFolders))

		for i, folder := range params.WorkspaceFolders {
			folders[i] = folder.URI
		}

		err = root.SetFolders(folders)

		if err != nil {
			return nil, err
		}
	}

	supportDiagnostics = params.Capabilities.TextDocument != nil && params.Capabilities.TextDocument.PublishDiagnostics != nil

	return res, nil
}

func Initialized(ctx *Ctx, params *proto.InitializedParams) error {
	diagnosticAllDocs(ctx)

	return nil
}

func SetTrace(ctx *Ctx, params *proto.SetTraceParams) error {
	return nil
}

func CancelRequest(ctx *Ctx, params *proto.CancelParams) error {
	return nil
}
