package providers

import (
	. "github.com/taglink/taglink-lsp/state"
	. "github.com/taglink/taglink-lsp/types"
	. "github.com/taglink/taglink-lsp/utils"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func DocOpen(ctx *Ctx, params *proto.DidOpenTextDocumentParams) (err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	text := params.TextDocument.Text

	if doc := GetDoc(uri); doc != nil && doc.Text == text {
		doc.Open = true
		return
	}

	_, err = OpenDocText(uri, text)

	if err != nil {
		return
	}

	docDiagnostic.Set(uri, ctx)

	return
}

func DocClose(_ *Ctx, params *proto.DidCloseTextDocumentParams) (err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	CloseDoc(uri)

	return
}

func DocChange(ctx *Ctx, params *proto.DidChangeTextDocumentParams) (err error) {
	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	doc, err := OpenDoc(uri)

	if err != nil {
		return
	}

	for _, wrap := range params.ContentChanges {
		switch change := wrap.(type) {
		case proto.TextDocumentContentChangeEventWhole:
			err = doc.SetText(change.Text)

		case proto.TextDocumentContentChangeEvent:
			err = doc.Change(&change)
		}

		if err != nil {
			return
		}
	}

	docDiagnostic.Set(uri, ctx)

	return
}

func DocCreate(ctx *Ctx, params *proto.CreateFilesParams) error {
	for _, file := range params.Files {
		uri, err := NormalizeUri(file.URI)

		if err != nil {
			return err
		}

		docDiagnostic.Set(uri, ctx)
	}

	return nil
}

func DocRename(ctx *Ctx, params *proto.RenameFilesParams) error {
	for _, file := range params.Files {
		err := RemoveDoc(file.OldURI)

		if err != nil {
			return err
		}

		uri, err := NormalizeUri(file.NewURI)

		if err != nil {
			return err
		}

		docDiagnostic.Set(uri, ctx)
	}

	return nil
}

func DocDelete(_ *Ctx, params *proto.DeleteFilesParams) error {
	for _, file := range params.Files {
		err := RemoveDoc(file.URI)

		if err != nil {
			return err
		}
	}

	return nil
}
