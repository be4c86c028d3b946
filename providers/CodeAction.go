package providers

import (
	"github.com/mitchellh/mapstructure"
	. "github.com/taglink/taglink-lsp/i18n"
	. "github.com/taglink/taglink-lsp/state"
	. "github.com/taglink/taglink-lsp/types"
	. "github.com/taglink/taglink-lsp/utils"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func CodeAction(_ *Ctx, params *proto.CodeActionParams) (res any, err error) {
	if len(params.Context.Diagnostics) == 0 {
		return
	}

	uri, err := NormalizeUri(params.TextDocument.URI)

	if err != nil {
		return
	}

	doc, err := TempDoc(uri)

	if err != nil {
		return
	}

	list := make([]proto.CodeAction, 0)
	QuickFix := P(proto.CodeActionKindQuickFix)

	for _, d := range params.Context.Diagnostics {
		if d.Data == nil {
			continue
		}

		var data DiagnosticData
		err = mapstructure.Decode(d.Data, &data)

		if err != nil {
			return
		}

		switch data.Type {
		case MismatchedTagError:
			node, err := doc.GetClosestNodeByPosition(&d.Range.Start)

			if err != nil {
				return nil, err
			}

			// the diagnostic may be stale after edits
			if !IsErroneousEndTagName(node) {
				continue
			}

			list = append(list, proto.CodeAction{
				Title:       L("change_closing_tag", data.Name),
				Kind:        QuickFix,
				Diagnostics: []proto.Diagnostic{d},
				Edit: &proto.WorkspaceEdit{
					Changes: map[proto.DocumentUri][]proto.TextEdit{
						uri: {
							{
								Range:   d.Range,
								NewText: data.Name,
							},
						},
					},
				},
			})

		case UnclosedTagWarning:
			node, err := doc.GetClosestNodeByPosition(&d.Range.Start)

			if err != nil {
				return nil, err
			}

			element := GetClosestNode(node, "element")

			if element == nil {
				continue
			}

			pos, err := doc.PointToPosition(element.EndPoint())

			if err != nil {
				return nil, err
			}

			list = append(list, proto.CodeAction{
				Title:       L("add_closing_tag", data.Name),
				Kind:        QuickFix,
				Diagnostics: []proto.Diagnostic{d},
				Edit: &proto.WorkspaceEdit{
					Changes: map[proto.DocumentUri][]proto.TextEdit{
						uri: {
							{
								Range: proto.Range{
									Start: *pos,
									End:   *pos,
								},
								NewText: "</" + data.Name + ">",
							},
						},
					},
				},
			})
		}
	}

	res = list

	return
}
