package providers

import (
	"fmt"
	"strings"

	. "github.com/taglink/taglink-lsp/state"
	. "github.com/taglink/taglink-lsp/types"
	. "github.com/taglink/taglink-lsp/utils"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func Hover(_ *Ctx, params *proto.HoverParams) (h *proto.Hover, err error) {
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

	path := make([]string, 0)

	for el := TagElement(name); el != nil; el = el.Parent() {
		if !IsElement(el) {
			continue
		}

		tag := ElementStartTagName(el)

		if tag == nil {
			continue
		}

		path = append([]string{ToString(tag, doc)}, path...)
	}

	message := fmt.Sprintf("**%s**", ToString(name, doc))

	if len(path) > 1 {
		message += "\n\n`" + strings.Join(path, " > ") + "`"
	}

	r, err := doc.NodeToRange(name)

	if err != nil {
		return
	}

	h = &proto.Hover{
		Range: r,
		Contents: proto.MarkupContent{
			Kind:  proto.MarkupKindMarkdown,
			Value: message,
		},
	}

	return
}
