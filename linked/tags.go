package linked

import (
	"context"

	"github.com/taglink/taglink-lsp/state"
	. "github.com/taglink/taglink-lsp/types"
	proto "github.com/tliron/glsp/protocol_3_16"
)

// TagWordPattern validates edits inside a linked tag name pair.
const TagWordPattern = `[a-zA-Z0-9:\-._]*`

// TagProvider finds the opening and closing tag names of the element under
// the cursor. Text nodes, attributes, self-closing and unclosed elements
// produce no result.
type TagProvider struct {
	// WordPattern overrides TagWordPattern when set.
	WordPattern string
}

func (p *TagProvider) ProvideLinkedEditingRanges(ctx context.Context, doc *state.Doc, pos *Position) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	node, err := doc.GetClosestNodeByPosition(pos)

	if err != nil || node == nil {
		return nil, err
	}

	name := state.ClosestTagName(node)

	if name == nil {
		return nil, nil
	}

	start, end := state.TagPair(name)

	if start == nil || end == nil {
		return nil, nil
	}

	sr, err := doc.NodeToRange(start)

	if err != nil {
		return nil, err
	}

	er, err := doc.NodeToRange(end)

	if err != nil {
		return nil, err
	}

	pattern := p.WordPattern

	if pattern == "" {
		pattern = TagWordPattern
	}

	return &Result{
		Ranges:      []*proto.Range{sr, er},
		WordPattern: &pattern,
	}, nil
}
