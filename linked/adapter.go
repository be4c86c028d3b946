package linked

import (
	"context"

	"github.com/taglink/taglink-lsp/state"
	. "github.com/taglink/taglink-lsp/types"
	proto "github.com/tliron/glsp/protocol_3_16"
)

// Result is a raw provider result before normalization. Ranges is expected to
// be []*proto.Range; any other value means "no result" rather than an error,
// a provider bug is indistinguishable from "not applicable here".
type Result struct {
	Ranges      any     `json:"ranges"`
	WordPattern *string `json:"wordPattern,omitempty"`
}

type DocumentResolver interface {
	TempDoc(uri Uri) (*state.Doc, error)
}

type ResolverFunc func(uri Uri) (*state.Doc, error)

func (f ResolverFunc) TempDoc(uri Uri) (*state.Doc, error) {
	return f(uri)
}

type RangeProvider interface {
	ProvideLinkedEditingRanges(ctx context.Context, doc *state.Doc, pos *Position) (*Result, error)
}

// Adapter bridges one linked editing range request to a registered provider.
// It holds no state beyond the two collaborators and is safe for concurrent
// use, every call is independent.
type Adapter struct {
	docs     DocumentResolver
	provider RangeProvider
}

func CreateAdapter(docs DocumentResolver, provider RangeProvider) *Adapter {
	return &Adapter{
		docs:     docs,
		provider: provider,
	}
}

// ProvideLinkedEditingRanges resolves uri, delegates to the provider with the
// cancellation context forwarded verbatim and normalizes the result. Provider
// and resolver errors propagate unwrapped. No retry, no caching.
func (a *Adapter) ProvideLinkedEditingRanges(ctx context.Context, uri Uri, pos Position) (*proto.LinkedEditingRanges, error) {
	doc, err := a.docs.TempDoc(uri)

	if err != nil {
		return nil, err
	}

	res, err := a.provider.ProvideLinkedEditingRanges(ctx, doc, &pos)

	if err != nil {
		return nil, err
	}

	return Normalize(res), nil
}

// Normalize converts a raw provider result into the wire shape. A nil result
// or a Ranges value that is not a ranges slice yields nil, meaning linked
// editing is not supported at this location.
func Normalize(res *Result) *proto.LinkedEditingRanges {
	if res == nil {
		return nil
	}

	ranges, ok := res.Ranges.([]*proto.Range)

	if !ok {
		return nil
	}

	return &proto.LinkedEditingRanges{
		Ranges:      CompactRanges(ranges),
		WordPattern: res.WordPattern,
	}
}

// CompactRanges drops nil entries preserving the order of the rest.
func CompactRanges(ranges []*proto.Range) []proto.Range {
	res := make([]proto.Range, 0, len(ranges))

	for _, r := range ranges {
		if r == nil {
			continue
		}

		res = append(res, *r)
	}

	return res
}
