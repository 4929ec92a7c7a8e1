package search

import (
	"context"

	"github.com/abelbrown/horizon/internal/api"
	"github.com/abelbrown/horizon/internal/game"
	"github.com/abelbrown/horizon/internal/logging"
)

// Backend is the part of the API the session needs.
type Backend interface {
	Search(ctx context.Context, query string, filters game.FilterSet) ([]game.SearchResult, error)
	Surprise(ctx context.Context) (api.Surprise, error)
	Autocomplete(ctx context.Context, term string) ([]string, error)
}

// Execute performs req against b.
func Execute(ctx context.Context, b Backend, req Request) Reply {
	reply := Reply{Gen: req.Gen, Kind: req.Kind, Query: req.Query}
	switch req.Kind {
	case KindSurprise:
		s, err := b.Surprise(ctx)
		if err != nil {
			reply.Err = err
			return reply
		}
		anchor := s.Anchor
		reply.Anchor = &anchor
		reply.Results = s.Results
	default:
		reply.Results, reply.Err = b.Search(ctx, req.Query, req.Filters)
	}
	return reply
}

// FallbackRequest asks for both fallback blocks of a failed outcome.
type FallbackRequest struct {
	Gen   uint64
	Query string
}

// Fallback returns the fallback request for o, if o failed and is current.
func (s *Session) Fallback(o Outcome) (FallbackRequest, bool) {
	if !o.Failed() || o.Gen != s.gen {
		return FallbackRequest{}, false
	}
	return FallbackRequest{Gen: o.Gen, Query: o.Query}, true
}

// Suggestions is the "did you mean" block.
type Suggestions struct {
	Gen   uint64
	Items []string
	Err   error
}

// Shelf is the "you might like" block.
type Shelf struct {
	Gen   uint64
	Cards []game.Card
	Err   error
}

// FetchSuggestions looks up alternatives for the full failed query. A failed
// surprise has no query and yields an empty block.
func FetchSuggestions(ctx context.Context, b Backend, fr FallbackRequest) Suggestions {
	if fr.Query == "" {
		return Suggestions{Gen: fr.Gen}
	}
	items, err := b.Autocomplete(ctx, fr.Query)
	if err != nil {
		logging.Debug("fallback suggestions failed", "query", fr.Query, "error", err)
	}
	return Suggestions{Gen: fr.Gen, Items: items, Err: err}
}

// FetchShelf fetches a surprise pick and keeps at most n displayable cards.
func FetchShelf(ctx context.Context, b Backend, fr FallbackRequest, n int) Shelf {
	s, err := b.Surprise(ctx)
	if err != nil {
		logging.Debug("fallback shelf failed", "error", err)
		return Shelf{Gen: fr.Gen, Err: err}
	}
	return Shelf{Gen: fr.Gen, Cards: game.Shelf(s.Results, n)}
}
