// Package search is the search session controller: it turns submissions
// into requests, classifies replies, keeps the last outcome for replay and
// drives the fallback flow when a search fails.
//
// A Session does no I/O itself. Submit and Surprise return a Request that
// the caller runs with Execute (typically inside a tea.Cmd), then hands the
// Reply back to Accept on the UI loop. Every request carries the session
// generation at the time it was issued; replies from older generations are
// dropped.
package search

import (
	"errors"

	"github.com/abelbrown/horizon/internal/api"
	"github.com/abelbrown/horizon/internal/game"
	"github.com/abelbrown/horizon/internal/logging"
)

// ErrNoResults marks a reply in which nothing cleared the noise floor.
var ErrNoResults = errors.New("no results")

// Kind distinguishes explicit searches from surprise picks.
type Kind int

const (
	KindQuery Kind = iota
	KindSurprise
)

func (k Kind) String() string {
	if k == KindSurprise {
		return "surprise"
	}
	return "query"
}

// Request is one search the caller must perform.
type Request struct {
	Gen     uint64
	Kind    Kind
	Query   string
	Filters game.FilterSet
}

// Reply is the raw result of running a Request.
type Reply struct {
	Gen     uint64
	Kind    Kind
	Query   string
	Anchor  *game.Anchor
	Results []game.SearchResult
	Err     error
}

// Outcome is what the result area shows: classified cards or a failure that
// routes to the fallback flow.
type Outcome struct {
	Gen        uint64
	Kind       Kind
	Query      string
	Anchor     *game.Anchor
	Results    []game.SearchResult
	Classified game.Classified
	Err        error
}

// Failed reports whether the outcome should be presented as the fallback.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// History receives successful explicit submissions.
type History interface {
	Add(query string) error
}

// Session is the single live search session. Not safe for concurrent use.
type Session struct {
	history History

	gen     uint64
	pending bool
	last    *Outcome
}

// New creates a session recording successful searches into h, which may be nil.
func New(h History) *Session {
	return &Session{history: h}
}

// Submit validates raw and starts a new generation. Filters are clamped.
func (s *Session) Submit(raw string, filters game.FilterSet) (Request, error) {
	q, err := game.NormalizeQuery(raw)
	if err != nil {
		return Request{}, err
	}
	s.gen++
	s.pending = true
	return Request{Gen: s.gen, Kind: KindQuery, Query: q, Filters: filters.Clamped()}, nil
}

// Surprise starts a new generation for a random pick.
func (s *Session) Surprise() Request {
	s.gen++
	s.pending = true
	return Request{Gen: s.gen, Kind: KindSurprise}
}

// Accept turns a reply into the current outcome. It returns false, and
// changes nothing, when the reply belongs to a superseded generation.
func (s *Session) Accept(r Reply) (Outcome, bool) {
	if r.Gen != s.gen {
		logging.Debug("dropping stale search reply", "gen", r.Gen, "current", s.gen)
		return Outcome{}, false
	}
	s.pending = false

	out := Outcome{
		Gen:     r.Gen,
		Kind:    r.Kind,
		Query:   r.Query,
		Anchor:  r.Anchor,
		Results: r.Results,
		Err:     r.Err,
	}
	if r.Kind == KindSurprise && r.Anchor != nil {
		out.Query = r.Anchor.Name
	}

	if r.Err == nil {
		if r.Kind == KindQuery && s.history != nil {
			if err := s.history.Add(r.Query); err != nil {
				logging.Warn("failed to save search history", "error", err)
			}
		}
		out.Classified = game.Classify(r.Results)
		if out.Classified.Empty() {
			out.Err = ErrNoResults
		}
	} else if api.IsUnavailable(r.Err) {
		logging.Warn("search backend unavailable", "kind", r.Kind, "query", r.Query, "error", r.Err)
	} else {
		logging.Info("search failed", "kind", r.Kind, "query", r.Query, "error", r.Err)
	}

	s.last = &out
	return out, true
}

// Last returns the most recent outcome for re-rendering without network I/O.
func (s *Session) Last() (Outcome, bool) {
	if s.last == nil {
		return Outcome{}, false
	}
	return *s.last, true
}

// Pending reports whether the current generation still awaits its reply.
func (s *Session) Pending() bool {
	return s.pending
}

// Current reports whether gen is still the live generation.
func (s *Session) Current(gen uint64) bool {
	return gen == s.gen
}
