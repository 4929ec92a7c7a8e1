// Package ui provides the Bubble Tea TUI for horizon.
package ui

import (
	"github.com/abelbrown/horizon/internal/api"
	"github.com/abelbrown/horizon/internal/search"
)

// DebounceFired is sent when an autocomplete quiet window ends. It is ignored
// unless Token is still the latest schedule.
type DebounceFired struct {
	Token uint64
	Term  string
}

// SuggestionsLoaded carries an autocomplete reply for request generation Gen.
type SuggestionsLoaded struct {
	Gen   uint64
	Items []string
	Err   error
}

// SearchFinished carries the reply of a search or surprise request.
type SearchFinished struct {
	Reply search.Reply
}

// FallbackSuggestions is the "did you mean" block of a failed search.
type FallbackSuggestions struct {
	search.Suggestions
}

// FallbackShelf is the "you might like" block of a failed search.
type FallbackShelf struct {
	search.Shelf
}

// ChartsDue fires after the chart mount delay for render Seq.
type ChartsDue struct {
	Seq uint64
}

// CommentsLoaded carries a thread fetch for modal session Seq.
type CommentsLoaded struct {
	Seq      uint64
	AppID    int
	Comments []api.Comment
	Err      error
}

// CommentPosted reports the result of posting in modal session Seq.
type CommentPosted struct {
	Seq   uint64
	AppID int
	Err   error
}

// HealthChecked reports backend readiness.
type HealthChecked struct {
	Health api.Health
	Err    error
}

// Shared reports a clipboard write.
type Shared struct {
	Err error
}

// ToastExpired clears toast Seq if it is still showing.
type ToastExpired struct {
	Seq uint64
}

// HealthProbe asks for another readiness check while the backend warms up.
type HealthProbe struct{}
