package game

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// TermSeparator splits a multi-game query into terms.
const TermSeparator = "+"

// MinTermLength is the shortest live term that triggers autocomplete.
const MinTermLength = 2

// ErrEmptyQuery is returned when a submitted query is blank after trimming.
var ErrEmptyQuery = errors.New("empty query")

// Terms splits raw on the separator and trims each term. Empty terms are kept
// so that positions stay stable for Commit.
func Terms(raw string) []string {
	parts := strings.Split(raw, TermSeparator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// LiveTerm is the trimmed text after the last separator, the fragment the
// user is currently typing.
func LiveTerm(raw string) string {
	if i := strings.LastIndex(raw, TermSeparator); i >= 0 {
		raw = raw[i+len(TermSeparator):]
	}
	return strings.TrimSpace(raw)
}

// WantsSuggestions reports whether the live term is long enough to look up.
func WantsSuggestions(raw string) bool {
	return utf8.RuneCountInString(LiveTerm(raw)) >= MinTermLength
}

// Commit replaces only the last term of raw with value and re-joins the terms
// with " + ".
func Commit(raw, value string) string {
	parts := Terms(raw)
	parts[len(parts)-1] = strings.TrimSpace(value)
	return strings.TrimSpace(strings.Join(parts, " "+TermSeparator+" "))
}

// NormalizeQuery trims raw and rejects blank input.
func NormalizeQuery(raw string) (string, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", ErrEmptyQuery
	}
	return q, nil
}
