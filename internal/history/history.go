// Package history keeps the list of explicitly submitted search queries.
package history

import (
	"fmt"
	"strings"
)

// DefaultLimit is the maximum number of remembered queries.
const DefaultLimit = 10

// Store persists the list.
type Store interface {
	History() []string
	SaveHistory([]string) error
	ClearHistory() error
}

// Manager is the in-memory history, written through to Store on every change.
// Not safe for concurrent use; the UI loop is its only caller.
type Manager struct {
	st    Store
	limit int
	items []string
}

// New loads the saved history. limit <= 0 selects DefaultLimit.
func New(st Store, limit int) *Manager {
	if limit <= 0 {
		limit = DefaultLimit
	}
	m := &Manager{st: st, limit: limit}
	m.items = m.truncate(st.History())
	return m
}

// Items returns a copy of the history, most recent first.
func (m *Manager) Items() []string {
	return append([]string(nil), m.items...)
}

// Len is the number of entries.
func (m *Manager) Len() int {
	return len(m.items)
}

// Add moves query to the front, dropping any entry equal to it ignoring case,
// and evicts the oldest entries past the limit.
func (m *Manager) Add(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	next := make([]string, 0, len(m.items)+1)
	next = append(next, query)
	for _, q := range m.items {
		if !strings.EqualFold(q, query) {
			next = append(next, q)
		}
	}
	m.items = m.truncate(next)
	return m.save()
}

// Remove deletes entries exactly equal to query.
func (m *Manager) Remove(query string) error {
	next := m.items[:0:0]
	for _, q := range m.items {
		if q != query {
			next = append(next, q)
		}
	}
	m.items = next
	return m.save()
}

// Clear empties the history. The UI must have confirmed with the user.
func (m *Manager) Clear() error {
	m.items = nil
	if err := m.st.ClearHistory(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return nil
}

func (m *Manager) truncate(items []string) []string {
	if len(items) > m.limit {
		return items[:m.limit]
	}
	return items
}

func (m *Manager) save() error {
	if err := m.st.SaveHistory(m.Items()); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return nil
}
