package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/horizon/internal/game"
	"github.com/abelbrown/horizon/internal/logging"
)

// autocomplete tracks the suggestion list under the search input.
//
// token identifies the pending debounce schedule; every keystroke replaces it.
// gen identifies the last lookup sent; only its reply may open the list.
type autocomplete struct {
	debounce time.Duration
	token    uint64
	gen      uint64
	items    []string
	active   int
	visible  bool
}

func newAutocomplete(debounce time.Duration) autocomplete {
	return autocomplete{debounce: debounce, active: -1}
}

// onInput reacts to a change of the search text. It returns the debounce
// timer, or nil when the live term is too short to look up.
func (a *autocomplete) onInput(raw string) tea.Cmd {
	a.token++
	if !game.WantsSuggestions(raw) {
		a.hide()
		return nil
	}
	token, term := a.token, game.LiveTerm(raw)
	return tea.Tick(a.debounce, func(time.Time) tea.Msg {
		return DebounceFired{Token: token, Term: term}
	})
}

// fire claims a debounce tick. It returns the generation to send the lookup
// under, or false when the tick was superseded.
func (a *autocomplete) fire(msg DebounceFired) (uint64, bool) {
	if msg.Token != a.token {
		return 0, false
	}
	a.gen++
	return a.gen, true
}

// loaded applies a lookup reply. Replies from older generations are dropped.
func (a *autocomplete) loaded(msg SuggestionsLoaded) bool {
	if msg.Gen != a.gen {
		return false
	}
	if msg.Err != nil {
		logging.Debug("autocomplete failed", "error", msg.Err)
		a.hide()
		return true
	}
	if len(msg.Items) == 0 {
		a.hide()
		return true
	}
	a.items = msg.Items
	a.active = -1
	a.visible = true
	return true
}

// cancel hides the list and invalidates any pending schedule or lookup.
func (a *autocomplete) cancel() {
	a.token++
	a.gen++
	a.hide()
}

func (a *autocomplete) hide() {
	a.visible = false
	a.items = nil
	a.active = -1
}

func (a *autocomplete) next() {
	if !a.visible || len(a.items) == 0 {
		return
	}
	a.active = (a.active + 1) % len(a.items)
}

func (a *autocomplete) prev() {
	if !a.visible || len(a.items) == 0 {
		return
	}
	if a.active <= 0 {
		a.active = len(a.items) - 1
		return
	}
	a.active--
}

func (a autocomplete) hasActive() bool {
	return a.visible && a.active >= 0 && a.active < len(a.items)
}

// commit replaces the last term of raw with the highlighted suggestion.
func (a *autocomplete) commit(raw string) string {
	if !a.hasActive() {
		return raw
	}
	out := game.Commit(raw, a.items[a.active])
	a.cancel()
	return out
}

func (a autocomplete) view(s Styles) string {
	if !a.visible {
		return ""
	}
	lines := make([]string, 0, len(a.items))
	for i, item := range a.items {
		if i == a.active {
			lines = append(lines, s.Active.Render(item))
		} else {
			lines = append(lines, s.Suggestion.Render(item))
		}
	}
	return s.Panel.Render(strings.Join(lines, "\n"))
}
