package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Intent is a user action, decoupled from the key that produced it.
type Intent int

const (
	IntentNone Intent = iota
	IntentQuit
	IntentSubmit
	IntentSurprise
	IntentCancel
	IntentSuggestNext
	IntentSuggestPrev
	IntentCommitSuggestion
	IntentFocusNext
	IntentCardNext
	IntentCardPrev
	IntentToggleFavorite
	IntentShare
	IntentOpenComments
	IntentPickChip
	IntentToggleLanguage
	IntentToggleTheme
	IntentToggleFilters
	IntentToggleHistory
	IntentToggleFavorites
	IntentShowInfo
	IntentDismissInfo
	IntentPanelNext
	IntentPanelPrev
	IntentPanelRun
	IntentPanelRemove
	IntentClearHistory
	IntentConfirm
	IntentDeny
	IntentFilterNextField
	IntentApplyFilters
	IntentPostComment
	IntentAckAlert
)

type keyMap struct {
	Quit      key.Binding
	Submit    key.Binding
	Surprise  key.Binding
	Cancel    key.Binding
	Up        key.Binding
	Down      key.Binding
	Tab       key.Binding
	Favorite  key.Binding
	Share     key.Binding
	Comments  key.Binding
	Chip      key.Binding
	Language  key.Binding
	Theme     key.Binding
	Filters   key.Binding
	History   key.Binding
	Favorites key.Binding
	Info      key.Binding
	Remove    key.Binding
	Clear     key.Binding
	Yes       key.Binding
	No        key.Binding
	Send      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c")),
		Submit:    key.NewBinding(key.WithKeys("enter")),
		Surprise:  key.NewBinding(key.WithKeys("ctrl+r")),
		Cancel:    key.NewBinding(key.WithKeys("esc")),
		Up:        key.NewBinding(key.WithKeys("up", "k")),
		Down:      key.NewBinding(key.WithKeys("down", "j")),
		Tab:       key.NewBinding(key.WithKeys("tab")),
		Favorite:  key.NewBinding(key.WithKeys("f")),
		Share:     key.NewBinding(key.WithKeys("s")),
		Comments:  key.NewBinding(key.WithKeys("c")),
		Chip:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9")),
		Language:  key.NewBinding(key.WithKeys("ctrl+l")),
		Theme:     key.NewBinding(key.WithKeys("ctrl+t")),
		Filters:   key.NewBinding(key.WithKeys("ctrl+f")),
		History:   key.NewBinding(key.WithKeys("ctrl+y")),
		Favorites: key.NewBinding(key.WithKeys("ctrl+b")),
		Info:      key.NewBinding(key.WithKeys("f1")),
		Remove:    key.NewBinding(key.WithKeys("d", "delete")),
		Clear:     key.NewBinding(key.WithKeys("x")),
		Yes:       key.NewBinding(key.WithKeys("y", "e", "enter")),
		No:        key.NewBinding(key.WithKeys("n", "h", "esc")),
		Send:      key.NewBinding(key.WithKeys("ctrl+s")),
	}
}

// intentFor resolves a key press in the current mode. The order of checks is
// the precedence of overlays: alert, comments, info, panels, then focus.
func (a App) intentFor(msg tea.KeyMsg) Intent {
	k := a.keys
	if key.Matches(msg, k.Quit) {
		return IntentQuit
	}

	switch {
	case a.comments.alert != "":
		if key.Matches(msg, k.Submit, k.Cancel) {
			return IntentAckAlert
		}
		return IntentNone

	case a.comments.open:
		switch {
		case key.Matches(msg, k.Cancel):
			return IntentCancel
		case key.Matches(msg, k.Send):
			return IntentPostComment
		}
		return IntentNone

	case a.infoVisible:
		if key.Matches(msg, k.Submit, k.Cancel) {
			return IntentDismissInfo
		}
		return IntentNone

	case a.confirmClear:
		switch {
		case key.Matches(msg, k.Yes):
			return IntentConfirm
		case key.Matches(msg, k.No):
			return IntentDeny
		}
		return IntentNone
	}

	// Global toggles work from every remaining mode.
	switch {
	case key.Matches(msg, k.Surprise):
		return IntentSurprise
	case key.Matches(msg, k.Language):
		return IntentToggleLanguage
	case key.Matches(msg, k.Theme):
		return IntentToggleTheme
	case key.Matches(msg, k.Filters):
		return IntentToggleFilters
	case key.Matches(msg, k.History):
		return IntentToggleHistory
	case key.Matches(msg, k.Favorites):
		return IntentToggleFavorites
	case key.Matches(msg, k.Info):
		return IntentShowInfo
	}

	switch a.panel {
	case panelFilters:
		switch {
		case key.Matches(msg, k.Cancel):
			return IntentCancel
		case key.Matches(msg, k.Tab):
			return IntentFilterNextField
		case key.Matches(msg, k.Submit):
			return IntentApplyFilters
		}
		return IntentNone

	case panelHistory, panelFavorites:
		switch {
		case key.Matches(msg, k.Cancel):
			return IntentCancel
		case key.Matches(msg, k.Up):
			return IntentPanelPrev
		case key.Matches(msg, k.Down):
			return IntentPanelNext
		case key.Matches(msg, k.Remove):
			return IntentPanelRemove
		case a.panel == panelHistory && key.Matches(msg, k.Submit):
			return IntentPanelRun
		case a.panel == panelHistory && key.Matches(msg, k.Clear):
			return IntentClearHistory
		case a.panel == panelFavorites && key.Matches(msg, k.Share):
			return IntentShare
		}
		return IntentNone
	}

	if a.focus == focusResults {
		switch {
		case key.Matches(msg, k.Tab, k.Cancel):
			return IntentFocusNext
		case key.Matches(msg, k.Down):
			return IntentCardNext
		case key.Matches(msg, k.Up):
			return IntentCardPrev
		case key.Matches(msg, k.Favorite):
			return IntentToggleFavorite
		case key.Matches(msg, k.Share):
			return IntentShare
		case key.Matches(msg, k.Comments):
			return IntentOpenComments
		case key.Matches(msg, k.Chip):
			return IntentPickChip
		}
		return IntentNone
	}

	// Search input.
	switch {
	case key.Matches(msg, k.Tab):
		return IntentFocusNext
	case key.Matches(msg, k.Cancel):
		return IntentCancel
	// Only arrows navigate here; j and k are text.
	case a.auto.visible && msg.Type == tea.KeyDown:
		return IntentSuggestNext
	case a.auto.visible && msg.Type == tea.KeyUp:
		return IntentSuggestPrev
	case key.Matches(msg, k.Submit):
		if a.auto.hasActive() {
			return IntentCommitSuggestion
		}
		return IntentSubmit
	}
	return IntentNone
}
