package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/horizon/internal/game"
	"github.com/abelbrown/horizon/internal/locale"
)

type panelKind int

const (
	panelNone panelKind = iota
	panelFilters
	panelHistory
	panelFavorites
)

const (
	fieldGenres = iota
	fieldExclude
	fieldYearMin
	fieldYearMax
	fieldPlayMin
	fieldPlayMax
	fieldCount
)

// filterPanel holds the advanced filter inputs. Values persist while the
// program runs and are read on every submit.
type filterPanel struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newFilterPanel() filterPanel {
	var f filterPanel
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		if i >= fieldYearMin {
			ti.CharLimit = 5
			ti.Width = 6
			ti.Placeholder = "max"
			if i == fieldYearMin || i == fieldPlayMin {
				ti.Placeholder = "min"
			}
		} else {
			ti.Width = 30
			ti.Placeholder = "Action, RPG"
		}
		f.inputs[i] = ti
	}
	return f
}

// FilterSet reads the current inputs. Unparseable bounds are treated as unset.
func (f filterPanel) FilterSet() game.FilterSet {
	return game.FilterSet{
		GenreInclude: game.ParseList(f.inputs[fieldGenres].Value()),
		GenreExclude: game.ParseList(f.inputs[fieldExclude].Value()),
		YearMin:      game.ParseBound(f.inputs[fieldYearMin].Value()),
		YearMax:      game.ParseBound(f.inputs[fieldYearMax].Value()),
		PlaytimeMin:  game.ParseBound(f.inputs[fieldPlayMin].Value()),
		PlaytimeMax:  game.ParseBound(f.inputs[fieldPlayMax].Value()),
	}
}

func (f *filterPanel) focusField(i int) tea.Cmd {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focus = i % fieldCount
	return f.inputs[f.focus].Focus()
}

func (f *filterPanel) blur() {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
}

func (f *filterPanel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f filterPanel) view(s Styles, lang locale.Lang) string {
	in := f.inputs
	rows := []string{
		s.Section.Render(locale.T(lang, locale.ToggleFilters)),
		fmt.Sprintf("%s %s", s.Meta.Render(locale.T(lang, locale.GenreFilter)), in[fieldGenres].View()),
		fmt.Sprintf("%s %s", s.Meta.Render(locale.T(lang, locale.ExcludeFilter)), in[fieldExclude].View()),
		fmt.Sprintf("%s %s – %s", s.Meta.Render(locale.T(lang, locale.YearRange)), in[fieldYearMin].View(), in[fieldYearMax].View()),
		fmt.Sprintf("%s %s – %s", s.Meta.Render(locale.T(lang, locale.PlaytimeRange)), in[fieldPlayMin].View(), in[fieldPlayMax].View()),
		s.Help.Render(locale.T(lang, locale.HelpFilters)),
	}
	return s.Panel.Render(strings.Join(rows, "\n"))
}

func (a App) historyView() string {
	s, lang := a.styles, a.lang
	var b strings.Builder
	b.WriteString(s.Section.Render(locale.T(lang, locale.HistoryTitle)))
	b.WriteString("\n")

	items := a.history.Items()
	if len(items) == 0 {
		b.WriteString(s.Meta.Render(locale.T(lang, locale.NoHistory)))
	}
	for i, q := range items {
		if i == a.panelCursor {
			b.WriteString(s.Active.Render(q))
		} else {
			b.WriteString(s.Suggestion.Render(q))
		}
		b.WriteString("\n")
	}

	if a.confirmClear {
		b.WriteString("\n")
		b.WriteString(s.Error.Render(locale.T(lang, locale.ConfirmClearHistory) + " " + locale.T(lang, locale.Confirm)))
	}
	b.WriteString("\n")
	b.WriteString(s.Help.Render(locale.T(lang, locale.HelpHistory)))
	return s.Panel.Render(b.String())
}

func (a App) favoritesView() string {
	s, lang := a.styles, a.lang
	var b strings.Builder
	b.WriteString(s.Section.Render(locale.T(lang, locale.FavoritesTitle)))
	b.WriteString("\n")

	favs := a.favorites.List()
	if len(favs) == 0 {
		b.WriteString(s.Meta.Render(locale.T(lang, locale.NoFavorites)))
	}
	for i, f := range favs {
		line := fmt.Sprintf("%s %s  %s", s.Favorite.Render("♥"), f.Name,
			s.Meta.Render(game.PriceLabel(f.Price, locale.T(lang, locale.Free))))
		if i == a.panelCursor {
			b.WriteString(s.Active.Render(line))
		} else {
			b.WriteString(s.Suggestion.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.Help.Render(locale.T(lang, locale.HelpFavorites)))
	return s.Panel.Render(b.String())
}
