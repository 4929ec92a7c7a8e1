package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/horizon/internal/chart"
	"github.com/abelbrown/horizon/internal/game"
	"github.com/abelbrown/horizon/internal/locale"
	"github.com/abelbrown/horizon/internal/search"
)

// CardView is the display model of one result card.
type CardView struct {
	Key         string
	Name        string
	Favorite    bool
	Price       string
	Percent     int
	Tier        game.Tier
	Genres      []string
	Year        string
	Playtime    string
	Explanation string
	Reasons     []string
}

// NewCardView derives everything a card shows from a classified result.
func NewCardView(c game.Card, isFavorite func(string) bool, lang locale.Lang) CardView {
	r := c.Result
	pct := game.Percent(r.Similarity)
	v := CardView{
		Key:         r.Key(),
		Name:        r.Name,
		Favorite:    isFavorite != nil && isFavorite(r.Key()),
		Price:       game.PriceLabel(r.Price, locale.T(lang, locale.Free)),
		Percent:     pct,
		Tier:        game.TierFor(pct),
		Genres:      game.TopGenres(r.Genres),
		Year:        game.YearLabel(r.Year),
		Playtime:    game.PlaytimeLabel(r.PlaytimeMinutes),
		Explanation: r.Explanation,
	}
	for _, m := range r.MatchReasons {
		v.Reasons = append(v.Reasons, m.Description)
	}
	return v
}

// resultArea is what the result region currently shows. It is replaced
// wholesale on every new outcome.
type resultArea struct {
	outcome   *search.Outcome
	chips     []string
	chipsDone bool
	shelf     []game.Card
	shelfDone bool
}

// cards returns the cards on screen in display order: the classified
// results on success, the fallback shelf on failure.
func (r resultArea) cards() []game.Card {
	if r.outcome == nil {
		return nil
	}
	if r.outcome.Failed() {
		return r.shelf
	}
	return r.outcome.Classified.Cards()
}

func (r resultArea) failed() bool {
	return r.outcome != nil && r.outcome.Failed()
}

// clearResults tears down every chart and empties the result area.
func (a *App) clearResults() {
	a.invalidateCharts()
	a.area = resultArea{}
	a.cursor = 0
}

// invalidateCharts destroys all charts and cancels any pending mount.
func (a *App) invalidateCharts() {
	a.charts.DestroyAll()
	a.renderSeq++
}

// scheduleCharts mounts charts for the current cards after the mount delay.
func (a *App) scheduleCharts() tea.Cmd {
	if len(a.area.cards()) == 0 {
		return nil
	}
	seq := a.renderSeq
	return tea.Tick(a.cfg.ChartDelay, func(time.Time) tea.Msg {
		return ChartsDue{Seq: seq}
	})
}

// mountCharts creates one chart per rendered card, keyed by game id.
func (a *App) mountCharts(seq uint64) {
	if seq != a.renderSeq {
		return
	}
	labels := a.chartLabels()
	style := a.styles.ChartStyle()
	for _, c := range a.area.cards() {
		a.charts.Mount(c.Result.Key(), chart.Spec{
			Breakdown: c.Result.Breakdown,
			Labels:    labels,
			Style:     style,
		})
	}
}

func (a App) chartLabels() chart.Labels {
	return chart.Labels{
		locale.T(a.lang, locale.Visual),
		locale.T(a.lang, locale.Genre),
		locale.T(a.lang, locale.Gameplay),
		locale.T(a.lang, locale.Price),
		locale.T(a.lang, locale.Popularity),
	}
}

// renderCard draws one card. The chart slot shows a placeholder until the
// chart is mounted.
func (a App) renderCard(c game.Card, selected bool, width int) string {
	s, lang := a.styles, a.lang
	v := NewCardView(c, a.favorites.Has, lang)

	heart := s.Meta.Render("♡")
	if v.Favorite {
		heart = s.Favorite.Render("♥")
	}
	header := fmt.Sprintf("%s %s %s", s.CardTitle.Render(v.Name), s.Badge(v.Percent).Render(fmt.Sprintf("%d%%", v.Percent)), heart)

	meta := s.Meta.Render(fmt.Sprintf("%s %s · %s %s · %s: %s",
		locale.T(lang, locale.Year), v.Year,
		locale.T(lang, locale.Playtime), v.Playtime,
		locale.T(lang, locale.Price), v.Price))

	var genres []string
	for _, g := range v.Genres {
		genres = append(genres, s.Genre.Render(g))
	}

	body := []string{header, meta}
	if len(genres) > 0 {
		body = append(body, strings.Join(genres, ""))
	}

	if view := a.charts.View(v.Key); view != "" {
		body = append(body, view)
	} else {
		body = append(body, s.Meta.Render("· · ·"))
	}

	if selected && (v.Explanation != "" || len(v.Reasons) > 0) {
		why := locale.T(lang, locale.Why) + ": " + v.Explanation
		for _, r := range v.Reasons {
			why += "\n  • " + r
		}
		body = append(body, s.Meta.Render(why))
	}

	style := s.Card
	if selected {
		style = s.SelectedCard
	}
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style.Render(strings.Join(body, "\n"))
}

// resultsView renders the result region and returns the line at which the
// selected card starts, for scrolling.
func (a App) resultsView(width int) (string, int) {
	s, lang := a.styles, a.lang
	area := a.area
	if area.outcome == nil {
		if a.session.Pending() {
			return s.Notice.Render(a.spinner.View() + " " + locale.T(lang, locale.Loading)), 0
		}
		return "", 0
	}

	var blocks []string
	selectedLine := 0
	lines := 0
	add := func(block string) {
		blocks = append(blocks, block)
		lines += lipgloss.Height(block)
	}
	addCard := func(c game.Card) {
		selected := a.focus == focusResults && c.Index == a.cursor
		if selected {
			selectedLine = lines
		}
		add(a.renderCard(c, selected, width))
	}

	if area.failed() {
		if len(area.chips) > 0 {
			var chips []string
			for i, c := range area.chips {
				if i >= 9 {
					break
				}
				chips = append(chips, s.Chip.Render(fmt.Sprintf("%d %s", i+1, c)))
			}
			add(s.Section.Render(locale.T(lang, locale.DidYouMean)) + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, chips...))
		}
		add(s.Notice.Render(locale.T(lang, locale.NoResults)))
		if len(area.shelf) > 0 {
			add(s.Section.Render(locale.T(lang, locale.YouMightLike)))
			for _, c := range area.shelf {
				addCard(c)
			}
		}
		return strings.Join(blocks, "\n"), selectedLine
	}

	out := area.outcome
	if len(out.Classified.Similar) > 0 {
		add(s.Section.Render(locale.T(lang, locale.SimilarGamesTitle)))
		for _, c := range out.Classified.Similar {
			addCard(c)
		}
	}
	if len(out.Classified.Other) > 0 {
		add(s.Section.Render(locale.T(lang, locale.OtherGamesTitle)))
		for _, c := range out.Classified.Other {
			addCard(c)
		}
	}
	return strings.Join(blocks, "\n"), selectedLine
}

// window returns height lines of content starting near anchor.
func window(content string, anchor, height int) string {
	if height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	if len(lines) <= height {
		return content
	}
	start := anchor
	if start+height > len(lines) {
		start = len(lines) - height
	}
	if start < 0 {
		start = 0
	}
	return strings.Join(lines[start:start+height], "\n")
}
