package ui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/horizon/internal/locale"
	"github.com/abelbrown/horizon/internal/search"
)

const steamStore = "https://store.steampowered.com/app/"

// Commands run off the update loop. Each one captures the generation it was
// issued under so the reply can be matched against current state.

func (a App) runSearch(req search.Request) tea.Cmd {
	ctx, b := a.ctx, a.backend
	return func() tea.Msg {
		return SearchFinished{Reply: search.Execute(ctx, b, req)}
	}
}

func (a App) lookupSuggestions(gen uint64, term string) tea.Cmd {
	ctx, b := a.ctx, a.backend
	return func() tea.Msg {
		items, err := b.Autocomplete(ctx, term)
		return SuggestionsLoaded{Gen: gen, Items: items, Err: err}
	}
}

func (a App) fetchFallbackSuggestions(fr search.FallbackRequest) tea.Cmd {
	ctx, b := a.ctx, a.backend
	return func() tea.Msg {
		return FallbackSuggestions{search.FetchSuggestions(ctx, b, fr)}
	}
}

func (a App) fetchFallbackShelf(fr search.FallbackRequest) tea.Cmd {
	ctx, b, n := a.ctx, a.backend, a.cfg.ShelfSize
	return func() tea.Msg {
		return FallbackShelf{search.FetchShelf(ctx, b, fr, n)}
	}
}

func (a App) fetchComments() tea.Cmd {
	ctx, b := a.ctx, a.backend
	seq, appID := a.comments.seq, a.comments.appID
	return func() tea.Msg {
		items, err := b.Comments(ctx, appID)
		return CommentsLoaded{Seq: seq, AppID: appID, Comments: items, Err: err}
	}
}

func (a App) postComment(seq uint64, content string) tea.Cmd {
	ctx, b := a.ctx, a.backend
	appID := a.comments.appID
	return func() tea.Msg {
		err := b.PostComment(ctx, appID, content)
		return CommentPosted{Seq: seq, AppID: appID, Err: err}
	}
}

func (a App) checkHealth() tea.Cmd {
	if a.backend == nil {
		return nil
	}
	ctx, b := a.ctx, a.backend
	return func() tea.Msg {
		h, err := b.Health(ctx)
		return HealthChecked{Health: h, Err: err}
	}
}

// share copies the share text and store link of a game.
func (a App) share(name, steamURL string, id int) tea.Cmd {
	if steamURL == "" {
		steamURL = steamStore + strconv.Itoa(id)
	}
	text := fmt.Sprintf("%s %s\n%s", locale.T(a.lang, locale.ShareText), name, steamURL)
	write := a.cfg.Clipboard
	return func() tea.Msg {
		return Shared{Err: write(text)}
	}
}
