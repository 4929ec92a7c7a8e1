package ui

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/horizon/internal/api"
	"github.com/abelbrown/horizon/internal/chart"
	"github.com/abelbrown/horizon/internal/favorites"
	"github.com/abelbrown/horizon/internal/game"
	"github.com/abelbrown/horizon/internal/history"
	"github.com/abelbrown/horizon/internal/locale"
	"github.com/abelbrown/horizon/internal/prefs"
)

// fakeBackend answers from canned data and records every call.
type fakeBackend struct {
	results      []game.SearchResult
	searchErr    error
	surprise     api.Surprise
	surpriseErr  error
	suggestions  []string
	suggestErr   error
	comments     []api.Comment
	commentsErr  error
	postErr      error
	health       api.Health
	calls        []string
	lastQuery    string
	lastTerm     string
	posted       []string
	searchByTerm map[string][]game.SearchResult
}

func (f *fakeBackend) Search(_ context.Context, query string, _ game.FilterSet) ([]game.SearchResult, error) {
	f.calls = append(f.calls, "search")
	f.lastQuery = query
	if r, ok := f.searchByTerm[query]; ok {
		return r, nil
	}
	return f.results, f.searchErr
}

func (f *fakeBackend) Surprise(context.Context) (api.Surprise, error) {
	f.calls = append(f.calls, "surprise")
	return f.surprise, f.surpriseErr
}

func (f *fakeBackend) Autocomplete(_ context.Context, term string) ([]string, error) {
	f.calls = append(f.calls, "autocomplete")
	f.lastTerm = term
	return f.suggestions, f.suggestErr
}

func (f *fakeBackend) Comments(context.Context, int) ([]api.Comment, error) {
	f.calls = append(f.calls, "comments")
	return f.comments, f.commentsErr
}

func (f *fakeBackend) PostComment(_ context.Context, _ int, content string) error {
	f.calls = append(f.calls, "post")
	if f.postErr != nil {
		return f.postErr
	}
	f.posted = append(f.posted, content)
	return nil
}

func (f *fakeBackend) Health(context.Context) (api.Health, error) {
	return f.health, nil
}

func (f *fakeBackend) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

// memStore backs history, favorites and settings in memory.
type memStore struct {
	history   []string
	favs      map[string]game.Snapshot
	lang      locale.Lang
	theme     prefs.Theme
	dismissed bool
}

func (m *memStore) History() []string { return append([]string(nil), m.history...) }
func (m *memStore) SaveHistory(h []string) error { m.history = append([]string(nil), h...); return nil }
func (m *memStore) ClearHistory() error { m.history = nil; return nil }
func (m *memStore) SetLanguage(l locale.Lang) error { m.lang = l; return nil }
func (m *memStore) SetTheme(t prefs.Theme) error { m.theme = t; return nil }
func (m *memStore) DismissInfo() error { m.dismissed = true; return nil }
func (m *memStore) SaveFavorites(f map[string]game.Snapshot) error {
	m.favs = make(map[string]game.Snapshot, len(f))
	for k, v := range f {
		m.favs[k] = v
	}
	return nil
}

func (m *memStore) Favorites() map[string]game.Snapshot {
	out := make(map[string]game.Snapshot, len(m.favs))
	for k, v := range m.favs {
		out[k] = v
	}
	return out
}

type fakeChart struct {
	spec      chart.Spec
	destroyed bool
}

func (c *fakeChart) View() string { return "[chart]" }
func (c *fakeChart) Destroy() { c.destroyed = true }

type fakeRenderer struct {
	rendered []*fakeChart
}

func (r *fakeRenderer) Render(s chart.Spec) chart.Chart {
	c := &fakeChart{spec: s}
	r.rendered = append(r.rendered, c)
	return c
}

type harness struct {
	backend   *fakeBackend
	store     *memStore
	renderer  *fakeRenderer
	clipboard []string
}

func newHarness(b *fakeBackend) *harness {
	if b.health.Status == "" {
		b.health.Status = "ready"
	}
	return &harness{backend: b, store: &memStore{}, renderer: &fakeRenderer{}}
}

func (h *harness) app() App {
	a := New(Config{
		Backend:   h.backend,
		Settings:  h.store,
		History:   history.New(h.store, 0),
		Favorites: favorites.New(h.store),
		Renderer:  h.renderer,
		Clipboard: func(s string) error {
			h.clipboard = append(h.clipboard, s)
			return nil
		},
		Lang:          locale.EN,
		Theme:         prefs.Dark,
		Debounce:      time.Millisecond,
		ChartDelay:    time.Millisecond,
		ToastDuration: time.Millisecond,
		ShelfSize:     4,
	})
	a.input.Cursor.SetMode(cursor.CursorStatic)
	a.width, a.height = 100, 60
	return a
}

// run executes cmd and feeds every resulting message of this package back
// into Update until nothing is left. Toasts are left showing.
func run(t *testing.T, a App, cmd tea.Cmd) App {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 200 {
			t.Fatal("commands did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		switch m := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, m...)
			continue
		case DebounceFired, SuggestionsLoaded, SearchFinished, FallbackSuggestions,
			FallbackShelf, ChartsDue, CommentsLoaded, CommentPosted, HealthChecked, Shared:
		default:
			continue
		}
		model, next := a.Update(msg)
		a = model.(App)
		queue = append(queue, next)
	}
	return a
}

func update(a App, msg tea.Msg) (App, tea.Cmd) {
	model, cmd := a.Update(msg)
	return model.(App), cmd
}

// press sends one key and settles its commands.
func press(t *testing.T, a App, k tea.KeyMsg) App {
	t.Helper()
	a, cmd := update(a, k)
	return run(t, a, cmd)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
)

// searchFor submits query and settles the search and chart mount.
func searchFor(t *testing.T, a App, query string) App {
	t.Helper()
	a.input.SetValue(query)
	return press(t, a, keyEnter)
}

func result(id int, name string, similarity float64) game.SearchResult {
	return game.SearchResult{
		ID:         id,
		Name:       name,
		Price:      9.99,
		SteamURL:   "https://store.steampowered.com/app/" + strconv.Itoa(id),
		Genres:     []string{"Action", "Adventure", "Puzzle", "Indie"},
		Similarity: similarity,
		Breakdown:  game.Breakdown{Visual: 80, Genre: 70, Gameplay: 60, Price: 50, Popularity: 40},
	}
}
