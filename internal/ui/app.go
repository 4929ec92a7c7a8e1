package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/horizon/internal/api"
	"github.com/abelbrown/horizon/internal/chart"
	"github.com/abelbrown/horizon/internal/favorites"
	"github.com/abelbrown/horizon/internal/game"
	"github.com/abelbrown/horizon/internal/history"
	"github.com/abelbrown/horizon/internal/locale"
	"github.com/abelbrown/horizon/internal/logging"
	"github.com/abelbrown/horizon/internal/prefs"
	"github.com/abelbrown/horizon/internal/search"
)

// healthRetry is how often readiness is re-probed while the backend loads.
const healthRetry = 3 * time.Second

// Backend is the remote API as the UI uses it.
type Backend interface {
	search.Backend
	Comments(ctx context.Context, appID int) ([]api.Comment, error)
	PostComment(ctx context.Context, appID int, content string) error
	Health(ctx context.Context) (api.Health, error)
}

// Settings persists user preferences.
type Settings interface {
	SetLanguage(locale.Lang) error
	SetTheme(prefs.Theme) error
	DismissInfo() error
}

// Config wires the App's collaborators and tunables.
type Config struct {
	Context   context.Context
	Backend   Backend
	Settings  Settings
	History   *history.Manager
	Favorites *favorites.Manager
	Renderer  chart.Renderer
	Clipboard func(string) error

	Lang            locale.Lang
	Theme           prefs.Theme
	ShowInfo        bool
	Debounce        time.Duration
	ChartDelay      time.Duration
	ToastDuration   time.Duration
	ShelfSize       int
	MaxCommentRunes int
}

type focusArea int

const (
	focusInput focusArea = iota
	focusResults
)

type backendState int

const (
	backendUnknown backendState = iota
	backendLoading
	backendReady
	backendDown
)

// App is the root Bubble Tea model.
// All mutation happens in Update; network calls run as commands and report
// back through messages.
type App struct {
	cfg     Config
	ctx     context.Context
	backend Backend
	keys    keyMap

	lang   locale.Lang
	theme  prefs.Theme
	styles Styles
	width  int
	height int

	input    textinput.Model
	inputErr locale.Key
	focus    focusArea
	auto     autocomplete
	spinner  spinner.Model

	session   *search.Session
	history   *history.Manager
	favorites *favorites.Manager
	charts    *chart.Registry

	area      resultArea
	cursor    int
	renderSeq uint64

	panel        panelKind
	panelCursor  int
	confirmClear bool
	filters      filterPanel

	comments    commentThread
	infoVisible bool
	backendSt   backendState

	toast    string
	toastSeq uint64
}

// New creates the App. Zero tunables take the config defaults. Backend,
// History and Favorites are required.
func New(cfg Config) App {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 300 * time.Millisecond
	}
	if cfg.ChartDelay < 0 {
		cfg.ChartDelay = 0
	}
	if cfg.ToastDuration <= 0 {
		cfg.ToastDuration = 3 * time.Second
	}
	if cfg.ShelfSize <= 0 {
		cfg.ShelfSize = 4
	}
	if cfg.MaxCommentRunes <= 0 {
		cfg.MaxCommentRunes = 500
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = clipboard.WriteAll
	}
	if cfg.Renderer == nil {
		cfg.Renderer = chart.TermRenderer{}
	}
	if !locale.Valid(cfg.Lang) {
		cfg.Lang = locale.Default
	}
	if cfg.Theme != prefs.Light {
		cfg.Theme = prefs.Dark
	}

	ti := textinput.New()
	ti.Placeholder = locale.T(cfg.Lang, locale.Placeholder)
	ti.Prompt = "› "
	ti.CharLimit = 200
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	var hist search.History
	if cfg.History != nil {
		hist = cfg.History
	}

	return App{
		cfg:         cfg,
		ctx:         cfg.Context,
		backend:     cfg.Backend,
		keys:        defaultKeyMap(),
		lang:        cfg.Lang,
		theme:       cfg.Theme,
		styles:      NewStyles(cfg.Theme),
		input:       ti,
		auto:        newAutocomplete(cfg.Debounce),
		spinner:     sp,
		session:     search.New(hist),
		history:     cfg.History,
		favorites:   cfg.Favorites,
		charts:      chart.NewRegistry(cfg.Renderer),
		filters:     newFilterPanel(),
		comments:    newCommentThread(cfg.MaxCommentRunes),
		infoVisible: cfg.ShowInfo,
	}
}

// Init starts the cursor blink and the readiness probe.
func (a App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.checkHealth())
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = max(msg.Width-6, 10)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case DebounceFired:
		gen, ok := a.auto.fire(msg)
		if !ok {
			return a, nil
		}
		return a, a.lookupSuggestions(gen, msg.Term)

	case SuggestionsLoaded:
		a.auto.loaded(msg)
		return a, nil

	case SearchFinished:
		return a.finishSearch(msg.Reply)

	case FallbackSuggestions:
		if !a.session.Current(msg.Gen) || !a.area.failed() {
			return a, nil
		}
		a.area.chips = msg.Items
		a.area.chipsDone = true
		return a, nil

	case FallbackShelf:
		if !a.session.Current(msg.Gen) || !a.area.failed() {
			return a, nil
		}
		a.invalidateCharts()
		a.area.shelf = msg.Cards
		a.area.shelfDone = true
		return a, a.scheduleCharts()

	case ChartsDue:
		a.mountCharts(msg.Seq)
		return a, nil

	case CommentsLoaded:
		a.comments.loaded(msg)
		return a, nil

	case CommentPosted:
		if a.comments.posted(msg, a.lang) {
			return a, a.fetchComments()
		}
		return a, nil

	case HealthChecked:
		return a.applyHealth(msg)

	case HealthProbe:
		return a, a.checkHealth()

	case Shared:
		if msg.Err != nil {
			logging.Warn("clipboard write failed", "error", msg.Err)
			return a, a.showToast(locale.T(a.lang, locale.ErrorMessage))
		}
		return a, a.showToast(locale.T(a.lang, locale.LinkCopied))

	case ToastExpired:
		if msg.Seq == a.toastSeq {
			a.toast = ""
		}
		return a, nil

	case spinner.TickMsg:
		if !a.session.Pending() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, a.forward(msg)
}

// handleKeyMsg turns a key into an intent, or feeds it to the focused
// text component when it carries no intent.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := a.intentFor(msg)
	if in == IntentNone {
		return a, a.forward(msg)
	}
	arg := 0
	if in == IntentPickChip && len(msg.Runes) == 1 {
		arg = int(msg.Runes[0] - '0')
	}
	return a.dispatch(in, arg)
}

// forward delivers msg to whichever text component has focus.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	switch {
	case a.comments.open && a.comments.alert == "":
		return a.comments.update(msg)
	case a.panel == panelFilters:
		return a.filters.update(msg)
	case a.panel != panelNone || a.infoVisible || a.focus != focusInput:
		return nil
	}

	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if after := a.input.Value(); after != before {
		a.inputErr = ""
		return tea.Batch(cmd, a.auto.onInput(after))
	}
	return cmd
}

// dispatch performs an intent. It is the only place user actions mutate state.
func (a App) dispatch(in Intent, arg int) (tea.Model, tea.Cmd) {
	switch in {
	case IntentQuit:
		a.charts.DestroyAll()
		return a, tea.Quit

	case IntentSubmit:
		return a.submit(a.input.Value())

	case IntentSurprise:
		return a.surprise()

	case IntentCancel:
		switch {
		case a.comments.open:
			a.comments.close()
		case a.panel != panelNone:
			a.closePanel()
		default:
			a.auto.cancel()
		}
		return a, nil

	case IntentSuggestNext:
		a.auto.next()
		return a, nil

	case IntentSuggestPrev:
		a.auto.prev()
		return a, nil

	case IntentCommitSuggestion:
		a.input.SetValue(a.auto.commit(a.input.Value()))
		a.input.CursorEnd()
		return a, nil

	case IntentFocusNext:
		if a.focus == focusInput && a.area.outcome != nil {
			a.focus = focusResults
			a.input.Blur()
			a.auto.cancel()
			return a, nil
		}
		a.focus = focusInput
		return a, a.input.Focus()

	case IntentCardNext:
		if n := len(a.area.cards()); n > 0 && a.cursor < n-1 {
			a.cursor++
		}
		return a, nil

	case IntentCardPrev:
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case IntentToggleFavorite:
		card, ok := a.selectedCard()
		if !ok {
			return a, nil
		}
		snap := card.Result.Snapshot()
		return a, a.toggleFavorite(card.Result.Key(), &snap)

	case IntentShare:
		if a.panel == panelFavorites {
			favs := a.favorites.List()
			if a.panelCursor < len(favs) {
				f := favs[a.panelCursor]
				return a, a.share(f.Name, f.SteamURL, f.ID)
			}
			return a, nil
		}
		if card, ok := a.selectedCard(); ok {
			return a, a.share(card.Result.Name, card.Result.SteamURL, card.Result.ID)
		}
		return a, nil

	case IntentOpenComments:
		card, ok := a.selectedCard()
		if !ok {
			return a, nil
		}
		a.comments.start(card.Result.ID, card.Result.Name, a.lang)
		return a, a.fetchComments()

	case IntentPickChip:
		if arg < 1 || arg > len(a.area.chips) {
			return a, nil
		}
		chip := a.area.chips[arg-1]
		a.input.SetValue(chip)
		a.focus = focusInput
		a.input.Focus()
		return a.submit(chip)

	case IntentToggleLanguage:
		a.lang = locale.Next(a.lang)
		a.input.Placeholder = locale.T(a.lang, locale.Placeholder)
		if err := a.cfg.saveLanguage(a.lang); err != nil {
			logging.Warn("failed to save language", "error", err)
		}
		return a, a.replay()

	case IntentToggleTheme:
		a.theme = a.theme.Toggle()
		a.styles = NewStyles(a.theme)
		if err := a.cfg.saveTheme(a.theme); err != nil {
			logging.Warn("failed to save theme", "error", err)
		}
		return a, a.replay()

	case IntentToggleFilters:
		return a, a.togglePanel(panelFilters)

	case IntentToggleHistory:
		return a, a.togglePanel(panelHistory)

	case IntentToggleFavorites:
		return a, a.togglePanel(panelFavorites)

	case IntentShowInfo:
		a.infoVisible = true
		return a, nil

	case IntentDismissInfo:
		a.infoVisible = false
		if err := a.cfg.dismissInfo(); err != nil {
			logging.Warn("failed to save info card state", "error", err)
		}
		return a, nil

	case IntentPanelNext:
		if a.panelCursor < a.panelLen()-1 {
			a.panelCursor++
		}
		return a, nil

	case IntentPanelPrev:
		if a.panelCursor > 0 {
			a.panelCursor--
		}
		return a, nil

	case IntentPanelRun:
		items := a.history.Items()
		if a.panelCursor >= len(items) {
			return a, nil
		}
		q := items[a.panelCursor]
		a.closePanel()
		a.input.SetValue(q)
		return a.submit(q)

	case IntentPanelRemove:
		return a, a.removeFromPanel()

	case IntentClearHistory:
		if a.history.Len() > 0 {
			a.confirmClear = true
		}
		return a, nil

	case IntentConfirm:
		a.confirmClear = false
		if err := a.history.Clear(); err != nil {
			logging.Warn("failed to clear history", "error", err)
		}
		a.panelCursor = 0
		return a, nil

	case IntentDeny:
		a.confirmClear = false
		return a, nil

	case IntentFilterNextField:
		return a, a.filters.focusField(a.filters.focus + 1)

	case IntentApplyFilters:
		a.closePanel()
		return a.submit(a.input.Value())

	case IntentPostComment:
		content, ok := a.comments.validate()
		if !ok || a.comments.posting {
			return a, nil
		}
		seq := a.comments.send()
		return a, a.postComment(seq, content)

	case IntentAckAlert:
		a.comments.alert = ""
		return a, nil
	}
	return a, nil
}

// submit starts an explicit search for raw.
func (a App) submit(raw string) (tea.Model, tea.Cmd) {
	a.auto.cancel()
	req, err := a.session.Submit(raw, a.filters.FilterSet())
	if err != nil {
		a.inputErr = locale.InvalidInput
		return a, nil
	}
	a.inputErr = ""
	a.clearResults()
	a.focus = focusInput
	return a, tea.Batch(a.runSearch(req), a.spinner.Tick)
}

func (a App) surprise() (tea.Model, tea.Cmd) {
	a.auto.cancel()
	a.inputErr = ""
	req := a.session.Surprise()
	a.clearResults()
	return a, tea.Batch(a.runSearch(req), a.spinner.Tick)
}

// finishSearch shows an accepted outcome. Failures start both fallback blocks.
func (a App) finishSearch(reply search.Reply) (tea.Model, tea.Cmd) {
	out, ok := a.session.Accept(reply)
	if !ok {
		return a, nil
	}
	if out.Anchor != nil {
		a.input.SetValue(out.Anchor.Name)
		a.input.CursorEnd()
	}

	a.clearResults()
	a.area.outcome = &out

	if fr, ok := a.session.Fallback(out); ok {
		return a, tea.Batch(a.fetchFallbackSuggestions(fr), a.fetchFallbackShelf(fr))
	}
	return a, a.scheduleCharts()
}

// replay re-renders the last outcome with the current language and theme.
func (a *App) replay() tea.Cmd {
	if _, ok := a.session.Last(); !ok || a.area.outcome == nil {
		return nil
	}
	a.invalidateCharts()
	return a.scheduleCharts()
}

func (a App) selectedCard() (game.Card, bool) {
	if a.focus != focusResults {
		return game.Card{}, false
	}
	cards := a.area.cards()
	if a.cursor < 0 || a.cursor >= len(cards) {
		return game.Card{}, false
	}
	return cards[a.cursor], true
}

func (a *App) toggleFavorite(key string, snap *game.Snapshot) tea.Cmd {
	change, err := a.favorites.Toggle(key, snap)
	if err != nil {
		logging.Warn("favorite toggle", "id", key, "error", err)
	}
	if change == 0 {
		return nil
	}
	if change == favorites.Added {
		return a.showToast(locale.T(a.lang, locale.AddToFavorites) + " ♥")
	}
	return a.showToast(locale.T(a.lang, locale.RemoveFromFavorites))
}

func (a *App) togglePanel(p panelKind) tea.Cmd {
	if a.panel == p {
		a.closePanel()
		return nil
	}
	a.closePanel()
	a.panel = p
	a.panelCursor = 0
	a.input.Blur()
	a.auto.cancel()
	if p == panelFilters {
		return a.filters.focusField(0)
	}
	return nil
}

func (a *App) closePanel() {
	if a.panel == panelFilters {
		a.filters.blur()
	}
	a.panel = panelNone
	a.confirmClear = false
	if a.focus == focusInput {
		a.input.Focus()
	}
}

func (a App) panelLen() int {
	switch a.panel {
	case panelHistory:
		return a.history.Len()
	case panelFavorites:
		return a.favorites.Len()
	}
	return 0
}

func (a *App) removeFromPanel() tea.Cmd {
	var cmd tea.Cmd
	switch a.panel {
	case panelHistory:
		items := a.history.Items()
		if a.panelCursor < len(items) {
			if err := a.history.Remove(items[a.panelCursor]); err != nil {
				logging.Warn("failed to remove history entry", "error", err)
			}
		}
	case panelFavorites:
		favs := a.favorites.List()
		if a.panelCursor < len(favs) {
			cmd = a.toggleFavorite(favs[a.panelCursor].Key(), nil)
		}
	}
	if n := a.panelLen(); a.panelCursor >= n {
		a.panelCursor = max(n-1, 0)
	}
	return cmd
}

func (a *App) showToast(text string) tea.Cmd {
	a.toastSeq++
	a.toast = text
	seq := a.toastSeq
	return tea.Tick(a.cfg.ToastDuration, func(time.Time) tea.Msg {
		return ToastExpired{Seq: seq}
	})
}

func (a App) applyHealth(msg HealthChecked) (tea.Model, tea.Cmd) {
	switch {
	case msg.Err != nil:
		logging.Warn("backend health check failed", "error", msg.Err)
		a.backendSt = backendDown
		return a, nil
	case msg.Health.Ready():
		a.backendSt = backendReady
		return a, nil
	}
	a.backendSt = backendLoading
	return a, tea.Tick(healthRetry, func(time.Time) tea.Msg { return HealthProbe{} })
}

func (c Config) saveLanguage(l locale.Lang) error {
	if c.Settings == nil {
		return nil
	}
	return c.Settings.SetLanguage(l)
}

func (c Config) saveTheme(t prefs.Theme) error {
	if c.Settings == nil {
		return nil
	}
	return c.Settings.SetTheme(t)
}

func (c Config) dismissInfo() error {
	if c.Settings == nil {
		return nil
	}
	return c.Settings.DismissInfo()
}

// View renders the UI.
func (a App) View() string {
	s, lang := a.styles, a.lang
	width := a.width
	if width == 0 {
		width = 80
	}

	var top []string
	top = append(top, s.Title.Render(locale.T(lang, locale.Title))+"  "+s.Meta.Render(a.themeLabel()+" · "+strings.ToUpper(string(lang))))

	if a.infoVisible {
		top = append(top, a.infoView(width))
	}

	label := s.Meta.Render(locale.T(lang, locale.LabelGameName))
	top = append(top, label, a.input.View())
	if a.inputErr != "" {
		top = append(top, s.Error.Render(locale.T(lang, a.inputErr)))
	}
	if suggestions := a.auto.view(s); suggestions != "" {
		top = append(top, suggestions)
	}

	switch a.panel {
	case panelFilters:
		top = append(top, a.filters.view(s, lang))
	case panelHistory:
		top = append(top, a.historyView())
	case panelFavorites:
		top = append(top, a.favoritesView())
	}

	header := strings.Join(top, "\n")
	status := a.statusBar(width)

	if a.comments.open || a.comments.alert != "" {
		return lipgloss.JoinVertical(lipgloss.Left, header, a.comments.view(s, lang, width), status)
	}

	results, anchor := a.resultsView(width)
	avail := 0
	if a.height > 0 {
		avail = a.height - lipgloss.Height(header) - lipgloss.Height(status) - 1
		if avail < 1 {
			avail = 1
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, window(results, anchor, avail), status)
}

func (a App) themeLabel() string {
	if a.theme == prefs.Light {
		return locale.T(a.lang, locale.LightTheme)
	}
	return locale.T(a.lang, locale.DarkTheme)
}

func (a App) infoView(width int) string {
	s, lang := a.styles, a.lang
	steps := []locale.Key{locale.Step1, locale.Step2, locale.Step3, locale.Step4, locale.Step5, locale.Step6, locale.Step7}
	var b strings.Builder
	b.WriteString(s.Section.Render(locale.T(lang, locale.InfoTitle)))
	b.WriteString("\n")
	b.WriteString(locale.T(lang, locale.InfoText))
	b.WriteString("\n\n")
	b.WriteString(s.CardTitle.Render(locale.T(lang, locale.HowToUseTitle)))
	for i, k := range steps {
		fmt.Fprintf(&b, "\n%d. %s", i+1, locale.T(lang, k))
	}
	b.WriteString("\n\n")
	b.WriteString(s.Active.Render(locale.T(lang, locale.GotIt)))
	return s.Panel.Width(max(width-4, 20)).Render(b.String())
}

func (a App) statusBar(width int) string {
	s, lang := a.styles, a.lang
	var parts []string

	switch a.backendSt {
	case backendLoading:
		parts = append(parts, s.StatusKey.Render(locale.T(lang, locale.Loading)))
	case backendDown:
		parts = append(parts, s.Error.Render(locale.T(lang, locale.ErrorMessage)))
	}
	if a.session.Pending() {
		parts = append(parts, a.spinner.View())
	}
	if a.toast != "" {
		parts = append(parts, s.Toast.Render(a.toast))
	}
	if a.panel != panelFilters && !a.filters.FilterSet().IsZero() {
		parts = append(parts, s.StatusKey.Render("⚙ "+locale.T(lang, locale.ToggleFilters)))
	}

	help := locale.HelpInput
	if a.focus == focusResults && a.panel == panelNone {
		help = locale.HelpResults
	}
	parts = append(parts, s.Help.Render(locale.T(lang, help)))
	return s.StatusBar.Width(width).Render(strings.Join(parts, " "))
}
