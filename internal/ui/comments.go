package ui

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/horizon/internal/api"
	"github.com/abelbrown/horizon/internal/locale"
)

// commentThread is the comment modal for one game.
//
// seq changes on every open and close, so replies for a thread that is no
// longer showing are recognised and dropped. postSeq is the seq of the last
// post sent; its failure is alerted even after the modal closes.
type commentThread struct {
	open     bool
	seq      uint64
	postSeq  uint64
	appID    int
	name     string
	loading  bool
	posting  bool
	items    []api.Comment
	loadErr  error
	notice   locale.Key
	alert    string
	maxRunes int
	composer textarea.Model
}

func newCommentThread(maxRunes int) commentThread {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(3)
	return commentThread{maxRunes: maxRunes, composer: ta}
}

// start opens the modal for a game and returns the session to fetch under.
func (c *commentThread) start(appID int, name string, lang locale.Lang) uint64 {
	c.seq++
	c.open = true
	c.appID = appID
	c.name = name
	c.loading = true
	c.posting = false
	c.items = nil
	c.loadErr = nil
	c.notice = ""
	c.composer.Reset()
	c.composer.Placeholder = locale.T(lang, locale.CommentPlaceholder)
	c.composer.Focus()
	return c.seq
}

// close is idempotent.
func (c *commentThread) close() {
	if !c.open {
		return
	}
	c.seq++
	c.open = false
	c.loading = false
	c.posting = false
	c.composer.Blur()
}

func (c *commentThread) current(seq uint64) bool {
	return c.open && seq == c.seq
}

func (c *commentThread) loaded(msg CommentsLoaded) bool {
	if !c.current(msg.Seq) {
		return false
	}
	c.loading = false
	c.loadErr = msg.Err
	if msg.Err == nil {
		c.items = msg.Comments
	}
	return true
}

// validate checks the composer before posting. It returns the trimmed
// content, or false when nothing should be sent.
func (c *commentThread) validate() (string, bool) {
	content := strings.TrimSpace(c.composer.Value())
	if content == "" {
		return "", false
	}
	if c.maxRunes > 0 && utf8.RuneCountInString(content) > c.maxRunes {
		c.notice = locale.CommentTooLong
		return "", false
	}
	c.notice = ""
	return content, true
}

// send marks a post in flight for the open thread and returns its seq.
func (c *commentThread) send() uint64 {
	c.posting = true
	c.postSeq = c.seq
	return c.postSeq
}

// posted applies a post reply. It reports whether a refetch is needed.
func (c *commentThread) posted(msg CommentPosted, lang locale.Lang) bool {
	if msg.Seq != c.postSeq {
		return false
	}
	if msg.Err != nil {
		c.alert = locale.T(lang, locale.CommentFailed)
		var appErr *api.AppError
		if errors.As(msg.Err, &appErr) {
			c.alert += "\n" + appErr.Message
		}
	}
	if !c.current(msg.Seq) {
		return false
	}
	c.posting = false
	if msg.Err != nil {
		return false
	}
	c.composer.Reset()
	c.loading = true
	return true
}

func (c *commentThread) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.composer, cmd = c.composer.Update(msg)
	return cmd
}

func (c commentThread) view(s Styles, lang locale.Lang, width int) string {
	if !c.open {
		return c.alertView(s)
	}
	var b strings.Builder
	b.WriteString(s.Title.Render(locale.T(lang, locale.CommentsTitle) + " · " + c.name))
	b.WriteString("\n\n")

	switch {
	case c.loading:
		b.WriteString(s.Meta.Render(locale.T(lang, locale.Loading)))
	case c.loadErr != nil:
		b.WriteString(s.Error.Render(locale.T(lang, locale.ErrorMessage)))
	case len(c.items) == 0:
		b.WriteString(s.Meta.Render(locale.T(lang, locale.NoComments)))
	default:
		for _, item := range c.items {
			b.WriteString(s.Meta.Render(locale.FormatDate(lang, item.CreatedAt)))
			b.WriteString("\n")
			b.WriteString(item.Content)
			b.WriteString("\n\n")
		}
	}

	b.WriteString("\n")
	if width > 8 {
		c.composer.SetWidth(width - 8)
	}
	b.WriteString(c.composer.View())
	if c.notice != "" {
		b.WriteString("\n")
		b.WriteString(s.Error.Render(locale.T(lang, c.notice)))
	}
	b.WriteString("\n")
	b.WriteString(s.Help.Render(locale.T(lang, locale.HelpComments)))

	modal := s.Modal.Render(b.String())
	if c.alert != "" {
		modal = lipgloss.JoinVertical(lipgloss.Left, modal, c.alertView(s))
	}
	return modal
}

func (c commentThread) alertView(s Styles) string {
	if c.alert == "" {
		return ""
	}
	return s.Alert.Render(c.alert + "\n\n[ OK ]")
}
