package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/horizon/internal/api"
	"github.com/abelbrown/horizon/internal/locale"
)

var keySend = tea.KeyMsg{Type: tea.KeyCtrlS}

// openComments searches, focuses the first card and opens its thread.
func openComments(t *testing.T, h *harness) App {
	t.Helper()
	a := searchFor(t, h.app(), "Portal")
	a = press(t, a, keyTab)
	a = press(t, a, keyRunes("c"))
	if !a.comments.open {
		t.Fatal("expected comment modal open")
	}
	return a
}

func TestOpenCommentsLoadsThread(t *testing.T) {
	h := newHarness(&fakeBackend{
		results: portalResults(),
		comments: []api.Comment{
			{Content: "newest", CreatedAt: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)},
			{Content: "older", CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		},
	})
	a := openComments(t, h)

	if a.comments.appID != 1 || a.comments.loading {
		t.Errorf("expected loaded thread for app 1, got %+v", a.comments)
	}
	view := a.View()
	if strings.Index(view, "newest") > strings.Index(view, "older") {
		t.Error("comments should keep server order")
	}
}

func TestWhitespaceCommentIsNotSent(t *testing.T) {
	h := newHarness(&fakeBackend{results: portalResults()})
	a := openComments(t, h)
	a.comments.composer.SetValue("   \n  ")

	a = press(t, a, keySend)
	if h.backend.count("post") != 0 {
		t.Error("whitespace comment should not be posted")
	}
	if a.comments.notice != "" || a.comments.alert != "" {
		t.Error("whitespace comment is rejected silently")
	}
}

func TestTooLongCommentShowsNotice(t *testing.T) {
	h := newHarness(&fakeBackend{results: portalResults()})
	a := openComments(t, h)
	a.comments.composer.SetValue(strings.Repeat("ş", 501))

	a = press(t, a, keySend)
	if h.backend.count("post") != 0 {
		t.Error("over-long comment should not be posted")
	}
	if a.comments.notice != locale.CommentTooLong {
		t.Errorf("expected too long notice, got %q", a.comments.notice)
	}
}

func TestPostSuccessRefetchesThread(t *testing.T) {
	h := newHarness(&fakeBackend{results: portalResults()})
	a := openComments(t, h)
	a.comments.composer.SetValue("  great puzzles  ")

	a = press(t, a, keySend)
	if len(h.backend.posted) != 1 || h.backend.posted[0] != "great puzzles" {
		t.Fatalf("expected trimmed post, got %v", h.backend.posted)
	}
	if h.backend.count("comments") != 2 {
		t.Errorf("expected refetch after post, got %d fetches", h.backend.count("comments"))
	}
	if a.comments.composer.Value() != "" {
		t.Error("composer should be cleared after a post")
	}
}

func TestPostFailureShowsBlockingAlert(t *testing.T) {
	h := newHarness(&fakeBackend{
		results: portalResults(),
		postErr: &api.AppError{Endpoint: "/api/comments", Status: 429, Message: "slow down"},
	})
	a := openComments(t, h)
	a.comments.composer.SetValue("hello")

	a = press(t, a, keySend)
	if !strings.Contains(a.comments.alert, "slow down") ||
		!strings.Contains(a.comments.alert, locale.T(locale.EN, locale.CommentFailed)) {
		t.Fatalf("unexpected alert %q", a.comments.alert)
	}
	if a.comments.composer.Value() != "hello" {
		t.Error("failed post should keep the draft")
	}

	if got := a.intentFor(keySend); got != IntentNone {
		t.Errorf("alert should block other keys, got %v", got)
	}
	a = press(t, a, keyEnter)
	if a.comments.alert != "" || !a.comments.open {
		t.Error("acknowledging should clear the alert and keep the modal")
	}
}

func TestPostFailureAfterCloseStillAlerts(t *testing.T) {
	h := newHarness(&fakeBackend{results: portalResults(), postErr: api.ErrTransport})
	a := openComments(t, h)
	a.comments.composer.SetValue("hello")

	a, cmd := update(a, keySend)
	a = press(t, a, keyEsc)
	a = run(t, a, cmd)

	if h.backend.count("post") != 1 {
		t.Fatalf("expected one post, got %d", h.backend.count("post"))
	}
	if a.comments.open {
		t.Error("modal should stay closed")
	}
	want := locale.T(locale.EN, locale.CommentFailed)
	if a.comments.alert != want {
		t.Fatalf("expected failure alert after close, got %q", a.comments.alert)
	}
	if !strings.Contains(a.View(), want) {
		t.Error("alert should be visible with the modal closed")
	}
	if got := a.intentFor(keyDown); got != IntentNone {
		t.Errorf("alert should block other keys, got %v", got)
	}
	a = press(t, a, keyEnter)
	if a.comments.alert != "" || a.comments.open {
		t.Error("acknowledging should clear the alert without reopening the modal")
	}
}

func TestPostSuccessAfterCloseDoesNotRefetch(t *testing.T) {
	h := newHarness(&fakeBackend{results: portalResults()})
	a := openComments(t, h)
	a.comments.composer.SetValue("hello")

	a, cmd := update(a, keySend)
	a = press(t, a, keyEsc)
	a = run(t, a, cmd)

	if h.backend.count("comments") != 1 {
		t.Errorf("closed thread should not refetch, got %d fetches", h.backend.count("comments"))
	}
	if a.comments.alert != "" || a.comments.open {
		t.Errorf("unexpected state alert=%q open=%v", a.comments.alert, a.comments.open)
	}
}

func TestCloseIsIdempotentAndDropsLateReplies(t *testing.T) {
	c := newCommentThread(500)
	seq := c.start(7, "Game", locale.EN)

	c.close()
	closed := c.seq
	c.close()
	if c.seq != closed || c.open {
		t.Error("second close should be a no-op")
	}

	if c.loaded(CommentsLoaded{Seq: seq, AppID: 7, Comments: []api.Comment{{Content: "late"}}}) {
		t.Error("reply for a closed thread should be dropped")
	}
	if c.posted(CommentPosted{Seq: seq, AppID: 7, Err: api.ErrTransport}, locale.EN) || c.alert != "" {
		t.Error("reply for a post that was never sent should be dropped")
	}

	sent := c.start(7, "Game", locale.EN)
	if c.send() != sent || !c.posting {
		t.Fatal("send should mark the open thread as posting")
	}
	c.close()
	if c.posted(CommentPosted{Seq: sent, AppID: 7, Err: api.ErrTransport}, locale.EN) {
		t.Error("closed thread should not refetch")
	}
	if c.alert != locale.T(locale.EN, locale.CommentFailed) {
		t.Errorf("failed post should alert after close, got %q", c.alert)
	}
}

func TestReopenIgnoresPreviousThread(t *testing.T) {
	c := newCommentThread(500)
	first := c.start(1, "One", locale.EN)
	second := c.start(2, "Two", locale.EN)

	if c.loaded(CommentsLoaded{Seq: first, AppID: 1, Comments: []api.Comment{{Content: "one"}}}) {
		t.Error("reply for the previous thread should be dropped")
	}
	if !c.loaded(CommentsLoaded{Seq: second, AppID: 2, Comments: []api.Comment{{Content: "two"}}}) {
		t.Fatal("reply for the open thread should apply")
	}
	if len(c.items) != 1 || c.items[0].Content != "two" {
		t.Errorf("unexpected items %+v", c.items)
	}
}

func TestEscClosesComments(t *testing.T) {
	h := newHarness(&fakeBackend{results: portalResults()})
	a := openComments(t, h)

	a = press(t, a, keyEsc)
	if a.comments.open {
		t.Error("esc should close the modal")
	}
	if a.focus != focusResults {
		t.Error("closing the modal should keep result focus")
	}
}
