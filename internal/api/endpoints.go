package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/abelbrown/horizon/internal/game"
)

// commentTimeLayouts are tried in order; the server stores SQLite
// CURRENT_TIMESTAMP values in UTC.
var commentTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Surprise is a random anchor game plus recommendations built around it.
type Surprise struct {
	Anchor  game.Anchor         `json:"source"`
	Results []game.SearchResult `json:"results"`
}

// Comment is one entry of a game's comment thread.
type Comment struct {
	Content   string
	CreatedAt time.Time
}

// Health is the backend readiness report.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Ready reports whether the backend finished loading its models.
func (h Health) Ready() bool {
	return h.Status == "ready"
}

// Search fetches recommendations for a query, which may contain several
// "+"-joined titles. Filters are clamped before encoding.
func (c *Client) Search(ctx context.Context, query string, filters game.FilterSet) ([]game.SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)
	filters.Clamped().Encode(q)

	var resp struct {
		Results []game.SearchResult `json:"results"`
	}
	if err := c.do(ctx, c.searchLimiter, http.MethodGet, "/api/search", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Autocomplete returns title suggestions for a partial term.
func (c *Client) Autocomplete(ctx context.Context, term string) ([]string, error) {
	q := url.Values{}
	q.Set("q", term)

	var out []string
	if err := c.do(ctx, nil, http.MethodGet, "/api/autocomplete", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Surprise asks the server to pick a random well-rated game and recommend
// around it.
func (c *Client) Surprise(ctx context.Context) (Surprise, error) {
	var out Surprise
	if err := c.do(ctx, c.searchLimiter, http.MethodGet, "/api/surprise", nil, nil, &out); err != nil {
		return Surprise{}, err
	}
	return out, nil
}

// Comments returns the thread for a game in server order.
func (c *Client) Comments(ctx context.Context, appID int) ([]Comment, error) {
	q := url.Values{}
	q.Set("appid", strconv.Itoa(appID))

	var raw []struct {
		Content   string `json:"content"`
		CreatedAt string `json:"created_at"`
	}
	if err := c.do(ctx, nil, http.MethodGet, "/api/comments", q, nil, &raw); err != nil {
		return nil, err
	}

	out := make([]Comment, 0, len(raw))
	for _, r := range raw {
		out = append(out, Comment{Content: r.Content, CreatedAt: parseCommentTime(r.CreatedAt)})
	}
	return out, nil
}

// PostComment appends a comment to a game's thread.
func (c *Client) PostComment(ctx context.Context, appID int, content string) error {
	body := struct {
		AppID   int    `json:"appid"`
		Content string `json:"content"`
	}{AppID: appID, Content: content}

	return c.do(ctx, c.commentLimiter, http.MethodPost, "/api/comments", nil, body, nil)
}

// Health probes backend readiness. Failed initialization surfaces as *AppError.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var out Health
	if err := c.do(ctx, nil, http.MethodGet, "/api/health", nil, nil, &out); err != nil {
		return Health{}, err
	}
	return out, nil
}

func parseCommentTime(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range commentTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
