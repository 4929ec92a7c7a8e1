// Package api is the HTTP client for the GameHorizon recommendation service.
package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/abelbrown/horizon/internal/config"
	"github.com/abelbrown/horizon/internal/logging"
)

// maxBody caps how much of a response is read.
const maxBody = 4 << 20

// Options configures a Client.
type Options struct {
	BaseURL          string
	Timeout          time.Duration
	SearchPerMinute  int
	CommentPerMinute int
	BreakerFailures  uint32
	BreakerCooldown  time.Duration

	// HTTPClient overrides the default transport. Tests use httptest clients.
	HTTPClient *http.Client
}

// OptionsFrom maps the API section of the config file.
func OptionsFrom(cfg config.APIConfig) Options {
	return Options{
		BaseURL:          cfg.BaseURL,
		Timeout:          cfg.Timeout,
		SearchPerMinute:  cfg.SearchPerMinute,
		CommentPerMinute: cfg.CommentPerMinute,
		BreakerFailures:  cfg.BreakerFailures,
		BreakerCooldown:  cfg.BreakerCooldown,
	}
}

// Client talks to the recommendation API. Safe for concurrent use.
type Client struct {
	base    *url.URL
	http    *http.Client
	timeout time.Duration

	searchLimiter  *rate.Limiter
	commentLimiter *rate.Limiter
	breaker        *gobreaker.CircuitBreaker[*reply]
	log            *log.Logger
}

// reply is a completed HTTP exchange the breaker considered healthy.
type reply struct {
	status int
	body   []byte
}

// New creates a client. Zero-valued options fall back to config defaults.
func New(opts Options) (*Client, error) {
	def := config.Default().API
	if opts.BaseURL == "" {
		opts.BaseURL = def.BaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.SearchPerMinute <= 0 {
		opts.SearchPerMinute = def.SearchPerMinute
	}
	if opts.CommentPerMinute <= 0 {
		opts.CommentPerMinute = def.CommentPerMinute
	}
	if opts.BreakerFailures == 0 {
		opts.BreakerFailures = def.BreakerFailures
	}
	if opts.BreakerCooldown <= 0 {
		opts.BreakerCooldown = def.BreakerCooldown
	}

	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", opts.BaseURL)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}

	c := &Client{
		base:           base,
		http:           hc,
		timeout:        opts.Timeout,
		searchLimiter:  perMinute(opts.SearchPerMinute),
		commentLimiter: perMinute(opts.CommentPerMinute),
		log:            logging.WithPrefix("api"),
	}

	failures := opts.BreakerFailures
	c.breaker = gobreaker.NewCircuitBreaker[*reply](gobreaker.Settings{
		Name:        "horizon-api",
		MaxRequests: 1,
		Timeout:     opts.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
	return c, nil
}

func perMinute(n int) *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), n)
}

// BaseURL returns the service root.
func (c *Client) BaseURL() string {
	return c.base.String()
}

func (c *Client) endpoint(path string, q url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// do performs one request and decodes a 2xx JSON body into out. A JSON body
// with a non-empty "error" field becomes an *AppError, whatever the status.
func (c *Client) do(ctx context.Context, limiter *rate.Limiter, method, path string, q url.Values, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s %s: %w: %v", method, path, ErrRateLimited, err)
		}
	}

	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	reqID := uuid.NewString()
	start := time.Now()

	rep, err := c.breaker.Execute(func() (*reply, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, q), body)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-ID", reqID)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransport, err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
		if err != nil {
			return nil, fmt.Errorf("%w: read response: %v", ErrTransport, err)
		}
		// 5xx counts against the breaker; 4xx is the server working as intended.
		if resp.StatusCode >= 500 {
			return nil, fmt.Errorf("%w: status %d", ErrTransport, resp.StatusCode)
		}
		return &reply{status: resp.StatusCode, body: data}, nil
	})

	c.log.Debug("request", "id", reqID, "method", method, "path", path, "took", time.Since(start), "err", err)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%s %s: %w", method, path, ErrCircuitOpen)
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if msg := errorField(rep.body); msg != "" {
		return &AppError{Endpoint: path, Status: rep.status, Message: msg}
	}
	if rep.status < 200 || rep.status >= 300 {
		return fmt.Errorf("%s %s: %w: status %d", method, path, ErrTransport, rep.status)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(rep.body, out); err != nil {
		return fmt.Errorf("%s %s: %w: decode: %v", method, path, ErrTransport, err)
	}
	return nil
}

// errorField extracts {"error": "..."} from an object body.
func errorField(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ""
	}
	var env struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(trimmed, &env) != nil {
		return ""
	}
	return env.Error
}
