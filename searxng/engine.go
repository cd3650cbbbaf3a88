// Package searxng provides a websearch.Engine backed by a single SearxNG
// instance. Federation across instances is handled by the search package.
package searxng

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/websearch"
)

// DefaultTimeout is the default per-request timeout.
const DefaultTimeout = 10 * time.Second

// userAgent mirrors a desktop browser; some public instances reject
// obviously non-browser clients.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// Ensure Engine implements websearch.Engine at compile time.
var _ websearch.Engine = (*Engine)(nil)

// Engine queries one SearxNG instance.
type Engine struct {
	endpoint string
	name     string
	client   *http.Client
	timeout  time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout sets the per-request timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.timeout = d
	}
}

// NewEngine creates an Engine for the given search endpoint URL
// (e.g. "https://searx.be/search").
func NewEngine(endpoint string, opts ...Option) *Engine {
	e := &Engine{
		endpoint: endpoint,
		name:     endpoint,
		timeout:  DefaultTimeout,
	}
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		e.name = u.Host
	}
	for _, opt := range opts {
		opt(e)
	}
	e.client = &http.Client{}
	return e
}

// Name returns the instance host, used in logs.
func (e *Engine) Name() string {
	return e.name
}

// response is the subset of the SearxNG JSON output we consume. Any other
// shape decodes to zero results and is treated as a backend failure upstream.
type response struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// Search issues a single GET against the instance and returns its results in
// the order the backend assigned. No retry; the federation layer moves on to
// the next instance on any error.
func (e *Engine) Search(ctx context.Context, query string) ([]websearch.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("categories", "general")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s: HTTP %d", e.name, resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%s: malformed response: %w", e.name, err)
	}

	results := make([]websearch.Result, 0, len(body.Results))
	for _, r := range body.Results {
		results = append(results, websearch.Result{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Content,
		})
	}
	return results, nil
}
