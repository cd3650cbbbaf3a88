// Package jina provides a websearch.Reader that delegates retrieval and
// content extraction to a Jina-style reader service: GET {base}{url} returns
// the page as plain text.
package jina

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/websearch"
)

// DefaultBaseURL is the public Jina Reader endpoint.
const DefaultBaseURL = "https://r.jina.ai/"

// DefaultMaxContent caps returned content when no explicit limit is given.
const DefaultMaxContent = 10000

// Ensure Reader implements websearch.Reader at compile time.
var _ websearch.Reader = (*Reader)(nil)

// Reader fetches extracted page text through a reader service. No retry at
// this layer; a failed read fails the pipeline run.
type Reader struct {
	baseURL    string
	client     *http.Client
	timeout    time.Duration
	maxContent int
}

// Option configures a Reader.
type Option func(*Reader)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Reader) {
		r.timeout = d
	}
}

// WithMaxContent caps the returned content length. Defaults to
// DefaultMaxContent.
func WithMaxContent(n int) Option {
	return func(r *Reader) {
		if n > 0 {
			r.maxContent = n
		}
	}
}

// NewReader creates a Reader against the given service base URL; an empty
// base falls back to DefaultBaseURL.
func NewReader(baseURL string, opts ...Option) *Reader {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	r := &Reader{
		baseURL:    baseURL,
		timeout:    10 * time.Second,
		maxContent: DefaultMaxContent,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.client = &http.Client{Timeout: r.timeout}
	return r
}

// Read fetches the extracted text for the target URL, truncated to the
// configured limit. Schemeless URLs get https:// prefixed first.
func (r *Reader) Read(ctx context.Context, target string) (string, error) {
	target = websearch.NormalizeURL(target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+target, nil)
	if err != nil {
		return "", websearch.Errorf(websearch.EFETCH, "building reader request for %s: %v", target, err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", websearch.Errorf(websearch.EFETCH, "reading %s: %v", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", websearch.Errorf(websearch.EFETCH, "reading %s: HTTP %d", target, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", websearch.Errorf(websearch.EFETCH, "reading %s: %v", target, err)
	}

	content := strings.TrimSpace(string(body))
	return websearch.Truncate(content, r.maxContent), nil
}
