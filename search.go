package websearch

import "context"

// Result is a single entry returned by a search backend.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Engine is a concrete search backend that can process queries.
type Engine interface {
	// Name returns a short identifier for the backend, used in logs.
	Name() string

	// Search executes the query and returns results in backend-assigned
	// relevance order. An empty result list is a valid return.
	Search(ctx context.Context, query string) ([]Result, error)
}

// Searcher exposes the high-level search capability used by the pipeline.
type Searcher interface {
	// Search routes the query through the configured backends and returns
	// the first non-empty result set. Returns ENOBACKEND if every backend
	// fails or comes back empty.
	Search(ctx context.Context, query string) ([]Result, error)
}
