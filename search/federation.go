// Package search implements ordered failover across search backends.
package search

import (
	"context"
	"log/slog"

	"github.com/fwojciec/websearch"
)

// DefaultMaxResults caps the result set when no explicit limit is given.
const DefaultMaxResults = 8

// Ensure Federation implements websearch.Searcher at compile time.
var _ websearch.Searcher = (*Federation)(nil)

// Federation routes queries through an ordered list of engines. Each engine
// gets exactly one attempt per query; the first non-empty result set wins.
// The order is static per query, derived from configuration. No health or
// ranking memory is kept between calls.
type Federation struct {
	engines    []websearch.Engine
	maxResults int
	logger     *slog.Logger
}

// Option configures a Federation.
type Option func(*Federation)

// WithMaxResults caps how many results a query returns. Backend order is
// preserved through truncation.
func WithMaxResults(n int) Option {
	return func(f *Federation) {
		if n > 0 {
			f.maxResults = n
		}
	}
}

// WithLogger sets the logger for per-engine attempt outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Federation) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFederation constructs a Federation over the given engines, tried in
// slice order. At least one engine is required.
func NewFederation(engines []websearch.Engine, opts ...Option) (*Federation, error) {
	cleaned := make([]websearch.Engine, 0, len(engines))
	for _, e := range engines {
		if e != nil {
			cleaned = append(cleaned, e)
		}
	}
	if len(cleaned) == 0 {
		return nil, websearch.Errorf(websearch.EINVALID, "federation requires at least one engine")
	}

	f := &Federation{
		engines:    cleaned,
		maxResults: DefaultMaxResults,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Search tries each engine in order and returns up to the configured maximum
// number of results from the first engine that produces any. A failed or
// empty engine is skipped without retry. Returns ENOBACKEND when every
// engine failed or came back empty.
func (f *Federation) Search(ctx context.Context, query string) ([]websearch.Result, error) {
	for _, engine := range f.engines {
		results, err := engine.Search(ctx, query)
		if err != nil {
			f.logger.Warn("search backend failed, trying next",
				"engine", engine.Name(),
				"error", err,
			)
			continue
		}
		if len(results) == 0 {
			f.logger.Warn("search backend returned no results, trying next",
				"engine", engine.Name(),
			)
			continue
		}

		f.logger.Info("search succeeded",
			"engine", engine.Name(),
			"results", len(results),
		)
		if len(results) > f.maxResults {
			results = results[:f.maxResults]
		}
		return results, nil
	}

	return nil, websearch.Errorf(websearch.ENOBACKEND,
		"all %d search backends failed or returned no results", len(f.engines))
}
