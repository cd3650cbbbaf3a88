package mock

import (
	"context"

	"github.com/fwojciec/websearch"
)

var _ websearch.Engine = (*Engine)(nil)

// Engine is a mock implementation of websearch.Engine.
type Engine struct {
	NameFn   func() string
	SearchFn func(ctx context.Context, query string) ([]websearch.Result, error)
}

func (e *Engine) Name() string {
	return e.NameFn()
}

func (e *Engine) Search(ctx context.Context, query string) ([]websearch.Result, error) {
	return e.SearchFn(ctx, query)
}

var _ websearch.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of websearch.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) ([]websearch.Result, error)
}

func (s *Searcher) Search(ctx context.Context, query string) ([]websearch.Result, error) {
	return s.SearchFn(ctx, query)
}
