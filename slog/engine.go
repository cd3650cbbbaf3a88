// Package slog provides logging decorators for websearch interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/websearch"
)

// Ensure Engine implements websearch.Engine at compile time.
var _ websearch.Engine = (*Engine)(nil)

// Engine wraps a search engine with attempt logging.
type Engine struct {
	next   websearch.Engine
	logger *slog.Logger
}

// NewEngine creates a new logging Engine.
func NewEngine(next websearch.Engine, logger *slog.Logger) *Engine {
	return &Engine{next: next, logger: logger}
}

// Name delegates to the wrapped engine.
func (e *Engine) Name() string {
	return e.next.Name()
}

// Search delegates to the wrapped engine, logging the outcome and duration.
func (e *Engine) Search(ctx context.Context, query string) ([]websearch.Result, error) {
	begin := time.Now()
	results, err := e.next.Search(ctx, query)
	if err != nil {
		e.logger.Warn("search attempt failed",
			"engine", e.next.Name(),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Info("search attempt",
		"engine", e.next.Name(),
		"results", len(results),
		"duration", time.Since(begin),
	)
	return results, nil
}
