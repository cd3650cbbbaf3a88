// Package mock provides mock implementations of websearch interfaces for
// testing.
package mock

import (
	"context"

	"github.com/fwojciec/websearch"
)

var _ websearch.Generator = (*Generator)(nil)

// Generator is a mock implementation of websearch.Generator.
type Generator struct {
	CompleteFn func(ctx context.Context, prompt string) (string, error)
	StreamFn   func(ctx context.Context, prompt string, emit websearch.EmitFunc) error
	PingFn     func(ctx context.Context) error
}

func (g *Generator) Complete(ctx context.Context, prompt string) (string, error) {
	return g.CompleteFn(ctx, prompt)
}

func (g *Generator) Stream(ctx context.Context, prompt string, emit websearch.EmitFunc) error {
	return g.StreamFn(ctx, prompt, emit)
}

func (g *Generator) Ping(ctx context.Context) error {
	return g.PingFn(ctx)
}
