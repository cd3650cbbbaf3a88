// Package retry decorates a websearch.Generator with bounded retry and
// exponential backoff for blocking completions. Streaming is deliberately
// never retried: a partial stream cannot be resumed, so a mid-stream failure
// propagates to the caller unchanged.
package retry

import (
	"context"
	"time"

	"github.com/fwojciec/websearch"
)

// SleepFunc waits for d or until the context is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Delays returns the backoff schedule for the given total attempt count:
// maxAttempts-1 delays starting at 1s and doubling (1s, 2s, 4s, ...).
func Delays(maxAttempts int) []time.Duration {
	if maxAttempts < 2 {
		return nil
	}
	delays := make([]time.Duration, maxAttempts-1)
	d := time.Second
	for i := range delays {
		delays[i] = d
		d *= 2
	}
	return delays
}

// Ensure Generator implements websearch.Generator at compile time.
var _ websearch.Generator = (*Generator)(nil)

// Generator wraps another Generator, retrying failed Complete calls.
type Generator struct {
	next   websearch.Generator
	delays []time.Duration
	sleep  SleepFunc
}

// Option configures a Generator.
type Option func(*Generator)

// WithDelays sets the backoff schedule. The number of attempts is
// len(delays)+1. An empty schedule means a single attempt.
func WithDelays(delays []time.Duration) Option {
	return func(g *Generator) {
		g.delays = delays
	}
}

// WithSleep replaces the waiting function, so tests can observe the
// schedule without real delays.
func WithSleep(sleep SleepFunc) Option {
	return func(g *Generator) {
		if sleep != nil {
			g.sleep = sleep
		}
	}
}

// NewGenerator wraps next with the default schedule of Delays(3).
func NewGenerator(next websearch.Generator, opts ...Option) *Generator {
	g := &Generator{
		next:   next,
		delays: Delays(3),
		sleep:  contextSleep,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func contextSleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Complete calls the wrapped generator, retrying on any failure with the
// configured backoff. After exhausting all attempts it returns an EINFERENCE
// error carrying the last failure.
func (g *Generator) Complete(ctx context.Context, prompt string) (string, error) {
	attempts := len(g.delays) + 1

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		text, err := g.next.Complete(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if attempt >= attempts-1 {
			break
		}
		if err := g.sleep(ctx, g.delays[attempt]); err != nil {
			return "", err
		}
	}

	return "", websearch.Errorf(websearch.EINFERENCE,
		"model call failed after %d attempts: %v", attempts, lastErr)
}

// Stream delegates without retry.
func (g *Generator) Stream(ctx context.Context, prompt string, emit websearch.EmitFunc) error {
	return g.next.Stream(ctx, prompt, emit)
}

// Ping delegates without retry.
func (g *Generator) Ping(ctx context.Context) error {
	return g.next.Ping(ctx)
}
