// Package ollama provides a websearch.Generator for Ollama (or any other
// server exposing an OpenAI-compatible chat completions API).
package ollama

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/fwojciec/websearch"
)

// DefaultBaseURL is Ollama's OpenAI-compatible endpoint.
const DefaultBaseURL = "http://localhost:11434/v1"

// Ensure Generator implements websearch.Generator at compile time.
var _ websearch.Generator = (*Generator)(nil)

// Generator wraps an OpenAI-compatible client. It performs single attempts
// only; bounded retry for Complete is layered on by retry.Generator.
type Generator struct {
	client  *openai.Client
	model   string
	baseURL string
	limiter *rate.Limiter
}

// Option configures a Generator.
type Option func(*Generator)

// WithBaseURL points the client at a non-default endpoint.
func WithBaseURL(u string) Option {
	return func(g *Generator) {
		if u != "" {
			g.baseURL = u
		}
	}
}

// WithStreamDelay paces streamed chunks: at most one chunk per d. Zero
// disables pacing. Presentation only; does not affect the chunk sequence.
func WithStreamDelay(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// NewGenerator creates a Generator for the given model.
func NewGenerator(model string, opts ...Option) *Generator {
	g := &Generator{
		model:   model,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(g)
	}

	// Ollama ignores the API key but the client requires a config value.
	config := openai.DefaultConfig("ollama")
	config.BaseURL = g.baseURL
	g.client = openai.NewClientWithConfig(config)

	return g
}

// Complete sends the prompt and blocks until the full response arrives.
func (g *Generator) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", websearch.Errorf(websearch.EINTERNAL, "model %q returned no choices", g.model)
	}
	return resp.Choices[0].Message.Content, nil
}

// Stream sends the prompt and emits response chunks as they arrive. There is
// no retry: a mid-stream failure aborts and the emitted prefix is not a
// valid answer.
func (g *Generator) Stream(ctx context.Context, prompt string, emit websearch.EmitFunc) error {
	stream, err := g.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Stream: true,
	})
	if err != nil {
		return websearch.Errorf(websearch.EINFERENCE, "starting stream: %v", err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return websearch.Errorf(websearch.EINFERENCE, "stream aborted: %v", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		chunk := resp.Choices[0].Delta.Content
		if chunk == "" {
			continue
		}

		if g.limiter != nil {
			if err := g.limiter.Wait(ctx); err != nil {
				return err
			}
		}
		if err := emit(chunk); err != nil {
			return err
		}
	}
}

// Ping lists the server's models to verify connectivity.
func (g *Generator) Ping(ctx context.Context) error {
	if _, err := g.client.ListModels(ctx); err != nil {
		return websearch.Errorf(websearch.EUNAVAILABLE, "cannot reach %s: %v", g.baseURL, err)
	}
	return nil
}
