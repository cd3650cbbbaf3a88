// Package gemini provides a websearch.Generator backed by Google Gemini.
package gemini

import (
	"context"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/fwojciec/websearch"
)

// DefaultModel is used when the configured model is not a Gemini model name.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements websearch.Generator at compile time.
var _ websearch.Generator = (*Generator)(nil)

// Generator wraps a genai client. Single attempts only; retry for Complete
// is layered on by retry.Generator.
type Generator struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// Option configures a Generator.
type Option func(*Generator)

// WithStreamDelay paces streamed chunks: at most one chunk per d. Zero
// disables pacing.
func WithStreamDelay(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// NewGenerator creates a Generator using the given client and model.
func NewGenerator(client *genai.Client, model string, opts ...Option) *Generator {
	if model == "" {
		model = DefaultModel
	}
	g := &Generator{client: client, model: model}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func contents(prompt string) []*genai.Content {
	return []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
	}}
}

func generateConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}

// Complete sends the prompt and blocks until the full response arrives.
func (g *Generator) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", websearch.Errorf(websearch.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents(prompt), generateConfig())
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", websearch.Errorf(websearch.EINTERNAL, "gemini returned nil result")
	}
	return result.Text(), nil
}

// Stream sends the prompt and emits response chunks as they arrive.
func (g *Generator) Stream(ctx context.Context, prompt string, emit websearch.EmitFunc) error {
	if strings.TrimSpace(prompt) == "" {
		return websearch.Errorf(websearch.EINVALID, "prompt required")
	}

	for resp, err := range g.client.Models.GenerateContentStream(ctx, g.model, contents(prompt), generateConfig()) {
		if err != nil {
			return websearch.Errorf(websearch.EINFERENCE, "stream aborted: %v", err)
		}
		chunk := resp.Text()
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
	return nil
}

// Ping verifies the API is reachable by listing available models.
func (g *Generator) Ping(ctx context.Context) error {
	for _, err := range g.client.Models.All(ctx) {
		if err != nil {
			return websearch.Errorf(websearch.EUNAVAILABLE, "cannot reach gemini: %v", err)
		}
		break
	}
	return nil
}
