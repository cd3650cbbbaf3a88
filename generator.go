package websearch

import "context"

// EmitFunc receives one chunk of streamed model output. Returning an error
// cancels the stream.
type EmitFunc func(chunk string) error

// Generator produces text from a language model.
type Generator interface {
	// Complete sends the prompt and blocks until the full response arrives.
	Complete(ctx context.Context, prompt string) (string, error)

	// Stream sends the prompt and delivers the response incrementally,
	// calling emit once per chunk in arrival order. A mid-stream failure
	// returns an error and the already-emitted prefix must not be treated
	// as a complete answer.
	Stream(ctx context.Context, prompt string, emit EmitFunc) error

	// Ping verifies the model backend is reachable. Called once at startup
	// before any pipeline run.
	Ping(ctx context.Context) error
}
