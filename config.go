package websearch

import (
	"encoding/json"
	"os"
	"time"
)

// Provider identifiers accepted by the "provider" configuration key.
const (
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
)

// Config holds all runtime settings. It is built once at startup by merging
// DefaultConfig with an optional override file and never mutated afterward;
// components receive it (or individual fields) through their constructors.
type Config struct {
	// Provider selects the inference backend: "ollama" (any OpenAI
	// compatible endpoint) or "gemini".
	Provider string `json:"provider"`

	// Model is the inference model identifier.
	Model string `json:"model"`

	// OllamaURL is the base URL of the OpenAI-compatible API.
	OllamaURL string `json:"ollama_url"`

	// SearxNGInstances is the ordered list of search backend endpoints.
	// Backends are tried in this order; the first non-empty response wins.
	SearxNGInstances []string `json:"searxng_instances"`

	// MaxResults caps how many search results are kept per query.
	MaxResults int `json:"max_results"`

	// TimeoutSeconds applies per outbound HTTP call.
	TimeoutSeconds int `json:"timeout"`

	// MaxRetries bounds inference retry attempts (Complete only).
	MaxRetries int `json:"max_retries"`

	// HistoryFile is the path of the persisted search history.
	HistoryFile string `json:"history_file"`

	// StreamingDelaySeconds paces streamed answer chunks. Presentation
	// only; zero disables pacing.
	StreamingDelaySeconds float64 `json:"streaming_delay"`

	// ReaderURL is the base URL of the content extraction service. When
	// empty, pages are fetched and extracted locally instead.
	ReaderURL string `json:"reader_url"`

	// MaxContentChars caps extracted page content before it is handed to
	// the model. Truncated content gets an explicit marker appended.
	MaxContentChars int `json:"max_content"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Provider:  ProviderOllama,
		Model:     "llama3",
		OllamaURL: "http://localhost:11434/v1",
		SearxNGInstances: []string{
			"https://search.inetol.net/search",
			"https://searx.be/search",
			"https://search.brave4u.com/search",
			"https://priv.au/search",
		},
		MaxResults:            8,
		TimeoutSeconds:        10,
		MaxRetries:            3,
		HistoryFile:           "search_history.json",
		StreamingDelaySeconds: 0.02,
		ReaderURL:             "https://r.jina.ai/",
		MaxContentChars:       10000,
	}
}

// LoadConfig merges an optional JSON override file over DefaultConfig.
// A missing file yields the defaults with no error. An unreadable or
// malformed file also yields the defaults, plus an error the caller may
// surface as a warning.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return DefaultConfig(), err
	}

	// Unmarshalling over the defaults value overrides only the keys the
	// file provides.
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

// HTTPTimeout returns the per-call timeout as a duration.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StreamDelay returns the inter-chunk pacing delay as a duration.
func (c Config) StreamDelay() time.Duration {
	return time.Duration(c.StreamingDelaySeconds * float64(time.Second))
}
