package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/fwojciec/websearch"
	"github.com/fwojciec/websearch/fs"
	"github.com/fwojciec/websearch/gemini"
	"github.com/fwojciec/websearch/htmltomarkdown"
	wshttp "github.com/fwojciec/websearch/http"
	"github.com/fwojciec/websearch/jina"
	"github.com/fwojciec/websearch/ollama"
	"github.com/fwojciec/websearch/pipeline"
	"github.com/fwojciec/websearch/retry"
	"github.com/fwojciec/websearch/search"
	"github.com/fwojciec/websearch/searxng"
	wsslog "github.com/fwojciec/websearch/slog"
	"github.com/fwojciec/websearch/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("websearch"),
		kong.Description("Answer questions using web search and a local language model"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := websearch.LoadConfig(cli.ConfigFile)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: could not load %s, using defaults: %v\n", cli.ConfigFile, err)
	}
	if cli.Model != "" {
		cfg.Model = cli.Model
	}

	history := fs.NewHistoryStore(cfg.HistoryFile)

	// Dump flags exit before any network setup.
	if cli.History {
		printHistory(stdout, history.Load())
		return nil
	}
	if cli.ShowConfig {
		printConfig(stdout, cfg)
		return nil
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	generator, err := newGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	if err := generator.Ping(ctx); err != nil {
		if cfg.Provider == websearch.ProviderOllama {
			fmt.Fprintln(stderr, "Hint: make sure Ollama is running: ollama serve")
		}
		return err
	}

	engines := make([]websearch.Engine, 0, len(cfg.SearxNGInstances))
	for _, instance := range cfg.SearxNGInstances {
		engine := searxng.NewEngine(instance, searxng.WithTimeout(cfg.HTTPTimeout()))
		engines = append(engines, wsslog.NewEngine(engine, logger))
	}
	federation, err := search.NewFederation(engines,
		search.WithMaxResults(cfg.MaxResults),
		search.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	var reader websearch.Reader
	if cfg.ReaderURL != "" {
		reader = jina.NewReader(cfg.ReaderURL,
			jina.WithTimeout(cfg.HTTPTimeout()),
			jina.WithMaxContent(cfg.MaxContentChars),
		)
	} else {
		fetcher := wshttp.NewFetcher(wshttp.WithTimeout(cfg.HTTPTimeout()))
		defer fetcher.Close()
		reader = &pipeline.PageReader{
			Fetcher:    fetcher,
			Extractor:  trafilatura.NewExtractor(),
			Converter:  htmltomarkdown.NewConverter(),
			MaxContent: cfg.MaxContentChars,
		}
	}

	pipe := &pipeline.Pipeline{
		Generator: generator,
		Searcher:  federation,
		Reader:    wsslog.NewReader(reader, logger),
		History:   history,
		Logger:    logger,
	}

	if cli.Question != "" {
		return runOnce(ctx, pipe, cli.Question, stdout)
	}
	return runInteractive(ctx, pipe, history, cfg, stdin, stdout)
}

// newGenerator builds the configured inference backend, wrapped with bounded
// retry for blocking completions.
func newGenerator(ctx context.Context, cfg websearch.Config) (websearch.Generator, error) {
	var base websearch.Generator
	switch cfg.Provider {
	case websearch.ProviderGemini:
		client, err := genai.NewClient(ctx, nil)
		if err != nil {
			return nil, err
		}
		base = gemini.NewGenerator(client, cfg.Model, gemini.WithStreamDelay(cfg.StreamDelay()))
	case websearch.ProviderOllama, "":
		base = ollama.NewGenerator(cfg.Model,
			ollama.WithBaseURL(cfg.OllamaURL),
			ollama.WithStreamDelay(cfg.StreamDelay()),
		)
	default:
		return nil, websearch.Errorf(websearch.EINVALID, "unknown provider %q", cfg.Provider)
	}

	return retry.NewGenerator(base, retry.WithDelays(retry.Delays(cfg.MaxRetries))), nil
}

// runOnce executes a single pipeline run and streams the answer to stdout.
func runOnce(ctx context.Context, pipe *pipeline.Pipeline, question string, stdout io.Writer) error {
	result, err := pipe.Run(ctx, question, func(chunk string) error {
		_, err := io.WriteString(stdout, chunk)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\n\nSource: %s (%s)\n", result.Result.Title, result.Result.URL)
	return nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Question   string `arg:"" optional:"" help:"Question to answer; omit to start the interactive loop"`
	Model      string `short:"m" help:"Override the configured inference model"`
	ConfigFile string `default:"config.json" help:"Path to the configuration file"`
	History    bool   `help:"Show search history and exit"`
	ShowConfig bool   `name:"config" help:"Show current configuration and exit"`
}
