package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/websearch"
	"github.com/fwojciec/websearch/pipeline"
)

const banner = `websearch: intelligent web search assistant

Ask a question and get an answer synthesized from live web results.
Type 'history' to see recent searches, 'config' to see settings,
'quit' to exit.
`

// runInteractive reads questions from stdin until EOF, an exit command, or
// context cancellation. A failed run reports its stage error and the loop
// accepts the next question with a fresh pipeline run.
func runInteractive(ctx context.Context, pipe *pipeline.Pipeline, history websearch.HistoryStore, cfg websearch.Config, stdin io.Reader, stdout io.Writer) error {
	fmt.Fprint(stdout, banner+"\n")

	// Stdin is read on its own goroutine so an interrupt exits the loop
	// without waiting for the next line.
	lines := make(chan string)
	scanner := bufio.NewScanner(stdin)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(stdout, "? ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(stdout, "\nGoodbye!")
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(stdout)
				return scanner.Err()
			}
			line = l
		}

		question := strings.TrimSpace(line)
		if question == "" {
			continue
		}

		switch strings.ToLower(question) {
		case "quit", "exit", "q":
			fmt.Fprintln(stdout, "Goodbye!")
			return nil
		case "history":
			printHistory(stdout, history.Load())
			continue
		case "config":
			printConfig(stdout, cfg)
			continue
		}

		result, err := pipe.Run(ctx, question, func(chunk string) error {
			_, err := io.WriteString(stdout, chunk)
			return err
		})
		if err != nil {
			if ctx.Err() != nil {
				fmt.Fprintln(stdout, "\nGoodbye!")
				return nil
			}
			fmt.Fprintf(stdout, "Error: %s\n", websearch.ErrorMessage(err))
			continue
		}

		fmt.Fprintf(stdout, "\n\nSource: %s (%s)\n", result.Result.Title, result.Result.URL)
	}
}

// printHistory shows the most recent searches, newest last.
func printHistory(w io.Writer, entries []websearch.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No search history found")
		return
	}

	fmt.Fprintln(w, "Recent searches:")
	if len(entries) > 10 {
		entries = entries[len(entries)-10:]
	}
	for i, entry := range entries {
		stamp := entry.Timestamp
		if t, err := time.Parse(time.RFC3339, entry.Timestamp); err == nil {
			stamp = t.Format("01/02 15:04")
		}
		question := entry.Question
		if cut := websearch.CutRunes(question, 50); cut != question {
			question = cut + "..."
		}
		fmt.Fprintf(w, "%2d. [%s] %s\n", i+1, stamp, question)
	}
}

// printConfig shows the effective settings.
func printConfig(w io.Writer, cfg websearch.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintf(w, "  Provider:        %s\n", cfg.Provider)
	fmt.Fprintf(w, "  Model:           %s\n", cfg.Model)
	fmt.Fprintf(w, "  Search backends: %d instances\n", len(cfg.SearxNGInstances))
	fmt.Fprintf(w, "  Max results:     %d\n", cfg.MaxResults)
	fmt.Fprintf(w, "  Timeout:         %ds\n", cfg.TimeoutSeconds)
	fmt.Fprintf(w, "  Max retries:     %d\n", cfg.MaxRetries)
	fmt.Fprintf(w, "  History file:    %s\n", cfg.HistoryFile)
	fmt.Fprintf(w, "  Reader URL:      %s\n", cfg.ReaderURL)
}
