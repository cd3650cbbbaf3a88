// Package pipeline composes the search assistant's collaborators into the
// end-to-end flow: optimize the question into a query, search the federated
// backends, select the best result, retrieve its content, record history,
// and stream a synthesized answer.
package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/websearch"
)

// Pipeline runs one question through all stages. Control flow is strictly
// linear; a stage failure short-circuits the rest of the run. Fields are
// required unless noted.
type Pipeline struct {
	Generator websearch.Generator
	Searcher  websearch.Searcher
	Reader    websearch.Reader
	History   websearch.HistoryStore

	// Logger receives stage progress and the history-persistence warning.
	// Optional; nil discards.
	Logger *slog.Logger

	// Now is the clock used for history timestamps. Optional; nil means
	// time.Now.
	Now func() time.Time
}

// RunResult is the outcome of a successful pipeline run.
type RunResult struct {
	// Query is the optimized search query derived from the question.
	Query string

	// Result is the search result the answer was synthesized from.
	Result websearch.SelectedResult

	// Answer is the full synthesized answer (the concatenation of all
	// streamed chunks).
	Answer string
}

// Run executes the pipeline for one question. Answer chunks are surfaced
// incrementally through emit (which may be nil). The returned error carries
// a stage-specific code: EINFERENCE (query optimization or synthesis),
// ENOBACKEND (search), or EFETCH (content retrieval).
//
// History is recorded after content retrieval succeeds and before synthesis
// starts, so a synthesis failure never rolls back the entry, and a retrieval
// failure never records one. A history persistence failure is logged as a
// warning and does not fail the run.
func (p *Pipeline) Run(ctx context.Context, question string, emit websearch.EmitFunc) (*RunResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, websearch.Errorf(websearch.EINVALID, "question required")
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// Stage 1: query optimization.
	logger.Info("optimizing search query")
	query, err := p.Generator.Complete(ctx, QueryPrompt(question))
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	logger.Info("search query generated", "query", query)

	// Stage 2: federated search.
	results, err := p.Searcher.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	// Stage 3: result selection. Never fails once results exist.
	selected := p.selectResult(ctx, question, query, results)
	logger.Info("result selected", "title", selected.Title, "url", selected.URL)

	// Stage 4: content retrieval.
	content, err := p.Reader.Read(ctx, selected.URL)
	if err != nil {
		return nil, err
	}

	// Stage 5: history record. Best-effort durability.
	now := p.Now
	if now == nil {
		now = time.Now
	}
	entry := websearch.HistoryEntry{
		Timestamp: now().Format(time.RFC3339),
		Question:  question,
		Query:     query,
		Result:    selected,
	}
	if err := p.History.Append(entry); err != nil {
		logger.Warn("could not save history", "error", err)
	}

	// Stage 6: answer synthesis.
	var answer strings.Builder
	collect := func(chunk string) error {
		answer.WriteString(chunk)
		if emit == nil {
			return nil
		}
		return emit(chunk)
	}
	if err := p.Generator.Stream(ctx, SynthesisPrompt(question, query, selected.Title, content), collect); err != nil {
		return nil, err
	}

	return &RunResult{
		Query:  query,
		Result: selected,
		Answer: answer.String(),
	}, nil
}

// selectResult asks the model to pick the most relevant result. A failed
// call or an unparseable reply falls back deterministically to the first
// result, so a non-empty result set always yields a selection.
func (p *Pipeline) selectResult(ctx context.Context, question, query string, results []websearch.Result) websearch.SelectedResult {
	resp, err := p.Generator.Complete(ctx, SelectionPrompt(question, query, results))
	if err == nil {
		if selected, ok := ParseSelection(resp); ok {
			return selected
		}
	}
	return websearch.SelectedResult{
		Title: results[0].Title,
		URL:   results[0].URL,
	}
}
