package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/websearch"
	"github.com/fwojciec/websearch/mock"
	"github.com/fwojciec/websearch/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture wires a pipeline whose collaborators succeed by default; tests
// override individual mocks to exercise failure paths.
type fixture struct {
	generator *mock.Generator
	searcher  *mock.Searcher
	reader    *mock.Reader
	history   *mock.HistoryStore

	appended []websearch.HistoryEntry
}

func newFixture() *fixture {
	f := &fixture{}

	f.generator = &mock.Generator{
		CompleteFn: func(ctx context.Context, prompt string) (string, error) {
			if strings.Contains(prompt, "MOST RELEVANT") {
				return "Title: France\nURL: https://france.example/capital", nil
			}
			return "capital of France\n", nil
		},
		StreamFn: func(ctx context.Context, prompt string, emit websearch.EmitFunc) error {
			for _, chunk := range []string{"Paris ", "is the capital."} {
				if err := emit(chunk); err != nil {
					return err
				}
			}
			return nil
		},
	}
	f.searcher = &mock.Searcher{
		SearchFn: func(ctx context.Context, query string) ([]websearch.Result, error) {
			return []websearch.Result{
				{Title: "France", URL: "https://france.example/capital", Snippet: "Paris is the capital."},
				{Title: "Other", URL: "https://other.example", Snippet: "Unrelated."},
			}, nil
		},
	}
	f.reader = &mock.Reader{
		ReadFn: func(ctx context.Context, url string) (string, error) {
			return "Paris has been the capital of France since 508.", nil
		},
	}
	f.history = &mock.HistoryStore{
		AppendFn: func(entry websearch.HistoryEntry) error {
			f.appended = append(f.appended, entry)
			return nil
		},
		LoadFn: func() []websearch.HistoryEntry { return f.appended },
	}

	return f
}

func (f *fixture) pipeline() *pipeline.Pipeline {
	return &pipeline.Pipeline{
		Generator: f.generator,
		Searcher:  f.searcher,
		Reader:    f.reader,
		History:   f.history,
		Now: func() time.Time {
			return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		},
	}
}

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	t.Run("end to end with selection fallback", func(t *testing.T) {
		t.Parallel()

		f := newFixture()

		// Selection inference fails; the pipeline must fall back to the
		// first search result and still complete.
		complete := f.generator.CompleteFn
		f.generator.CompleteFn = func(ctx context.Context, prompt string) (string, error) {
			if strings.Contains(prompt, "MOST RELEVANT") {
				return "", errors.New("model unavailable")
			}
			return complete(ctx, prompt)
		}

		var streamed []string
		result, err := f.pipeline().Run(context.Background(), "What is the capital of France?", func(chunk string) error {
			streamed = append(streamed, chunk)
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, "capital of France", result.Query)
		assert.Equal(t, websearch.SelectedResult{
			Title: "France",
			URL:   "https://france.example/capital",
		}, result.Result)
		assert.Equal(t, "Paris is the capital.", result.Answer)
		assert.Equal(t, []string{"Paris ", "is the capital."}, streamed)

		require.Len(t, f.appended, 1)
		entry := f.appended[0]
		assert.Equal(t, "2026-08-30T12:00:00Z", entry.Timestamp)
		assert.Equal(t, "What is the capital of France?", entry.Question)
		assert.Equal(t, "capital of France", entry.Query)
		assert.Equal(t, result.Result, entry.Result)
	})

	t.Run("model-chosen selection is used when parseable", func(t *testing.T) {
		t.Parallel()

		f := newFixture()

		result, err := f.pipeline().Run(context.Background(), "What is the capital of France?", nil)

		require.NoError(t, err)
		assert.Equal(t, "France", result.Result.Title)
		assert.Equal(t, "https://france.example/capital", result.Result.URL)
	})

	t.Run("unparseable selection reply falls back to the first result", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		complete := f.generator.CompleteFn
		f.generator.CompleteFn = func(ctx context.Context, prompt string) (string, error) {
			if strings.Contains(prompt, "MOST RELEVANT") {
				return "I think the second one looks good.", nil
			}
			return complete(ctx, prompt)
		}

		result, err := f.pipeline().Run(context.Background(), "question", nil)

		require.NoError(t, err)
		assert.Equal(t, "France", result.Result.Title)
	})

	t.Run("empty question yields EINVALID", func(t *testing.T) {
		t.Parallel()

		f := newFixture()

		_, err := f.pipeline().Run(context.Background(), "   ", nil)

		require.Error(t, err)
		assert.Equal(t, websearch.EINVALID, websearch.ErrorCode(err))
	})

	t.Run("query generation failure ends the run before search", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		f.generator.CompleteFn = func(ctx context.Context, prompt string) (string, error) {
			return "", websearch.Errorf(websearch.EINFERENCE, "model call failed after 3 attempts")
		}
		searched := false
		f.searcher.SearchFn = func(ctx context.Context, query string) ([]websearch.Result, error) {
			searched = true
			return nil, nil
		}

		_, err := f.pipeline().Run(context.Background(), "question", nil)

		require.Error(t, err)
		assert.Equal(t, websearch.EINFERENCE, websearch.ErrorCode(err))
		assert.False(t, searched)
		assert.Empty(t, f.appended)
	})

	t.Run("search failure ends the run", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		f.searcher.SearchFn = func(ctx context.Context, query string) ([]websearch.Result, error) {
			return nil, websearch.Errorf(websearch.ENOBACKEND, "all backends failed")
		}

		_, err := f.pipeline().Run(context.Background(), "question", nil)

		require.Error(t, err)
		assert.Equal(t, websearch.ENOBACKEND, websearch.ErrorCode(err))
		assert.Empty(t, f.appended)
	})

	t.Run("content retrieval failure records no history", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		f.reader.ReadFn = func(ctx context.Context, url string) (string, error) {
			return "", websearch.Errorf(websearch.EFETCH, "reading %s: HTTP 502", url)
		}
		streamed := false
		f.generator.StreamFn = func(ctx context.Context, prompt string, emit websearch.EmitFunc) error {
			streamed = true
			return nil
		}

		_, err := f.pipeline().Run(context.Background(), "question", nil)

		require.Error(t, err)
		assert.Equal(t, websearch.EFETCH, websearch.ErrorCode(err))
		assert.Empty(t, f.appended)
		assert.False(t, streamed)
	})

	t.Run("history persistence failure does not fail the run", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		f.history.AppendFn = func(entry websearch.HistoryEntry) error {
			return errors.New("disk full")
		}

		result, err := f.pipeline().Run(context.Background(), "question", nil)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Answer)
	})

	t.Run("mid-stream failure surfaces after history was recorded", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		f.generator.StreamFn = func(ctx context.Context, prompt string, emit websearch.EmitFunc) error {
			_ = emit("partial ")
			return websearch.Errorf(websearch.EINFERENCE, "stream aborted")
		}

		_, err := f.pipeline().Run(context.Background(), "question", nil)

		require.Error(t, err)
		assert.Equal(t, websearch.EINFERENCE, websearch.ErrorCode(err))
		// The entry from stages 1-5 is kept.
		assert.Len(t, f.appended, 1)
	})

	t.Run("synthesis prompt carries question, query, title, and content", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		var prompt string
		f.generator.StreamFn = func(ctx context.Context, p string, emit websearch.EmitFunc) error {
			prompt = p
			return emit("answer")
		}

		_, err := f.pipeline().Run(context.Background(), "What is the capital of France?", nil)

		require.NoError(t, err)
		assert.Contains(t, prompt, "Original Question: What is the capital of France?")
		assert.Contains(t, prompt, "Search Query: capital of France")
		assert.Contains(t, prompt, "Source: France")
		assert.Contains(t, prompt, "Paris has been the capital of France since 508.")
	})
}
