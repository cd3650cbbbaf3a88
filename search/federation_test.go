package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/websearch"
	"github.com/fwojciec/websearch/mock"
	"github.com/fwojciec/websearch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(name string, results []websearch.Result, err error, calls *[]string) *mock.Engine {
	return &mock.Engine{
		NameFn: func() string { return name },
		SearchFn: func(ctx context.Context, query string) ([]websearch.Result, error) {
			*calls = append(*calls, name)
			return results, err
		},
	}
}

func TestFederation_Search(t *testing.T) {
	t.Parallel()

	t.Run("first non-empty backend wins and later backends are never tried", func(t *testing.T) {
		t.Parallel()

		want := []websearch.Result{
			{Title: "one", URL: "https://one.example"},
			{Title: "two", URL: "https://two.example"},
		}

		var calls []string
		f, err := search.NewFederation([]websearch.Engine{
			newEngine("a", nil, errors.New("connection refused"), &calls),
			newEngine("b", nil, errors.New("HTTP 500"), &calls),
			newEngine("c", want, nil, &calls),
			newEngine("d", []websearch.Result{{Title: "never"}}, nil, &calls),
		})
		require.NoError(t, err)

		got, err := f.Search(context.Background(), "query")

		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, []string{"a", "b", "c"}, calls)
	})

	t.Run("empty result set counts as a failure", func(t *testing.T) {
		t.Parallel()

		var calls []string
		f, err := search.NewFederation([]websearch.Engine{
			newEngine("empty", []websearch.Result{}, nil, &calls),
			newEngine("full", []websearch.Result{{Title: "hit"}}, nil, &calls),
		})
		require.NoError(t, err)

		got, err := f.Search(context.Background(), "query")

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"empty", "full"}, calls)
	})

	t.Run("all backends failing yields ENOBACKEND", func(t *testing.T) {
		t.Parallel()

		var calls []string
		f, err := search.NewFederation([]websearch.Engine{
			newEngine("a", nil, errors.New("down"), &calls),
			newEngine("b", nil, nil, &calls),
		})
		require.NoError(t, err)

		_, err = f.Search(context.Background(), "query")

		require.Error(t, err)
		assert.Equal(t, websearch.ENOBACKEND, websearch.ErrorCode(err))
		assert.Equal(t, []string{"a", "b"}, calls)
	})

	t.Run("results are capped preserving backend order", func(t *testing.T) {
		t.Parallel()

		many := []websearch.Result{
			{Title: "1"}, {Title: "2"}, {Title: "3"}, {Title: "4"},
		}

		var calls []string
		f, err := search.NewFederation(
			[]websearch.Engine{newEngine("a", many, nil, &calls)},
			search.WithMaxResults(2),
		)
		require.NoError(t, err)

		got, err := f.Search(context.Background(), "query")

		require.NoError(t, err)
		assert.Equal(t, many[:2], got)
	})
}

func TestNewFederation_RequiresEngines(t *testing.T) {
	t.Parallel()

	_, err := search.NewFederation(nil)

	require.Error(t, err)
	assert.Equal(t, websearch.EINVALID, websearch.ErrorCode(err))

	_, err = search.NewFederation([]websearch.Engine{nil})
	require.Error(t, err)
}
