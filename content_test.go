package websearch_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/websearch"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"adds https to schemeless URL", "example.com/page", "https://example.com/page"},
		{"keeps https", "https://example.com", "https://example.com"},
		{"keeps http", "http://example.com", "http://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, websearch.NormalizeURL(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("content over the limit is cut and marked", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("a", 15000)
		got := websearch.Truncate(content, 10000)

		assert.Equal(t, 10000+len(websearch.TruncationMarker), len(got))
		assert.Equal(t, content[:10000], strings.TrimSuffix(got, websearch.TruncationMarker))
		assert.True(t, strings.HasSuffix(got, websearch.TruncationMarker))
	})

	t.Run("content at the limit is untouched", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("b", 100)
		assert.Equal(t, content, websearch.Truncate(content, 100))
	})

	t.Run("non-positive limit disables truncation", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("c", 100)
		assert.Equal(t, content, websearch.Truncate(content, 0))
	})

	t.Run("limit counts characters, not bytes", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("é", 15000)
		got := websearch.Truncate(content, 10000)

		body := strings.TrimSuffix(got, websearch.TruncationMarker)
		assert.Equal(t, 10000, utf8.RuneCountInString(body))
		assert.True(t, utf8.ValidString(got))
	})

	t.Run("never splits a multi-byte character at the boundary", func(t *testing.T) {
		t.Parallel()

		got := websearch.Truncate(strings.Repeat("é", 5000), 4999)
		assert.True(t, utf8.ValidString(got))
	})
}

func TestCutRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exactly at limit", "hello", 5, "hello"},
		{"cut ascii", "hello", 3, "hel"},
		{"cut multi-byte on rune boundary", "ééé", 2, "éé"},
		{"zero limit", "hello", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, websearch.CutRunes(tt.in, tt.limit))
		})
	}
}
