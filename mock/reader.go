package mock

import (
	"context"

	"github.com/fwojciec/websearch"
)

var _ websearch.Reader = (*Reader)(nil)

// Reader is a mock implementation of websearch.Reader.
type Reader struct {
	ReadFn func(ctx context.Context, url string) (string, error)
}

func (r *Reader) Read(ctx context.Context, url string) (string, error) {
	return r.ReadFn(ctx, url)
}

var _ websearch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of websearch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ websearch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of websearch.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*websearch.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*websearch.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ websearch.Converter = (*Converter)(nil)

// Converter is a mock implementation of websearch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
