package pipeline

import (
	"context"

	"github.com/fwojciec/websearch"
)

// Ensure PageReader implements websearch.Reader at compile time.
var _ websearch.Reader = (*PageReader)(nil)

// PageReader is the local content path used when no reader service is
// configured: fetch the raw HTML, extract the main content, and convert it
// to Markdown.
type PageReader struct {
	Fetcher   websearch.Fetcher
	Extractor websearch.Extractor
	Converter websearch.Converter

	// MaxContent caps the returned content length; non-positive disables
	// truncation.
	MaxContent int
}

// Read fetches and extracts the page at the given URL. Any stage failure
// yields an EFETCH error; there is no retry at this layer.
func (r *PageReader) Read(ctx context.Context, target string) (string, error) {
	target = websearch.NormalizeURL(target)

	rawHTML, err := r.Fetcher.Fetch(ctx, target)
	if err != nil {
		return "", websearch.Errorf(websearch.EFETCH, "fetching %s: %v", target, err)
	}

	extracted, err := r.Extractor.Extract(rawHTML)
	if err != nil {
		return "", websearch.Errorf(websearch.EFETCH, "extracting %s: %v", target, err)
	}
	if extracted.ContentHTML == "" {
		return "", websearch.Errorf(websearch.EFETCH, "no main content found at %s", target)
	}

	markdown, err := r.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return "", websearch.Errorf(websearch.EFETCH, "converting %s: %v", target, err)
	}

	return websearch.Truncate(markdown, r.MaxContent), nil
}
