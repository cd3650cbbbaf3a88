package websearch

import "context"

// Reader retrieves the textual content of a web page.
type Reader interface {
	// Read returns the extracted plain-text or markdown content for the
	// URL, truncated to the reader's configured limit. The URL may be
	// schemeless; implementations normalize it.
	Read(ctx context.Context, url string) (string, error)
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs an HTTP GET and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar, ads) removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into its
	// Markdown representation.
	Convert(html string) (string, error)
}
