// Package trafilatura extracts the main content of a web page, stripping
// navigation, ads, and other boilerplate before the text is handed to the
// model.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"github.com/fwojciec/websearch"
)

// Ensure Extractor implements websearch.Extractor at compile time.
var _ websearch.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and main content.
// Fallback extraction is enabled so pages trafilatura's primary heuristics
// reject still yield content when readability can handle them.
func (e *Extractor) Extract(rawHTML string) (*websearch.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, websearch.Errorf(websearch.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		contentHTML = buf.String()
	}

	return &websearch.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}
