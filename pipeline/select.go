package pipeline

import (
	"strings"

	"github.com/fwojciec/websearch"
)

// ParseSelection extracts the "Title:" / "URL:" pair from a model reply.
// Prefix matching is case-sensitive and the first occurrence of each field
// wins. Model replies are free text, so parsing is best-effort; the caller
// falls back to the first search result when ok is false.
func ParseSelection(response string) (selected websearch.SelectedResult, ok bool) {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)

		if rest, found := strings.CutPrefix(line, "Title:"); found && selected.Title == "" {
			selected.Title = strings.TrimSpace(rest)
		}
		if rest, found := strings.CutPrefix(line, "URL:"); found && selected.URL == "" {
			selected.URL = strings.TrimSpace(rest)
		}
	}

	if selected.Title == "" || selected.URL == "" {
		return websearch.SelectedResult{}, false
	}
	return selected, true
}
