package websearch

// HistoryLimit is the maximum number of entries retained in the history log.
// Appending beyond the limit evicts the oldest entries first.
const HistoryLimit = 50

// SelectedResult is the single search result chosen for a pipeline run.
type SelectedResult struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// HistoryEntry records the provenance of one successful pipeline run.
// Immutable once written.
type HistoryEntry struct {
	Timestamp string         `json:"timestamp"`
	Question  string         `json:"question"`
	Query     string         `json:"query"`
	Result    SelectedResult `json:"result"`
}

// HistoryStore owns the ordered, size-bounded log of past searches.
type HistoryStore interface {
	// Load returns the persisted entries in insertion order. A missing or
	// malformed backing file yields an empty slice, never an error.
	Load() []HistoryEntry

	// Append adds an entry, trims the log to the most recent HistoryLimit
	// entries, and persists the full log. The returned error reports a
	// persistence failure; callers treat it as a warning, not a fatal
	// condition.
	Append(entry HistoryEntry) error
}
