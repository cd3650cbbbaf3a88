package mock

import "github.com/fwojciec/websearch"

var _ websearch.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is a mock implementation of websearch.HistoryStore.
type HistoryStore struct {
	LoadFn   func() []websearch.HistoryEntry
	AppendFn func(entry websearch.HistoryEntry) error
}

func (s *HistoryStore) Load() []websearch.HistoryEntry {
	return s.LoadFn()
}

func (s *HistoryStore) Append(entry websearch.HistoryEntry) error {
	return s.AppendFn(entry)
}
