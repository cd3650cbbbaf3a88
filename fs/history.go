// Package fs provides file-based storage for search history.
package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/websearch"
)

// Ensure HistoryStore implements websearch.HistoryStore at compile time.
var _ websearch.HistoryStore = (*HistoryStore)(nil)

// HistoryStore persists the history log as a single JSON array file. The
// full log is rewritten on every append via write-to-temp-then-rename, so a
// partial write never corrupts prior entries. A mutex enforces the
// single-writer discipline for concurrent pipeline runs sharing one store.
type HistoryStore struct {
	path string

	mu      sync.Mutex
	entries []websearch.HistoryEntry
}

// NewHistoryStore creates a store backed by the file at path, loading any
// previously persisted entries. A missing or malformed file yields an empty
// log.
func NewHistoryStore(path string) *HistoryStore {
	s := &HistoryStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var entries []websearch.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return s
	}
	s.entries = entries

	return s
}

// Load returns the entries in insertion order.
func (s *HistoryStore) Load() []websearch.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]websearch.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Append adds an entry, trims the log to the most recent
// websearch.HistoryLimit entries, and rewrites the backing file. A returned
// error means the in-memory log was updated but persistence failed; callers
// treat it as a warning.
func (s *HistoryStore) Append(entry websearch.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	if n := len(s.entries); n > websearch.HistoryLimit {
		s.entries = s.entries[n-websearch.HistoryLimit:]
	}

	return s.persist()
}

func (s *HistoryStore) persist() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
