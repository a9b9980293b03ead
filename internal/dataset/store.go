// Package dataset owns the session-scoped working table of normalized
// purchase-order records.
package dataset

import (
	"sync"

	"vendoriq/internal/ingest"
	"vendoriq/internal/models"
)

// Store is the accumulated dataset for one session. Append, Replace and
// Clear are its only mutators; each produces a complete new dataset, never a
// field-level patch. Operations are total and atomic relative to the next
// read.
type Store struct {
	mu   sync.Mutex
	data models.Dataset
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append concatenates incoming records after the existing dataset, keeping
// the relative order of both, and re-applies record cleaning to the union.
// Cleaning is idempotent, so appending already-normalized data is safe.
func (s *Store) Append(in *models.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Records = append(s.data.Records, in.Records...)
	s.data.ExtraColumns = mergeColumns(s.data.ExtraColumns, in.ExtraColumns)
	for i := range s.data.Records {
		ingest.CleanRecord(&s.data.Records[i])
	}
}

// Replace discards the existing dataset entirely.
func (s *Store) Replace(in *models.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = models.Dataset{
		Records:      append([]models.Record(nil), in.Records...),
		ExtraColumns: append([]string(nil), in.ExtraColumns...),
	}
	for i := range s.data.Records {
		ingest.CleanRecord(&s.data.Records[i])
	}
}

// Clear resets the store to an empty dataset.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = models.Dataset{}
}

// Snapshot returns a copy of the current dataset. The record slice is
// caller-owned; queries and exports read it without further locking.
func (s *Store) Snapshot() *models.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &models.Dataset{
		Records:      append([]models.Record(nil), s.data.Records...),
		ExtraColumns: append([]string(nil), s.data.ExtraColumns...),
	}
}

// Len returns the current record count.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.Records)
}

// mergeColumns appends columns from b that a does not already have,
// preserving first-seen order.
func mergeColumns(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	for _, c := range a {
		seen[c] = true
	}
	for _, c := range b {
		if !seen[c] {
			seen[c] = true
			a = append(a, c)
		}
	}
	return a
}
