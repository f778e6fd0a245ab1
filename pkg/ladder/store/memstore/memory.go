package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/ladder/pkg/ladder/internalerr"
	"github.com/cognicore/ladder/pkg/ladder/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu   sync.RWMutex
	runs map[string]store.Run
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{runs: make(map[string]store.Run)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveRun inserts or replaces a run, keyed by ID.
func (s *Store) SaveRun(ctx context.Context, r store.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := r
	cp.Sentences = append([]store.Sentence(nil), r.Sentences...)
	s.runs[r.ID] = cp
	return nil
}

// GetRun loads one run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.runs[id]
	if !ok {
		return store.Run{}, fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	cp := r
	cp.Sentences = append([]store.Sentence(nil), r.Sentences...)
	return cp, nil
}

// ListRuns returns run headers newest first. ULIDs sort by creation time,
// so ordering by ID matches ordering by CreatedAt.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]store.Run, 0, len(s.runs))
	for _, r := range s.runs {
		header := r
		header.Sentences = nil
		runs = append(runs, header)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].ID > runs[j].ID })
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}
