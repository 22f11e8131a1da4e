package ledger

import (
	"context"
	"fmt"
	"sync"

	"consentlens/pkg/platform/sentinel"
)

// InMemoryStore keeps ledger entries in process memory, keyed by request id,
// with a per-user index and a global insertion order for most-recent-first
// listings.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
	order   []string            // request ids, insertion order
	byUser  map[string][]string // user id -> request ids, insertion order
}

// NewInMemoryStore constructs an empty in-memory ledger.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		entries: make(map[string]Entry),
		byUser:  make(map[string][]string),
	}
}

func (s *InMemoryStore) Append(_ context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := entry.Request.RequestID
	if _, exists := s.entries[id]; exists {
		return fmt.Errorf("request %s already recorded: %w", id, sentinel.ErrConflict)
	}
	s.entries[id] = entry
	s.order = append(s.order, id)
	s.byUser[entry.Request.UserID] = append(s.byUser[entry.Request.UserID], id)
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, requestID string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if entry, ok := s.entries[requestID]; ok {
		return entry, nil
	}
	return Entry{}, fmt.Errorf("request %s: %w", requestID, sentinel.ErrNotFound)
}

func (s *InMemoryStore) List(_ context.Context, limit int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(s.order, limit), nil
}

func (s *InMemoryStore) ListByUser(_ context.Context, userID string, limit int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(s.byUser[userID], limit), nil
}

// collect walks ids newest-first and copies up to limit entries. Callers hold
// at least the read lock.
func (s *InMemoryStore) collect(ids []string, limit int) []Entry {
	if limit > len(ids) {
		limit = len(ids)
	}
	out := make([]Entry, 0, limit)
	for i := len(ids) - 1; i >= 0 && len(out) < limit; i-- {
		if entry, ok := s.entries[ids[i]]; ok {
			out = append(out, entry)
		}
	}
	return out
}
