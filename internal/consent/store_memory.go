package consent

import (
	"context"
	"sort"
	"sync"
)

// InMemoryStore keeps the consent event log in process memory. State lives
// for the process lifetime only; durability is an external-collaborator swap.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[string][]Event
}

// NewInMemoryStore constructs an empty in-memory consent event store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[string][]Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.UserID] = append(s.events[event.UserID], event)
	return nil
}

func (s *InMemoryStore) ListByUser(_ context.Context, userID string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]Event{}, s.events[userID]...)
	// Appends happen in timestamp order under the lock, but the contract is
	// timestamp ascending with insertion order as tiebreak, so sort stably.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}
