package profile

import (
	"context"
	"fmt"
	"sync"

	"consentlens/pkg/platform/sentinel"
)

// Error Contract:
// All store methods follow this error pattern:
// - Return ErrNotFound when the requested profile does not exist
// - Return nil for successful operations

// InMemoryStore holds user profiles in process memory.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewInMemoryStore constructs an empty in-memory profile store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[string]Profile)}
}

func (s *InMemoryStore) Put(_ context.Context, p Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.UserID] = p
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, userID string) (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.profiles[userID]; ok {
		return p, nil
	}
	return Profile{}, fmt.Errorf("profile %s: %w", userID, sentinel.ErrNotFound)
}

// Seed installs the demo users so the system is explorable out of the box.
func (s *InMemoryStore) Seed(ctx context.Context) error {
	users := []Profile{
		{
			UserID:          "user_1",
			PurchaseHistory: []string{"laptop", "wireless mouse", "mechanical keyboard", "monitor"},
			Preferences:     map[string]string{"theme": "dark", "language": "en", "notifications": "enabled"},
			Activity:        []string{"page_view:home", "search:python", "view_product:laptop", "add_to_cart:mouse"},
		},
		{
			UserID:          "user_2",
			PurchaseHistory: []string{"headphones", "webcam", "microphone"},
			Preferences:     map[string]string{"theme": "light", "language": "es"},
			Activity:        []string{"page_view:products", "search:audio", "view_product:headphones"},
		},
	}
	for _, u := range users {
		if err := s.Put(ctx, u); err != nil {
			return err
		}
	}
	return nil
}
