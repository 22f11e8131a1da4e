package consent

import "context"

// Store persists the append-only consent event log.
//
// Error Contract:
// - Append returns nil on success; the event is recorded atomically or not at all.
// - ListByUser returns the user's events ordered by timestamp ascending with
//   insertion order breaking ties, and an empty slice (not an error) for a
//   user with no events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByUser(ctx context.Context, userID string) ([]Event, error)
}
