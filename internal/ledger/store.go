package ledger

import "context"

// Store is the append-only request ledger.
//
// Error Contract:
// - Get returns sentinel.ErrNotFound (wrapped) for an unknown request id.
// - List and ListByUser return entries most-recent-first, truncated to limit;
//   limit is assumed validated by the caller.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	Get(ctx context.Context, requestID string) (Entry, error)
	List(ctx context.Context, limit int) ([]Entry, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]Entry, error)
}
