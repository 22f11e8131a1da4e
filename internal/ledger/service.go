package ledger

import (
	"context"
	"errors"
	"time"

	"consentlens/internal/generation"
	dErrors "consentlens/pkg/domain-errors"
	"consentlens/pkg/platform/sentinel"
)

// Service validates ledger queries and translates store sentinels into domain
// errors. The ledger is append-only: entries are recorded once and never
// updated.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Record stores the request/response pair under its request id. Request ids
// come from a collision-free generator upstream, so a duplicate means a
// caller bug rather than a transient condition.
func (s *Service) Record(ctx context.Context, request generation.Request, response generation.Response) (Entry, error) {
	entry := Entry{
		Request:   request,
		Response:  response,
		Timestamp: time.Now().UTC(),
	}
	if err := s.store.Append(ctx, entry); err != nil {
		return Entry{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record ledger entry")
	}
	return entry, nil
}

// Get returns the entry for a request id.
//
// Errors: CodeNotFound for an unknown id.
func (s *Service) Get(ctx context.Context, requestID string) (Entry, error) {
	entry, err := s.store.Get(ctx, requestID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return Entry{}, dErrors.Wrap(err, dErrors.CodeNotFound, "unknown request id: "+requestID)
		}
		return Entry{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read ledger entry")
	}
	return entry, nil
}

// List returns up to limit entries, most recent first.
//
// Errors: CodeInvalidLimit for limit <= 0.
func (s *Service) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidLimit, "limit must be positive")
	}
	entries, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list ledger entries")
	}
	return entries, nil
}

// ListForUser returns up to limit of the user's entries, most recent first.
// An unknown user yields an empty slice, not an error.
//
// Errors: CodeInvalidLimit for limit <= 0.
func (s *Service) ListForUser(ctx context.Context, userID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidLimit, "limit must be positive")
	}
	entries, err := s.store.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list ledger entries")
	}
	return entries, nil
}
