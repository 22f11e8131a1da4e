package consent

import (
	"context"
	"time"

	"github.com/google/uuid"

	dErrors "consentlens/pkg/domain-errors"
)

// Service owns the consent audit trail and the snapshots derived from it. It
// keeps orchestration out of handlers and domain logic thin: every mutation is
// a single atomic append, and current state is a fold over the event log
// rather than a separately maintained field.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Grant appends a granted event for the category. Idempotent in effect:
// granting an already-granted category still appends, preserving the audit
// trail for exact replay.
//
// Errors: CodeInvalidCategory when the category is outside the enumeration;
// the log is left unchanged in that case.
func (s *Service) Grant(ctx context.Context, userID string, category DataCategory) (Event, error) {
	return s.append(ctx, userID, category, StatusGranted)
}

// Revoke appends a revoked event for the category. Same contract as Grant.
func (s *Service) Revoke(ctx context.Context, userID string, category DataCategory) (Event, error) {
	return s.append(ctx, userID, category, StatusRevoked)
}

func (s *Service) append(ctx context.Context, userID string, category DataCategory, action Status) (Event, error) {
	if !category.IsValid() {
		return Event{}, dErrors.New(dErrors.CodeInvalidCategory, "unknown data category: "+category.String())
	}
	event := Event{
		EventID:   uuid.NewString(),
		UserID:    userID,
		Category:  category,
		Action:    action,
		Timestamp: time.Now().UTC(),
	}
	if err := s.store.Append(ctx, event); err != nil {
		return Event{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to append consent event")
	}
	return event, nil
}

// State derives the user's current snapshot by keeping, per category, the
// action from the latest event (insertion order breaks timestamp ties, which
// ListByUser's stable ordering preserves). Categories with no event default
// to revoked; an unknown user is a valid "no consent yet" state, not an error.
func (s *Service) State(ctx context.Context, userID string) (Snapshot, error) {
	events, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read consent events")
	}
	snapshot := make(Snapshot, len(Categories))
	for _, c := range Categories {
		snapshot[c] = StatusRevoked
	}
	for _, e := range events {
		snapshot[e.Category] = e.Action
	}
	return snapshot, nil
}

// Timeline returns the user's full audit trail, timestamp ascending. Empty
// slice, not an error, when the user has no events.
func (s *Service) Timeline(ctx context.Context, userID string) ([]Event, error) {
	events, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read consent events")
	}
	return events, nil
}
