package consent

import (
	"time"

	dErrors "consentlens/pkg/domain-errors"
)

// DataCategory labels a class of user data subject to independent
// grant/revoke control.
// Invariant: the value must be one of the enumerated categories.
//
// Usage: construct via ParseDataCategory at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type DataCategory string

const (
	CategoryPurchaseHistory DataCategory = "purchase_history"
	CategoryPreferences     DataCategory = "preferences"
	CategoryActivity        DataCategory = "activity"
)

// Categories is the closed enumeration, in canonical order. Iteration over
// consent state, attribution, and generation branches all follow this order.
var Categories = []DataCategory{
	CategoryPurchaseHistory,
	CategoryPreferences,
	CategoryActivity,
}

// validCategories is the single source of truth for the allowlist.
var validCategories = map[DataCategory]bool{
	CategoryPurchaseHistory: true,
	CategoryPreferences:     true,
	CategoryActivity:        true,
}

// ParseDataCategory constructs a DataCategory from external input.
//
// Errors: returns CodeInvalidCategory when the value is empty or outside the
// enumeration; no other errors are expected.
func ParseDataCategory(s string) (DataCategory, error) {
	c := DataCategory(s)
	if !c.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidCategory, "unknown data category: "+s)
	}
	return c, nil
}

// IsValid checks if the category is one of the enumerated values.
func (c DataCategory) IsValid() bool {
	return validCategories[c]
}

func (c DataCategory) String() string {
	return string(c)
}

// Status is a consent decision for one category. There is no unset state: a
// category with no explicit event defaults to StatusRevoked.
type Status string

const (
	StatusGranted Status = "granted"
	StatusRevoked Status = "revoked"
)

// ParseStatus validates a status token from external input.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusGranted, StatusRevoked:
		return Status(s), nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, "unknown consent status: "+s)
	}
}

// Event is one immutable entry in the append-only consent audit trail. Events
// are never mutated, deleted, or coalesced: granting an already-granted
// category still appends, so the trail records actions taken, not just
// resulting state.
type Event struct {
	EventID   string       `json:"event_id"`
	UserID    string       `json:"user_id"`
	Category  DataCategory `json:"category"`
	Action    Status       `json:"action"`
	Timestamp time.Time    `json:"timestamp"`
}

// Snapshot is the resolved status per category for one user at one instant.
// It is derived from the event log on read (or supplied directly by a caller
// for what-if analysis) and always covers the full enumeration.
type Snapshot map[DataCategory]Status

// Granted reports whether a category is granted in the snapshot. Absent
// categories are revoked.
func (s Snapshot) Granted(c DataCategory) bool {
	return s[c] == StatusGranted
}

// Clone returns an independent copy so callers can hand snapshots across
// goroutines without aliasing store state.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for c, st := range s {
		out[c] = st
	}
	return out
}

// ParseSnapshot validates a caller-supplied hypothetical snapshot. Every key
// must be an enumerated category and every value a known status; categories
// left out default to revoked, matching live snapshot semantics.
//
// Errors: CodeValidation for a non-enumerated key or status.
func ParseSnapshot(raw map[string]string) (Snapshot, error) {
	snapshot := make(Snapshot, len(Categories))
	for _, c := range Categories {
		snapshot[c] = StatusRevoked
	}
	for k, v := range raw {
		category, err := ParseDataCategory(k)
		if err != nil {
			return nil, dErrors.New(dErrors.CodeValidation, "snapshot key is not an enumerated category: "+k)
		}
		status, err := ParseStatus(v)
		if err != nil {
			return nil, err
		}
		snapshot[category] = status
	}
	return snapshot, nil
}
