package ledger

import (
	"time"

	"consentlens/internal/generation"
)

// DefaultLimit is applied by callers (the transport edge) when a query does
// not specify a limit. An explicit limit <= 0 is a validation error, not a
// request for the default.
const DefaultLimit = 100

// Entry is the unit stored by the ledger: one real request/response pair.
// Created once per non-what-if generation call and never updated.
type Entry struct {
	Request   generation.Request  `json:"request"`
	Response  generation.Response `json:"response"`
	Timestamp time.Time           `json:"timestamp"`
}
