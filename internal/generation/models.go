package generation

import (
	"time"

	"consentlens/internal/consent"
)

// Attribution records, per category, whether the generation step read that
// category's data and exactly which data it read.
// Invariant: WasBlocked is true iff the category was absent from the gated
// bundle, and a blocked category's DataUsed is always empty.
type Attribution struct {
	Category   consent.DataCategory `json:"category"`
	DataUsed   []string             `json:"data_used"`
	WasBlocked bool                 `json:"was_blocked"`
}

// Request captures one generation call with the consent snapshot that gated
// it. Immutable once created.
type Request struct {
	RequestID string           `json:"request_id"`
	UserID    string           `json:"user_id"`
	Prompt    string           `json:"prompt"`
	Snapshot  consent.Snapshot `json:"consent_snapshot"`
	Timestamp time.Time        `json:"timestamp"`
}

// Response is the generation outcome. Immutable once created.
type Response struct {
	RequestID   string        `json:"request_id"`
	Output      string        `json:"output"`
	Confidence  float64       `json:"confidence"`
	Attribution []Attribution `json:"attribution"`
	LatencyMS   float64       `json:"latency_ms"`
	TokensUsed  *int          `json:"tokens_used,omitempty"`
}
