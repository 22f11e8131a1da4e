package generation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"consentlens/internal/access"
	"consentlens/internal/consent"
	"consentlens/internal/profile"
	dErrors "consentlens/pkg/domain-errors"
	"consentlens/pkg/platform/sentinel"
)

// ProfileStore is the slice of the profile store the generation pipeline
// needs. Generation never reads profiles directly; it only hands them to the
// access gate.
type ProfileStore interface {
	Get(ctx context.Context, userID string) (profile.Profile, error)
}

// Service runs the consent-gated generation pipeline: profile lookup, access
// gate, deterministic engine, latency measurement, request id minting.
type Service struct {
	profiles ProfileStore
	engine   *Engine
}

func NewService(profiles ProfileStore, engine *Engine) *Service {
	return &Service{profiles: profiles, engine: engine}
}

// Run executes one generation under the supplied snapshot and returns the
// immutable request/response pair. It does not record anything; the caller
// decides whether the result is a real request (ledgered) or a what-if rerun
// (never ledgered).
//
// Errors: CodeNotFound when the user has no profile.
func (s *Service) Run(ctx context.Context, userID, prompt string, snapshot consent.Snapshot) (Request, Response, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return Request{}, Response{}, dErrors.Wrap(err, dErrors.CodeNotFound, "unknown user: "+userID)
		}
		return Request{}, Response{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile")
	}

	bundle := access.Resolve(p, snapshot)

	start := time.Now()
	output, confidence, attribution := s.engine.Generate(prompt, bundle)
	latency := elapsedMS(start)

	requestID := uuid.NewString()
	request := Request{
		RequestID: requestID,
		UserID:    userID,
		Prompt:    prompt,
		Snapshot:  snapshot.Clone(),
		Timestamp: time.Now().UTC(),
	}
	response := Response{
		RequestID:   requestID,
		Output:      output,
		Confidence:  confidence,
		Attribution: attribution,
		LatencyMS:   latency,
	}
	return request, response, nil
}

// elapsedMS reports wall-clock milliseconds with two-decimal precision.
// Latency is reporting-only; nothing branches on it.
func elapsedMS(start time.Time) float64 {
	return round2(float64(time.Since(start).Nanoseconds()) / 1e6)
}
