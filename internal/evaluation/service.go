package evaluation

import (
	"context"

	"consentlens/internal/consent"
	"consentlens/internal/generation"
	"consentlens/internal/ledger"
)

// Service computes what-if analyses. It owns no state: the ledger and the
// generation pipeline are read-only collaborators, and hypothetical snapshots
// flow through as values so nothing a what-if touches can leak into the
// consent log or the ledger.
type Service struct {
	ledger    *ledger.Service
	generator *generation.Service
}

func NewService(ledgerSvc *ledger.Service, generator *generation.Service) *Service {
	return &Service{ledger: ledgerSvc, generator: generator}
}

// WhatIf reruns the base request's generation under a hypothetical snapshot
// and scores the fresh output against the recorded one. The rerun is never
// written to the ledger and the hypothetical snapshot is never written to the
// consent log.
//
// Errors: CodeNotFound when the base request id is unknown; CodeNotFound when
// the user's profile has since disappeared (not possible with the in-memory
// store, but part of the pipeline contract).
func (s *Service) WhatIf(ctx context.Context, baseRequestID string, hypothetical consent.Snapshot) (Result, error) {
	entry, err := s.ledger.Get(ctx, baseRequestID)
	if err != nil {
		return Result{}, err
	}

	_, modified, err := s.generator.Run(ctx, entry.Request.UserID, entry.Request.Prompt, hypothetical)
	if err != nil {
		return Result{}, err
	}
	base := entry.Response

	return Result{
		OriginalOutput:     base.Output,
		ModifiedOutput:     modified.Output,
		OriginalConfidence: base.Confidence,
		ModifiedConfidence: modified.Confidence,
		SimilarityScore:    round3(CosineSimilarity(base.Output, modified.Output)),
		ConfidenceDelta:    round3(modified.Confidence - base.Confidence),
		LatencyDiffMS:      round2(modified.LatencyMS - base.LatencyMS),
		AttributionChanges: attributionChanges(base.Attribution, modified.Attribution),
	}, nil
}

// Compare scores two responses with unsigned magnitudes. Pure; exported for
// callers that already hold both responses.
func (s *Service) Compare(original, modified generation.Response) Metrics {
	confidenceDelta := modified.Confidence - original.Confidence
	if confidenceDelta < 0 {
		confidenceDelta = -confidenceDelta
	}
	latencyDiff := modified.LatencyMS - original.LatencyMS
	if latencyDiff < 0 {
		latencyDiff = -latencyDiff
	}
	lengthDiff := len(modified.Output) - len(original.Output)
	if lengthDiff < 0 {
		lengthDiff = -lengthDiff
	}
	return Metrics{
		SimilarityScore:    round3(CosineSimilarity(original.Output, modified.Output)),
		ConfidenceDelta:    round3(confidenceDelta),
		LatencyDiffMS:      round2(latencyDiff),
		OutputLengthDiff:   lengthDiff,
		AttributionChanges: len(attributionChanges(original.Attribution, modified.Attribution)),
	}
}

// attributionChanges returns, in canonical category order, the modified
// attribution entries for every category whose blocked state differs from the
// base.
func attributionChanges(base, modified []generation.Attribution) []generation.Attribution {
	baseBlocked := make(map[consent.DataCategory]bool, len(base))
	for _, a := range base {
		baseBlocked[a.Category] = a.WasBlocked
	}
	modifiedByCategory := make(map[consent.DataCategory]generation.Attribution, len(modified))
	for _, a := range modified {
		modifiedByCategory[a.Category] = a
	}

	changes := make([]generation.Attribution, 0, len(consent.Categories))
	for _, category := range consent.Categories {
		after, ok := modifiedByCategory[category]
		if !ok {
			continue
		}
		if baseBlocked[category] != after.WasBlocked {
			changes = append(changes, after)
		}
	}
	return changes
}
