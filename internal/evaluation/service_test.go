package evaluation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"consentlens/internal/consent"
	"consentlens/internal/generation"
	"consentlens/internal/ledger"
	"consentlens/internal/profile"
	dErrors "consentlens/pkg/domain-errors"
)

type WhatIfSuite struct {
	suite.Suite
	ledger    *ledger.Service
	generator *generation.Service
	service   *Service
}

func (s *WhatIfSuite) SetupTest() {
	profiles := profile.NewInMemoryStore()
	require.NoError(s.T(), profiles.Seed(context.Background()))
	s.generator = generation.NewService(profiles, generation.NewEngine())
	s.ledger = ledger.NewService(ledger.NewInMemoryStore())
	s.service = NewService(s.ledger, s.generator)
}

func snapshotAll(status consent.Status) consent.Snapshot {
	snapshot := consent.Snapshot{}
	for _, c := range consent.Categories {
		snapshot[c] = status
	}
	return snapshot
}

// recordBase runs a real generation and ledgers it, returning the request id.
func (s *WhatIfSuite) recordBase(snapshot consent.Snapshot) string {
	request, response, err := s.generator.Run(context.Background(), "user_1", "Recommend products", snapshot)
	require.NoError(s.T(), err)
	_, err = s.ledger.Record(context.Background(), request, response)
	require.NoError(s.T(), err)
	return request.RequestID
}

func (s *WhatIfSuite) TestRevokingEverythingDegradesTheOutcome() {
	baseID := s.recordBase(snapshotAll(consent.StatusGranted))

	result, err := s.service.WhatIf(context.Background(), baseID, snapshotAll(consent.StatusRevoked))
	require.NoError(s.T(), err)

	assert.Less(s.T(), result.SimilarityScore, 1.0)
	assert.Less(s.T(), result.ConfidenceDelta, 0.0)
	assert.NotEqual(s.T(), result.OriginalOutput, result.ModifiedOutput)

	require.Len(s.T(), result.AttributionChanges, len(consent.Categories))
	for _, change := range result.AttributionChanges {
		assert.True(s.T(), change.WasBlocked, "every category flipped to blocked")
		assert.Empty(s.T(), change.DataUsed)
	}
}

func (s *WhatIfSuite) TestIdenticalSnapshotIsANoOpComparison() {
	baseID := s.recordBase(snapshotAll(consent.StatusGranted))

	result, err := s.service.WhatIf(context.Background(), baseID, snapshotAll(consent.StatusGranted))
	require.NoError(s.T(), err)

	assert.Equal(s.T(), 1.0, result.SimilarityScore)
	assert.Equal(s.T(), 0.0, result.ConfidenceDelta)
	assert.Empty(s.T(), result.AttributionChanges)
	assert.Equal(s.T(), result.OriginalOutput, result.ModifiedOutput)
}

func (s *WhatIfSuite) TestGrantingIntoABlockedBaseImproves() {
	baseID := s.recordBase(snapshotAll(consent.StatusRevoked))

	hypothetical := snapshotAll(consent.StatusRevoked)
	hypothetical[consent.CategoryPurchaseHistory] = consent.StatusGranted

	result, err := s.service.WhatIf(context.Background(), baseID, hypothetical)
	require.NoError(s.T(), err)

	assert.Greater(s.T(), result.ConfidenceDelta, 0.0)
	require.Len(s.T(), result.AttributionChanges, 1)
	assert.Equal(s.T(), consent.CategoryPurchaseHistory, result.AttributionChanges[0].Category)
	assert.False(s.T(), result.AttributionChanges[0].WasBlocked)
	assert.NotEmpty(s.T(), result.AttributionChanges[0].DataUsed)
}

func (s *WhatIfSuite) TestWhatIfNeverMutatesTheLedger() {
	baseID := s.recordBase(snapshotAll(consent.StatusGranted))

	before, err := s.ledger.Get(context.Background(), baseID)
	require.NoError(s.T(), err)
	entriesBefore, err := s.ledger.List(context.Background(), ledger.DefaultLimit)
	require.NoError(s.T(), err)

	_, err = s.service.WhatIf(context.Background(), baseID, snapshotAll(consent.StatusRevoked))
	require.NoError(s.T(), err)

	after, err := s.ledger.Get(context.Background(), baseID)
	require.NoError(s.T(), err)
	entriesAfter, err := s.ledger.List(context.Background(), ledger.DefaultLimit)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), before, after)
	assert.Equal(s.T(), len(entriesBefore), len(entriesAfter))
}

func (s *WhatIfSuite) TestUnknownBaseRequestID() {
	_, err := s.service.WhatIf(context.Background(), uuid.NewString(), snapshotAll(consent.StatusGranted))
	require.Error(s.T(), err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *WhatIfSuite) TestCompareReportsUnsignedMagnitudes() {
	base := snapshotAll(consent.StatusGranted)
	_, full, err := s.generator.Run(context.Background(), "user_1", "Recommend products", base)
	require.NoError(s.T(), err)
	_, blocked, err := s.generator.Run(context.Background(), "user_1", "Recommend products", snapshotAll(consent.StatusRevoked))
	require.NoError(s.T(), err)

	metrics := s.service.Compare(full, blocked)

	assert.GreaterOrEqual(s.T(), metrics.SimilarityScore, 0.0)
	assert.LessOrEqual(s.T(), metrics.SimilarityScore, 1.0)
	assert.GreaterOrEqual(s.T(), metrics.ConfidenceDelta, 0.0)
	assert.GreaterOrEqual(s.T(), metrics.LatencyDiffMS, 0.0)
	assert.GreaterOrEqual(s.T(), metrics.OutputLengthDiff, 0)
	assert.Equal(s.T(), len(consent.Categories), metrics.AttributionChanges)
}

func TestWhatIfSuite(t *testing.T) {
	suite.Run(t, new(WhatIfSuite))
}
