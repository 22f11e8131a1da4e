package integrationtests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consentlens/internal/consent"
	"consentlens/internal/evaluation"
	"consentlens/internal/generation"
	"consentlens/internal/ledger"
	"consentlens/internal/profile"
	dErrors "consentlens/pkg/domain-errors"
	"consentlens/pkg/testutil"
)

// system wires the full core the way cmd/server does, minus transport.
type system struct {
	consent    *consent.Service
	generator  *generation.Service
	ledger     *ledger.Service
	evaluation *evaluation.Service
}

func newSystem(t *testing.T) *system {
	t.Helper()
	profiles := profile.NewInMemoryStore()
	require.NoError(t, profiles.Seed(context.Background()))
	generator := generation.NewService(profiles, generation.NewEngine())
	ledgerSvc := ledger.NewService(ledger.NewInMemoryStore())
	return &system{
		consent:    consent.NewService(consent.NewInMemoryStore()),
		generator:  generator,
		ledger:     ledgerSvc,
		evaluation: evaluation.NewService(ledgerSvc, generator),
	}
}

// run performs a real generation under the user's live consent state and
// ledgers it, mirroring the transport's /ai/run sequencing.
func (s *system) run(t *testing.T, userID, prompt string) generation.Response {
	t.Helper()
	snapshot, err := s.consent.State(context.Background(), userID)
	require.NoError(t, err)
	request, response, err := s.generator.Run(context.Background(), userID, prompt, snapshot)
	require.NoError(t, err)
	_, err = s.ledger.Record(context.Background(), request, response)
	require.NoError(t, err)
	return response
}

func TestGrantingACategoryChangesGeneration(t *testing.T) {
	sys := newSystem(t)
	var blocked generation.Response

	testutil.Given(t, "a user with no consent granted", func(t *testing.T) {
		blocked = sys.run(t, "user_1", "Recommend products")

		for _, entry := range blocked.Attribution {
			assert.True(t, entry.WasBlocked)
			assert.Empty(t, entry.DataUsed)
		}
		assert.Equal(t, 0.30, blocked.Confidence, "minimum defined confidence")
	})

	testutil.When(t, "purchase history is granted and the prompt reruns", func(t *testing.T) {
		_, err := sys.consent.Grant(context.Background(), "user_1", consent.CategoryPurchaseHistory)
		require.NoError(t, err)

		rerun := sys.run(t, "user_1", "Recommend products")

		assert.NotEqual(t, blocked.Output, rerun.Output)
		assert.Greater(t, rerun.Confidence, blocked.Confidence)
		for _, entry := range rerun.Attribution {
			if entry.Category == consent.CategoryPurchaseHistory {
				assert.False(t, entry.WasBlocked)
				assert.NotEmpty(t, entry.DataUsed)
			} else {
				assert.True(t, entry.WasBlocked)
			}
		}
	})
}

func TestWhatIfAgainstAFullyGrantedBase(t *testing.T) {
	sys := newSystem(t)
	var baseID string

	testutil.Given(t, "a ledgered request with every category granted", func(t *testing.T) {
		for _, c := range consent.Categories {
			_, err := sys.consent.Grant(context.Background(), "user_1", c)
			require.NoError(t, err)
		}
		baseID = sys.run(t, "user_1", "Recommend products").RequestID
	})

	testutil.When(t, "a what-if revokes everything", func(t *testing.T) {
		hypothetical, err := consent.ParseSnapshot(map[string]string{
			"purchase_history": "revoked",
			"preferences":      "revoked",
			"activity":         "revoked",
		})
		require.NoError(t, err)

		result, err := sys.evaluation.WhatIf(context.Background(), baseID, hypothetical)
		require.NoError(t, err)

		assert.Less(t, result.SimilarityScore, 1.0)
		assert.Less(t, result.ConfidenceDelta, 0.0)
		assert.Len(t, result.AttributionChanges, len(consent.Categories))
	})

	testutil.Then(t, "the consent log and ledger are untouched", func(t *testing.T) {
		state, err := sys.consent.State(context.Background(), "user_1")
		require.NoError(t, err)
		for _, c := range consent.Categories {
			assert.Equal(t, consent.StatusGranted, state[c])
		}

		entries, err := sys.ledger.List(context.Background(), ledger.DefaultLimit)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestBadInputsNeverCorruptState(t *testing.T) {
	sys := newSystem(t)

	_, err := sys.consent.Grant(context.Background(), "user_1", consent.DataCategory("location"))
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidCategory))

	_, err = sys.ledger.Get(context.Background(), "no-such-request")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = sys.ledger.List(context.Background(), -1)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidLimit))

	// The failed calls above left everything usable.
	timeline, err := sys.consent.Timeline(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Empty(t, timeline)
	response := sys.run(t, "user_1", "Recommend products")
	assert.NotEmpty(t, response.Output)
}
