package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consentlens/internal/consent"
	"consentlens/pkg/platform/sentinel"
)

func TestPutAndGet(t *testing.T) {
	store := NewInMemoryStore()
	p := Profile{UserID: "user_9", PurchaseHistory: []string{"desk"}}

	require.NoError(t, store.Put(context.Background(), p))

	got, err := store.Get(context.Background(), "user_9")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestGetUnknownUser(t *testing.T) {
	store := NewInMemoryStore()
	_, err := store.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestSeedInstallsDemoUsers(t *testing.T) {
	store := NewInMemoryStore()
	require.NoError(t, store.Seed(context.Background()))

	user1, err := store.Get(context.Background(), "user_1")
	require.NoError(t, err)
	assert.NotEmpty(t, user1.PurchaseHistory)
	assert.NotEmpty(t, user1.Preferences)
	assert.NotEmpty(t, user1.Activity)

	_, err = store.Get(context.Background(), "user_2")
	require.NoError(t, err)
}

func TestCategoryDataPreferencesAreDeterministic(t *testing.T) {
	p := Profile{
		UserID:      "user_9",
		Preferences: map[string]string{"theme": "dark", "language": "en", "notifications": "enabled"},
	}

	first := p.CategoryData(consent.CategoryPreferences)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, p.CategoryData(consent.CategoryPreferences))
	}
	assert.Equal(t, []string{"language: en", "notifications: enabled", "theme: dark"}, first)
}

func TestCategoryDataReturnsCopies(t *testing.T) {
	p := Profile{UserID: "user_9", PurchaseHistory: []string{"laptop"}}
	data := p.CategoryData(consent.CategoryPurchaseHistory)
	data[0] = "tampered"
	assert.Equal(t, []string{"laptop"}, p.PurchaseHistory)
}
