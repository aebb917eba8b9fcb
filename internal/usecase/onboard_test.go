package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tugasku/internal/domain"
	"tugasku/internal/testutil"
)

func TestCompleteOnboarding_Execute_Success(t *testing.T) {
	store := &testutil.MockProfileStore{}
	uc := NewCompleteOnboarding(store, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), CompleteOnboardingInput{Name: "  Sari  "})

	require.NoError(t, err)
	assert.Equal(t, "Sari", out.Profile.Name)
	assert.True(t, out.Profile.Onboarded)
	assert.Equal(t, out.Profile, store.Profile)
}

func TestCompleteOnboarding_Execute_EmptyName(t *testing.T) {
	store := &testutil.MockProfileStore{}
	uc := NewCompleteOnboarding(store, testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), CompleteOnboardingInput{Name: "   "})

	assert.ErrorIs(t, err, domain.ErrEmptyName)
	assert.False(t, store.Profile.Onboarded)
}

func TestGetProfile_Execute(t *testing.T) {
	store := &testutil.MockProfileStore{Profile: domain.Profile{Name: "Sari", Onboarded: true}}
	uc := NewGetProfile(store)

	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.True(t, out.Profile.Onboarded)
	assert.Equal(t, "Sari", out.Profile.Name)
}
