package usecase

import (
	"context"
	"fmt"
	"strings"

	"tugasku/internal/domain"
)

// GetProfileOutput contains the stored profile.
type GetProfileOutput struct {
	Profile domain.Profile
}

// GetProfile is the use case for reading the onboarding profile.
type GetProfile struct {
	profile domain.ProfileStore
}

// NewGetProfile creates a new GetProfile use case.
func NewGetProfile(profile domain.ProfileStore) *GetProfile {
	return &GetProfile{profile: profile}
}

// Execute loads the profile. A zero profile means onboarding has not
// run yet.
func (uc *GetProfile) Execute(_ context.Context) (*GetProfileOutput, error) {
	p, err := uc.profile.Load()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &GetProfileOutput{Profile: p}, nil
}

// CompleteOnboardingInput contains the onboarding form fields.
type CompleteOnboardingInput struct {
	Name string // Display name greeting the user on the main screen
}

// CompleteOnboardingOutput contains the persisted profile.
type CompleteOnboardingOutput struct {
	Profile domain.Profile
}

// CompleteOnboarding is the use case for finishing first-run setup.
type CompleteOnboarding struct {
	profile domain.ProfileStore
	logger  domain.Logger
}

// NewCompleteOnboarding creates a new CompleteOnboarding use case.
func NewCompleteOnboarding(profile domain.ProfileStore, logger domain.Logger) *CompleteOnboarding {
	return &CompleteOnboarding{
		profile: profile,
		logger:  logger,
	}
}

// Execute records the user's name and marks onboarding as done.
func (uc *CompleteOnboarding) Execute(_ context.Context, in CompleteOnboardingInput) (*CompleteOnboardingOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	p := domain.Profile{Name: name, Onboarded: true}
	if err := uc.profile.Save(p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	uc.logger.Info(0, "onboarding", fmt.Sprintf("onboarded as %q", name))
	return &CompleteOnboardingOutput{Profile: p}, nil
}
