package domain

// Profile holds the display name captured by the one-time onboarding
// flow. It is persisted separately from tasks and settings.
type Profile struct {
	Name      string `json:"name"`
	Onboarded bool   `json:"onboarded"`
}
