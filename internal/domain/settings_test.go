package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	got := DefaultSettings()
	assert.Equal(t, ThemeLight, got.Theme)
	assert.Equal(t, 30, got.DefaultReminderLead)
	assert.True(t, got.NotificationsEnabled)
}

func TestSettings_Normalize(t *testing.T) {
	s := Settings{Theme: "sepia", DefaultReminderLead: 42, NotificationsEnabled: false}
	got := s.Normalize()
	assert.Equal(t, ThemeLight, got.Theme)
	assert.Equal(t, 30, got.DefaultReminderLead)
	// A false flag is a valid value, not a hole to fill.
	assert.False(t, got.NotificationsEnabled)

	valid := Settings{Theme: ThemeDark, DefaultReminderLead: 1440, NotificationsEnabled: true}
	assert.Equal(t, valid, valid.Normalize())
}

func TestSettings_Validate(t *testing.T) {
	assert.NoError(t, DefaultSettings().Validate())
	assert.ErrorIs(t, Settings{Theme: "neon", DefaultReminderLead: 30}.Validate(), ErrInvalidTheme)
	assert.ErrorIs(t, Settings{Theme: ThemeDark, DefaultReminderLead: 7}.Validate(), ErrInvalidReminderLead)
}

func TestConfig_PollInterval(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, "1m", cfg.Notify.PollInterval)

	cfg.Notify.PollInterval = "30s"
	assert.Equal(t, "30s", cfg.PollInterval().String())

	cfg.Notify.PollInterval = "bogus"
	assert.Equal(t, "1m0s", cfg.PollInterval().String())
}
