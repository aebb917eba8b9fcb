package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tugasku/internal/domain"
	"tugasku/internal/testutil"
)

func TestGetSettings_Execute(t *testing.T) {
	store := testutil.NewMockSettingsStore()
	store.Settings.Theme = domain.ThemeDark
	uc := NewGetSettings(store)

	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, out.Settings.Theme)
}

func newUpdateSettings(store *testutil.MockSettingsStore, repo *testutil.MockTaskRepository, notifier *testutil.MockNotifier, clock *testutil.MockClock) *UpdateSettings {
	return NewUpdateSettings(store, repo, notifier, clock, testutil.NopLogger{})
}

func TestUpdateSettings_Execute_Persists(t *testing.T) {
	store := testutil.NewMockSettingsStore()
	uc := newUpdateSettings(store, testutil.NewMockTaskRepository(), testutil.NewMockNotifier(), fixedClock())

	out, err := uc.Execute(context.Background(), UpdateSettingsInput{
		Settings: domain.Settings{
			Theme:                domain.ThemeDark,
			DefaultReminderLead:  60,
			NotificationsEnabled: true,
		},
	})

	require.NoError(t, err)
	assert.True(t, store.Saved)
	assert.Equal(t, domain.ThemeDark, out.Settings.Theme)
	assert.Equal(t, 60, store.Settings.DefaultReminderLead)
}

func TestUpdateSettings_Execute_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		settings domain.Settings
		wantErr  error
	}{
		{
			name:     "unknown theme",
			settings: domain.Settings{Theme: "sepia", DefaultReminderLead: 30, NotificationsEnabled: true},
			wantErr:  domain.ErrInvalidTheme,
		},
		{
			name:     "lead outside fixed options",
			settings: domain.Settings{Theme: domain.ThemeLight, DefaultReminderLead: 45, NotificationsEnabled: true},
			wantErr:  domain.ErrInvalidReminderLead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewMockSettingsStore()
			uc := newUpdateSettings(store, testutil.NewMockTaskRepository(), testutil.NewMockNotifier(), fixedClock())

			_, err := uc.Execute(context.Background(), UpdateSettingsInput{Settings: tt.settings})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, store.Saved)
		})
	}
}

func TestUpdateSettings_Execute_DisablingCancelsReminders(t *testing.T) {
	clock := fixedClock()
	store := testutil.NewMockSettingsStore()
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = openTask(1, clock.NowTime.Add(2*time.Hour))
	repo.Tasks[2] = openTask(2, clock.NowTime.Add(3*time.Hour))
	notifier := testutil.NewMockNotifier()
	uc := newUpdateSettings(store, repo, notifier, clock)

	next := store.Settings
	next.NotificationsEnabled = false
	_, err := uc.Execute(context.Background(), UpdateSettingsInput{Settings: next})

	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, notifier.Canceled)
}

func TestUpdateSettings_Execute_EnablingRearmsFutureReminders(t *testing.T) {
	clock := fixedClock()
	store := testutil.NewMockSettingsStore()
	store.Settings.NotificationsEnabled = false
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = openTask(1, clock.NowTime.Add(2*time.Hour))
	stale := openTask(2, clock.NowTime.Add(-time.Hour))
	repo.Tasks[2] = stale
	done := openTask(3, clock.NowTime.Add(2*time.Hour))
	done.Completed = true
	repo.Tasks[3] = done
	notifier := testutil.NewMockNotifier()
	uc := newUpdateSettings(store, repo, notifier, clock)

	next := store.Settings
	next.NotificationsEnabled = true
	_, err := uc.Execute(context.Background(), UpdateSettingsInput{Settings: next})

	require.NoError(t, err)
	assert.Contains(t, notifier.Scheduled, 1)
	assert.NotContains(t, notifier.Scheduled, 2, "past fire time is skipped")
	assert.NotContains(t, notifier.Scheduled, 3, "completed tasks are skipped")
}
