package usecase

import (
	"context"
	"fmt"

	"tugasku/internal/domain"
)

// GetSettingsOutput contains the current settings.
type GetSettingsOutput struct {
	Settings domain.Settings
}

// GetSettings is the use case for reading the settings record.
type GetSettings struct {
	settings domain.SettingsStore
}

// NewGetSettings creates a new GetSettings use case.
func NewGetSettings(settings domain.SettingsStore) *GetSettings {
	return &GetSettings{settings: settings}
}

// Execute loads the settings, falling back to defaults when nothing
// valid is persisted.
func (uc *GetSettings) Execute(_ context.Context) (*GetSettingsOutput, error) {
	s, err := uc.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return &GetSettingsOutput{Settings: s}, nil
}

// UpdateSettingsInput contains the replacement settings record.
type UpdateSettingsInput struct {
	Settings domain.Settings
}

// UpdateSettingsOutput contains the persisted settings.
type UpdateSettingsOutput struct {
	Settings domain.Settings
}

// UpdateSettings is the use case for replacing the settings record.
// Turning notifications off cancels every pending reminder; turning
// them back on re-arms reminders for open tasks whose fire time has not
// passed.
type UpdateSettings struct {
	settings domain.SettingsStore
	tasks    domain.TaskRepository
	notifier domain.Notifier
	clock    domain.Clock
	logger   domain.Logger
}

// NewUpdateSettings creates a new UpdateSettings use case.
func NewUpdateSettings(
	settings domain.SettingsStore,
	tasks domain.TaskRepository,
	notifier domain.Notifier,
	clock domain.Clock,
	logger domain.Logger,
) *UpdateSettings {
	return &UpdateSettings{
		settings: settings,
		tasks:    tasks,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

// Execute validates and persists the settings, then reconciles pending
// reminders with the new notification toggle.
func (uc *UpdateSettings) Execute(_ context.Context, in UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if err := in.Settings.Validate(); err != nil {
		return nil, err
	}

	previous, err := uc.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if err := uc.settings.Save(in.Settings); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	uc.logger.Info(0, "settings", "settings updated")

	if previous.NotificationsEnabled != in.Settings.NotificationsEnabled {
		if err := uc.reconcileReminders(in.Settings); err != nil {
			return nil, err
		}
	}

	return &UpdateSettingsOutput{Settings: in.Settings}, nil
}

func (uc *UpdateSettings) reconcileReminders(settings domain.Settings) error {
	all, err := uc.tasks.List()
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	now := uc.clock.Now()
	for _, t := range all {
		if settings.NotificationsEnabled {
			armReminder(uc.notifier, uc.logger, settings, t, now)
			continue
		}
		if err := uc.notifier.Cancel(t.ID); err != nil {
			uc.logger.Warn(t.ID, "notify", "cancel reminder: "+err.Error())
		}
	}
	return nil
}
