package usecase

import (
	"context"
	"fmt"
	"time"

	"tugasku/internal/domain"
)

// ScanRemindersInput bounds one daemon scan. The window is half-open:
// fire times in (Since, Until] are due now; anything at or before Since
// was covered by the previous scan.
type ScanRemindersInput struct {
	Since time.Time
	Until time.Time
}

// ScanRemindersOutput contains the reminders due in the window.
type ScanRemindersOutput struct {
	Notifications []domain.Notification
}

// ScanReminders is the use case behind the reminder daemon's periodic
// poll. It re-reads the store on every scan so tasks added or completed
// by another process are picked up without coordination.
type ScanReminders struct {
	tasks    domain.TaskRepository
	settings domain.SettingsStore
}

// NewScanReminders creates a new ScanReminders use case.
func NewScanReminders(tasks domain.TaskRepository, settings domain.SettingsStore) *ScanReminders {
	return &ScanReminders{
		tasks:    tasks,
		settings: settings,
	}
}

// Execute returns reminders for open tasks whose fire time falls inside
// the window. An empty result when notifications are disabled.
func (uc *ScanReminders) Execute(_ context.Context, in ScanRemindersInput) (*ScanRemindersOutput, error) {
	settings, err := uc.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if !settings.NotificationsEnabled {
		return &ScanRemindersOutput{}, nil
	}

	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	out := &ScanRemindersOutput{}
	for _, t := range all {
		if t.Completed {
			continue
		}
		fireAt := t.ReminderAt()
		if fireAt.After(in.Since) && !fireAt.After(in.Until) {
			out.Notifications = append(out.Notifications, domain.NewReminderNotification(t))
		}
	}
	return out, nil
}
