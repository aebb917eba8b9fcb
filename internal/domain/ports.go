package domain

import (
	"context"
	"fmt"
	"time"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error
}

// TaskRepository manages task persistence. Implementations persist the
// full collection on every mutation; the in-memory view is the source
// of truth and a failed write never rolls a mutation back.
type TaskRepository interface {
	// Get retrieves a task by ID. Returns nil if not found.
	Get(id int) (*Task, error)

	// List retrieves all tasks in insertion (ID) order. Records that
	// fail to rehydrate are dropped, not returned as errors.
	List() ([]*Task, error)

	// Save creates or updates a task.
	Save(task *Task) error

	// Delete removes a task by ID. Deleting an absent ID is a no-op.
	Delete(id int) error

	// NextID returns the next available task ID.
	NextID() (int, error)
}

// SettingsStore persists the settings record wholesale.
type SettingsStore interface {
	// Load returns the persisted settings, or defaults when nothing
	// valid is persisted.
	Load() (Settings, error)

	// Save replaces the persisted record.
	Save(settings Settings) error
}

// ProfileStore persists the onboarding profile.
type ProfileStore interface {
	Load() (Profile, error)
	Save(profile Profile) error
}

// Notification is a one-shot reminder handed to the Notifier.
// Fields are ordered to minimize memory padding.
type Notification struct {
	FireAt time.Time // Absolute fire time
	Title  string    // Notification title
	Body   string    // Notification body
	ID     int       // Stable numeric id, equal to the task ID
}

// ReminderTitle is the fixed title of task reminder notifications.
const ReminderTitle = "Task Reminder"

// NewReminderNotification builds the notification for a task. The fire
// time is the task's due time minus its reminder lead.
func NewReminderNotification(t *Task) Notification {
	body := fmt.Sprintf("%s is due in %d minutes", t.Title, t.ReminderLead)
	if t.Description != "" {
		body += ": " + t.Description
	}
	return Notification{
		ID:     t.ID,
		Title:  ReminderTitle,
		Body:   body,
		FireAt: t.ReminderAt(),
	}
}

// Notifier schedules and cancels local notifications. All calls are
// best effort: scheduling a notification whose fire time has passed is
// silently skipped, and canceling an unknown id is not an error.
type Notifier interface {
	// Schedule registers a notification, replacing any pending one
	// with the same id (last write wins).
	Schedule(n Notification) error

	// Cancel removes a pending notification. Idempotent.
	Cancel(id int) error

	// RequestPermission probes whether notifications can be delivered.
	// Callers do not block on the result; schedule calls are attempted
	// regardless and dropped by the bridge when undeliverable.
	RequestPermission(ctx context.Context) (bool, error)
}

// CommandRunner executes an external program and returns its combined
// output.
type CommandRunner interface {
	Run(ctx context.Context, program string, args ...string) ([]byte, error)
}

// Logger writes application logs. taskID 0 targets the global log
// only; a positive id also writes the task's own log file.
type Logger interface {
	Debug(taskID int, category, msg string)
	Info(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// ConfigLoader loads the application configuration.
type ConfigLoader interface {
	Load() (*Config, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
