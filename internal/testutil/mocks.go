// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"sort"
	"time"

	"tugasku/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks     map[int]*domain.Task
	SaveErr   error
	GetErr    error
	ListErr   error
	DeleteErr error
	NextIDN   int
}

// NewMockTaskRepository creates a new MockTaskRepository with initialized maps.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks:   make(map[int]*domain.Task),
		NextIDN: 1,
	}
}

// Get retrieves a task by ID. Returns nil when absent.
func (m *MockTaskRepository) Get(id int) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, nil
	}
	return task, nil
}

// List returns all tasks in ID order.
func (m *MockTaskRepository) List() ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	tasks := make([]*domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// Save saves a task.
func (m *MockTaskRepository) Save(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks[task.ID] = task
	return nil
}

// Delete removes a task. Absent IDs are a no-op.
func (m *MockTaskRepository) Delete(id int) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Tasks, id)
	return nil
}

// NextID returns the next task ID and advances the counter.
func (m *MockTaskRepository) NextID() (int, error) {
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// Ensure MockTaskRepository implements domain.TaskRepository.
var _ domain.TaskRepository = (*MockTaskRepository)(nil)

// MockSettingsStore is a test double for domain.SettingsStore.
type MockSettingsStore struct {
	Settings domain.Settings
	LoadErr  error
	SaveErr  error
	Saved    bool
}

// NewMockSettingsStore creates a store preloaded with defaults.
func NewMockSettingsStore() *MockSettingsStore {
	return &MockSettingsStore{Settings: domain.DefaultSettings()}
}

// Load returns the configured settings.
func (m *MockSettingsStore) Load() (domain.Settings, error) {
	if m.LoadErr != nil {
		return domain.DefaultSettings(), m.LoadErr
	}
	return m.Settings, nil
}

// Save replaces the stored settings.
func (m *MockSettingsStore) Save(settings domain.Settings) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Settings = settings
	m.Saved = true
	return nil
}

var _ domain.SettingsStore = (*MockSettingsStore)(nil)

// MockProfileStore is a test double for domain.ProfileStore.
type MockProfileStore struct {
	Profile domain.Profile
	LoadErr error
	SaveErr error
}

// Load returns the configured profile.
func (m *MockProfileStore) Load() (domain.Profile, error) {
	if m.LoadErr != nil {
		return domain.Profile{}, m.LoadErr
	}
	return m.Profile, nil
}

// Save replaces the stored profile.
func (m *MockProfileStore) Save(profile domain.Profile) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Profile = profile
	return nil
}

var _ domain.ProfileStore = (*MockProfileStore)(nil)

// MockNotifier records schedule, cancel and permission calls.
// Fields are ordered to minimize memory padding.
type MockNotifier struct {
	Scheduled       map[int]domain.Notification
	Canceled        []int
	ScheduleErr     error
	CancelErr       error
	PermissionCalls int
	Permitted       bool
}

// NewMockNotifier creates a notifier that grants permission.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{
		Scheduled: make(map[int]domain.Notification),
		Permitted: true,
	}
}

// Schedule records the notification, last write per id wins.
func (m *MockNotifier) Schedule(n domain.Notification) error {
	if m.ScheduleErr != nil {
		return m.ScheduleErr
	}
	m.Scheduled[n.ID] = n
	return nil
}

// Cancel records the canceled id and drops any pending notification.
func (m *MockNotifier) Cancel(id int) error {
	if m.CancelErr != nil {
		return m.CancelErr
	}
	m.Canceled = append(m.Canceled, id)
	delete(m.Scheduled, id)
	return nil
}

// RequestPermission returns the configured grant and counts the call.
func (m *MockNotifier) RequestPermission(_ context.Context) (bool, error) {
	m.PermissionCalls++
	if !m.Permitted {
		return false, domain.ErrNotifyUnavailable
	}
	return true, nil
}

var _ domain.Notifier = (*MockNotifier)(nil)

// NopLogger discards all log output.
type NopLogger struct{}

// Debug discards the message.
func (NopLogger) Debug(int, string, string) {}

// Info discards the message.
func (NopLogger) Info(int, string, string) {}

// Warn discards the message.
func (NopLogger) Warn(int, string, string) {}

// Error discards the message.
func (NopLogger) Error(int, string, string) {}

var _ domain.Logger = NopLogger{}
