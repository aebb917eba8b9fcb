// Package usecase contains application use cases that orchestrate
// domain entities, persistence and the notification bridge.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tugasku/internal/domain"
)

// AddTaskInput contains the parameters for creating a task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	Title        string // Task title (required)
	Description  string // Free text (optional)
	DueDate      string // Due date, "2006-01-02" (required)
	DueTime      string // Due time, "15:04" (optional, defaults to end of day)
	Category     string // Category tag (optional)
	Priority     string // Priority label (optional, defaults to medium)
	ReminderLead int    // Minutes before due, 0 uses the settings default
}

// AddTaskOutput contains the result of creating a task.
type AddTaskOutput struct {
	Task *domain.Task // The created task
}

// AddTask is the use case for creating a task and arming its reminder.
type AddTask struct {
	tasks    domain.TaskRepository
	settings domain.SettingsStore
	notifier domain.Notifier
	clock    domain.Clock
	logger   domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(
	tasks domain.TaskRepository,
	settings domain.SettingsStore,
	notifier domain.Notifier,
	clock domain.Clock,
	logger domain.Logger,
) *AddTask {
	return &AddTask{
		tasks:    tasks,
		settings: settings,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

// Execute validates the input, persists the new task and schedules its
// reminder when notifications are enabled and the fire time is still in
// the future.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}

	now := uc.clock.Now()
	due, err := domain.ResolveDue(in.DueDate, in.DueTime, now.Location())
	if err != nil {
		return nil, err
	}

	priority, err := domain.ParsePriority(in.Priority)
	if err != nil {
		return nil, err
	}

	category, err := parseCategory(in.Category)
	if err != nil {
		return nil, err
	}

	settings, err := uc.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	lead := in.ReminderLead
	if lead == 0 {
		lead = settings.DefaultReminderLead
	}
	if !domain.IsValidReminderLead(lead) {
		return nil, domain.ErrInvalidReminderLead
	}

	id, err := uc.tasks.NextID()
	if err != nil {
		return nil, fmt.Errorf("allocate task id: %w", err)
	}

	task := &domain.Task{
		ID:           id,
		Title:        title,
		Description:  strings.TrimSpace(in.Description),
		Category:     category,
		Priority:     priority,
		Due:          due,
		ReminderLead: lead,
		Created:      now,
	}

	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	uc.logger.Info(task.ID, "task", fmt.Sprintf("created %q due %s", task.Title, task.Due.Format(time.RFC3339)))
	armReminder(uc.notifier, uc.logger, settings, task, now)

	return &AddTaskOutput{Task: task}, nil
}

// parseCategory validates a user-supplied category label. Empty means
// uncategorized; the "all" filter value is not a storable category.
func parseCategory(s string) (domain.Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	for _, c := range domain.AllCategories() {
		if domain.Category(s) == c {
			return c, nil
		}
	}
	return "", domain.ErrInvalidCategory
}

// armReminder schedules the task's reminder when notifications are
// enabled and the fire time has not passed. Scheduling failures are
// logged, never surfaced: the task mutation already succeeded.
func armReminder(notifier domain.Notifier, logger domain.Logger, settings domain.Settings, task *domain.Task, now time.Time) {
	if !settings.NotificationsEnabled || task.Completed {
		return
	}
	n := domain.NewReminderNotification(task)
	if !n.FireAt.After(now) {
		return
	}
	if err := notifier.Schedule(n); err != nil {
		logger.Warn(task.ID, "notify", "schedule reminder: "+err.Error())
	}
}
