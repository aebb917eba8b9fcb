package usecase

import (
	"context"
	"fmt"
	"strings"

	"tugasku/internal/domain"
)

// EditTaskInput contains the full replacement form for a task. The
// edit form always submits every field, so there are no partial
// updates.
// Fields are ordered to minimize memory padding.
type EditTaskInput struct {
	Title        string
	Description  string
	DueDate      string
	DueTime      string
	Category     string
	Priority     string
	ReminderLead int // 0 keeps the task's current lead
	ID           int
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task *domain.Task // The updated task
}

// EditTask is the use case for replacing a task's editable fields.
type EditTask struct {
	tasks    domain.TaskRepository
	settings domain.SettingsStore
	notifier domain.Notifier
	clock    domain.Clock
	logger   domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(
	tasks domain.TaskRepository,
	settings domain.SettingsStore,
	notifier domain.Notifier,
	clock domain.Clock,
	logger domain.Logger,
) *EditTask {
	return &EditTask{
		tasks:    tasks,
		settings: settings,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

// Execute validates the replacement fields, saves the task and re-arms
// its reminder against the new deadline. Creation time and completion
// state are preserved.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	task, err := uc.tasks.Get(in.ID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

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

	lead := in.ReminderLead
	if lead == 0 {
		lead = task.ReminderLead
	}
	if !domain.IsValidReminderLead(lead) {
		return nil, domain.ErrInvalidReminderLead
	}

	task.Title = title
	task.Description = strings.TrimSpace(in.Description)
	task.Category = category
	task.Priority = priority
	task.Due = due
	task.ReminderLead = lead

	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	uc.logger.Info(task.ID, "task", fmt.Sprintf("edited %q", task.Title))

	// The old reminder may point at the previous deadline.
	if err := uc.notifier.Cancel(task.ID); err != nil {
		uc.logger.Warn(task.ID, "notify", "cancel reminder: "+err.Error())
	}
	settings, err := uc.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	armReminder(uc.notifier, uc.logger, settings, task, now)

	return &EditTaskOutput{Task: task}, nil
}
