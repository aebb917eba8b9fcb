package usecase

import (
	"context"
	"fmt"

	"tugasku/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling completion.
type ToggleTaskInput struct {
	TaskID int // Task ID to toggle
}

// ToggleTaskOutput contains the result of toggling a task. Task is nil
// when the id did not resolve to a stored task.
type ToggleTaskOutput struct {
	Task *domain.Task
}

// ToggleTask is the use case for flipping a task's completion flag.
// Toggling an unknown id is a silent no-op: stale ids from a
// concurrently refreshed view must not surface as errors.
type ToggleTask struct {
	tasks            domain.TaskRepository
	settings         domain.SettingsStore
	notifier         domain.Notifier
	clock            domain.Clock
	logger           domain.Logger
	rescheduleOnOpen bool
}

// NewToggleTask creates a new ToggleTask use case. rescheduleOnOpen
// controls whether reopening a completed task re-arms its reminder.
func NewToggleTask(
	tasks domain.TaskRepository,
	settings domain.SettingsStore,
	notifier domain.Notifier,
	clock domain.Clock,
	logger domain.Logger,
	rescheduleOnOpen bool,
) *ToggleTask {
	return &ToggleTask{
		tasks:            tasks,
		settings:         settings,
		notifier:         notifier,
		clock:            clock,
		logger:           logger,
		rescheduleOnOpen: rescheduleOnOpen,
	}
}

// Execute flips the completion flag. Completing a task cancels its
// pending reminder; reopening re-arms it when the fire time is still in
// the future and rescheduling is enabled.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		uc.logger.Debug(0, "task", fmt.Sprintf("toggle unknown id %d ignored", in.TaskID))
		return &ToggleTaskOutput{}, nil
	}

	task.Completed = !task.Completed

	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if task.Completed {
		uc.logger.Info(task.ID, "task", "completed")
		if err := uc.notifier.Cancel(task.ID); err != nil {
			uc.logger.Warn(task.ID, "notify", "cancel reminder: "+err.Error())
		}
		return &ToggleTaskOutput{Task: task}, nil
	}

	uc.logger.Info(task.ID, "task", "reopened")
	if uc.rescheduleOnOpen {
		settings, err := uc.settings.Load()
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
		armReminder(uc.notifier, uc.logger, settings, task, uc.clock.Now())
	}

	return &ToggleTaskOutput{Task: task}, nil
}
