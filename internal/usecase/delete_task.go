package usecase

import (
	"context"
	"fmt"

	"tugasku/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task. Task is the
// record that was removed, nil when the id was already absent.
type DeleteTaskOutput struct {
	Task *domain.Task
}

// DeleteTask is the use case for removing a task. Deleting an absent id
// is a silent no-op.
type DeleteTask struct {
	tasks    domain.TaskRepository
	notifier domain.Notifier
	logger   domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, notifier domain.Notifier, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:    tasks,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute removes the task and cancels its pending reminder. The cancel
// runs unconditionally so a reminder left behind by a crashed run never
// outlives its task.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	if err := uc.notifier.Cancel(in.TaskID); err != nil {
		uc.logger.Warn(in.TaskID, "notify", "cancel reminder: "+err.Error())
	}

	if err := uc.tasks.Delete(in.TaskID); err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}

	if task != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("deleted %q", task.Title))
	}
	return &DeleteTaskOutput{Task: task}, nil
}
