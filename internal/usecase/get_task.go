package usecase

import (
	"context"
	"fmt"

	"tugasku/internal/domain"
)

// GetTaskInput contains the parameters for fetching a single task.
type GetTaskInput struct {
	TaskID int
}

// GetTaskOutput contains the fetched task and its urgency.
type GetTaskOutput struct {
	Task    *domain.Task
	Urgency domain.Urgency
}

// GetTask is the use case for showing a single task.
type GetTask struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewGetTask creates a new GetTask use case.
func NewGetTask(tasks domain.TaskRepository, clock domain.Clock) *GetTask {
	return &GetTask{
		tasks: tasks,
		clock: clock,
	}
}

// Execute fetches the task. Unlike the mutation use cases, a missing id
// here is an error: the caller asked for this specific task.
func (uc *GetTask) Execute(_ context.Context, in GetTaskInput) (*GetTaskOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return &GetTaskOutput{
		Task:    task,
		Urgency: task.Urgency(uc.clock.Now()),
	}, nil
}
