package usecase

import (
	"context"
	"fmt"

	"tugasku/internal/domain"
)

// ListTasksInput contains the view query for listing tasks.
type ListTasksInput struct {
	Query domain.Query
}

// TaskItem pairs a task with its urgency at read time.
type TaskItem struct {
	Task    *domain.Task
	Urgency domain.Urgency
}

// ListTasksOutput contains the filtered, ordered view plus the header
// summary. The summary counts the whole active collection, not just the
// rows that pass the query.
type ListTasksOutput struct {
	Items   []TaskItem
	Summary domain.Summary
}

// ListTasks is the use case for deriving a task list view.
type ListTasks struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository, clock domain.Clock) *ListTasks {
	return &ListTasks{
		tasks: tasks,
		clock: clock,
	}
}

// Execute loads the collection and derives the requested view.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	now := uc.clock.Now()
	filtered := domain.ApplyQuery(all, in.Query)

	items := make([]TaskItem, 0, len(filtered))
	for _, t := range filtered {
		items = append(items, TaskItem{Task: t, Urgency: t.Urgency(now)})
	}

	return &ListTasksOutput{
		Items:   items,
		Summary: domain.Summarize(all, now),
	}, nil
}
