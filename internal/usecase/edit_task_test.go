package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tugasku/internal/domain"
	"tugasku/internal/testutil"
)

func newEditTask(repo *testutil.MockTaskRepository, notifier *testutil.MockNotifier, clock *testutil.MockClock) *EditTask {
	return NewEditTask(repo, testutil.NewMockSettingsStore(), notifier, clock, testutil.NopLogger{})
}

func TestEditTask_Execute_ReplacesFieldsAndRearmsReminder(t *testing.T) {
	clock := fixedClock()
	repo := testutil.NewMockTaskRepository()
	original := openTask(1, clock.NowTime.Add(time.Hour))
	repo.Tasks[1] = original
	notifier := testutil.NewMockNotifier()
	uc := newEditTask(repo, notifier, clock)

	out, err := uc.Execute(context.Background(), EditTaskInput{
		ID:       1,
		Title:    "Renamed",
		DueDate:  "2026-03-12",
		DueTime:  "10:00",
		Category: "work",
		Priority: "low",
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", out.Task.Title)
	assert.Equal(t, domain.CategoryWork, out.Task.Category)
	assert.Equal(t, domain.PriorityLow, out.Task.Priority)
	assert.Equal(t, time.Date(2026, 3, 12, 10, 0, 0, 0, time.Local), out.Task.Due)
	assert.Equal(t, original.Created, out.Task.Created, "creation time is preserved")
	assert.Equal(t, 30, out.Task.ReminderLead, "zero lead keeps the current one")

	// Old reminder dropped, new one armed at the new fire time.
	assert.Contains(t, notifier.Canceled, 1)
	n, ok := notifier.Scheduled[1]
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 12, 9, 30, 0, 0, time.Local), n.FireAt)
}

func TestEditTask_Execute_CompletedTaskNotRearmed(t *testing.T) {
	clock := fixedClock()
	repo := testutil.NewMockTaskRepository()
	task := openTask(2, clock.NowTime.Add(time.Hour))
	task.Completed = true
	repo.Tasks[2] = task
	notifier := testutil.NewMockNotifier()
	uc := newEditTask(repo, notifier, clock)

	_, err := uc.Execute(context.Background(), EditTaskInput{
		ID:      2,
		Title:   "Still done",
		DueDate: "2026-03-12",
	})

	require.NoError(t, err)
	assert.Contains(t, notifier.Canceled, 2)
	assert.Empty(t, notifier.Scheduled)
}

func TestEditTask_Execute_NotFound(t *testing.T) {
	uc := newEditTask(testutil.NewMockTaskRepository(), testutil.NewMockNotifier(), fixedClock())

	_, err := uc.Execute(context.Background(), EditTaskInput{
		ID:      7,
		Title:   "x",
		DueDate: "2026-03-12",
	})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestEditTask_Execute_InvalidInputLeavesTaskUntouched(t *testing.T) {
	clock := fixedClock()
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[3] = openTask(3, clock.NowTime.Add(time.Hour))
	uc := newEditTask(repo, testutil.NewMockNotifier(), clock)

	_, err := uc.Execute(context.Background(), EditTaskInput{
		ID:      3,
		Title:   "",
		DueDate: "2026-03-12",
	})

	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Equal(t, "Task", repo.Tasks[3].Title)
}
