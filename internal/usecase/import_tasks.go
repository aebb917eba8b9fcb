package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"tugasku/internal/domain"
)

// ImportTasksInput contains the YAML document to import.
type ImportTasksInput struct {
	Data []byte
}

// ImportTasksOutput contains the result of an import.
type ImportTasksOutput struct {
	Tasks   []*domain.Task // Imported tasks with their newly assigned ids
	Skipped int            // Records rejected by validation
}

// ImportTasks is the use case for loading tasks from a YAML export.
// Imported tasks always receive fresh ids so an import can never
// clobber existing tasks. Invalid records are skipped, not fatal, in
// keeping with the store's tolerance for damaged data.
type ImportTasks struct {
	tasks    domain.TaskRepository
	settings domain.SettingsStore
	notifier domain.Notifier
	clock    domain.Clock
	logger   domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(
	tasks domain.TaskRepository,
	settings domain.SettingsStore,
	notifier domain.Notifier,
	clock domain.Clock,
	logger domain.Logger,
) *ImportTasks {
	return &ImportTasks{
		tasks:    tasks,
		settings: settings,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

// Execute parses the document, persists the valid records and arms
// reminders for open tasks whose fire time is still in the future.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	var doc exportDocument
	if err := yaml.Unmarshal(in.Data, &doc); err != nil {
		return nil, fmt.Errorf("parse import: %w", err)
	}

	settings, err := uc.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	now := uc.clock.Now()
	out := &ImportTasksOutput{}
	for i, rec := range doc.Tasks {
		task, err := uc.rehydrate(rec, settings, now)
		if err != nil {
			uc.logger.Warn(0, "import", fmt.Sprintf("record %d skipped: %v", i+1, err))
			out.Skipped++
			continue
		}

		id, err := uc.tasks.NextID()
		if err != nil {
			return nil, fmt.Errorf("allocate task id: %w", err)
		}
		task.ID = id

		if err := uc.tasks.Save(task); err != nil {
			return nil, fmt.Errorf("save task: %w", err)
		}

		armReminder(uc.notifier, uc.logger, settings, task, now)
		out.Tasks = append(out.Tasks, task)
	}

	uc.logger.Info(0, "import", fmt.Sprintf("imported %d tasks, skipped %d", len(out.Tasks), out.Skipped))
	return out, nil
}

func (uc *ImportTasks) rehydrate(rec taskRecord, settings domain.Settings, now time.Time) (*domain.Task, error) {
	title := strings.TrimSpace(rec.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}

	due, err := time.Parse(time.RFC3339, rec.Due)
	if err != nil {
		return nil, domain.ErrInvalidDue
	}

	priority, err := domain.ParsePriority(rec.Priority)
	if err != nil {
		return nil, err
	}

	category, err := parseCategory(rec.Category)
	if err != nil {
		return nil, err
	}

	lead := rec.ReminderLead
	if lead == 0 {
		lead = settings.DefaultReminderLead
	}
	if !domain.IsValidReminderLead(lead) {
		return nil, domain.ErrInvalidReminderLead
	}

	created := now
	if rec.Created != "" {
		if t, err := time.Parse(time.RFC3339, rec.Created); err == nil {
			created = t
		}
	}

	return &domain.Task{
		Title:        title,
		Description:  strings.TrimSpace(rec.Description),
		Category:     category,
		Priority:     priority,
		Due:          due.In(now.Location()),
		ReminderLead: lead,
		Completed:    rec.Completed,
		Created:      created,
	}, nil
}
