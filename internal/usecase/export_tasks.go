package usecase

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"tugasku/internal/domain"
)

// taskRecord is the YAML export/import representation of a task. Times
// are RFC 3339 strings so exports stay readable and editable by hand.
// Fields are ordered to minimize memory padding.
type taskRecord struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description,omitempty"`
	Category     string `yaml:"category,omitempty"`
	Priority     string `yaml:"priority"`
	Due          string `yaml:"due"`
	Created      string `yaml:"created,omitempty"`
	ReminderLead int    `yaml:"reminder_lead"`
	ID           int    `yaml:"id"`
	Completed    bool   `yaml:"completed"`
}

// exportDocument is the top-level YAML structure.
type exportDocument struct {
	Tasks []taskRecord `yaml:"tasks"`
}

// ExportTasksOutput contains the serialized task collection.
type ExportTasksOutput struct {
	Data  []byte // YAML document
	Count int    // Number of exported tasks
}

// ExportTasks is the use case for dumping the task collection to YAML.
type ExportTasks struct {
	tasks domain.TaskRepository
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks domain.TaskRepository) *ExportTasks {
	return &ExportTasks{tasks: tasks}
}

// Execute serializes every stored task in ID order.
func (uc *ExportTasks) Execute(_ context.Context) (*ExportTasksOutput, error) {
	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	doc := exportDocument{Tasks: make([]taskRecord, 0, len(all))}
	for _, t := range all {
		doc.Tasks = append(doc.Tasks, taskRecord{
			ID:           t.ID,
			Title:        t.Title,
			Description:  t.Description,
			Category:     string(t.Category),
			Priority:     string(t.Priority),
			Due:          t.Due.Format(time.RFC3339),
			Created:      t.Created.Format(time.RFC3339),
			ReminderLead: t.ReminderLead,
			Completed:    t.Completed,
		})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return &ExportTasksOutput{Data: data, Count: len(doc.Tasks)}, nil
}
