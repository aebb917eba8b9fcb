// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// Task represents a user-created reminder item.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created      time.Time `json:"created"`               // Creation time, set once
	Due          time.Time `json:"due"`                   // Deadline (always a valid point in time)
	Title        string    `json:"title"`                 // Title (required)
	Description  string    `json:"description,omitempty"` // Free text (optional)
	Category     Category  `json:"category,omitempty"`    // Category tag (optional)
	Priority     Priority  `json:"priority"`              // Priority level
	ReminderLead int       `json:"reminderLead"`          // Minutes before Due at which the reminder fires
	Completed    bool      `json:"completed"`             // Completion flag, freely reversible
	ID           int       `json:"-"`                     // Task ID (stored as map key, not in value)
}

// ReminderAt returns the point in time at which the task's reminder
// should fire (Due minus the lead time).
func (t *Task) ReminderAt() time.Time {
	return t.Due.Add(-time.Duration(t.ReminderLead) * time.Minute)
}

// Priority represents the urgency level assigned by the user.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// AllPriorities returns all valid priority values, lowest first.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the priority.
func (p Priority) Display() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return string(p)
	}
}

// ParsePriority parses a priority string. The legacy Indonesian labels
// (tinggi/sedang/rendah) found in old exports are accepted as aliases.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "rendah":
		return PriorityLow, nil
	case "medium", "sedang", "":
		return PriorityMedium, nil
	case "high", "tinggi":
		return PriorityHigh, nil
	default:
		return "", ErrInvalidPriority
	}
}

// Category classifies a task. An empty category is allowed; unknown
// values are kept as-is and displayed verbatim.
type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategorySchool   Category = "school"

	// CategoryAll is a filter value, never stored on a task.
	CategoryAll Category = "all"
)

// AllCategories returns the fixed category enumeration.
func AllCategories() []Category {
	return []Category{CategoryPersonal, CategoryWork, CategorySchool}
}

// Display returns the category label. Unknown values fall back to the
// raw string.
func (c Category) Display() string {
	switch c {
	case CategoryPersonal:
		return "Personal"
	case CategoryWork:
		return "Work"
	case CategorySchool:
		return "School"
	case CategoryAll:
		return "All"
	default:
		return string(c)
	}
}

// Time-of-day a date-only deadline resolves to.
const endOfDayHour, endOfDayMinute = 23, 59

// ResolveDue combines date and time form fields into a deadline.
// The date is required ("2006-01-02"); the time ("15:04") is optional
// and defaults to 23:59 of the given day.
func ResolveDue(date, clock string, loc *time.Location) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}, ErrMissingDue
	}
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDue
	}

	clock = strings.TrimSpace(clock)
	if clock == "" {
		return time.Date(day.Year(), day.Month(), day.Day(), endOfDayHour, endOfDayMinute, 0, 0, loc), nil
	}
	at, err := time.ParseInLocation("15:04", clock, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDue
	}
	return time.Date(day.Year(), day.Month(), day.Day(), at.Hour(), at.Minute(), 0, 0, loc), nil
}
