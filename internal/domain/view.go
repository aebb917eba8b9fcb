package domain

import (
	"slices"
	"strings"
	"time"
)

// Tab selects which half of the task collection a view shows.
type Tab string

const (
	TabActive  Tab = "active"  // Open tasks, earliest deadline first
	TabHistory Tab = "history" // Completed tasks, newest first
)

// Query describes a task list view: the active tab, a free-text search
// term and a category restriction. The zero Query shows all active
// tasks.
// Fields are ordered to minimize memory padding.
type Query struct {
	Search   string   // Case-insensitive substring over title and description
	Category Category // Empty or CategoryAll passes everything
	Tab      Tab      // Defaults to TabActive when empty
}

// Match reports whether a single task passes the query's filters.
func (q Query) Match(t *Task) bool {
	switch q.Tab {
	case TabHistory:
		if !t.Completed {
			return false
		}
	default:
		if t.Completed {
			return false
		}
	}

	if s := strings.ToLower(strings.TrimSpace(q.Search)); s != "" {
		title := strings.ToLower(t.Title)
		desc := strings.ToLower(t.Description)
		if !strings.Contains(title, s) && !strings.Contains(desc, s) {
			return false
		}
	}

	if q.Category != "" && q.Category != CategoryAll && t.Category != q.Category {
		return false
	}

	return true
}

// ApplyQuery filters and orders tasks for display. Active views sort
// ascending by due time, history views descending by creation time.
// Both sorts are stable, so tasks that tie keep their insertion order.
// The input slice is not modified.
func ApplyQuery(tasks []*Task, q Query) []*Task {
	result := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if q.Match(t) {
			result = append(result, t)
		}
	}

	if q.Tab == TabHistory {
		slices.SortStableFunc(result, func(a, b *Task) int {
			return b.Created.Compare(a.Created)
		})
	} else {
		slices.SortStableFunc(result, func(a, b *Task) int {
			return a.Due.Compare(b.Due)
		})
	}

	return result
}

// Summary holds the header badge counts for the main screen.
type Summary struct {
	DueToday int // Active tasks due on the current calendar day
	Overdue  int // Active tasks overdue before today
}

// Summarize counts active tasks by urgency for the header badges.
func Summarize(tasks []*Task, now time.Time) Summary {
	var s Summary
	for _, t := range tasks {
		switch t.Urgency(now) {
		case UrgencyDueToday:
			s.DueToday++
		case UrgencyOverdue:
			s.Overdue++
		}
	}
	return s
}
