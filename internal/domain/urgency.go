package domain

import "time"

// Urgency is the derived display status of a task. It is computed from
// the due time and completion flag on every read and never persisted.
type Urgency string

const (
	UrgencyCompleted Urgency = "completed" // Task is done
	UrgencyOverdue   Urgency = "overdue"   // Due strictly in the past, before today
	UrgencyDueToday  Urgency = "due_today" // Due on the current calendar day
	UrgencyUpcoming  Urgency = "upcoming"  // Due on a later day
)

// Classify maps (due, completed) to exactly one urgency value.
// Day comparison uses the calendar date in now's location, not an
// elapsed-24h window: a task due earlier today is DueToday, not
// Overdue.
func Classify(due time.Time, completed bool, now time.Time) Urgency {
	if completed {
		return UrgencyCompleted
	}
	if sameDay(due, now) {
		return UrgencyDueToday
	}
	if due.Before(now) {
		return UrgencyOverdue
	}
	return UrgencyUpcoming
}

// Urgency returns the task's classification at the given time.
func (t *Task) Urgency(now time.Time) Urgency {
	return Classify(t.Due, t.Completed, now)
}

// Display returns a human-readable representation of the urgency.
func (u Urgency) Display() string {
	switch u {
	case UrgencyCompleted:
		return "Completed"
	case UrgencyOverdue:
		return "Overdue"
	case UrgencyDueToday:
		return "Due Today"
	case UrgencyUpcoming:
		return "Upcoming"
	default:
		return string(u)
	}
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
