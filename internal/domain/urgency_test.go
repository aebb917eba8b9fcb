package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		due       time.Time
		completed bool
		want      Urgency
	}{
		{
			name: "due tomorrow is upcoming",
			due:  now.AddDate(0, 0, 1),
			want: UrgencyUpcoming,
		},
		{
			name: "due yesterday is overdue",
			due:  now.AddDate(0, 0, -1),
			want: UrgencyOverdue,
		},
		{
			name: "due later today is due today",
			due:  time.Date(2024, 3, 15, 23, 59, 0, 0, time.Local),
			want: UrgencyDueToday,
		},
		{
			name: "due earlier today is still due today, not overdue",
			due:  time.Date(2024, 3, 15, 8, 0, 0, 0, time.Local),
			want: UrgencyDueToday,
		},
		{
			name:      "completed wins over overdue",
			due:       now.AddDate(0, 0, -3),
			completed: true,
			want:      UrgencyCompleted,
		},
		{
			name:      "completed wins over upcoming",
			due:       now.AddDate(0, 0, 3),
			completed: true,
			want:      UrgencyCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.due, tt.completed, now))
		})
	}
}

// Classification must be total and assign exactly one urgency to every
// (due, completed) combination.
func TestClassify_TotalAndExclusive(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 30, 0, 0, time.Local)
	known := []Urgency{UrgencyCompleted, UrgencyOverdue, UrgencyDueToday, UrgencyUpcoming}

	dues := []time.Time{
		now.AddDate(0, 0, -30),
		now.AddDate(0, 0, -1),
		now.Add(-time.Hour),
		now,
		now.Add(time.Hour),
		now.AddDate(0, 0, 1),
		now.AddDate(0, 1, 0),
	}
	for _, due := range dues {
		for _, completed := range []bool{false, true} {
			got := Classify(due, completed, now)
			assert.Contains(t, known, got, "due=%v completed=%v", due, completed)
		}
	}
}

func TestUrgency_Display(t *testing.T) {
	assert.Equal(t, "Completed", UrgencyCompleted.Display())
	assert.Equal(t, "Overdue", UrgencyOverdue.Display())
	assert.Equal(t, "Due Today", UrgencyDueToday.Display())
	assert.Equal(t, "Upcoming", UrgencyUpcoming.Display())
}
