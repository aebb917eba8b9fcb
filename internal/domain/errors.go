package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrEmptyTitle          = errors.New("title cannot be empty")
	ErrMissingDue          = errors.New("due date is required")
	ErrInvalidDue          = errors.New("invalid due date")
	ErrInvalidPriority     = errors.New("invalid priority")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidReminderLead = errors.New("invalid reminder lead time")
	ErrInvalidTheme        = errors.New("invalid theme")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrNotifyUnavailable   = errors.New("notification command not available")
)
