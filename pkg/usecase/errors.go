package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrDeadlineNotFound     = errors.New("deadline not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrIncidentNotFound     = errors.New("incident not found")

	// Status errors
	ErrDeadlineAlreadyCompleted = errors.New("deadline is already completed")
	ErrInvalidTransition        = errors.New("invalid incident status transition")

	// Input errors
	ErrInvalidStatus = errors.New("invalid status")
)

// Context keys for error values
const (
	DeadlineIDKey     = "deadline_id"
	NotificationIDKey = "notification_id"
	IncidentIDKey     = "incident_id"
)
