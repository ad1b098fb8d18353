package types

import "github.com/m-mizutani/goerr/v2"

// IncidentSeverity represents the severity assigned to an incident
type IncidentSeverity string

const (
	IncidentSeverityCritical IncidentSeverity = "CRITICAL"
	IncidentSeverityHigh     IncidentSeverity = "HIGH"
	IncidentSeverityMedium   IncidentSeverity = "MEDIUM"
	IncidentSeverityLow      IncidentSeverity = "LOW"
)

// AllIncidentSeverities returns all valid incident severities
func AllIncidentSeverities() []IncidentSeverity {
	return []IncidentSeverity{
		IncidentSeverityCritical,
		IncidentSeverityHigh,
		IncidentSeverityMedium,
		IncidentSeverityLow,
	}
}

// IsValid checks if the incident severity is valid
func (s IncidentSeverity) IsValid() bool {
	switch s {
	case IncidentSeverityCritical,
		IncidentSeverityHigh,
		IncidentSeverityMedium,
		IncidentSeverityLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the incident severity
func (s IncidentSeverity) String() string {
	return string(s)
}

// ParseIncidentSeverity parses a string into an IncidentSeverity
func ParseIncidentSeverity(s string) (IncidentSeverity, error) {
	severity := IncidentSeverity(Normalize(s))
	if !severity.IsValid() {
		return "", goerr.New("invalid incident severity", goerr.V("severity", s))
	}
	return severity, nil
}

// IncidentStatus represents the workflow status of an incident
type IncidentStatus string

const (
	IncidentStatusOpen       IncidentStatus = "OPEN"
	IncidentStatusInProgress IncidentStatus = "IN_PROGRESS"
	IncidentStatusResolved   IncidentStatus = "RESOLVED"
	IncidentStatusClosed     IncidentStatus = "CLOSED"
)

// AllIncidentStatuses returns all valid incident statuses in workflow order
func AllIncidentStatuses() []IncidentStatus {
	return []IncidentStatus{
		IncidentStatusOpen,
		IncidentStatusInProgress,
		IncidentStatusResolved,
		IncidentStatusClosed,
	}
}

// IsValid checks if the incident status is valid
func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentStatusOpen,
		IncidentStatusInProgress,
		IncidentStatusResolved,
		IncidentStatusClosed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the incident no longer runs against its SLA
func (s IncidentStatus) IsTerminal() bool {
	return s == IncidentStatusResolved || s == IncidentStatusClosed
}

// Order returns the position of the status in the workflow, or -1 if unknown
func (s IncidentStatus) Order() int {
	for i, status := range AllIncidentStatuses() {
		if status == s {
			return i
		}
	}
	return -1
}

// CanTransitionTo reports whether moving from s to next keeps the workflow
// moving forward. Staying in the same status is not a transition.
func (s IncidentStatus) CanTransitionTo(next IncidentStatus) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}
	return next.Order() > s.Order()
}

// String returns the string representation of the incident status
func (s IncidentStatus) String() string {
	return string(s)
}

// ParseIncidentStatus parses a string into an IncidentStatus
func ParseIncidentStatus(s string) (IncidentStatus, error) {
	status := IncidentStatus(Normalize(s))
	if !status.IsValid() {
		return "", goerr.New("invalid incident status", goerr.V("status", s))
	}
	return status, nil
}
