package model

import (
	"time"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

// Incident is a security or compliance incident tracked against an SLA
type Incident struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Severity    types.IncidentSeverity `json:"severity"`
	Status      types.IncidentStatus   `json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
	SLADeadline *time.Time             `json:"sla_deadline,omitempty"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// SLAResult is the SLA evaluation of an incident at one instant.
// Percentage is nil when there is no countdown to show.
type SLAResult struct {
	Percentage *float64       `json:"percentage,omitempty"`
	State      types.SLAState `json:"state"`
	// HoursLeft is negative once the deadline has passed. Nil when no deadline applies.
	HoursLeft *float64 `json:"hours_left,omitempty"`
}

// IncidentView pairs an incident with its SLA evaluation
type IncidentView struct {
	Incident Incident  `json:"incident"`
	SLA      SLAResult `json:"sla"`
}

// SeverityRollup counts incidents of one severity by SLA standing
type SeverityRollup struct {
	Severity types.IncidentSeverity `json:"severity"`
	Open     int                    `json:"open"`
	AtRisk   int                    `json:"at_risk"`
	Breached int                    `json:"breached"`
}

// IncidentSummary is the derived view of an incident snapshot
type IncidentSummary struct {
	Incidents  []IncidentView   `json:"incidents"`
	Open       int              `json:"open"`
	AtRisk     int              `json:"at_risk"`
	Breached   int              `json:"breached"`
	BySeverity []SeverityRollup `json:"by_severity"`
}
