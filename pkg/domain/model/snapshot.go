package model

import (
	"time"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

// Snapshot is a complete set of records at one retrieval instant.
// Importing a snapshot replaces every record set; there is no partial update.
type Snapshot struct {
	Risk          RiskAssessment       `json:"risk"`
	Incidents     []Incident           `json:"incidents"`
	Compliance    ComplianceAssessment `json:"compliance"`
	Lifecycle     []LifecycleRecord    `json:"lifecycle"`
	Deadlines     []Deadline           `json:"deadlines"`
	Notifications []Notification       `json:"notifications"`
}

// LifecycleOf returns the lifecycle records of the given kind, preserving order
func (s *Snapshot) LifecycleOf(kind types.LifecycleKind) []LifecycleRecord {
	var records []LifecycleRecord
	for _, r := range s.Lifecycle {
		if r.Kind == kind {
			records = append(records, r)
		}
	}
	return records
}

// Dashboard is every derived view computed against one reference instant
type Dashboard struct {
	Now           time.Time           `json:"now"`
	Risk          *RiskSnapshot       `json:"risk,omitempty"`
	Incidents     *IncidentSummary    `json:"incidents,omitempty"`
	Compliance    *ComplianceOverview `json:"compliance,omitempty"`
	Lifecycle     []LifecycleSummary  `json:"lifecycle"`
	Deadlines     *DeadlineView       `json:"deadlines,omitempty"`
	UnreadNotices int                 `json:"unread_notices"`
}

// RefreshMetadata records the outcome of snapshot refreshes
type RefreshMetadata struct {
	LastRefreshSuccess time.Time `json:"last_refresh_success"`
	LastRefreshAttempt time.Time `json:"last_refresh_attempt"`
	Source             string    `json:"source"`
	RecordCount        int       `json:"record_count"`
}

// RecordCount returns the number of records in the snapshot, counting each
// assessment item, incident, framework, lifecycle record, deadline and notification
func (s *Snapshot) RecordCount() int {
	return len(s.Risk.Items) + len(s.Incidents) + len(s.Compliance.Frameworks) +
		len(s.Lifecycle) + len(s.Deadlines) + len(s.Notifications)
}
