package model

import (
	"time"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

// Framework is a regulatory framework (ISO 27001, SOC 2, ...) and its latest assessment.
// A nil Score means the framework has not been assessed yet, which is
// distinct from an assessed score of zero.
type Framework struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Score             *float64   `json:"score,omitempty"`
	ControlsCompliant int        `json:"controls_compliant"`
	TotalControls     int        `json:"total_controls"`
	CriticalFindings  int        `json:"critical_findings"`
	LastAssessedAt    *time.Time `json:"last_assessed_at,omitempty"`
}

// ComplianceAssessment is the raw compliance snapshot.
// OverallScore is optional; when absent it is derived from the frameworks.
type ComplianceAssessment struct {
	OverallScore  *float64    `json:"overall_score,omitempty"`
	PreviousScore *float64    `json:"previous_score,omitempty"`
	Frameworks    []Framework `json:"frameworks"`
}

// FrameworkView is a framework with its derived status
type FrameworkView struct {
	Framework       Framework              `json:"framework"`
	Status          types.ComplianceStatus `json:"status"`
	ControlCoverage float64                `json:"control_coverage"`
	// HasCriticalFindings is independent of Score
	HasCriticalFindings bool `json:"has_critical_findings"`
}

// ComplianceOverview is the derived view of a ComplianceAssessment
type ComplianceOverview struct {
	Score            *float64               `json:"score,omitempty"`
	Status           types.ComplianceStatus `json:"status"`
	Trend            types.Trend            `json:"trend"`
	Frameworks       []FrameworkView        `json:"frameworks"`
	CriticalFindings int                    `json:"critical_findings"`
	// ScoreDerived is true when Score was computed from framework scores
	ScoreDerived bool `json:"score_derived"`
}
