package model

import (
	"time"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

// LifecycleRecord is a vendor, document or policy whose standing depends on an
// expiry or review date layered on top of its stored status
type LifecycleRecord struct {
	ID             string                `json:"id"`
	Kind           types.LifecycleKind   `json:"kind"`
	Name           string                `json:"name"`
	Status         types.LifecycleStatus `json:"status"`
	Score          *float64              `json:"score,omitempty"`
	ExpiryDate     *time.Time            `json:"expiry_date,omitempty"`
	NextReviewDate *time.Time            `json:"next_review_date,omitempty"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// ReferenceDate is the date that drives date-based overrides: the expiry date,
// or the next review date for records without one.
func (r *LifecycleRecord) ReferenceDate() *time.Time {
	if r.ExpiryDate != nil {
		return r.ExpiryDate
	}
	return r.NextReviewDate
}

// LifecycleView is a lifecycle record with its derived standing
type LifecycleView struct {
	Record          LifecycleRecord       `json:"record"`
	EffectiveStatus types.LifecycleStatus `json:"effective_status"`
	// Overridden is true when EffectiveStatus was forced by a date
	Overridden bool `json:"overridden"`
	// ScoreLevel is the severity of Score, LevelUnknown when no score is present
	ScoreLevel   types.Level `json:"score_level"`
	Expired      bool        `json:"expired"`
	ExpiringSoon bool        `json:"expiring_soon"`
}

// LifecycleSummary is the ordered listing of one kind of lifecycle record
type LifecycleSummary struct {
	Kind         types.LifecycleKind `json:"kind"`
	Records      []LifecycleView     `json:"records"`
	Expired      int                 `json:"expired"`
	ExpiringSoon int                 `json:"expiring_soon"`
}
