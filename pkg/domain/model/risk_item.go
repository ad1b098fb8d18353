package model

import (
	"fmt"
	"time"
)

// Impact and likelihood are ordinals on a 1..5 scale
const (
	MinOrdinal = 1
	MaxOrdinal = 5
)

// RiskItem is a single assessed risk. It is replaced wholesale on re-assessment.
type RiskItem struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Impact     int       `json:"impact"`
	Likelihood int       `json:"likelihood"`
	AssessedAt time.Time `json:"assessed_at"`
}

// ClampOrdinal clamps v into [MinOrdinal, MaxOrdinal]
func ClampOrdinal(v int) int {
	if v < MinOrdinal {
		return MinOrdinal
	}
	if v > MaxOrdinal {
		return MaxOrdinal
	}
	return v
}

// Score returns impact×likelihood on the 1..25 scale, using clamped ordinals
func (r *RiskItem) Score() int {
	return ClampOrdinal(r.Impact) * ClampOrdinal(r.Likelihood)
}

// HeatMapKey returns the "impact-likelihood" bucket key of the item
func (r *RiskItem) HeatMapKey() string {
	return HeatMapKey(ClampOrdinal(r.Impact), ClampOrdinal(r.Likelihood))
}

// HeatMapKey formats a bucket key for the given ordinals
func HeatMapKey(impact, likelihood int) string {
	return fmt.Sprintf("%d-%d", impact, likelihood)
}

// CategoryScore is a pre-scored risk category supplied with an assessment
type CategoryScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// RiskAssessment is the raw risk snapshot of one assessment cycle
type RiskAssessment struct {
	OverallScore  float64         `json:"overall_score"`
	PreviousScore float64         `json:"previous_score"`
	Categories    []CategoryScore `json:"categories"`
	Items         []RiskItem      `json:"items"`
	AssessedAt    time.Time       `json:"assessed_at"`
}
