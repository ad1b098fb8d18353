package model

import "github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"

// CategorySummary is a classified category of a RiskSnapshot
type CategorySummary struct {
	Name  string      `json:"name"`
	Score float64     `json:"score"`
	Level types.Level `json:"level"`
	// Derived is true when the score was computed from member items
	// instead of being supplied with the assessment.
	Derived bool `json:"derived"`
}

// HeatMapCell is one impact×likelihood bucket.
// Count always equals len(Members).
type HeatMapCell struct {
	Impact     int         `json:"impact"`
	Likelihood int         `json:"likelihood"`
	Score      int         `json:"score"`
	Level      types.Level `json:"level"`
	Count      int         `json:"count"`
	Members    []RiskItem  `json:"members"`
}

// RiskSnapshot is the derived view of a RiskAssessment
type RiskSnapshot struct {
	OverallScore  float64                 `json:"overall_score"`
	PreviousScore float64                 `json:"previous_score"`
	Level         types.Level             `json:"level"`
	Trend         types.Trend             `json:"trend"`
	Categories    []CategorySummary       `json:"categories"`
	HeatMap       map[string]*HeatMapCell `json:"heat_map"`

	CriticalCount int `json:"critical_count"`
	HighCount     int `json:"high_count"`
	TotalCount    int `json:"total_count"`
}

// Cell returns the heat-map bucket for the given ordinals, or nil if no item falls into it
func (s *RiskSnapshot) Cell(impact, likelihood int) *HeatMapCell {
	return s.HeatMap[HeatMapKey(impact, likelihood)]
}

// Grid returns the full 5×5 matrix. Rows are impact from 5 down to 1 and columns
// are likelihood from 1 up to 5. Cells without items are returned with zero
// count and no members; they are not added to HeatMap.
func (s *RiskSnapshot) Grid(classify func(score int) types.Level) [][]HeatMapCell {
	grid := make([][]HeatMapCell, 0, MaxOrdinal)
	for impact := MaxOrdinal; impact >= MinOrdinal; impact-- {
		row := make([]HeatMapCell, 0, MaxOrdinal)
		for likelihood := MinOrdinal; likelihood <= MaxOrdinal; likelihood++ {
			if cell := s.Cell(impact, likelihood); cell != nil {
				row = append(row, *cell)
				continue
			}
			row = append(row, HeatMapCell{
				Impact:     impact,
				Likelihood: likelihood,
				Score:      impact * likelihood,
				Level:      classify(impact * likelihood),
			})
		}
		grid = append(grid, row)
	}
	return grid
}
