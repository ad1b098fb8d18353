package scoring

import (
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

// categoryScale converts a mean impact×likelihood product (max 25) to the 0–100 scale
const categoryScale = MaxScore / (model.MaxOrdinal * model.MaxOrdinal)

// AggregateRisk buckets the assessment's items into the heat map, counts
// critical and high items by the heat-map table, and classifies the overall
// and category scores with the severity table.
//
// Category scores are taken as supplied. Only when the assessment carries no
// category scores at all are they derived from the items as the mean
// impact×likelihood product scaled to 0–100, in order of first appearance.
func (e *Engine) AggregateRisk(assessment *model.RiskAssessment) *model.RiskSnapshot {
	overall := ClampScore(assessment.OverallScore)
	previous := ClampScore(assessment.PreviousScore)

	snapshot := &model.RiskSnapshot{
		OverallScore:  overall,
		PreviousScore: previous,
		Level:         e.severity.Classify(overall),
		Trend:         Direction(overall, previous),
		HeatMap:       make(map[string]*model.HeatMapCell),
		TotalCount:    len(assessment.Items),
	}

	for _, item := range assessment.Items {
		key := item.HeatMapKey()
		cell, ok := snapshot.HeatMap[key]
		if !ok {
			impact := model.ClampOrdinal(item.Impact)
			likelihood := model.ClampOrdinal(item.Likelihood)
			cell = &model.HeatMapCell{
				Impact:     impact,
				Likelihood: likelihood,
				Score:      impact * likelihood,
				Level:      e.ClassifyHeatMap(impact * likelihood),
			}
			snapshot.HeatMap[key] = cell
		}
		cell.Members = append(cell.Members, item)
		cell.Count = len(cell.Members)

		switch cell.Level {
		case types.LevelCritical:
			snapshot.CriticalCount++
		case types.LevelHigh:
			snapshot.HighCount++
		}
	}

	if len(assessment.Categories) > 0 {
		for _, c := range assessment.Categories {
			score := ClampScore(c.Score)
			snapshot.Categories = append(snapshot.Categories, model.CategorySummary{
				Name:  c.Name,
				Score: score,
				Level: e.severity.Classify(score),
			})
		}
	} else {
		snapshot.Categories = e.deriveCategories(assessment.Items)
	}

	return snapshot
}

func (e *Engine) deriveCategories(items []model.RiskItem) []model.CategorySummary {
	type acc struct {
		sum   int
		count int
	}

	var order []string
	groups := make(map[string]*acc)
	for _, item := range items {
		g, ok := groups[item.Category]
		if !ok {
			g = &acc{}
			groups[item.Category] = g
			order = append(order, item.Category)
		}
		g.sum += item.Score()
		g.count++
	}

	summaries := make([]model.CategorySummary, 0, len(order))
	for _, name := range order {
		g := groups[name]
		score := ClampScore(float64(g.sum) / float64(g.count) * categoryScale)
		summaries = append(summaries, model.CategorySummary{
			Name:    name,
			Score:   score,
			Level:   e.severity.Classify(score),
			Derived: true,
		})
	}
	return summaries
}
