package scoring_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/scoring"
)

func sampleRiskItems() []model.RiskItem {
	return []model.RiskItem{
		{ID: "R-1", Title: "Ransomware on file servers", Category: "Cyber", Impact: 5, Likelihood: 4},
		{ID: "R-2", Title: "Phishing credential theft", Category: "Cyber", Impact: 4, Likelihood: 4},
		{ID: "R-3", Title: "Vendor data breach", Category: "Third Party", Impact: 4, Likelihood: 3},
		{ID: "R-4", Title: "GDPR reporting delay", Category: "Regulatory", Impact: 3, Likelihood: 2},
		{ID: "R-5", Title: "Lost laptop", Category: "Cyber", Impact: 5, Likelihood: 4},
		{ID: "R-6", Title: "Office flood", Category: "Operational", Impact: 1, Likelihood: 1},
	}
}

func TestAggregateRisk_HeatMap(t *testing.T) {
	snapshot := scoring.New().AggregateRisk(&model.RiskAssessment{
		OverallScore:  72,
		PreviousScore: 68,
		Items:         sampleRiskItems(),
	})

	gt.Value(t, len(snapshot.HeatMap)).Equal(5)

	cell := snapshot.Cell(5, 4)
	gt.Value(t, cell).NotNil()
	gt.Value(t, cell.Count).Equal(2)
	gt.A(t, cell.Members).Length(2)
	gt.Value(t, cell.Members[0].ID).Equal("R-1")
	gt.Value(t, cell.Members[1].ID).Equal("R-5")
	gt.Value(t, cell.Score).Equal(20)
	gt.Value(t, cell.Level).Equal(types.LevelCritical)

	gt.Value(t, snapshot.Cell(2, 2)).Nil()

	for key, c := range snapshot.HeatMap {
		gt.Value(t, c.Count).Equal(len(c.Members))
		gt.Bool(t, c.Count > 0).True()
		gt.Value(t, model.HeatMapKey(c.Impact, c.Likelihood)).Equal(key)
	}
}

func TestAggregateRisk_Rollups(t *testing.T) {
	engine := scoring.New()
	items := sampleRiskItems()
	snapshot := engine.AggregateRisk(&model.RiskAssessment{Items: items})

	// recompute directly from the items with the heat-map classifier
	var critical, high int
	for _, item := range items {
		switch engine.ClassifyHeatMap(item.Impact * item.Likelihood) {
		case types.LevelCritical:
			critical++
		case types.LevelHigh:
			high++
		}
	}

	gt.Value(t, snapshot.CriticalCount).Equal(critical)
	gt.Value(t, snapshot.HighCount).Equal(high)
	gt.Value(t, snapshot.TotalCount).Equal(len(items))
	gt.Value(t, snapshot.CriticalCount).Equal(2)
	gt.Value(t, snapshot.HighCount).Equal(2)
}

func TestAggregateRisk_OverallAndTrend(t *testing.T) {
	engine := scoring.New()

	snapshot := engine.AggregateRisk(&model.RiskAssessment{OverallScore: 72, PreviousScore: 68})
	gt.Value(t, snapshot.Level).Equal(types.LevelHigh)
	gt.Value(t, snapshot.Trend).Equal(types.TrendUp)

	snapshot = engine.AggregateRisk(&model.RiskAssessment{OverallScore: 40, PreviousScore: 55})
	gt.Value(t, snapshot.Level).Equal(types.LevelLow)
	gt.Value(t, snapshot.Trend).Equal(types.TrendDown)

	snapshot = engine.AggregateRisk(&model.RiskAssessment{OverallScore: 140, PreviousScore: 100})
	gt.Value(t, snapshot.OverallScore).Equal(100.0)
	gt.Value(t, snapshot.Level).Equal(types.LevelCritical)
	gt.Value(t, snapshot.Trend).Equal(types.TrendNone)
}

func TestAggregateRisk_SuppliedCategories(t *testing.T) {
	snapshot := scoring.New().AggregateRisk(&model.RiskAssessment{
		Categories: []model.CategoryScore{
			{Name: "Cyber", Score: 88},
			{Name: "Regulatory", Score: 55},
			{Name: "Financial", Score: -5},
		},
		Items: sampleRiskItems(),
	})

	gt.A(t, snapshot.Categories).Length(3)
	gt.Value(t, snapshot.Categories[0]).Equal(model.CategorySummary{Name: "Cyber", Score: 88, Level: types.LevelCritical})
	gt.Value(t, snapshot.Categories[1].Level).Equal(types.LevelMedium)
	gt.Value(t, snapshot.Categories[2].Score).Equal(0.0)
	gt.Value(t, snapshot.Categories[2].Level).Equal(types.LevelMinimal)
}

func TestAggregateRisk_DerivedCategories(t *testing.T) {
	snapshot := scoring.New().AggregateRisk(&model.RiskAssessment{Items: sampleRiskItems()})

	gt.A(t, snapshot.Categories).Length(4)

	cyber := snapshot.Categories[0]
	gt.Value(t, cyber.Name).Equal("Cyber")
	gt.Bool(t, cyber.Derived).True()
	// (20 + 16 + 20) / 3 * 4
	gt.Value(t, cyber.Score).Equal(float64(20+16+20) / 3 * 4)
	gt.Value(t, cyber.Level).Equal(types.LevelHigh)

	gt.Value(t, snapshot.Categories[1].Name).Equal("Third Party")
	gt.Value(t, snapshot.Categories[1].Score).Equal(48.0)
	gt.Value(t, snapshot.Categories[3].Name).Equal("Operational")
	gt.Value(t, snapshot.Categories[3].Score).Equal(4.0)
	gt.Value(t, snapshot.Categories[3].Level).Equal(types.LevelMinimal)
}

func TestAggregateRisk_ClampsOrdinals(t *testing.T) {
	snapshot := scoring.New().AggregateRisk(&model.RiskAssessment{
		Items: []model.RiskItem{
			{ID: "x", Impact: 9, Likelihood: 0},
			{ID: "y", Impact: 5, Likelihood: 1},
		},
	})

	gt.Value(t, len(snapshot.HeatMap)).Equal(1)
	cell := snapshot.Cell(5, 1)
	gt.Value(t, cell.Count).Equal(2)
	gt.Value(t, cell.Level).Equal(types.LevelLow)
}

func TestAggregateRisk_Empty(t *testing.T) {
	snapshot := scoring.New().AggregateRisk(&model.RiskAssessment{})
	gt.Value(t, snapshot.TotalCount).Equal(0)
	gt.Value(t, len(snapshot.HeatMap)).Equal(0)
	gt.A(t, snapshot.Categories).Length(0)
	gt.Value(t, snapshot.Level).Equal(types.LevelMinimal)
}

func TestRiskSnapshot_Grid(t *testing.T) {
	engine := scoring.New()
	snapshot := engine.AggregateRisk(&model.RiskAssessment{Items: sampleRiskItems()})

	grid := snapshot.Grid(engine.ClassifyHeatMap)
	gt.A(t, grid).Length(5)

	top := grid[0]
	gt.A(t, top).Length(5)
	gt.Value(t, top[0].Impact).Equal(5)
	gt.Value(t, top[0].Likelihood).Equal(1)
	gt.Value(t, top[3].Likelihood).Equal(4)
	gt.Value(t, top[3].Count).Equal(2)
	gt.Value(t, top[4].Count).Equal(0)
	gt.Value(t, top[4].Level).Equal(types.LevelCritical)

	bottom := grid[4]
	gt.Value(t, bottom[0].Impact).Equal(1)
	gt.Value(t, bottom[0].Count).Equal(1)

	// empty cells are not materialized into the heat map
	gt.Value(t, len(snapshot.HeatMap)).Equal(5)
}
