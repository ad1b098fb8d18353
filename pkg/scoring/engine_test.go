package scoring_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/scoring"
)

func sampleSnapshot() *model.Snapshot {
	return &model.Snapshot{
		Risk: model.RiskAssessment{OverallScore: 72, PreviousScore: 68, Items: sampleRiskItems()},
		Incidents: []model.Incident{
			{ID: "INC-1", Severity: types.IncidentSeverityCritical, Status: types.IncidentStatusOpen, CreatedAt: refNow.Add(-30 * time.Hour), SLADeadline: timePtr(refNow.Add(-6 * time.Hour))},
			{ID: "INC-2", Severity: types.IncidentSeverityLow, Status: types.IncidentStatusResolved, CreatedAt: refNow.Add(-30 * time.Hour)},
		},
		Compliance: model.ComplianceAssessment{
			Frameworks: []model.Framework{{ID: "iso27001", Score: floatPtr(85)}},
		},
		Lifecycle: []model.LifecycleRecord{
			{ID: "v1", Kind: types.LifecycleKindVendor, Status: types.LifecycleStatusActive, ExpiryDate: timePtr(refNow.Add(-time.Hour))},
			{ID: "d1", Kind: types.LifecycleKindDocument, Status: types.LifecycleStatusApproved},
			{ID: "p1", Kind: types.LifecycleKindPolicy, Status: types.LifecycleStatusActive, NextReviewDate: timePtr(refNow.Add(scoring.Days(5)))},
		},
		Deadlines: []model.Deadline{
			{ID: "t1", DueDate: refNow.Add(-time.Hour)},
		},
		Notifications: []model.Notification{
			{ID: "n1"},
			{ID: "n2", Read: true},
			{ID: "n3"},
		},
	}
}

func TestEngine_Score(t *testing.T) {
	dashboard := scoring.New().Score(sampleSnapshot(), refNow)

	gt.Value(t, dashboard.Now).Equal(refNow)
	gt.Value(t, dashboard.Risk.Level).Equal(types.LevelHigh)
	gt.Value(t, dashboard.Risk.CriticalCount).Equal(2)
	gt.Value(t, dashboard.Incidents.Breached).Equal(1)
	gt.Value(t, dashboard.Compliance.Status).Equal(types.ComplianceStatusCompliant)
	gt.Value(t, dashboard.Deadlines.OverdueCount).Equal(1)
	gt.Value(t, dashboard.UnreadNotices).Equal(2)

	gt.A(t, dashboard.Lifecycle).Length(3)
	gt.Value(t, dashboard.Lifecycle[0].Kind).Equal(types.LifecycleKindVendor)
	gt.Value(t, dashboard.Lifecycle[0].Expired).Equal(1)
	gt.Value(t, dashboard.Lifecycle[1].Kind).Equal(types.LifecycleKindDocument)
	gt.Value(t, dashboard.Lifecycle[1].Records[0].EffectiveStatus).Equal(types.LifecycleStatusApproved)
	gt.Value(t, dashboard.Lifecycle[2].ExpiringSoon).Equal(1)
}

func TestEngine_ScoreIsRepeatable(t *testing.T) {
	engine := scoring.New()
	snapshot := sampleSnapshot()

	first := engine.Score(snapshot, refNow)
	second := engine.Score(snapshot, refNow)
	gt.Value(t, first).Equal(second)
}

func TestEngine_ScoreDoesNotMutateSnapshot(t *testing.T) {
	snapshot := sampleSnapshot()
	before := sampleSnapshot()

	_ = scoring.New().Score(snapshot, refNow)
	gt.Value(t, snapshot).Equal(before)
}
