package cli_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/cli"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

func TestRun_ScoreCommand(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{
			"compliance-suite", "score",
			"--snapshot", sampleSnapshotPath,
			"--now", "2025-03-05T12:00:00Z",
		}, "test")
		gt.NoError(t, err)
	})

	t.Run("json", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{
			"compliance-suite", "score",
			"--snapshot", sampleSnapshotPath,
			"--now", "2025-03-05T12:00:00Z",
			"--json",
		}, "test")
		gt.NoError(t, err)
	})

	t.Run("malformed now", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{
			"compliance-suite", "score",
			"--snapshot", sampleSnapshotPath,
			"--now", "tomorrow",
		}, "test")
		gt.Value(t, err).NotNil()
	})

	t.Run("missing snapshot", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{
			"compliance-suite", "score",
			"--snapshot", "testdata/missing.toml",
		}, "test")
		gt.Value(t, err).NotNil()
	})
}

func TestPrintDashboard(t *testing.T) {
	score := 62.0
	hoursLeft := -2.0
	now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

	dashboard := &model.Dashboard{
		Now: now,
		Risk: &model.RiskSnapshot{
			OverallScore: 72,
			Level:        types.LevelHigh,
			Trend:        types.TrendUp,
			Categories: []model.CategorySummary{
				{Name: "Cyber", Score: 80, Level: types.LevelHigh},
			},
			TotalCount: 3,
		},
		Incidents: &model.IncidentSummary{
			Incidents: []model.IncidentView{
				{
					Incident: model.Incident{ID: "INC-102", Severity: types.IncidentSeverityMedium, Status: types.IncidentStatusOpen},
					SLA:      model.SLAResult{State: types.SLAStateBreached, HoursLeft: &hoursLeft},
				},
			},
			Open:     1,
			Breached: 1,
		},
		Compliance: &model.ComplianceOverview{
			Score:  &score,
			Status: types.ComplianceStatusAtRisk,
			Frameworks: []model.FrameworkView{
				{Framework: model.Framework{Name: "SOC 2", CriticalFindings: 2}, Status: types.ComplianceStatusAtRisk, HasCriticalFindings: true},
			},
		},
		Lifecycle: []model.LifecycleSummary{
			{
				Kind:    types.LifecycleKindVendor,
				Records: []model.LifecycleView{{Record: model.LifecycleRecord{Name: "Acme Hosting"}, EffectiveStatus: types.LifecycleStatusExpired}},
				Expired: 1,
			},
		},
		Deadlines: &model.DeadlineView{
			Pending: []model.DeadlineEntry{
				{Deadline: model.Deadline{Title: "Pen test", DueDate: now.Add(-48 * time.Hour), Priority: types.PriorityHigh}, Overdue: true},
			},
			OverdueCount: 1,
		},
		UnreadNotices: 2,
	}

	var buf bytes.Buffer
	cli.PrintDashboard(&buf, dashboard)

	out := buf.String()
	gt.String(t, out).Contains("Cyber")
	gt.String(t, out).Contains("INC-102")
	gt.String(t, out).Contains("BREACHED")
	gt.String(t, out).Contains("SOC 2")
	gt.String(t, out).Contains("2 critical findings")
	gt.String(t, out).Contains("Acme Hosting")
	gt.String(t, out).Contains("EXPIRED")
	gt.String(t, out).Contains("Pen test")
	gt.String(t, out).Contains("2025-03-03")
	gt.String(t, out).Contains("Unread notifications: 2")
}
