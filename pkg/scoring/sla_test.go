package scoring_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/scoring"
)

func openIncident(deadline *time.Time) *model.Incident {
	return &model.Incident{
		ID:          "INC-001",
		Title:       "Unauthorized access to payroll share",
		Severity:    types.IncidentSeverityHigh,
		Status:      types.IncidentStatusOpen,
		CreatedAt:   refNow.Add(-48 * time.Hour),
		SLADeadline: deadline,
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestEvaluateSLA_States(t *testing.T) {
	engine := scoring.New()

	tests := []struct {
		name     string
		deadline time.Time
		want     types.SLAState
	}{
		{name: "exactly 24h ahead is at risk", deadline: refNow.Add(24 * time.Hour), want: types.SLAStateAtRisk},
		{name: "24h and one second ahead is on track", deadline: refNow.Add(24*time.Hour + time.Second), want: types.SLAStateOnTrack},
		{name: "one hour ahead is at risk", deadline: refNow.Add(time.Hour), want: types.SLAStateAtRisk},
		{name: "deadline now is at risk", deadline: refNow, want: types.SLAStateAtRisk},
		{name: "one second past is breached", deadline: refNow.Add(-time.Second), want: types.SLAStateBreached},
		{name: "days past is breached", deadline: refNow.Add(-72 * time.Hour), want: types.SLAStateBreached},
		{name: "a week ahead is on track", deadline: refNow.Add(7 * 24 * time.Hour), want: types.SLAStateOnTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.EvaluateSLA(openIncident(timePtr(tt.deadline)), refNow)
			gt.Value(t, got.State).Equal(tt.want)
			gt.Value(t, got.Percentage).NotNil()
			gt.Value(t, got.HoursLeft).NotNil()
		})
	}
}

func TestEvaluateSLA_Percentage(t *testing.T) {
	engine := scoring.New()

	// created 48h ago, deadline 48h ahead
	got := engine.EvaluateSLA(openIncident(timePtr(refNow.Add(48*time.Hour))), refNow)
	gt.Value(t, *got.Percentage).Equal(50.0)
	gt.Value(t, *got.HoursLeft).Equal(48.0)

	// deadline before creation counts as fully elapsed
	inc := openIncident(timePtr(refNow.Add(-72 * time.Hour)))
	got = engine.EvaluateSLA(inc, refNow)
	gt.Value(t, *got.Percentage).Equal(100.0)
	gt.Value(t, got.State).Equal(types.SLAStateBreached)
}

func TestEvaluateSLA_TerminalIsMet(t *testing.T) {
	engine := scoring.New()

	for _, status := range []types.IncidentStatus{types.IncidentStatusResolved, types.IncidentStatusClosed} {
		t.Run(status.String(), func(t *testing.T) {
			inc := openIncident(timePtr(refNow.Add(-240 * time.Hour)))
			inc.Status = status

			got := engine.EvaluateSLA(inc, refNow)
			gt.Value(t, got.State).Equal(types.SLAStateMet)
			gt.Value(t, *got.Percentage).Equal(100.0)
			gt.Value(t, got.HoursLeft).Nil()
		})
	}
}

func TestEvaluateSLA_NoDeadline(t *testing.T) {
	got := scoring.New().EvaluateSLA(openIncident(nil), refNow)
	gt.Value(t, got.State).Equal(types.SLAStateOnTrack)
	gt.Value(t, got.Percentage).Nil()
}

func TestEvaluateSLA_UnknownStatus(t *testing.T) {
	inc := openIncident(timePtr(refNow.Add(-time.Hour)))
	inc.Status = types.IncidentStatus("ESCALATED")

	got := scoring.New().EvaluateSLA(inc, refNow)
	gt.Value(t, got.State).Equal(types.SLAStateUnknown)
}

func TestEvaluateSLA_Idempotent(t *testing.T) {
	engine := scoring.New()
	inc := openIncident(timePtr(refNow.Add(3 * time.Hour)))

	first := engine.EvaluateSLA(inc, refNow)
	second := engine.EvaluateSLA(inc, refNow)
	gt.Value(t, first.State).Equal(second.State)
	gt.Value(t, *first.Percentage).Equal(*second.Percentage)
	gt.Value(t, *first.HoursLeft).Equal(*second.HoursLeft)
}

func TestEvaluateSLA_CustomWindow(t *testing.T) {
	engine := scoring.New(scoring.WithSLAAtRiskWindow(4 * time.Hour))

	got := engine.EvaluateSLA(openIncident(timePtr(refNow.Add(5*time.Hour))), refNow)
	gt.Value(t, got.State).Equal(types.SLAStateOnTrack)

	got = engine.EvaluateSLA(openIncident(timePtr(refNow.Add(4*time.Hour))), refNow)
	gt.Value(t, got.State).Equal(types.SLAStateAtRisk)
}

func TestSummarizeIncidents(t *testing.T) {
	incidents := []model.Incident{
		{ID: "a", Severity: types.IncidentSeverityCritical, Status: types.IncidentStatusOpen, CreatedAt: refNow.Add(-10 * time.Hour), SLADeadline: timePtr(refNow.Add(-time.Hour))},
		{ID: "b", Severity: types.IncidentSeverityCritical, Status: types.IncidentStatusInProgress, CreatedAt: refNow.Add(-10 * time.Hour), SLADeadline: timePtr(refNow.Add(2 * time.Hour))},
		{ID: "c", Severity: types.IncidentSeverityLow, Status: types.IncidentStatusOpen, CreatedAt: refNow.Add(-10 * time.Hour)},
		{ID: "d", Severity: types.IncidentSeverityHigh, Status: types.IncidentStatusClosed, CreatedAt: refNow.Add(-100 * time.Hour), SLADeadline: timePtr(refNow.Add(-50 * time.Hour))},
	}

	summary := scoring.New().SummarizeIncidents(incidents, refNow)

	gt.A(t, summary.Incidents).Length(4)
	gt.Value(t, summary.Incidents[0].Incident.ID).Equal("a")
	gt.Value(t, summary.Incidents[3].SLA.State).Equal(types.SLAStateMet)

	gt.Value(t, summary.Open).Equal(3)
	gt.Value(t, summary.Breached).Equal(1)
	gt.Value(t, summary.AtRisk).Equal(1)

	gt.A(t, summary.BySeverity).Length(4)
	critical := summary.BySeverity[0]
	gt.Value(t, critical.Severity).Equal(types.IncidentSeverityCritical)
	gt.Value(t, critical.Open).Equal(2)
	gt.Value(t, critical.Breached).Equal(1)
	gt.Value(t, critical.AtRisk).Equal(1)

	high := summary.BySeverity[1]
	gt.Value(t, high.Open).Equal(0)
}
