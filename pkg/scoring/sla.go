package scoring

import (
	"time"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

// EvaluateSLA computes the SLA standing of incident at now.
//
// Terminal incidents are always MET at 100% regardless of their deadline.
// Open incidents without a deadline are ON_TRACK with no percentage. Otherwise
// the incident is BREACHED once now is past the deadline, AT_RISK while the
// remaining time is within the at-risk window (inclusive), and ON_TRACK before that.
func (e *Engine) EvaluateSLA(incident *model.Incident, now time.Time) model.SLAResult {
	if incident.Status.IsTerminal() {
		return model.SLAResult{
			Percentage: ptr(100.0),
			State:      types.SLAStateMet,
		}
	}

	if !incident.Status.IsValid() {
		return model.SLAResult{State: types.SLAStateUnknown}
	}

	if incident.SLADeadline == nil {
		return model.SLAResult{State: types.SLAStateOnTrack}
	}

	deadline := *incident.SLADeadline
	remaining := deadline.Sub(now)

	result := model.SLAResult{
		Percentage: ptr(ElapsedPercentage(incident.CreatedAt, deadline, now)),
		HoursLeft:  ptr(remaining.Hours()),
	}

	switch {
	case remaining < 0:
		result.State = types.SLAStateBreached
	case remaining <= e.slaAtRiskWindow:
		result.State = types.SLAStateAtRisk
	default:
		result.State = types.SLAStateOnTrack
	}

	return result
}

// SummarizeIncidents evaluates every incident at now and rolls up SLA standing.
// Incidents keep their input order.
func (e *Engine) SummarizeIncidents(incidents []model.Incident, now time.Time) *model.IncidentSummary {
	summary := &model.IncidentSummary{
		Incidents: make([]model.IncidentView, 0, len(incidents)),
	}

	rollups := make(map[types.IncidentSeverity]*model.SeverityRollup)
	for _, sev := range types.AllIncidentSeverities() {
		rollups[sev] = &model.SeverityRollup{Severity: sev}
	}

	for i := range incidents {
		incident := incidents[i]
		sla := e.EvaluateSLA(&incident, now)
		summary.Incidents = append(summary.Incidents, model.IncidentView{
			Incident: incident,
			SLA:      sla,
		})

		if incident.Status.IsTerminal() {
			continue
		}

		summary.Open++
		rollup := rollups[incident.Severity]
		if rollup != nil {
			rollup.Open++
		}

		switch sla.State {
		case types.SLAStateAtRisk:
			summary.AtRisk++
			if rollup != nil {
				rollup.AtRisk++
			}
		case types.SLAStateBreached:
			summary.Breached++
			if rollup != nil {
				rollup.Breached++
			}
		}
	}

	for _, sev := range types.AllIncidentSeverities() {
		summary.BySeverity = append(summary.BySeverity, *rollups[sev])
	}

	return summary
}

func ptr[T any](v T) *T {
	return &v
}
