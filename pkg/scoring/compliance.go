package scoring

import (
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

// FrameworkStatus derives the compliance status of a framework from its score.
// A framework that was never assessed is PENDING, not NON_COMPLIANT.
func (e *Engine) FrameworkStatus(f *model.Framework) types.ComplianceStatus {
	if f.Score == nil {
		return types.ComplianceStatusPending
	}
	return e.compliance.Classify(*f.Score)
}

// EvaluateFramework derives the status and control coverage of f.
// Critical findings are reported as given and never derived from the score.
func (e *Engine) EvaluateFramework(f *model.Framework) model.FrameworkView {
	view := model.FrameworkView{
		Framework:           *f,
		Status:              e.FrameworkStatus(f),
		HasCriticalFindings: f.CriticalFindings > 0,
	}
	if f.TotalControls > 0 {
		view.ControlCoverage = ClampScore(float64(f.ControlsCompliant) / float64(f.TotalControls) * 100)
	}
	return view
}

// AggregateCompliance derives per-framework statuses and the overall status.
// Without a supplied overall score, the mean of assessed framework scores is
// used; with no assessed framework at all, the overall status is PENDING.
func (e *Engine) AggregateCompliance(assessment *model.ComplianceAssessment) *model.ComplianceOverview {
	overview := &model.ComplianceOverview{
		Frameworks: make([]model.FrameworkView, 0, len(assessment.Frameworks)),
		Trend:      types.TrendNone,
	}

	var sum float64
	var assessed int
	for i := range assessment.Frameworks {
		f := &assessment.Frameworks[i]
		overview.Frameworks = append(overview.Frameworks, e.EvaluateFramework(f))
		overview.CriticalFindings += f.CriticalFindings
		if f.Score != nil {
			sum += ClampScore(*f.Score)
			assessed++
		}
	}

	switch {
	case assessment.OverallScore != nil:
		overview.Score = ptr(ClampScore(*assessment.OverallScore))
	case assessed > 0:
		overview.Score = ptr(sum / float64(assessed))
		overview.ScoreDerived = true
	}

	if overview.Score == nil {
		overview.Status = types.ComplianceStatusPending
		return overview
	}

	overview.Status = e.compliance.Classify(*overview.Score)
	if assessment.PreviousScore != nil {
		overview.Trend = Direction(*overview.Score, ClampScore(*assessment.PreviousScore))
	}
	return overview
}
