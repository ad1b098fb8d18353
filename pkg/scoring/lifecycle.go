package scoring

import (
	"cmp"
	"slices"
	"time"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

// override is one step of the date-based override chain. The first step whose
// condition holds decides the effective status.
type override struct {
	status types.LifecycleStatus
	holds  func(ref, now time.Time, window time.Duration) bool
}

var overrideChain = []override{
	{
		status: types.LifecycleStatusExpired,
		holds: func(ref, now time.Time, _ time.Duration) bool {
			return IsOverdue(ref, now)
		},
	},
	{
		status: types.LifecycleStatusExpiringSoon,
		holds:  IsExpiringSoon,
	},
}

// EffectiveStatus returns the status of record at now and whether it was forced
// by the record's reference date. Without an override the stored status is
// returned, or UNKNOWN if the stored status is not a known value. A stored
// EXPIRED or EXPIRING_SOON is only meaningful as a date-driven result, so it
// is reported as UNKNOWN when the dates do not produce it.
func (e *Engine) EffectiveStatus(record *model.LifecycleRecord, now time.Time) (types.LifecycleStatus, bool) {
	if ref := record.ReferenceDate(); ref != nil {
		for _, o := range overrideChain {
			if o.holds(*ref, now, e.expiringWindow) {
				return o.status, true
			}
		}
	}

	if !record.Status.IsValid() || record.Status.IsOverride() {
		return types.LifecycleStatusUnknown, false
	}
	return record.Status, false
}

// EvaluateLifecycle derives the standing of record at now
func (e *Engine) EvaluateLifecycle(record *model.LifecycleRecord, now time.Time) model.LifecycleView {
	status, overridden := e.EffectiveStatus(record, now)
	view := model.LifecycleView{
		Record:          *record,
		EffectiveStatus: status,
		Overridden:      overridden,
		ScoreLevel:      types.LevelUnknown,
		Expired:         status == types.LifecycleStatusExpired,
		ExpiringSoon:    status == types.LifecycleStatusExpiringSoon,
	}
	if record.Score != nil {
		view.ScoreLevel = e.severity.Classify(*record.Score)
	}
	return view
}

// PrioritizeLifecycle evaluates records at now and orders them: expired first,
// then expiring soon, each by reference date ascending, then everything else
// by most recently updated. The sort is stable.
func (e *Engine) PrioritizeLifecycle(kind types.LifecycleKind, records []model.LifecycleRecord, now time.Time) model.LifecycleSummary {
	summary := model.LifecycleSummary{
		Kind:    kind,
		Records: make([]model.LifecycleView, 0, len(records)),
	}

	for i := range records {
		view := e.EvaluateLifecycle(&records[i], now)
		if view.Expired {
			summary.Expired++
		}
		if view.ExpiringSoon {
			summary.ExpiringSoon++
		}
		summary.Records = append(summary.Records, view)
	}

	slices.SortStableFunc(summary.Records, compareLifecycle)
	return summary
}

func lifecycleGroup(v *model.LifecycleView) int {
	switch {
	case v.Expired:
		return 0
	case v.ExpiringSoon:
		return 1
	default:
		return 2
	}
}

func compareLifecycle(a, b model.LifecycleView) int {
	ga, gb := lifecycleGroup(&a), lifecycleGroup(&b)
	if ga != gb {
		return cmp.Compare(ga, gb)
	}

	if ga < 2 {
		return compareReferenceDate(a.Record.ReferenceDate(), b.Record.ReferenceDate())
	}
	return b.Record.UpdatedAt.Compare(a.Record.UpdatedAt)
}

// compareReferenceDate orders dates ascending; a missing date sorts last
func compareReferenceDate(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}
