package scoring

import (
	"slices"
	"time"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
)

// PrioritizeDeadlines splits items into pending and completed. Pending items are
// ordered by due date ascending (stable for equal dates) and flagged overdue when
// due before now. Completed items are listed most recently completed first.
func (e *Engine) PrioritizeDeadlines(items []model.Deadline, now time.Time) *model.DeadlineView {
	view := &model.DeadlineView{}

	for _, d := range items {
		if d.Completed {
			view.Completed = append(view.Completed, model.DeadlineEntry{Deadline: d})
			continue
		}

		overdue := d.IsOverdue(now)
		if overdue {
			view.OverdueCount++
		} else if IsExpiringSoon(d.DueDate, now, e.expiringWindow) {
			view.DueSoonCount++
		}
		view.Pending = append(view.Pending, model.DeadlineEntry{Deadline: d, Overdue: overdue})
	}

	slices.SortStableFunc(view.Pending, func(a, b model.DeadlineEntry) int {
		return a.Deadline.DueDate.Compare(b.Deadline.DueDate)
	})

	slices.SortStableFunc(view.Completed, func(a, b model.DeadlineEntry) int {
		ca, cb := a.Deadline.CompletedAt, b.Deadline.CompletedAt
		switch {
		case ca == nil && cb == nil:
			return 0
		case ca == nil:
			return 1
		case cb == nil:
			return -1
		default:
			return cb.Compare(*ca)
		}
	})

	return view
}
