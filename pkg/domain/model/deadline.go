package model

import (
	"time"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

// Deadline is a compliance task with a due date. Completed only ever moves from false to true.
type Deadline struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Framework   string         `json:"framework"`
	DueDate     time.Time      `json:"due_date"`
	Priority    types.Priority `json:"priority"`
	Completed   bool           `json:"completed"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

// IsOverdue reports whether the deadline is pending and past due at now
func (d *Deadline) IsOverdue(now time.Time) bool {
	return !d.Completed && d.DueDate.Before(now)
}

// DeadlineEntry is a deadline with its derived overdue flag
type DeadlineEntry struct {
	Deadline Deadline `json:"deadline"`
	Overdue  bool     `json:"overdue"`
}

// DeadlineView is the prioritized deadline listing
type DeadlineView struct {
	Pending      []DeadlineEntry `json:"pending"`
	Completed    []DeadlineEntry `json:"completed"`
	OverdueCount int             `json:"overdue_count"`
	DueSoonCount int             `json:"due_soon_count"`
}
