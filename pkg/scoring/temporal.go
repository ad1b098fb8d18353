package scoring

import (
	"time"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

const (
	// DefaultExpiringWindow is how far ahead a date counts as expiring soon
	DefaultExpiringWindow = 30 * 24 * time.Hour
	// DefaultSLAAtRiskWindow is the remaining time at or below which an SLA is at risk
	DefaultSLAAtRiskWindow = 24 * time.Hour
)

// Days converts a number of days to a duration
func Days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

// IsOverdue reports whether due lies strictly before now
func IsOverdue(due, now time.Time) bool {
	return due.Before(now)
}

// IsExpiringSoon reports whether date lies in [now, now+window)
func IsExpiringSoon(date, now time.Time, window time.Duration) bool {
	return !date.Before(now) && date.Before(now.Add(window))
}

// ElapsedPercentage is the share of the start→deadline span that has elapsed at now,
// clamped to 0–100. A deadline at or before start counts as fully elapsed.
func ElapsedPercentage(start, deadline, now time.Time) float64 {
	total := deadline.Sub(start)
	if total <= 0 {
		return 100
	}

	fraction := float64(now.Sub(start)) / float64(total)
	switch {
	case fraction < 0:
		fraction = 0
	case fraction > 1:
		fraction = 1
	}
	return fraction * 100
}

// Direction compares current against previous. It reports direction only;
// whether UP is good or bad depends on the caller's score.
func Direction(current, previous float64) types.Trend {
	switch {
	case current > previous:
		return types.TrendUp
	case current < previous:
		return types.TrendDown
	default:
		return types.TrendNone
	}
}
