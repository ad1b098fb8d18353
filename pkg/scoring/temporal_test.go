package scoring_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/scoring"
)

var refNow = time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

func TestIsOverdue(t *testing.T) {
	gt.Bool(t, scoring.IsOverdue(refNow.Add(-time.Second), refNow)).True()
	gt.Bool(t, scoring.IsOverdue(refNow, refNow)).False()
	gt.Bool(t, scoring.IsOverdue(refNow.Add(time.Hour), refNow)).False()
}

func TestIsExpiringSoon(t *testing.T) {
	window := scoring.Days(30)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "already past", date: refNow.Add(-time.Minute), want: false},
		{name: "exactly now", date: refNow, want: true},
		{name: "in ten days", date: refNow.Add(scoring.Days(10)), want: true},
		{name: "just inside window", date: refNow.Add(window - time.Second), want: true},
		{name: "exactly at window end", date: refNow.Add(window), want: false},
		{name: "beyond window", date: refNow.Add(scoring.Days(45)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, scoring.IsExpiringSoon(tt.date, refNow, window)).Equal(tt.want)
		})
	}
}

func TestElapsedPercentage(t *testing.T) {
	start := refNow.Add(-10 * time.Hour)

	tests := []struct {
		name     string
		start    time.Time
		deadline time.Time
		want     float64
	}{
		{name: "halfway", start: start, deadline: refNow.Add(10 * time.Hour), want: 50},
		{name: "not started", start: refNow.Add(time.Hour), deadline: refNow.Add(2 * time.Hour), want: 0},
		{name: "past deadline clamps to 100", start: start, deadline: refNow.Add(-time.Hour), want: 100},
		{name: "deadline equals start", start: start, deadline: start, want: 100},
		{name: "deadline before start", start: start, deadline: start.Add(-time.Hour), want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, scoring.ElapsedPercentage(tt.start, tt.deadline, refNow)).Equal(tt.want)
		})
	}
}

func TestDirection(t *testing.T) {
	gt.Value(t, scoring.Direction(72, 65)).Equal(types.TrendUp)
	gt.Value(t, scoring.Direction(60, 65)).Equal(types.TrendDown)
	gt.Value(t, scoring.Direction(65, 65)).Equal(types.TrendNone)
}
