package scoring_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/scoring"
)

func TestEffectiveStatus(t *testing.T) {
	engine := scoring.New()

	tests := []struct {
		name           string
		record         model.LifecycleRecord
		want           types.LifecycleStatus
		wantOverridden bool
	}{
		{
			name:           "expired overrides approved",
			record:         model.LifecycleRecord{Status: types.LifecycleStatusApproved, ExpiryDate: timePtr(refNow.Add(-24 * time.Hour))},
			want:           types.LifecycleStatusExpired,
			wantOverridden: true,
		},
		{
			name:           "expiring soon overrides active",
			record:         model.LifecycleRecord{Status: types.LifecycleStatusActive, ExpiryDate: timePtr(refNow.Add(scoring.Days(10)))},
			want:           types.LifecycleStatusExpiringSoon,
			wantOverridden: true,
		},
		{
			name:   "far expiry keeps stored status",
			record: model.LifecycleRecord{Status: types.LifecycleStatusActive, ExpiryDate: timePtr(refNow.Add(scoring.Days(90)))},
			want:   types.LifecycleStatusActive,
		},
		{
			name:   "no dates keeps stored status",
			record: model.LifecycleRecord{Status: types.LifecycleStatusDraft},
			want:   types.LifecycleStatusDraft,
		},
		{
			name:           "review date drives policies without expiry",
			record:         model.LifecycleRecord{Kind: types.LifecycleKindPolicy, Status: types.LifecycleStatusActive, NextReviewDate: timePtr(refNow.Add(-time.Hour))},
			want:           types.LifecycleStatusExpired,
			wantOverridden: true,
		},
		{
			name:   "expiry date takes precedence over review date",
			record: model.LifecycleRecord{Status: types.LifecycleStatusActive, ExpiryDate: timePtr(refNow.Add(scoring.Days(200))), NextReviewDate: timePtr(refNow.Add(-time.Hour))},
			want:   types.LifecycleStatusActive,
		},
		{
			name:   "unrecognized stored status is unknown",
			record: model.LifecycleRecord{Status: types.LifecycleStatus("Sunset")},
			want:   types.LifecycleStatusUnknown,
		},
		{
			name:   "stored expired without dates is unknown",
			record: model.LifecycleRecord{Status: types.LifecycleStatusExpired},
			want:   types.LifecycleStatusUnknown,
		},
		{
			name:   "stored expiring soon with a far expiry is unknown",
			record: model.LifecycleRecord{Status: types.LifecycleStatusExpiringSoon, ExpiryDate: timePtr(refNow.Add(scoring.Days(90)))},
			want:   types.LifecycleStatusUnknown,
		},
		{
			name:           "stored expired with a past expiry is overridden",
			record:         model.LifecycleRecord{Status: types.LifecycleStatusExpired, ExpiryDate: timePtr(refNow.Add(-time.Hour))},
			want:           types.LifecycleStatusExpired,
			wantOverridden: true,
		},
		{
			name:           "override wins over unrecognized status",
			record:         model.LifecycleRecord{Status: types.LifecycleStatus("Sunset"), ExpiryDate: timePtr(refNow.Add(-time.Hour))},
			want:           types.LifecycleStatusExpired,
			wantOverridden: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, overridden := engine.EffectiveStatus(&tt.record, refNow)
			gt.Value(t, got).Equal(tt.want)
			gt.Value(t, overridden).Equal(tt.wantOverridden)
		})
	}
}

func TestEvaluateLifecycle_ScoreLevel(t *testing.T) {
	engine := scoring.New()

	view := engine.EvaluateLifecycle(&model.LifecycleRecord{Kind: types.LifecycleKindVendor, Status: types.LifecycleStatusActive, Score: floatPtr(88)}, refNow)
	gt.Value(t, view.ScoreLevel).Equal(types.LevelCritical)

	view = engine.EvaluateLifecycle(&model.LifecycleRecord{Kind: types.LifecycleKindDocument, Status: types.LifecycleStatusApproved}, refNow)
	gt.Value(t, view.ScoreLevel).Equal(types.LevelUnknown)
}

func TestPrioritizeLifecycle_Order(t *testing.T) {
	expired := model.LifecycleRecord{ID: "expired", Status: types.LifecycleStatusApproved, ExpiryDate: timePtr(refNow.Add(-scoring.Days(3))), UpdatedAt: refNow.Add(-scoring.Days(100))}
	expiring := model.LifecycleRecord{ID: "expiring", Status: types.LifecycleStatusApproved, ExpiryDate: timePtr(refNow.Add(scoring.Days(10))), UpdatedAt: refNow.Add(-scoring.Days(50))}
	normal := model.LifecycleRecord{ID: "normal", Status: types.LifecycleStatusApproved, ExpiryDate: timePtr(refNow.Add(scoring.Days(300))), UpdatedAt: refNow}

	inputs := [][]model.LifecycleRecord{
		{expired, expiring, normal},
		{normal, expiring, expired},
		{expiring, normal, expired},
		{normal, expired, expiring},
	}

	engine := scoring.New()
	for _, in := range inputs {
		summary := engine.PrioritizeLifecycle(types.LifecycleKindDocument, in, refNow)
		gt.A(t, summary.Records).Length(3)
		gt.Value(t, summary.Records[0].Record.ID).Equal("expired")
		gt.Value(t, summary.Records[1].Record.ID).Equal("expiring")
		gt.Value(t, summary.Records[2].Record.ID).Equal("normal")
		gt.Value(t, summary.Expired).Equal(1)
		gt.Value(t, summary.ExpiringSoon).Equal(1)
	}
}

func TestPrioritizeLifecycle_TieBreaks(t *testing.T) {
	records := []model.LifecycleRecord{
		{ID: "old-update", Status: types.LifecycleStatusActive, UpdatedAt: refNow.Add(-scoring.Days(9))},
		{ID: "expiring-late", Status: types.LifecycleStatusActive, ExpiryDate: timePtr(refNow.Add(scoring.Days(20)))},
		{ID: "expired-recent", Status: types.LifecycleStatusActive, ExpiryDate: timePtr(refNow.Add(-scoring.Days(1)))},
		{ID: "new-update", Status: types.LifecycleStatusActive, UpdatedAt: refNow.Add(-scoring.Days(1))},
		{ID: "expiring-early", Status: types.LifecycleStatusActive, ExpiryDate: timePtr(refNow.Add(scoring.Days(2)))},
		{ID: "expired-long-ago", Status: types.LifecycleStatusActive, ExpiryDate: timePtr(refNow.Add(-scoring.Days(40)))},
	}

	summary := scoring.New().PrioritizeLifecycle(types.LifecycleKindVendor, records, refNow)

	var ids []string
	for _, r := range summary.Records {
		ids = append(ids, r.Record.ID)
	}
	gt.Value(t, ids).Equal([]string{
		"expired-long-ago",
		"expired-recent",
		"expiring-early",
		"expiring-late",
		"new-update",
		"old-update",
	})
	gt.Value(t, summary.Kind).Equal(types.LifecycleKindVendor)
}

func TestPrioritizeLifecycle_StoredOverrideStatus(t *testing.T) {
	records := []model.LifecycleRecord{
		{ID: "stored-expired", Status: types.LifecycleStatusExpired, UpdatedAt: refNow.Add(-scoring.Days(2))},
		{ID: "stored-expiring", Status: types.LifecycleStatusExpiringSoon, UpdatedAt: refNow.Add(-scoring.Days(1))},
		{ID: "expired", Status: types.LifecycleStatusApproved, ExpiryDate: timePtr(refNow.Add(-48 * time.Hour))},
	}

	summary := scoring.New().PrioritizeLifecycle(types.LifecycleKindVendor, records, refNow)

	gt.A(t, summary.Records).Length(3)
	gt.Value(t, summary.Records[0].Record.ID).Equal("expired")
	gt.Value(t, summary.Records[1].Record.ID).Equal("stored-expiring")
	gt.Value(t, summary.Records[1].EffectiveStatus).Equal(types.LifecycleStatusUnknown)
	gt.Value(t, summary.Records[2].Record.ID).Equal("stored-expired")
	gt.Value(t, summary.Expired).Equal(1)
	gt.Value(t, summary.ExpiringSoon).Equal(0)
}

func TestCompareReferenceDate_MissingDateSortsLast(t *testing.T) {
	early := refNow.Add(-time.Hour)
	late := refNow.Add(time.Hour)

	gt.Value(t, scoring.CompareReferenceDate(&early, &late)).Equal(-1)
	gt.Value(t, scoring.CompareReferenceDate(nil, &early)).Equal(1)
	gt.Value(t, scoring.CompareReferenceDate(&late, nil)).Equal(-1)
	gt.Value(t, scoring.CompareReferenceDate(nil, nil)).Equal(0)
}

func TestPrioritizeLifecycle_CustomWindow(t *testing.T) {
	engine := scoring.New(scoring.WithExpiringWindow(scoring.Days(7)))
	record := model.LifecycleRecord{Status: types.LifecycleStatusActive, ExpiryDate: timePtr(refNow.Add(scoring.Days(10)))}

	status, overridden := engine.EffectiveStatus(&record, refNow)
	gt.Value(t, status).Equal(types.LifecycleStatusActive)
	gt.Bool(t, overridden).False()
}
