package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/interfaces"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/scoring"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/utils/logging"
)

// DashboardUseCase fetches record snapshots and derives views from them.
// It never caches derived views; every call is a fresh pass.
type DashboardUseCase struct {
	repo   interfaces.Repository
	engine *scoring.Engine
	flight singleflight.Group
}

func NewDashboardUseCase(repo interfaces.Repository, engine *scoring.Engine) *DashboardUseCase {
	return &DashboardUseCase{
		repo:   repo,
		engine: engine,
	}
}

// LoadSnapshot fetches every record set concurrently and assembles one
// snapshot. Overlapping calls share a single fetch. The shared fetch runs
// detached from the caller that started it; each caller stops waiting when
// its own ctx is done.
func (uc *DashboardUseCase) LoadSnapshot(ctx context.Context) (*model.Snapshot, error) {
	ch := uc.flight.DoChan("snapshot", func() (any, error) {
		return uc.loadSnapshot(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, goerr.Wrap(ctx.Err(), "snapshot load cancelled")
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*model.Snapshot), nil
	}
}

func (uc *DashboardUseCase) loadSnapshot(ctx context.Context) (*model.Snapshot, error) {
	var (
		risk          *model.RiskAssessment
		compliance    *model.ComplianceAssessment
		incidents     []*model.Incident
		lifecycle     []*model.LifecycleRecord
		deadlines     []*model.Deadline
		notifications []*model.Notification
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		if risk, err = uc.repo.Risk().Get(ctx); err != nil {
			return goerr.Wrap(err, "failed to fetch risk assessment")
		}
		return nil
	})
	eg.Go(func() (err error) {
		if compliance, err = uc.repo.Compliance().Get(ctx); err != nil {
			return goerr.Wrap(err, "failed to fetch compliance assessment")
		}
		return nil
	})
	eg.Go(func() (err error) {
		if incidents, err = uc.repo.Incident().GetAll(ctx); err != nil {
			return goerr.Wrap(err, "failed to fetch incidents")
		}
		return nil
	})
	eg.Go(func() (err error) {
		if lifecycle, err = uc.repo.Lifecycle().GetAll(ctx); err != nil {
			return goerr.Wrap(err, "failed to fetch lifecycle records")
		}
		return nil
	})
	eg.Go(func() (err error) {
		if deadlines, err = uc.repo.Deadline().GetAll(ctx); err != nil {
			return goerr.Wrap(err, "failed to fetch deadlines")
		}
		return nil
	})
	eg.Go(func() (err error) {
		if notifications, err = uc.repo.Notification().GetAll(ctx); err != nil {
			return goerr.Wrap(err, "failed to fetch notifications")
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &model.Snapshot{
		Risk:          *risk,
		Compliance:    *compliance,
		Incidents:     deref(incidents),
		Lifecycle:     deref(lifecycle),
		Deadlines:     deref(deadlines),
		Notifications: deref(notifications),
	}, nil
}

func deref[T any](items []*T) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		result = append(result, *item)
	}
	return result
}

// Dashboard runs one full scoring pass against now
func (uc *DashboardUseCase) Dashboard(ctx context.Context, now time.Time) (*model.Dashboard, error) {
	started := time.Now()

	snapshot, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := uc.engine.Score(snapshot, now)
	scoringPassDuration.Observe(time.Since(started).Seconds())
	observeDashboard(dashboard)

	logging.From(ctx).Debug("scoring pass completed",
		"now", now,
		"risk_items", len(snapshot.Risk.Items),
		"incidents", len(snapshot.Incidents),
		"frameworks", len(snapshot.Compliance.Frameworks),
		"lifecycle_records", len(snapshot.Lifecycle),
		"deadlines", len(snapshot.Deadlines),
	)

	return dashboard, nil
}

func (uc *DashboardUseCase) Risk(ctx context.Context) (*model.RiskSnapshot, error) {
	assessment, err := uc.repo.Risk().Get(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch risk assessment")
	}
	return uc.engine.AggregateRisk(assessment), nil
}

func (uc *DashboardUseCase) Incidents(ctx context.Context, now time.Time) (*model.IncidentSummary, error) {
	incidents, err := uc.repo.Incident().GetAll(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch incidents")
	}
	return uc.engine.SummarizeIncidents(deref(incidents), now), nil
}

func (uc *DashboardUseCase) Compliance(ctx context.Context) (*model.ComplianceOverview, error) {
	assessment, err := uc.repo.Compliance().Get(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch compliance assessment")
	}
	return uc.engine.AggregateCompliance(assessment), nil
}

func (uc *DashboardUseCase) Lifecycle(ctx context.Context, kind types.LifecycleKind, now time.Time) (*model.LifecycleSummary, error) {
	records, err := uc.repo.Lifecycle().GetByKind(ctx, kind)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch lifecycle records", goerr.V("kind", kind))
	}
	summary := uc.engine.PrioritizeLifecycle(kind, deref(records), now)
	return &summary, nil
}

func (uc *DashboardUseCase) Deadlines(ctx context.Context, now time.Time) (*model.DeadlineView, error) {
	deadlines, err := uc.repo.Deadline().GetAll(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch deadlines")
	}
	return uc.engine.PrioritizeDeadlines(deref(deadlines), now), nil
}

func (uc *DashboardUseCase) Notifications(ctx context.Context) ([]*model.Notification, error) {
	notifications, err := uc.repo.Notification().GetAll(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch notifications")
	}
	return notifications, nil
}
