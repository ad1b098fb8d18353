package usecase_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/usecase"
)

func TestRecordUseCase_CompleteDeadline(t *testing.T) {
	uc := setupUseCases(t)
	ctx := context.Background()

	completed, err := uc.Record.CompleteDeadline(ctx, "D-1", refNow)
	gt.NoError(t, err).Required()
	gt.Bool(t, completed.Completed).True()
	gt.Value(t, *completed.CompletedAt).Equal(refNow)

	// The next pass no longer counts the deadline as overdue
	view, err := uc.Dashboard.Deadlines(ctx, refNow)
	gt.NoError(t, err).Required()
	gt.Value(t, view.OverdueCount).Equal(0)
	gt.A(t, view.Completed).Length(1)

	_, err = uc.Record.CompleteDeadline(ctx, "D-1", refNow.Add(time.Hour))
	gt.Bool(t, errors.Is(err, usecase.ErrDeadlineAlreadyCompleted)).True()

	_, err = uc.Record.CompleteDeadline(ctx, "missing", refNow)
	gt.Bool(t, errors.Is(err, usecase.ErrDeadlineNotFound)).True()
}

func TestRecordUseCase_MarkNotificationRead(t *testing.T) {
	uc := setupUseCases(t)
	ctx := context.Background()

	n, err := uc.Record.MarkNotificationRead(ctx, "N-1")
	gt.NoError(t, err).Required()
	gt.Bool(t, n.Read).True()

	// Marking again is a no-op
	n, err = uc.Record.MarkNotificationRead(ctx, "N-1")
	gt.NoError(t, err).Required()
	gt.Bool(t, n.Read).True()

	dashboard, err := uc.Dashboard.Dashboard(ctx, refNow)
	gt.NoError(t, err).Required()
	gt.Value(t, dashboard.UnreadNotices).Equal(0)

	_, err = uc.Record.MarkNotificationRead(ctx, "missing")
	gt.Bool(t, errors.Is(err, usecase.ErrNotificationNotFound)).True()
}

func TestRecordUseCase_UpdateIncidentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("forward transition", func(t *testing.T) {
		uc := setupUseCases(t)
		later := refNow.Add(time.Hour)

		incident, err := uc.Record.UpdateIncidentStatus(ctx, "INC-1", "In Progress", later)
		gt.NoError(t, err).Required()
		gt.Value(t, incident.Status).Equal(types.IncidentStatusInProgress)
		gt.Value(t, incident.UpdatedAt).Equal(later)

		incident, err = uc.Record.UpdateIncidentStatus(ctx, "INC-1", "closed", later)
		gt.NoError(t, err).Required()
		gt.Value(t, incident.Status).Equal(types.IncidentStatusClosed)

		summary, err := uc.Dashboard.Incidents(ctx, refNow)
		gt.NoError(t, err).Required()
		gt.Value(t, summary.Incidents[0].SLA.State).Equal(types.SLAStateMet)
	})

	t.Run("reopen is rejected", func(t *testing.T) {
		uc := setupUseCases(t)

		_, err := uc.Record.UpdateIncidentStatus(ctx, "INC-2", "RESOLVED", refNow)
		gt.NoError(t, err).Required()

		_, err = uc.Record.UpdateIncidentStatus(ctx, "INC-2", "OPEN", refNow)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidTransition)).True()
	})

	t.Run("same status is rejected", func(t *testing.T) {
		uc := setupUseCases(t)

		_, err := uc.Record.UpdateIncidentStatus(ctx, "INC-1", "OPEN", refNow)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidTransition)).True()
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := setupUseCases(t)

		_, err := uc.Record.UpdateIncidentStatus(ctx, "INC-1", "Escalated", refNow)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidStatus)).True()
	})

	t.Run("unknown incident", func(t *testing.T) {
		uc := setupUseCases(t)

		_, err := uc.Record.UpdateIncidentStatus(ctx, "missing", "CLOSED", refNow)
		gt.Bool(t, errors.Is(err, usecase.ErrIncidentNotFound)).True()
	})
}

func TestRecordUseCase_CompleteDeadline_Concurrent(t *testing.T) {
	uc := setupUseCases(t)
	ctx := context.Background()

	const callers = 16
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		conflicts atomic.Int32
	)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Record.CompleteDeadline(ctx, "D-2", refNow.Add(time.Duration(i)*time.Minute))
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, usecase.ErrDeadlineAlreadyCompleted):
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	gt.Value(t, successes.Load()).Equal(int32(1))
	gt.Value(t, conflicts.Load()).Equal(int32(callers - 1))

	view, err := uc.Dashboard.Deadlines(ctx, refNow)
	gt.NoError(t, err).Required()
	gt.A(t, view.Completed).Length(1)
}

func TestRecordUseCase_RejectedTransitionKeepsStatus(t *testing.T) {
	uc := setupUseCases(t)
	ctx := context.Background()

	_, err := uc.Record.UpdateIncidentStatus(ctx, "INC-2", "OPEN", refNow)
	gt.Bool(t, errors.Is(err, usecase.ErrInvalidTransition)).True()

	summary, err := uc.Dashboard.Incidents(ctx, refNow)
	gt.NoError(t, err).Required()
	for _, view := range summary.Incidents {
		if view.Incident.ID == "INC-2" {
			gt.Value(t, view.Incident.Status).Equal(types.IncidentStatusInProgress)
		}
	}
}
