package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/interfaces"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/utils/logging"
)

// RecordUseCase owns the write-back rules of the record store. Callers
// re-run a scoring pass afterwards to see the effect.
type RecordUseCase struct {
	repo interfaces.Repository
}

func NewRecordUseCase(repo interfaces.Repository) *RecordUseCase {
	return &RecordUseCase{repo: repo}
}

// CompleteDeadline marks a pending deadline as completed at now. Completion is
// one-way; completing an already completed deadline fails. The check and the
// write happen in one repository step, so of two concurrent calls only one
// succeeds.
func (uc *RecordUseCase) CompleteDeadline(ctx context.Context, id string, now time.Time) (deadline *model.Deadline, err error) {
	defer func() { observeUpdate("deadline", err) }()

	deadline, err = uc.repo.Deadline().Modify(ctx, id, func(d *model.Deadline) error {
		if d.Completed {
			return goerr.Wrap(ErrDeadlineAlreadyCompleted, "failed to complete deadline",
				goerr.V(DeadlineIDKey, id),
				goerr.V("completed_at", d.CompletedAt))
		}
		d.Completed = true
		d.CompletedAt = &now
		return nil
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrDeadlineNotFound, "failed to complete deadline", goerr.V(DeadlineIDKey, id))
		}
		if errors.Is(err, ErrDeadlineAlreadyCompleted) {
			return nil, err
		}
		return nil, goerr.Wrap(err, "failed to update deadline", goerr.V(DeadlineIDKey, id))
	}

	logging.From(ctx).Info("deadline completed", "id", id, "title", deadline.Title)
	return deadline, nil
}

// MarkNotificationRead marks a notification as read. Marking a read
// notification again is a no-op.
func (uc *RecordUseCase) MarkNotificationRead(ctx context.Context, id string) (notification *model.Notification, err error) {
	defer func() { observeUpdate("notification", err) }()

	notification, err = uc.repo.Notification().Modify(ctx, id, func(n *model.Notification) error {
		n.Read = true
		return nil
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrNotificationNotFound, "failed to mark notification read", goerr.V(NotificationIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to update notification", goerr.V(NotificationIDKey, id))
	}
	return notification, nil
}

// UpdateIncidentStatus moves an incident forward through
// OPEN → IN_PROGRESS → RESOLVED → CLOSED. Steps may be skipped; reopening is
// not allowed. The transition is checked against the stored status inside the
// same repository step that writes it.
func (uc *RecordUseCase) UpdateIncidentStatus(ctx context.Context, id, status string, now time.Time) (incident *model.Incident, err error) {
	defer func() { observeUpdate("incident", err) }()

	next, err := types.ParseIncidentStatus(status)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidStatus, "failed to update incident status",
			goerr.V(IncidentIDKey, id),
			goerr.V("status", status))
	}

	incident, err = uc.repo.Incident().Modify(ctx, id, func(i *model.Incident) error {
		if !i.Status.CanTransitionTo(next) {
			return goerr.Wrap(ErrInvalidTransition, "failed to update incident status",
				goerr.V(IncidentIDKey, id),
				goerr.V("from", i.Status),
				goerr.V("to", next))
		}
		i.Status = next
		i.UpdatedAt = now
		return nil
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrIncidentNotFound, "failed to update incident status", goerr.V(IncidentIDKey, id))
		}
		if errors.Is(err, ErrInvalidTransition) {
			return nil, err
		}
		return nil, goerr.Wrap(err, "failed to update incident", goerr.V(IncidentIDKey, id))
	}

	logging.From(ctx).Info("incident status updated", "id", id, "status", next)
	return incident, nil
}
