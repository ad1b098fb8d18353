package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/interfaces"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/utils/logging"
)

// SnapshotUseCase replaces the stored records with a new snapshot
type SnapshotUseCase struct {
	repo interfaces.Repository
}

func NewSnapshotUseCase(repo interfaces.Repository) *SnapshotUseCase {
	return &SnapshotUseCase{repo: repo}
}

// Import replaces every record set with the content of snapshot as one unit.
// If it fails, the previously stored records are left untouched. Records
// without an ID get a generated one. It returns the number of imported records.
func (uc *SnapshotUseCase) Import(ctx context.Context, snapshot *model.Snapshot) (int, error) {
	assignIDs(snapshot)

	if err := uc.repo.ReplaceSnapshot(ctx, snapshot); err != nil {
		return 0, goerr.Wrap(err, "failed to replace snapshot", goerr.V("records", snapshot.RecordCount()))
	}

	count := snapshot.RecordCount()
	logging.From(ctx).Info("snapshot imported", "records", count)
	return count, nil
}

func assignIDs(snapshot *model.Snapshot) {
	for i := range snapshot.Risk.Items {
		if snapshot.Risk.Items[i].ID == "" {
			snapshot.Risk.Items[i].ID = uuid.NewString()
		}
	}
	for i := range snapshot.Incidents {
		if snapshot.Incidents[i].ID == "" {
			snapshot.Incidents[i].ID = uuid.NewString()
		}
	}
	for i := range snapshot.Compliance.Frameworks {
		if snapshot.Compliance.Frameworks[i].ID == "" {
			snapshot.Compliance.Frameworks[i].ID = uuid.NewString()
		}
	}
	for i := range snapshot.Lifecycle {
		if snapshot.Lifecycle[i].ID == "" {
			snapshot.Lifecycle[i].ID = uuid.NewString()
		}
	}
	for i := range snapshot.Deadlines {
		if snapshot.Deadlines[i].ID == "" {
			snapshot.Deadlines[i].ID = uuid.NewString()
		}
	}
	for i := range snapshot.Notifications {
		if snapshot.Notifications[i].ID == "" {
			snapshot.Notifications[i].ID = uuid.NewString()
		}
	}
}
