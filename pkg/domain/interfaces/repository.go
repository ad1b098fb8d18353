package interfaces

import (
	"context"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
)

// Repository defines the interface for data persistence
type Repository interface {
	Risk() RiskRepository
	Incident() IncidentRepository
	Compliance() ComplianceRepository
	Lifecycle() LifecycleRepository
	Deadline() DeadlineRepository
	Notification() NotificationRepository

	// ReplaceSnapshot swaps every record set for the content of snapshot as
	// one unit. On error the previous records stay in place.
	ReplaceSnapshot(ctx context.Context, snapshot *model.Snapshot) error

	// Refresh metadata of the snapshot worker
	GetRefreshMetadata(ctx context.Context) (*model.RefreshMetadata, error)
	SaveRefreshMetadata(ctx context.Context, metadata *model.RefreshMetadata) error

	Close() error
}
