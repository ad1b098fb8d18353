package interfaces

import (
	"context"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

// LifecycleRepository provides database operations for vendor, document and
// policy records
type LifecycleRepository interface {
	GetAll(ctx context.Context) ([]*model.LifecycleRecord, error)
	GetByKind(ctx context.Context, kind types.LifecycleKind) ([]*model.LifecycleRecord, error)
	SaveMany(ctx context.Context, records []*model.LifecycleRecord) error
	DeleteAll(ctx context.Context) error
}
