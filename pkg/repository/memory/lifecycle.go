package memory

import (
	"context"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

type lifecycleRepository struct {
	store *orderedStore[model.LifecycleRecord]
}

func newLifecycleRepository() *lifecycleRepository {
	return &lifecycleRepository{
		store: newOrderedStore("lifecycle record",
			lifecycleKey,
			copyLifecycleRecord),
	}
}

// lifecycleKey scopes record IDs by kind, so a vendor and a policy may share an ID
func lifecycleKey(r *model.LifecycleRecord) string {
	return string(r.Kind) + "/" + r.ID
}

func copyLifecycleRecord(r *model.LifecycleRecord) *model.LifecycleRecord {
	copied := *r
	copied.Score = cloneFloat(r.Score)
	copied.ExpiryDate = cloneTime(r.ExpiryDate)
	copied.NextReviewDate = cloneTime(r.NextReviewDate)
	return &copied
}

func (r *lifecycleRepository) GetAll(ctx context.Context) ([]*model.LifecycleRecord, error) {
	return r.store.getAll(), nil
}

func (r *lifecycleRepository) GetByKind(ctx context.Context, kind types.LifecycleKind) ([]*model.LifecycleRecord, error) {
	var records []*model.LifecycleRecord
	for _, record := range r.store.getAll() {
		if record.Kind == kind {
			records = append(records, record)
		}
	}
	return records, nil
}

func (r *lifecycleRepository) SaveMany(ctx context.Context, records []*model.LifecycleRecord) error {
	r.store.saveMany(records)
	return nil
}

func (r *lifecycleRepository) DeleteAll(ctx context.Context) error {
	r.store.deleteAll()
	return nil
}
