package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/interfaces"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

const lifecycleCollection = "lifecycle_records"

type lifecycleRepository struct {
	docs *orderedCollection[model.LifecycleRecord, lifecycleDoc]
}

var _ interfaces.LifecycleRepository = &lifecycleRepository{}

type lifecycleDoc struct {
	ID             string     `firestore:"id"`
	Kind           string     `firestore:"kind"`
	Name           string     `firestore:"name"`
	Status         string     `firestore:"status"`
	Score          *float64   `firestore:"score"`
	ExpiryDate     *time.Time `firestore:"expiry_date"`
	NextReviewDate *time.Time `firestore:"next_review_date"`
	UpdatedAt      time.Time  `firestore:"updated_at"`
	Position       int        `firestore:"position"`
}

func newLifecycleRepository(client *firestore.Client, gens *generations) *lifecycleRepository {
	return &lifecycleRepository{
		docs: &orderedCollection[model.LifecycleRecord, lifecycleDoc]{
			client: client,
			gens:   gens,
			name:   lifecycleCollection,
			entity: "lifecycle record",
			// IDs are scoped by kind
			idOf: func(r *model.LifecycleRecord) string { return string(r.Kind) + "/" + r.ID },
			toDoc: func(r *model.LifecycleRecord, position int) *lifecycleDoc {
				return &lifecycleDoc{
					ID:             r.ID,
					Kind:           string(r.Kind),
					Name:           r.Name,
					Status:         string(r.Status),
					Score:          r.Score,
					ExpiryDate:     r.ExpiryDate,
					NextReviewDate: r.NextReviewDate,
					UpdatedAt:      r.UpdatedAt,
					Position:       position,
				}
			},
			fromDoc: func(d *lifecycleDoc) *model.LifecycleRecord {
				return &model.LifecycleRecord{
					ID:             d.ID,
					Kind:           types.LifecycleKind(d.Kind),
					Name:           d.Name,
					Status:         types.LifecycleStatus(d.Status),
					Score:          d.Score,
					ExpiryDate:     d.ExpiryDate,
					NextReviewDate: d.NextReviewDate,
					UpdatedAt:      d.UpdatedAt,
				}
			},
			position: func(d *lifecycleDoc) int { return d.Position },
		},
	}
}

func (r *lifecycleRepository) GetAll(ctx context.Context) ([]*model.LifecycleRecord, error) {
	return r.docs.getAll(ctx)
}

// GetByKind filters in memory to avoid a composite index on kind and position
func (r *lifecycleRepository) GetByKind(ctx context.Context, kind types.LifecycleKind) ([]*model.LifecycleRecord, error) {
	all, err := r.docs.getAll(ctx)
	if err != nil {
		return nil, err
	}

	var records []*model.LifecycleRecord
	for _, record := range all {
		if record.Kind == kind {
			records = append(records, record)
		}
	}
	return records, nil
}

func (r *lifecycleRepository) SaveMany(ctx context.Context, records []*model.LifecycleRecord) error {
	return r.docs.saveMany(ctx, records)
}

func (r *lifecycleRepository) DeleteAll(ctx context.Context) error {
	return r.docs.deleteAll(ctx)
}
