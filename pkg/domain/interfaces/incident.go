package interfaces

import (
	"context"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
)

// IncidentRepository provides database operations for incidents.
// GetAll returns incidents in the order they were saved.
type IncidentRepository interface {
	GetAll(ctx context.Context) ([]*model.Incident, error)
	Get(ctx context.Context, id string) (*model.Incident, error)

	// Modify applies mutate to the stored record and writes the result in one
	// atomic step. Nothing is written if mutate fails. ErrNotFound if the
	// record does not exist.
	Modify(ctx context.Context, id string, mutate func(*model.Incident) error) (*model.Incident, error)

	// SaveMany appends or overwrites incidents (upsert operation)
	SaveMany(ctx context.Context, incidents []*model.Incident) error
	DeleteAll(ctx context.Context) error
}
