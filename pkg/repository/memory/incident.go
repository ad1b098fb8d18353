package memory

import (
	"context"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
)

type incidentRepository struct {
	store *orderedStore[model.Incident]
}

func newIncidentRepository() *incidentRepository {
	return &incidentRepository{
		store: newOrderedStore("incident",
			func(i *model.Incident) string { return i.ID },
			copyIncident),
	}
}

func copyIncident(i *model.Incident) *model.Incident {
	copied := *i
	copied.SLADeadline = cloneTime(i.SLADeadline)
	return &copied
}

func (r *incidentRepository) GetAll(ctx context.Context) ([]*model.Incident, error) {
	return r.store.getAll(), nil
}

func (r *incidentRepository) Get(ctx context.Context, id string) (*model.Incident, error) {
	return r.store.get(id)
}

func (r *incidentRepository) Modify(ctx context.Context, id string, mutate func(*model.Incident) error) (*model.Incident, error) {
	return r.store.modify(id, mutate)
}

func (r *incidentRepository) SaveMany(ctx context.Context, incidents []*model.Incident) error {
	r.store.saveMany(incidents)
	return nil
}

func (r *incidentRepository) DeleteAll(ctx context.Context) error {
	r.store.deleteAll()
	return nil
}
