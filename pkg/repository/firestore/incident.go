package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/interfaces"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

const incidentsCollection = "incidents"

type incidentRepository struct {
	docs *orderedCollection[model.Incident, incidentDoc]
}

var _ interfaces.IncidentRepository = &incidentRepository{}

// incidentDoc is the Firestore persistence model
type incidentDoc struct {
	ID          string     `firestore:"id"`
	Title       string     `firestore:"title"`
	Severity    string     `firestore:"severity"`
	Status      string     `firestore:"status"`
	CreatedAt   time.Time  `firestore:"created_at"`
	SLADeadline *time.Time `firestore:"sla_deadline"`
	UpdatedAt   time.Time  `firestore:"updated_at"`
	Position    int        `firestore:"position"`
}

func newIncidentRepository(client *firestore.Client, gens *generations) *incidentRepository {
	return &incidentRepository{
		docs: &orderedCollection[model.Incident, incidentDoc]{
			client: client,
			gens:   gens,
			name:   incidentsCollection,
			entity: "incident",
			idOf:   func(i *model.Incident) string { return i.ID },
			toDoc: func(i *model.Incident, position int) *incidentDoc {
				return &incidentDoc{
					ID:          i.ID,
					Title:       i.Title,
					Severity:    string(i.Severity),
					Status:      string(i.Status),
					CreatedAt:   i.CreatedAt,
					SLADeadline: i.SLADeadline,
					UpdatedAt:   i.UpdatedAt,
					Position:    position,
				}
			},
			fromDoc: func(d *incidentDoc) *model.Incident {
				return &model.Incident{
					ID:          d.ID,
					Title:       d.Title,
					Severity:    types.IncidentSeverity(d.Severity),
					Status:      types.IncidentStatus(d.Status),
					CreatedAt:   d.CreatedAt,
					SLADeadline: d.SLADeadline,
					UpdatedAt:   d.UpdatedAt,
				}
			},
			position: func(d *incidentDoc) int { return d.Position },
		},
	}
}

func (r *incidentRepository) GetAll(ctx context.Context) ([]*model.Incident, error) {
	return r.docs.getAll(ctx)
}

func (r *incidentRepository) Get(ctx context.Context, id string) (*model.Incident, error) {
	return r.docs.get(ctx, id)
}

func (r *incidentRepository) Modify(ctx context.Context, id string, mutate func(*model.Incident) error) (*model.Incident, error) {
	return r.docs.modify(ctx, id, mutate)
}

func (r *incidentRepository) SaveMany(ctx context.Context, incidents []*model.Incident) error {
	return r.docs.saveMany(ctx, incidents)
}

func (r *incidentRepository) DeleteAll(ctx context.Context) error {
	return r.docs.deleteAll(ctx)
}
