package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/interfaces"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
)

const deadlinesCollection = "deadlines"

type deadlineRepository struct {
	docs *orderedCollection[model.Deadline, deadlineDoc]
}

var _ interfaces.DeadlineRepository = &deadlineRepository{}

type deadlineDoc struct {
	ID          string     `firestore:"id"`
	Title       string     `firestore:"title"`
	Framework   string     `firestore:"framework"`
	DueDate     time.Time  `firestore:"due_date"`
	Priority    string     `firestore:"priority"`
	Completed   bool       `firestore:"completed"`
	CompletedAt *time.Time `firestore:"completed_at"`
	Position    int        `firestore:"position"`
}

func newDeadlineRepository(client *firestore.Client, gens *generations) *deadlineRepository {
	return &deadlineRepository{
		docs: &orderedCollection[model.Deadline, deadlineDoc]{
			client: client,
			gens:   gens,
			name:   deadlinesCollection,
			entity: "deadline",
			idOf:   func(d *model.Deadline) string { return d.ID },
			toDoc: func(d *model.Deadline, position int) *deadlineDoc {
				return &deadlineDoc{
					ID:          d.ID,
					Title:       d.Title,
					Framework:   d.Framework,
					DueDate:     d.DueDate,
					Priority:    string(d.Priority),
					Completed:   d.Completed,
					CompletedAt: d.CompletedAt,
					Position:    position,
				}
			},
			fromDoc: func(d *deadlineDoc) *model.Deadline {
				return &model.Deadline{
					ID:          d.ID,
					Title:       d.Title,
					Framework:   d.Framework,
					DueDate:     d.DueDate,
					Priority:    types.Priority(d.Priority),
					Completed:   d.Completed,
					CompletedAt: d.CompletedAt,
				}
			},
			position: func(d *deadlineDoc) int { return d.Position },
		},
	}
}

func (r *deadlineRepository) GetAll(ctx context.Context) ([]*model.Deadline, error) {
	return r.docs.getAll(ctx)
}

func (r *deadlineRepository) Get(ctx context.Context, id string) (*model.Deadline, error) {
	return r.docs.get(ctx, id)
}

func (r *deadlineRepository) Modify(ctx context.Context, id string, mutate func(*model.Deadline) error) (*model.Deadline, error) {
	return r.docs.modify(ctx, id, mutate)
}

func (r *deadlineRepository) SaveMany(ctx context.Context, deadlines []*model.Deadline) error {
	return r.docs.saveMany(ctx, deadlines)
}

func (r *deadlineRepository) DeleteAll(ctx context.Context) error {
	return r.docs.deleteAll(ctx)
}
