package memory

import (
	"context"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
)

type deadlineRepository struct {
	store *orderedStore[model.Deadline]
}

func newDeadlineRepository() *deadlineRepository {
	return &deadlineRepository{
		store: newOrderedStore("deadline",
			func(d *model.Deadline) string { return d.ID },
			copyDeadline),
	}
}

func copyDeadline(d *model.Deadline) *model.Deadline {
	copied := *d
	copied.CompletedAt = cloneTime(d.CompletedAt)
	return &copied
}

func (r *deadlineRepository) GetAll(ctx context.Context) ([]*model.Deadline, error) {
	return r.store.getAll(), nil
}

func (r *deadlineRepository) Get(ctx context.Context, id string) (*model.Deadline, error) {
	return r.store.get(id)
}

func (r *deadlineRepository) Modify(ctx context.Context, id string, mutate func(*model.Deadline) error) (*model.Deadline, error) {
	return r.store.modify(id, mutate)
}

func (r *deadlineRepository) SaveMany(ctx context.Context, deadlines []*model.Deadline) error {
	r.store.saveMany(deadlines)
	return nil
}

func (r *deadlineRepository) DeleteAll(ctx context.Context) error {
	r.store.deleteAll()
	return nil
}
