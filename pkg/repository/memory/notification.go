package memory

import (
	"context"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
)

type notificationRepository struct {
	store *orderedStore[model.Notification]
}

func newNotificationRepository() *notificationRepository {
	return &notificationRepository{
		store: newOrderedStore("notification",
			func(n *model.Notification) string { return n.ID },
			func(n *model.Notification) *model.Notification {
				copied := *n
				return &copied
			}),
	}
}

func (r *notificationRepository) GetAll(ctx context.Context) ([]*model.Notification, error) {
	return r.store.getAll(), nil
}

func (r *notificationRepository) Get(ctx context.Context, id string) (*model.Notification, error) {
	return r.store.get(id)
}

func (r *notificationRepository) Modify(ctx context.Context, id string, mutate func(*model.Notification) error) (*model.Notification, error) {
	return r.store.modify(id, mutate)
}

func (r *notificationRepository) SaveMany(ctx context.Context, notifications []*model.Notification) error {
	r.store.saveMany(notifications)
	return nil
}

func (r *notificationRepository) DeleteAll(ctx context.Context) error {
	r.store.deleteAll()
	return nil
}
