package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/interfaces"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
)

const notificationsCollection = "notifications"

type notificationRepository struct {
	docs *orderedCollection[model.Notification, notificationDoc]
}

var _ interfaces.NotificationRepository = &notificationRepository{}

type notificationDoc struct {
	ID        string    `firestore:"id"`
	Title     string    `firestore:"title"`
	Message   string    `firestore:"message"`
	CreatedAt time.Time `firestore:"created_at"`
	Read      bool      `firestore:"read"`
	Position  int       `firestore:"position"`
}

func newNotificationRepository(client *firestore.Client, gens *generations) *notificationRepository {
	return &notificationRepository{
		docs: &orderedCollection[model.Notification, notificationDoc]{
			client: client,
			gens:   gens,
			name:   notificationsCollection,
			entity: "notification",
			idOf:   func(n *model.Notification) string { return n.ID },
			toDoc: func(n *model.Notification, position int) *notificationDoc {
				return &notificationDoc{
					ID:        n.ID,
					Title:     n.Title,
					Message:   n.Message,
					CreatedAt: n.CreatedAt,
					Read:      n.Read,
					Position:  position,
				}
			},
			fromDoc: func(d *notificationDoc) *model.Notification {
				return &model.Notification{
					ID:        d.ID,
					Title:     d.Title,
					Message:   d.Message,
					CreatedAt: d.CreatedAt,
					Read:      d.Read,
				}
			},
			position: func(d *notificationDoc) int { return d.Position },
		},
	}
}

func (r *notificationRepository) GetAll(ctx context.Context) ([]*model.Notification, error) {
	return r.docs.getAll(ctx)
}

func (r *notificationRepository) Get(ctx context.Context, id string) (*model.Notification, error) {
	return r.docs.get(ctx, id)
}

func (r *notificationRepository) Modify(ctx context.Context, id string, mutate func(*model.Notification) error) (*model.Notification, error) {
	return r.docs.modify(ctx, id, mutate)
}

func (r *notificationRepository) SaveMany(ctx context.Context, notifications []*model.Notification) error {
	return r.docs.saveMany(ctx, notifications)
}

func (r *notificationRepository) DeleteAll(ctx context.Context) error {
	return r.docs.deleteAll(ctx)
}
