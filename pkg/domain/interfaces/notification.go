package interfaces

import (
	"context"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
)

type NotificationRepository interface {
	GetAll(ctx context.Context) ([]*model.Notification, error)
	Get(ctx context.Context, id string) (*model.Notification, error)
	// Modify is an atomic read-modify-write of one record
	Modify(ctx context.Context, id string, mutate func(*model.Notification) error) (*model.Notification, error)
	SaveMany(ctx context.Context, notifications []*model.Notification) error
	DeleteAll(ctx context.Context) error
}
