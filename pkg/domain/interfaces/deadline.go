package interfaces

import (
	"context"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
)

type DeadlineRepository interface {
	GetAll(ctx context.Context) ([]*model.Deadline, error)
	Get(ctx context.Context, id string) (*model.Deadline, error)
	// Modify is an atomic read-modify-write of one record
	Modify(ctx context.Context, id string, mutate func(*model.Deadline) error) (*model.Deadline, error)
	SaveMany(ctx context.Context, deadlines []*model.Deadline) error
	DeleteAll(ctx context.Context) error
}
