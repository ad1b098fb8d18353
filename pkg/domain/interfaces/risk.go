package interfaces

import (
	"context"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
)

// RiskRepository stores the single current risk assessment
type RiskRepository interface {
	// Get returns the current assessment. An empty assessment is returned if
	// none was saved yet.
	Get(ctx context.Context) (*model.RiskAssessment, error)

	// Save replaces the current assessment
	Save(ctx context.Context, assessment *model.RiskAssessment) error
}
