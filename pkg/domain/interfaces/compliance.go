package interfaces

import (
	"context"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
)

// ComplianceRepository stores the single current compliance assessment
type ComplianceRepository interface {
	// Get returns the current assessment. An empty assessment is returned if
	// none was saved yet.
	Get(ctx context.Context) (*model.ComplianceAssessment, error)

	// Save replaces the current assessment
	Save(ctx context.Context, assessment *model.ComplianceAssessment) error
}
