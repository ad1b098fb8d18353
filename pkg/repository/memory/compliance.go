package memory

import (
	"context"
	"sync"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
)

type complianceRepository struct {
	mu         sync.RWMutex
	assessment model.ComplianceAssessment
}

func newComplianceRepository() *complianceRepository {
	return &complianceRepository{}
}

func copyFramework(f *model.Framework) model.Framework {
	copied := *f
	copied.Score = cloneFloat(f.Score)
	copied.LastAssessedAt = cloneTime(f.LastAssessedAt)
	return copied
}

func copyComplianceAssessment(a *model.ComplianceAssessment) *model.ComplianceAssessment {
	copied := &model.ComplianceAssessment{
		OverallScore:  cloneFloat(a.OverallScore),
		PreviousScore: cloneFloat(a.PreviousScore),
	}
	if a.Frameworks != nil {
		copied.Frameworks = make([]model.Framework, 0, len(a.Frameworks))
		for i := range a.Frameworks {
			copied.Frameworks = append(copied.Frameworks, copyFramework(&a.Frameworks[i]))
		}
	}
	return copied
}

func (r *complianceRepository) Get(ctx context.Context) (*model.ComplianceAssessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyComplianceAssessment(&r.assessment), nil
}

func (r *complianceRepository) Save(ctx context.Context, assessment *model.ComplianceAssessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.assessment = *copyComplianceAssessment(assessment)
	return nil
}
