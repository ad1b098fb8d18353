package memory

import (
	"context"
	"sync"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
)

type riskRepository struct {
	mu         sync.RWMutex
	assessment model.RiskAssessment
}

func newRiskRepository() *riskRepository {
	return &riskRepository{}
}

func copyRiskAssessment(a *model.RiskAssessment) *model.RiskAssessment {
	copied := &model.RiskAssessment{
		OverallScore:  a.OverallScore,
		PreviousScore: a.PreviousScore,
		AssessedAt:    a.AssessedAt,
	}
	if a.Categories != nil {
		copied.Categories = append([]model.CategoryScore{}, a.Categories...)
	}
	if a.Items != nil {
		copied.Items = append([]model.RiskItem{}, a.Items...)
	}
	return copied
}

func (r *riskRepository) Get(ctx context.Context) (*model.RiskAssessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyRiskAssessment(&r.assessment), nil
}

func (r *riskRepository) Save(ctx context.Context, assessment *model.RiskAssessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.assessment = *copyRiskAssessment(assessment)
	return nil
}
