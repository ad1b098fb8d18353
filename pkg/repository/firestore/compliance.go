package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/interfaces"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
)

const complianceAssessmentsCollection = "compliance_assessments"

type complianceRepository struct {
	gens *generations
}

var _ interfaces.ComplianceRepository = &complianceRepository{}

func newComplianceRepository(gens *generations) *complianceRepository {
	return &complianceRepository{gens: gens}
}

type frameworkDoc struct {
	ID                string     `firestore:"id"`
	Name              string     `firestore:"name"`
	Score             *float64   `firestore:"score"`
	ControlsCompliant int        `firestore:"controls_compliant"`
	TotalControls     int        `firestore:"total_controls"`
	CriticalFindings  int        `firestore:"critical_findings"`
	LastAssessedAt    *time.Time `firestore:"last_assessed_at"`
}

type complianceAssessmentDoc struct {
	OverallScore  *float64       `firestore:"overall_score"`
	PreviousScore *float64       `firestore:"previous_score"`
	Frameworks    []frameworkDoc `firestore:"frameworks"`
}

func (r *complianceRepository) docRef(gen string) *firestore.DocumentRef {
	return r.gens.collection(gen, complianceAssessmentsCollection).Doc(currentDocument)
}

func (r *complianceRepository) Get(ctx context.Context) (*model.ComplianceAssessment, error) {
	gen, err := r.gens.active(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := r.docRef(gen).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &model.ComplianceAssessment{}, nil
		}
		return nil, goerr.Wrap(err, "failed to get compliance assessment")
	}

	var d complianceAssessmentDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal compliance assessment")
	}

	a := &model.ComplianceAssessment{
		OverallScore:  d.OverallScore,
		PreviousScore: d.PreviousScore,
	}
	for _, f := range d.Frameworks {
		a.Frameworks = append(a.Frameworks, model.Framework{
			ID:                f.ID,
			Name:              f.Name,
			Score:             f.Score,
			ControlsCompliant: f.ControlsCompliant,
			TotalControls:     f.TotalControls,
			CriticalFindings:  f.CriticalFindings,
			LastAssessedAt:    f.LastAssessedAt,
		})
	}
	return a, nil
}

func toComplianceDoc(assessment *model.ComplianceAssessment) *complianceAssessmentDoc {
	d := &complianceAssessmentDoc{
		OverallScore:  assessment.OverallScore,
		PreviousScore: assessment.PreviousScore,
	}
	for _, f := range assessment.Frameworks {
		d.Frameworks = append(d.Frameworks, frameworkDoc{
			ID:                f.ID,
			Name:              f.Name,
			Score:             f.Score,
			ControlsCompliant: f.ControlsCompliant,
			TotalControls:     f.TotalControls,
			CriticalFindings:  f.CriticalFindings,
			LastAssessedAt:    f.LastAssessedAt,
		})
	}
	return d
}

func (r *complianceRepository) Save(ctx context.Context, assessment *model.ComplianceAssessment) error {
	gen, err := r.gens.active(ctx)
	if err != nil {
		return err
	}

	if _, err := r.docRef(gen).Set(ctx, toComplianceDoc(assessment)); err != nil {
		return goerr.Wrap(err, "failed to save compliance assessment")
	}
	return nil
}

func (r *complianceRepository) stage(w *bulkWrite, gen string, assessment *model.ComplianceAssessment) error {
	return w.set(r.docRef(gen), toComplianceDoc(assessment))
}
