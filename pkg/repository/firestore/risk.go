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

const (
	riskAssessmentsCollection = "risk_assessments"
	currentDocument           = "current"
)

type riskRepository struct {
	gens *generations
}

var _ interfaces.RiskRepository = &riskRepository{}

func newRiskRepository(gens *generations) *riskRepository {
	return &riskRepository{gens: gens}
}

type riskItemDoc struct {
	ID         string    `firestore:"id"`
	Title      string    `firestore:"title"`
	Category   string    `firestore:"category"`
	Impact     int       `firestore:"impact"`
	Likelihood int       `firestore:"likelihood"`
	AssessedAt time.Time `firestore:"assessed_at"`
}

type categoryScoreDoc struct {
	Name  string  `firestore:"name"`
	Score float64 `firestore:"score"`
}

// riskAssessmentDoc holds the whole assessment in one document
type riskAssessmentDoc struct {
	OverallScore  float64            `firestore:"overall_score"`
	PreviousScore float64            `firestore:"previous_score"`
	Categories    []categoryScoreDoc `firestore:"categories"`
	Items         []riskItemDoc      `firestore:"items"`
	AssessedAt    time.Time          `firestore:"assessed_at"`
}

func (r *riskRepository) docRef(gen string) *firestore.DocumentRef {
	return r.gens.collection(gen, riskAssessmentsCollection).Doc(currentDocument)
}

func (r *riskRepository) toDoc(a *model.RiskAssessment) *riskAssessmentDoc {
	doc := &riskAssessmentDoc{
		OverallScore:  a.OverallScore,
		PreviousScore: a.PreviousScore,
		AssessedAt:    a.AssessedAt,
	}
	for _, c := range a.Categories {
		doc.Categories = append(doc.Categories, categoryScoreDoc{Name: c.Name, Score: c.Score})
	}
	for _, item := range a.Items {
		doc.Items = append(doc.Items, riskItemDoc{
			ID:         item.ID,
			Title:      item.Title,
			Category:   item.Category,
			Impact:     item.Impact,
			Likelihood: item.Likelihood,
			AssessedAt: item.AssessedAt,
		})
	}
	return doc
}

func (r *riskRepository) fromDoc(doc *riskAssessmentDoc) *model.RiskAssessment {
	a := &model.RiskAssessment{
		OverallScore:  doc.OverallScore,
		PreviousScore: doc.PreviousScore,
		AssessedAt:    doc.AssessedAt,
	}
	for _, c := range doc.Categories {
		a.Categories = append(a.Categories, model.CategoryScore{Name: c.Name, Score: c.Score})
	}
	for _, item := range doc.Items {
		a.Items = append(a.Items, model.RiskItem{
			ID:         item.ID,
			Title:      item.Title,
			Category:   item.Category,
			Impact:     item.Impact,
			Likelihood: item.Likelihood,
			AssessedAt: item.AssessedAt,
		})
	}
	return a
}

func (r *riskRepository) Get(ctx context.Context) (*model.RiskAssessment, error) {
	gen, err := r.gens.active(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := r.docRef(gen).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &model.RiskAssessment{}, nil
		}
		return nil, goerr.Wrap(err, "failed to get risk assessment")
	}

	var assessmentDoc riskAssessmentDoc
	if err := doc.DataTo(&assessmentDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal risk assessment")
	}
	return r.fromDoc(&assessmentDoc), nil
}

func (r *riskRepository) Save(ctx context.Context, assessment *model.RiskAssessment) error {
	gen, err := r.gens.active(ctx)
	if err != nil {
		return err
	}

	if _, err := r.docRef(gen).Set(ctx, r.toDoc(assessment)); err != nil {
		return goerr.Wrap(err, "failed to save risk assessment")
	}
	return nil
}

func (r *riskRepository) stage(w *bulkWrite, gen string, assessment *model.RiskAssessment) error {
	return w.set(r.docRef(gen), r.toDoc(assessment))
}
