// Package snapshot reads snapshot files from a local path or a Cloud Storage
// object and converts them into model.Snapshot.
package snapshot

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/types"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/utils/safe"
)

const gcsScheme = "gs://"

var (
	ErrInvalidLocation = errors.New("invalid snapshot location")
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

var validate = validator.New()

// Loader reads snapshot files
type Loader struct {
	storageClient *storage.Client
}

type Option func(*Loader)

// WithStorageClient sets the Cloud Storage client used for gs:// locations.
// Without it a client is created on first use with default credentials.
func WithStorageClient(client *storage.Client) Option {
	return func(l *Loader) {
		l.storageClient = client
	}
}

func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and parses the snapshot at location, a local path or gs://bucket/object
func (l *Loader) Load(ctx context.Context, location string) (*model.Snapshot, error) {
	data, err := l.read(ctx, location)
	if err != nil {
		return nil, err
	}

	s, err := Parse(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse snapshot", goerr.V("location", location))
	}
	return s, nil
}

func (l *Loader) read(ctx context.Context, location string) ([]byte, error) {
	if !strings.HasPrefix(location, gcsScheme) {
		// #nosec G304 - path is expected to be provided by CLI argument
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read snapshot file", goerr.V("path", location))
		}
		return data, nil
	}

	bucket, object, err := ParseGCSLocation(location)
	if err != nil {
		return nil, err
	}

	if l.storageClient == nil {
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create storage client")
		}
		l.storageClient = client
	}

	reader, err := l.storageClient.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open snapshot object",
			goerr.V("bucket", bucket),
			goerr.V("object", object))
	}
	defer safe.Close(ctx, reader)

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read snapshot object",
			goerr.V("bucket", bucket),
			goerr.V("object", object))
	}
	return data, nil
}

// Close releases the storage client if one was created
func (l *Loader) Close() error {
	if l.storageClient != nil {
		return l.storageClient.Close()
	}
	return nil
}

// ParseGCSLocation splits gs://bucket/object into bucket and object
func ParseGCSLocation(location string) (string, string, error) {
	rest, ok := strings.CutPrefix(location, gcsScheme)
	if !ok {
		return "", "", goerr.Wrap(ErrInvalidLocation, "missing gs:// scheme", goerr.V("location", location))
	}

	bucket, object, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", goerr.Wrap(ErrInvalidLocation, "expected gs://bucket/object", goerr.V("location", location))
	}
	return bucket, object, nil
}

// Parse decodes and validates a TOML snapshot
func Parse(data []byte) (*model.Snapshot, error) {
	var file File
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to decode TOML snapshot")
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}

	return file.ToModel(), nil
}

// Validate checks required fields of every entry
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Namespace()+" ("+fe.Tag()+")")
			}
			return goerr.Wrap(ErrInvalidSnapshot, "snapshot validation failed", goerr.V("fields", fields))
		}
		return goerr.Wrap(err, "snapshot validation failed")
	}
	return nil
}

// ToModel converts the file into a snapshot. Lifecycle records are listed
// vendors first, then documents, then policies.
func (f *File) ToModel() *model.Snapshot {
	s := &model.Snapshot{
		Risk: model.RiskAssessment{
			OverallScore:  f.Risk.OverallScore,
			PreviousScore: f.Risk.PreviousScore,
			AssessedAt:    f.Risk.AssessedAt,
		},
		Compliance: model.ComplianceAssessment{
			OverallScore:  f.Compliance.OverallScore,
			PreviousScore: f.Compliance.PreviousScore,
		},
	}

	for _, c := range f.Risk.Categories {
		s.Risk.Categories = append(s.Risk.Categories, model.CategoryScore{Name: c.Name, Score: c.Score})
	}
	for _, item := range f.Risk.Items {
		s.Risk.Items = append(s.Risk.Items, model.RiskItem{
			ID:         item.ID,
			Title:      item.Title,
			Category:   item.Category,
			Impact:     item.Impact,
			Likelihood: item.Likelihood,
			AssessedAt: item.AssessedAt,
		})
	}

	for _, e := range f.Incidents {
		s.Incidents = append(s.Incidents, model.Incident{
			ID:          e.ID,
			Title:       e.Title,
			Severity:    types.IncidentSeverity(types.Normalize(e.Severity)),
			Status:      types.IncidentStatus(types.Normalize(e.Status)),
			CreatedAt:   *e.CreatedAt,
			SLADeadline: e.SLADeadline,
			UpdatedAt:   e.UpdatedAt,
		})
	}

	for _, fw := range f.Compliance.Frameworks {
		s.Compliance.Frameworks = append(s.Compliance.Frameworks, model.Framework{
			ID:                fw.ID,
			Name:              fw.Name,
			Score:             fw.Score,
			ControlsCompliant: fw.ControlsCompliant,
			TotalControls:     fw.TotalControls,
			CriticalFindings:  fw.CriticalFindings,
			LastAssessedAt:    fw.LastAssessedAt,
		})
	}

	for _, group := range []struct {
		kind    types.LifecycleKind
		entries []LifecycleEntry
	}{
		{types.LifecycleKindVendor, f.Vendors},
		{types.LifecycleKindDocument, f.Documents},
		{types.LifecycleKindPolicy, f.Policies},
	} {
		for _, e := range group.entries {
			s.Lifecycle = append(s.Lifecycle, model.LifecycleRecord{
				ID:             e.ID,
				Kind:           group.kind,
				Name:           e.Name,
				Status:         types.LifecycleStatus(types.Normalize(e.Status)),
				Score:          e.Score,
				ExpiryDate:     e.ExpiryDate,
				NextReviewDate: e.NextReviewDate,
				UpdatedAt:      e.UpdatedAt,
			})
		}
	}

	for _, e := range f.Deadlines {
		s.Deadlines = append(s.Deadlines, model.Deadline{
			ID:          e.ID,
			Title:       e.Title,
			Framework:   e.Framework,
			DueDate:     *e.DueDate,
			Priority:    types.Priority(types.Normalize(e.Priority)),
			Completed:   e.Completed,
			CompletedAt: e.CompletedAt,
		})
	}

	for _, e := range f.Notifications {
		s.Notifications = append(s.Notifications, model.Notification{
			ID:        e.ID,
			Title:     e.Title,
			Message:   e.Message,
			CreatedAt: e.CreatedAt,
			Read:      e.Read,
		})
	}

	return s
}
