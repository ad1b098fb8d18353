package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/interfaces"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/utils/logging"
)

const (
	metadataCollection    = "refresh_metadata"
	refreshStatusDocument = "refresh_status"
)

type Firestore struct {
	client           *firestore.Client
	collectionPrefix string
	gens             *generations

	risk         *riskRepository
	incident     *incidentRepository
	compliance   *complianceRepository
	lifecycle    *lifecycleRepository
	deadline     *deadlineRepository
	notification *notificationRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID))
	}

	f := &Firestore{client: client}
	for _, opt := range opts {
		opt(f)
	}

	f.gens = &generations{client: client, collectionPrefix: f.collectionPrefix}
	f.risk = newRiskRepository(f.gens)
	f.incident = newIncidentRepository(client, f.gens)
	f.compliance = newComplianceRepository(f.gens)
	f.lifecycle = newLifecycleRepository(client, f.gens)
	f.deadline = newDeadlineRepository(client, f.gens)
	f.notification = newNotificationRepository(client, f.gens)

	return f, nil
}

func (f *Firestore) Risk() interfaces.RiskRepository {
	return f.risk
}

func (f *Firestore) Incident() interfaces.IncidentRepository {
	return f.incident
}

func (f *Firestore) Compliance() interfaces.ComplianceRepository {
	return f.compliance
}

func (f *Firestore) Lifecycle() interfaces.LifecycleRepository {
	return f.lifecycle
}

func (f *Firestore) Deadline() interfaces.DeadlineRepository {
	return f.deadline
}

func (f *Firestore) Notification() interfaces.NotificationRepository {
	return f.notification
}

// ReplaceSnapshot writes snapshot into a fresh generation and then activates
// it in one transaction. Readers keep seeing the previous generation until the
// flip. The replaced generation is kept for readers still using it and the
// one before it is dropped.
func (f *Firestore) ReplaceSnapshot(ctx context.Context, snapshot *model.Snapshot) error {
	current, err := f.gens.active(ctx)
	if err != nil {
		return err
	}

	staged := uuid.NewString()
	if err := f.stage(ctx, staged, snapshot); err != nil {
		f.dropGeneration(context.WithoutCancel(ctx), staged)
		return goerr.Wrap(err, "failed to stage snapshot", goerr.V("generation", staged))
	}

	previous, err := f.gens.flip(ctx, current, staged, time.Now().UTC())
	if err != nil {
		f.dropGeneration(context.WithoutCancel(ctx), staged)
		return err
	}

	if previous != "" && previous != current && previous != staged {
		f.dropGeneration(ctx, previous)
	}
	return nil
}

func (f *Firestore) stage(ctx context.Context, gen string, snapshot *model.Snapshot) error {
	w := newBulkWrite(ctx, f.client)

	err := func() error {
		if err := f.risk.stage(w, gen, &snapshot.Risk); err != nil {
			return err
		}
		if err := f.compliance.stage(w, gen, &snapshot.Compliance); err != nil {
			return err
		}
		if err := f.incident.docs.stage(w, gen, pointers(snapshot.Incidents)); err != nil {
			return err
		}
		if err := f.lifecycle.docs.stage(w, gen, pointers(snapshot.Lifecycle)); err != nil {
			return err
		}
		if err := f.deadline.docs.stage(w, gen, pointers(snapshot.Deadlines)); err != nil {
			return err
		}
		return f.notification.docs.stage(w, gen, pointers(snapshot.Notifications))
	}()
	if endErr := w.end(); err == nil {
		err = endErr
	}
	return err
}

// dropGeneration deletes every document of gen. Failures only leave garbage
// behind, so they are logged and not returned.
func (f *Firestore) dropGeneration(ctx context.Context, gen string) {
	for _, name := range []string{
		riskAssessmentsCollection,
		complianceAssessmentsCollection,
		incidentsCollection,
		lifecycleCollection,
		deadlinesCollection,
		notificationsCollection,
	} {
		if err := deleteDocuments(ctx, f.client, f.gens.collection(gen, name)); err != nil {
			logging.From(ctx).Warn("failed to drop generation",
				"generation", gen,
				"collection", name,
				"error", err.Error())
		}
	}
}

func pointers[T any](items []T) []*T {
	result := make([]*T, 0, len(items))
	for i := range items {
		result = append(result, &items[i])
	}
	return result
}

// refreshMetadataDoc is the Firestore persistence model for refresh metadata
type refreshMetadataDoc struct {
	LastRefreshSuccess time.Time `firestore:"last_refresh_success"`
	LastRefreshAttempt time.Time `firestore:"last_refresh_attempt"`
	Source             string    `firestore:"source"`
	RecordCount        int       `firestore:"record_count"`
}

func (f *Firestore) metadataRef() *firestore.DocumentRef {
	return f.client.Collection(collectionName(f.collectionPrefix, metadataCollection)).Doc(refreshStatusDocument)
}

// GetRefreshMetadata returns a zero value if no refresh was recorded yet
func (f *Firestore) GetRefreshMetadata(ctx context.Context) (*model.RefreshMetadata, error) {
	doc, err := f.metadataRef().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &model.RefreshMetadata{}, nil
		}
		return nil, goerr.Wrap(err, "failed to get refresh metadata")
	}

	var metadataDoc refreshMetadataDoc
	if err := doc.DataTo(&metadataDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal refresh metadata")
	}

	return &model.RefreshMetadata{
		LastRefreshSuccess: metadataDoc.LastRefreshSuccess,
		LastRefreshAttempt: metadataDoc.LastRefreshAttempt,
		Source:             metadataDoc.Source,
		RecordCount:        metadataDoc.RecordCount,
	}, nil
}

func (f *Firestore) SaveRefreshMetadata(ctx context.Context, metadata *model.RefreshMetadata) error {
	_, err := f.metadataRef().Set(ctx, &refreshMetadataDoc{
		LastRefreshSuccess: metadata.LastRefreshSuccess,
		LastRefreshAttempt: metadata.LastRefreshAttempt,
		Source:             metadata.Source,
		RecordCount:        metadata.RecordCount,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to save refresh metadata")
	}
	return nil
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
