package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	generationsCollection = "generations"
	snapshotStateDocument = "snapshot_state"

	// defaultGeneration holds records written before the first snapshot import
	defaultGeneration = "default"
)

// ErrSnapshotConflict is returned when another import switched the active
// generation while a snapshot was being staged
var ErrSnapshotConflict = goerr.New("snapshot replaced concurrently")

// generationDoc points readers at the record set they should use. Every
// snapshot import stages a new generation and flips this document.
type generationDoc struct {
	Active      string    `firestore:"active"`
	Previous    string    `firestore:"previous"`
	ActivatedAt time.Time `firestore:"activated_at"`
}

type generations struct {
	client           *firestore.Client
	collectionPrefix string
}

func (g *generations) stateRef() *firestore.DocumentRef {
	return g.client.Collection(collectionName(g.collectionPrefix, metadataCollection)).Doc(snapshotStateDocument)
}

// collection returns the named collection inside generation gen
func (g *generations) collection(gen, name string) *firestore.CollectionRef {
	return g.client.Collection(collectionName(g.collectionPrefix, generationsCollection)).Doc(gen).Collection(name)
}

func decodeState(doc *firestore.DocumentSnapshot, err error) (*generationDoc, error) {
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &generationDoc{Active: defaultGeneration}, nil
		}
		return nil, goerr.Wrap(err, "failed to get snapshot state")
	}

	var state generationDoc
	if err := doc.DataTo(&state); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal snapshot state")
	}
	if state.Active == "" {
		state.Active = defaultGeneration
	}
	return &state, nil
}

func (g *generations) state(ctx context.Context) (*generationDoc, error) {
	return decodeState(g.stateRef().Get(ctx))
}

// stateTx reads the state inside tx, so the transaction conflicts with a
// concurrent flip
func (g *generations) stateTx(tx *firestore.Transaction) (*generationDoc, error) {
	return decodeState(tx.Get(g.stateRef()))
}

func (g *generations) active(ctx context.Context) (string, error) {
	state, err := g.state(ctx)
	if err != nil {
		return "", err
	}
	return state.Active, nil
}

// flip makes staged the active generation if expected is still active. It
// returns the generation that was previous before the flip.
func (g *generations) flip(ctx context.Context, expected, staged string, now time.Time) (string, error) {
	var previous string
	err := g.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		state, err := g.stateTx(tx)
		if err != nil {
			return err
		}
		if state.Active != expected {
			return goerr.Wrap(ErrSnapshotConflict, "active generation changed",
				goerr.V("expected", expected),
				goerr.V("active", state.Active))
		}
		previous = state.Previous

		return tx.Set(g.stateRef(), &generationDoc{
			Active:      staged,
			Previous:    expected,
			ActivatedAt: now,
		})
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to activate generation", goerr.V("generation", staged))
	}
	return previous, nil
}

// bulkWrite collects BulkWriter jobs so write failures surface as errors
type bulkWrite struct {
	writer *firestore.BulkWriter
	jobs   []*firestore.BulkWriterJob
}

func newBulkWrite(ctx context.Context, client *firestore.Client) *bulkWrite {
	return &bulkWrite{writer: client.BulkWriter(ctx)}
}

func (w *bulkWrite) set(ref *firestore.DocumentRef, data any) error {
	job, err := w.writer.Set(ref, data)
	if err != nil {
		return goerr.Wrap(err, "failed to add Set operation to bulk writer", goerr.V("path", ref.Path))
	}
	w.jobs = append(w.jobs, job)
	return nil
}

func (w *bulkWrite) delete(ref *firestore.DocumentRef) error {
	job, err := w.writer.Delete(ref)
	if err != nil {
		return goerr.Wrap(err, "failed to add Delete operation to bulk writer", goerr.V("path", ref.Path))
	}
	w.jobs = append(w.jobs, job)
	return nil
}

// end flushes pending writes and returns the first failed one
func (w *bulkWrite) end() error {
	w.writer.End()

	for _, job := range w.jobs {
		if _, err := job.Results(); err != nil {
			return goerr.Wrap(err, "bulk write failed", goerr.V("jobs", len(w.jobs)))
		}
	}
	return nil
}
