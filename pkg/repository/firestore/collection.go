package firestore

import (
	"context"
	"net/url"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	positionField = "position"

	// Firestore batch operation limits
	// Reference: https://cloud.google.com/firestore/docs/query-data/get-data#go
	firestoreGetAllLimit = 30 // Maximum document references per GetAll
)

func collectionName(prefix, name string) string {
	if prefix != "" {
		return prefix + "_" + name
	}
	return name
}

// docID escapes a record ID into a valid document ID
func docID(id string) string {
	return url.PathEscape(id)
}

// orderedCollection stores records of type T as documents of type D inside
// the active generation. Every document carries the position the record was
// first saved at, so GetAll returns records in insertion order.
type orderedCollection[T any, D any] struct {
	client   *firestore.Client
	gens     *generations
	name     string
	entity   string
	idOf     func(*T) string
	toDoc    func(item *T, position int) *D
	fromDoc  func(*D) *T
	position func(*D) int
}

func (c *orderedCollection[T, D]) ref(ctx context.Context) (*firestore.CollectionRef, error) {
	gen, err := c.gens.active(ctx)
	if err != nil {
		return nil, err
	}
	return c.gens.collection(gen, c.name), nil
}

func (c *orderedCollection[T, D]) getAll(ctx context.Context) ([]*T, error) {
	ref, err := c.ref(ctx)
	if err != nil {
		return nil, err
	}

	iter := ref.OrderBy(positionField, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var items []*T
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate "+c.entity)
		}

		var d D
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal "+c.entity, goerr.V("docID", doc.Ref.ID))
		}
		items = append(items, c.fromDoc(&d))
	}

	return items, nil
}

func (c *orderedCollection[T, D]) get(ctx context.Context, id string) (*T, error) {
	ref, err := c.ref(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := ref.Doc(docID(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, c.entity+" not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get "+c.entity, goerr.V("id", id))
	}

	var d D
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal "+c.entity, goerr.V("id", id))
	}
	return c.fromDoc(&d), nil
}

// modify reads the document, applies mutate and writes it back in one
// transaction, keeping its position. The snapshot state is read inside the
// transaction too, so a concurrent snapshot import retries it.
func (c *orderedCollection[T, D]) modify(ctx context.Context, id string, mutate func(*T) error) (*T, error) {
	var (
		result   *T
		notFound bool
		rejected error
	)
	err := c.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		result, notFound, rejected = nil, false, nil

		state, err := c.gens.stateTx(tx)
		if err != nil {
			return err
		}
		docRef := c.gens.collection(state.Active, c.name).Doc(docID(id))

		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				notFound = true
				return nil
			}
			return err
		}

		var current D
		if err := doc.DataTo(&current); err != nil {
			return goerr.Wrap(err, "failed to unmarshal "+c.entity, goerr.V("id", id))
		}

		item := c.fromDoc(&current)
		if err := mutate(item); err != nil {
			rejected = err
			return nil
		}
		result = item
		return tx.Set(docRef, c.toDoc(item, c.position(&current)))
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update "+c.entity, goerr.V("id", id))
	}
	if notFound {
		return nil, goerr.Wrap(ErrNotFound, c.entity+" not found", goerr.V("id", id))
	}
	if rejected != nil {
		return nil, rejected
	}
	return result, nil
}

// saveMany upserts items. Existing documents keep their position and new ones
// are appended after the current last position.
func (c *orderedCollection[T, D]) saveMany(ctx context.Context, items []*T) error {
	if len(items) == 0 {
		return nil
	}

	ref, err := c.ref(ctx)
	if err != nil {
		return err
	}

	positions, next, err := c.positions(ctx, ref, items)
	if err != nil {
		return err
	}

	w := newBulkWrite(ctx, c.client)
	for _, item := range items {
		id := c.idOf(item)
		pos, ok := positions[id]
		if !ok {
			pos = next
			positions[id] = pos
			next++
		}

		if err := w.set(ref.Doc(docID(id)), c.toDoc(item, pos)); err != nil {
			_ = w.end()
			return err
		}
	}

	if err := w.end(); err != nil {
		return goerr.Wrap(err, "failed to save "+c.entity, goerr.V("count", len(items)))
	}
	return nil
}

// stage queues items into generation gen, which is expected to be empty
func (c *orderedCollection[T, D]) stage(w *bulkWrite, gen string, items []*T) error {
	ref := c.gens.collection(gen, c.name)
	positions := make(map[string]int, len(items))

	for _, item := range items {
		id := c.idOf(item)
		pos, ok := positions[id]
		if !ok {
			pos = len(positions)
			positions[id] = pos
		}
		if err := w.set(ref.Doc(docID(id)), c.toDoc(item, pos)); err != nil {
			return err
		}
	}
	return nil
}

// positions returns the stored position of every existing item and the next
// free position
func (c *orderedCollection[T, D]) positions(ctx context.Context, ref *firestore.CollectionRef, items []*T) (map[string]int, int, error) {
	positions := make(map[string]int, len(items))

	next := 0
	iter := ref.OrderBy(positionField, firestore.Desc).Limit(1).Documents(ctx)
	last, err := iter.Next()
	iter.Stop()
	switch {
	case err == iterator.Done:
	case err != nil:
		return nil, 0, goerr.Wrap(err, "failed to query last position of "+c.entity)
	default:
		var d D
		if err := last.DataTo(&d); err != nil {
			return nil, 0, goerr.Wrap(err, "failed to unmarshal "+c.entity, goerr.V("docID", last.Ref.ID))
		}
		next = c.position(&d) + 1
	}

	// Split into batches of firestoreGetAllLimit documents
	for i := 0; i < len(items); i += firestoreGetAllLimit {
		end := min(i+firestoreGetAllLimit, len(items))
		batch := items[i:end]

		refs := make([]*firestore.DocumentRef, len(batch))
		for j, item := range batch {
			refs[j] = ref.Doc(docID(c.idOf(item)))
		}

		docs, err := c.client.GetAll(ctx, refs)
		if err != nil {
			return nil, 0, goerr.Wrap(err, "failed to batch get "+c.entity, goerr.V("count", len(batch)))
		}

		for idx, doc := range docs {
			if !doc.Exists() {
				continue
			}
			var d D
			if err := doc.DataTo(&d); err != nil {
				return nil, 0, goerr.Wrap(err, "failed to unmarshal "+c.entity, goerr.V("docID", doc.Ref.ID))
			}
			positions[c.idOf(batch[idx])] = c.position(&d)
		}
	}

	return positions, next, nil
}

func (c *orderedCollection[T, D]) deleteAll(ctx context.Context) error {
	ref, err := c.ref(ctx)
	if err != nil {
		return err
	}
	return deleteDocuments(ctx, c.client, ref)
}

func deleteDocuments(ctx context.Context, client *firestore.Client, ref *firestore.CollectionRef) error {
	// Retrieve all document references
	iter := ref.Documents(ctx)
	defer iter.Stop()

	var refs []*firestore.DocumentRef
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate documents for deletion", goerr.V("collection", ref.Path))
		}
		refs = append(refs, doc.Ref)
	}

	if len(refs) == 0 {
		return nil
	}

	w := newBulkWrite(ctx, client)
	for _, docRef := range refs {
		if err := w.delete(docRef); err != nil {
			_ = w.end()
			return err
		}
	}

	if err := w.end(); err != nil {
		return goerr.Wrap(err, "failed to delete documents", goerr.V("collection", ref.Path))
	}
	return nil
}
