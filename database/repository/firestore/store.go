package firestoreRepo

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rmadmin/models"
	"rmadmin/services/dashboard"
)

// ErrSubscriptionStopped is returned by Next once the snapshot iterator is done.
var ErrSubscriptionStopped = errors.New("firestore snapshot listener stopped")

// Store reads and writes collections of a Cloud Firestore database.
type Store struct {
	client *firestore.Client
	logger *zap.Logger
}

var (
	_ dashboard.Source  = (*Store)(nil)
	_ dashboard.Mutator = (*Store)(nil)
)

func New(client *firestore.Client, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{client: client, logger: logger.Named("firestore")}
}

// Subscribe starts a snapshot listener on the ordered query. The listener is
// bound to ctx.
func (s *Store) Subscribe(ctx context.Context, q dashboard.Query) (dashboard.Subscription, error) {
	query := s.client.Collection(q.Collection).Query
	if q.OrderBy != "" {
		query = query.OrderBy(q.OrderBy, direction(q.Direction))
	}
	s.logger.Debug("listening", zap.String("collection", q.Collection), zap.String("orderBy", q.OrderBy))
	return &subscription{it: query.Snapshots(ctx), collection: q.Collection}, nil
}

func direction(d dashboard.Direction) firestore.Direction {
	if d == dashboard.Ascending {
		return firestore.Asc
	}
	return firestore.Desc
}

type subscription struct {
	it         *firestore.QuerySnapshotIterator
	collection string
}

// Next blocks until the listener delivers the next query snapshot and returns
// all of its documents in query order.
func (s *subscription) Next(ctx context.Context) (models.Snapshot, error) {
	qs, err := s.it.Next()
	if errors.Is(err, iterator.Done) {
		return nil, ErrSubscriptionStopped
	}
	if err != nil {
		if status.Code(err) == codes.Canceled && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("listen %s: %w", s.collection, err)
	}

	docs, err := qs.Documents.GetAll()
	if err != nil {
		return nil, fmt.Errorf("read %s snapshot: %w", s.collection, err)
	}
	snap := make(models.Snapshot, 0, len(docs))
	for _, doc := range docs {
		snap = append(snap, models.Record{ID: doc.Ref.ID, Fields: doc.Data()})
	}
	return snap, nil
}

func (s *subscription) Stop() { s.it.Stop() }

func (s *Store) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, toFirestore(fields))
	if err != nil {
		return "", mapError(err)
	}
	return ref.ID, nil
}

// Update writes only the given top-level fields. Firestore rejects updates of
// missing documents, reported as models.ErrRecordNotFound.
func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	_, err := s.client.Collection(collection).Doc(id).Update(ctx, toUpdates(fields))
	return mapError(err)
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx)
	return mapError(err)
}

func toFirestore(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = toFirestoreValue(v)
	}
	return out
}

func toFirestoreValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return toFirestore(t)
	default:
		if models.IsServerTimestamp(v) {
			return firestore.ServerTimestamp
		}
		return v
	}
}

// toUpdates builds one update per field, sorted by name. Field names are used
// as single path segments.
func toUpdates(fields map[string]any) []firestore.Update {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	updates := make([]firestore.Update, 0, len(keys))
	for _, k := range keys {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{k}, Value: toFirestoreValue(fields[k])})
	}
	return updates
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%w: %w", models.ErrRecordNotFound, err)
	}
	return err
}
