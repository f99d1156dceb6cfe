package mongoRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"rmadmin/models"
	"rmadmin/services/dashboard"
)

// ErrSubscriptionStopped is returned by Next once the change stream is closed.
var ErrSubscriptionStopped = errors.New("change stream closed")

// Store maps collections onto a MongoDB database. Live updates come from
// change streams, which need a replica set or a sharded cluster.
type Store struct {
	db     *mongo.Database
	now    func() time.Time
	logger *zap.Logger
}

var (
	_ dashboard.Source  = (*Store)(nil)
	_ dashboard.Mutator = (*Store)(nil)
)

func New(db *mongo.Database, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, now: time.Now, logger: logger.Named("mongo")}
}

// Subscribe opens a change stream on the collection. Every change event
// triggers a fresh sorted read of the whole collection.
func (s *Store) Subscribe(ctx context.Context, q dashboard.Query) (dashboard.Subscription, error) {
	coll := s.db.Collection(q.Collection)
	stream, err := coll.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", q.Collection, err)
	}
	s.logger.Debug("watching", zap.String("collection", q.Collection), zap.String("orderBy", q.OrderBy))
	return &subscription{coll: coll, query: q, stream: stream}, nil
}

type subscription struct {
	coll   *mongo.Collection
	query  dashboard.Query
	stream *mongo.ChangeStream
	primed bool
}

// Next returns the current list on the first call, then waits for a change
// event. Events already buffered by the driver are folded into one read.
func (s *subscription) Next(ctx context.Context) (models.Snapshot, error) {
	if s.primed {
		if !s.stream.Next(ctx) {
			if err := s.stream.Err(); err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				return nil, fmt.Errorf("change stream %s: %w", s.query.Collection, err)
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, ErrSubscriptionStopped
		}
		for s.stream.RemainingBatchLength() > 0 {
			if !s.stream.Next(ctx) {
				break
			}
		}
	}
	s.primed = true
	return s.find(ctx)
}

func (s *subscription) find(ctx context.Context) (models.Snapshot, error) {
	cursor, err := s.coll.Find(ctx, orderFilter(s.query), options.Find().SetSort(sortSpec(s.query)))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", s.query.Collection, err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.query.Collection, err)
	}
	snap := make(models.Snapshot, 0, len(docs))
	for _, doc := range docs {
		snap = append(snap, toRecord(doc))
	}
	return snap, nil
}

func (s *subscription) Stop() {
	_ = s.stream.Close(context.Background())
}

func (s *Store) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	doc := toBSON(fields, s.now)
	id := uuid.New().String()
	doc["_id"] = id
	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	res, err := s.db.Collection(collection).UpdateOne(ctx, idFilter(id), bson.M{"$set": toBSON(fields, s.now)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s/%s: %w", collection, id, models.ErrRecordNotFound)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db.Collection(collection).DeleteOne(ctx, idFilter(id))
	return err
}

// orderFilter leaves out documents without the order field, matching the
// behaviour of an ordered Firestore query.
func orderFilter(q dashboard.Query) bson.M {
	if q.OrderBy == "" {
		return bson.M{}
	}
	return bson.M{q.OrderBy: bson.M{"$exists": true, "$ne": nil}}
}

func sortSpec(q dashboard.Query) bson.D {
	if q.OrderBy == "" {
		return bson.D{{Key: "_id", Value: 1}}
	}
	dir := -1
	if q.Direction == dashboard.Ascending {
		dir = 1
	}
	return bson.D{{Key: q.OrderBy, Value: dir}, {Key: "_id", Value: 1}}
}

// idFilter matches both uuid string ids and documents inserted elsewhere with
// an ObjectID.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{id, oid}}}
	}
	return bson.M{"_id": id}
}

func toBSON(fields map[string]any, now func() time.Time) bson.M {
	out := make(bson.M, len(fields))
	for k, v := range fields {
		switch t := v.(type) {
		case map[string]any:
			out[k] = toBSON(t, now)
		default:
			if models.IsServerTimestamp(v) {
				out[k] = now().UTC()
				continue
			}
			out[k] = v
		}
	}
	return out
}

func toRecord(doc bson.M) models.Record {
	rec := models.Record{Fields: make(map[string]any, len(doc))}
	for k, v := range doc {
		if k == "_id" {
			rec.ID = idString(v)
			continue
		}
		rec.Fields[k] = fromBSON(v)
	}
	return rec
}

func idString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case primitive.ObjectID:
		return t.Hex()
	default:
		return fmt.Sprint(t)
	}
}

func fromBSON(v any) any {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time()
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0)
	case primitive.ObjectID:
		return t.Hex()
	case int32:
		return int64(t)
	case bson.M:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = fromBSON(val)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = fromBSON(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = fromBSON(val)
		}
		return out
	default:
		return v
	}
}
