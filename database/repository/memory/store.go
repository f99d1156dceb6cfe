package memoryRepo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"rmadmin/models"
	"rmadmin/services/dashboard"
)

// ErrSubscriptionStopped is returned by Next after Stop.
var ErrSubscriptionStopped = errors.New("subscription stopped")

// Store is an in-process document store. Queries are evaluated on the store
// side and every write pushes the full ordered list to each subscriber of the
// written collection.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any
	subs        map[string]map[*subscription]struct{}
	now         func() time.Time
}

var (
	_ dashboard.Source  = (*Store)(nil)
	_ dashboard.Mutator = (*Store)(nil)
)

// New returns an empty store. now defaults to time.Now and stamps server
// timestamps.
func New(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		collections: make(map[string]map[string]map[string]any),
		subs:        make(map[string]map[*subscription]struct{}),
		now:         now,
	}
}

// Subscribe opens a subscription. The first Next returns the current list.
func (s *Store) Subscribe(_ context.Context, q dashboard.Query) (dashboard.Subscription, error) {
	if q.Collection == "" {
		return nil, fmt.Errorf("memory store: empty collection name")
	}
	sub := &subscription{
		store:   s,
		query:   q,
		notify:  make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
	sub.notify <- struct{}{}

	s.mu.Lock()
	if s.subs[q.Collection] == nil {
		s.subs[q.Collection] = make(map[*subscription]struct{})
	}
	s.subs[q.Collection][sub] = struct{}{}
	s.mu.Unlock()
	return sub, nil
}

// Create inserts a document under a new uuid.
func (s *Store) Create(_ context.Context, collection string, fields map[string]any) (string, error) {
	id := uuid.NewString()
	s.mu.Lock()
	docs := s.collectionLocked(collection)
	docs[id] = s.resolveLocked(nil, fields)
	s.mu.Unlock()
	s.publish(collection)
	return id, nil
}

// Update merges fields into an existing document.
func (s *Store) Update(_ context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	doc, ok := s.collections[collection][id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%s/%s: %w", collection, id, models.ErrRecordNotFound)
	}
	s.collections[collection][id] = s.resolveLocked(doc, fields)
	s.mu.Unlock()
	s.publish(collection)
	return nil
}

// Delete removes a document. Deleting a missing document is not an error.
func (s *Store) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	delete(s.collections[collection], id)
	s.mu.Unlock()
	s.publish(collection)
	return nil
}

// Put writes a whole document under id, replacing any previous version.
func (s *Store) Put(collection string, rec models.Record) {
	s.mu.Lock()
	s.collectionLocked(collection)[rec.ID] = s.resolveLocked(nil, rec.Fields)
	s.mu.Unlock()
	s.publish(collection)
}

// Break makes every open subscription on collection fail with err.
func (s *Store) Break(collection string, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for sub := range s.subs[collection] {
		sub.fail(err)
	}
}

func (s *Store) collectionLocked(collection string) map[string]map[string]any {
	docs, ok := s.collections[collection]
	if !ok {
		docs = make(map[string]map[string]any)
		s.collections[collection] = docs
	}
	return docs
}

func (s *Store) resolveLocked(base, fields map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(fields))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range fields {
		if models.IsServerTimestamp(v) {
			v = s.now()
		}
		out[k] = v
	}
	return out
}

func (s *Store) publish(collection string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for sub := range s.subs[collection] {
		sub.wake()
	}
}

func (s *Store) unsubscribe(sub *subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs[sub.query.Collection], sub)
}

// query returns the ordered list for q. Documents without the order field are
// left out, as a remote ordered query would.
func (s *Store) query(q dashboard.Query) models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := make(models.Snapshot, 0, len(s.collections[q.Collection]))
	for id, fields := range s.collections[q.Collection] {
		rec := models.Record{ID: id, Fields: fields}
		if q.OrderBy != "" {
			if v, ok := fields[q.OrderBy]; !ok || v == nil {
				continue
			}
		}
		snap = append(snap, rec.Clone())
	}

	sort.SliceStable(snap, func(i, j int) bool {
		c := compare(snap[i], snap[j], q.OrderBy)
		if c == 0 {
			return snap[i].ID < snap[j].ID
		}
		if q.Direction == dashboard.Descending {
			return c > 0
		}
		return c < 0
	})
	return snap
}

func compare(a, b models.Record, field string) int {
	if field == "" {
		return 0
	}
	if ta, ok := a.Time(field); ok {
		if tb, ok := b.Time(field); ok {
			return ta.Compare(tb)
		}
	}
	if na, ok := a.Number(field); ok {
		if nb, ok := b.Number(field); ok {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			}
			return 0
		}
	}
	sa, sb := a.String(field), b.String(field)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	return 0
}

type subscription struct {
	store   *Store
	query   dashboard.Query
	notify  chan struct{}
	stopped chan struct{}
	once    sync.Once

	mu  sync.Mutex
	err error
}

func (s *subscription) wake() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *subscription) fail(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
	s.wake()
}

// Next waits for a change and returns the whole ordered list. Bursts of
// writes between two calls are coalesced into one list.
func (s *subscription) Next(ctx context.Context) (models.Snapshot, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.stopped:
		return nil, ErrSubscriptionStopped
	case <-s.notify:
	}

	s.mu.Lock()
	err := s.err
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.store.query(s.query), nil
}

func (s *subscription) Stop() {
	s.once.Do(func() {
		close(s.stopped)
		s.store.unsubscribe(s)
	})
}
