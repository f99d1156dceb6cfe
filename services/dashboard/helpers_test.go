package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rmadmin/models"
)

var errStopped = errors.New("subscription stopped")

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{t: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type delivery struct {
	snap models.Snapshot
	err  error
}

type fakeSubscription struct {
	query   Query
	ch      chan delivery
	stopped chan struct{}
	once    sync.Once
}

func (f *fakeSubscription) Next(ctx context.Context) (models.Snapshot, error) {
	select {
	case d := <-f.ch:
		return d.snap, d.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-f.stopped:
		return nil, errStopped
	}
}

func (f *fakeSubscription) Stop() { f.once.Do(func() { close(f.stopped) }) }

func (f *fakeSubscription) push(records ...models.Record) {
	f.ch <- delivery{snap: models.Snapshot(records)}
}

func (f *fakeSubscription) fail(err error) { f.ch <- delivery{err: err} }

// fakeSource hands out one scripted subscription per collection.
type fakeSource struct {
	mu   sync.Mutex
	subs map[string]*fakeSubscription
	err  error
}

func newFakeSource() *fakeSource {
	return &fakeSource{subs: make(map[string]*fakeSubscription)}
}

func (s *fakeSource) Subscribe(_ context.Context, q Query) (Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	sub := &fakeSubscription{query: q, ch: make(chan delivery, 16), stopped: make(chan struct{})}
	s.subs[q.Collection] = sub
	return sub, nil
}

func (s *fakeSource) sub(t *testing.T, collection string) *fakeSubscription {
	t.Helper()
	var sub *fakeSubscription
	require.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		sub = s.subs[collection]
		return sub != nil
	}, 2*time.Second, 5*time.Millisecond, "no subscription on %s", collection)
	return sub
}

type viewRecorder struct {
	views    chan models.View
	products chan models.ProductList
}

func newViewRecorder() *viewRecorder {
	return &viewRecorder{
		views:    make(chan models.View, 32),
		products: make(chan models.ProductList, 32),
	}
}

func (r *viewRecorder) Render(v models.View)                { r.views <- v }
func (r *viewRecorder) RenderProducts(l models.ProductList) { r.products <- l }

func (r *viewRecorder) next(t *testing.T) models.View {
	t.Helper()
	select {
	case v := <-r.views:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a render")
		return models.View{}
	}
}

func (r *viewRecorder) nextProducts(t *testing.T) models.ProductList {
	t.Helper()
	select {
	case l := <-r.products:
		return l
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a products render")
		return models.ProductList{}
	}
}

func (r *viewRecorder) quiet(t *testing.T) {
	t.Helper()
	select {
	case v := <-r.views:
		t.Fatalf("unexpected render: %+v", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func booking(id string, status models.Status, date time.Time, source string) models.Record {
	fields := map[string]any{models.FieldName: "Cliente " + id}
	if status != "" {
		fields[models.FieldStatus] = string(status)
	}
	if !date.IsZero() {
		fields[models.FieldDate] = date
	}
	if source != "" {
		fields[models.FieldSource] = source
	}
	return models.Record{ID: id, Fields: fields}
}

func bookings(n int, date time.Time) models.Snapshot {
	snap := make(models.Snapshot, 0, n)
	for i := 0; i < n; i++ {
		snap = append(snap, booking(idFor(i), models.StatusPending, date.Add(-time.Duration(i)*time.Hour), ""))
	}
	return snap
}

func idFor(i int) string {
	return "r" + string(rune('a'+i/26)) + string(rune('a'+i%26))
}
