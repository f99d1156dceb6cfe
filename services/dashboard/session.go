package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rmadmin/models"
	"rmadmin/services/cache"
)

// SessionConfig holds the per-session settings.
type SessionConfig struct {
	BookingsCollection string
	ProductsCollection string
	PageSize           int
	StatsTTL           time.Duration
	StatsCacheCapacity int
	Location           *time.Location
}

// Deps are the collaborators a session talks to.
type Deps struct {
	Source          Source
	Mutator         Mutator
	Clock           Clock
	Renderer        Renderer
	ProductRenderer ProductRenderer
	Logger          *zap.Logger
}

// Session owns the read model of one dashboard: both mirrors, the stats
// cache, the paginator and the transition controller. Pipeline runs and page
// changes are serialized by mu; remote writes run outside it.
type Session struct {
	cfg             SessionConfig
	source          Source
	mutator         Mutator
	clock           Clock
	renderer        Renderer
	productRenderer ProductRenderer
	logger          *zap.Logger

	bookings    *Mirror
	products    *Mirror
	aggregator  *Aggregator
	paginator   *Paginator
	transitions *TransitionController

	mu           sync.Mutex
	closed       bool
	lastView     *models.View
	lastProducts *models.ProductList

	errMu   sync.RWMutex
	lastErr error
}

// NewSession builds a session. Nothing is subscribed until Start.
func NewSession(cfg SessionConfig, deps Deps) (*Session, error) {
	if deps.Source == nil || deps.Mutator == nil {
		return nil, fmt.Errorf("dashboard session needs a source and a mutator")
	}
	if cfg.BookingsCollection == "" {
		cfg.BookingsCollection = "reservas"
	}
	if cfg.ProductsCollection == "" {
		cfg.ProductsCollection = "productos"
	}
	if cfg.StatsCacheCapacity == 0 {
		cfg.StatsCacheCapacity = DefaultStatsCacheCapacity
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if deps.Clock == nil {
		deps.Clock = SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	statsCache, err := cache.New[string, models.AggregateStats](cfg.StatsCacheCapacity, cache.WithClock(deps.Clock.Now))
	if err != nil {
		return nil, fmt.Errorf("stats cache: %w", err)
	}

	s := &Session{
		cfg:             cfg,
		source:          deps.Source,
		mutator:         deps.Mutator,
		clock:           deps.Clock,
		renderer:        deps.Renderer,
		productRenderer: deps.ProductRenderer,
		logger:          deps.Logger,
		aggregator:      NewAggregator(statsCache, cfg.StatsTTL, deps.Clock, cfg.Location),
		paginator:       NewPaginator(cfg.PageSize),
	}
	if s.renderer == nil {
		s.renderer = nopRenderer{}
	}
	if s.productRenderer == nil {
		s.productRenderer = nopRenderer{}
	}
	s.bookings = NewMirror(cfg.BookingsCollection, deps.Logger, s.onBookings)
	s.products = NewMirror(cfg.ProductsCollection, deps.Logger, s.onProducts)
	s.transitions = NewTransitionController(deps.Mutator, cfg.BookingsCollection, deps.Clock, s.bookings.Find, deps.Logger)
	return s, nil
}

// Start subscribes to bookings (newest date first) and products (newest
// first) and blocks until both subscriptions end. The subscriptions are
// independent: one failing leaves the other live. Each failure is recorded
// for Err as it happens; Start returns the first one. Snapshots already
// received stay readable.
func (s *Session) Start(ctx context.Context) error {
	var g errgroup.Group
	run := func(m *Mirror, q Query) {
		g.Go(func() error {
			err := m.Run(ctx, s.source, q)
			if err != nil && ctx.Err() == nil {
				s.recordErr(err)
			}
			return err
		})
	}
	run(s.bookings, Query{
		Collection: s.cfg.BookingsCollection,
		OrderBy:    models.FieldDate,
		Direction:  Descending,
	})
	run(s.products, Query{
		Collection: s.cfg.ProductsCollection,
		OrderBy:    models.FieldCreatedAt,
		Direction:  Descending,
	})
	return g.Wait()
}

func (s *Session) recordErr(err error) {
	s.errMu.Lock()
	s.lastErr = errors.Join(s.lastErr, err)
	s.errMu.Unlock()
	s.logger.Error("live sync stopped", zap.Error(err))
}

// Close stops both subscriptions. Once it returns no render callback runs.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.bookings.Close()
	s.products.Close()
}

// Err returns the failures of the subscriptions that have stopped, if any.
func (s *Session) Err() error {
	s.errMu.RLock()
	defer s.errMu.RUnlock()
	return s.lastErr
}

// Ready reports whether both mirrors have received their first list.
func (s *Session) Ready() bool { return s.bookings.Ready() && s.products.Ready() }

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) onBookings(snap models.Snapshot, version uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	f := runStages(frame{snap: snap, version: version}, s.bookingStages())
	s.renderLocked(composeView(f, s.clock.Now()))
}

func (s *Session) onProducts(snap models.Snapshot, version uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	list := productList(snap, version)
	if s.lastProducts != nil && sameProducts(*s.lastProducts, list) {
		return
	}
	s.lastProducts = &list
	s.productRenderer.RenderProducts(list)
}

func (s *Session) renderLocked(view models.View) {
	if s.lastView != nil && sameView(*s.lastView, view) {
		s.logger.Debug("view unchanged, render skipped", zap.Uint64("version", view.Version))
		return
	}
	s.lastView = &view
	s.renderer.Render(view)
}

// viewLocked builds a view of the current snapshot at page n without
// recomputing stats when a view was already rendered.
func (s *Session) viewLocked(n int) models.View {
	snap := s.bookings.Snapshot()
	f := frame{snap: snap, version: s.bookings.Version()}
	if s.lastView != nil {
		f.stats = s.lastView.Stats
	} else {
		f.stats = s.aggregator.Refresh(snap)
	}
	f.page = s.paginator.GoToPage(snap, n)
	f.pending = s.transitions.Pending()
	return composeView(f, s.clock.Now())
}

// GoToPage moves the paginator to page n, clamped, and renders the result.
func (s *Session) GoToPage(n int) models.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	view := s.viewLocked(n)
	if !s.closed {
		s.renderLocked(view)
	}
	return view
}

// CurrentView returns the last rendered view, or builds one for the current
// page when nothing has been rendered yet.
func (s *Session) CurrentView() models.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastView != nil {
		return *s.lastView
	}
	return s.viewLocked(s.paginator.Current())
}

// CurrentStats serves stats through the cache. The bool reports a cache hit;
// a hit may predate the latest snapshot by up to the stats ttl.
func (s *Session) CurrentStats() (models.AggregateStats, bool) {
	return s.aggregator.Current(s.bookings.Snapshot())
}

// FreshStats computes stats from the current snapshot, bypassing the cache.
func (s *Session) FreshStats() models.AggregateStats {
	return s.aggregator.Compute(s.bookings.Snapshot())
}

// RequestTransition asks the store to change a booking's status. The view
// changes only when the next push carries the new status.
func (s *Session) RequestTransition(ctx context.Context, id string, next models.Status) (Transition, error) {
	if s.isClosed() {
		return Transition{}, ErrSessionClosed
	}
	t, err := s.transitions.RequestTransition(ctx, id, next)
	if err != nil {
		return t, err
	}
	s.refreshPending()
	return t, nil
}

// refreshPending re-renders the current view so the pending marker shows
// before the confirming push arrives.
func (s *Session) refreshPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.lastView == nil {
		return
	}
	s.renderLocked(s.viewLocked(s.paginator.Current()))
}

// FindBooking looks a booking up in the current snapshot.
func (s *Session) FindBooking(id string) (models.Booking, bool) {
	r, ok := s.bookings.Find(id)
	if !ok {
		return models.Booking{}, false
	}
	return models.BookingFromRecord(r), true
}

// CreateBooking writes a new pending booking and returns its id.
func (s *Session) CreateBooking(ctx context.Context, in models.NewBooking) (string, error) {
	if strings.TrimSpace(in.Name) == "" {
		return "", fmt.Errorf("%w: %s is required", models.ErrInvalidBooking, models.FieldName)
	}
	return s.create(ctx, s.cfg.BookingsCollection, in.Fields())
}

// UpdateBooking writes a partial booking update. The status is not part of
// it: status changes go through RequestTransition only.
func (s *Session) UpdateBooking(ctx context.Context, id string, fields map[string]any) error {
	if _, ok := fields[models.FieldStatus]; ok {
		return fmt.Errorf("%w: %s is changed through a status transition", models.ErrInvalidBooking, models.FieldStatus)
	}
	clean := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "id" {
			continue
		}
		clean[k] = v
	}
	if len(clean) == 0 {
		return nil
	}
	clean[models.FieldUpdatedAt] = models.ServerTimestamp
	return s.update(ctx, s.cfg.BookingsCollection, id, clean)
}

// DeleteBooking removes a booking.
func (s *Session) DeleteBooking(ctx context.Context, id string) error {
	return s.delete(ctx, s.cfg.BookingsCollection, id)
}

// Products returns the decoded product list of the current snapshot.
func (s *Session) Products() models.ProductList {
	return productList(s.products.Snapshot(), s.products.Version())
}

// FindProduct looks a product up in the current snapshot.
func (s *Session) FindProduct(id string) (models.Product, bool) {
	r, ok := s.products.Find(id)
	if !ok {
		return models.Product{}, false
	}
	return models.ProductFromRecord(r), true
}

func (s *Session) CreateProduct(ctx context.Context, in models.ProductInput) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}
	return s.create(ctx, s.cfg.ProductsCollection, in.Fields(true))
}

func (s *Session) UpdateProduct(ctx context.Context, id string, in models.ProductInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return s.update(ctx, s.cfg.ProductsCollection, id, in.Fields(false))
}

func (s *Session) DeleteProduct(ctx context.Context, id string) error {
	return s.delete(ctx, s.cfg.ProductsCollection, id)
}

// ToggleProductVisibility flips the mirrored visible flag and returns the
// value written.
func (s *Session) ToggleProductVisibility(ctx context.Context, id string) (bool, error) {
	p, ok := s.FindProduct(id)
	if !ok {
		return false, fmt.Errorf("%w: %s/%s", models.ErrRecordNotFound, s.cfg.ProductsCollection, id)
	}
	visible := !p.Visible
	if err := s.update(ctx, s.cfg.ProductsCollection, id, map[string]any{models.FieldVisible: visible}); err != nil {
		return false, err
	}
	return visible, nil
}

func (s *Session) create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	if s.isClosed() {
		return "", ErrSessionClosed
	}
	id, err := s.mutator.Create(ctx, collection, fields)
	if err != nil {
		return "", fmt.Errorf("%w: create in %s: %w", ErrMutation, collection, err)
	}
	s.logger.Info("document created", zap.String("collection", collection), zap.String("id", id))
	return id, nil
}

func (s *Session) update(ctx context.Context, collection, id string, fields map[string]any) error {
	if s.isClosed() {
		return ErrSessionClosed
	}
	if strings.TrimSpace(id) == "" {
		return models.ErrInvalidRecordID
	}
	if err := s.mutator.Update(ctx, collection, id, fields); err != nil {
		return fmt.Errorf("%w: update %s/%s: %w", ErrMutation, collection, id, err)
	}
	return nil
}

func (s *Session) delete(ctx context.Context, collection, id string) error {
	if s.isClosed() {
		return ErrSessionClosed
	}
	if strings.TrimSpace(id) == "" {
		return models.ErrInvalidRecordID
	}
	if err := s.mutator.Delete(ctx, collection, id); err != nil {
		return fmt.Errorf("%w: delete %s/%s: %w", ErrMutation, collection, id, err)
	}
	s.logger.Info("document deleted", zap.String("collection", collection), zap.String("id", id))
	return nil
}
