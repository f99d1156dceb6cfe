package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"rmadmin/models"
)

// Transition describes an accepted status change request.
type Transition struct {
	ID          string        `json:"id"`
	From        models.Status `json:"from"`
	To          models.Status `json:"to"`
	RequestedAt time.Time     `json:"requestedAt"`
}

type pendingTransition struct {
	to  models.Status
	seq uint64
}

// TransitionController validates status change requests and turns each one
// into a single remote write. The local snapshot is never touched; the
// change shows up with the next push.
type TransitionController struct {
	mutator    Mutator
	collection string
	clock      Clock
	lookup     func(id string) (models.Record, bool)
	logger     *zap.Logger

	mu      sync.Mutex
	pending map[string]pendingTransition
	seq     uint64
}

// NewTransitionController creates a controller writing to collection. lookup
// resolves the current record for an id and may be nil.
func NewTransitionController(m Mutator, collection string, clock Clock, lookup func(string) (models.Record, bool), logger *zap.Logger) *TransitionController {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if lookup == nil {
		lookup = func(string) (models.Record, bool) { return models.Record{}, false }
	}
	return &TransitionController{
		mutator:    m,
		collection: collection,
		clock:      clock,
		lookup:     lookup,
		logger:     logger,
		pending:    make(map[string]pendingTransition),
	}
}

// transitionAllowed is the single place lifecycle rules are decided. Every
// pair of states is currently permitted.
func transitionAllowed(from, to models.Status) bool {
	return true
}

// RequestTransition asks the store to move booking id to next.
func (c *TransitionController) RequestTransition(ctx context.Context, id string, next models.Status) (Transition, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Transition{}, models.ErrInvalidRecordID
	}
	if !next.Valid() {
		return Transition{}, fmt.Errorf("%w: %q", models.ErrInvalidStatus, next)
	}

	from := models.StatusPending
	if r, ok := c.lookup(id); ok {
		from = models.BookingStatus(r)
	}
	if !transitionAllowed(from, next) {
		return Transition{}, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, from, next)
	}

	seq := c.markPending(id, next)
	err := c.mutator.Update(ctx, c.collection, id, map[string]any{models.FieldStatus: string(next)})
	if err != nil {
		c.clearPending(id, seq)
		c.logger.Warn("status write failed", zap.String("id", id), zap.String("to", string(next)), zap.Error(err))
		return Transition{}, fmt.Errorf("%w: set %s on %s: %w", ErrMutation, models.FieldStatus, id, err)
	}

	c.logger.Info("status change requested", zap.String("id", id),
		zap.String("from", string(from)), zap.String("to", string(next)))
	return Transition{ID: id, From: from, To: next, RequestedAt: c.clock.Now()}, nil
}

func (c *TransitionController) markPending(id string, to models.Status) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.pending[id] = pendingTransition{to: to, seq: c.seq}
	return c.seq
}

// clearPending removes the marker only if no newer request replaced it.
func (c *TransitionController) clearPending(id string, seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.pending[id]; ok && p.seq == seq {
		delete(c.pending, id)
	}
}

// Reconcile drops markers whose record now shows the requested status or is
// gone from the snapshot.
func (c *TransitionController) Reconcile(snap models.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.pending) == 0 {
		return
	}

	byID := make(map[string]models.Record, len(snap))
	for _, r := range snap {
		byID[r.ID] = r
	}
	for id, p := range c.pending {
		r, ok := byID[id]
		if !ok || models.BookingStatus(r) == p.to {
			delete(c.pending, id)
		}
	}
}

// Pending returns a copy of the in-flight transitions keyed by booking id.
func (c *TransitionController) Pending() map[string]models.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]models.Status, len(c.pending))
	for id, p := range c.pending {
		out[id] = p.to
	}
	return out
}
