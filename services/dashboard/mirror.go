package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"rmadmin/models"
)

// ChangeFunc is invoked with every replaced snapshot and its version.
type ChangeFunc func(snap models.Snapshot, version uint64)

// Mirror keeps an in-memory copy of one remote collection. Each push replaces
// the whole snapshot and calls the change handler synchronously.
type Mirror struct {
	name     string
	logger   *zap.Logger
	onChange ChangeFunc

	mu      sync.RWMutex
	snap    models.Snapshot
	version uint64
	ready   bool

	// dispatch guards the lifecycle flags and is held while the handler runs,
	// so Close waits for an in-flight handler before returning.
	dispatch sync.Mutex
	running  bool
	closed   bool
	cancel   context.CancelFunc
}

// NewMirror creates a mirror for the named collection.
func NewMirror(name string, logger *zap.Logger, onChange ChangeFunc) *Mirror {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mirror{
		name:     name,
		logger:   logger.With(zap.String("collection", name)),
		onChange: onChange,
		snap:     models.Snapshot{},
	}
}

// Run subscribes once and applies every delivered list until the context is
// cancelled, Close is called, or the subscription fails. A failure is
// returned wrapped in ErrSubscription; the last good snapshot stays in place
// and no retry is attempted.
func (m *Mirror) Run(ctx context.Context, src Source, q Query) error {
	m.dispatch.Lock()
	if m.closed {
		m.dispatch.Unlock()
		return ErrSessionClosed
	}
	if m.running {
		m.dispatch.Unlock()
		return ErrAlreadySubscribed
	}
	ctx, cancel := context.WithCancel(ctx)
	m.running = true
	m.cancel = cancel
	m.dispatch.Unlock()
	defer cancel()

	sub, err := src.Subscribe(ctx, q)
	if err != nil {
		return fmt.Errorf("%w: subscribe %s: %w", ErrSubscription, q.Collection, err)
	}
	defer sub.Stop()

	m.logger.Debug("subscribed", zap.String("orderBy", q.OrderBy))
	for {
		snap, err := sub.Next(ctx)
		if err != nil {
			if m.isClosed() {
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return ctxErr
			}
			m.logger.Warn("subscription failed, keeping last snapshot",
				zap.Uint64("version", m.Version()), zap.Error(err))
			return fmt.Errorf("%w: %s: %w", ErrSubscription, q.Collection, err)
		}
		m.apply(snap)
	}
}

func (m *Mirror) apply(snap models.Snapshot) {
	m.dispatch.Lock()
	defer m.dispatch.Unlock()
	if m.closed {
		return
	}

	owned := make(models.Snapshot, len(snap))
	copy(owned, snap)

	m.mu.Lock()
	m.snap = owned
	m.version++
	version := m.version
	m.ready = true
	m.mu.Unlock()

	m.logger.Debug("snapshot replaced", zap.Int("records", len(owned)), zap.Uint64("version", version))
	if m.onChange != nil {
		m.onChange(owned, version)
	}
}

// Close cancels the subscription. It is idempotent and, once it returns, the
// change handler is not invoked again. It must not be called from inside the
// change handler.
func (m *Mirror) Close() {
	m.dispatch.Lock()
	defer m.dispatch.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	if m.cancel != nil {
		m.cancel()
	}
}

func (m *Mirror) isClosed() bool {
	m.dispatch.Lock()
	defer m.dispatch.Unlock()
	return m.closed
}

// Snapshot returns the current snapshot. Callers must not modify it.
func (m *Mirror) Snapshot() models.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}

// Find looks up a record in the current snapshot.
func (m *Mirror) Find(id string) (models.Record, bool) {
	return m.Snapshot().Find(id)
}

// Ready reports whether at least one list has been delivered.
func (m *Mirror) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ready
}

// Version counts delivered lists.
func (m *Mirror) Version() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version
}
