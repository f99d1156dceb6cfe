package handlers

import (
	"io"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rmadmin/models"
)

const (
	eventBookings = "reservas"
	eventProducts = "productos"

	clientBuffer = 8
)

type streamEvent struct {
	name string
	data any
}

// StreamHub fans rendered views out to server-sent event clients. It is the
// session's renderer, so sends never block: a client whose buffer is full
// misses that event and catches up with the next one.
type StreamHub struct {
	mu      sync.Mutex
	clients map[chan streamEvent]struct{}
	logger  *zap.Logger
}

func NewStreamHub(logger *zap.Logger) *StreamHub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StreamHub{clients: make(map[chan streamEvent]struct{}), logger: logger}
}

func (h *StreamHub) Render(view models.View) {
	h.broadcast(streamEvent{name: eventBookings, data: view})
}

func (h *StreamHub) RenderProducts(list models.ProductList) {
	h.broadcast(streamEvent{name: eventProducts, data: list})
}

func (h *StreamHub) broadcast(ev streamEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- ev:
		default:
			h.logger.Debug("stream client lagging, event dropped", zap.String("event", ev.name))
		}
	}
}

func (h *StreamHub) subscribe() (<-chan streamEvent, func()) {
	ch := make(chan streamEvent, clientBuffer)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.clients, ch)
			h.mu.Unlock()
		})
	}
}

// Clients returns the number of connected stream clients.
func (h *StreamHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Stream handles GET /api/stream. The current state is sent first, then every
// rendered view and product list until the client goes away.
func (hb *HandlerBundle) Stream(c *gin.Context) {
	events, unsubscribe := hb.Hub.subscribe()
	defer unsubscribe()

	hb.getLogger(c).Debug("stream client connected", zap.Int("clients", hb.Hub.Clients()))
	c.SSEvent(eventBookings, hb.Svc.CurrentView())
	c.SSEvent(eventProducts, hb.Svc.Products())
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case ev := <-events:
			c.SSEvent(ev.name, ev.data)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
