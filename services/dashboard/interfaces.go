package dashboard

import (
	"context"
	"time"

	"rmadmin/models"
)

// Direction is the sort direction of a subscribed query.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

// Query names a remote collection and the order its documents are delivered in.
type Query struct {
	Collection string
	OrderBy    string
	Direction  Direction
}

// Source opens push subscriptions against the remote document store.
type Source interface {
	Subscribe(ctx context.Context, q Query) (Subscription, error)
}

// Subscription is a long-lived stream of full result lists. Next blocks until
// the store delivers the next complete, ordered list for the query. Stop
// releases the stream and may be called more than once.
type Subscription interface {
	Next(ctx context.Context) (models.Snapshot, error)
	Stop()
}

// Mutator issues single-document writes against the remote store. Results
// reach the dashboard only through a later push.
//
//go:generate mockgen -destination=mocks/mock_mutator.go -package=mocks rmadmin/services/dashboard Mutator
type Mutator interface {
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
}

// Clock supplies "now" for day bucketing.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Renderer receives the bookings view after every pipeline run that changed it.
// Implementations must not block and must not close the session.
type Renderer interface {
	Render(view models.View)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(models.View)

func (f RenderFunc) Render(view models.View) { f(view) }

// ProductRenderer receives the product list after every change.
type ProductRenderer interface {
	RenderProducts(list models.ProductList)
}

// ProductRenderFunc adapts a function to ProductRenderer.
type ProductRenderFunc func(models.ProductList)

func (f ProductRenderFunc) RenderProducts(list models.ProductList) { f(list) }

type nopRenderer struct{}

func (nopRenderer) Render(models.View)                {}
func (nopRenderer) RenderProducts(models.ProductList) {}
