package handlers

import (
	"context"

	"go.uber.org/zap"

	"rmadmin/models"
	"rmadmin/services/dashboard"
)

// DashboardService is the session surface the HTTP layer drives.
//
//go:generate mockgen -destination=mocks/mock_dashboard_service.go -package=mocks rmadmin/handlers DashboardService
type DashboardService interface {
	GoToPage(n int) models.View
	CurrentView() models.View
	CurrentStats() (models.AggregateStats, bool)
	FreshStats() models.AggregateStats
	FindBooking(id string) (models.Booking, bool)
	RequestTransition(ctx context.Context, id string, next models.Status) (dashboard.Transition, error)
	CreateBooking(ctx context.Context, in models.NewBooking) (string, error)
	UpdateBooking(ctx context.Context, id string, fields map[string]any) error
	DeleteBooking(ctx context.Context, id string) error

	Products() models.ProductList
	FindProduct(id string) (models.Product, bool)
	CreateProduct(ctx context.Context, in models.ProductInput) (string, error)
	UpdateProduct(ctx context.Context, id string, in models.ProductInput) error
	DeleteProduct(ctx context.Context, id string) error
	ToggleProductVisibility(ctx context.Context, id string) (bool, error)

	Ready() bool
	Err() error
}

var _ DashboardService = (*dashboard.Session)(nil)

// HandlerBundle groups the dashboard endpoints.
type HandlerBundle struct {
	Svc    DashboardService
	Hub    *StreamHub
	Logger *zap.Logger
}

func NewHandlerBundle(svc DashboardService, hub *StreamHub, logger *zap.Logger) *HandlerBundle {
	if logger == nil {
		logger = zap.NewNop()
	}
	if hub == nil {
		hub = NewStreamHub(logger)
	}
	return &HandlerBundle{Svc: svc, Hub: hub, Logger: logger}
}
