// Package service holds the business rules that sit between the HTTP handlers
// and the storage backends.
package service

import (
	"context"
	"log/slog"

	"github.com/qanyare/restaurant-service/internal/events"
	"github.com/qanyare/restaurant-service/internal/storage"
)

// Options configures the services
type Options struct {
	JWT                JWTConfig
	BcryptCost         int
	EnforceTransitions bool
	Publisher          events.Publisher
}

// Services bundles every service built over one backend
type Services struct {
	Auth        *AuthService
	Menu        *MenuService
	Order       *OrderService
	Reservation *ReservationService
	Review      *ReviewService
	Staff       *StaffService
	Table       *TableService
	Analytics   *AnalyticsService
}

// New creates all services over repos
func New(repos *storage.Repositories, opts Options) *Services {
	pub := opts.Publisher

	return &Services{
		Auth:        NewAuthService(repos.User, opts.JWT, opts.BcryptCost),
		Menu:        NewMenuService(repos.Category, repos.MenuItem, pub),
		Order:       NewOrderService(repos.Order, opts.EnforceTransitions, pub),
		Reservation: NewReservationService(repos.Reservation, opts.EnforceTransitions, pub),
		Review:      NewReviewService(repos.Review, pub),
		Staff:       NewStaffService(repos.Staff),
		Table:       NewTableService(repos.Table),
		Analytics:   NewAnalyticsService(repos),
	}
}

// publisher sends events after a write has been stored
type publisher struct {
	events events.Publisher
}

func newPublisher(p events.Publisher) publisher {
	if p == nil {
		p = events.Nop{}
	}
	return publisher{events: p}
}

func (p publisher) publish(ctx context.Context, t events.Type, id int64, data any) {
	// delivery must not be cut short by the request finishing
	ctx = context.WithoutCancel(ctx)
	if err := p.events.Publish(ctx, events.New(t, id, data)); err != nil {
		slog.Warn("failed to publish event", "event", t, "id", id, "error", err)
	}
}
