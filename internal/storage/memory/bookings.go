package memory

import (
	"context"

	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/storage"
)

// OrderRepository keeps orders in memory
type OrderRepository struct {
	rows *table[models.Order]
}

// List returns all orders, newest first
func (r *OrderRepository) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	return r.rows.list(
		func(o models.Order) bool { return filter.CustomerName == "" || o.CustomerName == filter.CustomerName },
		func(a, b models.Order) bool { return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID) }), nil
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	order, ok := r.rows.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &order, nil
}

// Create stores a new order
func (r *OrderRepository) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	created, _ := r.rows.insert(nil, func(id int64) models.Order {
		order.ID = id
		order.CreatedAt = now()
		return order
	})
	return &created, nil
}

// Update applies a partial update
func (r *OrderRepository) Update(ctx context.Context, id int64, patch models.OrderPatch) (*models.Order, error) {
	updated, ok := r.rows.update(id, patch.Apply)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &updated, nil
}

// ReservationRepository keeps reservations in memory
type ReservationRepository struct {
	rows *table[models.Reservation]
}

// List returns all reservations, newest first
func (r *ReservationRepository) List(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error) {
	return r.rows.list(
		func(rv models.Reservation) bool {
			return filter.CustomerName == "" || rv.CustomerName == filter.CustomerName
		},
		func(a, b models.Reservation) bool { return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID) }), nil
}

// GetByID retrieves a reservation by ID
func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*models.Reservation, error) {
	reservation, ok := r.rows.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &reservation, nil
}

// Create stores a new reservation
func (r *ReservationRepository) Create(ctx context.Context, reservation models.Reservation) (*models.Reservation, error) {
	created, _ := r.rows.insert(nil, func(id int64) models.Reservation {
		reservation.ID = id
		reservation.CreatedAt = now()
		return reservation
	})
	return &created, nil
}

// Update applies a partial update
func (r *ReservationRepository) Update(ctx context.Context, id int64, patch models.ReservationPatch) (*models.Reservation, error) {
	updated, ok := r.rows.update(id, patch.Apply)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &updated, nil
}
