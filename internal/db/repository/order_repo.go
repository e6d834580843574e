package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/qanyare/restaurant-service/internal/models"
)

const (
	orderColumns       = `id, customer_name, customer_phone, customer_email, items, total, status, notes, created_at`
	reservationColumns = `id, customer_name, customer_phone, customer_email, date, time, guests, event_type, table_id, notes, status, created_at`
)

// OrderRepository handles order data access
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// List retrieves all orders, newest first
func (r *OrderRepository) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE $1::text = '' OR customer_name = $1
		ORDER BY created_at DESC, id DESC
	`

	orders := make([]models.Order, 0)
	if err := r.db.SelectContext(ctx, &orders, query, filter.CustomerName); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var order models.Order
	if err := r.db.GetContext(ctx, &order, query, id); err != nil {
		return nil, fmt.Errorf("failed to get order: %w", translate(err))
	}
	return &order, nil
}

// Create creates a new order
func (r *OrderRepository) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	query := `
		INSERT INTO orders (customer_name, customer_phone, customer_email, items, total, status, notes)
		VALUES (:customer_name, :customer_phone, :customer_email, :items, :total, :status, :notes)
		RETURNING ` + orderColumns

	created, err := insertRow(ctx, r.db, query, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return created, nil
}

// Update applies a partial update to an order
func (r *OrderRepository) Update(ctx context.Context, id int64, patch models.OrderPatch) (*models.Order, error) {
	query := `
		UPDATE orders
		SET customer_name = :customer_name, customer_phone = :customer_phone,
		    customer_email = :customer_email, items = :items, total = :total,
		    status = :status, notes = :notes
		WHERE id = :id
		RETURNING ` + orderColumns

	updated, err := updateRow(ctx, r.db,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id, patch.Apply, query)
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return updated, nil
}

// ReservationRepository handles reservation data access
type ReservationRepository struct {
	db *sqlx.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *sqlx.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// List retrieves all reservations, newest first
func (r *ReservationRepository) List(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE $1::text = '' OR customer_name = $1
		ORDER BY created_at DESC, id DESC
	`

	reservations := make([]models.Reservation, 0)
	if err := r.db.SelectContext(ctx, &reservations, query, filter.CustomerName); err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// GetByID retrieves a reservation by ID
func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	var reservation models.Reservation
	if err := r.db.GetContext(ctx, &reservation, query, id); err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", translate(err))
	}
	return &reservation, nil
}

// Create creates a new reservation
func (r *ReservationRepository) Create(ctx context.Context, reservation models.Reservation) (*models.Reservation, error) {
	query := `
		INSERT INTO reservations (customer_name, customer_phone, customer_email, date, time, guests, event_type, table_id, notes, status)
		VALUES (:customer_name, :customer_phone, :customer_email, :date, :time, :guests, :event_type, :table_id, :notes, :status)
		RETURNING ` + reservationColumns

	created, err := insertRow(ctx, r.db, query, reservation)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}
	return created, nil
}

// Update applies a partial update to a reservation
func (r *ReservationRepository) Update(ctx context.Context, id int64, patch models.ReservationPatch) (*models.Reservation, error) {
	query := `
		UPDATE reservations
		SET customer_name = :customer_name, customer_phone = :customer_phone,
		    customer_email = :customer_email, date = :date, time = :time, guests = :guests,
		    event_type = :event_type, table_id = :table_id, notes = :notes, status = :status
		WHERE id = :id
		RETURNING ` + reservationColumns

	updated, err := updateRow(ctx, r.db,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id, patch.Apply, query)
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}
	return updated, nil
}
