// Package storage defines the persistence contract shared by the PostgreSQL and in-memory backends.
package storage

import (
	"context"
	"errors"

	"github.com/qanyare/restaurant-service/internal/models"
)

var (
	// ErrNotFound is returned when the referenced record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a unique field is already taken
	ErrConflict = errors.New("record already exists")
)

// UserRepository stores accounts
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user models.User) (*models.User, error)
}

// CategoryRepository stores menu categories
type CategoryRepository interface {
	List(ctx context.Context, filter models.CategoryFilter) ([]models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, category models.Category) (*models.Category, error)
	Update(ctx context.Context, id int64, patch models.CategoryPatch) (*models.Category, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// MenuItemRepository stores menu items
type MenuItemRepository interface {
	List(ctx context.Context, filter models.MenuItemFilter) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)
	Create(ctx context.Context, item models.MenuItem) (*models.MenuItem, error)
	Update(ctx context.Context, id int64, patch models.MenuItemPatch) (*models.MenuItem, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// CountByCategory counts items referencing a category, active or not
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
}

// OrderRepository stores orders
type OrderRepository interface {
	List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	Create(ctx context.Context, order models.Order) (*models.Order, error)
	Update(ctx context.Context, id int64, patch models.OrderPatch) (*models.Order, error)
}

// ReservationRepository stores reservations
type ReservationRepository interface {
	List(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error)
	GetByID(ctx context.Context, id int64) (*models.Reservation, error)
	Create(ctx context.Context, reservation models.Reservation) (*models.Reservation, error)
	Update(ctx context.Context, id int64, patch models.ReservationPatch) (*models.Reservation, error)
}

// ReviewRepository stores reviews
type ReviewRepository interface {
	List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error)
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	Create(ctx context.Context, review models.Review) (*models.Review, error)
	Update(ctx context.Context, id int64, patch models.ReviewPatch) (*models.Review, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// StaffRepository stores staff members
type StaffRepository interface {
	List(ctx context.Context, filter models.StaffFilter) ([]models.Staff, error)
	GetByID(ctx context.Context, id int64) (*models.Staff, error)
	Create(ctx context.Context, staff models.Staff) (*models.Staff, error)
	Update(ctx context.Context, id int64, patch models.StaffPatch) (*models.Staff, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// TableRepository stores tables and halls
type TableRepository interface {
	List(ctx context.Context) ([]models.Table, error)
	GetByID(ctx context.Context, id int64) (*models.Table, error)
	Create(ctx context.Context, table models.Table) (*models.Table, error)
	Update(ctx context.Context, id int64, patch models.TablePatch) (*models.Table, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Repositories provides access to all repository instances of one backend
type Repositories struct {
	User        UserRepository
	Category    CategoryRepository
	MenuItem    MenuItemRepository
	Order       OrderRepository
	Reservation ReservationRepository
	Review      ReviewRepository
	Staff       StaffRepository
	Table       TableRepository

	// Ping reports whether the backend is reachable
	Ping func(ctx context.Context) error
}

// HealthCheck runs the backend ping when one is configured
func (r *Repositories) HealthCheck(ctx context.Context) error {
	if r.Ping == nil {
		return nil
	}
	return r.Ping(ctx)
}
