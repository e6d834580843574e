package memory

import (
	"context"

	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/storage"
)

// UserRepository keeps accounts in memory
type UserRepository struct {
	rows *table[models.User]
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := r.rows.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	users := r.rows.list(func(u models.User) bool { return u.Username == username },
		func(a, b models.User) bool { return a.ID < b.ID })
	if len(users) == 0 {
		return nil, storage.ErrNotFound
	}
	return &users[0], nil
}

// Create stores a new user; usernames are unique
func (r *UserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	created, ok := r.rows.insert(
		func(u models.User) bool { return u.Username == user.Username },
		func(id int64) models.User {
			user.ID = id
			user.CreatedAt = now()
			return user
		})
	if !ok {
		return nil, storage.ErrConflict
	}
	return &created, nil
}
