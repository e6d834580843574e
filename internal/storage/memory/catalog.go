package memory

import (
	"context"

	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/storage"
)

// CategoryRepository keeps menu categories in memory
type CategoryRepository struct {
	rows *table[models.Category]
}

// List returns categories ordered by ID, active only unless asked otherwise
func (r *CategoryRepository) List(ctx context.Context, filter models.CategoryFilter) ([]models.Category, error) {
	return r.rows.list(
		func(c models.Category) bool { return filter.IncludeInactive || c.IsActive },
		func(a, b models.Category) bool { return a.ID < b.ID }), nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	category, ok := r.rows.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &category, nil
}

// Create stores a new category
func (r *CategoryRepository) Create(ctx context.Context, category models.Category) (*models.Category, error) {
	created, _ := r.rows.insert(nil, func(id int64) models.Category {
		category.ID = id
		return category
	})
	return &created, nil
}

// Update applies a partial update
func (r *CategoryRepository) Update(ctx context.Context, id int64, patch models.CategoryPatch) (*models.Category, error) {
	updated, ok := r.rows.update(id, patch.Apply)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &updated, nil
}

// Delete removes a category
func (r *CategoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.rows.delete(id), nil
}

// MenuItemRepository keeps menu items in memory
type MenuItemRepository struct {
	rows *table[models.MenuItem]
}

// List returns menu items ordered by ID, optionally narrowed to one category
func (r *MenuItemRepository) List(ctx context.Context, filter models.MenuItemFilter) ([]models.MenuItem, error) {
	return r.rows.list(
		func(m models.MenuItem) bool {
			if filter.CategoryID != nil && m.CategoryID != *filter.CategoryID {
				return false
			}
			return filter.IncludeInactive || m.IsActive
		},
		func(a, b models.MenuItem) bool { return a.ID < b.ID }), nil
}

// GetByID retrieves a menu item by ID
func (r *MenuItemRepository) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	item, ok := r.rows.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &item, nil
}

// Create stores a new menu item
func (r *MenuItemRepository) Create(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	created, _ := r.rows.insert(nil, func(id int64) models.MenuItem {
		item.ID = id
		return item
	})
	return &created, nil
}

// Update applies a partial update
func (r *MenuItemRepository) Update(ctx context.Context, id int64, patch models.MenuItemPatch) (*models.MenuItem, error) {
	updated, ok := r.rows.update(id, patch.Apply)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &updated, nil
}

// Delete removes a menu item
func (r *MenuItemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.rows.delete(id), nil
}

// CountByCategory counts items referencing a category
func (r *MenuItemRepository) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	items := r.rows.list(func(m models.MenuItem) bool { return m.CategoryID == categoryID },
		func(a, b models.MenuItem) bool { return a.ID < b.ID })
	return len(items), nil
}
