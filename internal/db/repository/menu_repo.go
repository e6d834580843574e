package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/qanyare/restaurant-service/internal/models"
)

const (
	categoryColumns = `id, name, name_en, name_so, description, is_active`
	menuItemColumns = `id, name, name_en, name_so, description, price, category_id, image, is_available, is_active`
)

// CategoryRepository handles category data access
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List retrieves categories ordered by ID
func (r *CategoryRepository) List(ctx context.Context, filter models.CategoryFilter) ([]models.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE $1::boolean OR is_active
		ORDER BY id ASC
	`

	categories := make([]models.Category, 0)
	if err := r.db.SelectContext(ctx, &categories, query, filter.IncludeInactive); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	var category models.Category
	if err := r.db.GetContext(ctx, &category, query, id); err != nil {
		return nil, fmt.Errorf("failed to get category: %w", translate(err))
	}
	return &category, nil
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category models.Category) (*models.Category, error) {
	query := `
		INSERT INTO categories (name, name_en, name_so, description, is_active)
		VALUES (:name, :name_en, :name_so, :description, :is_active)
		RETURNING ` + categoryColumns

	created, err := insertRow(ctx, r.db, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}

// Update applies a partial update to a category
func (r *CategoryRepository) Update(ctx context.Context, id int64, patch models.CategoryPatch) (*models.Category, error) {
	query := `
		UPDATE categories
		SET name = :name, name_en = :name_en, name_so = :name_so,
		    description = :description, is_active = :is_active
		WHERE id = :id
		RETURNING ` + categoryColumns

	updated, err := updateRow(ctx, r.db,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id, patch.Apply, query)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return updated, nil
}

// Delete removes a category
func (r *CategoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := deleteRow(ctx, r.db, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}
	return deleted, nil
}

// MenuItemRepository handles menu item data access
type MenuItemRepository struct {
	db *sqlx.DB
}

// NewMenuItemRepository creates a new menu item repository
func NewMenuItemRepository(db *sqlx.DB) *MenuItemRepository {
	return &MenuItemRepository{db: db}
}

// List retrieves menu items ordered by ID, optionally for one category
func (r *MenuItemRepository) List(ctx context.Context, filter models.MenuItemFilter) ([]models.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE ($1::bigint IS NULL OR category_id = $1)
		  AND ($2::boolean OR is_active)
		ORDER BY id ASC
	`

	items := make([]models.MenuItem, 0)
	if err := r.db.SelectContext(ctx, &items, query, filter.CategoryID, filter.IncludeInactive); err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

// GetByID retrieves a menu item by ID
func (r *MenuItemRepository) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = $1`

	var item models.MenuItem
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", translate(err))
	}
	return &item, nil
}

// Create creates a new menu item
func (r *MenuItemRepository) Create(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	query := `
		INSERT INTO menu_items (name, name_en, name_so, description, price, category_id, image, is_available, is_active)
		VALUES (:name, :name_en, :name_so, :description, :price, :category_id, :image, :is_available, :is_active)
		RETURNING ` + menuItemColumns

	created, err := insertRow(ctx, r.db, query, item)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return created, nil
}

// Update applies a partial update to a menu item
func (r *MenuItemRepository) Update(ctx context.Context, id int64, patch models.MenuItemPatch) (*models.MenuItem, error) {
	query := `
		UPDATE menu_items
		SET name = :name, name_en = :name_en, name_so = :name_so, description = :description,
		    price = :price, category_id = :category_id, image = :image,
		    is_available = :is_available, is_active = :is_active
		WHERE id = :id
		RETURNING ` + menuItemColumns

	updated, err := updateRow(ctx, r.db,
		`SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1`, id, patch.Apply, query)
	if err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return updated, nil
}

// Delete removes a menu item
func (r *MenuItemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := deleteRow(ctx, r.db, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete menu item: %w", err)
	}
	return deleted, nil
}

// CountByCategory counts items referencing a category
func (r *MenuItemRepository) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM menu_items WHERE category_id = $1`, categoryID); err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	return count, nil
}
