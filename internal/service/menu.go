package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/qanyare/restaurant-service/internal/events"
	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/storage"
)

// MenuService handles categories and menu items
type MenuService struct {
	categories storage.CategoryRepository
	items      storage.MenuItemRepository
	pub        publisher
}

// NewMenuService creates a new menu service
func NewMenuService(categories storage.CategoryRepository, items storage.MenuItemRepository, pub events.Publisher) *MenuService {
	return &MenuService{categories: categories, items: items, pub: newPublisher(pub)}
}

// ListCategories retrieves categories
func (s *MenuService) ListCategories(ctx context.Context, filter models.CategoryFilter) ([]models.Category, error) {
	return s.categories.List(ctx, filter)
}

// GetCategory retrieves a category by ID
func (s *MenuService) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	return s.categories.GetByID(ctx, id)
}

// CreateCategory creates a new category; name falls back to the English name
func (s *MenuService) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	category := models.Category{
		Name:        req.Name,
		NameEn:      req.NameEn,
		NameSo:      req.NameSo,
		Description: emptyToNil(req.Description),
		IsActive:    boolOr(req.IsActive, true),
	}
	if category.Name == "" {
		category.Name = category.NameEn
	}

	created, err := s.categories.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	s.pub.publish(ctx, events.MenuUpdated, created.ID, created)
	return created, nil
}

// UpdateCategory applies a partial update to a category
func (s *MenuService) UpdateCategory(ctx context.Context, id int64, patch models.CategoryPatch) (*models.Category, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}

	updated, err := s.categories.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.pub.publish(ctx, events.MenuUpdated, updated.ID, updated)
	return updated, nil
}

// DeleteCategory deletes a category no menu item refers to
func (s *MenuService) DeleteCategory(ctx context.Context, id int64) (bool, error) {
	count, err := s.items.CountByCategory(ctx, id)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, fmt.Errorf("category %d has %d menu items: %w", id, count, ErrInUse)
	}

	deleted, err := s.categories.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}
	s.pub.publish(ctx, events.MenuUpdated, id, nil)
	return true, nil
}

// ListItems retrieves menu items, optionally filtered by category
func (s *MenuService) ListItems(ctx context.Context, filter models.MenuItemFilter) ([]models.MenuItem, error) {
	return s.items.List(ctx, filter)
}

// GetItem retrieves a menu item by ID
func (s *MenuService) GetItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	return s.items.GetByID(ctx, id)
}

// CreateItem creates a new menu item in an existing category
func (s *MenuService) CreateItem(ctx context.Context, req models.MenuItemRequest) (*models.MenuItem, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}
	if err := s.requireCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	item := models.MenuItem{
		Name:        req.Name,
		NameEn:      req.NameEn,
		NameSo:      req.NameSo,
		Description: req.Description,
		Price:       *req.Price,
		CategoryID:  req.CategoryID,
		Image:       emptyToNil(req.Image),
		IsAvailable: boolOr(req.IsAvailable, true),
		IsActive:    boolOr(req.IsActive, true),
	}
	if item.Name == "" {
		item.Name = item.NameEn
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	s.pub.publish(ctx, events.MenuUpdated, created.ID, created)
	return created, nil
}

// UpdateItem applies a partial update to a menu item
func (s *MenuService) UpdateItem(ctx context.Context, id int64, patch models.MenuItemPatch) (*models.MenuItem, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	if patch.CategoryID != nil {
		// a missing item is reported before a bad category
		if _, err := s.items.GetByID(ctx, id); err != nil {
			return nil, err
		}
		if err := s.requireCategory(ctx, *patch.CategoryID); err != nil {
			return nil, err
		}
	}

	updated, err := s.items.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.pub.publish(ctx, events.MenuUpdated, updated.ID, updated)
	return updated, nil
}

// DeleteItem deletes a menu item
func (s *MenuService) DeleteItem(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.items.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}
	s.pub.publish(ctx, events.MenuUpdated, id, nil)
	return true, nil
}

func (s *MenuService) requireCategory(ctx context.Context, id int64) error {
	_, err := s.categories.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("category %d: %w", id, ErrInvalidReference)
	}
	return err
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
