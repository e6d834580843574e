package service

import (
	"context"

	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/storage"
)

// TableService handles tables and halls
type TableService struct {
	tables storage.TableRepository
}

// NewTableService creates a new table service
func NewTableService(tables storage.TableRepository) *TableService {
	return &TableService{tables: tables}
}

// List retrieves every table
func (s *TableService) List(ctx context.Context) ([]models.Table, error) {
	return s.tables.List(ctx)
}

// Get retrieves a table by ID
func (s *TableService) Get(ctx context.Context, id int64) (*models.Table, error) {
	return s.tables.GetByID(ctx, id)
}

// Create adds a table, available unless stated otherwise
func (s *TableService) Create(ctx context.Context, req models.TableRequest) (*models.Table, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	return s.tables.Create(ctx, models.Table{
		Name:        req.Name,
		Capacity:    req.Capacity,
		Type:        req.Type,
		IsAvailable: boolOr(req.IsAvailable, true),
		Description: emptyToNil(req.Description),
	})
}

// Update applies a partial update to a table
func (s *TableService) Update(ctx context.Context, id int64, patch models.TablePatch) (*models.Table, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	return s.tables.Update(ctx, id, patch)
}

// Delete removes a table
func (s *TableService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.tables.Delete(ctx, id)
}
