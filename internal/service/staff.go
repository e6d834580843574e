package service

import (
	"context"

	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/storage"
)

// StaffService handles the restaurant team roster
type StaffService struct {
	staff storage.StaffRepository
}

// NewStaffService creates a new staff service
func NewStaffService(staff storage.StaffRepository) *StaffService {
	return &StaffService{staff: staff}
}

// List retrieves staff members
func (s *StaffService) List(ctx context.Context, filter models.StaffFilter) ([]models.Staff, error) {
	return s.staff.List(ctx, filter)
}

// Get retrieves a staff member by ID
func (s *StaffService) Get(ctx context.Context, id int64) (*models.Staff, error) {
	return s.staff.GetByID(ctx, id)
}

// Create adds a staff member, active unless stated otherwise
func (s *StaffService) Create(ctx context.Context, req models.StaffRequest) (*models.Staff, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	return s.staff.Create(ctx, models.Staff{
		Name:     req.Name,
		Role:     req.Role,
		Phone:    emptyToNil(req.Phone),
		Email:    emptyToNil(req.Email),
		IsActive: boolOr(req.IsActive, true),
	})
}

// Update applies a partial update to a staff member
func (s *StaffService) Update(ctx context.Context, id int64, patch models.StaffPatch) (*models.Staff, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	return s.staff.Update(ctx, id, patch)
}

// Delete removes a staff member
func (s *StaffService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.staff.Delete(ctx, id)
}
