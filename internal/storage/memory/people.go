package memory

import (
	"context"

	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/storage"
)

// ReviewRepository keeps reviews in memory
type ReviewRepository struct {
	rows *table[models.Review]
}

// List returns reviews newest first
func (r *ReviewRepository) List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	return r.rows.list(
		func(rv models.Review) bool { return !filter.ApprovedOnly || rv.IsApproved },
		func(a, b models.Review) bool { return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID) }), nil
}

// GetByID retrieves a review by ID
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	review, ok := r.rows.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &review, nil
}

// Create stores a new review
func (r *ReviewRepository) Create(ctx context.Context, review models.Review) (*models.Review, error) {
	created, _ := r.rows.insert(nil, func(id int64) models.Review {
		review.ID = id
		review.CreatedAt = now()
		return review
	})
	return &created, nil
}

// Update applies a partial update
func (r *ReviewRepository) Update(ctx context.Context, id int64, patch models.ReviewPatch) (*models.Review, error) {
	updated, ok := r.rows.update(id, patch.Apply)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &updated, nil
}

// Delete removes a review
func (r *ReviewRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.rows.delete(id), nil
}

// StaffRepository keeps staff members in memory
type StaffRepository struct {
	rows *table[models.Staff]
}

// List returns staff ordered by ID, active only unless asked otherwise
func (r *StaffRepository) List(ctx context.Context, filter models.StaffFilter) ([]models.Staff, error) {
	return r.rows.list(
		func(s models.Staff) bool { return filter.IncludeInactive || s.IsActive },
		func(a, b models.Staff) bool { return a.ID < b.ID }), nil
}

// GetByID retrieves a staff member by ID
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	staff, ok := r.rows.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &staff, nil
}

// Create stores a new staff member
func (r *StaffRepository) Create(ctx context.Context, staff models.Staff) (*models.Staff, error) {
	created, _ := r.rows.insert(nil, func(id int64) models.Staff {
		staff.ID = id
		staff.CreatedAt = now()
		return staff
	})
	return &created, nil
}

// Update applies a partial update
func (r *StaffRepository) Update(ctx context.Context, id int64, patch models.StaffPatch) (*models.Staff, error) {
	updated, ok := r.rows.update(id, patch.Apply)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &updated, nil
}

// Delete removes a staff member
func (r *StaffRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.rows.delete(id), nil
}

// TableRepository keeps tables and halls in memory
type TableRepository struct {
	rows *table[models.Table]
}

// List returns every table ordered by ID
func (r *TableRepository) List(ctx context.Context) ([]models.Table, error) {
	return r.rows.list(nil, func(a, b models.Table) bool { return a.ID < b.ID }), nil
}

// GetByID retrieves a table by ID
func (r *TableRepository) GetByID(ctx context.Context, id int64) (*models.Table, error) {
	t, ok := r.rows.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &t, nil
}

// Create stores a new table
func (r *TableRepository) Create(ctx context.Context, t models.Table) (*models.Table, error) {
	created, _ := r.rows.insert(nil, func(id int64) models.Table {
		t.ID = id
		return t
	})
	return &created, nil
}

// Update applies a partial update
func (r *TableRepository) Update(ctx context.Context, id int64, patch models.TablePatch) (*models.Table, error) {
	updated, ok := r.rows.update(id, patch.Apply)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &updated, nil
}

// Delete removes a table
func (r *TableRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.rows.delete(id), nil
}
