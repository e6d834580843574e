package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/qanyare/restaurant-service/internal/models"
)

const (
	staffColumns = `id, name, role, phone, email, is_active, created_at`
	tableColumns = `id, name, capacity, type, is_available, description`
)

// StaffRepository handles staff data access
type StaffRepository struct {
	db *sqlx.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *sqlx.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// List retrieves staff ordered by ID
func (r *StaffRepository) List(ctx context.Context, filter models.StaffFilter) ([]models.Staff, error) {
	query := `
		SELECT ` + staffColumns + `
		FROM staff
		WHERE $1::boolean OR is_active
		ORDER BY id ASC
	`

	staff := make([]models.Staff, 0)
	if err := r.db.SelectContext(ctx, &staff, query, filter.IncludeInactive); err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

// GetByID retrieves a staff member by ID
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`

	var staff models.Staff
	if err := r.db.GetContext(ctx, &staff, query, id); err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", translate(err))
	}
	return &staff, nil
}

// Create creates a new staff member
func (r *StaffRepository) Create(ctx context.Context, staff models.Staff) (*models.Staff, error) {
	query := `
		INSERT INTO staff (name, role, phone, email, is_active)
		VALUES (:name, :role, :phone, :email, :is_active)
		RETURNING ` + staffColumns

	created, err := insertRow(ctx, r.db, query, staff)
	if err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}
	return created, nil
}

// Update applies a partial update to a staff member
func (r *StaffRepository) Update(ctx context.Context, id int64, patch models.StaffPatch) (*models.Staff, error) {
	query := `
		UPDATE staff
		SET name = :name, role = :role, phone = :phone, email = :email, is_active = :is_active
		WHERE id = :id
		RETURNING ` + staffColumns

	updated, err := updateRow(ctx, r.db,
		`SELECT `+staffColumns+` FROM staff WHERE id = $1`, id, patch.Apply, query)
	if err != nil {
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}
	return updated, nil
}

// Delete removes a staff member
func (r *StaffRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := deleteRow(ctx, r.db, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete staff member: %w", err)
	}
	return deleted, nil
}

// TableRepository handles table data access
type TableRepository struct {
	db *sqlx.DB
}

// NewTableRepository creates a new table repository
func NewTableRepository(db *sqlx.DB) *TableRepository {
	return &TableRepository{db: db}
}

// List retrieves every table ordered by ID
func (r *TableRepository) List(ctx context.Context) ([]models.Table, error) {
	tables := make([]models.Table, 0)
	if err := r.db.SelectContext(ctx, &tables, `SELECT `+tableColumns+` FROM tables ORDER BY id ASC`); err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}

// GetByID retrieves a table by ID
func (r *TableRepository) GetByID(ctx context.Context, id int64) (*models.Table, error) {
	var table models.Table
	if err := r.db.GetContext(ctx, &table, `SELECT `+tableColumns+` FROM tables WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to get table: %w", translate(err))
	}
	return &table, nil
}

// Create creates a new table
func (r *TableRepository) Create(ctx context.Context, table models.Table) (*models.Table, error) {
	query := `
		INSERT INTO tables (name, capacity, type, is_available, description)
		VALUES (:name, :capacity, :type, :is_available, :description)
		RETURNING ` + tableColumns

	created, err := insertRow(ctx, r.db, query, table)
	if err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return created, nil
}

// Update applies a partial update to a table
func (r *TableRepository) Update(ctx context.Context, id int64, patch models.TablePatch) (*models.Table, error) {
	query := `
		UPDATE tables
		SET name = :name, capacity = :capacity, type = :type,
		    is_available = :is_available, description = :description
		WHERE id = :id
		RETURNING ` + tableColumns

	updated, err := updateRow(ctx, r.db,
		`SELECT `+tableColumns+` FROM tables WHERE id = $1`, id, patch.Apply, query)
	if err != nil {
		return nil, fmt.Errorf("failed to update table: %w", err)
	}
	return updated, nil
}

// Delete removes a table
func (r *TableRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := deleteRow(ctx, r.db, `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete table: %w", err)
	}
	return deleted, nil
}
