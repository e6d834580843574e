package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/qanyare/restaurant-service/internal/db"
	"github.com/qanyare/restaurant-service/internal/storage"
)

const uniqueViolation = "23505"

// NewRepositories wires every PostgreSQL repository onto one connection pool
func NewRepositories(database *db.Postgres) *storage.Repositories {
	return &storage.Repositories{
		User:        NewUserRepository(database.DB),
		Category:    NewCategoryRepository(database.DB),
		MenuItem:    NewMenuItemRepository(database.DB),
		Order:       NewOrderRepository(database.DB),
		Reservation: NewReservationRepository(database.DB),
		Review:      NewReviewRepository(database.DB),
		Staff:       NewStaffRepository(database.DB),
		Table:       NewTableRepository(database.DB),
		Ping:        database.HealthCheck,
	}
}

// translate maps driver errors onto the storage sentinels
func translate(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return fmt.Errorf("%w: %s", storage.ErrConflict, pqErr.Constraint)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", storage.ErrConflict, pgErr.ConstraintName)
	}

	return err
}

// insertRow runs a named INSERT ... RETURNING and scans the stored row
func insertRow[T any](ctx context.Context, db *sqlx.DB, query string, row T) (*T, error) {
	stmt, err := db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var created T
	if err := stmt.GetContext(ctx, &created, row); err != nil {
		return nil, translate(err)
	}
	return &created, nil
}

// updateRow locks the row, merges the patch in Go and writes the merged row back
// with a named UPDATE ... RETURNING, all in one transaction
func updateRow[T any](ctx context.Context, db *sqlx.DB, selectQuery string, id int64, apply func(*T), updateQuery string) (*T, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var row T
	if err := tx.GetContext(ctx, &row, selectQuery+" FOR UPDATE", id); err != nil {
		return nil, translate(err)
	}
	apply(&row)

	stmt, err := tx.PrepareNamedContext(ctx, updateQuery)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var updated T
	if err := stmt.GetContext(ctx, &updated, row); err != nil {
		return nil, translate(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &updated, nil
}

// deleteRow reports whether a row was removed
func deleteRow(ctx context.Context, db *sqlx.DB, query string, id int64) (bool, error) {
	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}
