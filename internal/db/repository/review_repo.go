package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/qanyare/restaurant-service/internal/models"
)

const reviewColumns = `id, customer_name, rating, comment, is_approved, created_at`

// ReviewRepository handles review data access
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// List retrieves reviews newest first
func (r *ReviewRepository) List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE NOT $1::boolean OR is_approved
		ORDER BY created_at DESC, id DESC
	`

	reviews := make([]models.Review, 0)
	if err := r.db.SelectContext(ctx, &reviews, query, filter.ApprovedOnly); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// GetByID retrieves a review by ID
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	var review models.Review
	if err := r.db.GetContext(ctx, &review, query, id); err != nil {
		return nil, fmt.Errorf("failed to get review: %w", translate(err))
	}
	return &review, nil
}

// Create creates a new review
func (r *ReviewRepository) Create(ctx context.Context, review models.Review) (*models.Review, error) {
	query := `
		INSERT INTO reviews (customer_name, rating, comment, is_approved)
		VALUES (:customer_name, :rating, :comment, :is_approved)
		RETURNING ` + reviewColumns

	created, err := insertRow(ctx, r.db, query, review)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return created, nil
}

// Update applies a partial update to a review
func (r *ReviewRepository) Update(ctx context.Context, id int64, patch models.ReviewPatch) (*models.Review, error) {
	query := `
		UPDATE reviews
		SET customer_name = :customer_name, rating = :rating, comment = :comment, is_approved = :is_approved
		WHERE id = :id
		RETURNING ` + reviewColumns

	updated, err := updateRow(ctx, r.db,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id, patch.Apply, query)
	if err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return updated, nil
}

// Delete removes a review
func (r *ReviewRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := deleteRow(ctx, r.db, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete review: %w", err)
	}
	return deleted, nil
}
