package service

import (
	"context"

	"github.com/qanyare/restaurant-service/internal/events"
	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/storage"
)

// ReviewService handles customer feedback and its moderation
type ReviewService struct {
	reviews storage.ReviewRepository
	pub     publisher
}

// NewReviewService creates a new review service
func NewReviewService(reviews storage.ReviewRepository, pub events.Publisher) *ReviewService {
	return &ReviewService{reviews: reviews, pub: newPublisher(pub)}
}

// List retrieves reviews, newest first
func (s *ReviewService) List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	return s.reviews.List(ctx, filter)
}

// Create stores a review; it stays hidden until approved unless the request says otherwise
func (s *ReviewService) Create(ctx context.Context, req models.ReviewRequest) (*models.Review, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	created, err := s.reviews.Create(ctx, models.Review{
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
		IsApproved:   boolOr(req.IsApproved, false),
	})
	if err != nil {
		return nil, err
	}
	s.pub.publish(ctx, events.ReviewCreated, created.ID, created)
	return created, nil
}

// Update applies a partial update, typically the approval toggle
func (s *ReviewService) Update(ctx context.Context, id int64, patch models.ReviewPatch) (*models.Review, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}

	updated, err := s.reviews.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.pub.publish(ctx, events.ReviewUpdated, updated.ID, updated)
	return updated, nil
}

// Delete removes a review
func (s *ReviewService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.reviews.Delete(ctx, id)
}
