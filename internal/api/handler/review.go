package handler

import (
	"net/http"

	"github.com/qanyare/restaurant-service/internal/api"
	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/service"
)

// ReviewHandler handles customer reviews and their moderation
type ReviewHandler struct {
	reviewService *service.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// List lists reviews; ?approved=true keeps only approved ones
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.List(r.Context(), models.ReviewFilter{
		ApprovedOnly: queryBool(r, "approved"),
	})
	if err != nil {
		api.InternalServerError(w, r, err, "Failed to fetch reviews")
		return
	}

	respondJSON(w, reviews)
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	review, err := h.reviewService.Create(r.Context(), req)
	if err != nil {
		api.Error(w, r, err, "Review not found", "Failed to create review")
		return
	}

	api.JSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch models.ReviewPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	review, err := h.reviewService.Update(r.Context(), id, patch)
	if err != nil {
		api.Error(w, r, err, "Review not found", "Failed to update review")
		return
	}

	respondJSON(w, review)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	existed, err := h.reviewService.Delete(r.Context(), id)
	if err != nil {
		api.InternalServerError(w, r, err, "Failed to delete review")
		return
	}

	respondDeleted(w, existed, "Review")
}
