package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/qanyare/restaurant-service/internal/api"
	"github.com/qanyare/restaurant-service/internal/service"
)

// AnalyticsHandler serves the dashboard figures and the health check
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	healthCheck      func(context.Context) error
}

// NewAnalyticsHandler creates a new analytics handler. healthCheck may be nil.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService, healthCheck func(context.Context) error) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		healthCheck:      healthCheck,
	}
}

// Stats recomputes the dashboard statistics
func (h *AnalyticsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsService.Stats(r.Context())
	if err != nil {
		api.InternalServerError(w, r, err, "Failed to fetch statistics")
		return
	}

	respondJSON(w, stats)
}

// Health reports whether storage is reachable
func (h *AnalyticsHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.healthCheck != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.healthCheck(ctx); err != nil {
			api.JSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"error":  err.Error(),
			})
			return
		}
	}

	respondJSON(w, map[string]string{"status": "ok"})
}
