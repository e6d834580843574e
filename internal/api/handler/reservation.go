package handler

import (
	"net/http"

	"github.com/qanyare/restaurant-service/internal/api"
	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/service"
)

// ReservationHandler handles table bookings
type ReservationHandler struct {
	reservationService *service.ReservationService
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationService *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := models.ReservationFilter{CustomerName: r.URL.Query().Get("customerName")}
	reservations, err := h.reservationService.List(r.Context(), filter)
	if err != nil {
		api.InternalServerError(w, r, err, "Failed to fetch reservations")
		return
	}

	respondJSON(w, reservations)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	reservation, err := h.reservationService.Get(r.Context(), id)
	if err != nil {
		api.Error(w, r, err, "Reservation not found", "Failed to fetch reservation")
		return
	}

	respondJSON(w, reservation)
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ReservationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	reservation, err := h.reservationService.Create(r.Context(), req)
	if err != nil {
		api.Error(w, r, err, "Reservation not found", "Failed to create reservation")
		return
	}

	api.JSON(w, http.StatusCreated, reservation)
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch models.ReservationPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	reservation, err := h.reservationService.Update(r.Context(), id, patch)
	if err != nil {
		api.Error(w, r, err, "Reservation not found", "Failed to update reservation")
		return
	}

	respondJSON(w, reservation)
}
