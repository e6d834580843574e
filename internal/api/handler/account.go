package handler

import (
	"net/http"

	"github.com/qanyare/restaurant-service/internal/api"
	"github.com/qanyare/restaurant-service/internal/middleware"
	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/service"
)

// AccountHandler serves the signed-in customer's own records. Routes using it
// must sit behind middleware.Auth.
type AccountHandler struct {
	authService        *service.AuthService
	orderService       *service.OrderService
	reservationService *service.ReservationService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(authService *service.AuthService, orderService *service.OrderService,
	reservationService *service.ReservationService) *AccountHandler {
	return &AccountHandler{
		authService:        authService,
		orderService:       orderService,
		reservationService: reservationService,
	}
}

// Me returns the account behind the token
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	respondJSON(w, user)
}

// Orders lists the orders placed under the account's name, newest first
func (h *AccountHandler) Orders(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	orders, err := h.orderService.List(r.Context(), models.OrderFilter{CustomerName: user.Name})
	if err != nil {
		api.InternalServerError(w, r, err, "Failed to fetch orders")
		return
	}
	respondJSON(w, orders)
}

// Reservations lists the reservations made under the account's name, newest first
func (h *AccountHandler) Reservations(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	reservations, err := h.reservationService.List(r.Context(), models.ReservationFilter{CustomerName: user.Name})
	if err != nil {
		api.InternalServerError(w, r, err, "Failed to fetch reservations")
		return
	}
	respondJSON(w, reservations)
}

// currentUser loads the account of the token
func (h *AccountHandler) currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	id, ok := middleware.GetUserID(r.Context())
	if !ok {
		api.Unauthorized(w, "Authentication required")
		return nil, false
	}

	user, err := h.authService.GetUser(r.Context(), id)
	if err != nil {
		api.Error(w, r, err, "Account not found", "Failed to fetch account")
		return nil, false
	}
	return user, true
}
