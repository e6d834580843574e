package handler

import (
	"net/http"

	"github.com/qanyare/restaurant-service/internal/api"
	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/service"
)

// AuthHandler handles login and registration
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login checks credentials and returns the user with a token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		api.Error(w, r, err, "User not found", "Login failed")
		return
	}

	respondJSON(w, resp)
}

// Register creates a regular account
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.authService.Register(r.Context(), req)
	if err != nil {
		api.Error(w, r, err, "User not found", "Registration failed")
		return
	}

	api.JSON(w, http.StatusCreated, resp)
}
