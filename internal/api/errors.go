// Package api holds the JSON response helpers shared by the HTTP handlers.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/service"
	"github.com/qanyare/restaurant-service/internal/storage"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  []models.FieldError `json:"errors,omitempty"`
}

// JSON writes v with the given status
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Message writes {"message": message} with the given status
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Message: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	Message(w, http.StatusBadRequest, message)
}

// ValidationFailed lists every rejected field
func ValidationFailed(w http.ResponseWriter, verr *models.ValidationError) {
	JSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid data", Errors: verr.Errors})
}

func Unauthorized(w http.ResponseWriter, message string) {
	Message(w, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	Message(w, http.StatusForbidden, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Message(w, http.StatusNotFound, message)
}

func Conflict(w http.ResponseWriter, message string) {
	Message(w, http.StatusConflict, message)
}

func TooManyRequests(w http.ResponseWriter, message string) {
	Message(w, http.StatusTooManyRequests, message)
}

// InternalServerError logs err and replies with a generic message
func InternalServerError(w http.ResponseWriter, r *http.Request, err error, message string) {
	slog.ErrorContext(r.Context(), message, "method", r.Method, "path", r.URL.Path, "error", err)
	Message(w, http.StatusInternalServerError, message)
}

// Error maps a service or storage error onto its HTTP reply. notFound and
// failed are the messages used for missing records and unexpected errors.
func Error(w http.ResponseWriter, r *http.Request, err error, notFound, failed string) {
	var verr *models.ValidationError
	var terr *service.TransitionError

	switch {
	case errors.As(err, &verr):
		ValidationFailed(w, verr)
	case errors.As(err, &terr):
		Conflict(w, terr.Error())
	case errors.Is(err, storage.ErrNotFound):
		NotFound(w, notFound)
	case errors.Is(err, service.ErrInvalidReference):
		BadRequest(w, err.Error())
	case errors.Is(err, service.ErrInUse):
		Conflict(w, err.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		Conflict(w, "Username already exists")
	case errors.Is(err, storage.ErrConflict):
		Conflict(w, "Record already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	default:
		InternalServerError(w, r, err, failed)
	}
}
