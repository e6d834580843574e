// Package handler adapts the services to HTTP.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/qanyare/restaurant-service/internal/api"
)

const maxBodyBytes = 1 << 20

// respondJSON writes v as a 200 JSON response
func respondJSON(w http.ResponseWriter, v any) {
	api.JSON(w, http.StatusOK, v)
}

// decodeBody reads a JSON request body into v, replying 400 on failure
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			api.BadRequest(w, "Request body is required")
		} else {
			api.BadRequest(w, "Invalid request body")
		}
		return false
	}
	return true
}

// pathID parses the {id} wildcard, replying 400 when it is not a number
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		api.BadRequest(w, "Invalid ID")
		return 0, false
	}
	return id, true
}

// queryBool reports whether the named query parameter is "true" or "1"
func queryBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}

// respondDeleted answers a delete call
func respondDeleted(w http.ResponseWriter, existed bool, what string) {
	if !existed {
		api.NotFound(w, what+" not found")
		return
	}
	api.Message(w, http.StatusOK, what+" deleted successfully")
}
