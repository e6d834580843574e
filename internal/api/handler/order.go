package handler

import (
	"net/http"

	"github.com/qanyare/restaurant-service/internal/api"
	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/service"
)

// OrderHandler handles order-related requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List lists orders, newest first
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := models.OrderFilter{CustomerName: r.URL.Query().Get("customerName")}
	orders, err := h.orderService.List(r.Context(), filter)
	if err != nil {
		api.InternalServerError(w, r, err, "Failed to fetch orders")
		return
	}

	respondJSON(w, orders)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	order, err := h.orderService.Get(r.Context(), id)
	if err != nil {
		api.Error(w, r, err, "Order not found", "Failed to fetch order")
		return
	}

	respondJSON(w, order)
}

// Create places a new order
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	order, err := h.orderService.Create(r.Context(), req)
	if err != nil {
		api.Error(w, r, err, "Order not found", "Failed to create order")
		return
	}

	api.JSON(w, http.StatusCreated, order)
}

// Update applies a partial update, usually a status change
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch models.OrderPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	order, err := h.orderService.Update(r.Context(), id, patch)
	if err != nil {
		api.Error(w, r, err, "Order not found", "Failed to update order")
		return
	}

	respondJSON(w, order)
}

// Receipt renders the printable receipt of an order
func (h *OrderHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	receipt, err := h.orderService.Receipt(r.Context(), id)
	if err != nil {
		api.Error(w, r, err, "Order not found", "Failed to render receipt")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(receipt))
}
