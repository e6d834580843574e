package service

import (
	"context"

	"github.com/qanyare/restaurant-service/internal/events"
	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/storage"
)

// OrderService handles order-related business logic
type OrderService struct {
	orders             storage.OrderRepository
	enforceTransitions bool
	pub                publisher
}

// NewOrderService creates a new order service
func NewOrderService(orders storage.OrderRepository, enforceTransitions bool, pub events.Publisher) *OrderService {
	return &OrderService{
		orders:             orders,
		enforceTransitions: enforceTransitions,
		pub:                newPublisher(pub),
	}
}

// List retrieves all orders, newest first
func (s *OrderService) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	return s.orders.List(ctx, filter)
}

// Get retrieves an order by ID
func (s *OrderService) Get(ctx context.Context, id int64) (*models.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// Create places a new order; status defaults to pending
func (s *OrderService) Create(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	order := models.Order{
		CustomerName:  req.CustomerName,
		CustomerPhone: emptyToNil(req.CustomerPhone),
		CustomerEmail: emptyToNil(req.CustomerEmail),
		Items:         req.Items,
		Total:         *req.Total,
		Status:        req.Status,
		Notes:         emptyToNil(req.Notes),
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	s.pub.publish(ctx, events.OrderCreated, created.ID, created)
	return created, nil
}

// Update applies a partial update. With transitions enforced a status change
// must follow the order lifecycle.
func (s *OrderService) Update(ctx context.Context, id int64, patch models.OrderPatch) (*models.Order, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}

	if patch.Status != nil && s.enforceTransitions {
		current, err := s.orders.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !current.Status.CanTransitionTo(*patch.Status) {
			return nil, orderTransitionError(current.Status, *patch.Status)
		}
	}

	updated, err := s.orders.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.pub.publish(ctx, events.OrderUpdated, updated.ID, updated)
	return updated, nil
}

func orderTransitionError(from, to models.OrderStatus) *TransitionError {
	allowed := make([]string, 0, len(from.Next()))
	for _, next := range from.Next() {
		allowed = append(allowed, string(next))
	}
	return &TransitionError{Entity: "order", From: string(from), To: string(to), Allowed: allowed, Final: from.Terminal()}
}
