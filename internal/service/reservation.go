package service

import (
	"context"

	"github.com/qanyare/restaurant-service/internal/events"
	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/storage"
)

// ReservationService handles table and hall bookings
type ReservationService struct {
	reservations       storage.ReservationRepository
	enforceTransitions bool
	pub                publisher
}

// NewReservationService creates a new reservation service
func NewReservationService(reservations storage.ReservationRepository, enforceTransitions bool, pub events.Publisher) *ReservationService {
	return &ReservationService{
		reservations:       reservations,
		enforceTransitions: enforceTransitions,
		pub:                newPublisher(pub),
	}
}

// List retrieves all reservations, newest first
func (s *ReservationService) List(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error) {
	return s.reservations.List(ctx, filter)
}

// Get retrieves a reservation by ID
func (s *ReservationService) Get(ctx context.Context, id int64) (*models.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

// Create books a reservation; status defaults to pending
func (s *ReservationService) Create(ctx context.Context, req models.ReservationRequest) (*models.Reservation, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	reservation := models.Reservation{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: emptyToNil(req.CustomerEmail),
		Date:          req.Date,
		Time:          req.Time,
		Guests:        req.Guests,
		EventType:     req.EventType,
		TableID:       req.TableID,
		Notes:         emptyToNil(req.Notes),
		Status:        req.Status,
	}
	if reservation.Status == "" {
		reservation.Status = models.ReservationStatusPending
	}

	created, err := s.reservations.Create(ctx, reservation)
	if err != nil {
		return nil, err
	}
	s.pub.publish(ctx, events.ReservationCreated, created.ID, created)
	return created, nil
}

// Update applies a partial update, following the reservation lifecycle when enforced
func (s *ReservationService) Update(ctx context.Context, id int64, patch models.ReservationPatch) (*models.Reservation, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}

	if patch.Status != nil && s.enforceTransitions {
		current, err := s.reservations.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !current.Status.CanTransitionTo(*patch.Status) {
			allowed := make([]string, 0, len(current.Status.Next()))
			for _, next := range current.Status.Next() {
				allowed = append(allowed, string(next))
			}
			return nil, &TransitionError{
				Entity:  "reservation",
				From:    string(current.Status),
				To:      string(*patch.Status),
				Allowed: allowed,
				Final:   current.Status.Terminal(),
			}
		}
	}

	updated, err := s.reservations.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.pub.publish(ctx, events.ReservationUpdated, updated.ID, updated)
	return updated, nil
}
