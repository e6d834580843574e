package models

// orderTransitions lists the statuses an order may move to from each status
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusCompleted},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

// reservationTransitions lists the statuses a reservation may move to from each status
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusCompleted, ReservationStatusCancelled},
	ReservationStatusCompleted: {},
	ReservationStatusCancelled: {},
}

// Valid reports whether s is a known order status
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Next returns the statuses reachable from s in one step
func (s OrderStatus) Next() []OrderStatus {
	return orderTransitions[s]
}

// Terminal reports whether no further transition is possible
func (s OrderStatus) Terminal() bool {
	return s.Valid() && len(orderTransitions[s]) == 0
}

// CanTransitionTo reports whether an order in status s may move to next.
// Keeping the current status is always allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	for _, candidate := range orderTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is a known reservation status
func (s ReservationStatus) Valid() bool {
	_, ok := reservationTransitions[s]
	return ok
}

// Next returns the statuses reachable from s in one step
func (s ReservationStatus) Next() []ReservationStatus {
	return reservationTransitions[s]
}

// Terminal reports whether no further transition is possible
func (s ReservationStatus) Terminal() bool {
	return s.Valid() && len(reservationTransitions[s]) == 0
}

// CanTransitionTo reports whether a reservation in status s may move to next.
// Keeping the current status is always allowed.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	for _, candidate := range reservationTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}
