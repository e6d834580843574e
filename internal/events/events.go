// Package events carries domain notifications from the services to live sinks
// such as the websocket hub, the message broker and the admin chat.
package events

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Type names a domain event
type Type string

const (
	OrderCreated       Type = "order.created"
	OrderUpdated       Type = "order.updated"
	ReservationCreated Type = "reservation.created"
	ReservationUpdated Type = "reservation.updated"
	ReviewCreated      Type = "review.created"
	ReviewUpdated      Type = "review.updated"
	MenuUpdated        Type = "menu.updated"
)

// Event is one notification; Data holds the affected record
type Event struct {
	Type Type      `json:"type"`
	ID   int64     `json:"id"`
	At   time.Time `json:"at"`
	Data any       `json:"data"`
}

// New stamps an event with the current time
func New(t Type, id int64, data any) Event {
	return Event{Type: t, ID: id, At: time.Now().UTC(), Data: data}
}

// Publisher delivers events to one sink
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// PublisherFunc adapts a function to Publisher
type PublisherFunc func(ctx context.Context, event Event) error

// Publish calls f
func (f PublisherFunc) Publish(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Nop discards every event
type Nop struct{}

// Publish does nothing
func (Nop) Publish(context.Context, Event) error { return nil }

// Multi fans an event out to every sink. A failing sink is logged and does not
// stop delivery to the others, and never fails the caller.
type Multi struct {
	publishers []Publisher
	logger     *slog.Logger
}

// NewMulti creates a fan-out over publishers; nil entries are skipped
func NewMulti(logger *slog.Logger, publishers ...Publisher) *Multi {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Multi{logger: logger}
	for _, p := range publishers {
		if p != nil {
			m.publishers = append(m.publishers, p)
		}
	}
	return m
}

// Add registers another sink
func (m *Multi) Add(p Publisher) {
	if p != nil {
		m.publishers = append(m.publishers, p)
	}
}

// Publish delivers the event to every sink and always returns nil
func (m *Multi) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		m.logger.Warn("event delivery failed", "event", event.Type, "id", event.ID, "error", err)
	}
	return nil
}
