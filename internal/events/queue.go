package events

import (
	"context"
	"log/slog"
	"time"
)

// Queue hands events to a background worker so a slow sink never holds up the
// caller. Every delivery runs under its own timeout. When the buffer is full the
// event is dropped and logged.
type Queue struct {
	next    Publisher
	timeout time.Duration
	logger  *slog.Logger
	events  chan Event
	done    chan struct{}
}

// NewQueue buffers up to size events in front of next
func NewQueue(logger *slog.Logger, next Publisher, size int, timeout time.Duration) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	if size <= 0 {
		size = 256
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Queue{
		next:    next,
		timeout: timeout,
		logger:  logger,
		events:  make(chan Event, size),
		done:    make(chan struct{}),
	}
}

// Publish enqueues the event without waiting for delivery
func (q *Queue) Publish(_ context.Context, event Event) error {
	select {
	case q.events <- event:
	default:
		q.logger.Warn("event queue full, dropping event", "event", event.Type, "id", event.ID)
	}
	return nil
}

// Run delivers queued events until ctx is done, then drains what is left
// and closes Done.
func (q *Queue) Run(ctx context.Context) {
	defer close(q.done)
	for {
		select {
		case event := <-q.events:
			q.deliver(event)
		case <-ctx.Done():
			q.drain()
			return
		}
	}
}

// Done is closed once Run has returned
func (q *Queue) Done() <-chan struct{} {
	return q.done
}

func (q *Queue) drain() {
	for {
		select {
		case event := <-q.events:
			q.deliver(event)
		default:
			return
		}
	}
}

func (q *Queue) deliver(event Event) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	if err := q.next.Publish(ctx, event); err != nil {
		q.logger.Warn("event delivery failed", "event", event.Type, "id", event.ID, "error", err)
	}
}
