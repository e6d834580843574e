package notify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/qanyare/restaurant-service/internal/events"
	"github.com/qanyare/restaurant-service/internal/models"
)

// sender is the part of tgbotapi.BotAPI used here
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram posts new orders and reservations to the staff chat
type Telegram struct {
	api    sender
	chatID int64
}

// sendTimeout bounds each Bot API call; Send takes no context
const sendTimeout = 10 * time.Second

// NewTelegram authenticates the bot token and targets chatID
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	if chatID == 0 {
		return nil, fmt.Errorf("telegram chat id is required")
	}
	client := &http.Client{Timeout: sendTimeout}
	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &Telegram{api: api, chatID: chatID}, nil
}

// Publish sends a message for order.created and reservation.created; other events are ignored
func (t *Telegram) Publish(ctx context.Context, event events.Event) error {
	text, ok := FormatMessage(event)
	if !ok {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

// FormatMessage renders the chat text for an event, reporting false when the
// event is not announced
func FormatMessage(event events.Event) (string, bool) {
	switch event.Type {
	case events.OrderCreated:
		order, ok := event.Data.(*models.Order)
		if !ok {
			return "", false
		}
		return formatOrder(order), true
	case events.ReservationCreated:
		reservation, ok := event.Data.(*models.Reservation)
		if !ok {
			return "", false
		}
		return formatReservation(reservation), true
	}
	return "", false
}

func formatOrder(o *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧾 New order #%d\n", o.ID)
	fmt.Fprintf(&b, "Customer: %s\n", o.CustomerName)
	if o.CustomerPhone != nil && *o.CustomerPhone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", *o.CustomerPhone)
	}

	if lines, err := o.Lines(); err == nil {
		for _, line := range lines {
			fmt.Fprintf(&b, "• %dx %s (KSh %d)\n", line.Quantity, line.Name, line.Price*int64(line.Quantity))
		}
	}

	fmt.Fprintf(&b, "Total: KSh %d", o.Total)
	if o.Notes != nil && *o.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s", *o.Notes)
	}
	return b.String()
}

func formatReservation(r *models.Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 New reservation #%d\n", r.ID)
	fmt.Fprintf(&b, "Customer: %s (%s)\n", r.CustomerName, r.CustomerPhone)
	fmt.Fprintf(&b, "When: %s %s\n", r.Date, r.Time)
	fmt.Fprintf(&b, "Guests: %d, %s\n", r.Guests, r.EventType)
	fmt.Fprintf(&b, "Table: %s", r.TableID)
	if r.Notes != nil && *r.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s", *r.Notes)
	}
	return b.String()
}
