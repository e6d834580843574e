package notify

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qanyare/restaurant-service/internal/events"
	"github.com/qanyare/restaurant-service/internal/models"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func sampleOrder() *models.Order {
	phone := "+254711000000"
	notes := "No onions"
	return &models.Order{
		ID:            12,
		CustomerName:  "Amina",
		CustomerPhone: &phone,
		Items:         `[{"id":1,"name":"Sambuus","price":300,"quantity":2},{"id":2,"name":"Shaah Somali","price":150,"quantity":1}]`,
		Total:         750,
		Status:        models.OrderStatusPending,
		Notes:         &notes,
	}
}

func TestFormatMessage(t *testing.T) {
	text, ok := FormatMessage(events.New(events.OrderCreated, 12, sampleOrder()))
	require.True(t, ok)
	assert.Contains(t, text, "New order #12")
	assert.Contains(t, text, "Phone: +254711000000")
	assert.Contains(t, text, "2x Sambuus (KSh 600)")
	assert.Contains(t, text, "Total: KSh 750")
	assert.Contains(t, text, "Notes: No onions")

	text, ok = FormatMessage(events.New(events.ReservationCreated, 3, &models.Reservation{
		ID: 3, CustomerName: "Yusuf", CustomerPhone: "0700", Date: "2026-05-01", Time: "19:30",
		Guests: 6, EventType: "family", TableID: "VIP Hall",
	}))
	require.True(t, ok)
	assert.Contains(t, text, "New reservation #3")
	assert.Contains(t, text, "When: 2026-05-01 19:30")
	assert.Contains(t, text, "Guests: 6, family")
	assert.NotContains(t, text, "Notes")

	_, ok = FormatMessage(events.New(events.OrderUpdated, 12, sampleOrder()))
	assert.False(t, ok)
	_, ok = FormatMessage(events.New(events.OrderCreated, 12, "not an order"))
	assert.False(t, ok)
}

func TestTelegram_Publish(t *testing.T) {
	fake := &fakeSender{}
	tg := &Telegram{api: fake, chatID: 4242}
	ctx := context.Background()

	require.NoError(t, tg.Publish(ctx, events.New(events.OrderCreated, 12, sampleOrder())))
	require.NoError(t, tg.Publish(ctx, events.New(events.ReviewCreated, 1, &models.Review{ID: 1})))

	require.Len(t, fake.sent, 1)
	assert.Equal(t, int64(4242), fake.sent[0].ChatID)
	assert.Contains(t, fake.sent[0].Text, "New order #12")

	fake.err = errors.New("telegram down")
	assert.ErrorContains(t, tg.Publish(ctx, events.New(events.OrderCreated, 12, sampleOrder())), "telegram down")
}

func TestNewTelegram_RequiresChat(t *testing.T) {
	_, err := NewTelegram("token", 0)
	assert.Error(t, err)
}

func TestRabbitMQ_PublishesByEventType(t *testing.T) {
	url := os.Getenv("TEST_RABBITMQ_URL")
	if url == "" {
		t.Skip("TEST_RABBITMQ_URL not set")
	}

	exchange := "qanyare.test." + time.Now().Format("150405.000")
	pub, err := DialRabbitMQ(url, exchange)
	require.NoError(t, err)
	defer pub.Close()
	require.NoError(t, pub.Ping())

	conn, err := amqp.Dial(url)
	require.NoError(t, err)
	defer conn.Close()
	ch, err := conn.Channel()
	require.NoError(t, err)

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, "order.*", exchange, false, nil))
	deliveries, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	require.NoError(t, err)

	require.NoError(t, pub.Publish(context.Background(), events.New(events.ReviewCreated, 1, nil)))
	require.NoError(t, pub.Publish(context.Background(), events.New(events.OrderCreated, 12, sampleOrder())))

	select {
	case d := <-deliveries:
		assert.Equal(t, "order.created", d.RoutingKey)
		assert.Equal(t, "application/json", d.ContentType)
		var got struct {
			Type string       `json:"type"`
			Data models.Order `json:"data"`
		}
		require.NoError(t, json.Unmarshal(d.Body, &got))
		assert.Equal(t, "order.created", got.Type)
		assert.Equal(t, int64(750), got.Data.Total)
	case <-time.After(5 * time.Second):
		t.Fatal("no delivery")
	}

	require.NoError(t, ch.ExchangeDelete(exchange, false, false))
}

func TestDialRabbitMQ_RequiresExchange(t *testing.T) {
	_, err := DialRabbitMQ("amqp://localhost", "")
	assert.Error(t, err)
}
