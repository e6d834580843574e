package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qanyare/restaurant-service/internal/events"
)

func TestPublishCountsCreations(t *testing.T) {
	m := New()
	ctx := context.Background()

	require.NoError(t, m.Publish(ctx, events.New(events.OrderCreated, 1, nil)))
	require.NoError(t, m.Publish(ctx, events.New(events.OrderCreated, 2, nil)))
	require.NoError(t, m.Publish(ctx, events.New(events.OrderUpdated, 2, nil)))
	require.NoError(t, m.Publish(ctx, events.New(events.ReservationCreated, 1, nil)))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.OrdersCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationsCreated))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.HTTPRequests.WithLabelValues("GET", "GET /api/menu-items", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `qanyare_http_requests_total{method="GET",route="GET /api/menu-items",status="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNewIsIndependent(t *testing.T) {
	// separate registries allow several instances in one process
	a, b := New(), New()
	a.OrdersCreated.Inc()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.OrdersCreated))
}
