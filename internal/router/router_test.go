package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/qanyare/restaurant-service/internal/metrics"
	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/service"
	"github.com/qanyare/restaurant-service/internal/storage"
	"github.com/qanyare/restaurant-service/internal/storage/memory"
)

type testServer struct {
	*httptest.Server
	repos *storage.Repositories
	svc   *service.Services
}

func newTestServer(t *testing.T, opts Options) *testServer {
	t.Helper()
	repos := memory.New()
	svc := service.New(repos, service.Options{
		JWT:                service.JWTConfig{Secret: "router-test", ExpiresIn: 1},
		BcryptCost:         bcrypt.MinCost,
		EnforceTransitions: true,
	})
	if opts.HealthCheck == nil {
		opts.HealthCheck = repos.HealthCheck
	}
	srv := httptest.NewServer(New(svc, opts))
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, repos: repos, svc: svc}
}

// do sends body as JSON and decodes the JSON reply into out when out is not nil
func (s *testServer) do(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			rdr = bytes.NewBufferString(raw)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			rdr = bytes.NewReader(b)
		}
	}
	req, err := http.NewRequest(method, s.URL+path, rdr)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestScenario_MenuCartCheckout(t *testing.T) {
	s := newTestServer(t, Options{})

	var category models.Category
	code := s.do(t, http.MethodPost, "/api/categories", "", map[string]any{
		"name": "Drinks", "nameEn": "Drinks", "nameSo": "Cabitaan",
	}, &category)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, int64(1), category.ID)
	assert.True(t, category.IsActive)

	var tea models.MenuItem
	code = s.do(t, http.MethodPost, "/api/menu-items", "", map[string]any{
		"name": "Tea", "nameEn": "Tea", "nameSo": "Shaah", "description": "Spiced tea",
		"price": 150, "categoryId": category.ID,
	}, &tea)
	require.Equal(t, http.StatusCreated, code)
	assert.True(t, tea.IsAvailable)

	var items []models.MenuItem
	code = s.do(t, http.MethodGet, fmt.Sprintf("/api/menu-items?categoryId=%d", category.ID), "", nil, &items)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, items, 1)
	assert.Equal(t, tea, items[0])

	lines := []models.OrderLine{{ID: tea.ID, Name: tea.Name, Price: tea.Price, Quantity: 2}}
	encoded, err := models.EncodeOrderLines(lines)
	require.NoError(t, err)

	var order models.Order
	code = s.do(t, http.MethodPost, "/api/orders", "", map[string]any{
		"customerName": "Amina", "items": encoded, "total": 300,
	}, &order)
	require.Equal(t, http.StatusCreated, code)

	var orders []models.Order
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/orders", "", nil, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, int64(300), orders[0].Total)
	assert.Equal(t, models.OrderStatusPending, orders[0].Status)
	assert.False(t, orders[0].CreatedAt.IsZero())
}

func TestPatchKeepsOtherFields(t *testing.T) {
	s := newTestServer(t, Options{})

	var member models.Staff
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/staff", "", map[string]any{
		"name": "Hodan", "role": "Chef", "phone": "+254700000001",
	}, &member))

	var updated models.Staff
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPatch, fmt.Sprintf("/api/staff/%d", member.ID), "", map[string]any{
		"role": "Head Chef",
	}, &updated))
	assert.Equal(t, "Head Chef", updated.Role)
	assert.Equal(t, member.Name, updated.Name)
	assert.Equal(t, member.Phone, updated.Phone)
	assert.Equal(t, member.CreatedAt.Unix(), updated.CreatedAt.Unix())

	var got models.Staff
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, fmt.Sprintf("/api/staff/%d", member.ID), "", nil, &got))
	assert.Equal(t, "Head Chef", got.Role)
}

func TestDeleteAndMissingRecords(t *testing.T) {
	s := newTestServer(t, Options{})

	var table models.Table
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/tables", "", map[string]any{
		"name": "Table 1", "capacity": 4, "type": "indoor",
	}, &table))

	path := fmt.Sprintf("/api/tables/%d", table.ID)
	var msg map[string]any
	require.Equal(t, http.StatusOK, s.do(t, http.MethodDelete, path, "", nil, &msg))
	assert.Equal(t, "Table deleted successfully", msg["message"])

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodDelete, path, "", nil, nil))
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, path, "", nil, nil))
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPatch, path, "", map[string]any{"capacity": 2}, nil))

	var tables []models.Table
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/tables", "", nil, &tables))
	assert.Empty(t, tables)
}

func TestErrorResponses(t *testing.T) {
	s := newTestServer(t, Options{})

	var category models.Category
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/categories", "", map[string]any{
		"nameEn": "Mains", "nameSo": "Cunto Weyn",
	}, &category))
	assert.Equal(t, "Mains", category.Name)

	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/menu-items", "", map[string]any{
		"nameEn": "Baasto", "nameSo": "Baasto", "description": "Pasta", "price": 650, "categoryId": category.ID,
	}, nil))

	var order models.Order
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/orders", "", map[string]any{
		"customerName": "Faisal", "items": `[{"id":1,"name":"Baasto","price":650,"quantity":1}]`, "total": 650,
	}, &order))

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"non-numeric id", http.MethodGet, "/api/orders/abc", nil, http.StatusBadRequest},
		{"missing order", http.MethodGet, "/api/orders/999", nil, http.StatusNotFound},
		{"patch missing order", http.MethodPatch, "/api/orders/999", map[string]any{"status": "preparing"}, http.StatusNotFound},
		{"malformed json", http.MethodPost, "/api/reviews", `{"customerName":`, http.StatusBadRequest},
		{"empty body", http.MethodPost, "/api/reviews", nil, http.StatusBadRequest},
		{"rating out of range", http.MethodPost, "/api/reviews", map[string]any{"customerName": "A", "rating": 6, "comment": "x"}, http.StatusBadRequest},
		{"unknown category", http.MethodPost, "/api/menu-items", map[string]any{"nameEn": "X", "nameSo": "X", "description": "x", "price": 1, "categoryId": 42}, http.StatusBadRequest},
		{"category in use", http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), nil, http.StatusConflict},
		{"skipped status", http.MethodPatch, fmt.Sprintf("/api/orders/%d", order.ID), map[string]any{"status": "completed"}, http.StatusConflict},
		{"unknown status", http.MethodPatch, fmt.Sprintf("/api/orders/%d", order.ID), map[string]any{"status": "lost"}, http.StatusBadRequest},
		{"bad categoryId filter", http.MethodGet, "/api/menu-items?categoryId=x", nil, http.StatusBadRequest},
		{"wrong method", http.MethodPut, "/api/orders", nil, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.do(t, tt.method, tt.path, "", tt.body, nil))
		})
	}

	var verr struct {
		Message string              `json:"message"`
		Errors  []models.FieldError `json:"errors"`
	}
	require.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/orders", "", map[string]any{"total": 1}, &verr))
	assert.Equal(t, "Invalid data", verr.Message)
	fields := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"customerName", "items"}, fields)
}

func TestOrderLifecycleAndReceipt(t *testing.T) {
	s := newTestServer(t, Options{})

	var order models.Order
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/orders", "", map[string]any{
		"customerName": "Ilhan", "items": `[{"id":1,"name":"Sambuus","price":300,"quantity":3}]`, "total": 900,
	}, &order))

	path := fmt.Sprintf("/api/orders/%d", order.ID)
	for _, status := range []string{"preparing", "ready", "completed"} {
		var updated models.Order
		require.Equal(t, http.StatusOK, s.do(t, http.MethodPatch, path, "", map[string]any{"status": status}, &updated))
		assert.Equal(t, models.OrderStatus(status), updated.Status)
	}

	resp, err := s.Client().Get(s.URL + path + "/receipt")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	assert.Contains(t, string(body), "3x Sambuus")
	assert.Contains(t, string(body), "Total: KSh 900")
}

func TestAuthEndpoints(t *testing.T) {
	s := newTestServer(t, Options{})

	var registered map[string]any
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "hawa", "password": "secret1", "name": "Hawa",
	}, &registered))
	user := registered["user"].(map[string]any)
	assert.Equal(t, "hawa", user["username"])
	assert.Equal(t, false, user["isAdmin"])
	assert.NotContains(t, user, "passwordHash")

	assert.Equal(t, http.StatusConflict, s.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "hawa", "password": "another", "name": "Someone Else",
	}, nil))

	var login map[string]any
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "hawa", "password": "secret1",
	}, &login))
	assert.NotEmpty(t, login["token"])
	assert.Equal(t, "Hawa", login["user"].(map[string]any)["name"])

	var failed map[string]any
	require.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "hawa", "password": "wrong",
	}, &failed))
	assert.NotContains(t, failed, "user")

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "hawa",
	}, nil))
}

func TestProtectedAdminRoutes(t *testing.T) {
	s := newTestServer(t, Options{ProtectAdminRoutes: true})
	ctx := context.Background()

	hash, err := s.svc.Auth.HashPassword("password123")
	require.NoError(t, err)
	_, err = s.repos.User.Create(ctx, models.User{Username: "admin", PasswordHash: hash, Name: "Admin", IsAdmin: true})
	require.NoError(t, err)

	var admin, regular models.AuthResponse
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "admin", "password": "password123",
	}, &admin))
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "guest", "password": "guest123", "name": "Guest",
	}, &regular))

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/analytics/stats", "", nil, nil))
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/analytics/stats", regular.Token, nil, nil))

	var stats models.Stats
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/analytics/stats", admin.Token, nil, &stats))
	assert.Equal(t, 0.0, stats.AvgRating)

	// the public surface stays open
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/menu-items", "", nil, nil))
	assert.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/reviews", "", map[string]any{
		"customerName": "Guest", "rating": 5, "comment": "Great shaah",
	}, nil))
	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodPatch, "/api/reviews/1", "", map[string]any{"isApproved": true}, nil))
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPatch, "/api/reviews/1", admin.Token, map[string]any{"isApproved": true}, nil))
}

func TestReviewsApprovedFilter(t *testing.T) {
	s := newTestServer(t, Options{})

	for i, approved := range []bool{true, false, true} {
		require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/reviews", "", map[string]any{
			"customerName": fmt.Sprintf("Guest %d", i), "rating": 4, "comment": "ok", "isApproved": approved,
		}, nil))
	}

	var all, approved []models.Review
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/reviews", "", nil, &all))
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/reviews?approved=true", "", nil, &approved))
	assert.Len(t, all, 3)
	assert.Len(t, approved, 2)
	assert.Equal(t, "Guest 2", all[0].CustomerName)
}

func TestLoginRateLimit(t *testing.T) {
	s := newTestServer(t, Options{LoginRatePerMinute: 1})
	creds := map[string]any{"username": "nobody", "password": "nothing"}

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodPost, "/api/auth/login", "", creds, nil))
	assert.Equal(t, http.StatusTooManyRequests, s.do(t, http.MethodPost, "/api/auth/login", "", creds, nil))
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t, Options{Metrics: metrics.New()})

	var health map[string]string
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/healthz", "", nil, &health))
	assert.Equal(t, "ok", health["status"])

	resp, err := s.Client().Get(s.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `qanyare_http_requests_total{method="GET",route="GET /healthz",status="200"} 1`)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestHealthCheckFailure(t *testing.T) {
	s := newTestServer(t, Options{HealthCheck: func(context.Context) error {
		return fmt.Errorf("connection refused")
	}})

	var health map[string]string
	require.Equal(t, http.StatusServiceUnavailable, s.do(t, http.MethodGet, "/healthz", "", nil, &health))
	assert.Equal(t, "unavailable", health["status"])
}

func TestReservationLifecycle(t *testing.T) {
	s := newTestServer(t, Options{})

	var reservation models.Reservation
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/reservations", "", map[string]any{
		"customerName": "Yusuf", "customerPhone": "+254722000000", "date": "2026-12-24", "time": "19:30",
		"guests": 8, "eventType": "family", "tableId": "Table 3",
	}, &reservation))
	assert.Equal(t, models.ReservationStatusPending, reservation.Status)

	path := fmt.Sprintf("/api/reservations/%d", reservation.ID)
	var confirmed models.Reservation
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPatch, path, "", map[string]any{"status": "confirmed"}, &confirmed))
	assert.Equal(t, models.ReservationStatusConfirmed, confirmed.Status)
	assert.Equal(t, reservation.Guests, confirmed.Guests)

	assert.Equal(t, http.StatusConflict, s.do(t, http.MethodPatch, path, "", map[string]any{"status": "pending"}, nil))
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/reservations", "", map[string]any{
		"customerName": "Yusuf", "customerPhone": "1", "date": "24/12/2026", "time": "19:30",
		"guests": 2, "eventType": "family", "tableId": "Table 1",
	}, nil))

	var got models.Reservation
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, path, "", nil, &got))
	assert.Equal(t, models.ReservationStatusConfirmed, got.Status)

	var all []models.Reservation
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/reservations", "", nil, &all))
	assert.Len(t, all, 1)
}

func TestPatchNullClearsField(t *testing.T) {
	s := newTestServer(t, Options{})

	var order models.Order
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/orders", "", map[string]any{
		"customerName": "Amina", "customerEmail": "a@b.so", "customerPhone": "+252611111111",
		"items": `[{"id":1,"name":"Tea","price":150,"quantity":2}]`, "total": 300, "notes": "no sugar",
	}, &order))
	require.NotNil(t, order.Notes)

	path := fmt.Sprintf("/api/orders/%d", order.ID)
	var updated models.Order
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPatch, path, "", `{"notes":null,"customerEmail":""}`, &updated))
	assert.Nil(t, updated.Notes)
	assert.Nil(t, updated.CustomerEmail)
	require.NotNil(t, updated.CustomerPhone)
	assert.Equal(t, "+252611111111", *updated.CustomerPhone)

	var got models.Order
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, path, "", nil, &got))
	assert.Nil(t, got.Notes)
	assert.Nil(t, got.CustomerEmail)
	assert.Equal(t, "Amina", got.CustomerName)
}

func TestPatchMissingItemWithBadCategory(t *testing.T) {
	s := newTestServer(t, Options{})
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPatch, "/api/menu-items/42", "", map[string]any{"categoryId": 99}, nil))
}

func TestCustomerHistory(t *testing.T) {
	s := newTestServer(t, Options{ProtectAdminRoutes: true})
	items := `[{"id":1,"name":"Tea","price":150,"quantity":1}]`

	var hawa models.AuthResponse
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "hawa", "password": "secret1", "name": "Hawa Ali",
	}, &hawa))

	for _, name := range []string{"Hawa Ali", "Faarax", "Hawa Ali"} {
		require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/orders", "", map[string]any{
			"customerName": name, "items": items, "total": 150,
		}, nil))
	}
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/reservations", "", map[string]any{
		"customerName": "Hawa Ali", "customerPhone": "+252611111111", "date": "2026-12-24", "time": "19:30",
		"guests": 2, "eventType": "regular", "tableId": "1",
	}, nil))

	var me models.User
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/auth/me", hawa.Token, nil, &me))
	assert.Equal(t, "hawa", me.Username)

	var orders []models.Order
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/me/orders", hawa.Token, nil, &orders))
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, "Hawa Ali", o.CustomerName)
	}
	assert.Greater(t, orders[0].ID, orders[1].ID)

	var reservations []models.Reservation
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/me/reservations", hawa.Token, nil, &reservations))
	assert.Len(t, reservations, 1)

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/me/orders", "", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/auth/me", "bogus", nil, nil))
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/orders?customerName=Faarax", hawa.Token, nil, nil))
}

func TestListFilterByCustomerName(t *testing.T) {
	s := newTestServer(t, Options{})
	items := `[{"id":1,"name":"Tea","price":150,"quantity":1}]`
	for _, name := range []string{"Hodan", "Ilhan"} {
		require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/orders", "", map[string]any{
			"customerName": name, "items": items, "total": 150,
		}, nil))
	}

	var orders []models.Order
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/orders?customerName=Ilhan", "", nil, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "Ilhan", orders[0].CustomerName)

	var reservations []models.Reservation
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/reservations?customerName=Ilhan", "", nil, &reservations))
	assert.NotNil(t, reservations)
	assert.Empty(t, reservations)
}
