package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qanyare/restaurant-service/internal/client/clienttest"
	"github.com/qanyare/restaurant-service/internal/fixtures"
	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/router"
)

func TestClient_MenuAndOrders(t *testing.T) {
	srv := clienttest.New(t, router.Options{})
	c := New(srv.URL, WithHTTPClient(srv.Client()))
	ctx := context.Background()

	categories, err := c.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)

	items, err := c.ListMenuItems(ctx, &categories[0].ID)
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.Equal(t, categories[0].ID, item.CategoryID)
	}

	all, err := c.ListMenuItems(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 7)

	item, err := c.GetMenuItem(ctx, items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, items[0], *item)

	total := items[0].Price
	order, err := c.CreateOrder(ctx, models.OrderRequest{
		CustomerName: "Sahra",
		Items:        `[{"id":1,"name":"Shaah Somali","price":150,"quantity":1}]`,
		Total:        &total,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	updated, err := c.UpdateOrderStatus(ctx, order.ID, models.OrderStatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPreparing, updated.Status)

	orders, err := c.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, total, stats.TotalRevenue)
	assert.Equal(t, 6, stats.TotalReviews)
}

func TestClient_Errors(t *testing.T) {
	srv := clienttest.New(t, router.Options{ProtectAdminRoutes: true})
	c := New(srv.URL, WithHTTPClient(srv.Client()))
	ctx := context.Background()

	_, err := c.Login(ctx, fixtures.AdminUsername, "wrong")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Message)

	_, err = c.Stats(ctx)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	_, err = c.CreateOrder(ctx, models.OrderRequest{CustomerName: "X"})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Errors)

	resp, err := c.Login(ctx, fixtures.AdminUsername, fixtures.AdminPassword)
	require.NoError(t, err)
	assert.True(t, resp.User.IsAdmin)

	c.SetToken(resp.Token)
	_, err = c.Stats(ctx)
	require.NoError(t, err)
}

func TestClient_Register(t *testing.T) {
	srv := clienttest.New(t, router.Options{})
	c := New(srv.URL+"/", WithHTTPClient(srv.Client()))

	resp, err := c.Register(context.Background(), models.RegisterRequest{Username: "bile", Password: "secret1", Name: "Bile"})
	require.NoError(t, err)
	assert.Equal(t, "bile", resp.User.Username)
	assert.NotEmpty(t, resp.Token)

	_, err = c.Register(context.Background(), models.RegisterRequest{Username: "bile", Password: "secret1", Name: "Bile"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
}

func TestClient_AccountHistory(t *testing.T) {
	srv := clienttest.New(t, router.Options{ProtectAdminRoutes: true})
	c := New(srv.URL, WithHTTPClient(srv.Client()))
	ctx := context.Background()

	resp, err := c.Register(ctx, models.RegisterRequest{Username: "sahra", Password: "secret1", Name: "Sahra"})
	require.NoError(t, err)

	_, err = c.ListMyOrders(ctx)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	c.SetToken(resp.Token)
	total := int64(150)
	_, err = c.CreateOrder(ctx, models.OrderRequest{
		CustomerName: "Sahra",
		Items:        `[{"id":1,"name":"Shaah Somali","price":150,"quantity":1}]`,
		Total:        &total,
	})
	require.NoError(t, err)

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sahra", me.Username)

	orders, err := c.ListMyOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Sahra", orders[0].CustomerName)

	reservations, err := c.ListMyReservations(ctx)
	require.NoError(t, err)
	assert.Empty(t, reservations)
}
