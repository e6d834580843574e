package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qanyare/restaurant-service/internal/client"
	"github.com/qanyare/restaurant-service/internal/client/clienttest"
	"github.com/qanyare/restaurant-service/internal/localstore"
	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/router"
)

// flakyStore fails writes while failing is set
type flakyStore struct {
	localstore.Store
	failing bool
}

func (f *flakyStore) Set(key string, v any) error {
	if f.failing {
		return errors.New("disk full")
	}
	return f.Store.Set(key, v)
}

func (f *flakyStore) Delete(key string) error {
	if f.failing {
		return errors.New("disk full")
	}
	return f.Store.Delete(key)
}

type messages []string

func (m *messages) Notify(msg string) { *m = append(*m, msg) }

func newStore(t *testing.T) *localstore.Badger {
	t.Helper()
	store, err := localstore.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

var (
	tea     = Item{ID: 1, Name: "Shaah", NameEn: "Tea", NameSo: "Shaah", Price: 150}
	sambuus = Item{ID: 2, Name: "Sambuus", NameEn: "Samosa", NameSo: "Sambuus", Price: 300}
)

func TestCart_AddMergesAndTotals(t *testing.T) {
	var msgs messages
	c := New(newStore(t), &msgs)

	require.NoError(t, c.Add(tea))
	require.NoError(t, c.Add(tea))
	require.NoError(t, c.Add(sambuus))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 3, c.TotalItems())
	assert.Equal(t, int64(600), c.TotalPrice())
	assert.Equal(t, messages{"Shaah added to cart", "Shaah added to cart", "Sambuus added to cart"}, msgs)
}

func TestCart_SetQuantityAndRemove(t *testing.T) {
	c := New(newStore(t), nil)
	require.NoError(t, c.Add(tea))
	require.NoError(t, c.Add(sambuus))

	require.NoError(t, c.SetQuantity(2, 4))
	assert.Equal(t, int64(150+4*300), c.TotalPrice())

	require.NoError(t, c.SetQuantity(1, 0))
	require.Len(t, c.Items(), 1)
	assert.Equal(t, int64(2), c.Items()[0].ID)

	require.NoError(t, c.Remove(2))
	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.TotalItems())
}

func TestCart_PersistsAcrossInstances(t *testing.T) {
	store := newStore(t)
	c := New(store, nil)
	require.NoError(t, c.Add(tea))
	require.NoError(t, c.Add(tea))

	reloaded := New(store, nil)
	assert.Equal(t, c.Items(), reloaded.Items())

	require.NoError(t, reloaded.Clear())
	found, err := store.Get(SlotKey, &[]Item{})
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, New(store, nil).Items())
}

func TestCart_RollsBackWhenSaveFails(t *testing.T) {
	store := &flakyStore{Store: newStore(t)}
	c := New(store, nil)
	require.NoError(t, c.Add(tea))

	store.failing = true
	assert.Error(t, c.Add(tea))
	assert.Error(t, c.SetQuantity(1, 9))
	assert.Error(t, c.Remove(1))
	assert.Error(t, c.Clear())

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	store.failing = false
	assert.Equal(t, items, New(store, nil).Items())
}

func TestCart_UnreadableSlotLoadsEmpty(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set(SlotKey, "not a list"))

	c := New(store, nil)
	assert.Empty(t, c.Items())
	require.NoError(t, c.Add(tea))
	assert.Len(t, New(store, nil).Items(), 1)
}

func TestCart_ItemsIsACopy(t *testing.T) {
	c := New(newStore(t), nil)
	require.NoError(t, c.Add(tea))

	items := c.Items()
	items[0].Quantity = 99
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestFromMenuItem(t *testing.T) {
	image := "/images/shaah.jpg"
	item := FromMenuItem(models.MenuItem{ID: 5, Name: "Shaah", NameEn: "Tea", NameSo: "Shaah", Price: 150, Image: &image})
	assert.Equal(t, Item{ID: 5, Name: "Shaah", NameEn: "Tea", NameSo: "Shaah", Price: 150, Quantity: 1, Image: &image}, item)
}

func TestCart_Checkout(t *testing.T) {
	srv := clienttest.New(t, router.Options{})
	api := client.New(srv.URL, client.WithHTTPClient(srv.Client()))
	ctx := context.Background()

	category, err := api.ListCategories(ctx)
	require.NoError(t, err)
	items, err := api.ListMenuItems(ctx, &category[0].ID)
	require.NoError(t, err)

	var msgs messages
	store := newStore(t)
	c := New(store, &msgs)

	_, err = c.Checkout(ctx, api, CustomerDetails{CustomerName: "Amina"})
	assert.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, c.Add(FromMenuItem(items[0])))
	require.NoError(t, c.Add(FromMenuItem(items[0])))
	want := items[0].Price * 2

	order, err := c.Checkout(ctx, api, CustomerDetails{CustomerName: "Amina"})
	require.NoError(t, err)
	assert.Equal(t, want, order.Total)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	lines, err := order.Lines()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	assert.Empty(t, c.Items())
	assert.Empty(t, New(store, nil).Items())
	assert.Contains(t, msgs, "Order #1 placed")
}

func TestCart_CheckoutFailureKeepsCart(t *testing.T) {
	srv := clienttest.New(t, router.Options{})
	api := client.New(srv.URL, client.WithHTTPClient(srv.Client()))

	var msgs messages
	c := New(newStore(t), &msgs)
	require.NoError(t, c.Add(tea))

	// a blank name is rejected by the server
	_, err := c.Checkout(context.Background(), api, CustomerDetails{})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Len(t, c.Items(), 1)
	assert.Contains(t, msgs, "Order could not be placed")
}
