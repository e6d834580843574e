// Package storagetest holds behaviour checks every storage backend must pass.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/storage"
)

// Factory returns an empty backend for one subtest
type Factory func(t *testing.T) *storage.Repositories

// Run exercises the full storage contract against the backend built by newRepos
func Run(t *testing.T, newRepos Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, repos *storage.Repositories)
	}{
		{"Users", testUsers},
		{"Categories", testCategories},
		{"MenuItems", testMenuItems},
		{"Orders", testOrders},
		{"Reservations", testReservations},
		{"Reviews", testReviews},
		{"Staff", testStaff},
		{"Tables", testTables},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newRepos(t))
		})
	}
}

func ptr[T any](v T) *T { return &v }

func testUsers(t *testing.T, repos *storage.Repositories) {
	ctx := context.Background()

	created, err := repos.User.Create(ctx, models.User{
		Username: "ayaan", PasswordHash: "hash", Name: "Ayaan", Email: ptr("ayaan@example.com"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = repos.User.Create(ctx, models.User{Username: "ayaan", PasswordHash: "x", Name: "Other"})
	assert.ErrorIs(t, err, storage.ErrConflict)

	byName, err := repos.User.GetByUsername(ctx, "ayaan")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
	assert.Equal(t, "hash", byName.PasswordHash)

	byID, err := repos.User.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ayaan", byID.Name)

	_, err = repos.User.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repos.User.GetByID(ctx, created.ID+100)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testCategories(t *testing.T, repos *storage.Repositories) {
	ctx := context.Background()

	drinks, err := repos.Category.Create(ctx, models.Category{Name: "Drinks", NameEn: "Drinks", NameSo: "Cabitaan", IsActive: true})
	require.NoError(t, err)
	hidden, err := repos.Category.Create(ctx, models.Category{Name: "Old", NameEn: "Old", NameSo: "Duug", IsActive: false})
	require.NoError(t, err)
	assert.Greater(t, hidden.ID, drinks.ID)

	active, err := repos.Category.List(ctx, models.CategoryFilter{})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, drinks.ID, active[0].ID)

	all, err := repos.Category.List(ctx, models.CategoryFilter{IncludeInactive: true})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, []int64{drinks.ID, hidden.ID}, []int64{all[0].ID, all[1].ID})

	updated, err := repos.Category.Update(ctx, drinks.ID, models.CategoryPatch{NameSo: ptr("Cabbitaan"), Description: models.SetString("Cold and hot")})
	require.NoError(t, err)
	assert.Equal(t, "Cabbitaan", updated.NameSo)
	assert.Equal(t, "Drinks", updated.NameEn)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Cold and hot", *updated.Description)

	_, err = repos.Category.Update(ctx, hidden.ID+100, models.CategoryPatch{Name: ptr("x")})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	ok, err := repos.Category.Delete(ctx, hidden.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repos.Category.Delete(ctx, hidden.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = repos.Category.GetByID(ctx, hidden.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testMenuItems(t *testing.T, repos *storage.Repositories) {
	ctx := context.Background()

	mains, err := repos.Category.Create(ctx, models.Category{Name: "Main", NameEn: "Main", NameSo: "Cunto", IsActive: true})
	require.NoError(t, err)
	drinks, err := repos.Category.Create(ctx, models.Category{Name: "Drinks", NameEn: "Drinks", NameSo: "Cabitaan", IsActive: true})
	require.NoError(t, err)

	rice, err := repos.MenuItem.Create(ctx, models.MenuItem{
		Name: "Bariis", NameEn: "Rice", NameSo: "Bariis", Description: "Spiced rice", Price: 1200,
		CategoryID: mains.ID, IsAvailable: true, IsActive: true,
	})
	require.NoError(t, err)
	_, err = repos.MenuItem.Create(ctx, models.MenuItem{
		Name: "Shaah", NameEn: "Tea", NameSo: "Shaah", Description: "Spiced tea", Price: 300,
		CategoryID: drinks.ID, IsAvailable: true, IsActive: true,
	})
	require.NoError(t, err)
	retired, err := repos.MenuItem.Create(ctx, models.MenuItem{
		Name: "Old", NameEn: "Old", NameSo: "Duug", Description: "Gone", Price: 100,
		CategoryID: mains.ID, IsActive: false,
	})
	require.NoError(t, err)

	items, err := repos.MenuItem.List(ctx, models.MenuItemFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	inMains, err := repos.MenuItem.List(ctx, models.MenuItemFilter{CategoryID: &mains.ID})
	require.NoError(t, err)
	require.Len(t, inMains, 1)
	assert.Equal(t, rice.ID, inMains[0].ID)

	allMains, err := repos.MenuItem.List(ctx, models.MenuItemFilter{CategoryID: &mains.ID, IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, allMains, 2)

	count, err := repos.MenuItem.CountByCategory(ctx, mains.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	updated, err := repos.MenuItem.Update(ctx, rice.ID, models.MenuItemPatch{Price: ptr(int64(0)), IsAvailable: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.Price)
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, "Rice", updated.NameEn)

	got, err := repos.MenuItem.GetByID(ctx, rice.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)

	ok, err := repos.MenuItem.Delete(ctx, retired.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	count, err = repos.MenuItem.CountByCategory(ctx, mains.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func testOrders(t *testing.T, repos *storage.Repositories) {
	ctx := context.Background()
	items := `[{"id":1,"name":"Rice","price":1200,"quantity":2}]`

	first, err := repos.Order.Create(ctx, models.Order{
		CustomerName: "Hodan", CustomerEmail: ptr("hodan@example.so"), Items: items, Total: 2400, Status: models.OrderStatusPending,
	})
	require.NoError(t, err)
	// ordering ties on created_at are broken by id
	time.Sleep(5 * time.Millisecond)
	second, err := repos.Order.Create(ctx, models.Order{CustomerName: "Ilhan", Items: items, Total: 2400, Status: models.OrderStatusPending})
	require.NoError(t, err)

	orders, err := repos.Order.List(ctx, models.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)

	mine, err := repos.Order.List(ctx, models.OrderFilter{CustomerName: "Hodan"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)
	none, err := repos.Order.List(ctx, models.OrderFilter{CustomerName: "hodan"})
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)

	status := models.OrderStatusPreparing
	updated, err := repos.Order.Update(ctx, first.ID, models.OrderPatch{Status: &status, Notes: models.SetString("no onions")})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPreparing, updated.Status)
	assert.Equal(t, items, updated.Items)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "no onions", *updated.Notes)
	assert.WithinDuration(t, first.CreatedAt, updated.CreatedAt, time.Millisecond)

	// an explicit null clears a nullable column, an absent field keeps it
	cleared, err := repos.Order.Update(ctx, first.ID, models.OrderPatch{Notes: models.Null()})
	require.NoError(t, err)
	assert.Nil(t, cleared.Notes)
	require.NotNil(t, cleared.CustomerEmail)
	assert.Equal(t, "hodan@example.so", *cleared.CustomerEmail)
	got, err := repos.Order.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Notes)

	_, err = repos.Order.Update(ctx, second.ID+100, models.OrderPatch{Status: &status})
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repos.Order.GetByID(ctx, second.ID+100)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testReservations(t *testing.T, repos *storage.Repositories) {
	ctx := context.Background()

	first, err := repos.Reservation.Create(ctx, models.Reservation{
		CustomerName: "Faadumo", CustomerPhone: "+252611111111", Date: "2026-05-01", Time: "19:30",
		Guests: 4, EventType: "dinner", TableID: "1", Status: models.ReservationStatusPending,
	})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := repos.Reservation.Create(ctx, models.Reservation{
		CustomerName: "Omar", CustomerPhone: "+252622222222", Date: "2026-05-02", Time: "12:00",
		Guests: 40, EventType: "wedding", TableID: "5", Status: models.ReservationStatusPending,
	})
	require.NoError(t, err)

	list, err := repos.Reservation.List(ctx, models.ReservationFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	mine, err := repos.Reservation.List(ctx, models.ReservationFilter{CustomerName: "Omar"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, second.ID, mine[0].ID)

	status := models.ReservationStatusConfirmed
	updated, err := repos.Reservation.Update(ctx, first.ID, models.ReservationPatch{Status: &status, Guests: ptr(6)})
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, updated.Status)
	assert.Equal(t, 6, updated.Guests)
	assert.Equal(t, "19:30", updated.Time)

	_, err = repos.Reservation.GetByID(ctx, second.ID+100)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testReviews(t *testing.T, repos *storage.Repositories) {
	ctx := context.Background()

	approved, err := repos.Review.Create(ctx, models.Review{CustomerName: "Asha", Rating: 5, Comment: "Excellent", IsApproved: true})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	pending, err := repos.Review.Create(ctx, models.Review{CustomerName: "Bashir", Rating: 3, Comment: "Fine"})
	require.NoError(t, err)

	public, err := repos.Review.List(ctx, models.ReviewFilter{ApprovedOnly: true})
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, approved.ID, public[0].ID)

	all, err := repos.Review.List(ctx, models.ReviewFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, pending.ID, all[0].ID)

	updated, err := repos.Review.Update(ctx, pending.ID, models.ReviewPatch{IsApproved: ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.IsApproved)
	assert.Equal(t, 3, updated.Rating)

	ok, err := repos.Review.Delete(ctx, approved.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repos.Review.Delete(ctx, approved.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func testStaff(t *testing.T, repos *storage.Repositories) {
	ctx := context.Background()

	chef, err := repos.Staff.Create(ctx, models.Staff{Name: "Abdi", Role: "chef", IsActive: true})
	require.NoError(t, err)
	former, err := repos.Staff.Create(ctx, models.Staff{Name: "Nimco", Role: "waiter", IsActive: false})
	require.NoError(t, err)

	active, err := repos.Staff.List(ctx, models.StaffFilter{})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, chef.ID, active[0].ID)

	all, err := repos.Staff.List(ctx, models.StaffFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	updated, err := repos.Staff.Update(ctx, former.ID, models.StaffPatch{IsActive: ptr(true), Phone: models.SetString("+252633333333")})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "waiter", updated.Role)

	cleared, err := repos.Staff.Update(ctx, former.ID, models.StaffPatch{Phone: models.Null()})
	require.NoError(t, err)
	assert.Nil(t, cleared.Phone)
	assert.True(t, cleared.IsActive)

	ok, err := repos.Staff.Delete(ctx, chef.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = repos.Staff.GetByID(ctx, chef.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testTables(t *testing.T, repos *storage.Repositories) {
	ctx := context.Background()

	window, err := repos.Table.Create(ctx, models.Table{Name: "Window", Capacity: 4, Type: "table", IsAvailable: true})
	require.NoError(t, err)
	hall, err := repos.Table.Create(ctx, models.Table{Name: "Hall", Capacity: 120, Type: "hall", IsAvailable: false})
	require.NoError(t, err)

	tables, err := repos.Table.List(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, window.ID, tables[0].ID)
	assert.Equal(t, hall.ID, tables[1].ID)

	updated, err := repos.Table.Update(ctx, hall.ID, models.TablePatch{IsAvailable: ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.IsAvailable)
	assert.Equal(t, 120, updated.Capacity)

	ok, err := repos.Table.Delete(ctx, window.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = repos.Table.GetByID(ctx, window.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
