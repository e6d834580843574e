package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuItemPatch_ApplyChangesOnlyPresentFields(t *testing.T) {
	item := MenuItem{
		ID:          7,
		Name:        "Shaah",
		NameEn:      "Somali Tea",
		NameSo:      "Shaah Somali",
		Description: "Spiced tea",
		Price:       150,
		CategoryID:  1,
		IsAvailable: true,
		IsActive:    true,
	}
	want := item
	want.Price = 175
	want.IsAvailable = false

	MenuItemPatch{Price: ptr(int64(175)), IsAvailable: ptr(false)}.Apply(&item)

	assert.Equal(t, want, item)
}

func TestOrderPatch_ApplyStatus(t *testing.T) {
	order := Order{ID: 1, CustomerName: "A", Items: "[]", Total: 300, Status: OrderStatusPending}
	OrderPatch{Status: ptr(OrderStatusPreparing)}.Apply(&order)
	assert.Equal(t, OrderStatusPreparing, order.Status)
	assert.Equal(t, int64(300), order.Total)
}

func TestOrderLines_RoundTrip(t *testing.T) {
	lines := []OrderLine{{ID: 1, Name: "Tea", Price: 150, Quantity: 2}}
	encoded, err := EncodeOrderLines(lines)
	require.NoError(t, err)

	order := Order{Items: encoded}
	decoded, err := order.Lines()
	require.NoError(t, err)
	assert.Equal(t, lines, decoded)

	_, err = Order{Items: "{"}.Lines()
	assert.Error(t, err)
}

func TestNullableString_DecodeTellsNullFromAbsent(t *testing.T) {
	var patch OrderPatch
	require.NoError(t, json.Unmarshal([]byte(`{"notes":null,"customerEmail":"a@b.so"}`), &patch))

	assert.True(t, patch.Notes.Set)
	assert.Nil(t, patch.Notes.Value)
	assert.Equal(t, SetString("a@b.so"), patch.CustomerEmail)
	assert.False(t, patch.CustomerPhone.Set)
}

func TestOrderPatch_ApplyClearsNullAndEmptyFields(t *testing.T) {
	order := Order{
		ID:            1,
		CustomerName:  "Amina",
		CustomerPhone: ptr("+252611111111"),
		CustomerEmail: ptr("a@b.so"),
		Notes:         ptr("no sugar"),
	}

	OrderPatch{Notes: Null(), CustomerEmail: SetString("")}.Apply(&order)

	assert.Nil(t, order.Notes)
	assert.Nil(t, order.CustomerEmail)
	require.NotNil(t, order.CustomerPhone)
	assert.Equal(t, "+252611111111", *order.CustomerPhone)
}

func TestOrderPatch_EncodeOmitsAbsentFields(t *testing.T) {
	status := OrderStatusReady
	b, err := json.Marshal(OrderPatch{Status: &status, Notes: Null()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ready","notes":null}`, string(b))
}
