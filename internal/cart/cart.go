// Package cart is the client-side shopping cart. Its lines are mirrored into a
// local slot after every change so the cart survives restarts.
package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/qanyare/restaurant-service/internal/localstore"
	"github.com/qanyare/restaurant-service/internal/models"
)

// SlotKey is the slot holding the serialized cart
const SlotKey = "qanyare-cart"

// ErrEmpty is returned when checking out an empty cart
var ErrEmpty = errors.New("cart is empty")

// Item is one cart line
type Item struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	NameEn   string  `json:"nameEn"`
	NameSo   string  `json:"nameSo"`
	Price    int64   `json:"price"`
	Quantity int     `json:"quantity"`
	Image    *string `json:"image,omitempty"`
}

// FromMenuItem builds a line of quantity 1 for a menu item
func FromMenuItem(m models.MenuItem) Item {
	return Item{
		ID:       m.ID,
		Name:     m.Name,
		NameEn:   m.NameEn,
		NameSo:   m.NameSo,
		Price:    m.Price,
		Quantity: 1,
		Image:    m.Image,
	}
}

// Notifier shows short messages to the user
type Notifier interface {
	Notify(message string)
}

// OrderSubmitter places an order; satisfied by *client.Client
type OrderSubmitter interface {
	CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error)
}

// Cart holds the lines in insertion order
type Cart struct {
	mu       sync.Mutex
	items    []Item
	store    localstore.Store
	notifier Notifier
}

// New loads the cart from store. An unreadable slot yields an empty cart.
// notifier may be nil.
func New(store localstore.Store, notifier Notifier) *Cart {
	c := &Cart{store: store, notifier: notifier}

	var items []Item
	found, err := store.Get(SlotKey, &items)
	if err != nil {
		slog.Warn("ignoring unreadable cart slot", "slot", SlotKey, "error", err)
		return c
	}
	if found {
		c.items = items
	}
	return c
}

// Add puts one more of item in the cart
func (c *Cart) Add(item Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.copyItems()
	found := false
	for i := range next {
		if next[i].ID == item.ID {
			next[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		next = append(next, item)
	}

	if err := c.commit(next); err != nil {
		return err
	}
	c.notify(item.Name + " added to cart")
	return nil
}

// Remove drops the line with id
func (c *Cart) Remove(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	return c.commit(next)
}

// SetQuantity replaces the quantity of a line; zero or less removes it
func (c *Cart) SetQuantity(id int64, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		if it.ID == id {
			if quantity <= 0 {
				continue
			}
			it.Quantity = quantity
		}
		next = append(next, it)
	}
	return c.commit(next)
}

// Clear empties the cart and deletes its slot
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Delete(SlotKey); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	c.items = nil
	return nil
}

// Items returns a copy of the lines
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyItems()
}

// TotalItems is the sum of quantities
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// TotalPrice is the sum of price times quantity
func (c *Cart) TotalPrice() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalPrice(c.items)
}

// CustomerDetails identifies who is ordering
type CustomerDetails struct {
	CustomerName  string
	CustomerPhone *string
	CustomerEmail *string
	Notes         *string
}

// Checkout submits the cart as an order and clears it once the order is accepted
func (c *Cart) Checkout(ctx context.Context, api OrderSubmitter, details CustomerDetails) (*models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return nil, ErrEmpty
	}

	lines := make([]models.OrderLine, 0, len(c.items))
	for _, it := range c.items {
		lines = append(lines, models.OrderLine{ID: it.ID, Name: it.Name, Price: it.Price, Quantity: it.Quantity})
	}
	encoded, err := models.EncodeOrderLines(lines)
	if err != nil {
		return nil, err
	}
	total := totalPrice(c.items)

	order, err := api.CreateOrder(ctx, models.OrderRequest{
		CustomerName:  details.CustomerName,
		CustomerPhone: details.CustomerPhone,
		CustomerEmail: details.CustomerEmail,
		Items:         encoded,
		Total:         &total,
		Notes:         details.Notes,
	})
	if err != nil {
		c.notify("Order could not be placed")
		return nil, fmt.Errorf("place order: %w", err)
	}

	if err := c.store.Delete(SlotKey); err != nil {
		return order, fmt.Errorf("order %d placed but the cart was not cleared: %w", order.ID, err)
	}
	c.items = nil
	c.notify(fmt.Sprintf("Order #%d placed", order.ID))
	return order, nil
}

// commit persists next and only then makes it the current state
func (c *Cart) commit(next []Item) error {
	if err := c.store.Set(SlotKey, next); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	c.items = next
	return nil
}

func (c *Cart) copyItems() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) notify(message string) {
	if c.notifier != nil {
		c.notifier.Notify(message)
	}
}

func totalPrice(items []Item) int64 {
	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}
