package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderLine is one entry of the serialized items list of an order
type OrderLine struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// Order represents a customer order. Items holds the JSON encoded lines as sent by the client.
type Order struct {
	ID            int64       `db:"id" json:"id"`
	CustomerName  string      `db:"customer_name" json:"customerName"`
	CustomerPhone *string     `db:"customer_phone" json:"customerPhone"`
	CustomerEmail *string     `db:"customer_email" json:"customerEmail"`
	Items         string      `db:"items" json:"items"`
	Total         int64       `db:"total" json:"total"`
	Status        OrderStatus `db:"status" json:"status"`
	Notes         *string     `db:"notes" json:"notes"`
	CreatedAt     time.Time   `db:"created_at" json:"createdAt"`
}

// Lines decodes the items blob
func (o Order) Lines() ([]OrderLine, error) {
	return DecodeOrderLines(o.Items)
}

// DecodeOrderLines parses a serialized items list
func DecodeOrderLines(items string) ([]OrderLine, error) {
	var lines []OrderLine
	if err := json.Unmarshal([]byte(items), &lines); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return lines, nil
}

// EncodeOrderLines serializes lines into the form stored on an order
func EncodeOrderLines(lines []OrderLine) (string, error) {
	b, err := json.Marshal(lines)
	if err != nil {
		return "", fmt.Errorf("encode order items: %w", err)
	}
	return string(b), nil
}

// OrderRequest is used for order creation
type OrderRequest struct {
	CustomerName  string      `json:"customerName" validate:"required,max=100"`
	CustomerPhone *string     `json:"customerPhone"`
	CustomerEmail *string     `json:"customerEmail" validate:"omitempty,optemail"`
	Items         string      `json:"items" validate:"required,orderlines"`
	Total         *int64      `json:"total" validate:"required,gte=0"`
	Status        OrderStatus `json:"status" validate:"omitempty,orderstatus"`
	Notes         *string     `json:"notes"`
}

// OrderPatch carries the fields of a partial order update
type OrderPatch struct {
	CustomerName  *string        `json:"customerName,omitempty" validate:"omitnil,min=1,max=100"`
	CustomerPhone NullableString `json:"customerPhone,omitzero"`
	CustomerEmail NullableString `json:"customerEmail,omitzero" validate:"omitempty,optemail"`
	Items         *string        `json:"items,omitempty" validate:"omitnil,orderlines"`
	Total         *int64         `json:"total,omitempty" validate:"omitnil,gte=0"`
	Status        *OrderStatus   `json:"status,omitempty" validate:"omitnil,orderstatus"`
	Notes         NullableString `json:"notes,omitzero"`
}

// Apply merges the present fields into o
func (p OrderPatch) Apply(o *Order) {
	if p.CustomerName != nil {
		o.CustomerName = *p.CustomerName
	}
	p.CustomerPhone.apply(&o.CustomerPhone)
	p.CustomerEmail.apply(&o.CustomerEmail)
	if p.Items != nil {
		o.Items = *p.Items
	}
	if p.Total != nil {
		o.Total = *p.Total
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	p.Notes.apply(&o.Notes)
}

// OrderFilter narrows an order listing. CustomerName matches exactly when set.
type OrderFilter struct {
	CustomerName string
}
