package models

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a booked table or hall
type Reservation struct {
	ID            int64             `db:"id" json:"id"`
	CustomerName  string            `db:"customer_name" json:"customerName"`
	CustomerPhone string            `db:"customer_phone" json:"customerPhone"`
	CustomerEmail *string           `db:"customer_email" json:"customerEmail"`
	Date          string            `db:"date" json:"date"`
	Time          string            `db:"time" json:"time"`
	Guests        int               `db:"guests" json:"guests"`
	EventType     string            `db:"event_type" json:"eventType"`
	TableID       string            `db:"table_id" json:"tableId"`
	Notes         *string           `db:"notes" json:"notes"`
	Status        ReservationStatus `db:"status" json:"status"`
	CreatedAt     time.Time         `db:"created_at" json:"createdAt"`
}

// ReservationRequest is used for reservation creation
type ReservationRequest struct {
	CustomerName  string            `json:"customerName" validate:"required,max=100"`
	CustomerPhone string            `json:"customerPhone" validate:"required,max=30"`
	CustomerEmail *string           `json:"customerEmail" validate:"omitempty,optemail"`
	Date          string            `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string            `json:"time" validate:"required,datetime=15:04"`
	Guests        int               `json:"guests" validate:"required,min=1"`
	EventType     string            `json:"eventType" validate:"required"`
	TableID       string            `json:"tableId" validate:"required"`
	Notes         *string           `json:"notes"`
	Status        ReservationStatus `json:"status" validate:"omitempty,reservationstatus"`
}

// ReservationPatch carries the fields of a partial reservation update
type ReservationPatch struct {
	CustomerName  *string            `json:"customerName" validate:"omitnil,min=1,max=100"`
	CustomerPhone *string            `json:"customerPhone" validate:"omitnil,min=1,max=30"`
	CustomerEmail NullableString     `json:"customerEmail" validate:"omitempty,optemail"`
	Date          *string            `json:"date" validate:"omitnil,datetime=2006-01-02"`
	Time          *string            `json:"time" validate:"omitnil,datetime=15:04"`
	Guests        *int               `json:"guests" validate:"omitnil,min=1"`
	EventType     *string            `json:"eventType" validate:"omitnil,min=1"`
	TableID       *string            `json:"tableId" validate:"omitnil,min=1"`
	Notes         NullableString     `json:"notes"`
	Status        *ReservationStatus `json:"status" validate:"omitnil,reservationstatus"`
}

// Apply merges the present fields into r
func (p ReservationPatch) Apply(r *Reservation) {
	if p.CustomerName != nil {
		r.CustomerName = *p.CustomerName
	}
	if p.CustomerPhone != nil {
		r.CustomerPhone = *p.CustomerPhone
	}
	p.CustomerEmail.apply(&r.CustomerEmail)
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Time != nil {
		r.Time = *p.Time
	}
	if p.Guests != nil {
		r.Guests = *p.Guests
	}
	if p.EventType != nil {
		r.EventType = *p.EventType
	}
	if p.TableID != nil {
		r.TableID = *p.TableID
	}
	p.Notes.apply(&r.Notes)
	if p.Status != nil {
		r.Status = *p.Status
	}
}

// ReservationFilter narrows a reservation listing. CustomerName matches exactly when set.
type ReservationFilter struct {
	CustomerName string
}
