package models

import "time"

// Review is customer feedback; only approved reviews are shown publicly
type Review struct {
	ID           int64     `db:"id" json:"id"`
	CustomerName string    `db:"customer_name" json:"customerName"`
	Rating       int       `db:"rating" json:"rating"`
	Comment      string    `db:"comment" json:"comment"`
	IsApproved   bool      `db:"is_approved" json:"isApproved"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// ReviewRequest is used for review creation
type ReviewRequest struct {
	CustomerName string `json:"customerName" validate:"required,max=100"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment" validate:"required"`
	IsApproved   *bool  `json:"isApproved"`
}

// ReviewPatch carries the fields of a partial review update
type ReviewPatch struct {
	CustomerName *string `json:"customerName" validate:"omitnil,min=1,max=100"`
	Rating       *int    `json:"rating" validate:"omitnil,min=1,max=5"`
	Comment      *string `json:"comment" validate:"omitnil,min=1"`
	IsApproved   *bool   `json:"isApproved"`
}

// Apply merges the present fields into r
func (p ReviewPatch) Apply(r *Review) {
	if p.CustomerName != nil {
		r.CustomerName = *p.CustomerName
	}
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.Comment != nil {
		r.Comment = *p.Comment
	}
	if p.IsApproved != nil {
		r.IsApproved = *p.IsApproved
	}
}

// ReviewFilter narrows a review listing
type ReviewFilter struct {
	ApprovedOnly bool
}
