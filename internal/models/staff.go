package models

import "time"

// Staff is a member of the restaurant team
type Staff struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Role      string    `db:"role" json:"role"`
	Phone     *string   `db:"phone" json:"phone"`
	Email     *string   `db:"email" json:"email"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// StaffRequest is used for staff creation
type StaffRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Role     string  `json:"role" validate:"required,max=50"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" validate:"omitempty,optemail"`
	IsActive *bool   `json:"isActive"`
}

// StaffPatch carries the fields of a partial staff update
type StaffPatch struct {
	Name     *string        `json:"name" validate:"omitnil,min=1,max=100"`
	Role     *string        `json:"role" validate:"omitnil,min=1,max=50"`
	Phone    NullableString `json:"phone"`
	Email    NullableString `json:"email" validate:"omitempty,optemail"`
	IsActive *bool          `json:"isActive"`
}

// Apply merges the present fields into s
func (p StaffPatch) Apply(s *Staff) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Role != nil {
		s.Role = *p.Role
	}
	p.Phone.apply(&s.Phone)
	p.Email.apply(&s.Email)
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
}

// StaffFilter narrows a staff listing
type StaffFilter struct {
	IncludeInactive bool
}
