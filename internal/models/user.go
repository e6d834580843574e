package models

import (
	"time"
)

// User represents an account that can sign in to the site or the back office
type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"` // Never expose in JSON
	Name         string    `db:"name" json:"name"`
	Email        *string   `db:"email" json:"email"`
	Phone        *string   `db:"phone" json:"phone"`
	IsAdmin      bool      `db:"is_admin" json:"isAdmin"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// LoginRequest is the body of a login call
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the body of a registration call
type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=6"`
	Name     string  `json:"name" validate:"required,max=100"`
	Email    *string `json:"email" validate:"omitempty,optemail"`
	Phone    *string `json:"phone"`
}

// AuthResponse is returned by login and register
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token,omitempty"`
}
