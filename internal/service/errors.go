package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCredentials is returned when a username or password does not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken is returned when registering an existing username
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidReference is returned when a record points at a missing record
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrInUse is returned when deleting a record other records still point at
	ErrInUse = errors.New("record is still in use")
)

// TransitionError rejects a status change outside the lifecycle graph
type TransitionError struct {
	Entity  string
	From    string
	To      string
	Allowed []string
	// Final is set when From has no outgoing transitions
	Final bool
}

func (e *TransitionError) Error() string {
	if e.Final {
		return fmt.Sprintf("%s status %s is final and cannot change to %s", e.Entity, e.From, e.To)
	}
	return fmt.Sprintf("%s status cannot change from %s to %s (allowed: %s)",
		e.Entity, e.From, e.To, strings.Join(e.Allowed, ", "))
}
