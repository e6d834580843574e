// Package session tracks the signed-in user on the client and mirrors it into
// local slots.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/qanyare/restaurant-service/internal/localstore"
	"github.com/qanyare/restaurant-service/internal/models"
)

// Slot keys
const (
	UserKey  = "qanyare-user"
	AdminKey = "qanyare-admin"
	TokenKey = "qanyare-token"
)

// Authenticator performs the login call; satisfied by *client.Client
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
}

// Notifier shows short messages to the user
type Notifier interface {
	Notify(message string)
}

// Session is the current user, if any
type Session struct {
	mu       sync.RWMutex
	user     *models.User
	isAdmin  bool
	token    string
	store    localstore.Store
	auth     Authenticator
	notifier Notifier
}

// New restores the session from store. notifier may be nil.
func New(store localstore.Store, auth Authenticator, notifier Notifier) *Session {
	s := &Session{store: store, auth: auth, notifier: notifier}

	var user models.User
	found, err := store.Get(UserKey, &user)
	if err != nil {
		slog.Warn("ignoring unreadable session slot", "slot", UserKey, "error", err)
		return s
	}
	if !found {
		return s
	}
	s.user = &user

	if _, err := store.Get(AdminKey, &s.isAdmin); err != nil {
		s.isAdmin = false
	}
	if _, err := store.Get(TokenKey, &s.token); err != nil {
		s.token = ""
	}
	return s
}

// Login signs in and stores the user. On failure the user is told and the
// session is left as it was.
func (s *Session) Login(ctx context.Context, username, password string) (*models.User, error) {
	resp, err := s.auth.Login(ctx, username, password)
	if err != nil {
		s.notify("Login failed: check your username and password")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(resp); err != nil {
		return nil, err
	}
	s.user = resp.User
	s.isAdmin = resp.User.IsAdmin
	s.token = resp.Token

	s.notify("Welcome, " + resp.User.Name)
	return resp.User, nil
}

// Logout forgets the user in memory and in the slots
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.isAdmin = false
	s.token = ""

	var errs []error
	for _, key := range []string{UserKey, AdminKey, TokenKey} {
		errs = append(errs, s.store.Delete(key))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// User returns the signed-in user or nil
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAdmin
}

// Token returns the bearer token of the signed-in user
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// persist writes the new session to the slots. When a write fails the slots
// are put back to the session still held in memory.
func (s *Session) persist(resp *models.AuthResponse) error {
	if err := s.writeSlots(resp.User, resp.User.IsAdmin, resp.Token); err != nil {
		if rerr := s.restoreSlots(); rerr != nil {
			err = errors.Join(err, fmt.Errorf("restore session: %w", rerr))
		}
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *Session) writeSlots(user *models.User, isAdmin bool, token string) error {
	slots := []struct {
		key   string
		value any
	}{
		{UserKey, user},
		{AdminKey, isAdmin},
		{TokenKey, token},
	}
	for _, slot := range slots {
		if err := s.store.Set(slot.key, slot.value); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) restoreSlots() error {
	if s.user == nil {
		return errors.Join(s.store.Delete(UserKey), s.store.Delete(AdminKey), s.store.Delete(TokenKey))
	}
	return s.writeSlots(s.user, s.isAdmin, s.token)
}

func (s *Session) notify(message string) {
	if s.notifier != nil {
		s.notifier.Notify(message)
	}
}
