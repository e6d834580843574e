// Package clienttest starts an in-process API server for client-side tests.
package clienttest

import (
	"context"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/qanyare/restaurant-service/internal/fixtures"
	"github.com/qanyare/restaurant-service/internal/router"
	"github.com/qanyare/restaurant-service/internal/service"
	"github.com/qanyare/restaurant-service/internal/storage"
	"github.com/qanyare/restaurant-service/internal/storage/memory"
)

// Server is a running API over the memory backend, seeded with the fixtures
type Server struct {
	*httptest.Server
	Repos    *storage.Repositories
	Services *service.Services
}

// New starts a seeded server that is closed when the test ends
func New(t *testing.T, opts router.Options) *Server {
	t.Helper()

	repos := memory.New()
	svc := service.New(repos, service.Options{
		JWT:                service.JWTConfig{Secret: "clienttest", ExpiresIn: 1},
		BcryptCost:         bcrypt.MinCost,
		EnforceTransitions: true,
	})
	if _, err := fixtures.Seed(context.Background(), repos, svc.Auth.HashPassword); err != nil {
		t.Fatalf("seed fixtures: %v", err)
	}

	srv := httptest.NewServer(router.New(svc, opts))
	t.Cleanup(srv.Close)

	return &Server{Server: srv, Repos: repos, Services: svc}
}
