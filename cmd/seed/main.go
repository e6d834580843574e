// Command seed migrates the configured PostgreSQL database and loads the
// starter menu, tables, staff, reviews and admin account.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/qanyare/restaurant-service/internal/config"
	"github.com/qanyare/restaurant-service/internal/db"
	"github.com/qanyare/restaurant-service/internal/db/repository"
	"github.com/qanyare/restaurant-service/internal/fixtures"
	"github.com/qanyare/restaurant-service/internal/logging"
	"github.com/qanyare/restaurant-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		slog.Error("failed to configure logging", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	database, err := db.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(cfg.Database); err != nil {
		logger.Error("failed to run database migrations", "error", err)
		os.Exit(1)
	}

	repos := repository.NewRepositories(database)
	auth := service.NewAuthService(repos.User, service.JWTConfig{Secret: cfg.JWT.Secret}, cfg.Auth.BcryptCost)

	seeded, err := fixtures.Seed(ctx, repos, auth.HashPassword)
	if err != nil {
		logger.Error("failed to seed database", "error", err)
		os.Exit(1)
	}
	if !seeded {
		logger.Info("database already has data, nothing to do")
		return
	}
	logger.Info("database seeded", "admin", fixtures.AdminUsername)
}
