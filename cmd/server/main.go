package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qanyare/restaurant-service/internal/config"
	"github.com/qanyare/restaurant-service/internal/db"
	"github.com/qanyare/restaurant-service/internal/db/repository"
	"github.com/qanyare/restaurant-service/internal/events"
	"github.com/qanyare/restaurant-service/internal/fixtures"
	"github.com/qanyare/restaurant-service/internal/logging"
	"github.com/qanyare/restaurant-service/internal/metrics"
	"github.com/qanyare/restaurant-service/internal/notify"
	"github.com/qanyare/restaurant-service/internal/router"
	"github.com/qanyare/restaurant-service/internal/service"
	"github.com/qanyare/restaurant-service/internal/storage"
	"github.com/qanyare/restaurant-service/internal/storage/memory"
	"github.com/qanyare/restaurant-service/internal/websockets"
)

func main() {
	// Load configuration
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("server exited properly")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	repos, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	// Initialize event sinks
	hub := websockets.NewHub()
	go hub.Run(ctx)

	sinks := events.NewMulti(logger, hub)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		sinks.Add(m)
	}

	if cfg.RabbitMQ.URL != "" {
		mq, err := notify.DialRabbitMQ(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			return err
		}
		defer mq.Close()
		sinks.Add(mq)
		logger.Info("publishing events to rabbitmq", "exchange", cfg.RabbitMQ.Exchange)
	}

	if cfg.Telegram.Token != "" {
		tg, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			return err
		}
		sinks.Add(tg)
		logger.Info("notifying telegram chat", "chat_id", cfg.Telegram.ChatID)
	}

	// Sinks are fed from a queue so requests never wait on delivery. The
	// queue outlives the HTTP server and drains after it has shut down.
	publisher := events.NewQueue(logger, sinks, cfg.Events.QueueSize, cfg.Events.DeliveryTimeout)
	queueCtx, stopQueue := context.WithCancel(context.Background())
	go publisher.Run(queueCtx)
	defer func() {
		stopQueue()
		select {
		case <-publisher.Done():
		case <-time.After(cfg.Server.ShutdownTimeout):
			logger.Warn("event queue did not drain before shutdown timeout")
		}
	}()

	svc := service.New(repos, service.Options{
		JWT: service.JWTConfig{
			Secret:    cfg.JWT.Secret,
			ExpiresIn: cfg.JWT.ExpiresIn,
		},
		BcryptCost:         cfg.Auth.BcryptCost,
		EnforceTransitions: cfg.Orders.EnforceTransitions,
		Publisher:          publisher,
	})

	if cfg.Storage.Seed {
		seeded, err := fixtures.Seed(ctx, repos, svc.Auth.HashPassword)
		if err != nil {
			return err
		}
		if seeded {
			logger.Info("seeded starter data", "admin", fixtures.AdminUsername)
		}
	}

	// Initialize router
	r := router.New(svc, router.Options{
		ProtectAdminRoutes: cfg.Auth.ProtectAdminRoutes,
		LoginRatePerMinute: cfg.Auth.LoginRatePerMinute,
		HealthCheck:        repos.HealthCheck,
		Hub:                hub,
		Metrics:            m,
		Logger:             logger,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "address", cfg.Server.Address, "storage", cfg.Storage.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for shutdown signal
	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// openStorage builds the configured backend; postgres is migrated first
func openStorage(ctx context.Context, cfg *config.Config) (*storage.Repositories, func(), error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		database, err := db.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.Migrate(cfg.Database); err != nil {
			_ = database.Close()
			return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		return repository.NewRepositories(database), func() { _ = database.Close() }, nil
	default:
		return memory.New(), func() {}, nil
	}
}
