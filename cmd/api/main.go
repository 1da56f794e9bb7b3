package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"leadgenie_backend/internal/admin"
	"leadgenie_backend/internal/auth"
	"leadgenie_backend/internal/config"
	"leadgenie_backend/internal/email"
	"leadgenie_backend/internal/events"
	apphttp "leadgenie_backend/internal/http"
	"leadgenie_backend/internal/http/router"
	"leadgenie_backend/internal/leads"
	"leadgenie_backend/internal/notification"
	"leadgenie_backend/internal/scheduler"
	"leadgenie_backend/platform/db"
	"leadgenie_backend/platform/logger"
	"leadgenie_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg.DatabaseURL, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	eventBus := events.NewInMemoryBus(log)
	val := validator.New()

	sender, err := email.NewSender(cfg)
	if err != nil {
		log.Error("failed to initialize email sender", "error", err)
		panic("failed to initialize email sender: " + err.Error())
	}

	// The queue is optional: without Redis, leads are still qualified
	// synchronously through the qualify endpoints.
	var enqueuer scheduler.QualificationEnqueuer
	schedClient, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Warn("scheduler client unavailable, background qualification disabled", "error", err)
	} else {
		enqueuer = schedClient
		defer schedClient.Close()
	}

	authModule := auth.NewModule(pool, cfg, log, val)
	leadsModule, err := leads.NewModule(pool, eventBus, enqueuer, val, cfg, log)
	if err != nil {
		log.Error("failed to initialize leads module", "error", err)
		panic("failed to initialize leads module: " + err.Error())
	}

	notificationModule := notification.New(sender, leadsModule.Service(), cfg, log)
	notificationModule.RegisterHandlers(eventBus)

	adminModule := admin.NewModule(pool, val, log)

	engine := router.New(cfg, router.Options{
		Logger:         log,
		Health:         pool,
		AuthMiddleware: authModule.Middleware(),
		Modules:        []apphttp.Module{authModule, leadsModule, adminModule},
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, delay time.Duration, fn func() error) error {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		log.Warn("retrying", "operation", name, "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}
