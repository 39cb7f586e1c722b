// Package app holds the bootstrap shared by every service binary: .env and
// environment configuration, logging, the relational store, the HTTP server
// and graceful shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/storefront/ecommerce-services/internal/api"
	"github.com/storefront/ecommerce-services/internal/infrastructure/config"
	"github.com/storefront/ecommerce-services/internal/infrastructure/db/postgres"
	infrahttp "github.com/storefront/ecommerce-services/internal/infrastructure/http"
	"github.com/storefront/ecommerce-services/internal/infrastructure/http/handlers"
	"github.com/storefront/ecommerce-services/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Service describes one binary.
type Service struct {
	Name        string
	DefaultPort string
	// Models are migrated with gorm AutoMigrate before Setup runs.
	Models []any
	// Setup builds the service graph and registers its routes.
	Setup func(ctx context.Context, rt *Runtime) error
}

// Runtime is what Setup receives.
type Runtime struct {
	// Name is the service name, also reported to Mongo and Redis as the
	// client name.
	Name   string
	Config *config.Config
	Logger zerolog.Logger
	DB     *gorm.DB
	Echo   *echo.Echo

	checks map[string]handlers.Check
	onStop []func(context.Context) error
}

// AddCheck adds a dependency to GET /health/ready.
func (rt *Runtime) AddCheck(name string, check handlers.Check) {
	rt.checks[name] = check
}

// OnShutdown registers fn to run after the HTTP server stopped. Functions run
// in reverse registration order.
func (rt *Runtime) OnShutdown(fn func(context.Context) error) {
	rt.onStop = append(rt.onStop, fn)
}

// Run starts svc and blocks until SIGINT or SIGTERM, then shuts down.
func Run(svc Service) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(svc.DefaultPort)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: svc.Name,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			log.Warn().Err(err).Msg("closing postgres pool")
		}
	}()

	if err := postgres.Migrate(db, svc.Models...); err != nil {
		return err
	}
	log.Info().Msg("database connected and migrated")

	rt := &Runtime{
		Name:   svc.Name,
		Config: cfg,
		Logger: log,
		DB:     db,
		checks: map[string]handlers.Check{"postgres": handlers.PostgresCheck(db)},
	}
	rt.Echo = infrahttp.NewRouter(infrahttp.Options{
		Logger:       log,
		ErrorHandler: api.NewHTTPErrorHandler(log),
		Liveness:     handlers.PostgresCheck(db),
		Readiness:    rt.checks,
	})

	if err := svc.Setup(ctx, rt); err != nil {
		return fmt.Errorf("setup %s: %w", svc.Name, err)
	}

	return serve(ctx, rt, ":"+cfg.Port)
}

func serve(ctx context.Context, rt *Runtime, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		rt.Logger.Info().Str("addr", addr).Msg("server started")
		if err := rt.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		rt.Logger.Info().Msg("shutdown signal received")
	case serveErr = <-errCh:
		if serveErr != nil {
			rt.Logger.Error().Err(serveErr).Msg("server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := rt.Echo.Shutdown(shutdownCtx); err != nil {
		rt.Logger.Error().Err(err).Msg("http shutdown")
	}
	for i := len(rt.onStop) - 1; i >= 0; i-- {
		if err := rt.onStop[i](shutdownCtx); err != nil {
			rt.Logger.Warn().Err(err).Msg("shutdown hook failed")
		}
	}

	rt.Logger.Info().Msg("server stopped")
	return serveErr
}
