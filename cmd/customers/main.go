package main

import (
	"context"
	"fmt"
	"os"

	"github.com/storefront/ecommerce-services/internal/api"
	"github.com/storefront/ecommerce-services/internal/app"
	"github.com/storefront/ecommerce-services/internal/core/service"
	"github.com/storefront/ecommerce-services/internal/infrastructure/db/mongo"
	"github.com/storefront/ecommerce-services/internal/infrastructure/db/postgres"
	"github.com/storefront/ecommerce-services/internal/infrastructure/db/redis"
	"github.com/storefront/ecommerce-services/internal/infrastructure/http/handlers"
	"github.com/storefront/ecommerce-services/internal/infrastructure/queue"
)

func main() {
	err := app.Run(app.Service{
		Name:        "customers",
		DefaultPort: "5001",
		Models:      []any{postgres.CustomerModel},
		Setup:       setup,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(ctx context.Context, rt *app.Runtime) error {
	cfg := rt.Config

	mongoClient, mongoDB, err := mongo.Connect(ctx, mongo.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		AppName:     rt.Name,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
		MinPoolSize: cfg.Mongo.MinPoolSize,
		Timeout:     cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	ledgerRepo := mongo.NewLedgerRepository(mongoDB)
	if err := ledgerRepo.EnsureIndexes(ctx); err != nil {
		rt.Logger.Warn().Err(err).Msg("ledger indexes not created")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		ClientName:   rt.Name,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		Timeout:      cfg.Redis.Timeout,
	})
	if err != nil {
		return err
	}

	// Workers outlive the signal context so in-flight requests can still
	// enqueue while the server drains.
	workerCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))
	dispatcher := queue.NewLedgerDispatcher(cfg.Ledger.Workers, ledgerRepo, rt.Logger)
	dispatcher.Start(workerCtx)

	svc := service.NewCustomerService(service.CustomerServiceDeps{
		Repo:      postgres.NewCustomerRepository(rt.DB),
		Ledger:    ledgerRepo,
		Publisher: dispatcher,
		Idem:      redis.NewIdempotencyStore(rdb),
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
	}, rt.Logger)
	api.RegisterCustomerRoutes(rt.Echo, svc, cfg.JWTSecret)

	rt.AddCheck("mongodb", handlers.MongoCheck(mongoDB))
	rt.AddCheck("redis", handlers.RedisCheck(rdb))

	rt.OnShutdown(func(ctx context.Context) error {
		return mongoClient.Disconnect(ctx)
	})
	rt.OnShutdown(func(context.Context) error {
		return rdb.Close()
	})
	rt.OnShutdown(func(context.Context) error {
		stopWorkers()
		dispatcher.Wait()
		return nil
	})
	return nil
}
