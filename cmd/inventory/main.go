package main

import (
	"context"
	"fmt"
	"os"

	"github.com/storefront/ecommerce-services/internal/api"
	"github.com/storefront/ecommerce-services/internal/app"
	"github.com/storefront/ecommerce-services/internal/core/service"
	"github.com/storefront/ecommerce-services/internal/infrastructure/db/postgres"
)

func main() {
	err := app.Run(app.Service{
		Name:        "inventory",
		DefaultPort: "5002",
		Models:      []any{postgres.ProductModel},
		Setup: func(ctx context.Context, rt *app.Runtime) error {
			svc := service.NewProductService(postgres.NewProductRepository(rt.DB), rt.Logger)
			api.RegisterProductRoutes(rt.Echo, svc)
			return nil
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
