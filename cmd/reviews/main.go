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
		Name:        "reviews",
		DefaultPort: "5004",
		Models:      []any{postgres.ReviewModel},
		Setup: func(ctx context.Context, rt *app.Runtime) error {
			svc := service.NewReviewService(postgres.NewReviewRepository(rt.DB), rt.Logger)
			api.RegisterReviewRoutes(rt.Echo, svc)
			return nil
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
