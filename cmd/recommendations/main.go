package main

import (
	"context"
	"fmt"
	"os"

	"github.com/storefront/ecommerce-services/internal/api"
	"github.com/storefront/ecommerce-services/internal/api/middleware"
	"github.com/storefront/ecommerce-services/internal/app"
	"github.com/storefront/ecommerce-services/internal/core/service"
	"github.com/storefront/ecommerce-services/internal/infrastructure/db/postgres"
)

func main() {
	err := app.Run(app.Service{
		Name:        "recommendations",
		DefaultPort: "5005",
		Models:      []any{postgres.ReviewModel, postgres.ProductModel},
		Setup: func(ctx context.Context, rt *app.Runtime) error {
			svc := service.NewRecommendationService(
				postgres.NewReviewRepository(rt.DB),
				postgres.NewProductRepository(rt.DB),
				rt.Logger,
			)
			api.RegisterRecommendationRoutes(rt.Echo, svc, middleware.RateLimitConfig{
				RPS:   rt.Config.Recommendation.RPS,
				Burst: rt.Config.Recommendation.Burst,
			})
			return nil
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
