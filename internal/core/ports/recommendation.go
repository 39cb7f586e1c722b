package ports

import (
	"context"

	"github.com/storefront/ecommerce-services/internal/core/domain"
)

// RecommendationService ranks products for a customer from the review set.
type RecommendationService interface {
	Recommend(ctx context.Context, customerID uint, topN int) ([]domain.ScoredProduct, error)
}
