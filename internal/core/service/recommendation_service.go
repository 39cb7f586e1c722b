package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storefront/ecommerce-services/internal/core/domain"
	"github.com/storefront/ecommerce-services/internal/core/ports"
	"github.com/storefront/ecommerce-services/internal/core/recommend"
)

// RecommendationService scores the full review set on every call and joins
// the result with catalog details.
type RecommendationService struct {
	reviews  ports.ReviewRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewRecommendationService(reviews ports.ReviewRepository, products ports.ProductRepository, logger zerolog.Logger) *RecommendationService {
	return &RecommendationService{reviews: reviews, products: products, logger: logger}
}

// Recommend returns up to topN products for customerID, best first. Scored
// products missing from the catalog are skipped.
func (s *RecommendationService) Recommend(ctx context.Context, customerID uint, topN int) ([]domain.ScoredProduct, error) {
	reviews, err := s.reviews.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	recs := recommend.Score(reviews, customerID, topN)
	if len(recs) == 0 {
		return []domain.ScoredProduct{}, nil
	}

	ids := make([]uint, len(recs))
	for i, r := range recs {
		ids[i] = r.ProductID
	}
	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	byID := make(map[uint]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := make([]domain.ScoredProduct, 0, len(recs))
	for _, r := range recs {
		p, ok := byID[r.ProductID]
		if !ok {
			s.logger.Debug().Uint("product_id", r.ProductID).Msg("recommended product missing from catalog")
			continue
		}
		out = append(out, domain.ScoredProduct{Product: p, Score: r.Score})
	}
	return out, nil
}
