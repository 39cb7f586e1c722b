package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/ecommerce-services/internal/core/domain"
	"github.com/storefront/ecommerce-services/internal/core/ports"
	"github.com/storefront/ecommerce-services/internal/core/validation"
)

type ReviewService struct {
	repo   ports.ReviewRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewReviewService(repo ports.ReviewRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, logger: logger, now: time.Now}
}

// Create stores a review after checking the rating range and comment length.
func (s *ReviewService) Create(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	r := &domain.Review{
		ProductID:  *in.ProductID,
		CustomerID: *in.CustomerID,
		Rating:     *in.Rating,
		Comment:    in.Comment,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("review_id", r.ID).Uint("product_id", r.ProductID).Int("rating", r.Rating).Msg("review created")
	return r, nil
}

func (s *ReviewService) Get(ctx context.Context, id uint) (*domain.Review, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID uint) ([]domain.Review, error) {
	return s.repo.ListByProduct(ctx, productID)
}

func (s *ReviewService) ListByCustomer(ctx context.Context, customerID uint) ([]domain.Review, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *ReviewService) Update(ctx context.Context, id uint, in ports.UpdateReviewInput) (*domain.Review, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	domain.ReviewPatch{Rating: in.Rating, Comment: in.Comment}.Apply(r)
	now := s.now().UTC()
	r.UpdatedAt = &now

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *ReviewService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// Moderate records a reviewer decision. The review itself is not changed;
// the decision is echoed back with the review.
func (s *ReviewService) Moderate(ctx context.Context, id uint, action string) (*ports.ModerationResult, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a := domain.ModerationAction(action)
	if !a.Valid() {
		return nil, domain.ErrInvalidAction
	}

	s.logger.Info().Uint("review_id", id).Str("action", action).Msg("review moderated")
	return &ports.ModerationResult{Review: r, Action: a}, nil
}
