package ports

import (
	"context"

	"github.com/storefront/ecommerce-services/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) error
	FindByID(ctx context.Context, id uint) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID uint) ([]domain.Review, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]domain.Review, error)
	// ListAll returns every review ordered by id ascending.
	ListAll(ctx context.Context) ([]domain.Review, error)
	Update(ctx context.Context, r *domain.Review) error
	Delete(ctx context.Context, id uint) error
}

type CreateReviewInput struct {
	ProductID  *uint   `json:"product_id" validate:"required"`
	CustomerID *uint   `json:"customer_id" validate:"required"`
	Rating     *int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    *string `json:"comment" validate:"omitempty,max=500"`
}

type UpdateReviewInput struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=500"`
}

// ModerationResult echoes the reviewed record and the applied decision.
type ModerationResult struct {
	Review *domain.Review
	Action domain.ModerationAction
}

type ReviewService interface {
	Create(ctx context.Context, in CreateReviewInput) (*domain.Review, error)
	Get(ctx context.Context, id uint) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID uint) ([]domain.Review, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]domain.Review, error)
	Update(ctx context.Context, id uint, in UpdateReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, id uint) error
	Moderate(ctx context.Context, id uint, action string) (*ModerationResult, error)
}
