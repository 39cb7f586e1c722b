package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/storefront/ecommerce-services/internal/core/domain"
)

type SaleRepository interface {
	Create(ctx context.Context, s *domain.Sale) error
	FindByID(ctx context.Context, id uint) (*domain.Sale, error)
	List(ctx context.Context) ([]domain.Sale, error)
	Update(ctx context.Context, s *domain.Sale) error
	Delete(ctx context.Context, id uint) error
}

// CreateSaleInput uses pointers so an absent field can be told apart from a
// zero value.
type CreateSaleInput struct {
	CustomerID *uint            `json:"customer_id"`
	ProductID  *uint            `json:"product_id"`
	Quantity   *int             `json:"quantity" validate:"omitempty,gt=0"`
	TotalPrice *decimal.Decimal `json:"total_price" validate:"omitempty,gte=0"`
}

type UpdateSaleInput struct {
	CustomerID *uint            `json:"customer_id"`
	ProductID  *uint            `json:"product_id"`
	Quantity   *int             `json:"quantity" validate:"omitempty,gt=0"`
	TotalPrice *decimal.Decimal `json:"total_price" validate:"omitempty,gte=0"`
}

type SaleService interface {
	Create(ctx context.Context, in CreateSaleInput) (*domain.Sale, error)
	Get(ctx context.Context, id uint) (*domain.Sale, error)
	List(ctx context.Context) ([]domain.Sale, error)
	Update(ctx context.Context, id uint, in UpdateSaleInput) (*domain.Sale, error)
	Delete(ctx context.Context, id uint) error
}
