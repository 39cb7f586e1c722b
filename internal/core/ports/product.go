package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/storefront/ecommerce-services/internal/core/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id uint) (*domain.Product, error)
	// FindByIDs returns the products that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uint) ([]domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id uint) error
}

type CreateProductInput struct {
	Name        string           `json:"name" validate:"required"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required,gte=0"`
	Quantity    *int             `json:"quantity" validate:"required,gte=0"`
}

type UpdateProductInput struct {
	Name        *string          `json:"name" validate:"omitempty,min=1"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	Quantity    *int             `json:"quantity" validate:"omitempty,gte=0"`
}

type ProductService interface {
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id uint) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id uint, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id uint) error
}
