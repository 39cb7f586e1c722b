package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/storefront/ecommerce-services/internal/core/domain"
	"github.com/storefront/ecommerce-services/internal/core/ports"
	"github.com/storefront/ecommerce-services/internal/core/validation"
)

type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	p := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       domain.RoundMoney(*in.Price),
		Quantity:    *in.Quantity,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("product_id", p.ID).Str("name", p.Name).Msg("product created")
	return p, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// Update applies the present fields of in; absent ones keep their value.
func (s *ProductService) Update(ctx context.Context, id uint, in ports.UpdateProductInput) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	domain.ProductPatch{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
	}.Apply(p)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("product_id", id).Msg("product deleted")
	return nil
}
