package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/ecommerce-services/internal/core/domain"
	"github.com/storefront/ecommerce-services/internal/core/ports"
	"github.com/storefront/ecommerce-services/internal/core/validation"
)

// SaleService records sales. Customer and product ids are stored as given;
// stock is not adjusted.
type SaleService struct {
	repo   ports.SaleRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewSaleService(repo ports.SaleRepository, logger zerolog.Logger) *SaleService {
	return &SaleService{repo: repo, logger: logger, now: time.Now}
}

func (s *SaleService) Create(ctx context.Context, in ports.CreateSaleInput) (*domain.Sale, error) {
	if in.CustomerID == nil || in.ProductID == nil || in.Quantity == nil || in.TotalPrice == nil {
		return nil, domain.ErrMissingFields
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	sale := &domain.Sale{
		CustomerID: *in.CustomerID,
		ProductID:  *in.ProductID,
		Quantity:   *in.Quantity,
		TotalPrice: domain.RoundMoney(*in.TotalPrice),
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}

	s.logger.Info().
		Uint("sale_id", sale.ID).
		Uint("customer_id", sale.CustomerID).
		Uint("product_id", sale.ProductID).
		Msg("sale recorded")
	return sale, nil
}

func (s *SaleService) Get(ctx context.Context, id uint) (*domain.Sale, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SaleService) List(ctx context.Context) ([]domain.Sale, error) {
	return s.repo.List(ctx)
}

func (s *SaleService) Update(ctx context.Context, id uint, in ports.UpdateSaleInput) (*domain.Sale, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	domain.SalePatch{
		CustomerID: in.CustomerID,
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		TotalPrice: in.TotalPrice,
	}.Apply(sale)

	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *SaleService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
