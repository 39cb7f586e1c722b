package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/storefront/ecommerce-services/internal/core/domain"
)

// SaleRepository implements ports.SaleRepository.
type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) Create(ctx context.Context, s *domain.Sale) error {
	m := newSaleModel(s)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	s.ID = m.ID
	return nil
}

func (r *SaleRepository) FindByID(ctx context.Context, id uint) (*domain.Sale, error) {
	var m saleModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, fmt.Errorf("find sale: %w", err)
	}
	return m.toDomain(), nil
}

func (r *SaleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	var rows []saleModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	out := make([]domain.Sale, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].toDomain())
	}
	return out, nil
}

// Update rewrites the mutable columns; created_at is left as recorded.
func (r *SaleRepository) Update(ctx context.Context, s *domain.Sale) error {
	res := r.db.WithContext(ctx).
		Model(&saleModel{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"customer_id": s.CustomerID,
			"product_id":  s.ProductID,
			"quantity":    s.Quantity,
			"total_price": s.TotalPrice,
		})
	if res.Error != nil {
		return fmt.Errorf("update sale: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrSaleNotFound
	}
	return nil
}

func (r *SaleRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&saleModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete sale: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrSaleNotFound
	}
	return nil
}
