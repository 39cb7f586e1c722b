package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/storefront/ecommerce-services/internal/core/domain"
)

// ReviewRepository implements ports.ReviewRepository.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := newReviewModel(rv)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	rv.ID = m.ID
	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uint) (*domain.Review, error) {
	var m reviewModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID uint) ([]domain.Review, error) {
	return r.list(ctx, r.db.Where("product_id = ?", productID))
}

func (r *ReviewRepository) ListByCustomer(ctx context.Context, customerID uint) ([]domain.Review, error) {
	return r.list(ctx, r.db.Where("customer_id = ?", customerID))
}

func (r *ReviewRepository) ListAll(ctx context.Context) ([]domain.Review, error) {
	return r.list(ctx, r.db)
}

func (r *ReviewRepository) list(ctx context.Context, q *gorm.DB) ([]domain.Review, error) {
	var rows []reviewModel
	if err := q.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	out := make([]domain.Review, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].toDomain())
	}
	return out, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	res := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("id = ?", rv.ID).
		Updates(map[string]any{
			"rating":     rv.Rating,
			"comment":    rv.Comment,
			"updated_at": rv.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("update review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&reviewModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
