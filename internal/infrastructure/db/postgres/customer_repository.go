package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/storefront/ecommerce-services/internal/core/domain"
)

// CustomerRepository implements ports.CustomerRepository.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	m := newCustomerModel(c)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
	c.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *CustomerRepository) FindByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (*domain.Customer, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *CustomerRepository) findOne(ctx context.Context, query string, arg any) (*domain.Customer, error) {
	var m customerModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return m.toDomain(), nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var rows []customerModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	out := make([]domain.Customer, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].toDomain())
	}
	return out, nil
}

// Update writes the profile columns of c. The wallet balance is owned by
// Credit and Debit and is never written here.
func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	res := r.db.WithContext(ctx).
		Model(&customerModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"full_name":      c.FullName,
			"password_hash":  c.PasswordHash,
			"age":            c.Age,
			"address":        c.Address,
			"gender":         c.Gender,
			"marital_status": c.MaritalStatus,
		})
	if res.Error != nil {
		return fmt.Errorf("update customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, username string) error {
	res := r.db.WithContext(ctx).Where("username = ?", username).Delete(&customerModel{})
	if res.Error != nil {
		return fmt.Errorf("delete customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// Credit adds amount to the balance in one UPDATE so concurrent credits are
// never lost.
func (r *CustomerRepository) Credit(ctx context.Context, username string, amount decimal.Decimal) (*domain.Customer, error) {
	var out *domain.Customer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&customerModel{}).
			Where("username = ?", username).
			UpdateColumn("wallet_balance", gorm.Expr("wallet_balance + ?", amount))
		if res.Error != nil {
			return fmt.Errorf("credit wallet: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrCustomerNotFound
		}

		var m customerModel
		if err := tx.Where("username = ?", username).First(&m).Error; err != nil {
			return fmt.Errorf("read balance: %w", err)
		}
		out = m.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Debit subtracts amount only when the stored balance covers it. The guard
// lives in the WHERE clause, so two concurrent debits can never take the
// balance below zero.
func (r *CustomerRepository) Debit(ctx context.Context, username string, amount decimal.Decimal) (*domain.Customer, error) {
	var out *domain.Customer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&customerModel{}).
			Where("username = ? AND wallet_balance >= ?", username, amount).
			UpdateColumn("wallet_balance", gorm.Expr("wallet_balance - ?", amount))
		if res.Error != nil {
			return fmt.Errorf("debit wallet: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			var n int64
			if err := tx.Model(&customerModel{}).Where("username = ?", username).Count(&n).Error; err != nil {
				return fmt.Errorf("debit wallet: %w", err)
			}
			if n == 0 {
				return domain.ErrCustomerNotFound
			}
			return domain.ErrInsufficientFunds
		}

		var m customerModel
		if err := tx.Where("username = ?", username).First(&m).Error; err != nil {
			return fmt.Errorf("read balance: %w", err)
		}
		out = m.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
