package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/storefront/ecommerce-services/internal/core/domain"
)

// CustomerRepository defines persistence operations for customer accounts.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	FindByUsername(ctx context.Context, username string) (*domain.Customer, error)
	FindByID(ctx context.Context, id uint) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, username string) error

	// Credit atomically adds amount to the wallet and returns the account as
	// stored after the update.
	Credit(ctx context.Context, username string, amount decimal.Decimal) (*domain.Customer, error)
	// Debit atomically subtracts amount when the balance covers it. It
	// returns domain.ErrInsufficientFunds otherwise and leaves the balance
	// untouched.
	Debit(ctx context.Context, username string, amount decimal.Decimal) (*domain.Customer, error)
}

// LedgerRepository persists the wallet audit trail.
type LedgerRepository interface {
	Insert(ctx context.Context, entry *domain.LedgerEntry) error
	// ListByUsername returns at most limit entries, newest first.
	ListByUsername(ctx context.Context, username string, limit int64) ([]domain.LedgerEntry, error)
}
