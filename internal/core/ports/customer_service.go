package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/storefront/ecommerce-services/internal/core/domain"
)

// RegisterCustomerInput carries the fields of a new account.
type RegisterCustomerInput struct {
	FullName      string  `json:"full_name" validate:"required,min=1"`
	Username      string  `json:"username" validate:"required,min=1,username"`
	Password      string  `json:"password" validate:"required,min=6"`
	Age           int     `json:"age" validate:"required,min=1"`
	Address       string  `json:"address" validate:"required"`
	Gender        *string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	MaritalStatus *string `json:"marital_status" validate:"omitempty,oneof=Single Married Divorced Widowed"`
}

// UpdateCustomerInput is a partial profile update. Nil fields are left alone.
type UpdateCustomerInput struct {
	FullName      *string `json:"full_name" validate:"omitempty,min=1"`
	Password      *string `json:"password" validate:"omitempty,min=6"`
	Age           *int    `json:"age" validate:"omitempty,min=1"`
	Address       *string `json:"address"`
	Gender        *string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	MaritalStatus *string `json:"marital_status" validate:"omitempty,oneof=Single Married Divorced Widowed"`
}

// WalletInput is a charge or deduct request. IdempotencyKey is optional.
type WalletInput struct {
	Username       string
	Amount         *decimal.Decimal
	IdempotencyKey string
}

// WalletResult is the outcome of a charge or deduct.
type WalletResult struct {
	Balance decimal.Decimal
	// Replayed is true when the Idempotency-Key matched an operation that was
	// already applied; the balance is the one recorded at that time.
	Replayed bool
}

// CustomerService defines the account and wallet use cases.
type CustomerService interface {
	Register(ctx context.Context, in RegisterCustomerInput) (uint, error)
	Update(ctx context.Context, username string, in UpdateCustomerInput) error
	Delete(ctx context.Context, username string) error
	Get(ctx context.Context, username string) (*domain.Customer, error)
	GetByID(ctx context.Context, id uint) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)

	Charge(ctx context.Context, in WalletInput) (*WalletResult, error)
	Deduct(ctx context.Context, in WalletInput) (*WalletResult, error)
	ListTransactions(ctx context.Context, username string, limit int) ([]domain.LedgerEntry, error)

	// Login returns a signed token for valid credentials.
	Login(ctx context.Context, username, password string) (string, error)
}
