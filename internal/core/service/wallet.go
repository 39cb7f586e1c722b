package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/ecommerce-services/internal/core/domain"
	"github.com/storefront/ecommerce-services/internal/core/ports"
)

// IdempotencyStore remembers the balance produced by an applied wallet
// operation (Redis).
type IdempotencyStore interface {
	Lookup(ctx context.Context, operation, username, key string) (decimal.Decimal, bool, error)
	Save(ctx context.Context, operation, username, key string, balance decimal.Decimal) error
}

// LedgerPublisher hands audit entries to the asynchronous ledger writer.
type LedgerPublisher interface {
	Enqueue(ctx context.Context, entry *domain.LedgerEntry) error
}

type walletApply func(ctx context.Context, username string, amount decimal.Decimal) (*domain.Customer, error)

// Charge credits the wallet and returns the new balance.
func (s *CustomerService) Charge(ctx context.Context, in ports.WalletInput) (*ports.WalletResult, error) {
	return s.applyWallet(ctx, domain.LedgerCharge, in, s.repo.Credit)
}

// Deduct debits the wallet when the balance covers the amount.
func (s *CustomerService) Deduct(ctx context.Context, in ports.WalletInput) (*ports.WalletResult, error) {
	return s.applyWallet(ctx, domain.LedgerDeduct, in, s.repo.Debit)
}

func (s *CustomerService) applyWallet(ctx context.Context, op domain.LedgerOperation, in ports.WalletInput, apply walletApply) (*ports.WalletResult, error) {
	// 1. Amount check happens before any store is touched.
	// Sub-cent amounts are rejected rather than rounded.
	if in.Amount == nil || !in.Amount.IsPositive() || !domain.HasMoneyScale(*in.Amount) {
		return nil, domain.ErrInvalidAmount
	}
	amount := *in.Amount

	// 2. Replay a previously applied request. A store failure is not fatal.
	if in.IdempotencyKey != "" {
		balance, seen, err := s.idem.Lookup(ctx, string(op), in.Username, in.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Str("username", in.Username).Msg("idempotency lookup failed, applying anyway")
		} else if seen {
			s.logger.Debug().Str("username", in.Username).Str("operation", string(op)).Msg("wallet operation replayed")
			return &ports.WalletResult{Balance: balance, Replayed: true}, nil
		}
	}

	// 3. Atomic balance change.
	c, err := apply(ctx, in.Username, amount)
	if err != nil {
		return nil, err
	}

	if in.IdempotencyKey != "" {
		if err := s.idem.Save(ctx, string(op), in.Username, in.IdempotencyKey, c.WalletBalance); err != nil {
			s.logger.Warn().Err(err).Str("username", in.Username).Msg("failed to record idempotency key")
		}
	}

	// 4. Audit trail (non-fatal on failure).
	entry := &domain.LedgerEntry{
		ID:             uuid.NewString(),
		CustomerID:     c.ID,
		Username:       c.Username,
		Operation:      op,
		Amount:         amount,
		BalanceAfter:   c.WalletBalance,
		IdempotencyKey: in.IdempotencyKey,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.publisher.Enqueue(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("username", in.Username).Msg("failed to enqueue ledger entry")
	}

	s.logger.Info().
		Str("username", in.Username).
		Str("operation", string(op)).
		Str("amount", amount.StringFixed(domain.MoneyPlaces)).
		Str("balance", c.WalletBalance.StringFixed(domain.MoneyPlaces)).
		Msg("wallet updated")

	return &ports.WalletResult{Balance: c.WalletBalance}, nil
}

// ListTransactions returns the newest ledger entries of an account. limit
// falls back to 20 when not positive and is capped at 100.
func (s *CustomerService) ListTransactions(ctx context.Context, username string, limit int) ([]domain.LedgerEntry, error) {
	if _, err := s.repo.FindByUsername(ctx, username); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = defaultTransactionLimit
	case limit > maxTransactionLimit:
		limit = maxTransactionLimit
	}
	return s.ledger.ListByUsername(ctx, username, int64(limit))
}
