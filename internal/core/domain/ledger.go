package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerOperation names the direction of a wallet movement.
type LedgerOperation string

const (
	LedgerCharge LedgerOperation = "charge"
	LedgerDeduct LedgerOperation = "deduct"
)

// LedgerEntry is the audit record of one applied wallet operation.
type LedgerEntry struct {
	ID             string          `json:"id"`
	CustomerID     uint            `json:"customer_id"`
	Username       string          `json:"username"`
	Operation      LedgerOperation `json:"operation"`
	Amount         decimal.Decimal `json:"amount"`
	BalanceAfter   decimal.Decimal `json:"balance_after"`
	IdempotencyKey string          `json:"idempotency_key,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
