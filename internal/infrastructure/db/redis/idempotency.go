package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore remembers the balance produced by a wallet operation so a
// retried request with the same key returns it instead of applying twice.
// Key format: wallet:idem:<operation>:<len(username)>:<username>:<key>. The
// length prefix keeps a colon in the username from shifting the boundary
// with the client-chosen key.
type IdempotencyStore struct {
	client *redis.Client
}

func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the recorded balance and true when the key was already
// applied.
func (s *IdempotencyStore) Lookup(ctx context.Context, operation, username, key string) (decimal.Decimal, bool, error) {
	raw, err := s.client.Get(ctx, idempotencyKey(operation, username, key)).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("idempotency lookup: %w", err)
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("idempotency lookup: corrupt value %q: %w", raw, err)
	}
	return balance, true, nil
}

// Save records the balance produced under key. The record expires after 24h.
func (s *IdempotencyStore) Save(ctx context.Context, operation, username, key string, balance decimal.Decimal) error {
	if err := s.client.Set(ctx, idempotencyKey(operation, username, key), balance.String(), idempotencyTTL).Err(); err != nil {
		return fmt.Errorf("idempotency save: %w", err)
	}
	return nil
}

func idempotencyKey(operation, username, key string) string {
	return fmt.Sprintf("wallet:idem:%s:%d:%s:%s", operation, len(username), username, key)
}
