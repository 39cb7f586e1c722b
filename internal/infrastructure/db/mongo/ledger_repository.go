package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storefront/ecommerce-services/internal/core/domain"
)

const collectionLedger = "wallet_ledger"

// LedgerRepository stores wallet audit entries, one document per operation.
type LedgerRepository struct {
	col *mongo.Collection
}

func NewLedgerRepository(db *mongo.Database) *LedgerRepository {
	return &LedgerRepository{col: db.Collection(collectionLedger)}
}

type ledgerDocument struct {
	ID             string               `bson:"_id"`
	CustomerID     int64                `bson:"customer_id"`
	Username       string               `bson:"username"`
	Operation      string               `bson:"operation"`
	Amount         primitive.Decimal128 `bson:"amount"`
	BalanceAfter   primitive.Decimal128 `bson:"balance_after"`
	IdempotencyKey string               `bson:"idempotency_key,omitempty"`
	CreatedAt      time.Time            `bson:"created_at"`
}

// Insert appends an entry to the ledger.
func (r *LedgerRepository) Insert(ctx context.Context, e *domain.LedgerEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toLedgerDocument(e)
	if err != nil {
		return err
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// ListByUsername returns the newest entries of one account first.
func (r *LedgerRepository) ListByUsername(ctx context.Context, username string, limit int64) ([]domain.LedgerEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"username": username}, newestFirst(limit))
	if err != nil {
		return nil, fmt.Errorf("find ledger entries: %w", err)
	}
	defer cur.Close(ctx)

	return decodeEntries(ctx, cur)
}

// newestFirst orders by creation time, descending. A non-positive limit
// returns every entry.
func newestFirst(limit int64) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return opts
}

func decodeEntries(ctx context.Context, cur *mongo.Cursor) ([]domain.LedgerEntry, error) {
	var docs []ledgerDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode ledger entries: %w", err)
	}

	entries := make([]domain.LedgerEntry, 0, len(docs))
	for _, d := range docs {
		e, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// EnsureIndexes creates the indexes used by ListByUsername.
func (r *LedgerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func toLedgerDocument(e *domain.LedgerEntry) (ledgerDocument, error) {
	amount, err := primitive.ParseDecimal128(e.Amount.String())
	if err != nil {
		return ledgerDocument{}, fmt.Errorf("encode amount: %w", err)
	}
	balance, err := primitive.ParseDecimal128(e.BalanceAfter.String())
	if err != nil {
		return ledgerDocument{}, fmt.Errorf("encode balance: %w", err)
	}
	return ledgerDocument{
		ID:             e.ID,
		CustomerID:     int64(e.CustomerID),
		Username:       e.Username,
		Operation:      string(e.Operation),
		Amount:         amount,
		BalanceAfter:   balance,
		IdempotencyKey: e.IdempotencyKey,
		CreatedAt:      e.CreatedAt.UTC(),
	}, nil
}

func (d ledgerDocument) toDomain() (domain.LedgerEntry, error) {
	amount, err := decimal.NewFromString(d.Amount.String())
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("decode amount: %w", err)
	}
	balance, err := decimal.NewFromString(d.BalanceAfter.String())
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("decode balance: %w", err)
	}
	return domain.LedgerEntry{
		ID:             d.ID,
		CustomerID:     uint(d.CustomerID),
		Username:       d.Username,
		Operation:      domain.LedgerOperation(d.Operation),
		Amount:         amount,
		BalanceAfter:   balance,
		IdempotencyKey: d.IdempotencyKey,
		CreatedAt:      d.CreatedAt.UTC(),
	}, nil
}
