package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Op is one write applied inside a batch transaction.
type Op func(ctx context.Context, tx pgx.Tx) error

// Batch accumulates writes and submits them as a single all-or-nothing
// database transaction. This is the only consistency mechanism in the
// system: a sale's transaction row, its stock decrements and its ledger
// entries either all land or none do. There is no retry and no idempotency
// key; callers that retry after an ambiguous failure can double-apply.
type Batch struct {
	pool *pgxpool.Pool
	ops  []Op
}

func NewBatch(pool *pgxpool.Pool) *Batch {
	return &Batch{pool: pool}
}

// Add appends one write to the batch.
func (b *Batch) Add(op Op) {
	b.ops = append(b.ops, op)
}

// Len returns the number of accumulated writes.
func (b *Batch) Len() int {
	return len(b.ops)
}

// Commit applies every accumulated write inside one transaction. On any
// failure the whole batch rolls back and the batch is left untouched so the
// caller can inspect it.
func (b *Batch) Commit(ctx context.Context) error {
	if len(b.ops) == 0 {
		return fmt.Errorf("empty batch")
	}

	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, op := range b.ops {
		if err := op(ctx, tx); err != nil {
			return fmt.Errorf("batch write failed: %w", err)
		}
	}

	return tx.Commit(ctx)
}
