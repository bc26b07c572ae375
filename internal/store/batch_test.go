package store

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestBatchAddAndLen(t *testing.T) {
	b := NewBatch(nil)
	if b.Len() != 0 {
		t.Fatalf("Len = %d, want 0", b.Len())
	}

	noop := func(ctx context.Context, tx pgx.Tx) error { return nil }
	b.Add(noop)
	b.Add(noop)

	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBatchCommitEmpty(t *testing.T) {
	b := NewBatch(nil)
	if err := b.Commit(context.Background()); err == nil {
		t.Error("committing an empty batch should fail")
	}
}
