package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx operations repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so the same repository code runs
// against the pool directly or inside an explicit transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Store is what services depend on instead of a concrete pool: plain access
// for single-statement work and transactional access for multi-statement
// work that must be atomic.
type Store interface {
	Querier() Querier
	WithTx(ctx context.Context, fn func(Querier) error) error
}

var _ Store = (*DB)(nil)

// Querier returns the pool for single-statement operations.
func (db *DB) Querier() Querier {
	return db.Pool
}

// WithTx runs fn inside a transaction: begin, fn, commit. Any error from fn
// (or the commit) rolls the transaction back, leaving no partial effect.
func (db *DB) WithTx(ctx context.Context, fn func(Querier) error) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
