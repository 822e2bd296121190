package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// DBTX is the subset of database/sql used by repositories.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const (
	txMaxAttempts = 3
	txRetryDelay  = 50 * time.Millisecond
)

// withTx runs fn inside a transaction, committing on success and rolling back
// on error or panic. A transaction that fails with a retryable error
// (database busy or locked) is attempted again up to txMaxAttempts times.
func (db *DB) withTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	var err error
	for attempt := 1; attempt <= txMaxAttempts; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Str("func", "*DB.withTx").Msg("retrying transaction")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(txRetryDelay):
		}
	}
	return err
}

func (db *DB) runTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
