package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the connection surface repositories run against; satisfied by
// *pgxpool.Pool and by pgxmock pools in tests
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// querier is the read/write subset shared by DBTX and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store owns the database handle and hands repositories their connection.
// An open transaction travels in the context; conn resolves to it when
// present so repository code is identical inside and outside transactions.
type Store struct {
	db DBTX
}

// NewStore creates a new Store
func NewStore(db DBTX) *Store {
	return &Store{db: db}
}

type txKey struct{}

func txFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

func (s *Store) conn(ctx context.Context) querier {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return s.db
}

// txMaxRetries bounds automatic retries of serialization conflicts; a
// persistent conflict surfaces to the caller as Aborted instead of hanging
const txMaxRetries = 3

// InTx runs fn inside a serializable transaction. Only conflict errors are
// retried; business errors abort immediately and nothing is persisted.
// Nested calls join the already-open transaction.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	var lastErr error
	for attempt := 0; attempt < txMaxRetries; attempt++ {
		lastErr = s.runInTx(ctx, fn)
		if !errors.Is(lastErr, domain.ErrConflict) {
			return lastErr
		}
	}
	return lastErr
}

func (s *Store) runInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("storage: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if isSerializationFailure(err) {
			return fmt.Errorf("storage: %w", domain.ErrConflict)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		if isSerializationFailure(err) {
			return fmt.Errorf("storage: %w", domain.ErrConflict)
		}
		return fmt.Errorf("storage: failed to commit transaction: %w", err)
	}

	return nil
}

// isSerializationFailure reports whether err is a lost concurrency race:
// serialization_failure (40001), deadlock_detected (40P01) or a unique
// violation (23505) raised when two transactions insert the same resource key
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01", "23505":
		return true
	}
	return false
}
