package postgres

import (
	"context"
	"fmt"

	"github.com/avc/studyhub-backend/internal/domain"
)

// LedgerRepository implements domain.LedgerRepository. Ledger rows are
// append-only; nothing here updates or deletes.
type LedgerRepository struct {
	store *Store
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(store *Store) *LedgerRepository {
	return &LedgerRepository{store: store}
}

// Insert appends one ledger entry and returns it with storage fields filled
func (r *LedgerRepository) Insert(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	err := r.store.conn(ctx).QueryRow(ctx,
		`INSERT INTO transactions (txn_id, user_id, type, amount, breakdown, linked_txn_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		txn.TxnID, txn.UserID, txn.Type, txn.Amount, txn.Breakdown, txn.LinkedTxnID,
	).Scan(&txn.ID, &txn.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert ledger entry for user %d: %w", txn.UserID, err)
	}

	return txn, nil
}

// ListByUser returns the user's ledger entries, newest first
func (r *LedgerRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Transaction, error) {
	rows, err := r.store.conn(ctx).Query(ctx,
		`SELECT id, txn_id, user_id, type, amount, breakdown, linked_txn_id, created_at
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list transactions for user %d: %w", userID, err)
	}
	defer rows.Close()

	var txns []*domain.Transaction
	for rows.Next() {
		txn := &domain.Transaction{}
		err := rows.Scan(&txn.ID, &txn.TxnID, &txn.UserID, &txn.Type, &txn.Amount,
			&txn.Breakdown, &txn.LinkedTxnID, &txn.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating transactions: %w", err)
	}

	return txns, nil
}

// SumSigned folds the user's ledger into one signed total; credits count
// positive, debits negative. Used to audit ledger/balance drift.
func (r *LedgerRepository) SumSigned(ctx context.Context, userID int64) (float64, error) {
	var sum float64
	err := r.store.conn(ctx).QueryRow(ctx,
		`SELECT COALESCE(SUM(CASE
			WHEN type IN ('refund_credit', 'balance_topup', 'balance_load', 'loan_disbursement') THEN amount
			ELSE -amount
		 END), 0)
		 FROM transactions
		 WHERE user_id = $1`,
		userID,
	).Scan(&sum)

	if err != nil {
		return 0, fmt.Errorf("repository: failed to sum ledger for user %d: %w", userID, err)
	}

	return sum, nil
}
