package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avc/studyhub-backend/internal/domain"
)

func TestLedgerRepository_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(NewStore(mock))
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		txn := &domain.Transaction{
			TxnID:  "PUR-20260901-abc123",
			UserID: 1,
			Type:   domain.TransactionTypePurchase,
			Amount: 500,
		}

		createdAt := time.Now()
		mock.ExpectQuery(`INSERT INTO transactions`).
			WithArgs(txn.TxnID, txn.UserID, txn.Type, txn.Amount, txn.Breakdown, txn.LinkedTxnID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

		got, err := repo.Insert(ctx, txn)
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, createdAt, got.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		txn := &domain.Transaction{TxnID: "PUR-20260901-abc124", UserID: 1, Type: domain.TransactionTypePurchase, Amount: 100}

		mock.ExpectQuery(`INSERT INTO transactions`).
			WithArgs(txn.TxnID, txn.UserID, txn.Type, txn.Amount, txn.Breakdown, txn.LinkedTxnID).
			WillReturnError(errors.New("database error"))

		got, err := repo.Insert(ctx, txn)
		assert.Error(t, err)
		assert.Nil(t, got)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(NewStore(mock))
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		linked := "TOP-20260901-xyz789"
		rows := pgxmock.NewRows([]string{"id", "txn_id", "user_id", "type", "amount", "breakdown", "linked_txn_id", "created_at"}).
			AddRow(int64(2), "LNR-20260901-aaa111", int64(1), domain.TransactionTypeLoanRepayment, 200.0, (*domain.PriceBreakdown)(nil), &linked, now).
			AddRow(int64(1), "TOP-20260901-xyz789", int64(1), domain.TransactionTypeBalanceTopup, 500.0, (*domain.PriceBreakdown)(nil), (*string)(nil), now.Add(-time.Minute))

		mock.ExpectQuery(`SELECT (.+) FROM transactions\s+WHERE user_id`).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		txns, err := repo.ListByUser(ctx, 1)
		require.NoError(t, err)
		require.Len(t, txns, 2)
		assert.Equal(t, "LNR-20260901-aaa111", txns[0].TxnID)
		require.NotNil(t, txns[0].LinkedTxnID)
		assert.Equal(t, linked, *txns[0].LinkedTxnID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty history", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM transactions\s+WHERE user_id`).
			WithArgs(int64(2)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "txn_id", "user_id", "type", "amount", "breakdown", "linked_txn_id", "created_at"}))

		txns, err := repo.ListByUser(ctx, 2)
		require.NoError(t, err)
		assert.Empty(t, txns)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_SumSigned(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(NewStore(mock))
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(CASE`).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(300.0))

		sum, err := repo.SumSigned(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 300.0, sum)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
