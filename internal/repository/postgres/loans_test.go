package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avc/studyhub-backend/internal/domain"
)

func TestLoanRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLoanRepository(NewStore(mock))
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		takenAt := time.Now()
		loan := &domain.Loan{
			UserID:         1,
			Principal:      500,
			CurrentBalance: 500,
			TakenAt:        takenAt,
			Status:         domain.LoanStatusActive,
		}

		mock.ExpectQuery(`INSERT INTO loans`).
			WithArgs(loan.UserID, loan.Principal, loan.CurrentBalance, loan.TakenAt, loan.Status).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

		got, err := repo.Create(ctx, loan)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
		assert.Equal(t, takenAt, got.LastInterestApplied)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Second active loan violates the unique index", func(t *testing.T) {
		loan := &domain.Loan{UserID: 1, Principal: 200, CurrentBalance: 200, TakenAt: time.Now(), Status: domain.LoanStatusActive}

		mock.ExpectQuery(`INSERT INTO loans`).
			WithArgs(loan.UserID, loan.Principal, loan.CurrentBalance, loan.TakenAt, loan.Status).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		got, err := repo.Create(ctx, loan)
		assert.Error(t, err)
		assert.Nil(t, got)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLoanRepository_GetActiveByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLoanRepository(NewStore(mock))
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := pgxmock.NewRows([]string{"id", "user_id", "principal", "current_balance", "taken_at", "last_interest_applied", "status"}).
			AddRow(int64(3), int64(1), 500.0, 505.0, now.AddDate(0, -1, 0), now, domain.LoanStatusActive)

		mock.ExpectQuery(`SELECT (.+) FROM loans\s+WHERE user_id`).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		loan, err := repo.GetActiveByUser(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), loan.ID)
		assert.Equal(t, 505.0, loan.CurrentBalance)
		assert.Equal(t, domain.LoanStatusActive, loan.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No active loan", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM loans\s+WHERE user_id`).
			WithArgs(int64(2)).
			WillReturnError(pgx.ErrNoRows)

		loan, err := repo.GetActiveByUser(ctx, 2)
		assert.ErrorIs(t, err, ErrLoanNotFound)
		assert.Nil(t, loan)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLoanRepository_UpdateOutstanding(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLoanRepository(NewStore(mock))
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE loans SET current_balance`).
			WithArgs(int64(3), 0.0, domain.LoanStatusRepaid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateOutstanding(ctx, 3, 0.0, domain.LoanStatusRepaid)
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown loan", func(t *testing.T) {
		mock.ExpectExec(`UPDATE loans SET current_balance`).
			WithArgs(int64(99), 100.0, domain.LoanStatusActive).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateOutstanding(ctx, 99, 100.0, domain.LoanStatusActive)
		assert.ErrorIs(t, err, ErrLoanNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLoanRepository_ApplyInterest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLoanRepository(NewStore(mock))
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		appliedAt := time.Now()
		mock.ExpectExec(`UPDATE loans SET current_balance = \$2, last_interest_applied`).
			WithArgs(int64(3), 1010.0, appliedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.ApplyInterest(ctx, 3, 1010.0, appliedAt)
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLoanRepository_ListActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLoanRepository(NewStore(mock))
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := pgxmock.NewRows([]string{"id", "user_id", "principal", "current_balance", "taken_at", "last_interest_applied", "status"}).
			AddRow(int64(1), int64(5), 500.0, 505.0, now, now, domain.LoanStatusActive).
			AddRow(int64(2), int64(7), 800.0, 808.0, now, now, domain.LoanStatusActive)

		mock.ExpectQuery(`SELECT (.+) FROM loans\s+WHERE status = 'active'`).
			WillReturnRows(rows)

		loans, err := repo.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, loans, 2)
		assert.Equal(t, int64(5), loans[0].UserID)
		assert.Equal(t, int64(7), loans[1].UserID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing active", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM loans\s+WHERE status = 'active'`).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "principal", "current_balance", "taken_at", "last_interest_applied", "status"}))

		loans, err := repo.ListActive(ctx)
		require.NoError(t, err)
		assert.Empty(t, loans)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
