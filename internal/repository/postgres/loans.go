package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

// LoanRepository implements domain.LoanRepository
type LoanRepository struct {
	store *Store
}

// NewLoanRepository creates a new LoanRepository
func NewLoanRepository(store *Store) *LoanRepository {
	return &LoanRepository{store: store}
}

// Create opens a loan record; the partial unique index enforces at most one
// active loan per user
func (r *LoanRepository) Create(ctx context.Context, loan *domain.Loan) (*domain.Loan, error) {
	err := r.store.conn(ctx).QueryRow(ctx,
		`INSERT INTO loans (user_id, principal, current_balance, taken_at, last_interest_applied, status)
		 VALUES ($1, $2, $3, $4, $4, $5)
		 RETURNING id`,
		loan.UserID, loan.Principal, loan.CurrentBalance, loan.TakenAt, loan.Status,
	).Scan(&loan.ID)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to create loan for user %d: %w", loan.UserID, err)
	}

	loan.LastInterestApplied = loan.TakenAt
	return loan, nil
}

// GetActiveByUser returns the user's active loan, if any
func (r *LoanRepository) GetActiveByUser(ctx context.Context, userID int64) (*domain.Loan, error) {
	loan := &domain.Loan{}
	err := r.store.conn(ctx).QueryRow(ctx,
		`SELECT id, user_id, principal, current_balance, taken_at, last_interest_applied, status
		 FROM loans
		 WHERE user_id = $1 AND status = 'active'`,
		userID,
	).Scan(&loan.ID, &loan.UserID, &loan.Principal, &loan.CurrentBalance,
		&loan.TakenAt, &loan.LastInterestApplied, &loan.Status)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLoanNotFound
		}
		return nil, fmt.Errorf("repository: failed to get active loan for user %d: %w", userID, err)
	}

	return loan, nil
}

// UpdateOutstanding rewrites the outstanding balance and status after a repayment
func (r *LoanRepository) UpdateOutstanding(ctx context.Context, loanID int64, balance float64, status domain.LoanStatus) error {
	tag, err := r.store.conn(ctx).Exec(ctx,
		`UPDATE loans SET current_balance = $2, status = $3 WHERE id = $1`,
		loanID, balance, status,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update loan %d: %w", loanID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLoanNotFound
	}

	return nil
}

// ApplyInterest writes a compounded balance together with the application
// timestamp that the idempotence guard checks
func (r *LoanRepository) ApplyInterest(ctx context.Context, loanID int64, balance float64, appliedAt time.Time) error {
	tag, err := r.store.conn(ctx).Exec(ctx,
		`UPDATE loans SET current_balance = $2, last_interest_applied = $3 WHERE id = $1`,
		loanID, balance, appliedAt,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to apply interest to loan %d: %w", loanID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLoanNotFound
	}

	return nil
}

// ListActive returns every active loan with a positive outstanding balance
func (r *LoanRepository) ListActive(ctx context.Context) ([]*domain.Loan, error) {
	rows, err := r.store.conn(ctx).Query(ctx,
		`SELECT id, user_id, principal, current_balance, taken_at, last_interest_applied, status
		 FROM loans
		 WHERE status = 'active' AND current_balance > 0
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list active loans: %w", err)
	}
	defer rows.Close()

	var loans []*domain.Loan
	for rows.Next() {
		loan := &domain.Loan{}
		err := rows.Scan(&loan.ID, &loan.UserID, &loan.Principal, &loan.CurrentBalance,
			&loan.TakenAt, &loan.LastInterestApplied, &loan.Status)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan loan: %w", err)
		}
		loans = append(loans, loan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating loans: %w", err)
	}

	return loans, nil
}
