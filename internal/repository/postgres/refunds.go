package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

// RefundRepository implements domain.RefundRepository
type RefundRepository struct {
	store *Store
}

// NewRefundRepository creates a new RefundRepository
func NewRefundRepository(store *Store) *RefundRepository {
	return &RefundRepository{store: store}
}

const refundColumns = `id, user_id, service_type, amount_requested, amount_calculated, mode, status, token, reason, created_at`

func scanRefund(row pgx.Row) (*domain.Refund, error) {
	rf := &domain.Refund{}
	err := row.Scan(&rf.ID, &rf.UserID, &rf.ServiceType, &rf.AmountRequested,
		&rf.AmountCalculated, &rf.Mode, &rf.Status, &rf.Token, &rf.Reason, &rf.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rf, nil
}

// Create inserts a refund record
func (r *RefundRepository) Create(ctx context.Context, rf *domain.Refund) (*domain.Refund, error) {
	err := r.store.conn(ctx).QueryRow(ctx,
		`INSERT INTO refunds (user_id, service_type, amount_requested, amount_calculated, mode, status, token, reason)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		rf.UserID, rf.ServiceType, rf.AmountRequested, rf.AmountCalculated, rf.Mode, rf.Status, rf.Token, rf.Reason,
	).Scan(&rf.ID, &rf.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to create refund for user %d: %w", rf.UserID, err)
	}

	return rf, nil
}

// GetByID fetches a refund by ID
func (r *RefundRepository) GetByID(ctx context.Context, id int64) (*domain.Refund, error) {
	rf, err := scanRefund(r.store.conn(ctx).QueryRow(ctx,
		`SELECT `+refundColumns+` FROM refunds WHERE id = $1`,
		id,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRefundNotFound
		}
		return nil, fmt.Errorf("repository: failed to get refund %d: %w", id, err)
	}

	return rf, nil
}

// ListByUser returns the user's refunds, newest first
func (r *RefundRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Refund, error) {
	rows, err := r.store.conn(ctx).Query(ctx,
		`SELECT `+refundColumns+` FROM refunds WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list refunds for user %d: %w", userID, err)
	}
	defer rows.Close()

	var refunds []*domain.Refund
	for rows.Next() {
		rf, err := scanRefund(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan refund: %w", err)
		}
		refunds = append(refunds, rf)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating refunds: %w", err)
	}

	return refunds, nil
}
