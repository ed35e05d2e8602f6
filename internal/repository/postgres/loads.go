package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

// LoadRequestRepository implements domain.LoadRequestRepository
type LoadRequestRepository struct {
	store *Store
}

// NewLoadRequestRepository creates a new LoadRequestRepository
func NewLoadRequestRepository(store *Store) *LoadRequestRepository {
	return &LoadRequestRepository{store: store}
}

// Create inserts a pending balance load request
func (r *LoadRequestRepository) Create(ctx context.Context, userID int64, amount float64) (*domain.BalanceLoadRequest, error) {
	req := &domain.BalanceLoadRequest{
		UserID: userID,
		Amount: amount,
		Status: domain.LoadRequestPending,
	}

	err := r.store.conn(ctx).QueryRow(ctx,
		`INSERT INTO balance_load_requests (user_id, amount, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		userID, amount, req.Status,
	).Scan(&req.ID, &req.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to create load request for user %d: %w", userID, err)
	}

	return req, nil
}

// GetByID fetches a load request by ID
func (r *LoadRequestRepository) GetByID(ctx context.Context, id int64) (*domain.BalanceLoadRequest, error) {
	req := &domain.BalanceLoadRequest{}
	err := r.store.conn(ctx).QueryRow(ctx,
		`SELECT id, user_id, amount, status, created_at, processed_at
		 FROM balance_load_requests
		 WHERE id = $1`,
		id,
	).Scan(&req.ID, &req.UserID, &req.Amount, &req.Status, &req.CreatedAt, &req.ProcessedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLoadRequestNotFound
		}
		return nil, fmt.Errorf("repository: failed to get load request %d: %w", id, err)
	}

	return req, nil
}

// MarkProcessed finalises a pending request; processing the same request
// twice finds zero pending rows and reports ErrLoadRequestNotFound
func (r *LoadRequestRepository) MarkProcessed(ctx context.Context, id int64, status domain.LoadRequestStatus, at time.Time) error {
	tag, err := r.store.conn(ctx).Exec(ctx,
		`UPDATE balance_load_requests SET status = $2, processed_at = $3 WHERE id = $1 AND status = 'pending'`,
		id, status, at,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to mark load request %d processed: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLoadRequestNotFound
	}

	return nil
}
