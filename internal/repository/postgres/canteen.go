package postgres

import (
	"context"
	"fmt"

	"github.com/avc/studyhub-backend/internal/domain"
)

// CanteenRepository implements domain.CanteenRepository
type CanteenRepository struct {
	store *Store
}

// NewCanteenRepository creates a new CanteenRepository
func NewCanteenRepository(store *Store) *CanteenRepository {
	return &CanteenRepository{store: store}
}

// CreateOrder inserts a committed canteen order
func (r *CanteenRepository) CreateOrder(ctx context.Context, o *domain.CanteenOrder) (*domain.CanteenOrder, error) {
	err := r.store.conn(ctx).QueryRow(ctx,
		`INSERT INTO canteen_orders (user_id, items, total, note)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		o.UserID, o.Items, o.Total, o.Note,
	).Scan(&o.ID, &o.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to create canteen order for user %d: %w", o.UserID, err)
	}

	return o, nil
}
