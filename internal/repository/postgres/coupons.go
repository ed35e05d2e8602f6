package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

// CouponRepository implements domain.CouponRepository
type CouponRepository struct {
	store *Store
}

// NewCouponRepository creates a new CouponRepository
func NewCouponRepository(store *Store) *CouponRepository {
	return &CouponRepository{store: store}
}

// GetByCode fetches a coupon by its code
func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	coupon := &domain.Coupon{}
	var services []string

	err := r.store.conn(ctx).QueryRow(ctx,
		`SELECT code, type, value, expires_at, usage_limit, used_count, min_amount,
		        applicable_services, stackable, allowed_user_ids
		 FROM coupons
		 WHERE code = $1`,
		code,
	).Scan(&coupon.Code, &coupon.Type, &coupon.Value, &coupon.ExpiresAt,
		&coupon.UsageLimit, &coupon.UsedCount, &coupon.MinAmount,
		&services, &coupon.Stackable, &coupon.AllowedUserIDs)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCouponNotFound
		}
		return nil, fmt.Errorf("repository: failed to get coupon %q: %w", code, err)
	}

	for _, s := range services {
		coupon.ApplicableServices = append(coupon.ApplicableServices, domain.ServiceType(s))
	}

	return coupon, nil
}

// IncrementUsage bumps the usage counter; called only inside the purchase
// transaction so an aborted purchase never consumes a use
func (r *CouponRepository) IncrementUsage(ctx context.Context, code string) error {
	tag, err := r.store.conn(ctx).Exec(ctx,
		`UPDATE coupons SET used_count = used_count + 1 WHERE code = $1`,
		code,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to increment usage for coupon %q: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCouponNotFound
	}

	return nil
}
