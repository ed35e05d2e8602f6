package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/avc/studyhub-backend/internal/repository/postgres"
)

const (
	discountKindBulk   = "bulk"
	discountKindBundle = "bundle"
	discountKindCoupon = "coupon"
)

// DiscountConfig carries the operator-tunable discount rates
type DiscountConfig struct {
	BulkMonths  int     // minimum term for the bulk discount
	BulkPercent float64 // percent of the base price
	BundleFlat  float64 // flat amount for holding both services
}

// DiscountEngine computes final prices. It is pure given its inputs and the
// coupon snapshot read during the call; nothing here writes.
type DiscountEngine struct {
	couponRepo domain.CouponRepository
	cfg        DiscountConfig
}

// NewDiscountEngine creates a new DiscountEngine
func NewDiscountEngine(couponRepo domain.CouponRepository, cfg DiscountConfig) *DiscountEngine {
	return &DiscountEngine{
		couponRepo: couponRepo,
		cfg:        cfg,
	}
}

// Compute runs the ordered discount pipeline:
// applyAutomated -> validateCoupon -> maybeDiscardAutomated -> appendCoupon.
// A valid non-stackable coupon discards the automated discounts entirely;
// a stackable one adds on top. Percentage coupons always compute off the
// original base price, not the post-discount amount.
func (e *DiscountEngine) Compute(ctx context.Context, user *domain.User, serviceType domain.ServiceType, months int, basePrice float64, couponCode string) (*domain.PriceBreakdown, error) {
	if basePrice < 0 {
		return nil, domain.Ef(domain.CodeInvalidArgument, "base price must not be negative, got %.2f", basePrice)
	}

	discounts := e.applyAutomated(user, serviceType, months, basePrice)

	if couponCode != "" {
		coupon, err := e.validateCoupon(ctx, user, serviceType, basePrice, couponCode)
		if err != nil {
			return nil, err
		}

		if !coupon.Stackable {
			// coupon takes exclusive precedence over automated discounts
			discounts = nil
		}
		discounts = append(discounts, couponDiscount(coupon, basePrice))
	}

	var total float64
	for _, d := range discounts {
		total += d.Amount
	}

	return &domain.PriceBreakdown{
		BasePrice:     basePrice,
		Discounts:     discounts,
		TotalDiscount: total,
		FinalPrice:    math.Max(0, basePrice-total),
	}, nil
}

// applyAutomated queues the bulk and bundle discounts
func (e *DiscountEngine) applyAutomated(user *domain.User, serviceType domain.ServiceType, months int, basePrice float64) []domain.Discount {
	var discounts []domain.Discount

	if months >= e.cfg.BulkMonths && e.cfg.BulkPercent > 0 {
		discounts = append(discounts, domain.Discount{
			Kind:   discountKindBulk,
			Label:  fmt.Sprintf("%d+ month discount (%.0f%%)", e.cfg.BulkMonths, e.cfg.BulkPercent),
			Amount: math.Round(basePrice * e.cfg.BulkPercent / 100),
		})
	}

	if e.bundleApplies(user, serviceType) && e.cfg.BundleFlat > 0 {
		discounts = append(discounts, domain.Discount{
			Kind:   discountKindBundle,
			Label:  "reading room + hostel bundle",
			Amount: e.cfg.BundleFlat,
		})
	}

	return discounts
}

// bundleApplies reports whether the purchase pairs with an already-held service
func (e *DiscountEngine) bundleApplies(user *domain.User, serviceType domain.ServiceType) bool {
	switch serviceType {
	case domain.ServiceHostel:
		return user.CurrentSeat != nil
	case domain.ServiceReadingRoom:
		return user.CurrentHostel != nil
	}
	return false
}

// validateCoupon rejects the whole purchase when the coupon cannot be used;
// an unusable coupon never degrades silently into "no discount"
func (e *DiscountEngine) validateCoupon(ctx context.Context, user *domain.User, serviceType domain.ServiceType, basePrice float64, code string) (*domain.Coupon, error) {
	coupon, err := e.couponRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, postgres.ErrCouponNotFound) {
			return nil, domain.Ef(domain.CodeNotFound, "coupon %q not found", code)
		}
		return nil, fmt.Errorf("discount engine: failed to get coupon %q: %w", code, err)
	}

	if coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(time.Now()) {
		return nil, domain.Ef(domain.CodeInvalidArgument, "coupon %q has expired", code)
	}
	if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
		return nil, domain.Ef(domain.CodeInvalidArgument, "coupon %q usage limit reached", code)
	}
	if !coupon.AppliesTo(serviceType) {
		return nil, domain.Ef(domain.CodeInvalidArgument, "coupon %q is not applicable to %s", code, serviceType)
	}
	if basePrice < coupon.MinAmount {
		return nil, domain.Ef(domain.CodeInvalidArgument, "coupon %q requires a minimum amount of %.2f", code, coupon.MinAmount)
	}
	if !coupon.AllowsUser(user.ID) {
		return nil, domain.Ef(domain.CodeInvalidArgument, "coupon %q is not available for this account", code)
	}

	return coupon, nil
}

func couponDiscount(coupon *domain.Coupon, basePrice float64) domain.Discount {
	amount := coupon.Value
	if coupon.Type == domain.CouponTypePercentage {
		amount = math.Round(basePrice * coupon.Value / 100)
	}

	return domain.Discount{
		Kind:       discountKindCoupon,
		Label:      fmt.Sprintf("coupon %s", coupon.Code),
		Amount:     amount,
		CouponCode: coupon.Code,
	}
}
