package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/avc/studyhub-backend/internal/repository/postgres"
)

// Duration units accepted by renewals; the unit picks the expiry policy
const (
	DurationMonths = "months"
	DurationDays   = "days"
)

// PurchaseResult is the success payload of a purchase or renewal
type PurchaseResult struct {
	Transaction *domain.Transaction    `json:"transaction"`
	Breakdown   *domain.PriceBreakdown `json:"breakdown"`
	NewBalance  float64                `json:"new_balance"`
	NextDue     time.Time              `json:"next_payment_due"`

	Assignment *domain.HostelAssignment `json:"assignment,omitempty"`
}

// WithdrawResult is the success payload of a service withdrawal
type WithdrawResult struct {
	Refund      *domain.Refund      `json:"refund"`
	Transaction *domain.Transaction `json:"transaction,omitempty"`
}

// MembershipService handles the purchase, renewal and withdrawal of
// reading-room and hostel memberships. Every operation runs in one storage
// transaction: the debit, the ledger row, the resource assignment and the
// coupon counter commit together or not at all. A confirmation delivery is
// queued after commit.
type MembershipService struct {
	tx         domain.TxRunner
	userRepo   domain.UserRepository
	couponRepo domain.CouponRepository
	refundRepo domain.RefundRepository
	ledger     domain.LedgerRecorder
	discounts  *DiscountEngine
	allocator  *AllocatorService
	loans      *LoanService
	deliveries domain.DeliveryQueue
}

// NewMembershipService creates a new MembershipService
func NewMembershipService(
	tx domain.TxRunner,
	userRepo domain.UserRepository,
	couponRepo domain.CouponRepository,
	refundRepo domain.RefundRepository,
	ledger domain.LedgerRecorder,
	discounts *DiscountEngine,
	allocator *AllocatorService,
	loans *LoanService,
	deliveries domain.DeliveryQueue,
) *MembershipService {
	return &MembershipService{
		tx:         tx,
		userRepo:   userRepo,
		couponRepo: couponRepo,
		refundRepo: refundRepo,
		ledger:     ledger,
		discounts:  discounts,
		allocator:  allocator,
		loans:      loans,
		deliveries: deliveries,
	}
}

// PurchaseReadingRoom opens a reading-room membership. The price is
// registrationFee + monthlyFee * months run through the discount pipeline.
// A seat is not assigned here; seats are allocated by an operator.
func (s *MembershipService) PurchaseReadingRoom(ctx context.Context, userID int64, months int, registrationFee, monthlyFee float64, couponCode string) (*PurchaseResult, error) {
	if months < 1 {
		return nil, domain.E(domain.CodeInvalidArgument, "term must be at least one month")
	}
	if registrationFee < 0 || monthlyFee < 0 {
		return nil, domain.E(domain.CodeInvalidArgument, "fees must not be negative")
	}

	var result *PurchaseResult
	var user *domain.User
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.getUser(ctx, userID)
		if err != nil {
			return err
		}
		if user.NextPaymentDue != nil {
			return domain.E(domain.CodeFailedPrecondition, "an active reading room membership already exists")
		}

		basePrice := registrationFee + monthlyFee*float64(months)
		breakdown, err := s.discounts.Compute(ctx, user, domain.ServiceReadingRoom, months, basePrice, couponCode)
		if err != nil {
			return err
		}

		txn, err := s.ledger.RecordMutation(ctx, userID, breakdown.FinalPrice, domain.TransactionTypePurchase, breakdown, nil)
		if err != nil {
			return err
		}

		if couponCode != "" {
			if err := s.couponRepo.IncrementUsage(ctx, couponCode); err != nil {
				return fmt.Errorf("membership service: failed to increment coupon %q: %w", couponCode, err)
			}
		}

		nextDue := time.Now().AddDate(0, months, 0)
		if err := s.userRepo.UpdateMembership(ctx, userID, domain.MembershipUpdate{
			Service:   domain.ServiceReadingRoom,
			Policy:    domain.ExpiryPolicyStandard,
			NextDue:   nextDue,
			ClearFine: true,
		}); err != nil {
			return fmt.Errorf("membership service: failed to update membership for user %d: %w", userID, err)
		}

		result = &PurchaseResult{
			Transaction: txn,
			Breakdown:   breakdown,
			NewBalance:  user.Balance - breakdown.FinalPrice,
			NextDue:     nextDue,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyUser(s.deliveries, user, "Reading room membership active",
		fmt.Sprintf("Your reading room membership is paid until %s.", result.NextDue.Format("02 Jan 2006")),
		map[string]string{"service": string(domain.ServiceReadingRoom)})
	return result, nil
}

// RenewReadingRoom extends a membership. A month-based renewal selects the
// standard expiry policy, a day-based one selects the daily policy. The new
// due date restarts from now rather than stacking on the old due date; the
// outstanding fine already charged for the overdue gap and is settled on top
// of the renewal price in the same debit.
func (s *MembershipService) RenewReadingRoom(ctx context.Context, userID int64, duration int, durationType string, monthlyFee, dailyFee float64, couponCode string) (*PurchaseResult, error) {
	if duration < 1 {
		return nil, domain.E(domain.CodeInvalidArgument, "duration must be positive")
	}

	var policy domain.ExpiryPolicy
	var basePrice float64
	var nextDue time.Time
	var months int
	now := time.Now()

	switch durationType {
	case DurationMonths:
		policy = domain.ExpiryPolicyStandard
		basePrice = monthlyFee * float64(duration)
		nextDue = now.AddDate(0, duration, 0)
		months = duration
	case DurationDays:
		policy = domain.ExpiryPolicyDaily
		basePrice = dailyFee * float64(duration)
		nextDue = now.AddDate(0, 0, duration)
	default:
		return nil, domain.Ef(domain.CodeInvalidArgument, "duration type must be %q or %q", DurationMonths, DurationDays)
	}

	var result *PurchaseResult
	var user *domain.User
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.getUser(ctx, userID)
		if err != nil {
			return err
		}
		if user.NextPaymentDue == nil {
			return domain.E(domain.CodeFailedPrecondition, "no reading room membership to renew")
		}

		breakdown, err := s.discounts.Compute(ctx, user, domain.ServiceReadingRoom, months, basePrice, couponCode)
		if err != nil {
			return err
		}

		amount := breakdown.FinalPrice + user.FineAmount
		txn, err := s.ledger.RecordMutation(ctx, userID, amount, domain.TransactionTypeRenewal, breakdown, nil)
		if err != nil {
			return err
		}

		if couponCode != "" {
			if err := s.couponRepo.IncrementUsage(ctx, couponCode); err != nil {
				return fmt.Errorf("membership service: failed to increment coupon %q: %w", couponCode, err)
			}
		}

		if err := s.userRepo.UpdateMembership(ctx, userID, domain.MembershipUpdate{
			Service:   domain.ServiceReadingRoom,
			Policy:    policy,
			NextDue:   nextDue,
			ClearFine: true,
		}); err != nil {
			return fmt.Errorf("membership service: failed to update membership for user %d: %w", userID, err)
		}

		result = &PurchaseResult{
			Transaction: txn,
			Breakdown:   breakdown,
			NewBalance:  user.Balance - amount,
			NextDue:     nextDue,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyUser(s.deliveries, user, "Reading room membership renewed",
		fmt.Sprintf("Your reading room membership is paid until %s.", result.NextDue.Format("02 Jan 2006")),
		map[string]string{"service": string(domain.ServiceReadingRoom)})
	return result, nil
}

// PurchaseHostel allocates the first free bed of the requested type and debits
// registrationFee + monthly rent * months in the same transaction
func (s *MembershipService) PurchaseHostel(ctx context.Context, userID int64, buildingID, roomType string, months int, registrationFee float64, couponCode string) (*PurchaseResult, error) {
	if months < 1 {
		return nil, domain.E(domain.CodeInvalidArgument, "term must be at least one month")
	}
	if registrationFee < 0 {
		return nil, domain.E(domain.CodeInvalidArgument, "registration fee must not be negative")
	}

	var result *PurchaseResult
	var user *domain.User
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.getUser(ctx, userID)
		if err != nil {
			return err
		}
		if user.CurrentHostel != nil {
			return domain.E(domain.CodeFailedPrecondition, "an active hostel assignment already exists")
		}

		nextDue := time.Now().AddDate(0, months, 0)
		assignment, err := s.allocator.AllocateBed(ctx, userID, buildingID, roomType, months, nextDue)
		if err != nil {
			return err
		}

		basePrice := registrationFee + assignment.MonthlyRent*float64(months)
		breakdown, err := s.discounts.Compute(ctx, user, domain.ServiceHostel, months, basePrice, couponCode)
		if err != nil {
			return err
		}

		txn, err := s.ledger.RecordMutation(ctx, userID, breakdown.FinalPrice, domain.TransactionTypePurchase, breakdown, nil)
		if err != nil {
			return err
		}

		if couponCode != "" {
			if err := s.couponRepo.IncrementUsage(ctx, couponCode); err != nil {
				return fmt.Errorf("membership service: failed to increment coupon %q: %w", couponCode, err)
			}
		}

		result = &PurchaseResult{
			Transaction: txn,
			Breakdown:   breakdown,
			NewBalance:  user.Balance - breakdown.FinalPrice,
			NextDue:     nextDue,
			Assignment:  assignment,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyUser(s.deliveries, user, "Hostel bed assigned",
		fmt.Sprintf("Bed %d in room %s, building %s is yours; rent is paid until %s.",
			result.Assignment.BedNumber, result.Assignment.RoomID, result.Assignment.BuildingID,
			result.NextDue.Format("02 Jan 2006")),
		map[string]string{"service": string(domain.ServiceHostel)})
	return result, nil
}

// RenewHostel extends an active hostel assignment by whole months, settling
// any accrued hostel fine in the same debit. The clock restarts from now.
func (s *MembershipService) RenewHostel(ctx context.Context, userID int64, months int, couponCode string) (*PurchaseResult, error) {
	if months < 1 {
		return nil, domain.E(domain.CodeInvalidArgument, "term must be at least one month")
	}

	var result *PurchaseResult
	var user *domain.User
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.getUser(ctx, userID)
		if err != nil {
			return err
		}
		if user.CurrentHostel == nil {
			return domain.E(domain.CodeFailedPrecondition, "no hostel assignment to renew")
		}

		assignment, err := s.allocator.hostelRepo.GetActiveByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, postgres.ErrHostelAssignmentNotFound) {
				return domain.E(domain.CodeFailedPrecondition, "no hostel assignment to renew")
			}
			return fmt.Errorf("membership service: failed to get hostel assignment for user %d: %w", userID, err)
		}

		basePrice := assignment.MonthlyRent * float64(months)
		breakdown, err := s.discounts.Compute(ctx, user, domain.ServiceHostel, months, basePrice, couponCode)
		if err != nil {
			return err
		}

		amount := breakdown.FinalPrice + user.HostelFineAmount
		txn, err := s.ledger.RecordMutation(ctx, userID, amount, domain.TransactionTypeRenewal, breakdown, nil)
		if err != nil {
			return err
		}

		if couponCode != "" {
			if err := s.couponRepo.IncrementUsage(ctx, couponCode); err != nil {
				return fmt.Errorf("membership service: failed to increment coupon %q: %w", couponCode, err)
			}
		}

		nextDue := time.Now().AddDate(0, months, 0)
		if err := s.userRepo.UpdateMembership(ctx, userID, domain.MembershipUpdate{
			Service:   domain.ServiceHostel,
			Policy:    domain.ExpiryPolicyStandard,
			NextDue:   nextDue,
			ClearFine: true,
		}); err != nil {
			return fmt.Errorf("membership service: failed to update membership for user %d: %w", userID, err)
		}
		if err := s.allocator.hostelRepo.UpdateNextDue(ctx, assignment.ID, nextDue); err != nil {
			return fmt.Errorf("membership service: failed to update assignment %d: %w", assignment.ID, err)
		}

		result = &PurchaseResult{
			Transaction: txn,
			Breakdown:   breakdown,
			NewBalance:  user.Balance - amount,
			NextDue:     nextDue,
			Assignment:  assignment,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyUser(s.deliveries, user, "Hostel rent renewed",
		fmt.Sprintf("Your hostel rent is paid until %s.", result.NextDue.Format("02 Jan 2006")),
		map[string]string{"service": string(domain.ServiceHostel)})
	return result, nil
}

// WithdrawService releases the user's reading-room seat or hostel bed and
// settles the refund. Wallet mode credits the amount and records a completed
// refund atomically with the release; an outstanding loan takes its cut from
// the credit. Cash mode records a pending refund with a pickup token and no
// balance change.
func (s *MembershipService) WithdrawService(ctx context.Context, userID int64, serviceType domain.ServiceType, refundAmount float64, reason string, mode domain.RefundMode) (*WithdrawResult, error) {
	if refundAmount < 0 {
		return nil, domain.E(domain.CodeInvalidArgument, "refund amount must not be negative")
	}
	if mode != domain.RefundModeWallet && mode != domain.RefundModeCash {
		return nil, domain.Ef(domain.CodeInvalidArgument, "refund mode must be %q or %q", domain.RefundModeWallet, domain.RefundModeCash)
	}

	var result *WithdrawResult
	var user *domain.User
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.getUser(ctx, userID)
		if err != nil {
			return err
		}

		switch serviceType {
		case domain.ServiceReadingRoom:
			if user.NextPaymentDue == nil && user.CurrentSeat == nil {
				return domain.E(domain.CodeFailedPrecondition, "no reading room membership to withdraw")
			}
			if err := s.allocator.ReleaseSeat(ctx, userID); err != nil {
				return err
			}
		case domain.ServiceHostel:
			if user.CurrentHostel == nil {
				return domain.E(domain.CodeFailedPrecondition, "no hostel assignment to withdraw")
			}
			if err := s.allocator.ReleaseHostel(ctx, userID); err != nil {
				return err
			}
		default:
			return domain.Ef(domain.CodeInvalidArgument, "service %q cannot be withdrawn", serviceType)
		}

		if err := s.userRepo.ClearMembership(ctx, userID, serviceType); err != nil {
			return fmt.Errorf("membership service: failed to clear membership for user %d: %w", userID, err)
		}

		refund := &domain.Refund{
			UserID:           userID,
			ServiceType:      serviceType,
			AmountRequested:  refundAmount,
			AmountCalculated: refundAmount,
			Mode:             mode,
			Reason:           reason,
		}

		if mode == domain.RefundModeCash {
			refund.Status = domain.RefundStatusPending
			refund.Token = uuid.NewString()
			refund, err = s.refundRepo.Create(ctx, refund)
			if err != nil {
				return fmt.Errorf("membership service: failed to create refund for user %d: %w", userID, err)
			}
			result = &WithdrawResult{Refund: refund}
			return nil
		}

		refund.Status = domain.RefundStatusCompleted
		refund, err = s.refundRepo.Create(ctx, refund)
		if err != nil {
			return fmt.Errorf("membership service: failed to create refund for user %d: %w", userID, err)
		}

		var txn *domain.Transaction
		if refundAmount > 0 {
			txn, err = s.ledger.RecordMutation(ctx, userID, refundAmount, domain.TransactionTypeRefundCredit, nil, nil)
			if err != nil {
				return err
			}
			if _, err := s.loans.ApplyAutoDeduction(ctx, userID, refundAmount, txn.TxnID); err != nil {
				return err
			}
		}

		result = &WithdrawResult{Refund: refund, Transaction: txn}
		return nil
	})
	if err != nil {
		return nil, err
	}

	body := fmt.Sprintf("Your %s withdrawal is complete; %.2f was credited to your balance.", serviceType, refundAmount)
	if mode == domain.RefundModeCash {
		body = fmt.Sprintf("Your %s withdrawal is complete; present your pickup token at the office to collect %.2f.", serviceType, refundAmount)
	}
	notifyUser(s.deliveries, user, "Withdrawal processed", body,
		map[string]string{"service": string(serviceType)})
	return result, nil
}

// CalculatePrice previews a purchase price without writing anything
func (s *MembershipService) CalculatePrice(ctx context.Context, userID int64, serviceType domain.ServiceType, months int, basePrice float64, couponCode string) (*domain.PriceBreakdown, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.discounts.Compute(ctx, user, serviceType, months, basePrice, couponCode)
}

func (s *MembershipService) getUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, postgres.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("membership service: failed to get user %d: %w", userID, err)
	}
	return user, nil
}
