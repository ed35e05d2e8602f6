package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/avc/studyhub-backend/internal/domain"
)

// AccrualConfig carries the scheduler tunables
type AccrualConfig struct {
	// LoanDailyRate is the compounding rate applied once per day past the deadline
	LoanDailyRate float64
	// LoanDeadlineDays is the interest-free period measured in whole days
	LoanDeadlineDays int
	// MinInterestGap makes the interest job idempotent under re-runs: interest
	// is skipped unless at least this much time passed since the last application
	MinInterestGap time.Duration

	DailyFineReadingRoom float64
	DailyFineHostel      float64

	// WarningLead is how far ahead of the due date expiry warnings go out
	WarningLead time.Duration
	// NotifyHour is the local hour the hourly notification sweep acts in
	NotifyHour int
}

// AccrualService runs the scheduled jobs: loan interest, membership expiry
// and expiry warnings. Jobs iterate users with plain batched writes; one
// user's failure is logged and never stops the rest of the batch.
type AccrualService struct {
	userRepo   domain.UserRepository
	loanRepo   domain.LoanRepository
	allocator  *AllocatorService
	deliveries domain.DeliveryQueue
	cfg        AccrualConfig
	log        *zap.Logger
}

// NewAccrualService creates a new AccrualService
func NewAccrualService(
	userRepo domain.UserRepository,
	loanRepo domain.LoanRepository,
	allocator *AllocatorService,
	deliveries domain.DeliveryQueue,
	cfg AccrualConfig,
	log *zap.Logger,
) *AccrualService {
	return &AccrualService{
		userRepo:   userRepo,
		loanRepo:   loanRepo,
		allocator:  allocator,
		deliveries: deliveries,
		cfg:        cfg,
		log:        log,
	}
}

// RunDailyInterestAccrual compounds overdue loans by (1 + dailyRate). A loan
// is overdue once whole elapsed days since disbursement exceed the deadline.
// The minimum-gap guard makes a same-day re-run a no-op.
func (s *AccrualService) RunDailyInterestAccrual(ctx context.Context, now time.Time) error {
	loans, err := s.loanRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("accrual service: failed to list active loans: %w", err)
	}

	applied := 0
	for _, loan := range loans {
		elapsedDays := int(math.Ceil(now.Sub(loan.TakenAt).Hours() / 24))
		if elapsedDays <= s.cfg.LoanDeadlineDays {
			continue
		}
		if now.Sub(loan.LastInterestApplied) < s.cfg.MinInterestGap {
			continue
		}

		newBalance := loan.CurrentBalance * (1 + s.cfg.LoanDailyRate)
		if err := s.loanRepo.ApplyInterest(ctx, loan.ID, newBalance, now); err != nil {
			s.log.Error("failed to apply loan interest",
				zap.Int64("loan_id", loan.ID),
				zap.Error(err))
			continue
		}
		applied++
	}

	s.log.Info("daily interest accrual finished",
		zap.Int("active_loans", len(loans)),
		zap.Int("applied", applied))
	return nil
}

// RunExpirationSweep processes memberships past their due date. Daily-policy
// reading-room users lose the seat immediately; standard-policy users keep it,
// enter grace and accrue the daily fine. Hostel users always follow the
// grace-and-fine rule. The fine increments unconditionally once per run, so
// the schedule must fire at most once per day.
func (s *AccrualService) RunExpirationSweep(ctx context.Context, now time.Time) error {
	overdue, err := s.userRepo.ListOverdue(ctx, domain.ServiceReadingRoom, now)
	if err != nil {
		return fmt.Errorf("accrual service: failed to list overdue reading room users: %w", err)
	}
	for _, user := range overdue {
		if user.ExpiryPolicy == domain.ExpiryPolicyDaily {
			if err := s.expireDailyMembership(ctx, user.ID); err != nil {
				s.log.Error("failed to expire daily membership",
					zap.Int64("user_id", user.ID),
					zap.Error(err))
			}
			continue
		}

		if err := s.userRepo.ApplyFine(ctx, user.ID, domain.ServiceReadingRoom, s.cfg.DailyFineReadingRoom); err != nil {
			s.log.Error("failed to apply reading room fine",
				zap.Int64("user_id", user.ID),
				zap.Error(err))
		}
	}

	overdueHostel, err := s.userRepo.ListOverdue(ctx, domain.ServiceHostel, now)
	if err != nil {
		return fmt.Errorf("accrual service: failed to list overdue hostel users: %w", err)
	}
	for _, user := range overdueHostel {
		if err := s.userRepo.ApplyFine(ctx, user.ID, domain.ServiceHostel, s.cfg.DailyFineHostel); err != nil {
			s.log.Error("failed to apply hostel fine",
				zap.Int64("user_id", user.ID),
				zap.Error(err))
		}
	}

	s.log.Info("expiration sweep finished",
		zap.Int("reading_room_overdue", len(overdue)),
		zap.Int("hostel_overdue", len(overdueHostel)))
	return nil
}

// expireDailyMembership releases the seat and closes the membership
func (s *AccrualService) expireDailyMembership(ctx context.Context, userID int64) error {
	if err := s.allocator.ReleaseSeat(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.ClearMembership(ctx, userID, domain.ServiceReadingRoom)
}

// RunExpiryNotificationSweep warns users whose due date is inside the warning
// lead. It runs hourly but acts only during the configured local hour; the
// per-service warning timestamp keeps every user at one warning per cycle.
func (s *AccrualService) RunExpiryNotificationSweep(ctx context.Context, now time.Time) error {
	if now.Hour() != s.cfg.NotifyHour {
		return nil
	}

	until := now.Add(s.cfg.WarningLead)
	for _, service := range []domain.ServiceType{domain.ServiceReadingRoom, domain.ServiceHostel} {
		expiring, err := s.userRepo.ListExpiring(ctx, service, until, s.cfg.WarningLead)
		if err != nil {
			return fmt.Errorf("accrual service: failed to list expiring %s users: %w", service, err)
		}

		for _, user := range expiring {
			if err := s.warnUser(ctx, user, service, now); err != nil {
				s.log.Error("failed to send expiry warning",
					zap.Int64("user_id", user.ID),
					zap.String("service", string(service)),
					zap.Error(err))
			}
		}
	}

	return nil
}

// warnUser hands the delivery to the dispatch pool, then records the warning
// timestamp. A delivery dropped on a full queue leaves the timestamp alone so
// the next sweep retries the user.
func (s *AccrualService) warnUser(ctx context.Context, user *domain.User, service domain.ServiceType, now time.Time) error {
	due := user.NextPaymentDue
	if service == domain.ServiceHostel {
		due = user.HostelNextPaymentDue
	}
	if due == nil {
		return nil
	}

	accepted := s.deliveries.Enqueue(domain.Delivery{
		UserID: user.ID,
		Tokens: user.DeviceTokens,
		Phone:  user.Phone,
		Notice: domain.Notification{
			Title: "Membership expiring soon",
			Body: fmt.Sprintf("Your %s membership is due on %s. Renew to avoid fines.",
				serviceLabel(service), due.Format("02 Jan 2006")),
			Data: map[string]string{"service": string(service)},
		},
	})
	if !accepted {
		s.log.Warn("expiry warning dropped, will retry next sweep",
			zap.Int64("user_id", user.ID),
			zap.String("service", string(service)))
		return nil
	}

	return s.userRepo.MarkExpiryWarned(ctx, user.ID, service, now)
}

func serviceLabel(service domain.ServiceType) string {
	switch service {
	case domain.ServiceReadingRoom:
		return "reading room"
	case domain.ServiceHostel:
		return "hostel"
	}
	return string(service)
}
