package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/avc/studyhub-backend/internal/repository/postgres"
)

// LoanConfig carries the operator-tunable loan rules
type LoanConfig struct {
	MaxAmount float64
	// LowBalanceThreshold gates eligibility: loans exist only as an emergency
	// facility, a user with this much balance or more is not eligible
	LowBalanceThreshold float64
}

// LoanResult is the success payload of a disbursement
type LoanResult struct {
	Loan        *domain.Loan        `json:"loan"`
	Transaction *domain.Transaction `json:"transaction"`
	NewBalance  float64             `json:"new_balance"`
}

// LoanService handles loan issuance and the auto-deduction of outstanding
// loan balance from incoming credits
type LoanService struct {
	tx         domain.TxRunner
	userRepo   domain.UserRepository
	loanRepo   domain.LoanRepository
	ledger     domain.LedgerRecorder
	deliveries domain.DeliveryQueue
	cfg        LoanConfig
}

// NewLoanService creates a new LoanService
func NewLoanService(tx domain.TxRunner, userRepo domain.UserRepository, loanRepo domain.LoanRepository, ledger domain.LedgerRecorder, deliveries domain.DeliveryQueue, cfg LoanConfig) *LoanService {
	return &LoanService{
		tx:         tx,
		userRepo:   userRepo,
		loanRepo:   loanRepo,
		ledger:     ledger,
		deliveries: deliveries,
		cfg:        cfg,
	}
}

// RequestLoan checks eligibility and disburses in one transaction: the loan
// record, the balance credit and the ledger entry commit together or not at all
func (s *LoanService) RequestLoan(ctx context.Context, userID int64, amount float64) (*LoanResult, error) {
	if amount <= 0 {
		return nil, domain.E(domain.CodeInvalidArgument, "loan amount must be positive")
	}
	if amount > s.cfg.MaxAmount {
		return nil, domain.Ef(domain.CodeFailedPrecondition, "loan amount exceeds the maximum of %.2f", s.cfg.MaxAmount)
	}

	var result *LoanResult
	var user *domain.User
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.userRepo.GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, postgres.ErrUserNotFound) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("loan service: failed to get user %d: %w", userID, err)
		}

		if user.Balance >= s.cfg.LowBalanceThreshold {
			return domain.Ef(domain.CodeFailedPrecondition,
				"loans are available only when the balance is below %.2f", s.cfg.LowBalanceThreshold)
		}

		if _, err := s.loanRepo.GetActiveByUser(ctx, userID); err == nil {
			return domain.E(domain.CodeFailedPrecondition, "an active loan already exists")
		} else if !errors.Is(err, postgres.ErrLoanNotFound) {
			return fmt.Errorf("loan service: failed to check active loan for user %d: %w", userID, err)
		}

		txn, err := s.ledger.RecordMutation(ctx, userID, amount, domain.TransactionTypeLoanDisbursement, nil, nil)
		if err != nil {
			return err
		}

		loan, err := s.loanRepo.Create(ctx, &domain.Loan{
			UserID:         userID,
			Principal:      amount,
			CurrentBalance: amount,
			TakenAt:        time.Now(),
			Status:         domain.LoanStatusActive,
		})
		if err != nil {
			return fmt.Errorf("loan service: failed to create loan for user %d: %w", userID, err)
		}

		result = &LoanResult{
			Loan:        loan,
			Transaction: txn,
			NewBalance:  user.Balance + amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyUser(s.deliveries, user, "Loan disbursed",
		fmt.Sprintf("%.2f was credited to your balance; it will be repaid automatically from future credits.", amount),
		map[string]string{"txn_id": result.Transaction.TxnID})
	return result, nil
}

// ApplyAutoDeduction diverts the smaller of (incoming credit, outstanding
// loan balance) to repayment. Must run inside the transaction that recorded
// the credit; the repayment entry links back to the credit transaction.
// Returns the deducted amount, zero when no active loan exists.
func (s *LoanService) ApplyAutoDeduction(ctx context.Context, userID int64, incoming float64, creditTxnID string) (float64, error) {
	loan, err := s.loanRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, postgres.ErrLoanNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("loan service: failed to get active loan for user %d: %w", userID, err)
	}

	deduction := incoming
	if loan.CurrentBalance < deduction {
		deduction = loan.CurrentBalance
	}
	if deduction <= 0 {
		return 0, nil
	}

	if _, err := s.ledger.RecordMutation(ctx, userID, deduction, domain.TransactionTypeLoanRepayment, nil, &creditTxnID); err != nil {
		return 0, err
	}

	outstanding := loan.CurrentBalance - deduction
	status := domain.LoanStatusActive
	if outstanding <= 0 {
		outstanding = 0
		status = domain.LoanStatusRepaid
	}

	if err := s.loanRepo.UpdateOutstanding(ctx, loan.ID, outstanding, status); err != nil {
		return 0, fmt.Errorf("loan service: failed to update loan %d: %w", loan.ID, err)
	}

	return deduction, nil
}

// GetActiveLoan returns the user's active loan or NotFound
func (s *LoanService) GetActiveLoan(ctx context.Context, userID int64) (*domain.Loan, error) {
	loan, err := s.loanRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, postgres.ErrLoanNotFound) {
			return nil, domain.E(domain.CodeNotFound, "no active loan")
		}
		return nil, fmt.Errorf("loan service: failed to get active loan for user %d: %w", userID, err)
	}

	return loan, nil
}
