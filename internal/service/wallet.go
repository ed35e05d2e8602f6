package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/avc/studyhub-backend/internal/repository/postgres"
)

// CreditResult is the success payload of a crediting operation; Deducted is
// the part diverted to an outstanding loan before the rest became spendable
type CreditResult struct {
	Transaction *domain.Transaction `json:"transaction"`
	Credited    float64             `json:"credited"`
	Deducted    float64             `json:"deducted_for_loan,omitempty"`
	NewBalance  float64             `json:"new_balance"`
}

// OrderResult is the success payload of a canteen order
type OrderResult struct {
	Order       *domain.CanteenOrder `json:"order"`
	Transaction *domain.Transaction  `json:"transaction"`
	NewBalance  float64              `json:"new_balance"`
}

// WalletService handles balance credits, refund requests and canteen orders.
// Every credit passes through loan auto-deduction inside the same transaction,
// and every committed mutation queues a confirmation delivery.
type WalletService struct {
	tx          domain.TxRunner
	userRepo    domain.UserRepository
	ledgerRepo  domain.LedgerRepository
	refundRepo  domain.RefundRepository
	loadRepo    domain.LoadRequestRepository
	canteenRepo domain.CanteenRepository
	ledger      domain.LedgerRecorder
	loans       *LoanService
	deliveries  domain.DeliveryQueue
}

// NewWalletService creates a new WalletService
func NewWalletService(
	tx domain.TxRunner,
	userRepo domain.UserRepository,
	ledgerRepo domain.LedgerRepository,
	refundRepo domain.RefundRepository,
	loadRepo domain.LoadRequestRepository,
	canteenRepo domain.CanteenRepository,
	ledger domain.LedgerRecorder,
	loans *LoanService,
	deliveries domain.DeliveryQueue,
) *WalletService {
	return &WalletService{
		tx:          tx,
		userRepo:    userRepo,
		ledgerRepo:  ledgerRepo,
		refundRepo:  refundRepo,
		loadRepo:    loadRepo,
		canteenRepo: canteenRepo,
		ledger:      ledger,
		loans:       loans,
		deliveries:  deliveries,
	}
}

// TopUpBalance credits a user directly. Operator-privileged; the role check
// lives in the handler chain.
func (s *WalletService) TopUpBalance(ctx context.Context, userID int64, amount float64) (*CreditResult, error) {
	if amount <= 0 {
		return nil, domain.E(domain.CodeInvalidArgument, "top-up amount must be positive")
	}

	return s.credit(ctx, userID, amount, domain.TransactionTypeBalanceTopup)
}

// RequestBalanceLoad records a member-initiated top-up awaiting operator approval
func (s *WalletService) RequestBalanceLoad(ctx context.Context, userID int64, amount float64) (*domain.BalanceLoadRequest, error) {
	if amount <= 0 {
		return nil, domain.E(domain.CodeInvalidArgument, "load amount must be positive")
	}

	req, err := s.loadRepo.Create(ctx, userID, amount)
	if err != nil {
		return nil, fmt.Errorf("wallet service: failed to create load request for user %d: %w", userID, err)
	}

	return req, nil
}

// ApproveBalanceLoad credits a pending load request. A request that was
// already approved or rejected fails with FailedPrecondition; the
// pending-only guard in storage makes double approval impossible even under
// concurrent calls.
func (s *WalletService) ApproveBalanceLoad(ctx context.Context, requestID int64) (*CreditResult, error) {
	var result *CreditResult
	var user *domain.User
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		req, err := s.loadRepo.GetByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, postgres.ErrLoadRequestNotFound) {
				return domain.Ef(domain.CodeNotFound, "load request %d not found", requestID)
			}
			return fmt.Errorf("wallet service: failed to get load request %d: %w", requestID, err)
		}
		if req.Status != domain.LoadRequestPending {
			return domain.E(domain.CodeFailedPrecondition, "load request already processed")
		}

		if err := s.loadRepo.MarkProcessed(ctx, requestID, domain.LoadRequestApproved, time.Now()); err != nil {
			if errors.Is(err, postgres.ErrLoadRequestNotFound) {
				return domain.E(domain.CodeFailedPrecondition, "load request already processed")
			}
			return fmt.Errorf("wallet service: failed to mark load request %d: %w", requestID, err)
		}

		result, user, err = s.creditInTx(ctx, req.UserID, req.Amount, domain.TransactionTypeBalanceLoad)
		return err
	})
	if err != nil {
		return nil, err
	}

	notifyUser(s.deliveries, user, "Balance load approved",
		fmt.Sprintf("Your load request was approved; %.2f was credited to your balance.", result.Credited),
		map[string]string{"txn_id": result.Transaction.TxnID})
	return result, nil
}

// RequestBalanceRefund records a pending cash-out of wallet balance. The
// amount must fit inside the current balance; nothing is debited until an
// operator completes the payout.
func (s *WalletService) RequestBalanceRefund(ctx context.Context, userID int64, amount float64, reason string) (*domain.Refund, error) {
	if amount <= 0 {
		return nil, domain.E(domain.CodeInvalidArgument, "refund amount must be positive")
	}

	var refund *domain.Refund
	var user *domain.User
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.userRepo.GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, postgres.ErrUserNotFound) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("wallet service: failed to get user %d: %w", userID, err)
		}
		if amount > user.Balance {
			return domain.ErrInsufficientFunds
		}

		refund, err = s.refundRepo.Create(ctx, &domain.Refund{
			UserID:           userID,
			ServiceType:      domain.ServiceBalance,
			AmountRequested:  amount,
			AmountCalculated: amount,
			Mode:             domain.RefundModeCash,
			Status:           domain.RefundStatusPending,
			Reason:           reason,
		})
		if err != nil {
			return fmt.Errorf("wallet service: failed to create refund for user %d: %w", userID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyUser(s.deliveries, user, "Refund request received",
		fmt.Sprintf("Your balance refund request for %.2f is pending; you will be notified when the payout is ready.", amount),
		nil)
	return refund, nil
}

// PlaceCanteenOrder debits the wallet for a canteen cart. Line totals are
// recomputed here from unit price and quantity; the client total is ignored.
func (s *WalletService) PlaceCanteenOrder(ctx context.Context, userID int64, items []domain.CanteenItem, note string) (*OrderResult, error) {
	if len(items) == 0 {
		return nil, domain.E(domain.CodeInvalidArgument, "order must contain at least one item")
	}

	var total float64
	for _, item := range items {
		if item.Name == "" || item.Price < 0 || item.Quantity < 1 {
			return nil, domain.E(domain.CodeInvalidArgument, "invalid order item")
		}
		total += item.Price * float64(item.Quantity)
	}

	var result *OrderResult
	var user *domain.User
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.userRepo.GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, postgres.ErrUserNotFound) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("wallet service: failed to get user %d: %w", userID, err)
		}

		txn, err := s.ledger.RecordMutation(ctx, userID, total, domain.TransactionTypeCanteenOrder, nil, nil)
		if err != nil {
			return err
		}

		order, err := s.canteenRepo.CreateOrder(ctx, &domain.CanteenOrder{
			UserID: userID,
			Items:  items,
			Total:  total,
			Note:   note,
		})
		if err != nil {
			return fmt.Errorf("wallet service: failed to create canteen order for user %d: %w", userID, err)
		}

		result = &OrderResult{
			Order:       order,
			Transaction: txn,
			NewBalance:  user.Balance - total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifyUser(s.deliveries, user, "Canteen order placed",
		fmt.Sprintf("Order %s for %.2f was charged to your balance.", result.Transaction.TxnID, total),
		map[string]string{"txn_id": result.Transaction.TxnID})
	return result, nil
}

// GetBalance returns the authoritative wallet balance
func (s *WalletService) GetBalance(ctx context.Context, userID int64) (float64, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, postgres.ErrUserNotFound) {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("wallet service: failed to get user %d: %w", userID, err)
	}

	return user.Balance, nil
}

// GetTransactions returns the user's ledger history, newest first
func (s *WalletService) GetTransactions(ctx context.Context, userID int64) ([]*domain.Transaction, error) {
	txns, err := s.ledgerRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wallet service: failed to list transactions for user %d: %w", userID, err)
	}

	return txns, nil
}

// ListRefunds returns the user's refund records, newest first
func (s *WalletService) ListRefunds(ctx context.Context, userID int64) ([]*domain.Refund, error) {
	refunds, err := s.refundRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wallet service: failed to list refunds for user %d: %w", userID, err)
	}

	return refunds, nil
}

// credit opens a transaction around creditInTx and queues the confirmation
// once it commits
func (s *WalletService) credit(ctx context.Context, userID int64, amount float64, txnType domain.TransactionType) (*CreditResult, error) {
	var result *CreditResult
	var user *domain.User
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		result, user, err = s.creditInTx(ctx, userID, amount, txnType)
		return err
	})
	if err != nil {
		return nil, err
	}

	notifyUser(s.deliveries, user, "Balance credited",
		fmt.Sprintf("%.2f was credited to your balance.", result.Credited),
		map[string]string{"txn_id": result.Transaction.TxnID})
	return result, nil
}

// creditInTx records the credit and runs loan auto-deduction against it.
// Both ledger rows land in the caller's transaction; the fetched user is
// returned so callers can address a delivery after commit.
func (s *WalletService) creditInTx(ctx context.Context, userID int64, amount float64, txnType domain.TransactionType) (*CreditResult, *domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, postgres.ErrUserNotFound) {
			return nil, nil, domain.ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("wallet service: failed to get user %d: %w", userID, err)
	}

	txn, err := s.ledger.RecordMutation(ctx, userID, amount, txnType, nil, nil)
	if err != nil {
		return nil, nil, err
	}

	deducted, err := s.loans.ApplyAutoDeduction(ctx, userID, amount, txn.TxnID)
	if err != nil {
		return nil, nil, err
	}

	return &CreditResult{
		Transaction: txn,
		Credited:    amount,
		Deducted:    deducted,
		NewBalance:  user.Balance + amount - deducted,
	}, user, nil
}
