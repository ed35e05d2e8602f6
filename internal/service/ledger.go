package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/avc/studyhub-backend/internal/repository/postgres"
	"github.com/avc/studyhub-backend/internal/utils/txid"
)

// txnPrefixes map ledger entry types to the prefix of the display ID
var txnPrefixes = map[domain.TransactionType]string{
	domain.TransactionTypePurchase:         "PUR",
	domain.TransactionTypeRenewal:          "REN",
	domain.TransactionTypeRefundCredit:     "RFD",
	domain.TransactionTypeBalanceTopup:     "TOP",
	domain.TransactionTypeBalanceLoad:      "LOD",
	domain.TransactionTypeLoanDisbursement: "LND",
	domain.TransactionTypeLoanRepayment:    "LNR",
	domain.TransactionTypeCanteenOrder:     "CTN",
}

// LedgerService funnels every balance mutation through one code path: the
// balance delta and the ledger row are written by the same open transaction,
// so neither can exist without the other.
type LedgerService struct {
	userRepo   domain.UserRepository
	ledgerRepo domain.LedgerRepository
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(userRepo domain.UserRepository, ledgerRepo domain.LedgerRepository) *LedgerService {
	return &LedgerService{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
	}
}

// RecordMutation applies the balance change implied by txnType and appends
// the matching ledger entry. The insufficiency check happens on the
// in-transaction balance read, so two racing debits cannot both pass it.
func (s *LedgerService) RecordMutation(ctx context.Context, userID int64, amount float64, txnType domain.TransactionType, breakdown *domain.PriceBreakdown, linkedTxnID *string) (*domain.Transaction, error) {
	if amount < 0 {
		return nil, domain.Ef(domain.CodeInvalidArgument, "amount must not be negative, got %.2f", amount)
	}

	delta := amount
	if !txnType.IsCredit() {
		delta = -amount
	}

	if _, err := s.userRepo.ApplyBalanceDelta(ctx, userID, delta); err != nil {
		if errors.Is(err, postgres.ErrInsufficientFunds) {
			return nil, domain.ErrInsufficientFunds
		}
		if errors.Is(err, postgres.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("ledger service: failed to apply balance delta for user %d: %w", userID, err)
	}

	prefix, ok := txnPrefixes[txnType]
	if !ok {
		return nil, domain.Ef(domain.CodeInvalidArgument, "unknown transaction type %q", txnType)
	}

	txn := &domain.Transaction{
		TxnID:       txid.New(prefix),
		UserID:      userID,
		Type:        txnType,
		Amount:      amount,
		Breakdown:   breakdown,
		LinkedTxnID: linkedTxnID,
	}

	txn, err := s.ledgerRepo.Insert(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("ledger service: failed to insert ledger entry for user %d: %w", userID, err)
	}

	return txn, nil
}

// GetTransactions returns the user's ledger history, newest first
func (s *LedgerService) GetTransactions(ctx context.Context, userID int64) ([]*domain.Transaction, error) {
	txns, err := s.ledgerRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ledger service: failed to get transactions for user %d: %w", userID, err)
	}

	return txns, nil
}

// AuditDrift compares the signed ledger sum against the authoritative
// balance; any difference means a mutation bypassed RecordMutation
func (s *LedgerService) AuditDrift(ctx context.Context, userID int64) (float64, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, postgres.ErrUserNotFound) {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("ledger service: failed to get user %d: %w", userID, err)
	}

	sum, err := s.ledgerRepo.SumSigned(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("ledger service: failed to sum ledger for user %d: %w", userID, err)
	}

	return user.Balance - sum, nil
}
