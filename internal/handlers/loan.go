package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/avc/studyhub-backend/internal/service"
)

// LoanService defines the loan operations the handler needs
type LoanService interface {
	RequestLoan(ctx context.Context, userID int64, amount float64) (*service.LoanResult, error)
	GetActiveLoan(ctx context.Context, userID int64) (*domain.Loan, error)
}

type LoanHandler struct {
	loanService LoanService
	logger      *zap.Logger
}

func NewLoanHandler(loanService LoanService, logger *zap.Logger) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
		logger:      logger,
	}
}

type loanRequest struct {
	Amount float64 `json:"amount"`
}

func (h *LoanHandler) RequestLoan(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req loanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.loanService.RequestLoan(r.Context(), userID, req.Amount)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *LoanHandler) GetActiveLoan(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	loan, err := h.loanService.GetActiveLoan(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, loan)
}
