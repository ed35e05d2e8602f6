package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/avc/studyhub-backend/internal/service"
)

// WalletService defines the wallet operations the handler needs
type WalletService interface {
	TopUpBalance(ctx context.Context, userID int64, amount float64) (*service.CreditResult, error)
	RequestBalanceLoad(ctx context.Context, userID int64, amount float64) (*domain.BalanceLoadRequest, error)
	ApproveBalanceLoad(ctx context.Context, requestID int64) (*service.CreditResult, error)
	RequestBalanceRefund(ctx context.Context, userID int64, amount float64, reason string) (*domain.Refund, error)
	PlaceCanteenOrder(ctx context.Context, userID int64, items []domain.CanteenItem, note string) (*service.OrderResult, error)
	GetBalance(ctx context.Context, userID int64) (float64, error)
	GetTransactions(ctx context.Context, userID int64) ([]*domain.Transaction, error)
}

type WalletHandler struct {
	walletService WalletService
	logger        *zap.Logger
}

func NewWalletHandler(walletService WalletService, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		logger:        logger,
	}
}

type balanceResponse struct {
	Balance float64 `json:"balance"`
}

func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	balance, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, balanceResponse{Balance: balance})
}

func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	txns, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if len(txns) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, txns)
}

type topUpRequest struct {
	UserID int64   `json:"user_id"`
	Amount float64 `json:"amount"`
}

// TopUpBalance credits a member directly. Admin only; the route is behind
// RequireAdmin.
func (h *WalletHandler) TopUpBalance(w http.ResponseWriter, r *http.Request) {
	var req topUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.walletService.TopUpBalance(r.Context(), req.UserID, req.Amount)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

type loadRequestBody struct {
	Amount float64 `json:"amount"`
}

func (h *WalletHandler) RequestBalanceLoad(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req loadRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	loadReq, err := h.walletService.RequestBalanceLoad(r.Context(), userID, req.Amount)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusAccepted, loadReq)
}

type approveLoadRequest struct {
	RequestID int64 `json:"request_id"`
}

// ApproveBalanceLoad credits a pending load request. Admin only.
func (h *WalletHandler) ApproveBalanceLoad(w http.ResponseWriter, r *http.Request) {
	var req approveLoadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.walletService.ApproveBalanceLoad(r.Context(), req.RequestID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

type refundRequestBody struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason,omitempty"`
}

func (h *WalletHandler) RequestBalanceRefund(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req refundRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	refund, err := h.walletService.RequestBalanceRefund(r.Context(), userID, req.Amount, req.Reason)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusAccepted, refund)
}

type canteenOrderRequest struct {
	Items        []domain.CanteenItem `json:"items"`
	Note         string               `json:"note,omitempty"`
	TargetUserID int64                `json:"target_user_id,omitempty"` // admin only
}

func (h *WalletHandler) PlaceCanteenOrder(w http.ResponseWriter, r *http.Request) {
	var req canteenOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	userID, err := resolveTarget(r.Context(), req.TargetUserID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.walletService.PlaceCanteenOrder(r.Context(), userID, req.Items, req.Note)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}
