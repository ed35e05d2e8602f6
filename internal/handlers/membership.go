package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/avc/studyhub-backend/internal/service"
)

// MembershipService defines the membership lifecycle operations the handler needs
type MembershipService interface {
	PurchaseReadingRoom(ctx context.Context, userID int64, months int, registrationFee, monthlyFee float64, couponCode string) (*service.PurchaseResult, error)
	RenewReadingRoom(ctx context.Context, userID int64, duration int, durationType string, monthlyFee, dailyFee float64, couponCode string) (*service.PurchaseResult, error)
	PurchaseHostel(ctx context.Context, userID int64, buildingID, roomType string, months int, registrationFee float64, couponCode string) (*service.PurchaseResult, error)
	RenewHostel(ctx context.Context, userID int64, months int, couponCode string) (*service.PurchaseResult, error)
	WithdrawService(ctx context.Context, userID int64, serviceType domain.ServiceType, refundAmount float64, reason string, mode domain.RefundMode) (*service.WithdrawResult, error)
	CalculatePrice(ctx context.Context, userID int64, serviceType domain.ServiceType, months int, basePrice float64, couponCode string) (*domain.PriceBreakdown, error)
}

type MembershipHandler struct {
	membershipService MembershipService
	logger            *zap.Logger
}

func NewMembershipHandler(membershipService MembershipService, logger *zap.Logger) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
		logger:            logger,
	}
}

type purchaseReadingRoomRequest struct {
	Months          int     `json:"months"`
	RegistrationFee float64 `json:"registration_fee"`
	MonthlyFee      float64 `json:"monthly_fee"`
	CouponCode      string  `json:"coupon_code,omitempty"`
}

func (h *MembershipHandler) PurchaseReadingRoom(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req purchaseReadingRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.membershipService.PurchaseReadingRoom(r.Context(), userID,
		req.Months, req.RegistrationFee, req.MonthlyFee, req.CouponCode)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

type renewReadingRoomRequest struct {
	Duration     int     `json:"duration"`
	DurationType string  `json:"duration_type"` // months or days
	MonthlyFee   float64 `json:"monthly_fee"`
	DailyFee     float64 `json:"daily_fee"`
	CouponCode   string  `json:"coupon_code,omitempty"`
	TargetUserID int64   `json:"target_user_id,omitempty"` // admin only
}

func (h *MembershipHandler) RenewReadingRoom(w http.ResponseWriter, r *http.Request) {
	var req renewReadingRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	userID, err := resolveTarget(r.Context(), req.TargetUserID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.membershipService.RenewReadingRoom(r.Context(), userID,
		req.Duration, req.DurationType, req.MonthlyFee, req.DailyFee, req.CouponCode)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

type purchaseHostelRequest struct {
	BuildingID      string  `json:"building_id"`
	RoomType        string  `json:"room_type"`
	Months          int     `json:"months"`
	RegistrationFee float64 `json:"registration_fee"`
	CouponCode      string  `json:"coupon_code,omitempty"`
}

func (h *MembershipHandler) PurchaseHostel(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req purchaseHostelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.membershipService.PurchaseHostel(r.Context(), userID,
		req.BuildingID, req.RoomType, req.Months, req.RegistrationFee, req.CouponCode)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

type renewHostelRequest struct {
	Months       int    `json:"months"`
	CouponCode   string `json:"coupon_code,omitempty"`
	TargetUserID int64  `json:"target_user_id,omitempty"` // admin only
}

func (h *MembershipHandler) RenewHostel(w http.ResponseWriter, r *http.Request) {
	var req renewHostelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	userID, err := resolveTarget(r.Context(), req.TargetUserID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.membershipService.RenewHostel(r.Context(), userID, req.Months, req.CouponCode)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

type withdrawServiceRequest struct {
	ServiceType  domain.ServiceType `json:"service_type"`
	RefundAmount float64            `json:"refund_amount"`
	Reason       string             `json:"reason,omitempty"`
	RefundMode   domain.RefundMode  `json:"refund_mode"`
}

func (h *MembershipHandler) WithdrawService(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req withdrawServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.membershipService.WithdrawService(r.Context(), userID,
		req.ServiceType, req.RefundAmount, req.Reason, req.RefundMode)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

type calculatePriceRequest struct {
	ServiceType domain.ServiceType `json:"service_type"`
	Months      int                `json:"months"`
	BasePrice   float64            `json:"base_price"`
	CouponCode  string             `json:"coupon_code,omitempty"`
}

// CalculatePrice previews a purchase price without committing anything
func (h *MembershipHandler) CalculatePrice(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req calculatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	breakdown, err := h.membershipService.CalculatePrice(r.Context(), userID,
		req.ServiceType, req.Months, req.BasePrice, req.CouponCode)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, breakdown)
}

// resolveTarget returns the acting user, or the target user when an admin
// operates on someone else's membership
func resolveTarget(ctx context.Context, targetUserID int64) (int64, error) {
	userID, ok := GetUserID(ctx)
	if !ok {
		return 0, domain.E(domain.CodeUnauthenticated, "missing caller identity")
	}
	if targetUserID == 0 || targetUserID == userID {
		return userID, nil
	}

	role, _ := GetUserRole(ctx)
	if role != domain.RoleAdmin {
		return 0, domain.E(domain.CodePermissionDenied, "only an operator can act on another user")
	}

	return targetUserID, nil
}
