package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avc/studyhub-backend/internal/domain"
	handlermocks "github.com/avc/studyhub-backend/internal/handlers/mocks"
	"github.com/avc/studyhub-backend/internal/service"
)

func authedContext(req *http.Request, userID int64, role string) context.Context {
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	return context.WithValue(ctx, UserRoleKey, role)
}

func TestAuthHandler_Register(t *testing.T) {
	mockService := handlermocks.NewAuthServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAuthHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "user", "pass", "+79990001122").Return("token", nil).Once()

		body := `{"login":"user","password":"pass","phone":"+79990001122"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Authorization"), "Bearer token")
	})

	t.Run("User exists", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "user", "pass", "").Return("", domain.ErrUserExists).Once()

		body := `{"login":"user","password":"pass"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		body := `{"login":}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	mockService := handlermocks.NewAuthServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAuthHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "user", "pass").Return("token", nil).Once()

		body := `{"login":"user","password":"pass"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Authorization"), "Bearer token")
	})

	t.Run("Wrong credentials", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "user", "wrong").Return("", domain.ErrInvalidCredentials).Once()

		body := `{"login":"user","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestWalletHandler_GetBalance(t *testing.T) {
	mockService := handlermocks.NewWalletServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewWalletHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().GetBalance(mock.Anything, int64(1)).Return(420.5, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.GetBalance(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)

		var resp balanceResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 420.5, resp.Balance)
	})

	t.Run("No identity in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
		w := httptest.NewRecorder()

		handler.GetBalance(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestWalletHandler_GetTransactions(t *testing.T) {
	mockService := handlermocks.NewWalletServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewWalletHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		txns := []*domain.Transaction{
			{ID: 2, TxnID: "PUR-20260901-abc123", UserID: 1, Type: domain.TransactionTypePurchase, Amount: 500},
			{ID: 1, TxnID: "TOP-20260901-xyz789", UserID: 1, Type: domain.TransactionTypeBalanceTopup, Amount: 1000},
		}
		mockService.EXPECT().GetTransactions(mock.Anything, int64(1)).Return(txns, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/transactions", nil)
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.GetTransactions(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)

		var got []*domain.Transaction
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		require.Len(t, got, 2)
		assert.Equal(t, "PUR-20260901-abc123", got[0].TxnID)
	})

	t.Run("Empty history", func(t *testing.T) {
		mockService.EXPECT().GetTransactions(mock.Anything, int64(1)).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/transactions", nil)
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.GetTransactions(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestWalletHandler_TopUpBalance(t *testing.T) {
	mockService := handlermocks.NewWalletServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewWalletHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		result := &service.CreditResult{Credited: 500, NewBalance: 600}
		mockService.EXPECT().TopUpBalance(mock.Anything, int64(3), 500.0).Return(result, nil).Once()

		body := `{"user_id":3,"amount":500}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/balance/topup", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.TopUpBalance(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var got service.CreditResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, 600.0, got.NewBalance)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		mockService.EXPECT().TopUpBalance(mock.Anything, int64(3), -1.0).
			Return(nil, domain.E(domain.CodeInvalidArgument, "amount must be positive")).Once()

		body := `{"user_id":3,"amount":-1}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/balance/topup", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.TopUpBalance(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWalletHandler_BalanceLoads(t *testing.T) {
	mockService := handlermocks.NewWalletServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewWalletHandler(mockService, logger)

	t.Run("Request accepted", func(t *testing.T) {
		loadReq := &domain.BalanceLoadRequest{ID: 4, UserID: 1, Amount: 300, Status: domain.LoadRequestPending}
		mockService.EXPECT().RequestBalanceLoad(mock.Anything, int64(1), 300.0).Return(loadReq, nil).Once()

		body := `{"amount":300}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/balance/load", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.RequestBalanceLoad(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("Approve credits the pending request", func(t *testing.T) {
		result := &service.CreditResult{Credited: 300, NewBalance: 350}
		mockService.EXPECT().ApproveBalanceLoad(mock.Anything, int64(4)).Return(result, nil).Once()

		body := `{"request_id":4}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/balance/load/approve", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.ApproveBalanceLoad(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Approve unknown request", func(t *testing.T) {
		mockService.EXPECT().ApproveBalanceLoad(mock.Anything, int64(99)).
			Return(nil, domain.E(domain.CodeNotFound, "load request not found")).Once()

		body := `{"request_id":99}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/balance/load/approve", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.ApproveBalanceLoad(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestWalletHandler_RequestBalanceRefund(t *testing.T) {
	mockService := handlermocks.NewWalletServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewWalletHandler(mockService, logger)

	t.Run("Accepted", func(t *testing.T) {
		refund := &domain.Refund{ID: 5, UserID: 1, AmountRequested: 200, Status: domain.RefundStatusPending}
		mockService.EXPECT().RequestBalanceRefund(mock.Anything, int64(1), 200.0, "moving out").Return(refund, nil).Once()

		body := `{"amount":200,"reason":"moving out"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/balance/refund", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.RequestBalanceRefund(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("More than the balance", func(t *testing.T) {
		mockService.EXPECT().RequestBalanceRefund(mock.Anything, int64(1), 5000.0, "").
			Return(nil, domain.ErrInsufficientFunds).Once()

		body := `{"amount":5000}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/balance/refund", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.RequestBalanceRefund(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})
}

func TestWalletHandler_PlaceCanteenOrder(t *testing.T) {
	mockService := handlermocks.NewWalletServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewWalletHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		items := []domain.CanteenItem{{Name: "tea", Price: 20, Quantity: 2}}
		result := &service.OrderResult{NewBalance: 960}
		mockService.EXPECT().PlaceCanteenOrder(mock.Anything, int64(1), items, "no sugar").Return(result, nil).Once()

		body := `{"items":[{"name":"tea","price":20,"quantity":2}],"note":"no sugar"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/canteen/order", bytes.NewBufferString(body))
		ctx := authedContext(req, 1, domain.RoleMember)
		w := httptest.NewRecorder()

		handler.PlaceCanteenOrder(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Member cannot order for another user", func(t *testing.T) {
		body := `{"items":[{"name":"tea","price":20,"quantity":2}],"target_user_id":9}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/canteen/order", bytes.NewBufferString(body))
		ctx := authedContext(req, 1, domain.RoleMember)
		w := httptest.NewRecorder()

		handler.PlaceCanteenOrder(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin orders for another user", func(t *testing.T) {
		items := []domain.CanteenItem{{Name: "tea", Price: 20, Quantity: 1}}
		mockService.EXPECT().PlaceCanteenOrder(mock.Anything, int64(9), items, "").
			Return(&service.OrderResult{NewBalance: 80}, nil).Once()

		body := `{"items":[{"name":"tea","price":20,"quantity":1}],"target_user_id":9}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/canteen/order", bytes.NewBufferString(body))
		ctx := authedContext(req, 2, domain.RoleAdmin)
		w := httptest.NewRecorder()

		handler.PlaceCanteenOrder(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		items := []domain.CanteenItem{{Name: "lunch", Price: 500, Quantity: 1}}
		mockService.EXPECT().PlaceCanteenOrder(mock.Anything, int64(1), items, "").
			Return(nil, domain.ErrInsufficientFunds).Once()

		body := `{"items":[{"name":"lunch","price":500,"quantity":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/canteen/order", bytes.NewBufferString(body))
		ctx := authedContext(req, 1, domain.RoleMember)
		w := httptest.NewRecorder()

		handler.PlaceCanteenOrder(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})
}

func TestMembershipHandler_PurchaseReadingRoom(t *testing.T) {
	mockService := handlermocks.NewMembershipServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewMembershipHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		result := &service.PurchaseResult{NewBalance: 6500, NextDue: time.Now().AddDate(0, 3, 0)}
		mockService.EXPECT().PurchaseReadingRoom(mock.Anything, int64(1), 3, 500.0, 1000.0, "").Return(result, nil).Once()

		body := `{"months":3,"registration_fee":500,"monthly_fee":1000}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/membership/reading-room", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.PurchaseReadingRoom(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)

		var got service.PurchaseResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, 6500.0, got.NewBalance)
	})

	t.Run("Already active", func(t *testing.T) {
		mockService.EXPECT().PurchaseReadingRoom(mock.Anything, int64(1), 3, 500.0, 1000.0, "").
			Return(nil, domain.E(domain.CodeFailedPrecondition, "reading room membership already active")).Once()

		body := `{"months":3,"registration_fee":500,"monthly_fee":1000}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/membership/reading-room", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.PurchaseReadingRoom(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		mockService.EXPECT().PurchaseReadingRoom(mock.Anything, int64(1), 3, 500.0, 1000.0, "").
			Return(nil, domain.ErrInsufficientFunds).Once()

		body := `{"months":3,"registration_fee":500,"monthly_fee":1000}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/membership/reading-room", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.PurchaseReadingRoom(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("No identity in context", func(t *testing.T) {
		body := `{"months":3}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/membership/reading-room", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.PurchaseReadingRoom(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestMembershipHandler_RenewReadingRoom(t *testing.T) {
	mockService := handlermocks.NewMembershipServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewMembershipHandler(mockService, logger)

	t.Run("Member renews own membership", func(t *testing.T) {
		result := &service.PurchaseResult{NewBalance: 4000}
		mockService.EXPECT().RenewReadingRoom(mock.Anything, int64(1), 2, "months", 1000.0, 0.0, "").Return(result, nil).Once()

		body := `{"duration":2,"duration_type":"months","monthly_fee":1000}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/membership/reading-room/renew", bytes.NewBufferString(body))
		ctx := authedContext(req, 1, domain.RoleMember)
		w := httptest.NewRecorder()

		handler.RenewReadingRoom(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Admin renews for another member", func(t *testing.T) {
		result := &service.PurchaseResult{NewBalance: 900}
		mockService.EXPECT().RenewReadingRoom(mock.Anything, int64(7), 7, "days", 0.0, 50.0, "").Return(result, nil).Once()

		body := `{"duration":7,"duration_type":"days","daily_fee":50,"target_user_id":7}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/membership/reading-room/renew", bytes.NewBufferString(body))
		ctx := authedContext(req, 2, domain.RoleAdmin)
		w := httptest.NewRecorder()

		handler.RenewReadingRoom(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Member cannot renew for another user", func(t *testing.T) {
		body := `{"duration":1,"duration_type":"months","monthly_fee":1000,"target_user_id":7}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/membership/reading-room/renew", bytes.NewBufferString(body))
		ctx := authedContext(req, 1, domain.RoleMember)
		w := httptest.NewRecorder()

		handler.RenewReadingRoom(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestMembershipHandler_Hostel(t *testing.T) {
	mockService := handlermocks.NewMembershipServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewMembershipHandler(mockService, logger)

	t.Run("Purchase success", func(t *testing.T) {
		result := &service.PurchaseResult{
			NewBalance: 3000,
			Assignment: &domain.HostelAssignment{BuildingID: "B1", RoomID: "101", BedNumber: 2},
		}
		mockService.EXPECT().PurchaseHostel(mock.Anything, int64(1), "B1", "standard", 3, 1000.0, "").Return(result, nil).Once()

		body := `{"building_id":"B1","room_type":"standard","months":3,"registration_fee":1000}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/membership/hostel", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.PurchaseHostel(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)

		var got service.PurchaseResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		require.NotNil(t, got.Assignment)
		assert.Equal(t, 2, got.Assignment.BedNumber)
	})

	t.Run("No beds left", func(t *testing.T) {
		mockService.EXPECT().PurchaseHostel(mock.Anything, int64(1), "B1", "standard", 3, 1000.0, "").
			Return(nil, domain.E(domain.CodeResourceExhausted, "no free beds in the requested building")).Once()

		body := `{"building_id":"B1","room_type":"standard","months":3,"registration_fee":1000}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/membership/hostel", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.PurchaseHostel(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Renew success", func(t *testing.T) {
		result := &service.PurchaseResult{NewBalance: 800}
		mockService.EXPECT().RenewHostel(mock.Anything, int64(1), 2, "WELCOME").Return(result, nil).Once()

		body := `{"months":2,"coupon_code":"WELCOME"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/membership/hostel/renew", bytes.NewBufferString(body))
		ctx := authedContext(req, 1, domain.RoleMember)
		w := httptest.NewRecorder()

		handler.RenewHostel(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestMembershipHandler_WithdrawService(t *testing.T) {
	mockService := handlermocks.NewMembershipServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewMembershipHandler(mockService, logger)

	t.Run("Wallet refund", func(t *testing.T) {
		result := &service.WithdrawResult{
			Refund: &domain.Refund{ID: 3, Status: domain.RefundStatusCompleted, Mode: domain.RefundModeWallet},
		}
		mockService.EXPECT().WithdrawService(mock.Anything, int64(1),
			domain.ServiceReadingRoom, 800.0, "schedule change", domain.RefundModeWallet).Return(result, nil).Once()

		body := `{"service_type":"reading_room","refund_amount":800,"reason":"schedule change","refund_mode":"wallet"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/membership/withdraw", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.WithdrawService(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Nothing to withdraw", func(t *testing.T) {
		mockService.EXPECT().WithdrawService(mock.Anything, int64(1),
			domain.ServiceHostel, 0.0, "", domain.RefundModeCash).
			Return(nil, domain.E(domain.CodeFailedPrecondition, "no active hostel assignment")).Once()

		body := `{"service_type":"hostel","refund_mode":"cash"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/membership/withdraw", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.WithdrawService(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestMembershipHandler_CalculatePrice(t *testing.T) {
	mockService := handlermocks.NewMembershipServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewMembershipHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		breakdown := &domain.PriceBreakdown{BasePrice: 6000, FinalPrice: 5400}
		mockService.EXPECT().CalculatePrice(mock.Anything, int64(1),
			domain.ServiceReadingRoom, 6, 6000.0, "").Return(breakdown, nil).Once()

		body := `{"service_type":"reading_room","months":6,"base_price":6000}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/membership/price", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.CalculatePrice(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)

		var got domain.PriceBreakdown
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, 5400.0, got.FinalPrice)
	})

	t.Run("Unknown coupon", func(t *testing.T) {
		mockService.EXPECT().CalculatePrice(mock.Anything, int64(1),
			domain.ServiceReadingRoom, 1, 1000.0, "NOPE").
			Return(nil, domain.E(domain.CodeNotFound, "coupon not found")).Once()

		body := `{"service_type":"reading_room","months":1,"base_price":1000,"coupon_code":"NOPE"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/membership/price", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.CalculatePrice(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookingHandler_AllocateSeat(t *testing.T) {
	mockService := handlermocks.NewAllocatorServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewBookingHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		assignment := &domain.SeatAssignment{ID: 1, UserID: 3, RoomID: 1, SeatID: 12}
		mockService.EXPECT().AllocateSeat(mock.Anything, int64(3), 1, 12, int64(2)).Return(assignment, nil).Once()

		body := `{"user_id":3,"room_id":1,"seat_id":12}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/seats/allocate", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(2))
		w := httptest.NewRecorder()

		handler.AllocateSeat(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)

		var got domain.SeatAssignment
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, 12, got.SeatID)
	})

	t.Run("Seat occupied", func(t *testing.T) {
		mockService.EXPECT().AllocateSeat(mock.Anything, int64(3), 1, 12, int64(2)).
			Return(nil, domain.E(domain.CodeFailedPrecondition, "seat is occupied by another member")).Once()

		body := `{"user_id":3,"room_id":1,"seat_id":12}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/seats/allocate", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(2))
		w := httptest.NewRecorder()

		handler.AllocateSeat(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("No identity in context", func(t *testing.T) {
		body := `{"user_id":3,"room_id":1,"seat_id":12}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/seats/allocate", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.AllocateSeat(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestBookingHandler_BookDiscussionRoom(t *testing.T) {
	mockService := handlermocks.NewAllocatorServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewBookingHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		booking := &domain.DiscussionBooking{ID: 1, RoomID: "D2", SlotID: 3, TeamName: "distsys"}
		mockService.EXPECT().AllocateDiscussionSlot(mock.Anything, int64(1),
			date, 3, "", "distsys", []int64{2, 4}).Return(booking, nil).Once()

		body := `{"date":"2026-09-10","slot_id":3,"team_name":"distsys","members":[2,4]}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/discussion/book", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.BookDiscussionRoom(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)

		var got domain.DiscussionBooking
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, "D2", got.RoomID)
	})

	t.Run("Bad date", func(t *testing.T) {
		body := `{"date":"10.09.2026","slot_id":3,"team_name":"distsys"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/discussion/book", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.BookDiscussionRoom(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("All rooms booked", func(t *testing.T) {
		date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		mockService.EXPECT().AllocateDiscussionSlot(mock.Anything, int64(1),
			date, 3, "", "distsys", mock.Anything).
			Return(nil, domain.E(domain.CodeResourceExhausted, "all discussion rooms are booked for this slot")).Once()

		body := `{"date":"2026-09-10","slot_id":3,"team_name":"distsys"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/discussion/book", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.BookDiscussionRoom(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLoanHandler(t *testing.T) {
	mockService := handlermocks.NewLoanServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewLoanHandler(mockService, logger)

	t.Run("Request success", func(t *testing.T) {
		result := &service.LoanResult{
			Loan:       &domain.Loan{ID: 1, Principal: 500, CurrentBalance: 500, Status: domain.LoanStatusActive},
			NewBalance: 530,
		}
		mockService.EXPECT().RequestLoan(mock.Anything, int64(1), 500.0).Return(result, nil).Once()

		body := `{"amount":500}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/loan", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.RequestLoan(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)

		var got service.LoanResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, 530.0, got.NewBalance)
	})

	t.Run("Balance too high for a loan", func(t *testing.T) {
		mockService.EXPECT().RequestLoan(mock.Anything, int64(1), 500.0).
			Return(nil, domain.E(domain.CodeFailedPrecondition, "loans are only available on a low balance")).Once()

		body := `{"amount":500}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/loan", bytes.NewBufferString(body))
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.RequestLoan(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Get active loan", func(t *testing.T) {
		loan := &domain.Loan{ID: 1, Principal: 500, CurrentBalance: 505, Status: domain.LoanStatusActive}
		mockService.EXPECT().GetActiveLoan(mock.Anything, int64(1)).Return(loan, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/loan", nil)
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.GetActiveLoan(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("No active loan", func(t *testing.T) {
		mockService.EXPECT().GetActiveLoan(mock.Anything, int64(1)).
			Return(nil, domain.E(domain.CodeNotFound, "no active loan")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/loan", nil)
		ctx := context.WithValue(req.Context(), UserIDKey, int64(1))
		w := httptest.NewRecorder()

		handler.GetActiveLoan(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
