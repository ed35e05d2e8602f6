package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/avc/studyhub-backend/internal/domain"
)

type errorResponse struct {
	Error string      `json:"error"`
	Code  domain.Code `json:"code"`
}

// writeJSON encodes the payload with the given status
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError maps the error taxonomy to HTTP statuses. Untyped errors are
// logged and masked as 500; typed messages are safe to show.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	code := domain.CodeOf(err)

	var status int
	switch code {
	case domain.CodeInvalidArgument:
		status = http.StatusBadRequest
	case domain.CodeUnauthenticated:
		status = http.StatusUnauthorized
	case domain.CodePermissionDenied:
		status = http.StatusForbidden
	case domain.CodeNotFound:
		status = http.StatusNotFound
	case domain.CodeFailedPrecondition:
		status = http.StatusConflict
		if errors.Is(err, domain.ErrInsufficientFunds) {
			status = http.StatusPaymentRequired
		}
	case domain.CodeResourceExhausted, domain.CodeAborted:
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
		logger.Error("request failed", zap.Error(err))
	}

	writeJSON(w, logger, status, errorResponse{
		Error: domain.MessageOf(err),
		Code:  code,
	})
}
