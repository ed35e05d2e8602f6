package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/avc/studyhub-backend/internal/domain"
)

// AllocatorService defines the allocation operations the handler needs
type AllocatorService interface {
	AllocateSeat(ctx context.Context, userID int64, roomID, seatID int, assignerID int64) (*domain.SeatAssignment, error)
	AllocateDiscussionSlot(ctx context.Context, leaderID int64, date time.Time, slotID int, slotLabel, teamName string, memberIDs []int64) (*domain.DiscussionBooking, error)
}

type BookingHandler struct {
	allocator AllocatorService
	logger    *zap.Logger
}

func NewBookingHandler(allocator AllocatorService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		allocator: allocator,
		logger:    logger,
	}
}

type allocateSeatRequest struct {
	UserID int64 `json:"user_id"`
	RoomID int   `json:"room_id"`
	SeatID int   `json:"seat_id"`
}

// AllocateSeat assigns a specific seat to a member. Admin only; the route is
// behind RequireAdmin.
func (h *BookingHandler) AllocateSeat(w http.ResponseWriter, r *http.Request) {
	assignerID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req allocateSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	assignment, err := h.allocator.AllocateSeat(r.Context(), req.UserID, req.RoomID, req.SeatID, assignerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, assignment)
}

type bookDiscussionRequest struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	SlotID    int     `json:"slot_id"`
	SlotLabel string  `json:"slot_label,omitempty"`
	TeamName  string  `json:"team_name"`
	Members   []int64 `json:"members,omitempty"`
}

// BookDiscussionRoom books the first free discussion room for a slot
func (h *BookingHandler) BookDiscussionRoom(w http.ResponseWriter, r *http.Request) {
	leaderID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req bookDiscussionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		writeError(w, h.logger, domain.E(domain.CodeInvalidArgument, "date must be in YYYY-MM-DD format"))
		return
	}

	booking, err := h.allocator.AllocateDiscussionSlot(r.Context(), leaderID,
		date, req.SlotID, req.SlotLabel, req.TeamName, req.Members)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, booking)
}
