package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/avc/studyhub-backend/internal/repository/postgres"
)

// maxDailyDiscussionBookings caps how many bookings one person can appear in
// per calendar day, counted as leader or listed member
const maxDailyDiscussionBookings = 2

// AllocatorService assigns seats, beds and discussion slots. Allocation is
// deterministic: pools are scanned in fixed catalog order, never randomly,
// and the storage unique indexes arbitrate concurrent attempts on one key.
type AllocatorService struct {
	tx             domain.TxRunner
	userRepo       domain.UserRepository
	seatRepo       domain.SeatRepository
	hostelRepo     domain.HostelRepository
	discussionRepo domain.DiscussionRepository
	catalogRepo    domain.CatalogRepository
	deliveries     domain.DeliveryQueue
}

// NewAllocatorService creates a new AllocatorService
func NewAllocatorService(
	tx domain.TxRunner,
	userRepo domain.UserRepository,
	seatRepo domain.SeatRepository,
	hostelRepo domain.HostelRepository,
	discussionRepo domain.DiscussionRepository,
	catalogRepo domain.CatalogRepository,
	deliveries domain.DeliveryQueue,
) *AllocatorService {
	return &AllocatorService{
		tx:             tx,
		userRepo:       userRepo,
		seatRepo:       seatRepo,
		hostelRepo:     hostelRepo,
		discussionRepo: discussionRepo,
		catalogRepo:    catalogRepo,
		deliveries:     deliveries,
	}
}

// AllocateSeat binds a specific seat to a user. Re-allocating the seat the
// user already holds is an idempotent success; a seat held by someone else
// fails without touching anything.
func (s *AllocatorService) AllocateSeat(ctx context.Context, userID int64, roomID, seatID int, assignerID int64) (*domain.SeatAssignment, error) {
	var assignment *domain.SeatAssignment
	var user *domain.User
	var created bool
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		room, err := s.catalogRepo.GetReadingRoom(ctx, roomID)
		if err != nil {
			if errors.Is(err, postgres.ErrRoomNotFound) {
				return domain.Ef(domain.CodeNotFound, "reading room %d not found", roomID)
			}
			return fmt.Errorf("allocator: failed to get room %d: %w", roomID, err)
		}
		if seatID < 1 || seatID > room.SeatCount {
			return domain.Ef(domain.CodeInvalidArgument, "seat %d does not exist in room %d", seatID, roomID)
		}

		user, err = s.userRepo.GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, postgres.ErrUserNotFound) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("allocator: failed to get user %d: %w", userID, err)
		}

		existing, err := s.seatRepo.GetByKey(ctx, roomID, seatID)
		if err == nil {
			if existing.UserID == userID {
				assignment = existing // idempotent: the user already holds this seat
				return nil
			}
			return domain.E(domain.CodeFailedPrecondition, "seat is already occupied")
		}
		if !errors.Is(err, postgres.ErrSeatAssignmentNotFound) {
			return fmt.Errorf("allocator: failed to check seat (%d, %d): %w", roomID, seatID, err)
		}

		if current, err := s.seatRepo.GetByUser(ctx, userID); err == nil {
			return domain.Ef(domain.CodeFailedPrecondition,
				"user already holds seat %d in room %d", current.SeatID, current.RoomID)
		} else if !errors.Is(err, postgres.ErrSeatAssignmentNotFound) {
			return fmt.Errorf("allocator: failed to check current seat for user %d: %w", userID, err)
		}

		assignment, err = s.seatRepo.Create(ctx, &domain.SeatAssignment{
			UserID:     userID,
			RoomID:     roomID,
			SeatID:     seatID,
			AssignedBy: assignerID,
		})
		if err != nil {
			return fmt.Errorf("allocator: failed to create seat assignment: %w", err)
		}

		if err := s.userRepo.SetSeat(ctx, userID, &domain.SeatRef{RoomID: roomID, SeatID: seatID}); err != nil {
			return fmt.Errorf("allocator: failed to set seat pointer for user %d: %w", userID, err)
		}

		created = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	// the idempotent re-assign path changed nothing, so it says nothing
	if created {
		notifyUser(s.deliveries, user, "Seat assigned",
			fmt.Sprintf("Seat %d in reading room %d is now yours.", seatID, roomID),
			map[string]string{"service": string(domain.ServiceReadingRoom)})
	}
	return assignment, nil
}

// AllocateBed picks the first free bed for a building and room type, walking
// rooms in catalog order and beds 1..capacity. Joins the caller's open
// transaction. Returns the created assignment and the room's monthly rent.
func (s *AllocatorService) AllocateBed(ctx context.Context, userID int64, buildingID, roomType string, months int, nextDue time.Time) (*domain.HostelAssignment, error) {
	rooms, err := s.catalogRepo.ListHostelRooms(ctx, buildingID, roomType)
	if err != nil {
		return nil, fmt.Errorf("allocator: failed to list rooms for building %q: %w", buildingID, err)
	}
	if len(rooms) == 0 {
		return nil, domain.Ef(domain.CodeNotFound, "no %s rooms in building %s", roomType, buildingID)
	}

	active, err := s.hostelRepo.ListActiveByBuilding(ctx, buildingID)
	if err != nil {
		return nil, fmt.Errorf("allocator: failed to list active assignments for building %q: %w", buildingID, err)
	}

	occupied := make(map[string]bool, len(active))
	for _, a := range active {
		occupied[bedKey(a.RoomID, a.BedNumber)] = true
	}

	for _, room := range rooms {
		for bed := 1; bed <= room.Capacity; bed++ {
			if occupied[bedKey(room.RoomID, bed)] {
				continue
			}

			assignment, err := s.hostelRepo.Create(ctx, &domain.HostelAssignment{
				UserID:         userID,
				BuildingID:     buildingID,
				RoomID:         room.RoomID,
				BedNumber:      bed,
				Months:         months,
				MonthlyRent:    room.MonthlyRent,
				Status:         domain.HostelAssignmentActive,
				NextPaymentDue: nextDue,
			})
			if err != nil {
				return nil, fmt.Errorf("allocator: failed to create hostel assignment: %w", err)
			}

			ref := &domain.HostelRef{BuildingID: buildingID, RoomID: room.RoomID, BedNumber: bed}
			if err := s.userRepo.SetHostel(ctx, userID, ref, &nextDue); err != nil {
				return nil, fmt.Errorf("allocator: failed to set hostel pointer for user %d: %w", userID, err)
			}

			return assignment, nil
		}
	}

	return nil, domain.Ef(domain.CodeResourceExhausted, "no free %s beds in building %s", roomType, buildingID)
}

// AllocateDiscussionSlot books the first free discussion room for the slot,
// trying rooms in fixed lexical order (D1..D7). Every participant, leader
// included, counts against the per-day booking cap.
func (s *AllocatorService) AllocateDiscussionSlot(ctx context.Context, leaderID int64, date time.Time, slotID int, slotLabel, teamName string, memberIDs []int64) (*domain.DiscussionBooking, error) {
	if teamName == "" {
		return nil, domain.E(domain.CodeInvalidArgument, "team name is required")
	}

	var booking *domain.DiscussionBooking
	var leader *domain.User
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		slot, err := s.catalogRepo.GetDiscussionSlot(ctx, slotID)
		if err != nil {
			if errors.Is(err, postgres.ErrSlotNotFound) {
				return domain.Ef(domain.CodeNotFound, "discussion slot %d not found", slotID)
			}
			return fmt.Errorf("allocator: failed to get slot %d: %w", slotID, err)
		}
		if slotLabel == "" {
			slotLabel = slot.Label
		}

		participants := dedupeParticipants(leaderID, memberIDs)
		for _, participantID := range participants {
			participant, err := s.userRepo.GetUserByID(ctx, participantID)
			if err != nil {
				if errors.Is(err, postgres.ErrUserNotFound) {
					return domain.Ef(domain.CodeNotFound, "participant %d not found", participantID)
				}
				return fmt.Errorf("allocator: failed to get participant %d: %w", participantID, err)
			}
			if participantID == leaderID {
				leader = participant
			}

			count, err := s.discussionRepo.CountForParticipant(ctx, participantID, date)
			if err != nil {
				return fmt.Errorf("allocator: failed to count bookings for participant %d: %w", participantID, err)
			}
			if count >= maxDailyDiscussionBookings {
				return domain.Ef(domain.CodeFailedPrecondition,
					"participant %d already has %d bookings on this date", participantID, count)
			}
		}

		rooms, err := s.catalogRepo.ListDiscussionRooms(ctx)
		if err != nil {
			return fmt.Errorf("allocator: failed to list discussion rooms: %w", err)
		}

		booked, err := s.discussionRepo.RoomsBookedForSlot(ctx, date, slotID)
		if err != nil {
			return fmt.Errorf("allocator: failed to list booked rooms: %w", err)
		}
		taken := make(map[string]bool, len(booked))
		for _, roomID := range booked {
			taken[roomID] = true
		}

		for _, roomID := range rooms {
			if taken[roomID] {
				continue
			}

			booking, err = s.discussionRepo.Create(ctx, &domain.DiscussionBooking{
				BookingDate: date,
				SlotID:      slotID,
				SlotLabel:   slotLabel,
				RoomID:      roomID,
				LeaderID:    leaderID,
				TeamName:    teamName,
				MemberIDs:   memberIDs,
			})
			if err != nil {
				return fmt.Errorf("allocator: failed to create booking: %w", err)
			}
			return nil
		}

		return domain.E(domain.CodeResourceExhausted, "all discussion rooms are booked for this slot")
	})
	if err != nil {
		return nil, err
	}

	notifyUser(s.deliveries, leader, "Discussion room booked",
		fmt.Sprintf("Room %s is booked for %s on %s.", booking.RoomID, booking.SlotLabel, booking.BookingDate.Format("02 Jan 2006")),
		map[string]string{"room_id": booking.RoomID})
	return booking, nil
}

// ReleaseSeat clears the user's seat pointer and deletes the assignment.
// Joins the caller's open transaction; nothing is left dangling.
func (s *AllocatorService) ReleaseSeat(ctx context.Context, userID int64) error {
	if err := s.seatRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("allocator: failed to delete seat assignment for user %d: %w", userID, err)
	}
	if err := s.userRepo.SetSeat(ctx, userID, nil); err != nil {
		return fmt.Errorf("allocator: failed to clear seat pointer for user %d: %w", userID, err)
	}

	return nil
}

// ReleaseHostel clears the user's hostel pointer and marks the assignment
// withdrawn; hostel history is kept, unlike seats
func (s *AllocatorService) ReleaseHostel(ctx context.Context, userID int64) error {
	if err := s.hostelRepo.WithdrawByUser(ctx, userID); err != nil {
		return fmt.Errorf("allocator: failed to withdraw hostel assignment for user %d: %w", userID, err)
	}
	if err := s.userRepo.SetHostel(ctx, userID, nil, nil); err != nil {
		return fmt.Errorf("allocator: failed to clear hostel pointer for user %d: %w", userID, err)
	}

	return nil
}

func bedKey(roomID string, bed int) string {
	return fmt.Sprintf("%s#%d", roomID, bed)
}

func dedupeParticipants(leaderID int64, memberIDs []int64) []int64 {
	seen := map[int64]bool{leaderID: true}
	participants := []int64{leaderID}
	for _, id := range memberIDs {
		if !seen[id] {
			seen[id] = true
			participants = append(participants, id)
		}
	}
	return participants
}
