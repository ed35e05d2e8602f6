package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/avc/studyhub-backend/internal/domain"
)

// DiscussionRepository implements domain.DiscussionRepository
type DiscussionRepository struct {
	store *Store
}

// NewDiscussionRepository creates a new DiscussionRepository
func NewDiscussionRepository(store *Store) *DiscussionRepository {
	return &DiscussionRepository{store: store}
}

// CountForParticipant counts the date's bookings in which the user appears,
// as leader or as a listed member
func (r *DiscussionRepository) CountForParticipant(ctx context.Context, userID int64, date time.Time) (int, error) {
	var count int
	err := r.store.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*)
		 FROM discussion_bookings
		 WHERE booking_date = $1 AND (leader_id = $2 OR $2 = ANY(member_ids))`,
		date, userID,
	).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("repository: failed to count bookings for user %d: %w", userID, err)
	}

	return count, nil
}

// RoomsBookedForSlot returns the room ids already taken for a (date, slot)
func (r *DiscussionRepository) RoomsBookedForSlot(ctx context.Context, date time.Time, slotID int) ([]string, error) {
	rows, err := r.store.conn(ctx).Query(ctx,
		`SELECT room_id
		 FROM discussion_bookings
		 WHERE booking_date = $1 AND slot_id = $2`,
		date, slotID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list booked rooms for slot %d: %w", slotID, err)
	}
	defer rows.Close()

	var roomIDs []string
	for rows.Next() {
		var roomID string
		if err := rows.Scan(&roomID); err != nil {
			return nil, fmt.Errorf("repository: failed to scan room id: %w", err)
		}
		roomIDs = append(roomIDs, roomID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating booked rooms: %w", err)
	}

	return roomIDs, nil
}

// Create inserts a booking; the (booking_date, slot_id, room_id) unique
// constraint arbitrates races for the same room
func (r *DiscussionRepository) Create(ctx context.Context, b *domain.DiscussionBooking) (*domain.DiscussionBooking, error) {
	err := r.store.conn(ctx).QueryRow(ctx,
		`INSERT INTO discussion_bookings (booking_date, slot_id, slot_label, room_id, leader_id, team_name, member_ids)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		b.BookingDate, b.SlotID, b.SlotLabel, b.RoomID, b.LeaderID, b.TeamName, b.MemberIDs,
	).Scan(&b.ID, &b.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to create discussion booking: %w", err)
	}

	return b, nil
}
