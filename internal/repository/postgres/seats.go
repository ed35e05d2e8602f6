package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

// SeatRepository implements domain.SeatRepository
type SeatRepository struct {
	store *Store
}

// NewSeatRepository creates a new SeatRepository
func NewSeatRepository(store *Store) *SeatRepository {
	return &SeatRepository{store: store}
}

// GetByKey returns the active assignment for a (room, seat) key
func (r *SeatRepository) GetByKey(ctx context.Context, roomID, seatID int) (*domain.SeatAssignment, error) {
	a := &domain.SeatAssignment{}
	err := r.store.conn(ctx).QueryRow(ctx,
		`SELECT id, user_id, room_id, seat_id, assigned_by, assigned_at
		 FROM seat_assignments
		 WHERE room_id = $1 AND seat_id = $2`,
		roomID, seatID,
	).Scan(&a.ID, &a.UserID, &a.RoomID, &a.SeatID, &a.AssignedBy, &a.AssignedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSeatAssignmentNotFound
		}
		return nil, fmt.Errorf("repository: failed to get seat assignment (%d, %d): %w", roomID, seatID, err)
	}

	return a, nil
}

// GetByUser returns the user's active seat assignment
func (r *SeatRepository) GetByUser(ctx context.Context, userID int64) (*domain.SeatAssignment, error) {
	a := &domain.SeatAssignment{}
	err := r.store.conn(ctx).QueryRow(ctx,
		`SELECT id, user_id, room_id, seat_id, assigned_by, assigned_at
		 FROM seat_assignments
		 WHERE user_id = $1`,
		userID,
	).Scan(&a.ID, &a.UserID, &a.RoomID, &a.SeatID, &a.AssignedBy, &a.AssignedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSeatAssignmentNotFound
		}
		return nil, fmt.Errorf("repository: failed to get seat assignment for user %d: %w", userID, err)
	}

	return a, nil
}

// Create inserts a seat assignment; the (room_id, seat_id) unique constraint
// is the arbiter when two transactions race for the same seat
func (r *SeatRepository) Create(ctx context.Context, a *domain.SeatAssignment) (*domain.SeatAssignment, error) {
	err := r.store.conn(ctx).QueryRow(ctx,
		`INSERT INTO seat_assignments (user_id, room_id, seat_id, assigned_by)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, assigned_at`,
		a.UserID, a.RoomID, a.SeatID, a.AssignedBy,
	).Scan(&a.ID, &a.AssignedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to create seat assignment (%d, %d): %w", a.RoomID, a.SeatID, err)
	}

	return a, nil
}

// DeleteByUser removes the user's seat assignment; seats are deleted on
// release, unlike hostel assignments which are only marked withdrawn
func (r *SeatRepository) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := r.store.conn(ctx).Exec(ctx,
		`DELETE FROM seat_assignments WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to delete seat assignment for user %d: %w", userID, err)
	}

	return nil
}
