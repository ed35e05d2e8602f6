package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

// CatalogRepository implements domain.CatalogRepository. The catalogs are
// operator-seeded and effectively read-only; list order here is the
// deterministic allocation order.
type CatalogRepository struct {
	store *Store
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(store *Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// GetReadingRoom fetches one reading room
func (r *CatalogRepository) GetReadingRoom(ctx context.Context, roomID int) (*domain.ReadingRoom, error) {
	room := &domain.ReadingRoom{}
	err := r.store.conn(ctx).QueryRow(ctx,
		`SELECT id, name, seat_count FROM reading_rooms WHERE id = $1`,
		roomID,
	).Scan(&room.ID, &room.Name, &room.SeatCount)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("repository: failed to get reading room %d: %w", roomID, err)
	}

	return room, nil
}

// ListHostelRooms returns a building's rooms of one type in room-id order
func (r *CatalogRepository) ListHostelRooms(ctx context.Context, buildingID, roomType string) ([]*domain.HostelRoom, error) {
	rows, err := r.store.conn(ctx).Query(ctx,
		`SELECT building_id, room_id, room_type, capacity, monthly_rent
		 FROM hostel_rooms
		 WHERE building_id = $1 AND room_type = $2
		 ORDER BY room_id`,
		buildingID, roomType,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list hostel rooms for building %q: %w", buildingID, err)
	}
	defer rows.Close()

	var rooms []*domain.HostelRoom
	for rows.Next() {
		room := &domain.HostelRoom{}
		err := rows.Scan(&room.BuildingID, &room.RoomID, &room.RoomType, &room.Capacity, &room.MonthlyRent)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan hostel room: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating hostel rooms: %w", err)
	}

	return rooms, nil
}

// ListDiscussionRooms returns all discussion room ids in lexical order
func (r *CatalogRepository) ListDiscussionRooms(ctx context.Context) ([]string, error) {
	rows, err := r.store.conn(ctx).Query(ctx,
		`SELECT id FROM discussion_rooms ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list discussion rooms: %w", err)
	}
	defer rows.Close()

	var roomIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repository: failed to scan discussion room: %w", err)
		}
		roomIDs = append(roomIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating discussion rooms: %w", err)
	}

	return roomIDs, nil
}

// GetDiscussionSlot fetches one bookable slot
func (r *CatalogRepository) GetDiscussionSlot(ctx context.Context, slotID int) (*domain.DiscussionSlot, error) {
	slot := &domain.DiscussionSlot{}
	err := r.store.conn(ctx).QueryRow(ctx,
		`SELECT id, label FROM discussion_slots WHERE id = $1`,
		slotID,
	).Scan(&slot.ID, &slot.Label)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("repository: failed to get discussion slot %d: %w", slotID, err)
	}

	return slot, nil
}
