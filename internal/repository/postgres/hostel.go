package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

// HostelRepository implements domain.HostelRepository
type HostelRepository struct {
	store *Store
}

// NewHostelRepository creates a new HostelRepository
func NewHostelRepository(store *Store) *HostelRepository {
	return &HostelRepository{store: store}
}

const hostelColumns = `id, user_id, building_id, room_id, bed_number, months, monthly_rent, status, next_payment_due, created_at`

func scanHostelAssignment(row pgx.Row) (*domain.HostelAssignment, error) {
	a := &domain.HostelAssignment{}
	err := row.Scan(&a.ID, &a.UserID, &a.BuildingID, &a.RoomID, &a.BedNumber,
		&a.Months, &a.MonthlyRent, &a.Status, &a.NextPaymentDue, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListActiveByBuilding returns the building's active assignments in bed order;
// the allocator scans them against the catalog to find the first free bed
func (r *HostelRepository) ListActiveByBuilding(ctx context.Context, buildingID string) ([]*domain.HostelAssignment, error) {
	rows, err := r.store.conn(ctx).Query(ctx,
		`SELECT `+hostelColumns+` FROM hostel_assignments
		 WHERE building_id = $1 AND status = 'active'
		 ORDER BY room_id, bed_number`,
		buildingID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list assignments for building %q: %w", buildingID, err)
	}
	defer rows.Close()

	var assignments []*domain.HostelAssignment
	for rows.Next() {
		a, err := scanHostelAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan hostel assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating hostel assignments: %w", err)
	}

	return assignments, nil
}

// GetActiveByUser returns the user's active hostel assignment
func (r *HostelRepository) GetActiveByUser(ctx context.Context, userID int64) (*domain.HostelAssignment, error) {
	a, err := scanHostelAssignment(r.store.conn(ctx).QueryRow(ctx,
		`SELECT `+hostelColumns+` FROM hostel_assignments
		 WHERE user_id = $1 AND status = 'active'`,
		userID,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHostelAssignmentNotFound
		}
		return nil, fmt.Errorf("repository: failed to get hostel assignment for user %d: %w", userID, err)
	}

	return a, nil
}

// Create inserts an active assignment; the partial unique index on
// (building_id, room_id, bed_number) arbitrates bed races
func (r *HostelRepository) Create(ctx context.Context, a *domain.HostelAssignment) (*domain.HostelAssignment, error) {
	err := r.store.conn(ctx).QueryRow(ctx,
		`INSERT INTO hostel_assignments (user_id, building_id, room_id, bed_number, months, monthly_rent, status, next_payment_due)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		a.UserID, a.BuildingID, a.RoomID, a.BedNumber, a.Months, a.MonthlyRent, a.Status, a.NextPaymentDue,
	).Scan(&a.ID, &a.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to create hostel assignment for user %d: %w", a.UserID, err)
	}

	return a, nil
}

// UpdateNextDue mirrors a renewed due date onto the assignment record
func (r *HostelRepository) UpdateNextDue(ctx context.Context, id int64, nextDue time.Time) error {
	tag, err := r.store.conn(ctx).Exec(ctx,
		`UPDATE hostel_assignments SET next_payment_due = $2 WHERE id = $1 AND status = 'active'`,
		id, nextDue,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update due date for assignment %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrHostelAssignmentNotFound
	}

	return nil
}

// WithdrawByUser marks the user's active assignment withdrawn; the record stays
func (r *HostelRepository) WithdrawByUser(ctx context.Context, userID int64) error {
	_, err := r.store.conn(ctx).Exec(ctx,
		`UPDATE hostel_assignments SET status = 'withdrawn' WHERE user_id = $1 AND status = 'active'`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to withdraw hostel assignment for user %d: %w", userID, err)
	}

	return nil
}
