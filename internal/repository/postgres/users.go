package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/studyhub-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// UserRepository implements domain.UserRepository
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

const userColumns = `id, login, password_hash, role, phone, balance, device_tokens,
	seat_room_id, seat_id, hostel_building_id, hostel_room_id, hostel_bed_number,
	expiry_policy, next_payment_due, hostel_next_payment_due,
	fine_amount, hostel_fine_amount, in_grace_period, hostel_in_grace_period,
	last_expiry_warning_at, hostel_last_expiry_warning_at, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	var (
		seatRoomID, seatID             *int
		hostelBuildingID, hostelRoomID *string
		hostelBedNumber                *int
	)

	err := row.Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.Phone,
		&user.Balance, &user.DeviceTokens,
		&seatRoomID, &seatID, &hostelBuildingID, &hostelRoomID, &hostelBedNumber,
		&user.ExpiryPolicy, &user.NextPaymentDue, &user.HostelNextPaymentDue,
		&user.FineAmount, &user.HostelFineAmount,
		&user.InGracePeriod, &user.HostelInGracePeriod,
		&user.LastExpiryWarningAt, &user.HostelLastExpiryWarningAt, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if seatRoomID != nil && seatID != nil {
		user.CurrentSeat = &domain.SeatRef{RoomID: *seatRoomID, SeatID: *seatID}
	}
	if hostelBuildingID != nil && hostelRoomID != nil && hostelBedNumber != nil {
		user.CurrentHostel = &domain.HostelRef{
			BuildingID: *hostelBuildingID,
			RoomID:     *hostelRoomID,
			BedNumber:  *hostelBedNumber,
		}
	}

	return user, nil
}

// CreateUser creates a new user record
func (r *UserRepository) CreateUser(ctx context.Context, login, passwordHash, role, phone string) (*domain.User, error) {
	user, err := scanUser(r.store.conn(ctx).QueryRow(ctx,
		`INSERT INTO users (login, password_hash, role, phone)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		login, passwordHash, role, phone,
	))

	if err != nil {
		// unique_violation on the login column
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("repository: failed to create user %q: %w", login, err)
	}

	return user, nil
}

// GetUserByLogin fetches a user by login
func (r *UserRepository) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	user, err := scanUser(r.store.conn(ctx).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE login = $1`,
		login,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by login %q: %w", login, err)
	}

	return user, nil
}

// GetUserByID fetches a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := scanUser(r.store.conn(ctx).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by id %d: %w", id, err)
	}

	return user, nil
}

// ApplyBalanceDelta mutates the wallet balance and returns the new value.
// The balance CHECK constraint turns an over-debit into ErrInsufficientFunds,
// so the sufficiency check and the debit are one atomic statement.
func (r *UserRepository) ApplyBalanceDelta(ctx context.Context, userID int64, delta float64) (float64, error) {
	var balance float64
	err := r.store.conn(ctx).QueryRow(ctx,
		`UPDATE users SET balance = balance + $2 WHERE id = $1 RETURNING balance`,
		userID, delta,
	).Scan(&balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == checkViolation {
			return 0, ErrInsufficientFunds
		}
		return 0, fmt.Errorf("repository: failed to apply balance delta for user %d: %w", userID, err)
	}

	return balance, nil
}

// SetSeat updates the user's seat pointer; nil clears it
func (r *UserRepository) SetSeat(ctx context.Context, userID int64, seat *domain.SeatRef) error {
	var roomID, seatID *int
	if seat != nil {
		roomID, seatID = &seat.RoomID, &seat.SeatID
	}

	tag, err := r.store.conn(ctx).Exec(ctx,
		`UPDATE users SET seat_room_id = $2, seat_id = $3 WHERE id = $1`,
		userID, roomID, seatID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to set seat for user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// SetHostel updates the user's hostel pointer and due date; nil clears both
func (r *UserRepository) SetHostel(ctx context.Context, userID int64, ref *domain.HostelRef, nextDue *time.Time) error {
	var buildingID, roomID *string
	var bedNumber *int
	if ref != nil {
		buildingID, roomID, bedNumber = &ref.BuildingID, &ref.RoomID, &ref.BedNumber
	}

	tag, err := r.store.conn(ctx).Exec(ctx,
		`UPDATE users
		 SET hostel_building_id = $2, hostel_room_id = $3, hostel_bed_number = $4,
		     hostel_next_payment_due = $5
		 WHERE id = $1`,
		userID, buildingID, roomID, bedNumber, nextDue,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to set hostel for user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdateMembership rewrites the expiry bookkeeping for one service
func (r *UserRepository) UpdateMembership(ctx context.Context, userID int64, upd domain.MembershipUpdate) error {
	var query string
	var args []any

	switch upd.Service {
	case domain.ServiceReadingRoom:
		query = `UPDATE users
			 SET expiry_policy = $2, next_payment_due = $3,
			     fine_amount = CASE WHEN $4 THEN 0 ELSE fine_amount END,
			     in_grace_period = CASE WHEN $5 THEN FALSE ELSE in_grace_period END
			 WHERE id = $1`
		args = []any{userID, upd.Policy, upd.NextDue, upd.ClearFine, upd.LeaveGrace}
	case domain.ServiceHostel:
		query = `UPDATE users
			 SET hostel_next_payment_due = $2,
			     hostel_fine_amount = CASE WHEN $3 THEN 0 ELSE hostel_fine_amount END,
			     hostel_in_grace_period = CASE WHEN $4 THEN FALSE ELSE hostel_in_grace_period END
			 WHERE id = $1`
		args = []any{userID, upd.NextDue, upd.ClearFine, upd.LeaveGrace}
	default:
		return fmt.Errorf("repository: membership update for unsupported service %q", upd.Service)
	}

	tag, err := r.store.conn(ctx).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("repository: failed to update membership for user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ClearMembership soft-clears the expiry bookkeeping for one service; the
// user record itself is never deleted
func (r *UserRepository) ClearMembership(ctx context.Context, userID int64, service domain.ServiceType) error {
	var query string
	switch service {
	case domain.ServiceReadingRoom:
		query = `UPDATE users
			 SET next_payment_due = NULL, expiry_policy = 'standard',
			     fine_amount = 0, in_grace_period = FALSE, last_expiry_warning_at = NULL
			 WHERE id = $1`
	case domain.ServiceHostel:
		query = `UPDATE users
			 SET hostel_next_payment_due = NULL,
			     hostel_fine_amount = 0, hostel_in_grace_period = FALSE, hostel_last_expiry_warning_at = NULL
			 WHERE id = $1`
	default:
		return fmt.Errorf("repository: membership clear for unsupported service %q", service)
	}

	tag, err := r.store.conn(ctx).Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("repository: failed to clear membership for user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ApplyFine enters grace period and adds one day's fine for the service
func (r *UserRepository) ApplyFine(ctx context.Context, userID int64, service domain.ServiceType, fine float64) error {
	var query string
	switch service {
	case domain.ServiceReadingRoom:
		query = `UPDATE users SET in_grace_period = TRUE, fine_amount = fine_amount + $2 WHERE id = $1`
	case domain.ServiceHostel:
		query = `UPDATE users SET hostel_in_grace_period = TRUE, hostel_fine_amount = hostel_fine_amount + $2 WHERE id = $1`
	default:
		return fmt.Errorf("repository: fine for unsupported service %q", service)
	}

	tag, err := r.store.conn(ctx).Exec(ctx, query, userID, fine)
	if err != nil {
		return fmt.Errorf("repository: failed to apply fine for user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ListOverdue returns users whose due date for the service has passed
func (r *UserRepository) ListOverdue(ctx context.Context, service domain.ServiceType, now time.Time) ([]*domain.User, error) {
	dueColumn := "next_payment_due"
	if service == domain.ServiceHostel {
		dueColumn = "hostel_next_payment_due"
	}

	rows, err := r.store.conn(ctx).Query(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE `+dueColumn+` IS NOT NULL AND `+dueColumn+` < $1
		 ORDER BY id`,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list overdue users: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

// ListExpiring returns users whose due date falls between now and until and
// who have not been warned inside the current lead window. The lead must
// match the window the caller derived until from, otherwise users get
// re-warned every sweep.
func (r *UserRepository) ListExpiring(ctx context.Context, service domain.ServiceType, until time.Time, lead time.Duration) ([]*domain.User, error) {
	dueColumn, warnedColumn := "next_payment_due", "last_expiry_warning_at"
	if service == domain.ServiceHostel {
		dueColumn, warnedColumn = "hostel_next_payment_due", "hostel_last_expiry_warning_at"
	}

	rows, err := r.store.conn(ctx).Query(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE `+dueColumn+` IS NOT NULL
		   AND `+dueColumn+` > NOW() AND `+dueColumn+` <= $1
		   AND (`+warnedColumn+` IS NULL OR `+warnedColumn+` < `+dueColumn+` - make_interval(secs => $2))
		 ORDER BY id`,
		until, lead.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list expiring users: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

// MarkExpiryWarned records that the warning for the service went out
func (r *UserRepository) MarkExpiryWarned(ctx context.Context, userID int64, service domain.ServiceType, at time.Time) error {
	column := "last_expiry_warning_at"
	if service == domain.ServiceHostel {
		column = "hostel_last_expiry_warning_at"
	}

	_, err := r.store.conn(ctx).Exec(ctx,
		`UPDATE users SET `+column+` = $2 WHERE id = $1`,
		userID, at,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to mark expiry warning for user %d: %w", userID, err)
	}

	return nil
}

// RemoveDeviceTokens prunes dead push-delivery targets
func (r *UserRepository) RemoveDeviceTokens(ctx context.Context, userID int64, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	_, err := r.store.conn(ctx).Exec(ctx,
		`UPDATE users
		 SET device_tokens = ARRAY(SELECT t FROM UNNEST(device_tokens) AS t WHERE NOT t = ANY($2))
		 WHERE id = $1`,
		userID, tokens,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to remove device tokens for user %d: %w", userID, err)
	}

	return nil
}

func collectUsers(rows pgx.Rows) ([]*domain.User, error) {
	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating users: %w", err)
	}

	return users, nil
}
