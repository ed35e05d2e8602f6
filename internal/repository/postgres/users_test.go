package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avc/studyhub-backend/internal/domain"
)

var userTestColumns = []string{
	"id", "login", "password_hash", "role", "phone", "balance", "device_tokens",
	"seat_room_id", "seat_id", "hostel_building_id", "hostel_room_id", "hostel_bed_number",
	"expiry_policy", "next_payment_due", "hostel_next_payment_due",
	"fine_amount", "hostel_fine_amount", "in_grace_period", "hostel_in_grace_period",
	"last_expiry_warning_at", "hostel_last_expiry_warning_at", "created_at",
}

func userRow(u *domain.User) *pgxmock.Rows {
	var seatRoomID, seatID, bedNumber *int
	var buildingID, roomID *string
	if u.CurrentSeat != nil {
		seatRoomID, seatID = &u.CurrentSeat.RoomID, &u.CurrentSeat.SeatID
	}
	if u.CurrentHostel != nil {
		buildingID, roomID, bedNumber = &u.CurrentHostel.BuildingID, &u.CurrentHostel.RoomID, &u.CurrentHostel.BedNumber
	}

	return pgxmock.NewRows(userTestColumns).AddRow(
		u.ID, u.Login, u.PasswordHash, u.Role, u.Phone, u.Balance, u.DeviceTokens,
		seatRoomID, seatID, buildingID, roomID, bedNumber,
		u.ExpiryPolicy, u.NextPaymentDue, u.HostelNextPaymentDue,
		u.FineAmount, u.HostelFineAmount, u.InGracePeriod, u.HostelInGracePeriod,
		u.LastExpiryWarningAt, u.HostelLastExpiryWarningAt, u.CreatedAt,
	)
}

func TestUserRepository_CreateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(NewStore(mock))
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		expected := &domain.User{
			ID:           1,
			Login:        "testuser",
			PasswordHash: "hashedpassword",
			Role:         domain.RoleMember,
			Phone:        "+15550001",
			ExpiryPolicy: domain.ExpiryPolicyStandard,
			DeviceTokens: []string{},
			CreatedAt:    time.Now(),
		}

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("testuser", "hashedpassword", domain.RoleMember, "+15550001").
			WillReturnRows(userRow(expected))

		user, err := repo.CreateUser(ctx, "testuser", "hashedpassword", domain.RoleMember, "+15550001")
		require.NoError(t, err)
		assert.Equal(t, expected.ID, user.ID)
		assert.Equal(t, expected.Login, user.Login)
		assert.Equal(t, domain.RoleMember, user.Role)
		assert.Nil(t, user.CurrentSeat)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User already exists", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("existinguser", "hashedpassword", domain.RoleMember, "").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		user, err := repo.CreateUser(ctx, "existinguser", "hashedpassword", domain.RoleMember, "")
		assert.ErrorIs(t, err, ErrUserExists)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("testuser", "hashedpassword", domain.RoleMember, "").
			WillReturnError(errors.New("database error"))

		user, err := repo.CreateUser(ctx, "testuser", "hashedpassword", domain.RoleMember, "")
		assert.Error(t, err)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(NewStore(mock))
	ctx := context.Background()

	t.Run("Success with resource pointers", func(t *testing.T) {
		due := time.Now().AddDate(0, 1, 0)
		expected := &domain.User{
			ID:             1,
			Login:          "testuser",
			PasswordHash:   "hashedpassword",
			Role:           domain.RoleMember,
			Balance:        250,
			DeviceTokens:   []string{"tok-1"},
			CurrentSeat:    &domain.SeatRef{RoomID: 1, SeatID: 12},
			CurrentHostel:  &domain.HostelRef{BuildingID: "B1", RoomID: "101", BedNumber: 2},
			ExpiryPolicy:   domain.ExpiryPolicyStandard,
			NextPaymentDue: &due,
			CreatedAt:      time.Now(),
		}

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id`).
			WithArgs(int64(1)).
			WillReturnRows(userRow(expected))

		user, err := repo.GetUserByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, &domain.SeatRef{RoomID: 1, SeatID: 12}, user.CurrentSeat)
		assert.Equal(t, &domain.HostelRef{BuildingID: "B1", RoomID: "101", BedNumber: 2}, user.CurrentHostel)
		assert.Equal(t, 250.0, user.Balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id`).
			WithArgs(int64(42)).
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetUserByID(ctx, 42)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_ApplyBalanceDelta(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(NewStore(mock))
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users SET balance = balance`).
			WithArgs(int64(1), -100.0).
			WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(400.0))

		balance, err := repo.ApplyBalanceDelta(ctx, 1, -100)
		require.NoError(t, err)
		assert.Equal(t, 400.0, balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Over-debit hits the check constraint", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users SET balance = balance`).
			WithArgs(int64(1), -9000.0).
			WillReturnError(&pgconn.PgError{Code: "23514"})

		balance, err := repo.ApplyBalanceDelta(ctx, 1, -9000)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Zero(t, balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users SET balance = balance`).
			WithArgs(int64(42), 50.0).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.ApplyBalanceDelta(ctx, 42, 50)
		assert.ErrorIs(t, err, ErrUserNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_SetSeat(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(NewStore(mock))
	ctx := context.Background()

	t.Run("Assign", func(t *testing.T) {
		roomID, seatID := 1, 12
		mock.ExpectExec(`UPDATE users SET seat_room_id`).
			WithArgs(int64(5), &roomID, &seatID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.SetSeat(ctx, 5, &domain.SeatRef{RoomID: 1, SeatID: 12})
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Clear", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET seat_room_id`).
			WithArgs(int64(5), (*int)(nil), (*int)(nil)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.SetSeat(ctx, 5, nil)
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown user", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET seat_room_id`).
			WithArgs(int64(42), (*int)(nil), (*int)(nil)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.SetSeat(ctx, 42, nil)
		assert.ErrorIs(t, err, ErrUserNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_ApplyFine(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(NewStore(mock))
	ctx := context.Background()

	t.Run("Reading room fine", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET in_grace_period = TRUE`).
			WithArgs(int64(1), 50.0).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.ApplyFine(ctx, 1, domain.ServiceReadingRoom, 50))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Hostel fine", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET hostel_in_grace_period = TRUE`).
			WithArgs(int64(1), 100.0).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.ApplyFine(ctx, 1, domain.ServiceHostel, 100))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unsupported service", func(t *testing.T) {
		err := repo.ApplyFine(ctx, 1, domain.ServiceCanteen, 10)
		assert.Error(t, err)
	})
}

func TestUserRepository_ListOverdue(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(NewStore(mock))
	ctx := context.Background()
	now := time.Now()

	t.Run("Returns overdue users in id order", func(t *testing.T) {
		due := now.AddDate(0, 0, -2)
		u1 := &domain.User{ID: 1, Login: "a", ExpiryPolicy: domain.ExpiryPolicyDaily, NextPaymentDue: &due, DeviceTokens: []string{}}
		u2 := &domain.User{ID: 2, Login: "b", ExpiryPolicy: domain.ExpiryPolicyStandard, NextPaymentDue: &due, DeviceTokens: []string{}}

		rows := userRow(u1)
		rows.AddRow(
			u2.ID, u2.Login, u2.PasswordHash, u2.Role, u2.Phone, u2.Balance, u2.DeviceTokens,
			nil, nil, nil, nil, nil,
			u2.ExpiryPolicy, u2.NextPaymentDue, nil,
			0.0, 0.0, false, false,
			nil, nil, u2.CreatedAt,
		)

		mock.ExpectQuery(`SELECT (.+) FROM users\s+WHERE next_payment_due IS NOT NULL`).
			WithArgs(now).
			WillReturnRows(rows)

		users, err := repo.ListOverdue(ctx, domain.ServiceReadingRoom, now)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, int64(1), users[0].ID)
		assert.Equal(t, domain.ExpiryPolicyStandard, users[1].ExpiryPolicy)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Hostel sweep reads the hostel due column", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users\s+WHERE hostel_next_payment_due IS NOT NULL`).
			WithArgs(now).
			WillReturnRows(pgxmock.NewRows(userTestColumns))

		users, err := repo.ListOverdue(ctx, domain.ServiceHostel, now)
		require.NoError(t, err)
		assert.Empty(t, users)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_ListExpiring(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(NewStore(mock))
	ctx := context.Background()
	now := time.Now()

	t.Run("Warned-recently cutoff follows the configured lead", func(t *testing.T) {
		lead := 7 * 24 * time.Hour
		until := now.Add(lead)
		due := now.Add(48 * time.Hour)
		u := &domain.User{ID: 1, Login: "a", ExpiryPolicy: domain.ExpiryPolicyStandard, NextPaymentDue: &due, DeviceTokens: []string{}}

		mock.ExpectQuery(`(?s)SELECT (.+) FROM users\s+WHERE next_payment_due IS NOT NULL.+make_interval`).
			WithArgs(until, lead.Seconds()).
			WillReturnRows(userRow(u))

		users, err := repo.ListExpiring(ctx, domain.ServiceReadingRoom, until, lead)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, int64(1), users[0].ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Hostel sweep reads the hostel columns", func(t *testing.T) {
		lead := 3 * 24 * time.Hour
		until := now.Add(lead)

		mock.ExpectQuery(`(?s)SELECT (.+) FROM users\s+WHERE hostel_next_payment_due IS NOT NULL.+hostel_last_expiry_warning_at`).
			WithArgs(until, lead.Seconds()).
			WillReturnRows(pgxmock.NewRows(userTestColumns))

		users, err := repo.ListExpiring(ctx, domain.ServiceHostel, until, lead)
		require.NoError(t, err)
		assert.Empty(t, users)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
