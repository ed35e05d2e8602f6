package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avc/studyhub-backend/internal/domain"
	domainmocks "github.com/avc/studyhub-backend/internal/domain/mocks"
	"github.com/avc/studyhub-backend/internal/repository/postgres"
)

type allocatorMocks struct {
	user       *domainmocks.UserRepositoryMock
	seat       *domainmocks.SeatRepositoryMock
	hostel     *domainmocks.HostelRepositoryMock
	discussion *domainmocks.DiscussionRepositoryMock
	catalog    *domainmocks.CatalogRepositoryMock
	deliveries *domainmocks.DeliveryQueueMock
}

func newAllocator(t *testing.T) (*AllocatorService, allocatorMocks) {
	t.Helper()
	m := allocatorMocks{
		user:       domainmocks.NewUserRepositoryMock(t),
		seat:       domainmocks.NewSeatRepositoryMock(t),
		hostel:     domainmocks.NewHostelRepositoryMock(t),
		discussion: domainmocks.NewDiscussionRepositoryMock(t),
		catalog:    domainmocks.NewCatalogRepositoryMock(t),
		deliveries: domainmocks.NewDeliveryQueueMock(t),
	}
	svc := NewAllocatorService(passthroughTx(t), m.user, m.seat, m.hostel, m.discussion, m.catalog, m.deliveries)
	return svc, m
}

func TestAllocatorService_AllocateSeat(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := newAllocator(t)

		m.catalog.EXPECT().GetReadingRoom(mock.Anything, 1).Return(&domain.ReadingRoom{ID: 1, SeatCount: 40}, nil).Once()
		m.user.EXPECT().GetUserByID(mock.Anything, int64(5)).Return(&domain.User{ID: 5}, nil).Once()
		m.seat.EXPECT().GetByKey(mock.Anything, 1, 12).Return(nil, postgres.ErrSeatAssignmentNotFound).Once()
		m.seat.EXPECT().GetByUser(mock.Anything, int64(5)).Return(nil, postgres.ErrSeatAssignmentNotFound).Once()
		m.seat.EXPECT().Create(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, a *domain.SeatAssignment) (*domain.SeatAssignment, error) {
				a.ID = 1
				return a, nil
			}).Once()
		m.user.EXPECT().SetSeat(mock.Anything, int64(5), &domain.SeatRef{RoomID: 1, SeatID: 12}).Return(nil).Once()
		m.deliveries.EXPECT().Enqueue(mock.Anything).
			RunAndReturn(func(d domain.Delivery) bool {
				assert.Equal(t, int64(5), d.UserID)
				assert.Contains(t, d.Notice.Title, "Seat assigned")
				return true
			}).Once()

		assignment, err := svc.AllocateSeat(ctx, 5, 1, 12, 99)
		require.NoError(t, err)
		assert.Equal(t, 12, assignment.SeatID)
		assert.Equal(t, int64(99), assignment.AssignedBy)
	})

	t.Run("Reassigning the held seat is idempotent", func(t *testing.T) {
		svc, m := newAllocator(t)

		existing := &domain.SeatAssignment{ID: 1, UserID: 5, RoomID: 1, SeatID: 12}
		m.catalog.EXPECT().GetReadingRoom(mock.Anything, 1).Return(&domain.ReadingRoom{ID: 1, SeatCount: 40}, nil).Once()
		m.user.EXPECT().GetUserByID(mock.Anything, int64(5)).Return(&domain.User{ID: 5}, nil).Once()
		m.seat.EXPECT().GetByKey(mock.Anything, 1, 12).Return(existing, nil).Once()
		// no delivery: nothing changed

		assignment, err := svc.AllocateSeat(ctx, 5, 1, 12, 99)
		require.NoError(t, err)
		assert.Equal(t, existing, assignment)
	})

	t.Run("Seat held by another user", func(t *testing.T) {
		svc, m := newAllocator(t)

		m.catalog.EXPECT().GetReadingRoom(mock.Anything, 1).Return(&domain.ReadingRoom{ID: 1, SeatCount: 40}, nil).Once()
		m.user.EXPECT().GetUserByID(mock.Anything, int64(5)).Return(&domain.User{ID: 5}, nil).Once()
		m.seat.EXPECT().GetByKey(mock.Anything, 1, 12).Return(&domain.SeatAssignment{UserID: 6, RoomID: 1, SeatID: 12}, nil).Once()

		assignment, err := svc.AllocateSeat(ctx, 5, 1, 12, 99)
		assert.Error(t, err)
		assert.Nil(t, assignment)
		assert.Equal(t, domain.CodeFailedPrecondition, domain.CodeOf(err))
	})

	t.Run("User already holds a different seat", func(t *testing.T) {
		svc, m := newAllocator(t)

		m.catalog.EXPECT().GetReadingRoom(mock.Anything, 1).Return(&domain.ReadingRoom{ID: 1, SeatCount: 40}, nil).Once()
		m.user.EXPECT().GetUserByID(mock.Anything, int64(5)).Return(&domain.User{ID: 5}, nil).Once()
		m.seat.EXPECT().GetByKey(mock.Anything, 1, 12).Return(nil, postgres.ErrSeatAssignmentNotFound).Once()
		m.seat.EXPECT().GetByUser(mock.Anything, int64(5)).Return(&domain.SeatAssignment{UserID: 5, RoomID: 2, SeatID: 7}, nil).Once()

		_, err := svc.AllocateSeat(ctx, 5, 1, 12, 99)
		assert.Equal(t, domain.CodeFailedPrecondition, domain.CodeOf(err))
	})

	t.Run("Seat out of range", func(t *testing.T) {
		svc, m := newAllocator(t)

		m.catalog.EXPECT().GetReadingRoom(mock.Anything, 1).Return(&domain.ReadingRoom{ID: 1, SeatCount: 40}, nil).Once()

		_, err := svc.AllocateSeat(ctx, 5, 1, 41, 99)
		assert.Equal(t, domain.CodeInvalidArgument, domain.CodeOf(err))
	})

	t.Run("Room not found", func(t *testing.T) {
		svc, m := newAllocator(t)

		m.catalog.EXPECT().GetReadingRoom(mock.Anything, 9).Return(nil, postgres.ErrRoomNotFound).Once()

		_, err := svc.AllocateSeat(ctx, 5, 9, 1, 99)
		assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
	})
}

func TestAllocatorService_AllocateBed(t *testing.T) {
	ctx := context.Background()
	nextDue := time.Now().AddDate(0, 3, 0)

	rooms := []*domain.HostelRoom{
		{BuildingID: "B1", RoomID: "101", RoomType: "double", Capacity: 2, MonthlyRent: 2000},
		{BuildingID: "B1", RoomID: "102", RoomType: "double", Capacity: 2, MonthlyRent: 2000},
	}

	t.Run("Picks the first free bed in catalog order", func(t *testing.T) {
		svc, m := newAllocator(t)

		m.catalog.EXPECT().ListHostelRooms(mock.Anything, "B1", "double").Return(rooms, nil).Once()
		m.hostel.EXPECT().ListActiveByBuilding(mock.Anything, "B1").Return([]*domain.HostelAssignment{
			{RoomID: "101", BedNumber: 1, Status: domain.HostelAssignmentActive},
		}, nil).Once()
		m.hostel.EXPECT().Create(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, a *domain.HostelAssignment) (*domain.HostelAssignment, error) {
				a.ID = 1
				return a, nil
			}).Once()
		m.user.EXPECT().SetHostel(mock.Anything, int64(5), &domain.HostelRef{BuildingID: "B1", RoomID: "101", BedNumber: 2}, &nextDue).Return(nil).Once()

		assignment, err := svc.AllocateBed(ctx, 5, "B1", "double", 3, nextDue)
		require.NoError(t, err)
		assert.Equal(t, "101", assignment.RoomID)
		assert.Equal(t, 2, assignment.BedNumber)
		assert.Equal(t, 2000.0, assignment.MonthlyRent)
	})

	t.Run("Skips a full room", func(t *testing.T) {
		svc, m := newAllocator(t)

		m.catalog.EXPECT().ListHostelRooms(mock.Anything, "B1", "double").Return(rooms, nil).Once()
		m.hostel.EXPECT().ListActiveByBuilding(mock.Anything, "B1").Return([]*domain.HostelAssignment{
			{RoomID: "101", BedNumber: 1, Status: domain.HostelAssignmentActive},
			{RoomID: "101", BedNumber: 2, Status: domain.HostelAssignmentActive},
		}, nil).Once()
		m.hostel.EXPECT().Create(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, a *domain.HostelAssignment) (*domain.HostelAssignment, error) {
				a.ID = 2
				return a, nil
			}).Once()
		m.user.EXPECT().SetHostel(mock.Anything, int64(5), &domain.HostelRef{BuildingID: "B1", RoomID: "102", BedNumber: 1}, &nextDue).Return(nil).Once()

		assignment, err := svc.AllocateBed(ctx, 5, "B1", "double", 3, nextDue)
		require.NoError(t, err)
		assert.Equal(t, "102", assignment.RoomID)
		assert.Equal(t, 1, assignment.BedNumber)
	})

	t.Run("All beds occupied", func(t *testing.T) {
		svc, m := newAllocator(t)

		m.catalog.EXPECT().ListHostelRooms(mock.Anything, "B1", "double").Return(rooms, nil).Once()
		m.hostel.EXPECT().ListActiveByBuilding(mock.Anything, "B1").Return([]*domain.HostelAssignment{
			{RoomID: "101", BedNumber: 1}, {RoomID: "101", BedNumber: 2},
			{RoomID: "102", BedNumber: 1}, {RoomID: "102", BedNumber: 2},
		}, nil).Once()

		assignment, err := svc.AllocateBed(ctx, 5, "B1", "double", 3, nextDue)
		assert.Error(t, err)
		assert.Nil(t, assignment)
		assert.Equal(t, domain.CodeResourceExhausted, domain.CodeOf(err))
	})

	t.Run("No rooms of the requested type", func(t *testing.T) {
		svc, m := newAllocator(t)

		m.catalog.EXPECT().ListHostelRooms(mock.Anything, "B1", "single").Return(nil, nil).Once()

		_, err := svc.AllocateBed(ctx, 5, "B1", "single", 3, nextDue)
		assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
	})
}

func TestAllocatorService_AllocateDiscussionSlot(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	slot := &domain.DiscussionSlot{ID: 2, Label: "10:00-12:00"}
	allRooms := []string{"D1", "D2", "D3"}

	t.Run("Books the first free room", func(t *testing.T) {
		svc, m := newAllocator(t)

		m.catalog.EXPECT().GetDiscussionSlot(mock.Anything, 2).Return(slot, nil).Once()
		for _, id := range []int64{1, 2, 3} {
			m.user.EXPECT().GetUserByID(mock.Anything, id).Return(&domain.User{ID: id}, nil).Once()
			m.discussion.EXPECT().CountForParticipant(mock.Anything, id, date).Return(0, nil).Once()
		}
		m.catalog.EXPECT().ListDiscussionRooms(mock.Anything).Return(allRooms, nil).Once()
		m.discussion.EXPECT().RoomsBookedForSlot(mock.Anything, date, 2).Return([]string{"D1"}, nil).Once()
		m.discussion.EXPECT().Create(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, b *domain.DiscussionBooking) (*domain.DiscussionBooking, error) {
				b.ID = 1
				return b, nil
			}).Once()
		m.deliveries.EXPECT().Enqueue(mock.Anything).
			RunAndReturn(func(d domain.Delivery) bool {
				assert.Equal(t, int64(1), d.UserID)
				assert.Contains(t, d.Notice.Body, "D2")
				return true
			}).Once()

		booking, err := svc.AllocateDiscussionSlot(ctx, 1, date, 2, "", "team rocket", []int64{2, 3})
		require.NoError(t, err)
		assert.Equal(t, "D2", booking.RoomID)
		assert.Equal(t, "10:00-12:00", booking.SlotLabel)
		assert.Equal(t, int64(1), booking.LeaderID)
	})

	t.Run("Participant at the daily cap", func(t *testing.T) {
		svc, m := newAllocator(t)

		m.catalog.EXPECT().GetDiscussionSlot(mock.Anything, 2).Return(slot, nil).Once()
		m.user.EXPECT().GetUserByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil).Once()
		m.discussion.EXPECT().CountForParticipant(mock.Anything, int64(1), date).Return(0, nil).Once()
		m.user.EXPECT().GetUserByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil).Once()
		m.discussion.EXPECT().CountForParticipant(mock.Anything, int64(2), date).Return(2, nil).Once()

		booking, err := svc.AllocateDiscussionSlot(ctx, 1, date, 2, "", "team rocket", []int64{2})
		assert.Error(t, err)
		assert.Nil(t, booking)
		assert.Equal(t, domain.CodeFailedPrecondition, domain.CodeOf(err))
	})

	t.Run("Duplicate member IDs are counted once", func(t *testing.T) {
		svc, m := newAllocator(t)

		m.catalog.EXPECT().GetDiscussionSlot(mock.Anything, 2).Return(slot, nil).Once()
		m.user.EXPECT().GetUserByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil).Once()
		m.discussion.EXPECT().CountForParticipant(mock.Anything, int64(1), date).Return(0, nil).Once()
		m.catalog.EXPECT().ListDiscussionRooms(mock.Anything).Return(allRooms, nil).Once()
		m.discussion.EXPECT().RoomsBookedForSlot(mock.Anything, date, 2).Return(nil, nil).Once()
		m.discussion.EXPECT().Create(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, b *domain.DiscussionBooking) (*domain.DiscussionBooking, error) {
				return b, nil
			}).Once()
		m.deliveries.EXPECT().Enqueue(mock.Anything).Return(true).Once()

		// leader listed among members: eligibility is checked once
		_, err := svc.AllocateDiscussionSlot(ctx, 1, date, 2, "", "solo", []int64{1, 1})
		require.NoError(t, err)
	})

	t.Run("All rooms booked for the slot", func(t *testing.T) {
		svc, m := newAllocator(t)

		m.catalog.EXPECT().GetDiscussionSlot(mock.Anything, 2).Return(slot, nil).Once()
		m.user.EXPECT().GetUserByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil).Once()
		m.discussion.EXPECT().CountForParticipant(mock.Anything, int64(1), date).Return(0, nil).Once()
		m.catalog.EXPECT().ListDiscussionRooms(mock.Anything).Return(allRooms, nil).Once()
		m.discussion.EXPECT().RoomsBookedForSlot(mock.Anything, date, 2).Return(allRooms, nil).Once()

		booking, err := svc.AllocateDiscussionSlot(ctx, 1, date, 2, "", "team rocket", nil)
		assert.Error(t, err)
		assert.Nil(t, booking)
		assert.Equal(t, domain.CodeResourceExhausted, domain.CodeOf(err))
	})

	t.Run("Unknown slot", func(t *testing.T) {
		svc, m := newAllocator(t)

		m.catalog.EXPECT().GetDiscussionSlot(mock.Anything, 9).Return(nil, postgres.ErrSlotNotFound).Once()

		_, err := svc.AllocateDiscussionSlot(ctx, 1, date, 9, "", "team rocket", nil)
		assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
	})

	t.Run("Missing team name", func(t *testing.T) {
		svc, _ := newAllocator(t)

		_, err := svc.AllocateDiscussionSlot(ctx, 1, date, 2, "", "", nil)
		assert.Equal(t, domain.CodeInvalidArgument, domain.CodeOf(err))
	})
}

func TestAllocatorService_Release(t *testing.T) {
	ctx := context.Background()

	t.Run("ReleaseSeat clears assignment and pointer", func(t *testing.T) {
		svc, m := newAllocator(t)

		m.seat.EXPECT().DeleteByUser(mock.Anything, int64(5)).Return(nil).Once()
		m.user.EXPECT().SetSeat(mock.Anything, int64(5), (*domain.SeatRef)(nil)).Return(nil).Once()

		require.NoError(t, svc.ReleaseSeat(ctx, 5))
	})

	t.Run("ReleaseHostel withdraws and clears the pointer", func(t *testing.T) {
		svc, m := newAllocator(t)

		m.hostel.EXPECT().WithdrawByUser(mock.Anything, int64(5)).Return(nil).Once()
		m.user.EXPECT().SetHostel(mock.Anything, int64(5), (*domain.HostelRef)(nil), (*time.Time)(nil)).Return(nil).Once()

		require.NoError(t, svc.ReleaseHostel(ctx, 5))
	})
}
