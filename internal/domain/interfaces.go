package domain

import (
	"context"
	"time"
)

// TxRunner executes fn inside one serializable storage transaction. The
// transaction is carried in the context; repositories pick it up
// transparently. Conflicts are retried a bounded number of times, after
// which the error surfaces with CodeAborted.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MembershipUpdate carries the user-record fields a renewal or purchase rewrites
type MembershipUpdate struct {
	Service    ServiceType
	Policy     ExpiryPolicy
	NextDue    time.Time
	ClearFine  bool
	LeaveGrace bool
}

// LedgerRecorder is the single funnel for balance mutations; implemented by
// the ledger service and always called with an open transaction in ctx
type LedgerRecorder interface {
	RecordMutation(ctx context.Context, userID int64, amount float64, txnType TransactionType, breakdown *PriceBreakdown, linkedTxnID *string) (*Transaction, error)
}

// UserRepository defines storage operations on user records
type UserRepository interface {
	CreateUser(ctx context.Context, login, passwordHash, role, phone string) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)

	// ApplyBalanceDelta mutates the balance and returns the new value; a debit
	// that would take the balance negative fails with ErrInsufficientFunds
	// detected on the in-transaction read
	ApplyBalanceDelta(ctx context.Context, userID int64, delta float64) (float64, error)

	SetSeat(ctx context.Context, userID int64, seat *SeatRef) error
	SetHostel(ctx context.Context, userID int64, ref *HostelRef, nextDue *time.Time) error
	UpdateMembership(ctx context.Context, userID int64, upd MembershipUpdate) error
	ClearMembership(ctx context.Context, userID int64, service ServiceType) error
	ApplyFine(ctx context.Context, userID int64, service ServiceType, fine float64) error

	ListOverdue(ctx context.Context, service ServiceType, now time.Time) ([]*User, error)
	ListExpiring(ctx context.Context, service ServiceType, until time.Time, lead time.Duration) ([]*User, error)
	MarkExpiryWarned(ctx context.Context, userID int64, service ServiceType, at time.Time) error
	RemoveDeviceTokens(ctx context.Context, userID int64, tokens []string) error
}

// LedgerRepository defines storage operations on ledger entries
type LedgerRepository interface {
	Insert(ctx context.Context, txn *Transaction) (*Transaction, error)
	ListByUser(ctx context.Context, userID int64) ([]*Transaction, error)
	SumSigned(ctx context.Context, userID int64) (float64, error)
}

// LoanRepository defines storage operations on loans
type LoanRepository interface {
	Create(ctx context.Context, loan *Loan) (*Loan, error)
	GetActiveByUser(ctx context.Context, userID int64) (*Loan, error)
	UpdateOutstanding(ctx context.Context, loanID int64, balance float64, status LoanStatus) error
	ApplyInterest(ctx context.Context, loanID int64, balance float64, appliedAt time.Time) error
	ListActive(ctx context.Context) ([]*Loan, error)
}

// SeatRepository defines storage operations on seat assignments
type SeatRepository interface {
	GetByKey(ctx context.Context, roomID, seatID int) (*SeatAssignment, error)
	GetByUser(ctx context.Context, userID int64) (*SeatAssignment, error)
	Create(ctx context.Context, a *SeatAssignment) (*SeatAssignment, error)
	DeleteByUser(ctx context.Context, userID int64) error
}

// HostelRepository defines storage operations on hostel assignments
type HostelRepository interface {
	ListActiveByBuilding(ctx context.Context, buildingID string) ([]*HostelAssignment, error)
	GetActiveByUser(ctx context.Context, userID int64) (*HostelAssignment, error)
	Create(ctx context.Context, a *HostelAssignment) (*HostelAssignment, error)
	UpdateNextDue(ctx context.Context, id int64, nextDue time.Time) error
	WithdrawByUser(ctx context.Context, userID int64) error
}

// DiscussionRepository defines storage operations on discussion bookings
type DiscussionRepository interface {
	CountForParticipant(ctx context.Context, userID int64, date time.Time) (int, error)
	RoomsBookedForSlot(ctx context.Context, date time.Time, slotID int) ([]string, error)
	Create(ctx context.Context, b *DiscussionBooking) (*DiscussionBooking, error)
}

// CouponRepository defines storage operations on coupons
type CouponRepository interface {
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	IncrementUsage(ctx context.Context, code string) error
}

// RefundRepository defines storage operations on refunds
type RefundRepository interface {
	Create(ctx context.Context, r *Refund) (*Refund, error)
	GetByID(ctx context.Context, id int64) (*Refund, error)
	ListByUser(ctx context.Context, userID int64) ([]*Refund, error)
}

// LoadRequestRepository defines storage operations on balance load requests
type LoadRequestRepository interface {
	Create(ctx context.Context, userID int64, amount float64) (*BalanceLoadRequest, error)
	GetByID(ctx context.Context, id int64) (*BalanceLoadRequest, error)
	MarkProcessed(ctx context.Context, id int64, status LoadRequestStatus, at time.Time) error
}

// CanteenRepository defines storage operations on canteen orders
type CanteenRepository interface {
	CreateOrder(ctx context.Context, o *CanteenOrder) (*CanteenOrder, error)
}

// CatalogRepository reads the fixed resource catalogs; list methods return
// rows in catalog order, which is what makes allocation deterministic
type CatalogRepository interface {
	GetReadingRoom(ctx context.Context, roomID int) (*ReadingRoom, error)
	ListHostelRooms(ctx context.Context, buildingID, roomType string) ([]*HostelRoom, error)
	ListDiscussionRooms(ctx context.Context) ([]string, error)
	GetDiscussionSlot(ctx context.Context, slotID int) (*DiscussionSlot, error)
}

// Notification is the payload handed to the push collaborator
type Notification struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Notifier is the external push-notification collaborator. Push returns the
// device tokens the gateway reported as dead so the caller can prune them.
// Delivery is best-effort and never affects committed state.
type Notifier interface {
	Push(ctx context.Context, userID int64, tokens []string, n Notification) (failed []string, err error)
}

// SMSGateway is the external messaging collaborator
type SMSGateway interface {
	Send(ctx context.Context, phoneNumbers []string, message string) error
}

// Delivery is one outbound notification: push to the user's devices plus an
// SMS when a phone number is known
type Delivery struct {
	UserID int64
	Tokens []string
	Phone  string
	Notice Notification
}

// DeliveryQueue hands deliveries to the background dispatch pool. Enqueue
// never blocks; it reports false when the queue is full and the delivery was
// dropped. Dropping is acceptable, delivery is best-effort by contract.
type DeliveryQueue interface {
	Enqueue(d Delivery) bool
}
