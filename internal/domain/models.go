package domain

import "time"

// ServiceType identifies a billable service
type ServiceType string

const (
	ServiceReadingRoom ServiceType = "reading_room"
	ServiceHostel      ServiceType = "hostel"
	ServiceDiscussion  ServiceType = "discussion"
	ServiceCanteen     ServiceType = "canteen"
	ServiceBalance     ServiceType = "balance"
)

// ExpiryPolicy controls what happens when a membership passes its due date
type ExpiryPolicy string

const (
	// ExpiryPolicyStandard keeps the resource and accrues a daily fine
	ExpiryPolicyStandard ExpiryPolicy = "standard"
	// ExpiryPolicyDaily removes the resource immediately after the due date
	ExpiryPolicyDaily ExpiryPolicy = "daily"
)

// TransactionType identifies a ledger entry kind; the sign of the balance
// mutation is implied by the type, amounts are stored non-negative
type TransactionType string

const (
	TransactionTypePurchase         TransactionType = "purchase"
	TransactionTypeRenewal          TransactionType = "renewal"
	TransactionTypeRefundCredit     TransactionType = "refund_credit"
	TransactionTypeBalanceTopup     TransactionType = "balance_topup"
	TransactionTypeBalanceLoad      TransactionType = "balance_load"
	TransactionTypeLoanDisbursement TransactionType = "loan_disbursement"
	TransactionTypeLoanRepayment    TransactionType = "loan_repayment"
	TransactionTypeCanteenOrder     TransactionType = "canteen_order"
)

// IsCredit reports whether the type increases the spendable balance
func (t TransactionType) IsCredit() bool {
	switch t {
	case TransactionTypeRefundCredit, TransactionTypeBalanceTopup,
		TransactionTypeBalanceLoad, TransactionTypeLoanDisbursement:
		return true
	}
	return false
}

// LoanStatus represents the lifecycle state of a loan
type LoanStatus string

const (
	LoanStatusActive LoanStatus = "active"
	LoanStatusRepaid LoanStatus = "repaid"
)

// RefundMode is how the user wants the refund paid out
type RefundMode string

const (
	RefundModeWallet RefundMode = "wallet"
	RefundModeCash   RefundMode = "cash"
)

// RefundStatus represents the lifecycle state of a refund
type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusApproved  RefundStatus = "approved"
	RefundStatusRejected  RefundStatus = "rejected"
	RefundStatusCompleted RefundStatus = "completed"
)

// CouponType selects how the coupon value is applied
type CouponType string

const (
	CouponTypePercentage CouponType = "percentage"
	CouponTypeFlat       CouponType = "flat"
)

// LoadRequestStatus represents the state of a balance load request
type LoadRequestStatus string

const (
	LoadRequestPending  LoadRequestStatus = "pending"
	LoadRequestApproved LoadRequestStatus = "approved"
	LoadRequestRejected LoadRequestStatus = "rejected"
)

// Roles recognised by the authorization checks
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// SeatRef points at one physical reading-room seat
type SeatRef struct {
	RoomID int `json:"room_id"`
	SeatID int `json:"seat_id"`
}

// HostelRef points at one physical hostel bed
type HostelRef struct {
	BuildingID string `json:"building_id"`
	RoomID     string `json:"room_id"`
	BedNumber  int    `json:"bed_number"`
}

// User is the member record; the balance field is the authoritative wallet
// balance, every mutation of it pairs with exactly one ledger entry
type User struct {
	ID           int64    `json:"id"`
	Login        string   `json:"login"`
	PasswordHash string   `json:"-"`
	Role         string   `json:"role"`
	Phone        string   `json:"phone,omitempty"`
	Balance      float64  `json:"balance"`
	DeviceTokens []string `json:"-"`

	CurrentSeat   *SeatRef   `json:"current_seat,omitempty"`
	CurrentHostel *HostelRef `json:"current_hostel,omitempty"`

	ExpiryPolicy         ExpiryPolicy `json:"expiry_policy"`
	NextPaymentDue       *time.Time   `json:"next_payment_due,omitempty"`
	HostelNextPaymentDue *time.Time   `json:"hostel_next_payment_due,omitempty"`
	FineAmount           float64      `json:"fine_amount"`
	HostelFineAmount     float64      `json:"hostel_fine_amount"`
	InGracePeriod        bool         `json:"in_grace_period"`
	HostelInGracePeriod  bool         `json:"hostel_in_grace_period"`

	LastExpiryWarningAt       *time.Time `json:"-"`
	HostelLastExpiryWarningAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Loan is the emergency low-balance credit facility, at most one active per user
type Loan struct {
	ID                  int64      `json:"id"`
	UserID              int64      `json:"-"`
	Principal           float64    `json:"principal"`
	CurrentBalance      float64    `json:"current_balance"`
	TakenAt             time.Time  `json:"taken_at"`
	LastInterestApplied time.Time  `json:"last_interest_applied"`
	Status              LoanStatus `json:"status"`
}

// SeatAssignment binds one (room, seat) to one user while active
type SeatAssignment struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	RoomID     int       `json:"room_id"`
	SeatID     int       `json:"seat_id"`
	AssignedBy int64     `json:"-"`
	AssignedAt time.Time `json:"assigned_at"`
}

// HostelAssignmentStatus is the state of a hostel assignment
type HostelAssignmentStatus string

const (
	HostelAssignmentActive    HostelAssignmentStatus = "active"
	HostelAssignmentWithdrawn HostelAssignmentStatus = "withdrawn"
)

// HostelAssignment binds one bed to one user; withdrawn records are kept
type HostelAssignment struct {
	ID             int64                  `json:"id"`
	UserID         int64                  `json:"user_id"`
	BuildingID     string                 `json:"building_id"`
	RoomID         string                 `json:"room_id"`
	BedNumber      int                    `json:"bed_number"`
	Months         int                    `json:"months"`
	MonthlyRent    float64                `json:"monthly_rent"`
	Status         HostelAssignmentStatus `json:"status"`
	NextPaymentDue time.Time              `json:"next_payment_due"`
	CreatedAt      time.Time              `json:"created_at"`
}

// DiscussionBooking reserves one discussion room for one slot on one date
type DiscussionBooking struct {
	ID          int64     `json:"id"`
	BookingDate time.Time `json:"booking_date"`
	SlotID      int       `json:"slot_id"`
	SlotLabel   string    `json:"slot_label"`
	RoomID      string    `json:"room_id"`
	LeaderID    int64     `json:"leader_id"`
	TeamName    string    `json:"team_name"`
	MemberIDs   []int64   `json:"member_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

// Discount is one applied price reduction
type Discount struct {
	Kind       string  `json:"kind"` // bulk, bundle or coupon
	Label      string  `json:"label"`
	Amount     float64 `json:"amount"`
	CouponCode string  `json:"coupon_code,omitempty"`
}

// PriceBreakdown records how a final price was reached
type PriceBreakdown struct {
	BasePrice     float64    `json:"base_price"`
	Discounts     []Discount `json:"discounts,omitempty"`
	TotalDiscount float64    `json:"total_discount"`
	FinalPrice    float64    `json:"final_price"`
}

// Transaction is an immutable ledger entry; amount is stored non-negative,
// the direction follows from the type
type Transaction struct {
	ID          int64           `json:"-"`
	TxnID       string          `json:"transaction_id"`
	UserID      int64           `json:"-"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Breakdown   *PriceBreakdown `json:"breakdown,omitempty"`
	LinkedTxnID *string         `json:"linked_transaction_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SignedAmount returns the amount with the sign implied by the type
func (t *Transaction) SignedAmount() float64 {
	if t.Type.IsCredit() {
		return t.Amount
	}
	return -t.Amount
}

// Refund is a refund request or completed payout record
type Refund struct {
	ID               int64        `json:"id"`
	UserID           int64        `json:"-"`
	ServiceType      ServiceType  `json:"service_type"`
	AmountRequested  float64      `json:"amount_requested"`
	AmountCalculated float64      `json:"amount_calculated"`
	Mode             RefundMode   `json:"mode"`
	Status           RefundStatus `json:"status"`
	Token            string       `json:"token,omitempty"`
	Reason           string       `json:"reason,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

// Coupon is an operator-issued discount code
type Coupon struct {
	Code               string        `json:"code"`
	Type               CouponType    `json:"type"`
	Value              float64       `json:"value"`
	ExpiresAt          *time.Time    `json:"expires_at,omitempty"`
	UsageLimit         int           `json:"usage_limit"` // 0 means unlimited
	UsedCount          int           `json:"used_count"`
	MinAmount          float64       `json:"min_amount"`
	ApplicableServices []ServiceType `json:"applicable_services"`
	Stackable          bool          `json:"stackable"`
	AllowedUserIDs     []int64       `json:"allowed_user_ids,omitempty"`
}

// AppliesTo reports whether the coupon covers the given service
func (c *Coupon) AppliesTo(service ServiceType) bool {
	if len(c.ApplicableServices) == 0 {
		return true
	}
	for _, s := range c.ApplicableServices {
		if s == service {
			return true
		}
	}
	return false
}

// AllowsUser reports whether the coupon allow-list admits the user
func (c *Coupon) AllowsUser(userID int64) bool {
	if len(c.AllowedUserIDs) == 0 {
		return true
	}
	for _, id := range c.AllowedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// BalanceLoadRequest is a member-initiated top-up awaiting operator approval
type BalanceLoadRequest struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"user_id"`
	Amount      float64           `json:"amount"`
	Status      LoadRequestStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	ProcessedAt *time.Time        `json:"processed_at,omitempty"`
}

// CanteenItem is one line of a canteen order cart
type CanteenItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CanteenOrder is a committed canteen purchase
type CanteenOrder struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"-"`
	Items     []CanteenItem `json:"items"`
	Total     float64       `json:"total"`
	Note      string        `json:"note,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// ReadingRoom is a catalog entry; allocation iterates rooms in id order
type ReadingRoom struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SeatCount int    `json:"seat_count"`
}

// HostelRoom is a catalog entry; beds are numbered 1..Capacity
type HostelRoom struct {
	BuildingID  string  `json:"building_id"`
	RoomID      string  `json:"room_id"`
	RoomType    string  `json:"room_type"`
	Capacity    int     `json:"capacity"`
	MonthlyRent float64 `json:"monthly_rent"`
}

// DiscussionSlot is a bookable time slot
type DiscussionSlot struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}
