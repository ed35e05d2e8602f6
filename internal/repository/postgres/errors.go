package postgres

import "errors"

// Storage sentinels; services translate these into the caller-facing taxonomy
var (
	ErrUserExists        = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrInsufficientFunds = errors.New("insufficient funds")

	ErrSeatAssignmentNotFound   = errors.New("seat assignment not found")
	ErrHostelAssignmentNotFound = errors.New("hostel assignment not found")
	ErrLoanNotFound             = errors.New("loan not found")
	ErrCouponNotFound           = errors.New("coupon not found")
	ErrRefundNotFound           = errors.New("refund not found")
	ErrLoadRequestNotFound      = errors.New("load request not found")
	ErrRoomNotFound             = errors.New("room not found")
	ErrSlotNotFound             = errors.New("slot not found")
)

// uniqueViolation is the PostgreSQL error code for a unique constraint breach
const uniqueViolation = "23505"

// checkViolation is raised when a CHECK constraint fails, e.g. a debit that
// would take a balance negative
const checkViolation = "23514"
