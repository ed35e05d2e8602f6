package domain

import (
	"errors"
	"fmt"
)

// Code classifies an error for the caller-facing taxonomy
type Code string

const (
	CodeUnauthenticated    Code = "unauthenticated"
	CodePermissionDenied   Code = "permission_denied"
	CodeInvalidArgument    Code = "invalid_argument"
	CodeNotFound           Code = "not_found"
	CodeFailedPrecondition Code = "failed_precondition"
	CodeResourceExhausted  Code = "resource_exhausted"
	CodeAborted            Code = "aborted"
	CodeInternal           Code = "internal"
)

// Error is a typed business error with a message safe to show to the caller
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a typed error
func E(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Ef creates a typed error with a formatted message
func Ef(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a taxonomy code and message to an underlying error
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the taxonomy code from an error chain; anything
// untyped is Internal
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf extracts the caller-safe message from an error chain
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}

// User errors
var (
	ErrUserExists         = E(CodeFailedPrecondition, "user already exists")
	ErrUserNotFound       = E(CodeNotFound, "user not found")
	ErrInvalidCredentials = E(CodeUnauthenticated, "invalid credentials")
)

// Wallet and ledger errors
var (
	ErrInsufficientFunds = E(CodeFailedPrecondition, "insufficient balance")
)

// Storage errors; ErrConflict marks a lost optimistic-concurrency race and is
// the only error the transaction runner retries
var (
	ErrConflict = E(CodeAborted, "concurrent modification, please retry")
)
