package model

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrRequestNotFound = errors.New("swap request not found")

	ErrForbidden            = errors.New("forbidden")
	ErrInvalidState         = errors.New("invalid state")
	ErrItemNotAvailable     = errors.New("item not available")
	ErrInsufficientCredits  = errors.New("insufficient credits")
	ErrDuplicateRequest     = errors.New("duplicate swap request")
	ErrPendingLimitExceeded = errors.New("pending request limit exceeded")

	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrCompensationFailed means a refund or status revert after a partial
	// failure could not be applied. Credits are stranded until reconciled, so
	// this must never be downgraded or swallowed.
	ErrCompensationFailed = errors.New("compensation failed")
)
