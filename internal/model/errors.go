package model

import "errors"

// Validation errors surfaced to the user. The menu reports these inline and
// aborts the current operation; they are never fatal.
var (
	ErrInvalidKind       = errors.New("kind must be income or expense")
	ErrMissingDate       = errors.New("date is required")
	ErrMalformedDate     = errors.New("date must be YYYY-MM-DD")
	ErrMalformedPeriod   = errors.New("period must be YYYY-MM")
	ErrMissingCategory   = errors.New("category is required")
	ErrMissingName       = errors.New("name is required")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrMalformedAmount   = errors.New("amount is not a valid number")
	ErrAmountTooLarge    = errors.New("amount is too large")
	ErrDeadlineNotAfter  = errors.New("deadline must be after the start date")
)
