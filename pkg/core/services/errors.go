package services

import "errors"

// Validation and approval errors surfaced to users. Store failures are
// wrapped with %w instead and carry the underlying cause.
var (
	// ErrMissingName is returned when a submission has no display name.
	ErrMissingName = errors.New("attendant name is required")

	// ErrInvalidIdentity is returned when the email is malformed or not on
	// the required institutional domain.
	ErrInvalidIdentity = errors.New("email must be a valid institutional address")

	// ErrSlotCountOutOfRange is returned when a submission selects no
	// shifts or more than the per-submission maximum.
	ErrSlotCountOutOfRange = errors.New("a submission must select between 1 and 4 shifts")

	// ErrInvalidSlot is returned when a selected shift is not in the
	// weekly catalog.
	ErrInvalidSlot = errors.New("selected shift is not in the weekly catalog")

	// ErrDuplicateSlot is returned when a submission selects the same
	// shift twice.
	ErrDuplicateSlot = errors.New("the same shift was selected more than once")

	// ErrInvalidTshirtSize is returned for a t-shirt size outside XS-XXL.
	ErrInvalidTshirtSize = errors.New("unknown t-shirt size")

	// ErrMaxShiftsOutOfRange is returned when the declared weekly maximum
	// is outside 1-4.
	ErrMaxShiftsOutOfRange = errors.New("max shifts must be between 1 and 4")

	// ErrCapacityExceeded is returned when approving a record would push an
	// attendant past their declared weekly maximum. Per-record, never fatal
	// to the rest of an approval batch.
	ErrCapacityExceeded = errors.New("attendant already has their maximum approved shifts")

	// ErrUnauthorized is returned when the manager secret does not match.
	// It deliberately reveals nothing else.
	ErrUnauthorized = errors.New("unauthorized")
)
