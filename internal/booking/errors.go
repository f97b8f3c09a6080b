package booking

import (
	"errors"
	"fmt"

	"rental-backend/internal/models"
)

// Error taxonomy for the rental lifecycle. Handlers map these to HTTP
// status codes: ErrNotFound -> 404, ConflictError -> 409, everything
// else -> 400.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation failed")
)

// ConflictError reports a date-range overlap or a uniqueness violation.
// The conflicting rentals are attached so the caller can display them.
type ConflictError struct {
	Message   string
	Conflicts []*models.Rental
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) > 0 {
		return fmt.Sprintf("%s (%d conflicting rental(s))", e.Message, len(e.Conflicts))
	}
	return e.Message
}

// InvalidTransitionError reports a rental status transition the state
// machine does not allow, including the no-op case (from == to).
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid rental status transition: %s -> %s", e.From, e.To)
}
