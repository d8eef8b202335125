package booking

import (
	"errors"
	"fmt"

	"yardly/models"
)

var (
	// ErrListingNotFound means the requested listing does not exist.
	ErrListingNotFound = errors.New("listing not found")
	// ErrBookingNotFound means the requested booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrNotBookingParty means the caller is neither the renter nor the owner.
	ErrNotBookingParty = errors.New("caller is not a party to this booking")
	// ErrOwnBooking means an owner tried to book their own listing.
	ErrOwnBooking = errors.New("owners cannot book their own listing")
)

// ValidationError carries a failed availability evaluation through the error
// return so handlers can surface the reason, message and any free slots as a
// structured 409/422 body.
type ValidationError struct {
	Result models.ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("booking request rejected: %s", e.Result.Reason)
}

// AsValidationError unwraps a ValidationError from err, if present.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
