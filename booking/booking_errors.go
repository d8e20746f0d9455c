package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrInvalidBookingState = errors.New("invalid booking state")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

// ErrJobTaken is returned when an accept loses the race for a pending job:
// the record exists but another worker got there first.
var ErrJobTaken = errors.New("job is no longer available")

var ErrMissingFields = errors.New("all required fields must be provided")
