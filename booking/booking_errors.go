package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrInvalidBookingState = errors.New("invalid booking state")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

var ErrInvalidDateRange = errors.New("end date must not be before start date")

var ErrInvalidStatus = errors.New("invalid booking status")

var ErrBookingConflict = errors.New("car is already booked in the selected period")

var ErrCarUnavailable = errors.New("car is not available")
