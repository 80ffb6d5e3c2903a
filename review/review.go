package review

import (
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found for this booking")

var ErrReviewExists = errors.New("this booking already has a review")

var ErrBookingNotAccepted = errors.New("only accepted bookings can be reviewed")

var ErrBookingNotFinished = errors.New("booking not finished yet")

var ErrNotAllowed = errors.New("you can review only your own bookings")

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Review is tied one-to-one to a completed booking; the unique constraint on
// BookingID is what makes creation idempotence-safe under concurrency.
type Review struct {
	ID        string    `json:"id"`
	BookingID string    `json:"bookingId"`
	AuthorID  string    `json:"authorId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
