package review

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/driveshare/car-rental-backend/auth"
	"github.com/driveshare/car-rental-backend/booking"
)

//go:generate mockgen -source=review_service.go -destination=mocks/review_service_mock.go -package=mocks

type ReviewRepository interface {
	GetByBookingID(ctx context.Context, bookingID string) (Review, error)
	InsertReview(ctx context.Context, rv Review) (Review, error)
}

// BookingStore is the slice of the booking store the review gate reads.
type BookingStore interface {
	GetBookingByID(ctx context.Context, id string) (booking.Booking, error)
}

// Service gates review creation: one review per booking, written by the
// renter, only once the booking was accepted and its end date has passed.
type Service struct {
	repo     ReviewRepository
	bookings BookingStore
}

func NewService(repo ReviewRepository, bookings BookingStore) *Service {
	return &Service{repo: repo, bookings: bookings}
}

func (s *Service) FindByBookingID(ctx context.Context, bookingID string) (Review, error) {
	return s.repo.GetByBookingID(ctx, bookingID)
}

func (s *Service) CreateReview(ctx context.Context, actor auth.Context, bookingID string, rating int, comment string) (Review, error) {
	if rating < 1 || rating > 5 {
		return Review{}, ErrInvalidRating
	}

	b, err := s.bookings.GetBookingByID(ctx, bookingID)

	if err != nil {
		return Review{}, err
	}

	if b.RenterID != actor.UserID {
		return Review{}, ErrNotAllowed
	}

	if b.Status != booking.StatusAccepted {
		return Review{}, ErrBookingNotAccepted
	}

	if b.EndDate.After(booking.Today().Time) {
		return Review{}, ErrBookingNotFinished
	}

	if _, err := s.repo.GetByBookingID(ctx, bookingID); err == nil {
		return Review{}, ErrReviewExists
	} else if !errors.Is(err, ErrReviewNotFound) {
		return Review{}, err
	}

	rv := Review{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		AuthorID:  actor.UserID,
		Rating:    rating,
		Comment:   comment,
	}

	return s.repo.InsertReview(ctx, rv)
}
