package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/driveshare/car-rental-backend/auth"
	"github.com/driveshare/car-rental-backend/car"
)

//go:generate mockgen -source=booking_service.go -destination=mocks/booking_repository_mock.go -package=mocks

type BookingRepository interface {
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	GetBookingViewByID(ctx context.Context, id string) (View, error)
	GetAllBookingViews(ctx context.Context) ([]View, error)
	GetViewsByRenter(ctx context.Context, renterID string) ([]View, error)
	GetViewsByOwner(ctx context.Context, ownerID string) ([]View, error)
	ListBookingsForCar(ctx context.Context, carID, excludeID string) ([]Booking, error)
	InsertBooking(ctx context.Context, b Booking) (Booking, error)
	UpdateBooking(ctx context.Context, b Booking) error
	SetBookingStatus(ctx context.Context, id string, status Status) error
	SoftDeleteBooking(ctx context.Context, id string) error
}

// Service is the only component that mutates bookings. Every rule about who
// may do what, and when, lives here.
type Service struct {
	repo    BookingRepository
	cars    car.Directory
	checker *AvailabilityChecker
}

func NewService(repo BookingRepository, cars car.Directory) *Service {
	return &Service{
		repo:    repo,
		cars:    cars,
		checker: NewAvailabilityChecker(repo),
	}
}

func (s *Service) GetAllBookings(ctx context.Context) ([]View, error) {
	views, err := s.repo.GetAllBookingViews(ctx)

	if err != nil {
		return nil, err
	}

	return presentViews(views), nil
}

func (s *Service) FindBookingByID(ctx context.Context, id string) (View, error) {
	view, err := s.repo.GetBookingViewByID(ctx, id)

	if err != nil {
		return View{}, err
	}

	return presentView(view), nil
}

// CreateBooking validates the request against the car directory and the
// availability checker, computes the price and persists a Pending booking.
// Only renters (role User) book cars; owners and admins do not book through
// this path.
func (s *Service) CreateBooking(ctx context.Context, actor auth.Context, carID string, r DateRange) (View, error) {
	if actor.Role != auth.RoleUser {
		return View{}, ErrNotAllowed
	}

	if !r.Valid() {
		return View{}, ErrInvalidDateRange
	}

	c, err := s.cars.GetByID(ctx, carID)

	if err != nil {
		return View{}, err
	}

	if !c.IsActive {
		return View{}, ErrCarUnavailable
	}

	conflict, err := s.checker.HasConflict(ctx, carID, r, "")

	if err != nil {
		return View{}, err
	}

	if conflict {
		return View{}, ErrBookingConflict
	}

	b := Booking{
		ID:         uuid.NewString(),
		CarID:      carID,
		RenterID:   actor.UserID,
		StartDate:  r.Start,
		EndDate:    r.End,
		TotalPrice: r.Days() * c.PricePerDay,
		Status:     StatusPending,
	}

	inserted, err := s.repo.InsertBooking(ctx, b)

	if err != nil {
		return View{}, err
	}

	return s.FindBookingByID(ctx, inserted.ID)
}

// UpdateBooking changes the car or dates of a booking. Only the renter may do
// this, and only while the booking is still Pending. The target car and the
// availability are validated again and the price recomputed, exactly as on
// creation.
func (s *Service) UpdateBooking(ctx context.Context, actor auth.Context, id, carID string, r DateRange) (View, error) {
	b, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return View{}, err
	}

	if b.RenterID != actor.UserID || b.Status != StatusPending {
		return View{}, ErrNotAllowed
	}

	if !r.Valid() {
		return View{}, ErrInvalidDateRange
	}

	c, err := s.cars.GetByID(ctx, carID)

	if err != nil {
		return View{}, err
	}

	if !c.IsActive {
		return View{}, ErrCarUnavailable
	}

	conflict, err := s.checker.HasConflict(ctx, carID, r, id)

	if err != nil {
		return View{}, err
	}

	if conflict {
		return View{}, ErrBookingConflict
	}

	b.CarID = carID
	b.StartDate = r.Start
	b.EndDate = r.End
	b.TotalPrice = r.Days() * c.PricePerDay

	if err := s.repo.UpdateBooking(ctx, b); err != nil {
		return View{}, err
	}

	return s.FindBookingByID(ctx, id)
}

// CancelBooking soft-deletes a Pending booking on behalf of its renter. The
// record stays in the store for audit with status Cancelled; it no longer
// blocks availability. Cancelling twice reports not found the second time.
func (s *Service) CancelBooking(ctx context.Context, actor auth.Context, id string) (View, error) {
	b, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return View{}, err
	}

	if b.RenterID != actor.UserID {
		return View{}, ErrNotAllowed
	}

	if b.Status != StatusPending {
		return View{}, ErrInvalidBookingState
	}

	view, err := s.repo.GetBookingViewByID(ctx, id)

	if err != nil {
		return View{}, err
	}

	if err := s.repo.SoftDeleteBooking(ctx, id); err != nil {
		return View{}, err
	}

	view.Status = StatusCancelled

	return view, nil
}

// AcceptOrReject moves a Pending booking to Accepted or Rejected. Only the
// owner of the booked car may decide, and no other target status is allowed.
func (s *Service) AcceptOrReject(ctx context.Context, actor auth.Context, id string, status Status) (View, error) {
	if status != StatusAccepted && status != StatusRejected {
		return View{}, ErrInvalidStatus
	}

	b, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return View{}, err
	}

	owned, err := s.cars.IsOwnedBy(ctx, b.CarID, actor.UserID)

	if err != nil {
		return View{}, err
	}

	if !owned {
		return View{}, ErrNotAllowed
	}

	if b.Status != StatusPending {
		return View{}, ErrInvalidBookingState
	}

	if err := s.repo.SetBookingStatus(ctx, id, status); err != nil {
		return View{}, err
	}

	return s.FindBookingByID(ctx, id)
}

// GetUserHistory lists the bookings the actor made as a renter, most recent
// start date first.
func (s *Service) GetUserHistory(ctx context.Context, actor auth.Context) ([]View, error) {
	views, err := s.repo.GetViewsByRenter(ctx, actor.UserID)

	if err != nil {
		return nil, err
	}

	return presentViews(views), nil
}

// GetOwnerHistory lists the bookings made against the actor's cars, most
// recent start date first.
func (s *Service) GetOwnerHistory(ctx context.Context, actor auth.Context) ([]View, error) {
	views, err := s.repo.GetViewsByOwner(ctx, actor.UserID)

	if err != nil {
		return nil, err
	}

	return presentViews(views), nil
}

func presentView(v View) View {
	b := Booking{Status: v.Status, EndDate: v.EndDate}
	v.Status = b.PresentedStatus(Today())
	return v
}

func presentViews(views []View) []View {
	for i, v := range views {
		views[i] = presentView(v)
	}
	return views
}
