package booking_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/driveshare/car-rental-backend/auth"
	bk "github.com/driveshare/car-rental-backend/booking"
	bk_mocks "github.com/driveshare/car-rental-backend/booking/mocks"
	"github.com/driveshare/car-rental-backend/car"
	car_mocks "github.com/driveshare/car-rental-backend/car/mocks"
)

var testCar = car.Car{
	ID:          "car-1",
	OwnerID:     "owner-1",
	Brand:       "Toyota",
	Model:       "Corolla",
	PricePerDay: 50,
	IsActive:    true,
}

var renter = auth.Context{UserID: "renter-1", Role: auth.RoleUser}

var owner = auth.Context{UserID: "owner-1", Role: auth.RoleOwner}

type testDeps struct {
	repo    *bk_mocks.MockBookingRepository
	cars    *car_mocks.MockDirectory
	service *bk.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := bk_mocks.NewMockBookingRepository(ctrl)
	cars := car_mocks.NewMockDirectory(ctrl)
	svc := bk.NewService(repo, cars)

	return ctrl, testDeps{
		repo: repo, cars: cars, service: svc, ctx: context.Background(),
	}
}

func pendingBooking(id string, start, end string) bk.Booking {
	return bk.Booking{
		ID:        id,
		CarID:     testCar.ID,
		RenterID:  renter.UserID,
		StartDate: date(start),
		EndDate:   date(end),
		Status:    bk.StatusPending,
	}
}

func TestCreateBooking(t *testing.T) {
	r := dateRange("2024-03-01", "2024-03-03")

	t.Run("success computes price and persists pending", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.cars.EXPECT().GetByID(deps.ctx, testCar.ID).Return(testCar, nil).Times(1)
		deps.repo.EXPECT().ListBookingsForCar(deps.ctx, testCar.ID, "").Return(nil, nil).Times(1)

		var insertedID string
		deps.repo.EXPECT().InsertBooking(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b bk.Booking) (bk.Booking, error) {
				require.NotEmpty(t, b.ID)
				require.Equal(t, testCar.ID, b.CarID)
				require.Equal(t, renter.UserID, b.RenterID)
				require.Equal(t, bk.StatusPending, b.Status)
				require.Equal(t, 3*50, b.TotalPrice)
				insertedID = b.ID
				return b, nil
			}).Times(1)

		deps.repo.EXPECT().GetBookingViewByID(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) (bk.View, error) {
				require.Equal(t, insertedID, id)
				return bk.View{
					ID:         id,
					CarID:      testCar.ID,
					CarBrand:   testCar.Brand,
					CarModel:   testCar.Model,
					RenterID:   renter.UserID,
					RenterName: "Jane Doe",
					StartDate:  r.Start,
					EndDate:    r.End,
					TotalPrice: 150,
					Status:     bk.StatusPending,
				}, nil
			}).Times(1)

		view, err := deps.service.CreateBooking(deps.ctx, renter, testCar.ID, r)

		require.NoError(t, err)
		require.Equal(t, 150, view.TotalPrice)
		require.Equal(t, bk.StatusPending, view.Status)
		require.Equal(t, "Jane Doe", view.RenterName)
	})

	t.Run("only renters can book", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		for _, actor := range []auth.Context{
			owner,
			{UserID: "admin-1", Role: auth.RoleAdmin},
			{UserID: "support-1", Role: auth.RoleSupport},
		} {
			_, err := deps.service.CreateBooking(deps.ctx, actor, testCar.ID, r)
			require.ErrorIs(t, err, bk.ErrNotAllowed)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := deps.service.CreateBooking(deps.ctx, renter, testCar.ID, dateRange("2024-03-03", "2024-03-01"))
		require.ErrorIs(t, err, bk.ErrInvalidDateRange)
	})

	t.Run("zero dates", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := deps.service.CreateBooking(deps.ctx, renter, testCar.ID, bk.DateRange{})
		require.ErrorIs(t, err, bk.ErrInvalidDateRange)
	})

	t.Run("car not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.cars.EXPECT().GetByID(deps.ctx, "missing").Return(car.Car{}, car.ErrCarNotFound).Times(1)

		_, err := deps.service.CreateBooking(deps.ctx, renter, "missing", r)
		require.ErrorIs(t, err, car.ErrCarNotFound)
	})

	t.Run("inactive car", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		inactive := testCar
		inactive.IsActive = false
		deps.cars.EXPECT().GetByID(deps.ctx, testCar.ID).Return(inactive, nil).Times(1)

		_, err := deps.service.CreateBooking(deps.ctx, renter, testCar.ID, r)
		require.ErrorIs(t, err, bk.ErrCarUnavailable)
	})

	t.Run("overlapping booking blocks", func(t *testing.T) {
		existing := pendingBooking("b-1", "2024-01-10", "2024-01-15")

		for _, attempt := range []bk.DateRange{
			dateRange("2024-01-12", "2024-01-14"),
			dateRange("2024-01-15", "2024-01-20"),
			dateRange("2024-01-05", "2024-01-10"),
		} {
			ctrl, deps := newTestDeps(t)

			deps.cars.EXPECT().GetByID(deps.ctx, testCar.ID).Return(testCar, nil).Times(1)
			deps.repo.EXPECT().ListBookingsForCar(deps.ctx, testCar.ID, "").Return([]bk.Booking{existing}, nil).Times(1)
			deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

			_, err := deps.service.CreateBooking(deps.ctx, renter, testCar.ID, attempt)
			require.ErrorIs(t, err, bk.ErrBookingConflict)

			ctrl.Finish()
		}
	})

	t.Run("adjacent range succeeds", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		existing := pendingBooking("b-1", "2024-01-10", "2024-01-15")
		attempt := dateRange("2024-01-16", "2024-01-20")

		deps.cars.EXPECT().GetByID(deps.ctx, testCar.ID).Return(testCar, nil).Times(1)
		deps.repo.EXPECT().ListBookingsForCar(deps.ctx, testCar.ID, "").Return([]bk.Booking{existing}, nil).Times(1)
		deps.repo.EXPECT().InsertBooking(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b bk.Booking) (bk.Booking, error) { return b, nil }).Times(1)
		deps.repo.EXPECT().GetBookingViewByID(deps.ctx, gomock.Any()).Return(bk.View{Status: bk.StatusPending}, nil).Times(1)

		_, err := deps.service.CreateBooking(deps.ctx, renter, testCar.ID, attempt)
		require.NoError(t, err)
	})

	t.Run("insert loses the race", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.cars.EXPECT().GetByID(deps.ctx, testCar.ID).Return(testCar, nil).Times(1)
		deps.repo.EXPECT().ListBookingsForCar(deps.ctx, testCar.ID, "").Return(nil, nil).Times(1)
		deps.repo.EXPECT().InsertBooking(deps.ctx, gomock.Any()).Return(bk.Booking{}, bk.ErrBookingConflict).Times(1)

		_, err := deps.service.CreateBooking(deps.ctx, renter, testCar.ID, r)
		require.ErrorIs(t, err, bk.ErrBookingConflict)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.cars.EXPECT().GetByID(deps.ctx, testCar.ID).Return(testCar, nil).Times(1)
		deps.repo.EXPECT().ListBookingsForCar(deps.ctx, testCar.ID, "").Return(nil, errors.New("repo error")).Times(1)

		_, err := deps.service.CreateBooking(deps.ctx, renter, testCar.ID, r)
		require.Error(t, err)
	})
}

func TestUpdateBooking(t *testing.T) {
	existing := pendingBooking("b-1", "2024-03-01", "2024-03-03")
	newRange := dateRange("2024-04-01", "2024-04-05")

	t.Run("success revalidates and recomputes price", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(existing, nil).Times(1)
		deps.cars.EXPECT().GetByID(deps.ctx, testCar.ID).Return(testCar, nil).Times(1)
		deps.repo.EXPECT().ListBookingsForCar(deps.ctx, testCar.ID, "b-1").Return(nil, nil).Times(1)
		deps.repo.EXPECT().UpdateBooking(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b bk.Booking) error {
				require.Equal(t, "b-1", b.ID)
				require.Equal(t, newRange.Start, b.StartDate)
				require.Equal(t, newRange.End, b.EndDate)
				require.Equal(t, 5*50, b.TotalPrice)
				return nil
			}).Times(1)
		deps.repo.EXPECT().GetBookingViewByID(deps.ctx, "b-1").Return(bk.View{ID: "b-1", Status: bk.StatusPending}, nil).Times(1)

		_, err := deps.service.UpdateBooking(deps.ctx, renter, "b-1", testCar.ID, newRange)
		require.NoError(t, err)
	})

	t.Run("not the renter", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(existing, nil).Times(1)
		deps.repo.EXPECT().UpdateBooking(gomock.Any(), gomock.Any()).Times(0)

		other := auth.Context{UserID: "someone-else", Role: auth.RoleUser}
		_, err := deps.service.UpdateBooking(deps.ctx, other, "b-1", testCar.ID, newRange)
		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})

	t.Run("not pending", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		accepted := existing
		accepted.Status = bk.StatusAccepted
		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(accepted, nil).Times(1)
		deps.repo.EXPECT().UpdateBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.UpdateBooking(deps.ctx, renter, "b-1", testCar.ID, newRange)
		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})

	t.Run("update does not conflict with itself", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		// widening the same dates: the repository was asked to exclude b-1
		widened := dateRange("2024-03-01", "2024-03-05")

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(existing, nil).Times(1)
		deps.cars.EXPECT().GetByID(deps.ctx, testCar.ID).Return(testCar, nil).Times(1)
		deps.repo.EXPECT().ListBookingsForCar(deps.ctx, testCar.ID, "b-1").Return(nil, nil).Times(1)
		deps.repo.EXPECT().UpdateBooking(deps.ctx, gomock.Any()).Return(nil).Times(1)
		deps.repo.EXPECT().GetBookingViewByID(deps.ctx, "b-1").Return(bk.View{ID: "b-1", Status: bk.StatusPending}, nil).Times(1)

		_, err := deps.service.UpdateBooking(deps.ctx, renter, "b-1", testCar.ID, widened)
		require.NoError(t, err)
	})

	t.Run("conflict with another booking", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		blocker := pendingBooking("b-2", "2024-04-03", "2024-04-10")

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(existing, nil).Times(1)
		deps.cars.EXPECT().GetByID(deps.ctx, testCar.ID).Return(testCar, nil).Times(1)
		deps.repo.EXPECT().ListBookingsForCar(deps.ctx, testCar.ID, "b-1").Return([]bk.Booking{blocker}, nil).Times(1)
		deps.repo.EXPECT().UpdateBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.UpdateBooking(deps.ctx, renter, "b-1", testCar.ID, newRange)
		require.ErrorIs(t, err, bk.ErrBookingConflict)
	})

	t.Run("booking not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "missing").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		_, err := deps.service.UpdateBooking(deps.ctx, renter, "missing", testCar.ID, newRange)
		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})
}

func TestCancelBooking(t *testing.T) {
	existing := pendingBooking("b-1", "2024-03-01", "2024-03-03")

	t.Run("success marks cancelled", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(existing, nil).Times(1)
		deps.repo.EXPECT().GetBookingViewByID(deps.ctx, "b-1").Return(bk.View{ID: "b-1", Status: bk.StatusPending}, nil).Times(1)
		deps.repo.EXPECT().SoftDeleteBooking(deps.ctx, "b-1").Return(nil).Times(1)

		view, err := deps.service.CancelBooking(deps.ctx, renter, "b-1")
		require.NoError(t, err)
		require.Equal(t, bk.StatusCancelled, view.Status)
	})

	t.Run("not the renter", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(existing, nil).Times(1)
		deps.repo.EXPECT().SoftDeleteBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CancelBooking(deps.ctx, owner, "b-1")
		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})

	t.Run("settled bookings cannot be cancelled", func(t *testing.T) {
		for _, status := range []bk.Status{bk.StatusAccepted, bk.StatusRejected} {
			ctrl, deps := newTestDeps(t)

			settled := existing
			settled.Status = status
			deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(settled, nil).Times(1)
			deps.repo.EXPECT().SoftDeleteBooking(gomock.Any(), gomock.Any()).Times(0)

			_, err := deps.service.CancelBooking(deps.ctx, renter, "b-1")
			require.ErrorIs(t, err, bk.ErrInvalidBookingState)

			ctrl.Finish()
		}
	})

	t.Run("second cancel reports not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		// the soft-deleted row is invisible to GetBookingByID
		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)
		deps.repo.EXPECT().SoftDeleteBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CancelBooking(deps.ctx, renter, "b-1")
		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})
}

func TestAcceptOrReject(t *testing.T) {
	pending := pendingBooking("b-1", "2024-03-01", "2024-03-03")

	t.Run("accept", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(pending, nil).Times(1)
		deps.cars.EXPECT().IsOwnedBy(deps.ctx, testCar.ID, owner.UserID).Return(true, nil).Times(1)
		deps.repo.EXPECT().SetBookingStatus(deps.ctx, "b-1", bk.StatusAccepted).Return(nil).Times(1)
		deps.repo.EXPECT().GetBookingViewByID(deps.ctx, "b-1").Return(bk.View{ID: "b-1", Status: bk.StatusAccepted, EndDate: date("2030-01-01")}, nil).Times(1)

		view, err := deps.service.AcceptOrReject(deps.ctx, owner, "b-1", bk.StatusAccepted)
		require.NoError(t, err)
		require.Equal(t, bk.StatusAccepted, view.Status)
	})

	t.Run("reject", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(pending, nil).Times(1)
		deps.cars.EXPECT().IsOwnedBy(deps.ctx, testCar.ID, owner.UserID).Return(true, nil).Times(1)
		deps.repo.EXPECT().SetBookingStatus(deps.ctx, "b-1", bk.StatusRejected).Return(nil).Times(1)
		deps.repo.EXPECT().GetBookingViewByID(deps.ctx, "b-1").Return(bk.View{ID: "b-1", Status: bk.StatusRejected}, nil).Times(1)

		view, err := deps.service.AcceptOrReject(deps.ctx, owner, "b-1", bk.StatusRejected)
		require.NoError(t, err)
		require.Equal(t, bk.StatusRejected, view.Status)
	})

	t.Run("only accepted or rejected are valid targets", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		for _, status := range []bk.Status{bk.StatusPending, bk.StatusCompleted, bk.StatusCancelled, bk.Status("Approved")} {
			_, err := deps.service.AcceptOrReject(deps.ctx, owner, "b-1", status)
			require.ErrorIs(t, err, bk.ErrInvalidStatus)
		}
	})

	t.Run("not the car owner", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(pending, nil).Times(1)
		deps.cars.EXPECT().IsOwnedBy(deps.ctx, testCar.ID, "other-owner").Return(false, nil).Times(1)
		deps.repo.EXPECT().SetBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		otherOwner := auth.Context{UserID: "other-owner", Role: auth.RoleOwner}
		_, err := deps.service.AcceptOrReject(deps.ctx, otherOwner, "b-1", bk.StatusAccepted)
		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})

	t.Run("terminal states stay terminal", func(t *testing.T) {
		for _, status := range []bk.Status{bk.StatusAccepted, bk.StatusRejected, bk.StatusCancelled} {
			ctrl, deps := newTestDeps(t)

			settled := pending
			settled.Status = status
			deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(settled, nil).Times(1)
			deps.cars.EXPECT().IsOwnedBy(deps.ctx, testCar.ID, owner.UserID).Return(true, nil).Times(1)
			deps.repo.EXPECT().SetBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := deps.service.AcceptOrReject(deps.ctx, owner, "b-1", bk.StatusAccepted)
			require.ErrorIs(t, err, bk.ErrInvalidBookingState)

			ctrl.Finish()
		}
	})

	t.Run("decision lost the race", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		// a concurrent decision settled the booking between the read and
		// the conditional write
		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(pending, nil).Times(1)
		deps.cars.EXPECT().IsOwnedBy(deps.ctx, testCar.ID, owner.UserID).Return(true, nil).Times(1)
		deps.repo.EXPECT().SetBookingStatus(deps.ctx, "b-1", bk.StatusRejected).Return(bk.ErrInvalidBookingState).Times(1)

		_, err := deps.service.AcceptOrReject(deps.ctx, owner, "b-1", bk.StatusRejected)
		require.ErrorIs(t, err, bk.ErrInvalidBookingState)
	})

	t.Run("booking not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "missing").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		_, err := deps.service.AcceptOrReject(deps.ctx, owner, "missing", bk.StatusAccepted)
		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})
}

func TestHistories(t *testing.T) {
	views := []bk.View{
		{ID: "b-2", StartDate: date("2024-05-01"), EndDate: date("2030-05-05"), Status: bk.StatusPending},
		{ID: "b-1", StartDate: date("2024-03-01"), EndDate: date("2024-03-03"), Status: bk.StatusAccepted},
	}

	t.Run("user history marks finished accepted bookings completed", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetViewsByRenter(deps.ctx, renter.UserID).Return(views, nil).Times(1)

		got, err := deps.service.GetUserHistory(deps.ctx, renter)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, bk.StatusPending, got[0].Status)
		require.Equal(t, bk.StatusCompleted, got[1].Status)
	})

	t.Run("owner history", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetViewsByOwner(deps.ctx, owner.UserID).Return(nil, errors.New("repo error")).Times(1)

		_, err := deps.service.GetOwnerHistory(deps.ctx, owner)
		require.Error(t, err)
	})
}

func TestAvailabilityChecker(t *testing.T) {
	t.Run("rejected bookings never block", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		// the repository contract excludes rejected and soft-deleted rows,
		// so the checker sees an empty list for a car with only a rejected
		// booking on these dates
		deps.repo.EXPECT().ListBookingsForCar(deps.ctx, testCar.ID, "").Return([]bk.Booking{}, nil).Times(1)

		checker := bk.NewAvailabilityChecker(deps.repo)
		conflict, err := checker.HasConflict(deps.ctx, testCar.ID, dateRange("2024-01-10", "2024-01-15"), "")
		require.NoError(t, err)
		require.False(t, conflict)
	})

	t.Run("any overlapping booking conflicts", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		existing := pendingBooking("b-1", "2024-01-10", "2024-01-15")
		deps.repo.EXPECT().ListBookingsForCar(deps.ctx, testCar.ID, "").Return([]bk.Booking{existing}, nil).Times(1)

		checker := bk.NewAvailabilityChecker(deps.repo)
		conflict, err := checker.HasConflict(deps.ctx, testCar.ID, dateRange("2024-01-15", "2024-01-20"), "")
		require.NoError(t, err)
		require.True(t, conflict)
	})
}
