package booking

import "context"

// AvailabilityChecker decides whether a candidate date range conflicts with
// the existing bookings of a car. It never mutates anything; the repository
// re-runs the same test inside the insert/update transaction to cover the
// window between check and commit.
type AvailabilityChecker struct {
	repo BookingRepository
}

func NewAvailabilityChecker(repo BookingRepository) *AvailabilityChecker {
	return &AvailabilityChecker{repo: repo}
}

// HasConflict reports whether any non-rejected, non-deleted booking for the
// car overlaps the given inclusive range. excludeID skips one booking, for
// validating an update against everything but itself.
func (a *AvailabilityChecker) HasConflict(ctx context.Context, carID string, r DateRange, excludeID string) (bool, error) {
	existing, err := a.repo.ListBookingsForCar(ctx, carID, excludeID)

	if err != nil {
		return false, err
	}

	for _, b := range existing {
		if r.Overlaps(b.Range()) {
			return true, nil
		}
	}

	return false, nil
}
