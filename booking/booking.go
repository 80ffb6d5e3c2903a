package booking

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Status is the lifecycle state of a booking. Pending bookings can move to
// Accepted or Rejected (by the car owner) or Cancelled (by the renter);
// nothing moves out of Rejected or Cancelled. Completed is derived from an
// Accepted booking whose end date has passed, it is never stored.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusAccepted  Status = "Accepted"
	StatusRejected  Status = "Rejected"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Date is a calendar date with no time-of-day component, serialized as
// YYYY-MM-DD. The zero value is the zero time.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// Today returns the current calendar date in UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// DayNumber counts days since the Unix epoch, so day arithmetic stays
// independent of time zones and DST.
func (d Date) DayNumber() int {
	return int(d.Unix() / (24 * 60 * 60))
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s: expected a quoted YYYY-MM-DD string", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start Date
	End   Date
}

func (r DateRange) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && !r.End.Before(r.Start.Time)
}

// Days returns the number of calendar days covered, counting both endpoints.
func (r DateRange) Days() int {
	return r.End.DayNumber() - r.Start.DayNumber() + 1
}

// Overlaps reports whether the two inclusive ranges share at least one day.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End.Time) && !r.End.Before(other.Start.Time)
}

type Booking struct {
	ID         string     `json:"id"`
	CarID      string     `json:"carId"`
	RenterID   string     `json:"renterId"`
	StartDate  Date       `json:"startDate"`
	EndDate    Date       `json:"endDate"`
	TotalPrice int        `json:"totalPrice"`
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	DeletedAt  *time.Time `json:"-"`
}

func (b Booking) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

// PresentedStatus substitutes Completed for an Accepted booking whose end
// date has passed.
func (b Booking) PresentedStatus(today Date) Status {
	if b.Status == StatusAccepted && !b.EndDate.After(today.Time) {
		return StatusCompleted
	}
	return b.Status
}

// View is the booking projection returned to clients, enriched with car and
// renter display data.
type View struct {
	ID         string `json:"id"`
	CarID      string `json:"carId"`
	CarBrand   string `json:"carBrand"`
	CarModel   string `json:"carModel"`
	RenterID   string `json:"renterId"`
	RenterName string `json:"renterName"`
	StartDate  Date   `json:"startDate"`
	EndDate    Date   `json:"endDate"`
	TotalPrice int    `json:"totalPrice"`
	Status     Status `json:"status"`
}
