package booking_test

import (
	"encoding/json"
	"testing"
	"time"

	bk "github.com/driveshare/car-rental-backend/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) bk.Date {
	d, err := bk.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func dateRange(start, end string) bk.DateRange {
	return bk.DateRange{Start: date(start), End: date(end)}
}

func TestDateRangeOverlaps(t *testing.T) {
	cases := []struct {
		name    string
		a, b    bk.DateRange
		overlap bool
	}{
		{"identical", dateRange("2024-01-10", "2024-01-15"), dateRange("2024-01-10", "2024-01-15"), true},
		{"contained", dateRange("2024-01-10", "2024-01-15"), dateRange("2024-01-12", "2024-01-14"), true},
		{"partial", dateRange("2024-01-10", "2024-01-15"), dateRange("2024-01-13", "2024-01-20"), true},
		{"shared endpoint", dateRange("2024-01-10", "2024-01-15"), dateRange("2024-01-15", "2024-01-20"), true},
		{"single shared day", dateRange("2024-01-15", "2024-01-15"), dateRange("2024-01-15", "2024-01-15"), true},
		{"adjacent", dateRange("2024-01-10", "2024-01-15"), dateRange("2024-01-16", "2024-01-20"), false},
		{"disjoint", dateRange("2024-01-10", "2024-01-15"), dateRange("2024-02-01", "2024-02-05"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlap, tc.a.Overlaps(tc.b))
			// overlap is symmetric: checking in the other order must agree
			assert.Equal(t, tc.overlap, tc.b.Overlaps(tc.a))
		})
	}
}

func TestDateRangeDays(t *testing.T) {
	assert.Equal(t, 3, dateRange("2024-03-01", "2024-03-03").Days())
	assert.Equal(t, 1, dateRange("2024-03-01", "2024-03-01").Days())
	assert.Equal(t, 31, dateRange("2024-01-01", "2024-01-31").Days())
}

func TestDateRangeValid(t *testing.T) {
	assert.True(t, dateRange("2024-03-01", "2024-03-03").Valid())
	assert.True(t, dateRange("2024-03-01", "2024-03-01").Valid())
	assert.False(t, dateRange("2024-03-03", "2024-03-01").Valid())

	assert.False(t, bk.DateRange{}.Valid())
	assert.False(t, bk.DateRange{End: date("2024-03-03")}.Valid())
	assert.False(t, bk.DateRange{Start: date("2024-03-01")}.Valid())
}

func TestParseDate(t *testing.T) {
	d, err := bk.ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", d.String())

	_, err = bk.ParseDate("01/03/2024")
	require.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	out, err := json.Marshal(date("2024-03-01"))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01"`, string(out))

	var d bk.Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15"`), &d))
	assert.Equal(t, date("2024-03-15"), d)

	require.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
	require.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestStatusValid(t *testing.T) {
	for _, s := range []bk.Status{bk.StatusPending, bk.StatusAccepted, bk.StatusRejected, bk.StatusCompleted, bk.StatusCancelled} {
		assert.True(t, s.Valid())
	}

	assert.False(t, bk.Status("Approved").Valid())
	assert.False(t, bk.Status("").Valid())
}

func TestPresentedStatus(t *testing.T) {
	today := date("2024-06-01")

	cases := []struct {
		name   string
		status bk.Status
		end    bk.Date
		want   bk.Status
	}{
		{"accepted and finished", bk.StatusAccepted, date("2024-05-20"), bk.StatusCompleted},
		{"accepted ending today", bk.StatusAccepted, today, bk.StatusCompleted},
		{"accepted still running", bk.StatusAccepted, date("2024-06-10"), bk.StatusAccepted},
		{"pending in the past", bk.StatusPending, date("2024-05-20"), bk.StatusPending},
		{"rejected in the past", bk.StatusRejected, date("2024-05-20"), bk.StatusRejected},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := bk.Booking{Status: tc.status, EndDate: tc.end}
			assert.Equal(t, tc.want, b.PresentedStatus(today))
		})
	}
}

func TestDayNumber(t *testing.T) {
	epoch := bk.NewDate(1970, time.January, 1)
	assert.Equal(t, 0, epoch.DayNumber())
	assert.Equal(t, 1, bk.NewDate(1970, time.January, 2).DayNumber())
}
