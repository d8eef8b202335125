package booking

import (
	"testing"
	"time"

	"yardly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWindowFromListing(t *testing.T) {
	l := &models.Listing{
		ID:                "l1",
		AvailableWeekdays: []string{"Monday", "Wednesday", "Friday"},
		AvailableTimes:    &models.AvailableTimes{StartTime: "9:00", EndTime: "17:00"},
	}
	window := WindowFromListing(l, zap.NewNop())
	require.NotNil(t, window)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, window.Weekdays)
	assert.True(t, window.HasHours)
	assert.Equal(t, 9, window.StartHour)
	assert.Equal(t, 17, window.EndHour)
}

func TestWindowFromListingWithoutWeekdays(t *testing.T) {
	assert.Nil(t, WindowFromListing(nil, zap.NewNop()))
	assert.Nil(t, WindowFromListing(&models.Listing{ID: "l1"}, zap.NewNop()))
}

func TestWindowFromListingSkipsUnknownWeekdays(t *testing.T) {
	l := &models.Listing{
		ID:                "l1",
		AvailableWeekdays: []string{"Monday", "Funday"},
	}
	window := WindowFromListing(l, zap.NewNop())
	require.NotNil(t, window)
	assert.Equal(t, []time.Weekday{time.Monday}, window.Weekdays)

	l.AvailableWeekdays = []string{"Funday"}
	assert.Nil(t, WindowFromListing(l, zap.NewNop()))
}

func TestWindowFromListingDropsMalformedHours(t *testing.T) {
	l := &models.Listing{
		ID:                "l1",
		AvailableWeekdays: []string{"Monday"},
		AvailableTimes:    &models.AvailableTimes{StartTime: "soon", EndTime: "17:00"},
	}
	window := WindowFromListing(l, zap.NewNop())
	require.NotNil(t, window)
	assert.False(t, window.HasHours)
}

func TestOccupiedIntervalsOnlyConfirmed(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", ListingID: "l1", Date: "2026-01-05", StartTime: "9:00", EndTime: "11:00", Status: models.BookingStatusConfirmed},
		{ID: "b2", ListingID: "l1", Date: "2026-01-05", StartTime: "11:00", EndTime: "13:00", Status: models.BookingStatusPendingPayment},
		{ID: "b3", ListingID: "l1", Date: "2026-01-05", StartTime: "13:00", EndTime: "15:00", Status: models.BookingStatusCancelled},
	}
	intervals := OccupiedIntervals(bookings, zap.NewNop())
	require.Len(t, intervals, 1)
	assert.Equal(t, "b1", intervals[0].BookingID)
	assert.Equal(t, 9, intervals[0].StartHour)
	assert.Equal(t, 11, intervals[0].EndHour)
}

func TestOccupiedIntervalsSkipsMalformedBookings(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", ListingID: "l1", Date: "someday", StartTime: "9:00", EndTime: "11:00", Status: models.BookingStatusConfirmed},
		{ID: "b2", ListingID: "l1", Date: "2026-01-05", StartTime: "morning", EndTime: "11:00", Status: models.BookingStatusConfirmed},
		{ID: "b3", ListingID: "l1", Date: "2026-01-05", StartTime: "9:00", EndTime: "11:00", Status: models.BookingStatusConfirmed},
	}
	intervals := OccupiedIntervals(bookings, zap.NewNop())
	require.Len(t, intervals, 1)
	assert.Equal(t, "b3", intervals[0].BookingID)
}
