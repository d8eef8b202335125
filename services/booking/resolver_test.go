package booking

import (
	"testing"
	"time"

	"yardly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	// 2026-01-05 is a Monday, 2026-01-06 a Tuesday.
	monday  = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
)

func mwfWindow() *models.AvailabilityWindow {
	return &models.AvailabilityWindow{
		Weekdays:  []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		StartHour: 9,
		EndHour:   17,
		HasHours:  true,
	}
}

func hours(start, end int) (*int, *int) {
	return &start, &end
}

func interval(listingID, date string, start, end int) models.BookedInterval {
	return models.BookedInterval{
		BookingID: "b-" + date,
		ListingID: listingID,
		Date:      date,
		StartHour: start,
		EndHour:   end,
	}
}

func TestValidateDayRejectsUnconfiguredWeekday(t *testing.T) {
	res := ValidateDay(tuesday, mwfWindow())
	require.False(t, res.Valid)
	assert.Equal(t, models.ReasonDayNotAvailable, res.Reason)
	assert.Contains(t, res.Message, "Mon, Wed, Fri")
}

func TestValidateDayWithoutConfiguration(t *testing.T) {
	res := ValidateDay(monday, nil)
	require.False(t, res.Valid)
	assert.Equal(t, models.ReasonDayNotConfigured, res.Reason)

	res = ValidateDay(monday, &models.AvailabilityWindow{})
	require.False(t, res.Valid)
	assert.Equal(t, models.ReasonDayNotConfigured, res.Reason)
}

func TestValidateDayAcceptsConfiguredWeekday(t *testing.T) {
	assert.True(t, ValidateDay(monday, mwfWindow()).Valid)
}

func TestValidateTimeRangeMissingTime(t *testing.T) {
	start := 9
	res := ValidateTimeRange(nil, nil, mwfWindow())
	assert.Equal(t, models.ReasonMissingTime, res.Reason)

	res = ValidateTimeRange(&start, nil, mwfWindow())
	assert.Equal(t, models.ReasonMissingTime, res.Reason)
}

func TestValidateTimeRangeOrdering(t *testing.T) {
	// end <= start is never a valid range, equal included.
	for _, pair := range [][2]int{{10, 9}, {10, 10}, {17, 9}} {
		start, end := hours(pair[0], pair[1])
		res := ValidateTimeRange(start, end, mwfWindow())
		require.False(t, res.Valid, "start=%d end=%d", pair[0], pair[1])
		assert.Equal(t, models.ReasonInvalidRange, res.Reason)
	}
}

func TestValidateTimeRangeContainment(t *testing.T) {
	window := mwfWindow()

	cases := []struct {
		start, end int
		valid      bool
	}{
		{8, 10, false},
		{9, 18, false},
		{8, 18, false},
		{9, 17, true},
		{9, 10, true},
		{16, 17, true},
		{11, 13, true},
	}
	for _, tc := range cases {
		start, end := hours(tc.start, tc.end)
		res := ValidateTimeRange(start, end, window)
		assert.Equal(t, tc.valid, res.Valid, "start=%d end=%d", tc.start, tc.end)
		if !tc.valid {
			assert.Equal(t, models.ReasonOutsideOwnerHours, res.Reason)
		}
	}
}

func TestValidateTimeRangeUnconstrainedWithoutHours(t *testing.T) {
	window := &models.AvailabilityWindow{Weekdays: []time.Weekday{time.Monday}}
	start, end := hours(0, 23)
	assert.True(t, ValidateTimeRange(start, end, window).Valid)
}

func TestFindConflictHalfOpenIntervals(t *testing.T) {
	day := monday.Format(DateLayout)
	booked := []models.BookedInterval{interval("l1", day, 10, 12)}

	cases := []struct {
		start, end int
		conflict   bool
	}{
		{11, 13, true},
		{9, 11, true},
		{10, 12, true},
		{9, 13, true},
		{11, 12, true},
		{8, 10, false},  // back-to-back before
		{12, 14, false}, // back-to-back after
		{13, 15, false},
	}
	for _, tc := range cases {
		res := FindConflict(monday, tc.start, tc.end, "l1", booked)
		assert.Equal(t, tc.conflict, res.HasConflict, "start=%d end=%d", tc.start, tc.end)
		if tc.conflict {
			require.NotNil(t, res.Interval)
			assert.Equal(t, 10, res.Interval.StartHour)
		}
	}
}

func TestFindConflictScopedToListingAndDate(t *testing.T) {
	day := monday.Format(DateLayout)
	otherDay := tuesday.Format(DateLayout)
	booked := []models.BookedInterval{
		interval("other-listing", day, 10, 12),
		interval("l1", otherDay, 10, 12),
	}
	assert.False(t, FindConflict(monday, 10, 12, "l1", booked).HasConflict)
}

func TestComputeFreeSlotsGaps(t *testing.T) {
	day := monday.Format(DateLayout)
	window := mwfWindow()
	booked := []models.BookedInterval{interval("l1", day, 10, 12)}

	slots := ComputeFreeSlots(window, booked, monday)
	require.Len(t, slots, 2)
	assert.Equal(t, 9, slots[0].StartHour)
	assert.Equal(t, 10, slots[0].EndHour)
	assert.Equal(t, "9:00 AM - 10:00 AM", slots[0].Label)
	assert.Equal(t, 12, slots[1].StartHour)
	assert.Equal(t, 17, slots[1].EndHour)
	assert.Equal(t, "12:00 PM - 5:00 PM", slots[1].Label)
}

func TestComputeFreeSlotsBackToBackBookings(t *testing.T) {
	day := monday.Format(DateLayout)
	booked := []models.BookedInterval{
		interval("l1", day, 9, 11),
		interval("l1", day, 11, 13),
	}
	slots := ComputeFreeSlots(mwfWindow(), booked, monday)
	require.Len(t, slots, 1)
	assert.Equal(t, 13, slots[0].StartHour)
	assert.Equal(t, 17, slots[0].EndHour)
}

func TestComputeFreeSlotsCoverage(t *testing.T) {
	// The gaps plus the occupied intervals must cover the owner window
	// exactly, with no holes and no double counting.
	day := monday.Format(DateLayout)
	window := mwfWindow()
	booked := []models.BookedInterval{
		interval("l1", day, 10, 11),
		interval("l1", day, 13, 15),
	}

	slots := ComputeFreeSlots(window, booked, monday)

	covered := make(map[int]int)
	for _, s := range slots {
		for h := s.StartHour; h < s.EndHour; h++ {
			covered[h]++
		}
	}
	for _, b := range booked {
		for h := b.StartHour; h < b.EndHour; h++ {
			covered[h]++
		}
	}
	for h := window.StartHour; h < window.EndHour; h++ {
		assert.Equal(t, 1, covered[h], "hour %d", h)
	}
	assert.Len(t, covered, window.EndHour-window.StartHour)
}

func TestComputeFreeSlotsOverlappingBookings(t *testing.T) {
	// Overlapping stored bookings must not make the sweep over-generous.
	day := monday.Format(DateLayout)
	booked := []models.BookedInterval{
		interval("l1", day, 9, 13),
		interval("l1", day, 11, 12),
	}
	slots := ComputeFreeSlots(mwfWindow(), booked, monday)
	require.Len(t, slots, 1)
	assert.Equal(t, 13, slots[0].StartHour)
	assert.Equal(t, 17, slots[0].EndHour)
}

func TestComputeFreeSlotsFullyBooked(t *testing.T) {
	day := monday.Format(DateLayout)
	booked := []models.BookedInterval{interval("l1", day, 9, 17)}
	assert.Empty(t, ComputeFreeSlots(mwfWindow(), booked, monday))
}

func TestComputeFreeSlotsWithoutHours(t *testing.T) {
	window := &models.AvailabilityWindow{Weekdays: []time.Weekday{time.Monday}}
	assert.Nil(t, ComputeFreeSlots(window, nil, monday))
}

func TestEvaluateBookingRequestCheckOrder(t *testing.T) {
	day := monday.Format(DateLayout)
	window := mwfWindow()
	booked := []models.BookedInterval{interval("l1", day, 10, 12)}

	// Day failure wins even when times are also broken.
	start, end := hours(10, 9)
	res := EvaluateBookingRequest(models.BookingRequestInput{
		ListingID: "l1", Date: tuesday, StartHour: start, EndHour: end,
	}, window, booked)
	assert.Equal(t, models.ReasonDayNotAvailable, res.Reason)

	// Range failure wins over the conflict check.
	res = EvaluateBookingRequest(models.BookingRequestInput{
		ListingID: "l1", Date: monday, StartHour: start, EndHour: end,
	}, window, booked)
	assert.Equal(t, models.ReasonInvalidRange, res.Reason)
}

func TestEvaluateBookingRequestConflictCarriesFreeSlots(t *testing.T) {
	day := monday.Format(DateLayout)
	window := mwfWindow()
	booked := []models.BookedInterval{interval("l1", day, 10, 12)}

	start, end := hours(11, 13)
	res := EvaluateBookingRequest(models.BookingRequestInput{
		ListingID: "l1", Date: monday, StartHour: start, EndHour: end,
	}, window, booked)
	require.False(t, res.Valid)
	assert.Equal(t, models.ReasonTimeConflict, res.Reason)
	require.Len(t, res.FreeSlots, 2)
	assert.Equal(t, "9:00 AM - 10:00 AM", res.FreeSlots[0].Label)
	assert.Equal(t, "12:00 PM - 5:00 PM", res.FreeSlots[1].Label)
}

func TestEvaluateBookingRequestFullWindowBooking(t *testing.T) {
	start, end := hours(9, 17)
	res := EvaluateBookingRequest(models.BookingRequestInput{
		ListingID: "l1", Date: monday, StartHour: start, EndHour: end,
	}, mwfWindow(), nil)
	assert.True(t, res.Valid)
	assert.Equal(t, models.ReasonNone, res.Reason)
}

func TestEvaluateBookingRequestIdempotent(t *testing.T) {
	day := monday.Format(DateLayout)
	window := mwfWindow()
	booked := []models.BookedInterval{interval("l1", day, 10, 12)}
	start, end := hours(11, 13)
	input := models.BookingRequestInput{
		ListingID: "l1", Date: monday, StartHour: start, EndHour: end,
	}

	first := EvaluateBookingRequest(input, window, booked)
	second := EvaluateBookingRequest(input, window, booked)
	assert.Equal(t, first, second)
}
