package booking

import (
	"time"

	"yardly/models"

	"go.uber.org/zap"
)

// Boundary ingestion: listing availability and booking times arrive as
// weekday names and "HH:00" strings. They are parsed here, once, and the
// resolver only ever sees integers after that.

// WindowFromListing builds the resolver's availability view from a listing's
// stored configuration. Returns nil when the owner never configured weekdays,
// which the resolver reports as day-not-configured. Malformed hour strings
// drop the hour constraint rather than failing the whole window.
func WindowFromListing(listing *models.Listing, logger *zap.Logger) *models.AvailabilityWindow {
	if listing == nil || len(listing.AvailableWeekdays) == 0 {
		return nil
	}

	window := &models.AvailabilityWindow{}
	for _, name := range listing.AvailableWeekdays {
		day, err := ParseWeekday(name)
		if err != nil {
			logger.Warn("skipping unknown weekday on listing",
				zap.String("listingId", listing.ID), zap.String("weekday", name))
			continue
		}
		window.Weekdays = append(window.Weekdays, day)
	}
	if len(window.Weekdays) == 0 {
		return nil
	}

	if listing.AvailableTimes != nil {
		start, startErr := ParseHour(listing.AvailableTimes.StartTime)
		end, endErr := ParseHour(listing.AvailableTimes.EndTime)
		if startErr != nil || endErr != nil {
			logger.Warn("listing has unparseable availability hours",
				zap.String("listingId", listing.ID),
				zap.String("startTime", listing.AvailableTimes.StartTime),
				zap.String("endTime", listing.AvailableTimes.EndTime))
		} else {
			window.StartHour = start
			window.EndHour = end
			window.HasHours = true
		}
	}
	return window
}

// OccupiedIntervals reduces a listing's bookings to the occupied hour ranges
// conflict checks consume. Only confirmed bookings occupy time; bookings with
// an unparseable date or time pair are skipped and logged.
func OccupiedIntervals(bookings []models.Booking, logger *zap.Logger) []models.BookedInterval {
	var intervals []models.BookedInterval
	for _, b := range bookings {
		if b.Status != models.BookingStatusConfirmed {
			continue
		}
		if _, err := time.Parse(DateLayout, b.Date); err != nil {
			logger.Warn("skipping booking with unparseable date",
				zap.String("bookingId", b.ID), zap.String("date", b.Date))
			continue
		}
		start, startErr := ParseHour(b.StartTime)
		end, endErr := ParseHour(b.EndTime)
		if startErr != nil || endErr != nil {
			logger.Warn("skipping booking with unparseable times",
				zap.String("bookingId", b.ID),
				zap.String("startTime", b.StartTime), zap.String("endTime", b.EndTime))
			continue
		}
		intervals = append(intervals, models.BookedInterval{
			BookingID: b.ID,
			ListingID: b.ListingID,
			Date:      b.Date,
			StartHour: start,
			EndHour:   end,
		})
	}
	return intervals
}
