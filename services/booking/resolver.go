package booking

import (
	"fmt"
	"sort"
	"time"

	"yardly/models"
)

// DateLayout is the calendar-day form used everywhere bookings carry a date.
const DateLayout = "2006-01-02"

// The resolver is the pure decision core for booking requests: no I/O, no
// mutation, every failure a returned value. Callers fetch the listing's
// availability window and its confirmed bookings first, then evaluate as
// often as the renter changes date or times.

// ValidateDay checks that the requested date falls on a weekday the owner
// has opened. Weekdays follow the standard Gregorian mapping (Sunday=0).
func ValidateDay(date time.Time, window *models.AvailabilityWindow) models.ValidationResult {
	if window == nil || len(window.Weekdays) == 0 {
		return models.ValidationResult{
			Valid:   false,
			Reason:  models.ReasonDayNotConfigured,
			Message: "Availability hasn't been set up for this listing yet.",
		}
	}
	if !window.AllowsWeekday(date.Weekday()) {
		return models.ValidationResult{
			Valid:   false,
			Reason:  models.ReasonDayNotAvailable,
			Message: fmt.Sprintf("This yard is only available on %s.", AbbrevWeekdays(window.Weekdays)),
		}
	}
	return models.ValidationResult{Valid: true}
}

// ValidateTimeRange checks the requested hour range against the owner's
// daily hours. The range must be completely contained in the owner window;
// partial overlap is rejected, never clipped. A window without configured
// hours imposes no constraint.
func ValidateTimeRange(startHour, endHour *int, window *models.AvailabilityWindow) models.ValidationResult {
	if startHour == nil || endHour == nil {
		return models.ValidationResult{
			Valid:   false,
			Reason:  models.ReasonMissingTime,
			Message: "Please select both a start and an end time.",
		}
	}
	if *endHour <= *startHour {
		return models.ValidationResult{
			Valid:   false,
			Reason:  models.ReasonInvalidRange,
			Message: "End time must be after start time.",
		}
	}
	if window == nil || !window.HasHours {
		return models.ValidationResult{Valid: true}
	}
	if *startHour < window.StartHour || *endHour > window.EndHour {
		return models.ValidationResult{
			Valid:  false,
			Reason: models.ReasonOutsideOwnerHours,
			Message: fmt.Sprintf("Bookings must fall within the owner's hours of %s.",
				FormatHourRange(window.StartHour, window.EndHour)),
		}
	}
	return models.ValidationResult{Valid: true}
}

// FindConflict scans the listing's occupied intervals on the requested date
// for an overlap with [startHour, endHour). Ranges are half-open, so a
// booking ending at hour 12 never conflicts with one starting at hour 12.
func FindConflict(date time.Time, startHour, endHour int, listingID string, booked []models.BookedInterval) models.ConflictResult {
	day := date.Format(DateLayout)
	for i := range booked {
		b := &booked[i]
		if b.ListingID != listingID || b.Date != day {
			continue
		}
		if startHour < b.EndHour && b.StartHour < endHour {
			return models.ConflictResult{HasConflict: true, Interval: b}
		}
	}
	return models.ConflictResult{}
}

// ComputeFreeSlots returns the open sub-intervals of the owner window on the
// given date, in ascending order. It sorts the date's occupied intervals by
// start hour and sweeps left to right; advancing the cursor with max() keeps
// the sweep correct even if stored bookings happen to overlap.
func ComputeFreeSlots(window *models.AvailabilityWindow, booked []models.BookedInterval, date time.Time) []models.FreeSlot {
	if window == nil || !window.HasHours {
		return nil
	}

	day := date.Format(DateLayout)
	var occupied []models.BookedInterval
	for _, b := range booked {
		if b.Date == day {
			occupied = append(occupied, b)
		}
	}
	sort.Slice(occupied, func(i, j int) bool {
		return occupied[i].StartHour < occupied[j].StartHour
	})

	var slots []models.FreeSlot
	cursor := window.StartHour
	for _, b := range occupied {
		if cursor < b.StartHour {
			slots = append(slots, models.FreeSlot{
				StartHour: cursor,
				EndHour:   b.StartHour,
				Label:     SlotLabel(cursor, b.StartHour),
			})
		}
		if b.EndHour > cursor {
			cursor = b.EndHour
		}
	}
	if cursor < window.EndHour {
		slots = append(slots, models.FreeSlot{
			StartHour: cursor,
			EndHour:   window.EndHour,
			Label:     SlotLabel(cursor, window.EndHour),
		})
	}
	return slots
}

// EvaluateBookingRequest runs the full check order: day, then time range,
// then conflicts. On a conflict the result carries the date's remaining free
// slots so the client can suggest alternatives.
func EvaluateBookingRequest(req models.BookingRequestInput, window *models.AvailabilityWindow, booked []models.BookedInterval) models.ValidationResult {
	if res := ValidateDay(req.Date, window); !res.Valid {
		return res
	}
	if res := ValidateTimeRange(req.StartHour, req.EndHour, window); !res.Valid {
		return res
	}
	conflict := FindConflict(req.Date, *req.StartHour, *req.EndHour, req.ListingID, booked)
	if conflict.HasConflict {
		return models.ValidationResult{
			Valid:     false,
			Reason:    models.ReasonTimeConflict,
			Message:   "The selected time overlaps an existing booking.",
			FreeSlots: ComputeFreeSlots(window, booked, req.Date),
		}
	}
	return models.ValidationResult{Valid: true}
}
