package models

import "time"

// AvailabilityWindow is an owner's recurring weekly open hours for a listing,
// already parsed from the stored weekday names and "HH:00" bounds.
// HasHours is false when the owner never configured daily hours; in that case
// time-range checks impose no hour constraint.
type AvailabilityWindow struct {
	Weekdays  []time.Weekday `json:"weekdays"`
	StartHour int            `json:"startHour"`
	EndHour   int            `json:"endHour"`
	HasHours  bool           `json:"hasHours"`
}

// AllowsWeekday reports whether the window includes the given weekday.
func (w *AvailabilityWindow) AllowsWeekday(d time.Weekday) bool {
	for _, wd := range w.Weekdays {
		if wd == d {
			return true
		}
	}
	return false
}

// AvailableTimes is the stored daily hour range as configured by the owner,
// in 24-hour whole-hour "HH:00" form.
type AvailableTimes struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// BookedInterval is a confirmed booking's occupied hour range on one date,
// reduced to the fields conflict checks need.
type BookedInterval struct {
	BookingID string `json:"bookingId"`
	ListingID string `json:"listingId"`
	Date      string `json:"date"` // "YYYY-MM-DD"
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
}

// FreeSlot represents a contiguous open hour range on a given date that is
// within the owner's availability window and not covered by any booking.
type FreeSlot struct {
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
	Label     string `json:"label"` // e.g., "9:00 AM - 10:30 AM"
}

// ValidationReason classifies why a booking request was rejected.
type ValidationReason string

const (
	ReasonNone              ValidationReason = ""
	ReasonDayNotConfigured  ValidationReason = "dayNotConfigured"
	ReasonDayNotAvailable   ValidationReason = "dayNotAvailable"
	ReasonMissingTime       ValidationReason = "missingTime"
	ReasonInvalidRange      ValidationReason = "invalidRange"
	ReasonOutsideOwnerHours ValidationReason = "outsideOwnerHours"
	ReasonTimeConflict      ValidationReason = "timeConflict"
)

// ValidationResult is the outcome of evaluating a booking request. Failures
// are values, never errors; Message is user-displayable. FreeSlots is set
// when the rejection reason is a time conflict.
type ValidationResult struct {
	Valid     bool             `json:"valid"`
	Reason    ValidationReason `json:"reason,omitempty"`
	Message   string           `json:"message,omitempty"`
	FreeSlots []FreeSlot       `json:"freeSlots,omitempty"`
}

// ConflictResult reports whether a requested range overlaps an existing
// booking, and which one.
type ConflictResult struct {
	HasConflict bool            `json:"hasConflict"`
	Interval    *BookedInterval `json:"interval,omitempty"`
}

// BookingRequestInput is the candidate range a renter is evaluating. Start
// and end are nil until the renter has picked both times.
type BookingRequestInput struct {
	ListingID string    `json:"listingId"`
	Date      time.Time `json:"date"`
	StartHour *int      `json:"startHour,omitempty"`
	EndHour   *int      `json:"endHour,omitempty"`
}
