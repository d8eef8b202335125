package models

// ReminderPayload is the asynq task payload for a scheduled booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Target    string `json:"target"` // "renter" or "owner"
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
