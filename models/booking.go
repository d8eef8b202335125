package models

import "time"

// Booking statuses.
const (
	BookingStatusPendingPayment = "pending_payment"
	BookingStatusConfirmed      = "confirmed"
	BookingStatusCancelled      = "cancelled"
	BookingStatusExpired        = "expired"
)

// Booking represents a reservation of a listing for a contiguous hour range
// on one date. Start and end times are stored in the same 24-hour whole-hour
// "HH:00" form the clients send.
type Booking struct {
	ID                string    `bson:"id" json:"id"`
	ListingID         string    `bson:"listingId" json:"listingId"`
	OwnerID           string    `bson:"ownerId" json:"ownerId"`
	RenterID          string    `bson:"renterId" json:"renterId"`
	Date              string    `bson:"date" json:"date"`           // "YYYY-MM-DD"
	StartTime         string    `bson:"startTime" json:"startTime"` // "HH:00"
	EndTime           string    `bson:"endTime" json:"endTime"`     // "HH:00"
	TotalPrice        float64   `bson:"totalPrice" json:"totalPrice"`
	Currency          string    `bson:"currency" json:"currency"`
	Status            string    `bson:"status" json:"status"`
	CheckoutSessionID string    `bson:"checkoutSessionId,omitempty" json:"checkoutSessionId,omitempty"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CheckoutRequest defines the payload for initiating a paid booking.
type CheckoutRequest struct {
	ListingID string `json:"listingId" binding:"required"`
	Date      string `json:"date" binding:"required"`      // "YYYY-MM-DD"
	StartTime string `json:"startTime" binding:"required"` // "HH:00"
	EndTime   string `json:"endTime" binding:"required"`   // "HH:00"
}

// CheckoutResponse carries the hosted payment redirect for a pending booking.
type CheckoutResponse struct {
	BookingID   string `json:"bookingId"`
	CheckoutURL string `json:"checkoutUrl"`
}
