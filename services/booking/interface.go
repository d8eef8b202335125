// File: services/booking/interface.go
package booking

import (
	"context"
	"fmt"

	bookingRepo "yardly/database/repository/booking"
	listingRepo "yardly/database/repository/listing"
	"yardly/models"
	"yardly/services/notification"
	"yardly/services/tasks"

	"github.com/go-redis/redis/v8"
)

// AvailabilityQuery is a renter's in-progress date and time selection.
// StartHour and EndHour stay nil until the renter has picked both times.
type AvailabilityQuery struct {
	ListingID string `json:"listingId" binding:"required"`
	Date      string `json:"date" binding:"required"` // "YYYY-MM-DD"
	StartTime string `json:"startTime"`               // "HH:00", optional
	EndTime   string `json:"endTime"`                 // "HH:00", optional
}

// BookingService exposes availability evaluation and the paid booking flow.
type BookingService interface {
	// QuoteAvailability evaluates the renter's current selection against the
	// listing's window and confirmed bookings, threading the renter's
	// per-listing date session so conflict suggestions stay sticky.
	QuoteAvailability(ctx context.Context, renterID string, q AvailabilityQuery) (models.ValidationResult, error)

	// InitiateCheckout re-validates the selection, creates a pending booking
	// and returns a hosted Stripe Checkout URL for it.
	InitiateCheckout(ctx context.Context, renterID string, req models.CheckoutRequest) (*models.CheckoutResponse, error)

	// ConfirmCheckout transitions a pending booking to confirmed after its
	// checkout session completes. Idempotent across webhook retries.
	ConfirmCheckout(ctx context.Context, checkoutSessionID string) error

	// ExpireCheckout marks a pending booking expired after its checkout
	// session lapses without payment.
	ExpireCheckout(ctx context.Context, checkoutSessionID string) error

	GetBooking(ctx context.Context, callerID, bookingID string) (*models.Booking, error)
	ListForRenter(ctx context.Context, renterID string) ([]models.Booking, error)
	ListForOwner(ctx context.Context, ownerID string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, callerID, bookingID string) error
}

// DefaultBookingService is the production implementation. SessionCache may
// be left nil, in which case the shared session Redis client is used.
type DefaultBookingService struct {
	ListingRepo  listingRepo.ListingRepository
	BookingRepo  bookingRepo.BookingRepository
	Notification notification.NotificationService
	Scheduler    *tasks.Scheduler
	SessionCache *redis.Client
}

func NewDefaultBookingService(
	listings listingRepo.ListingRepository,
	bookings bookingRepo.BookingRepository,
	notifier notification.NotificationService,
	scheduler *tasks.Scheduler,
) (*DefaultBookingService, error) {
	if listings == nil || bookings == nil {
		return nil, fmt.Errorf("booking service initialization error: repository is nil")
	}
	return &DefaultBookingService{
		ListingRepo:  listings,
		BookingRepo:  bookings,
		Notification: notifier,
		Scheduler:    scheduler,
	}, nil
}
