// File: services/booking/service.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yardly/models"
	"yardly/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// QuoteAvailability runs the full evaluation for a renter's current
// selection. The per-renter date session is loaded around the pure
// evaluation so that after a conflict, the date's free slots keep riding on
// every result until the renter moves to another date.
func (s *DefaultBookingService) QuoteAvailability(ctx context.Context, renterID string, q AvailabilityQuery) (models.ValidationResult, error) {
	logger := utils.GetLogger()

	date, err := time.Parse(DateLayout, q.Date)
	if err != nil {
		return models.ValidationResult{}, fmt.Errorf("invalid date %q: %w", q.Date, err)
	}

	input := models.BookingRequestInput{ListingID: q.ListingID, Date: date}
	if q.StartTime != "" {
		h, err := ParseHour(q.StartTime)
		if err != nil {
			return models.ValidationResult{}, fmt.Errorf("invalid start time %q: %w", q.StartTime, err)
		}
		input.StartHour = &h
	}
	if q.EndTime != "" {
		h, err := ParseHour(q.EndTime)
		if err != nil {
			return models.ValidationResult{}, fmt.Errorf("invalid end time %q: %w", q.EndTime, err)
		}
		input.EndHour = &h
	}

	window, booked, err := s.listingState(ctx, q.ListingID)
	if err != nil {
		return models.ValidationResult{}, err
	}

	cache := s.sessionCache()
	session, err := LoadDateSession(ctx, cache, renterID, q.ListingID)
	if err != nil {
		logger.Warn("falling back to a fresh date session", zap.Error(err))
		session = &DateSession{}
	}
	session.Observe(q.Date)

	res := EvaluateBookingRequest(input, window, booked)
	res = session.Apply(res)

	if err := SaveDateSession(ctx, cache, renterID, q.ListingID, session); err != nil {
		logger.Warn("failed to persist date session", zap.Error(err))
	}
	return res, nil
}

func (s *DefaultBookingService) sessionCache() *redis.Client {
	if s.SessionCache != nil {
		return s.SessionCache
	}
	return utils.GetSessionCacheClient()
}

// listingState fetches the listing's availability window and its confirmed
// occupied intervals, the two inputs every evaluation needs.
func (s *DefaultBookingService) listingState(ctx context.Context, listingID string) (*models.AvailabilityWindow, []models.BookedInterval, error) {
	logger := utils.GetLogger()

	listing, err := s.ListingRepo.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, ErrListingNotFound
		}
		return nil, nil, fmt.Errorf("failed to fetch listing %s: %w", listingID, err)
	}

	confirmed, err := s.BookingRepo.ListByListing(ctx, listingID, models.BookingStatusConfirmed)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch bookings for listing %s: %w", listingID, err)
	}

	window := WindowFromListing(listing, logger)
	booked := OccupiedIntervals(confirmed, logger)
	return window, booked, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, callerID, bookingID string) (*models.Booking, error) {
	b, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if b.RenterID != callerID && b.OwnerID != callerID {
		return nil, ErrNotBookingParty
	}
	return b, nil
}

func (s *DefaultBookingService) ListForRenter(ctx context.Context, renterID string) ([]models.Booking, error) {
	return s.BookingRepo.ListByRenter(ctx, renterID)
}

func (s *DefaultBookingService) ListForOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	return s.BookingRepo.ListByOwner(ctx, ownerID)
}

// CancelBooking lets either party cancel a confirmed or still-pending
// booking. Cancelling frees the hours for other renters immediately, since
// only confirmed bookings occupy time.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, callerID, bookingID string) error {
	b, err := s.GetBooking(ctx, callerID, bookingID)
	if err != nil {
		return err
	}
	switch b.Status {
	case models.BookingStatusConfirmed, models.BookingStatusPendingPayment:
	default:
		return fmt.Errorf("booking %s is %s and cannot be cancelled", bookingID, b.Status)
	}
	if err := s.BookingRepo.UpdateStatus(ctx, bookingID, b.Status, models.BookingStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", bookingID, err)
	}
	utils.GetLogger().Info("booking cancelled",
		zap.String("bookingId", bookingID), zap.String("by", callerID))
	return nil
}
