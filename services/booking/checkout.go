// File: services/booking/checkout.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"yardly/config"
	"yardly/models"
	"yardly/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// checkoutWindow is how long a renter gets to complete payment before the
// hosted session lapses and the pending booking expires.
const checkoutWindow = 30 * time.Minute

// reminderLead is how far before the booked start hour the reminder fires.
const reminderLead = time.Hour

// InitiateCheckout re-runs the full availability evaluation, creates the
// booking in pending_payment and opens a Stripe Checkout session for it.
// The pending booking does not occupy time; only payment confirms it.
func (s *DefaultBookingService) InitiateCheckout(ctx context.Context, renterID string, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	logger := utils.GetLogger()

	date, err := time.Parse(DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}
	startHour, err := ParseHour(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q: %w", req.StartTime, err)
	}
	endHour, err := ParseHour(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %q: %w", req.EndTime, err)
	}

	listing, err := s.ListingRepo.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to fetch listing %s: %w", req.ListingID, err)
	}
	if listing.OwnerID == renterID {
		return nil, ErrOwnBooking
	}

	window, booked, err := s.listingState(ctx, req.ListingID)
	if err != nil {
		return nil, err
	}
	input := models.BookingRequestInput{
		ListingID: req.ListingID,
		Date:      date,
		StartHour: &startHour,
		EndHour:   &endHour,
	}
	if res := EvaluateBookingRequest(input, window, booked); !res.Valid {
		return nil, &ValidationError{Result: res}
	}

	hours := endHour - startHour
	total := listing.PricePerHour * float64(hours)
	now := time.Now().UTC()
	booking := &models.Booking{
		ID:         uuid.NewString(),
		ListingID:  listing.ID,
		OwnerID:    listing.OwnerID,
		RenterID:   renterID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		TotalPrice: total,
		Currency:   listing.Currency,
		Status:     models.BookingStatusPendingPayment,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(listing.Currency),
					UnitAmount: stripe.Int64(int64(math.Round(total * 100))),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(listing.Title),
						Description: stripe.String(fmt.Sprintf("%s, %s",
							req.Date, FormatHourRange(startHour, endHour))),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(config.AppConfig.CheckoutSuccessURL),
		CancelURL:  stripe.String(config.AppConfig.CheckoutCancelURL),
		ExpiresAt:  stripe.Int64(now.Add(checkoutWindow).Unix()),
	}
	params.AddMetadata("bookingId", booking.ID)

	sess, err := checkoutsession.New(params)
	if err != nil {
		if cancelErr := s.BookingRepo.UpdateStatus(ctx, booking.ID,
			models.BookingStatusPendingPayment, models.BookingStatusCancelled); cancelErr != nil {
			logger.Error("failed to cancel booking after checkout error",
				zap.String("bookingId", booking.ID), zap.Error(cancelErr))
		}
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	if err := s.BookingRepo.SetCheckoutSession(ctx, booking.ID, sess.ID); err != nil {
		return nil, fmt.Errorf("failed to attach checkout session: %w", err)
	}

	logger.Info("checkout initiated",
		zap.String("bookingId", booking.ID),
		zap.String("listingId", listing.ID),
		zap.String("renterId", renterID))
	return &models.CheckoutResponse{BookingID: booking.ID, CheckoutURL: sess.URL}, nil
}

// ConfirmCheckout handles a completed checkout session. Webhook deliveries
// retry, so a booking that is already confirmed is a no-op. The conflict
// check runs once more here: if another renter confirmed the same hours while
// this payment was in flight, the booking is cancelled instead.
func (s *DefaultBookingService) ConfirmCheckout(ctx context.Context, checkoutSessionID string) error {
	logger := utils.GetLogger()

	b, err := s.BookingRepo.GetByCheckoutSessionID(ctx, checkoutSessionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to look up checkout session %s: %w", checkoutSessionID, err)
	}
	if b.Status == models.BookingStatusConfirmed {
		return nil
	}
	if b.Status != models.BookingStatusPendingPayment {
		logger.Warn("checkout completed for a booking no longer pending",
			zap.String("bookingId", b.ID), zap.String("status", b.Status))
		return nil
	}

	date, err := time.Parse(DateLayout, b.Date)
	if err != nil {
		return fmt.Errorf("booking %s has invalid date %q: %w", b.ID, b.Date, err)
	}
	startHour, _ := ParseHour(b.StartTime)
	endHour, _ := ParseHour(b.EndTime)

	_, booked, err := s.listingState(ctx, b.ListingID)
	if err != nil {
		return err
	}
	if conflict := FindConflict(date, startHour, endHour, b.ListingID, booked); conflict.HasConflict {
		logger.Warn("paid booking lost its slot, cancelling",
			zap.String("bookingId", b.ID),
			zap.String("conflictingBookingId", conflict.Interval.BookingID))
		return s.BookingRepo.UpdateStatus(ctx, b.ID,
			models.BookingStatusPendingPayment, models.BookingStatusCancelled)
	}

	if err := s.BookingRepo.UpdateStatus(ctx, b.ID,
		models.BookingStatusPendingPayment, models.BookingStatusConfirmed); err != nil {
		return fmt.Errorf("failed to confirm booking %s: %w", b.ID, err)
	}
	logger.Info("booking confirmed", zap.String("bookingId", b.ID))

	listing, err := s.ListingRepo.GetByID(ctx, b.ListingID)
	if err != nil {
		logger.Warn("confirmed booking but could not load listing for notifications",
			zap.String("bookingId", b.ID), zap.Error(err))
		return nil
	}
	if s.Notification != nil {
		if err := s.Notification.NotifyBookingConfirmed(ctx, b, listing.Title); err != nil {
			logger.Warn("failed to send confirmation push",
				zap.String("bookingId", b.ID), zap.Error(err))
		}
	}
	s.scheduleReminder(b, listing.Title, date, startHour, endHour)
	return nil
}

// ExpireCheckout marks a still-pending booking expired after its hosted
// session lapses without payment. Already-resolved bookings are left alone.
func (s *DefaultBookingService) ExpireCheckout(ctx context.Context, checkoutSessionID string) error {
	b, err := s.BookingRepo.GetByCheckoutSessionID(ctx, checkoutSessionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to look up checkout session %s: %w", checkoutSessionID, err)
	}
	if b.Status != models.BookingStatusPendingPayment {
		return nil
	}
	if err := s.BookingRepo.UpdateStatus(ctx, b.ID,
		models.BookingStatusPendingPayment, models.BookingStatusExpired); err != nil {
		return fmt.Errorf("failed to expire booking %s: %w", b.ID, err)
	}
	utils.GetLogger().Info("booking expired", zap.String("bookingId", b.ID))
	return nil
}

// scheduleReminder enqueues the renter's one-hour-out reminder. Bookings
// confirmed inside the lead window just skip the reminder.
func (s *DefaultBookingService) scheduleReminder(b *models.Booking, listingTitle string, date time.Time, startHour, endHour int) {
	if s.Scheduler == nil {
		return
	}
	start := time.Date(date.Year(), date.Month(), date.Day(), startHour, 0, 0, 0, time.Local)
	fireAt := start.Add(-reminderLead)
	payload := models.ReminderPayload{
		BookingID: b.ID,
		Target:    "renter",
		UserID:    b.RenterID,
		Title:     "Upcoming booking",
		Body: fmt.Sprintf("Your booking at %s starts at %s.",
			listingTitle, FormatHour(startHour)),
		FireDate: fireAt.Format(time.RFC3339),
	}
	if err := s.Scheduler.ScheduleReminder(payload, fireAt); err != nil {
		utils.GetLogger().Warn("failed to schedule booking reminder",
			zap.String("bookingId", b.ID), zap.Error(err))
	}
}
