package notification

import (
	"context"
	"fmt"

	"yardly/models"
)

// NotifyBookingConfirmed pushes a confirmation to both sides of a paid
// booking. A failure for one recipient does not block the other.
func (s *DefaultNotificationService) NotifyBookingConfirmed(ctx context.Context, booking *models.Booking, listingTitle string) error {
	data := map[string]string{
		"type":      "booking_confirmed",
		"bookingId": booking.ID,
		"listingId": booking.ListingID,
		"date":      booking.Date,
	}

	renterBody := fmt.Sprintf("Your booking of %s on %s from %s to %s is confirmed.",
		listingTitle, booking.Date, booking.StartTime, booking.EndTime)
	renterErr := s.SendPush(ctx, booking.RenterID, "Booking confirmed", renterBody, data)

	ownerBody := fmt.Sprintf("%s was booked on %s from %s to %s.",
		listingTitle, booking.Date, booking.StartTime, booking.EndTime)
	ownerErr := s.SendPush(ctx, booking.OwnerID, "New booking", ownerBody, data)

	if renterErr != nil {
		return renterErr
	}
	return ownerErr
}

// NotifyNewMessage pushes a chat preview to the message recipient.
func (s *DefaultNotificationService) NotifyNewMessage(ctx context.Context, recipientID string, conv *models.Conversation, preview string) error {
	data := map[string]string{
		"type":           "chat_message",
		"conversationId": conv.ID,
		"listingId":      conv.ListingID,
	}
	title := fmt.Sprintf("New message about %s", conv.ListingTitle)
	return s.SendPush(ctx, recipientID, title, preview, data)
}
