package notification

import (
	"context"
	"fmt"

	userRepo "yardly/database/repository/user"
	"yardly/models"
	"yardly/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendPush(ctx context.Context, userID, title, body string, data map[string]string) error
	NotifyBookingConfirmed(ctx context.Context, booking *models.Booking, listingTitle string) error
	NotifyNewMessage(ctx context.Context, recipientID string, conv *models.Conversation, preview string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

func NewDefaultNotificationService(users userRepo.UserRepository) (*DefaultNotificationService, error) {
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository is nil")
	}
	return &DefaultNotificationService{Users: users}, nil
}

// SendPush looks up a user's FCM token and sends a push. Users without a
// registered token are skipped quietly; the app may simply not be installed.
func (s *DefaultNotificationService) SendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	logger := utils.GetLogger()

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendPush: could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		logger.Debug("SendPush: user has no FCM token", zap.String("userId", userID))
		return nil
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendPush: failed to send FCM message: %w", err)
	}
	logger.Debug("SendPush: message sent", zap.String("response", response))
	return nil
}
