// File: services/chat/service.go
package chat

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"yardly/models"
	"yardly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrConversationNotFound means the conversation does not exist or the
	// caller is not a participant.
	ErrConversationNotFound = errors.New("conversation not found")
	// ErrSelfChat means an owner tried to message their own listing.
	ErrSelfChat = errors.New("cannot start a conversation on your own listing")
)

// previewLimit caps the denormalized last-message preview on the card.
const previewLimit = 120

// SendMessage delivers a message about a listing. The sender is always the
// renter side unless they own the listing; owners reply through existing
// conversations.
func (s *DefaultChatService) SendMessage(ctx context.Context, senderID string, req models.SendMessageRequest) (*models.ChatMessage, error) {
	logger := utils.GetLogger()

	listing, err := s.ListingRepo.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("listing %s not found", req.ListingID)
		}
		return nil, fmt.Errorf("failed to fetch listing %s: %w", req.ListingID, err)
	}
	if listing.OwnerID == senderID {
		return nil, ErrSelfChat
	}

	now := time.Now().UTC()
	conv, err := s.Repo.GetOrCreateConversation(ctx, &models.Conversation{
		ID:            uuid.NewString(),
		ListingID:     listing.ID,
		ListingTitle:  listing.Title,
		OwnerID:       listing.OwnerID,
		RenterID:      senderID,
		LastMessageAt: now,
		UnreadCounts:  map[string]int{},
		CreatedAt:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open conversation: %w", err)
	}

	msg := &models.ChatMessage{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		SenderID:       senderID,
		Body:           req.Body,
		SentAt:         now,
	}
	preview := truncatePreview(req.Body)
	recipientID := conv.OtherParticipant(senderID)
	if err := s.Repo.RecordMessage(ctx, msg, preview, recipientID); err != nil {
		return nil, fmt.Errorf("failed to record message: %w", err)
	}

	if s.Notification != nil {
		if err := s.Notification.NotifyNewMessage(ctx, recipientID, conv, preview); err != nil {
			logger.Warn("failed to push chat notification",
				zap.String("conversationId", conv.ID), zap.Error(err))
		}
	}
	return msg, nil
}

// SendReply posts into an existing conversation from either participant.
func (s *DefaultChatService) SendReply(ctx context.Context, senderID, conversationID, body string) (*models.ChatMessage, error) {
	conv, err := s.participantConversation(ctx, senderID, conversationID)
	if err != nil {
		return nil, err
	}

	msg := &models.ChatMessage{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		SenderID:       senderID,
		Body:           body,
		SentAt:         time.Now().UTC(),
	}
	preview := truncatePreview(body)
	recipientID := conv.OtherParticipant(senderID)
	if err := s.Repo.RecordMessage(ctx, msg, preview, recipientID); err != nil {
		return nil, fmt.Errorf("failed to record message: %w", err)
	}

	if s.Notification != nil {
		if err := s.Notification.NotifyNewMessage(ctx, recipientID, conv, preview); err != nil {
			utils.GetLogger().Warn("failed to push chat notification",
				zap.String("conversationId", conv.ID), zap.Error(err))
		}
	}
	return msg, nil
}

func (s *DefaultChatService) ListConversations(ctx context.Context, userID string) ([]ConversationCard, error) {
	convs, err := s.Repo.ListConversationsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	cards := make([]ConversationCard, 0, len(convs))
	for _, c := range convs {
		cards = append(cards, ConversationCard{
			Conversation: c,
			Unread:       c.UnreadFor(userID),
			PeerID:       c.OtherParticipant(userID),
		})
	}
	return cards, nil
}

func (s *DefaultChatService) ListMessages(ctx context.Context, userID, conversationID string, limit int64) ([]models.ChatMessage, error) {
	if _, err := s.participantConversation(ctx, userID, conversationID); err != nil {
		return nil, err
	}
	return s.Repo.ListMessages(ctx, conversationID, limit)
}

func (s *DefaultChatService) MarkRead(ctx context.Context, userID, conversationID string) error {
	if _, err := s.participantConversation(ctx, userID, conversationID); err != nil {
		return err
	}
	if err := s.Repo.MarkConversationRead(ctx, conversationID, userID); err != nil {
		return fmt.Errorf("failed to mark conversation read: %w", err)
	}
	return nil
}

// participantConversation loads a conversation and checks the caller is one
// of its two parties. Non-participants get not-found, not forbidden.
func (s *DefaultChatService) participantConversation(ctx context.Context, userID, conversationID string) (*models.Conversation, error) {
	conv, err := s.Repo.GetConversationByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to fetch conversation %s: %w", conversationID, err)
	}
	if conv.OwnerID != userID && conv.RenterID != userID {
		return nil, ErrConversationNotFound
	}
	return conv, nil
}

func truncatePreview(body string) string {
	if utf8.RuneCountInString(body) <= previewLimit {
		return body
	}
	runes := []rune(body)
	return string(runes[:previewLimit])
}
