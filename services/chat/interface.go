// File: services/chat/interface.go
package chat

import (
	"context"
	"fmt"

	chatRepo "yardly/database/repository/chat"
	listingRepo "yardly/database/repository/listing"
	"yardly/models"
	"yardly/services/notification"
)

// ConversationCard is a conversation as seen by one participant: the shared
// card plus that participant's own unread count and peer.
type ConversationCard struct {
	models.Conversation
	Unread int    `json:"unread"`
	PeerID string `json:"peerId"`
}

// ChatService exposes renter/owner messaging around a listing.
type ChatService interface {
	// SendMessage delivers a message from the sender to the listing's other
	// party, creating the conversation on first contact.
	SendMessage(ctx context.Context, senderID string, req models.SendMessageRequest) (*models.ChatMessage, error)

	// SendReply posts into an existing conversation from either participant.
	SendReply(ctx context.Context, senderID, conversationID, body string) (*models.ChatMessage, error)

	// ListConversations returns the sender's conversation cards, most
	// recently active first.
	ListConversations(ctx context.Context, userID string) ([]ConversationCard, error)

	// ListMessages returns a conversation's messages in send order.
	ListMessages(ctx context.Context, userID, conversationID string, limit int64) ([]models.ChatMessage, error)

	// MarkRead zeroes the reader's unread count and flags the peer's
	// messages as read.
	MarkRead(ctx context.Context, userID, conversationID string) error
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Repo         chatRepo.ChatRepository
	ListingRepo  listingRepo.ListingRepository
	Notification notification.NotificationService
}

func NewDefaultChatService(repo chatRepo.ChatRepository, listings listingRepo.ListingRepository, notifier notification.NotificationService) (*DefaultChatService, error) {
	if repo == nil || listings == nil {
		return nil, fmt.Errorf("chat service initialization error: repository is nil")
	}
	return &DefaultChatService{Repo: repo, ListingRepo: listings, Notification: notifier}, nil
}
