package models

import "time"

// Conversation is the denormalized card for a renter/owner chat about one
// listing: last-message preview plus per-participant unread counts, so the
// conversation list renders without loading messages.
type Conversation struct {
	ID            string         `bson:"id" json:"id"`
	ListingID     string         `bson:"listingId" json:"listingId"`
	ListingTitle  string         `bson:"listingTitle" json:"listingTitle"`
	OwnerID       string         `bson:"ownerId" json:"ownerId"`
	RenterID      string         `bson:"renterId" json:"renterId"`
	LastMessage   string         `bson:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	LastSenderID  string         `bson:"lastSenderId,omitempty" json:"lastSenderId,omitempty"`
	LastMessageAt time.Time      `bson:"lastMessageAt" json:"lastMessageAt"`
	UnreadCounts  map[string]int `bson:"unreadCounts" json:"unreadCounts"` // participant ID -> unread messages
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
}

// UnreadFor returns the unread message count for one participant.
func (c *Conversation) UnreadFor(userID string) int {
	if c.UnreadCounts == nil {
		return 0
	}
	return c.UnreadCounts[userID]
}

// OtherParticipant returns the conversation peer of the given participant.
func (c *Conversation) OtherParticipant(userID string) string {
	if userID == c.OwnerID {
		return c.RenterID
	}
	return c.OwnerID
}

// ChatMessage is a single message within a conversation.
type ChatMessage struct {
	ID             string    `bson:"id" json:"id"`
	ConversationID string    `bson:"conversationId" json:"conversationId"`
	SenderID       string    `bson:"senderId" json:"senderId"`
	Body           string    `bson:"body" json:"body"`
	SentAt         time.Time `bson:"sentAt" json:"sentAt"`
	Read           bool      `bson:"read" json:"read"`
}

// SendMessageRequest defines the payload for sending a chat message.
type SendMessageRequest struct {
	ListingID string `json:"listingId" binding:"required"`
	Body      string `json:"body" binding:"required"`
}
