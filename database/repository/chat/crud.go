// File: database/repository/chat/crud.go
package chatRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"yardly/models"
)

func (r *mongoChatRepo) GetOrCreateConversation(ctx context.Context, conv *models.Conversation) (*models.Conversation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"listingId": conv.ListingID,
		"ownerId":   conv.OwnerID,
		"renterId":  conv.RenterID,
	}

	var existing models.Conversation
	err := r.convColl.FindOne(ctx, filter).Decode(&existing)
	if err == nil {
		return &existing, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to look up conversation: %w", err)
	}

	conv.ID = uuid.New().String()
	conv.CreatedAt = time.Now()
	conv.LastMessageAt = conv.CreatedAt
	conv.UnreadCounts = map[string]int{conv.OwnerID: 0, conv.RenterID: 0}
	if _, err := r.convColl.InsertOne(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conv, nil
}

func (r *mongoChatRepo) GetConversationByID(ctx context.Context, id string) (*models.Conversation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var conv models.Conversation
	err := r.convColl.FindOne(ctx, bson.M{"id": id}).Decode(&conv)
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// RecordMessage inserts the message and refreshes the conversation card in
// one pass: last-message preview, sender, timestamp, and an unread bump for
// the recipient.
func (r *mongoChatRepo) RecordMessage(ctx context.Context, msg *models.ChatMessage, preview, recipientID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if _, err := r.msgColl.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	update := bson.M{
		"$set": bson.M{
			"lastMessage":   preview,
			"lastSenderId":  msg.SenderID,
			"lastMessageAt": msg.SentAt,
		},
		"$inc": bson.M{"unreadCounts." + recipientID: 1},
	}
	res, err := r.convColl.UpdateOne(ctx, bson.M{"id": msg.ConversationID}, update)
	if err != nil {
		return fmt.Errorf("failed to update conversation card: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// MarkConversationRead zeroes the reader's unread counter and flags their
// peer's messages as read.
func (r *mongoChatRepo) MarkConversationRead(ctx context.Context, conversationID, readerID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"unreadCounts." + readerID: 0}}
	if _, err := r.convColl.UpdateOne(ctx, bson.M{"id": conversationID}, update); err != nil {
		return fmt.Errorf("failed to reset unread count: %w", err)
	}

	msgFilter := bson.M{
		"conversationId": conversationID,
		"senderId":       bson.M{"$ne": readerID},
		"read":           false,
	}
	if _, err := r.msgColl.UpdateMany(ctx, msgFilter, bson.M{"$set": bson.M{"read": true}}); err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}
	return nil
}
