// File: database/repository/chat/queries.go
package chatRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"yardly/models"
)

// ListConversationsForUser returns a user's conversation cards, most recent
// activity first.
func (r *mongoChatRepo) ListConversationsForUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"ownerId": userID},
		{"renterId": userID},
	}}
	opts := options.Find().SetSort(bson.M{"lastMessageAt": -1})

	cursor, err := r.convColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversations: %w", err)
	}
	defer cursor.Close(ctx)

	var conversations []models.Conversation
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, fmt.Errorf("error decoding conversations: %w", err)
	}
	return conversations, nil
}

func (r *mongoChatRepo) ListMessages(ctx context.Context, conversationID string, limit int64) ([]models.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"sentAt": 1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := r.msgColl.Find(ctx, bson.M{"conversationId": conversationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.ChatMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("error decoding messages: %w", err)
	}
	return messages, nil
}
