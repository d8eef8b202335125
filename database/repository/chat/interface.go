// File: database/repository/chat/interface.go
package chatRepo

import (
	"context"

	"yardly/database"
	"yardly/models"
	"yardly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type ChatRepository interface {
	GetOrCreateConversation(ctx context.Context, conv *models.Conversation) (*models.Conversation, error)
	GetConversationByID(ctx context.Context, id string) (*models.Conversation, error)
	ListConversationsForUser(ctx context.Context, userID string) ([]models.Conversation, error)
	RecordMessage(ctx context.Context, msg *models.ChatMessage, preview, recipientID string) error
	MarkConversationRead(ctx context.Context, conversationID, readerID string) error
	ListMessages(ctx context.Context, conversationID string, limit int64) ([]models.ChatMessage, error)
}

type mongoChatRepo struct {
	convColl *mongo.Collection
	msgColl  *mongo.Collection
}

// NewMongoChatRepo constructs a new MongoDB ChatRepository.
func NewMongoChatRepo() ChatRepository {
	db := database.MongoClient.Database("yardly")
	repo := &mongoChatRepo{
		convColl: db.Collection("conversations"),
		msgColl:  db.Collection("messages"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("chat repo: failed to ensure indexes", zap.Error(err))
	}
	return repo
}
