// File: database/repository/listing/interface.go
package listingRepo

import (
	"context"

	"yardly/database"
	"yardly/models"
	"yardly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	Update(ctx context.Context, listing *models.Listing) error
	Delete(ctx context.Context, ownerID, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]models.Listing, error)
	Browse(ctx context.Context, city string, limit int64) ([]models.Listing, error)
	SetAvailability(ctx context.Context, ownerID, id string, weekdays []string, times *models.AvailableTimes) error
	AddPhoto(ctx context.Context, ownerID, id, publicID string) error
}

type mongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo constructs a new MongoDB ListingRepository.
func NewMongoListingRepo() ListingRepository {
	db := database.MongoClient.Database("yardly")
	repo := &mongoListingRepo{
		coll: db.Collection("listings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("listing repo: failed to ensure indexes", zap.Error(err))
	}
	return repo
}
