// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"yardly/database"
	"yardly/models"
	"yardly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByCheckoutSessionID(ctx context.Context, sessionID string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) error
	SetCheckoutSession(ctx context.Context, id, sessionID string) error
	ListByListing(ctx context.Context, listingID, status string) ([]models.Booking, error)
	ListByRenter(ctx context.Context, renterID string) ([]models.Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("yardly")
	repo := &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("booking repo: failed to ensure indexes", zap.Error(err))
	}
	return repo
}
