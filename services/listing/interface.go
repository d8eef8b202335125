// File: services/listing/interface.go
package listing

import (
	"context"
	"fmt"

	listingRepo "yardly/database/repository/listing"
	"yardly/models"
	"yardly/services/storage"
)

// CreateListingRequest defines the payload for publishing a new yard.
type CreateListingRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	PricePerHour float64  `json:"pricePerHour" binding:"required,gt=0"`
	Currency     string   `json:"currency"`
	Amenities    []string `json:"amenities"`
	City         string   `json:"city" binding:"required"`
	Address      string   `json:"address"`
}

// UpdateListingRequest carries the mutable listing fields. Nil pointers
// leave the stored value untouched.
type UpdateListingRequest struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	PricePerHour *float64  `json:"pricePerHour,omitempty"`
	Amenities    *[]string `json:"amenities,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Active       *bool     `json:"active,omitempty"`
}

// ListingService exposes yard management and discovery.
type ListingService interface {
	CreateListing(ctx context.Context, ownerID string, req CreateListingRequest) (*models.Listing, error)
	GetListing(ctx context.Context, id string) (*models.Listing, error)
	UpdateListing(ctx context.Context, ownerID, id string, req UpdateListingRequest) (*models.Listing, error)
	DeleteListing(ctx context.Context, ownerID, id string) error
	ListOwnListings(ctx context.Context, ownerID string) ([]models.Listing, error)
	Browse(ctx context.Context, city string, limit int64) ([]models.Listing, error)
	SetAvailability(ctx context.Context, ownerID, id string, req models.SetAvailabilityRequest) error
	UploadPhoto(ctx context.Context, ownerID, id string, data []byte) (string, error)
}

// DefaultListingService is the production implementation.
type DefaultListingService struct {
	Repo    listingRepo.ListingRepository
	Storage storage.StorageService
}

func NewDefaultListingService(repo listingRepo.ListingRepository, store storage.StorageService) (*DefaultListingService, error) {
	if repo == nil {
		return nil, fmt.Errorf("listing service initialization error: repository is nil")
	}
	return &DefaultListingService{Repo: repo, Storage: store}, nil
}
