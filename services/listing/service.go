// File: services/listing/service.go
package listing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yardly/models"
	"yardly/services/booking"
	"yardly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrListingNotFound means the requested listing does not exist or is not
// owned by the caller.
var ErrListingNotFound = errors.New("listing not found")

const defaultCurrency = "usd"

func (s *DefaultListingService) CreateListing(ctx context.Context, ownerID string, req CreateListingRequest) (*models.Listing, error) {
	now := time.Now().UTC()
	l := &models.Listing{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		Title:        req.Title,
		Description:  req.Description,
		PricePerHour: req.PricePerHour,
		Currency:     req.Currency,
		Amenities:    req.Amenities,
		City:         req.City,
		Address:      req.Address,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if l.Currency == "" {
		l.Currency = defaultCurrency
	}
	if err := s.Repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	utils.GetLogger().Info("listing created",
		zap.String("listingId", l.ID), zap.String("ownerId", ownerID))
	return l, nil
}

func (s *DefaultListingService) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	l, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to fetch listing %s: %w", id, err)
	}
	return l, nil
}

func (s *DefaultListingService) UpdateListing(ctx context.Context, ownerID, id string, req UpdateListingRequest) (*models.Listing, error) {
	l, err := s.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.OwnerID != ownerID {
		return nil, ErrListingNotFound
	}

	if req.Title != nil {
		l.Title = *req.Title
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.PricePerHour != nil {
		if *req.PricePerHour <= 0 {
			return nil, fmt.Errorf("pricePerHour must be positive")
		}
		l.PricePerHour = *req.PricePerHour
	}
	if req.Amenities != nil {
		l.Amenities = *req.Amenities
	}
	if req.Address != nil {
		l.Address = *req.Address
	}
	if req.Active != nil {
		l.Active = *req.Active
	}
	l.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, l); err != nil {
		return nil, fmt.Errorf("failed to update listing %s: %w", id, err)
	}
	return l, nil
}

func (s *DefaultListingService) DeleteListing(ctx context.Context, ownerID, id string) error {
	if err := s.Repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrListingNotFound
		}
		return fmt.Errorf("failed to delete listing %s: %w", id, err)
	}
	return nil
}

func (s *DefaultListingService) ListOwnListings(ctx context.Context, ownerID string) ([]models.Listing, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

func (s *DefaultListingService) Browse(ctx context.Context, city string, limit int64) ([]models.Listing, error) {
	return s.Repo.Browse(ctx, city, limit)
}

// SetAvailability validates and stores a listing's recurring schedule.
// Weekdays must be full English names; hours, when present, must be whole
// "HH:00" boundaries with the end after the start.
func (s *DefaultListingService) SetAvailability(ctx context.Context, ownerID, id string, req models.SetAvailabilityRequest) error {
	if len(req.AvailableWeekdays) == 0 {
		return fmt.Errorf("at least one weekday is required")
	}
	seen := make(map[string]bool, len(req.AvailableWeekdays))
	for _, name := range req.AvailableWeekdays {
		if _, err := booking.ParseWeekday(name); err != nil {
			return fmt.Errorf("invalid weekday %q", name)
		}
		if seen[name] {
			return fmt.Errorf("duplicate weekday %q", name)
		}
		seen[name] = true
	}

	if req.AvailableTimes != nil {
		start, err := booking.ParseHour(req.AvailableTimes.StartTime)
		if err != nil {
			return fmt.Errorf("invalid start time %q: %w", req.AvailableTimes.StartTime, err)
		}
		end, err := booking.ParseHour(req.AvailableTimes.EndTime)
		if err != nil {
			return fmt.Errorf("invalid end time %q: %w", req.AvailableTimes.EndTime, err)
		}
		if end <= start {
			return fmt.Errorf("end time must be after start time")
		}
	}

	if err := s.Repo.SetAvailability(ctx, ownerID, id, req.AvailableWeekdays, req.AvailableTimes); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrListingNotFound
		}
		return fmt.Errorf("failed to set availability on listing %s: %w", id, err)
	}
	utils.GetLogger().Info("listing availability updated",
		zap.String("listingId", id), zap.Strings("weekdays", req.AvailableWeekdays))
	return nil
}

// UploadPhoto stores the image and appends its public ID to the listing.
func (s *DefaultListingService) UploadPhoto(ctx context.Context, ownerID, id string, data []byte) (string, error) {
	l, err := s.GetListing(ctx, id)
	if err != nil {
		return "", err
	}
	if l.OwnerID != ownerID {
		return "", ErrListingNotFound
	}
	if s.Storage == nil {
		return "", fmt.Errorf("photo storage is not configured")
	}

	publicID := fmt.Sprintf("listings/%s/%s", id, uuid.NewString())
	if err := s.Storage.Upload(ctx, publicID, data); err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}
	if err := s.Repo.AddPhoto(ctx, ownerID, id, publicID); err != nil {
		return "", fmt.Errorf("failed to record photo on listing %s: %w", id, err)
	}
	return s.Storage.GetDownloadURL(publicID), nil
}
