package models

import "time"

// Listing represents a rentable backyard.
type Listing struct {
	ID                string          `bson:"id" json:"id"`
	OwnerID           string          `bson:"ownerId" json:"ownerId"`
	Title             string          `bson:"title" json:"title"`
	Description       string          `bson:"description" json:"description"`
	PricePerHour      float64         `bson:"pricePerHour" json:"pricePerHour"`
	Currency          string          `bson:"currency" json:"currency"`
	Photos            []string        `bson:"photos,omitempty" json:"photos,omitempty"` // storage public IDs
	Amenities         []string        `bson:"amenities,omitempty" json:"amenities,omitempty"`
	City              string          `bson:"city" json:"city"`
	Address           string          `bson:"address,omitempty" json:"address,omitempty"`
	AvailableWeekdays []string        `bson:"availableWeekdays,omitempty" json:"availableWeekdays,omitempty"` // full English names, "Sunday".."Saturday"
	AvailableTimes    *AvailableTimes `bson:"availableTimes,omitempty" json:"availableTimes,omitempty"`
	Active            bool            `bson:"active" json:"active"`
	CreatedAt         time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// SetAvailabilityRequest defines the payload for configuring a listing's
// recurring availability.
type SetAvailabilityRequest struct {
	AvailableWeekdays []string        `json:"availableWeekdays" binding:"required"`
	AvailableTimes    *AvailableTimes `json:"availableTimes,omitempty"`
}
