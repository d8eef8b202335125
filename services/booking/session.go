package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"yardly/models"

	"github.com/go-redis/redis/v8"
)

const (
	dateSessionPrefix = "dateSession:"
	dateSessionTTL    = 30 * time.Minute
)

// DateSession is the per-renter, per-listing state around the pure resolver:
// once the renter hits a conflict for the current date, the free-slot
// suggestions stay visible until the date changes, even when they then pick a
// range that would be valid. The resolver itself stays stateless; this is
// the caller-held bookkeeping the evaluation contract requires.
type DateSession struct {
	Date           string            `json:"date"`
	ConflictSticky bool              `json:"conflictSticky"`
	FreeSlots      []models.FreeSlot `json:"freeSlots,omitempty"`
}

// Observe registers the date being evaluated. A date change resets the
// sticky conflict flag and clears retained free slots.
func (s *DateSession) Observe(date string) {
	if s.Date != date {
		s.Date = date
		s.ConflictSticky = false
		s.FreeSlots = nil
	}
}

// Apply records an evaluation outcome and decorates the result. A day-level
// failure always clears retained slots: free slots must never be shown
// against an invalid day. A conflict makes the slots sticky; any later
// result for the same date carries them until the date changes.
func (s *DateSession) Apply(res models.ValidationResult) models.ValidationResult {
	switch res.Reason {
	case models.ReasonDayNotConfigured, models.ReasonDayNotAvailable:
		s.ConflictSticky = false
		s.FreeSlots = nil
	case models.ReasonTimeConflict:
		s.ConflictSticky = true
		s.FreeSlots = res.FreeSlots
	default:
		if s.ConflictSticky && res.FreeSlots == nil {
			res.FreeSlots = s.FreeSlots
		}
	}
	return res
}

func dateSessionKey(userID, listingID string) string {
	return dateSessionPrefix + userID + ":" + listingID
}

// LoadDateSession fetches a renter's date-selection session from the cache,
// returning a fresh session when none exists.
func LoadDateSession(ctx context.Context, client *redis.Client, userID, listingID string) (*DateSession, error) {
	data, err := client.Get(ctx, dateSessionKey(userID, listingID)).Result()
	if err == redis.Nil {
		return &DateSession{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load date session: %w", err)
	}
	var session DateSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal date session: %w", err)
	}
	return &session, nil
}

// SaveDateSession writes the session back with a sliding TTL.
func SaveDateSession(ctx context.Context, client *redis.Client, userID, listingID string, session *DateSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal date session: %w", err)
	}
	if err := client.Set(ctx, dateSessionKey(userID, listingID), data, dateSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save date session: %w", err)
	}
	return nil
}
