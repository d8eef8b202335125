package booking

import (
	"testing"

	"yardly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conflictResult(slots []models.FreeSlot) models.ValidationResult {
	return models.ValidationResult{
		Valid:     false,
		Reason:    models.ReasonTimeConflict,
		Message:   "The selected time overlaps an existing booking.",
		FreeSlots: slots,
	}
}

func TestDateSessionConflictSticksUntilDateChanges(t *testing.T) {
	slots := []models.FreeSlot{{StartHour: 9, EndHour: 10, Label: "9:00 AM - 10:00 AM"}}
	session := &DateSession{}

	session.Observe("2026-01-05")
	res := session.Apply(conflictResult(slots))
	require.Equal(t, slots, res.FreeSlots)
	assert.True(t, session.ConflictSticky)

	// A later valid selection on the same date keeps showing the slots.
	res = session.Apply(models.ValidationResult{Valid: true})
	assert.True(t, res.Valid)
	assert.Equal(t, slots, res.FreeSlots)

	// Changing the date resets everything.
	session.Observe("2026-01-07")
	res = session.Apply(models.ValidationResult{Valid: true})
	assert.True(t, res.Valid)
	assert.Nil(t, res.FreeSlots)
	assert.False(t, session.ConflictSticky)
}

func TestDateSessionSameDateObserveKeepsState(t *testing.T) {
	slots := []models.FreeSlot{{StartHour: 12, EndHour: 17, Label: "12:00 PM - 5:00 PM"}}
	session := &DateSession{}

	session.Observe("2026-01-05")
	session.Apply(conflictResult(slots))

	session.Observe("2026-01-05")
	res := session.Apply(models.ValidationResult{Valid: true})
	assert.Equal(t, slots, res.FreeSlots)
}

func TestDateSessionDayFailureClearsSlots(t *testing.T) {
	slots := []models.FreeSlot{{StartHour: 9, EndHour: 10}}
	session := &DateSession{}

	session.Observe("2026-01-05")
	session.Apply(conflictResult(slots))

	// A day-level failure must never carry free slots.
	res := session.Apply(models.ValidationResult{
		Valid:  false,
		Reason: models.ReasonDayNotAvailable,
	})
	assert.Nil(t, res.FreeSlots)
	assert.False(t, session.ConflictSticky)

	res = session.Apply(models.ValidationResult{Valid: true})
	assert.Nil(t, res.FreeSlots)
}

func TestDateSessionFreshConflictReplacesSlots(t *testing.T) {
	session := &DateSession{}
	session.Observe("2026-01-05")

	first := []models.FreeSlot{{StartHour: 9, EndHour: 10}}
	second := []models.FreeSlot{{StartHour: 13, EndHour: 17}}

	session.Apply(conflictResult(first))
	res := session.Apply(conflictResult(second))
	assert.Equal(t, second, res.FreeSlots)

	res = session.Apply(models.ValidationResult{Valid: true})
	assert.Equal(t, second, res.FreeSlots)
}
