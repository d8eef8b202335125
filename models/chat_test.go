package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationUnreadFor(t *testing.T) {
	c := &Conversation{
		OwnerID:      "owner",
		RenterID:     "renter",
		UnreadCounts: map[string]int{"owner": 3},
	}
	assert.Equal(t, 3, c.UnreadFor("owner"))
	assert.Equal(t, 0, c.UnreadFor("renter"))

	c.UnreadCounts = nil
	assert.Equal(t, 0, c.UnreadFor("owner"))
}

func TestConversationOtherParticipant(t *testing.T) {
	c := &Conversation{OwnerID: "owner", RenterID: "renter"}
	assert.Equal(t, "renter", c.OtherParticipant("owner"))
	assert.Equal(t, "owner", c.OtherParticipant("renter"))
}
