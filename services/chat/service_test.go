package chat

import (
	"context"
	"strings"
	"testing"

	"yardly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeChatRepo struct {
	conversations map[string]*models.Conversation
	messages      []models.ChatMessage

	lastPreview   string
	lastRecipient string
	readCalls     []string
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{conversations: make(map[string]*models.Conversation)}
}

func (r *fakeChatRepo) GetOrCreateConversation(_ context.Context, conv *models.Conversation) (*models.Conversation, error) {
	for _, existing := range r.conversations {
		if existing.ListingID == conv.ListingID && existing.RenterID == conv.RenterID {
			return existing, nil
		}
	}
	r.conversations[conv.ID] = conv
	return conv, nil
}

func (r *fakeChatRepo) GetConversationByID(_ context.Context, id string) (*models.Conversation, error) {
	if c, ok := r.conversations[id]; ok {
		return c, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeChatRepo) ListConversationsForUser(_ context.Context, userID string) ([]models.Conversation, error) {
	var out []models.Conversation
	for _, c := range r.conversations {
		if c.OwnerID == userID || c.RenterID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) RecordMessage(_ context.Context, msg *models.ChatMessage, preview, recipientID string) error {
	r.messages = append(r.messages, *msg)
	r.lastPreview = preview
	r.lastRecipient = recipientID
	if c, ok := r.conversations[msg.ConversationID]; ok {
		c.LastMessage = preview
		c.LastSenderID = msg.SenderID
		c.LastMessageAt = msg.SentAt
		if c.UnreadCounts == nil {
			c.UnreadCounts = map[string]int{}
		}
		c.UnreadCounts[recipientID]++
	}
	return nil
}

func (r *fakeChatRepo) MarkConversationRead(_ context.Context, conversationID, readerID string) error {
	r.readCalls = append(r.readCalls, conversationID+":"+readerID)
	if c, ok := r.conversations[conversationID]; ok && c.UnreadCounts != nil {
		c.UnreadCounts[readerID] = 0
	}
	return nil
}

func (r *fakeChatRepo) ListMessages(_ context.Context, conversationID string, _ int64) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, m := range r.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeListings struct {
	listing *models.Listing
}

func (f *fakeListings) Create(context.Context, *models.Listing) error  { return nil }
func (f *fakeListings) Update(context.Context, *models.Listing) error { return nil }
func (f *fakeListings) Delete(context.Context, string, string) error  { return nil }
func (f *fakeListings) ListByOwner(context.Context, string) ([]models.Listing, error) {
	return nil, nil
}
func (f *fakeListings) Browse(context.Context, string, int64) ([]models.Listing, error) {
	return nil, nil
}
func (f *fakeListings) SetAvailability(context.Context, string, string, []string, *models.AvailableTimes) error {
	return nil
}
func (f *fakeListings) AddPhoto(context.Context, string, string, string) error { return nil }

func (f *fakeListings) GetByID(_ context.Context, id string) (*models.Listing, error) {
	if f.listing != nil && f.listing.ID == id {
		return f.listing, nil
	}
	return nil, mongo.ErrNoDocuments
}

func testChatService(t *testing.T) (*DefaultChatService, *fakeChatRepo) {
	t.Helper()
	repo := newFakeChatRepo()
	listings := &fakeListings{listing: &models.Listing{
		ID:      "l1",
		OwnerID: "owner",
		Title:   "Shady Yard",
	}}
	svc, err := NewDefaultChatService(repo, listings, nil)
	require.NoError(t, err)
	return svc, repo
}

func TestSendMessageCreatesConversationAndRoutesToOwner(t *testing.T) {
	svc, repo := testChatService(t)

	msg, err := svc.SendMessage(context.Background(), "renter", models.SendMessageRequest{
		ListingID: "l1",
		Body:      "Is the yard free on Friday?",
	})
	require.NoError(t, err)
	assert.Equal(t, "renter", msg.SenderID)
	assert.Equal(t, "owner", repo.lastRecipient)
	require.Len(t, repo.conversations, 1)
	for _, c := range repo.conversations {
		assert.Equal(t, "Shady Yard", c.ListingTitle)
		assert.Equal(t, 1, c.UnreadFor("owner"))
		assert.Equal(t, 0, c.UnreadFor("renter"))
	}
}

func TestSendMessageReusesExistingConversation(t *testing.T) {
	svc, repo := testChatService(t)
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "renter", models.SendMessageRequest{ListingID: "l1", Body: "First"})
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, "renter", models.SendMessageRequest{ListingID: "l1", Body: "Second"})
	require.NoError(t, err)

	assert.Len(t, repo.conversations, 1)
	assert.Len(t, repo.messages, 2)
	for _, c := range repo.conversations {
		assert.Equal(t, 2, c.UnreadFor("owner"))
	}
}

func TestSendMessageRejectsOwnListing(t *testing.T) {
	svc, _ := testChatService(t)

	_, err := svc.SendMessage(context.Background(), "owner", models.SendMessageRequest{
		ListingID: "l1",
		Body:      "Hello me",
	})
	assert.ErrorIs(t, err, ErrSelfChat)
}

func TestSendMessageTruncatesPreview(t *testing.T) {
	svc, repo := testChatService(t)

	long := strings.Repeat("a", 300)
	_, err := svc.SendMessage(context.Background(), "renter", models.SendMessageRequest{
		ListingID: "l1",
		Body:      long,
	})
	require.NoError(t, err)
	assert.Len(t, repo.lastPreview, previewLimit)
	// The stored message keeps the full body.
	assert.Len(t, repo.messages[0].Body, 300)
}

func TestSendReplyRoutesToPeer(t *testing.T) {
	svc, repo := testChatService(t)
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "renter", models.SendMessageRequest{ListingID: "l1", Body: "Hi"})
	require.NoError(t, err)

	var convID string
	for id := range repo.conversations {
		convID = id
	}

	_, err = svc.SendReply(ctx, "owner", convID, "Yes, it's free")
	require.NoError(t, err)
	assert.Equal(t, "renter", repo.lastRecipient)

	_, err = svc.SendReply(ctx, "stranger", convID, "Let me in")
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestMarkReadRequiresParticipant(t *testing.T) {
	svc, repo := testChatService(t)
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "renter", models.SendMessageRequest{ListingID: "l1", Body: "Hi"})
	require.NoError(t, err)

	var convID string
	for id := range repo.conversations {
		convID = id
	}

	require.NoError(t, svc.MarkRead(ctx, "owner", convID))
	assert.Equal(t, []string{convID + ":owner"}, repo.readCalls)
	assert.Equal(t, 0, repo.conversations[convID].UnreadFor("owner"))

	assert.ErrorIs(t, svc.MarkRead(ctx, "stranger", convID), ErrConversationNotFound)
	assert.ErrorIs(t, svc.MarkRead(ctx, "owner", "missing"), ErrConversationNotFound)
}

func TestListConversationsBuildsCards(t *testing.T) {
	svc, _ := testChatService(t)
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "renter", models.SendMessageRequest{ListingID: "l1", Body: "Hi"})
	require.NoError(t, err)

	cards, err := svc.ListConversations(ctx, "owner")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, 1, cards[0].Unread)
	assert.Equal(t, "renter", cards[0].PeerID)

	cards, err = svc.ListConversations(ctx, "renter")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, 0, cards[0].Unread)
	assert.Equal(t, "owner", cards[0].PeerID)
}
