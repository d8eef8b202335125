package listing

import (
	"context"
	"testing"

	"yardly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeListingRepo struct {
	listings map[string]*models.Listing

	setAvailabilityCalls int
}

func newFakeListingRepo(listings ...*models.Listing) *fakeListingRepo {
	r := &fakeListingRepo{listings: make(map[string]*models.Listing)}
	for _, l := range listings {
		r.listings[l.ID] = l
	}
	return r
}

func (r *fakeListingRepo) Create(_ context.Context, l *models.Listing) error {
	r.listings[l.ID] = l
	return nil
}

func (r *fakeListingRepo) GetByID(_ context.Context, id string) (*models.Listing, error) {
	if l, ok := r.listings[id]; ok {
		copied := *l
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeListingRepo) Update(_ context.Context, l *models.Listing) error {
	r.listings[l.ID] = l
	return nil
}

func (r *fakeListingRepo) Delete(_ context.Context, ownerID, id string) error {
	l, ok := r.listings[id]
	if !ok || l.OwnerID != ownerID {
		return mongo.ErrNoDocuments
	}
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) ListByOwner(_ context.Context, ownerID string) ([]models.Listing, error) {
	var out []models.Listing
	for _, l := range r.listings {
		if l.OwnerID == ownerID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) Browse(_ context.Context, city string, _ int64) ([]models.Listing, error) {
	var out []models.Listing
	for _, l := range r.listings {
		if l.Active && (city == "" || l.City == city) {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) SetAvailability(_ context.Context, ownerID, id string, weekdays []string, times *models.AvailableTimes) error {
	l, ok := r.listings[id]
	if !ok || l.OwnerID != ownerID {
		return mongo.ErrNoDocuments
	}
	l.AvailableWeekdays = weekdays
	l.AvailableTimes = times
	r.setAvailabilityCalls++
	return nil
}

func (r *fakeListingRepo) AddPhoto(_ context.Context, ownerID, id, publicID string) error {
	l, ok := r.listings[id]
	if !ok || l.OwnerID != ownerID {
		return mongo.ErrNoDocuments
	}
	l.Photos = append(l.Photos, publicID)
	return nil
}

func testService(t *testing.T, listings ...*models.Listing) (*DefaultListingService, *fakeListingRepo) {
	t.Helper()
	repo := newFakeListingRepo(listings...)
	svc, err := NewDefaultListingService(repo, nil)
	require.NoError(t, err)
	return svc, repo
}

func TestSetAvailabilityStoresValidSchedule(t *testing.T) {
	svc, repo := testService(t, &models.Listing{ID: "l1", OwnerID: "o1"})

	err := svc.SetAvailability(context.Background(), "o1", "l1", models.SetAvailabilityRequest{
		AvailableWeekdays: []string{"Monday", "Wednesday", "Friday"},
		AvailableTimes:    &models.AvailableTimes{StartTime: "9:00", EndTime: "17:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.setAvailabilityCalls)
	assert.Equal(t, []string{"Monday", "Wednesday", "Friday"}, repo.listings["l1"].AvailableWeekdays)
}

func TestSetAvailabilityWithoutHours(t *testing.T) {
	svc, repo := testService(t, &models.Listing{ID: "l1", OwnerID: "o1"})

	err := svc.SetAvailability(context.Background(), "o1", "l1", models.SetAvailabilityRequest{
		AvailableWeekdays: []string{"Saturday", "Sunday"},
	})
	require.NoError(t, err)
	assert.Nil(t, repo.listings["l1"].AvailableTimes)
}

func TestSetAvailabilityRejectsBadInput(t *testing.T) {
	svc, repo := testService(t, &models.Listing{ID: "l1", OwnerID: "o1"})
	ctx := context.Background()

	cases := []models.SetAvailabilityRequest{
		{},
		{AvailableWeekdays: []string{"Mon"}},
		{AvailableWeekdays: []string{"monday"}},
		{AvailableWeekdays: []string{"Monday", "Monday"}},
		{
			AvailableWeekdays: []string{"Monday"},
			AvailableTimes:    &models.AvailableTimes{StartTime: "9:00", EndTime: "9:00"},
		},
		{
			AvailableWeekdays: []string{"Monday"},
			AvailableTimes:    &models.AvailableTimes{StartTime: "17:00", EndTime: "9:00"},
		},
		{
			AvailableWeekdays: []string{"Monday"},
			AvailableTimes:    &models.AvailableTimes{StartTime: "morning", EndTime: "17:00"},
		},
	}
	for i, req := range cases {
		assert.Error(t, svc.SetAvailability(ctx, "o1", "l1", req), "case %d", i)
	}
	assert.Equal(t, 0, repo.setAvailabilityCalls)
}

func TestSetAvailabilityUnknownListing(t *testing.T) {
	svc, _ := testService(t)

	err := svc.SetAvailability(context.Background(), "o1", "missing", models.SetAvailabilityRequest{
		AvailableWeekdays: []string{"Monday"},
	})
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestUpdateListingOwnershipCheck(t *testing.T) {
	svc, _ := testService(t, &models.Listing{ID: "l1", OwnerID: "o1", Title: "Shady Yard"})

	title := "Sunny Yard"
	_, err := svc.UpdateListing(context.Background(), "intruder", "l1", UpdateListingRequest{Title: &title})
	assert.ErrorIs(t, err, ErrListingNotFound)

	l, err := svc.UpdateListing(context.Background(), "o1", "l1", UpdateListingRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Sunny Yard", l.Title)
}

func TestCreateListingDefaultsCurrency(t *testing.T) {
	svc, _ := testService(t)

	l, err := svc.CreateListing(context.Background(), "o1", CreateListingRequest{
		Title:        "Garden Corner",
		PricePerHour: 25,
		City:         "Austin",
	})
	require.NoError(t, err)
	assert.Equal(t, "usd", l.Currency)
	assert.True(t, l.Active)
	assert.NotEmpty(t, l.ID)
}
