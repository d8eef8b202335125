package user

import (
	"context"
	"strings"
	"testing"

	"yardly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) Update(_ context.Context, u *models.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	u, ok := r.byID[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.byEmail, u.Email)
	delete(r.byID, id)
	return nil
}

func (r *fakeUserRepo) SetTokenHash(_ context.Context, id, tokenHash string) error {
	u, ok := r.byID[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	u.TokenHash = tokenHash
	return nil
}

func (r *fakeUserRepo) SetFCMToken(_ context.Context, id, fcmToken string) error {
	u, ok := r.byID[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	u.FCMToken = fcmToken
	return nil
}

func testUserService(t *testing.T) (*DefaultUserService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	svc, err := NewDefaultUserService(repo)
	require.NoError(t, err)
	return svc, repo
}

func register(t *testing.T, svc *DefaultUserService) *models.AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), models.UserRegistrationData{
		Name:     "Sam Byers",
		Email:    "sam@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterIssuesUsableToken(t *testing.T) {
	svc, repo := testUserService(t)

	resp := register(t, svc)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.User.ID)
	assert.NotEmpty(t, resp.User.PasswordHash)

	stored := repo.byID[resp.User.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
	assert.NotEmpty(t, stored.TokenHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := testUserService(t)
	register(t, svc)

	_, err := svc.Register(context.Background(), models.UserRegistrationData{
		Name:     "Other",
		Email:    "SAM@example.com",
		Password: "another pass",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := testUserService(t)
	register(t, svc)
	ctx := context.Background()

	resp, err := svc.Authenticate(ctx, LoginRequest{Email: "sam@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Authenticate(ctx, LoginRequest{Email: "sam@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, LoginRequest{Email: "nobody@example.com", Password: "correct horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateNormalizesEmail(t *testing.T) {
	svc, _ := testUserService(t)
	register(t, svc)

	resp, err := svc.Authenticate(context.Background(), LoginRequest{
		Email:    "  Sam@Example.com ",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", resp.User.Email)
}

func TestRevokeTokenClearsHash(t *testing.T) {
	svc, repo := testUserService(t)
	resp := register(t, svc)

	require.NoError(t, svc.RevokeToken(context.Background(), resp.User.ID))
	assert.Empty(t, repo.byID[resp.User.ID].TokenHash)
}

func TestUpdateFCMToken(t *testing.T) {
	svc, repo := testUserService(t)
	resp := register(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.UpdateFCMToken(ctx, resp.User.ID, "device-token"))
	assert.Equal(t, "device-token", repo.byID[resp.User.ID].FCMToken)

	assert.ErrorIs(t, svc.UpdateFCMToken(ctx, "missing", "x"), ErrUserNotFound)
}

func TestUpdateProfilePartialFields(t *testing.T) {
	svc, _ := testUserService(t)
	resp := register(t, svc)

	phone := "+1 555 0100"
	u, err := svc.UpdateProfile(context.Background(), resp.User.ID, nil, &phone)
	require.NoError(t, err)
	assert.Equal(t, "Sam Byers", u.Name)
	assert.Equal(t, phone, u.PhoneNumber)
}

func TestDeleteAccount(t *testing.T) {
	svc, repo := testUserService(t)
	resp := register(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.DeleteAccount(ctx, resp.User.ID))
	assert.Empty(t, repo.byID)
	assert.ErrorIs(t, svc.DeleteAccount(ctx, resp.User.ID), ErrUserNotFound)
}

func TestPasswordsAreSaltedPerUser(t *testing.T) {
	svc, repo := testUserService(t)
	register(t, svc)

	resp2, err := svc.Register(context.Background(), models.UserRegistrationData{
		Name:     "Jo",
		Email:    "jo@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	h1 := repo.byEmail["sam@example.com"].PasswordHash
	h2 := repo.byID[resp2.User.ID].PasswordHash
	assert.False(t, strings.EqualFold(h1, h2))
}
