// File: services/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"yardly/models"
	"yardly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken means the registration email already has an account.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound means the requested account does not exist.
	ErrUserNotFound = errors.New("user not found")
)

const tokenTTL = 72 * time.Hour

// Register creates an account and signs the user in. The issued token's hash
// is stored so the session can be revoked server-side.
func (s *DefaultUserService) Register(ctx context.Context, data models.UserRegistrationData) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.NewString(),
		Name:         data.Name,
		Email:        email,
		PasswordHash: string(hash),
		PhoneNumber:  data.PhoneNumber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueToken(ctx, u)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("user registered", zap.String("userId", u.ID))
	return &models.AuthResponse{User: *u, Token: token}, nil
}

// Authenticate verifies the credentials and issues a fresh token, replacing
// any previously active session.
func (s *DefaultUserService) Authenticate(ctx context.Context, req LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, u)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: *u, Token: token}, nil
}

func (s *DefaultUserService) issueToken(ctx context.Context, u *models.User) (string, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, u.ID, tokenHash); err != nil {
		return "", fmt.Errorf("failed to store token hash: %w", err)
	}
	u.TokenHash = tokenHash
	return token, nil
}

func (s *DefaultUserService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	return u, nil
}

func (s *DefaultUserService) UpdateProfile(ctx context.Context, id string, name, phoneNumber *string) (*models.User, error) {
	u, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		u.Name = *name
	}
	if phoneNumber != nil {
		u.PhoneNumber = *phoneNumber
	}
	u.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return u, nil
}

// UpdateFCMToken records the device token pushes are delivered to.
func (s *DefaultUserService) UpdateFCMToken(ctx context.Context, id, fcmToken string) error {
	if err := s.Repo.SetFCMToken(ctx, id, fcmToken); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update FCM token for %s: %w", id, err)
	}
	return nil
}

// RevokeToken clears the stored token hash, invalidating the active session
// even though the JWT itself has not expired.
func (s *DefaultUserService) RevokeToken(ctx context.Context, id string) error {
	if err := s.Repo.SetTokenHash(ctx, id, ""); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to revoke token for %s: %w", id, err)
	}
	return nil
}

func (s *DefaultUserService) DeleteAccount(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	utils.GetLogger().Info("user account deleted", zap.String("userId", id))
	return nil
}
