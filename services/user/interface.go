// File: services/user/interface.go
package user

import (
	"context"
	"fmt"

	userRepo "yardly/database/repository/user"
	"yardly/models"
)

// LoginRequest defines the payload for email/password authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserService exposes account lifecycle and auth.
type UserService interface {
	Register(ctx context.Context, data models.UserRegistrationData) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, req LoginRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, name, phoneNumber *string) (*models.User, error)
	UpdateFCMToken(ctx context.Context, id, fcmToken string) error
	RevokeToken(ctx context.Context, id string) error
	DeleteAccount(ctx context.Context, id string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func NewDefaultUserService(repo userRepo.UserRepository) (*DefaultUserService, error) {
	if repo == nil {
		return nil, fmt.Errorf("user service initialization error: repository is nil")
	}
	return &DefaultUserService{Repo: repo}, nil
}
