// File: handlers/user.go
package handlers

import (
	"errors"
	"net/http"

	"yardly/middleware"
	"yardly/models"
	"yardly/services/user"
	"yardly/utils"

	"github.com/gin-gonic/gin"
)

// RegisterUserHandler creates an account and returns an auth token.
func RegisterUserHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UserRegistrationData
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload", err.Error())
			return
		}
		resp, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, user.ErrEmailTaken) {
				utils.JSONError(c, http.StatusConflict, "Email is already registered", "")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "Failed to register", err.Error())
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// AuthenticateHandler signs a user in with email and password.
func AuthenticateHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid login payload", err.Error())
			return
		}
		resp, err := svc.Authenticate(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, user.ErrInvalidCredentials) {
				utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "Failed to sign in", err.Error())
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetProfileHandler returns the authenticated user's profile.
func GetProfileHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.GetProfile(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				utils.JSONError(c, http.StatusNotFound, "User not found", "")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch profile", err.Error())
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// UpdateProfileHandler updates the caller's name or phone number.
func UpdateProfileHandler(svc user.UserService) gin.HandlerFunc {
	type payload struct {
		Name        *string `json:"name,omitempty"`
		PhoneNumber *string `json:"phoneNumber,omitempty"`
	}
	return func(c *gin.Context) {
		var req payload
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid profile payload", err.Error())
			return
		}
		u, err := svc.UpdateProfile(c.Request.Context(), middleware.UserID(c), req.Name, req.PhoneNumber)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update profile", err.Error())
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// UpdateFCMTokenHandler registers the caller's push token.
func UpdateFCMTokenHandler(svc user.UserService) gin.HandlerFunc {
	type payload struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	return func(c *gin.Context) {
		var req payload
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid token payload", err.Error())
			return
		}
		if err := svc.UpdateFCMToken(c.Request.Context(), middleware.UserID(c), req.FCMToken); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update push token", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// RevokeTokenHandler signs the caller out everywhere.
func RevokeTokenHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.RevokeToken(c.Request.Context(), middleware.UserID(c)); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to revoke token", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// DeleteAccountHandler removes the caller's account.
func DeleteAccountHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteAccount(c.Request.Context(), middleware.UserID(c)); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to delete account", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
