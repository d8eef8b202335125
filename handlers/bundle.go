// File: handlers/bundle.go
package handlers

import (
	userRepoPkg "yardly/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler   gin.HandlerFunc
	AuthenticateHandler   gin.HandlerFunc
	GetProfileHandler     gin.HandlerFunc
	UpdateProfileHandler  gin.HandlerFunc
	UpdateFCMTokenHandler gin.HandlerFunc
	RevokeTokenHandler    gin.HandlerFunc
	DeleteAccountHandler  gin.HandlerFunc

	// Listing endpoints
	CreateListingHandler   gin.HandlerFunc
	GetListingHandler      gin.HandlerFunc
	UpdateListingHandler   gin.HandlerFunc
	DeleteListingHandler   gin.HandlerFunc
	ListOwnListingsHandler gin.HandlerFunc
	BrowseListingsHandler  gin.HandlerFunc
	SetAvailabilityHandler gin.HandlerFunc
	UploadPhotoHandler     gin.HandlerFunc

	// Booking endpoints
	QuoteAvailabilityHandler  gin.HandlerFunc
	InitiateCheckoutHandler   gin.HandlerFunc
	GetBookingHandler         gin.HandlerFunc
	ListRenterBookingsHandler gin.HandlerFunc
	ListOwnerBookingsHandler  gin.HandlerFunc
	CancelBookingHandler      gin.HandlerFunc

	// Chat endpoints
	SendMessageHandler       gin.HandlerFunc
	SendReplyHandler         gin.HandlerFunc
	ListConversationsHandler gin.HandlerFunc
	ListMessagesHandler      gin.HandlerFunc
	MarkReadHandler          gin.HandlerFunc

	// Payments
	StripeWebhookHandler gin.HandlerFunc
}
