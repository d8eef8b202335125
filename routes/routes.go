package routes

import (
	"net/http"
	"time"

	"yardly/handlers"
	"yardly/middleware"
	"yardly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.PATCH("/me", hb.UpdateProfileHandler)
		api.PUT("/me/fcm-token", hb.UpdateFCMTokenHandler)
		api.DELETE("/me/token", hb.RevokeTokenHandler)
		api.DELETE("/me", hb.DeleteAccountHandler)
	}
}

// RegisterListingRoutes registers yard management and discovery endpoints.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/listings")
	{
		// Discovery is public.
		api.GET("", hb.BrowseListingsHandler)
		api.GET("/:id", hb.GetListingHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("", hb.CreateListingHandler)
		protected.GET("/mine/all", hb.ListOwnListingsHandler)
		protected.PATCH("/:id", hb.UpdateListingHandler)
		protected.DELETE("/:id", hb.DeleteListingHandler)
		protected.PUT("/:id/availability", hb.SetAvailabilityHandler)
		protected.POST("/:id/photos", hb.UploadPhotoHandler)
	}
}

// RegisterBookingRoutes registers availability evaluation and checkout.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/quote", hb.QuoteAvailabilityHandler)
		api.POST("/checkout", hb.InitiateCheckoutHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.GET("/renting/all", hb.ListRenterBookingsHandler)
		api.GET("/hosting/all", hb.ListOwnerBookingsHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
	}
}

// RegisterChatRoutes registers renter/owner messaging endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/messages", hb.SendMessageHandler)
		api.GET("/conversations", hb.ListConversationsHandler)
		api.POST("/conversations/:id/messages", hb.SendReplyHandler)
		api.GET("/conversations/:id/messages", hb.ListMessagesHandler)
		api.PUT("/conversations/:id/read", hb.MarkReadHandler)
	}
}

// RegisterWebhookRoutes registers payment provider callbacks. These bypass
// auth; the webhook handler verifies the provider's signature instead.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/payments/webhook", hb.StripeWebhookHandler)
}

// RegisterHealthRoute registers a health-check endpoint serving the latest
// dependency snapshot from the background monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm Yardly",
			"deps":    utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterListingRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterHealthRoute(r)
}
