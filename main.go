// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yardly/config"
	"yardly/cron"
	"yardly/database"
	bookingRepoPkg "yardly/database/repository/booking"
	chatRepoPkg "yardly/database/repository/chat"
	listingRepoPkg "yardly/database/repository/listing"
	userRepoPkg "yardly/database/repository/user"
	"yardly/handlers"
	"yardly/middleware"
	"yardly/routes"
	"yardly/services/booking"
	"yardly/services/chat"
	"yardly/services/listing"
	"yardly/services/notification"
	"yardly/services/tasks"
	"yardly/services/user"
	"yardly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: photo storage disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	listingRepo := listingRepoPkg.NewMongoListingRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()

	// services.
	notificationService, err := notification.NewDefaultNotificationService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	userService, err := user.NewDefaultUserService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize user service: %v", err)
	}
	listingService, err := listing.NewDefaultListingService(listingRepo, storageService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize listing service: %v", err)
	}
	bookingService, err := booking.NewDefaultBookingService(
		listingRepo, bookingRepo, notificationService, tasks.NewScheduler())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize booking service: %v", err)
	}
	chatService, err := chat.NewDefaultChatService(chatRepo, listingRepo, notificationService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize chat service: %v", err)
	}

	// Reminder worker consumes the scheduled tasks queue.
	cron.InitReminderWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:   handlers.RegisterUserHandler(userService),
		AuthenticateHandler:   handlers.AuthenticateHandler(userService),
		GetProfileHandler:     handlers.GetProfileHandler(userService),
		UpdateProfileHandler:  handlers.UpdateProfileHandler(userService),
		UpdateFCMTokenHandler: handlers.UpdateFCMTokenHandler(userService),
		RevokeTokenHandler:    handlers.RevokeTokenHandler(userService),
		DeleteAccountHandler:  handlers.DeleteAccountHandler(userService),

		// Listing endpoints.
		CreateListingHandler:   handlers.CreateListingHandler(listingService),
		GetListingHandler:      handlers.GetListingHandler(listingService),
		UpdateListingHandler:   handlers.UpdateListingHandler(listingService),
		DeleteListingHandler:   handlers.DeleteListingHandler(listingService),
		ListOwnListingsHandler: handlers.ListOwnListingsHandler(listingService),
		BrowseListingsHandler:  handlers.BrowseListingsHandler(listingService),
		SetAvailabilityHandler: handlers.SetAvailabilityHandler(listingService),
		UploadPhotoHandler:     handlers.UploadPhotoHandler(listingService),

		// Booking endpoints.
		QuoteAvailabilityHandler:  handlers.QuoteAvailabilityHandler(bookingService),
		InitiateCheckoutHandler:   handlers.InitiateCheckoutHandler(bookingService),
		GetBookingHandler:         handlers.GetBookingHandler(bookingService),
		ListRenterBookingsHandler: handlers.ListRenterBookingsHandler(bookingService),
		ListOwnerBookingsHandler:  handlers.ListOwnerBookingsHandler(bookingService),
		CancelBookingHandler:      handlers.CancelBookingHandler(bookingService),

		// Chat endpoints.
		SendMessageHandler:       handlers.SendMessageHandler(chatService),
		SendReplyHandler:         handlers.SendReplyHandler(chatService),
		ListConversationsHandler: handlers.ListConversationsHandler(chatService),
		ListMessagesHandler:      handlers.ListMessagesHandler(chatService),
		MarkReadHandler:          handlers.MarkReadHandler(chatService),

		// Payments.
		StripeWebhookHandler: handlers.StripeWebhookHandler(bookingService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
