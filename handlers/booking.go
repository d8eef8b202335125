// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"yardly/middleware"
	"yardly/models"
	"yardly/services/booking"
	"yardly/utils"

	"github.com/gin-gonic/gin"
)

// QuoteAvailabilityHandler evaluates the renter's current date and time
// selection. Invalid selections come back 200 with valid=false so the
// client can render the reason and any free-slot suggestions.
func QuoteAvailabilityHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q booking.AvailabilityQuery
		if err := c.ShouldBindJSON(&q); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid availability query", err.Error())
			return
		}
		res, err := svc.QuoteAvailability(c.Request.Context(), middleware.UserID(c), q)
		if err != nil {
			if errors.Is(err, booking.ErrListingNotFound) {
				utils.JSONError(c, http.StatusNotFound, "Listing not found", "")
				return
			}
			utils.JSONError(c, http.StatusBadRequest, "Failed to evaluate availability", err.Error())
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// InitiateCheckoutHandler creates a pending booking and returns the hosted
// payment URL. A failed availability check comes back 409 with the full
// validation result.
func InitiateCheckoutHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid checkout payload", err.Error())
			return
		}
		resp, err := svc.InitiateCheckout(c.Request.Context(), middleware.UserID(c), req)
		if err != nil {
			if ve, ok := booking.AsValidationError(err); ok {
				c.JSON(http.StatusConflict, ve.Result)
				return
			}
			switch {
			case errors.Is(err, booking.ErrListingNotFound):
				utils.JSONError(c, http.StatusNotFound, "Listing not found", "")
			case errors.Is(err, booking.ErrOwnBooking):
				utils.JSONError(c, http.StatusForbidden, "You cannot book your own listing", "")
			default:
				utils.JSONError(c, http.StatusInternalServerError, "Failed to start checkout", err.Error())
			}
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// GetBookingHandler returns one booking visible to the caller.
func GetBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := svc.GetBooking(c.Request.Context(), middleware.UserID(c), c.Param("id"))
		if err != nil {
			switch {
			case errors.Is(err, booking.ErrBookingNotFound), errors.Is(err, booking.ErrNotBookingParty):
				utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			default:
				utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking", err.Error())
			}
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// ListRenterBookingsHandler returns the caller's bookings as a renter.
func ListRenterBookingsHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bs, err := svc.ListForRenter(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
			return
		}
		c.JSON(http.StatusOK, bs)
	}
}

// ListOwnerBookingsHandler returns bookings on the caller's listings.
func ListOwnerBookingsHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bs, err := svc.ListForOwner(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
			return
		}
		c.JSON(http.StatusOK, bs)
	}
}

// CancelBookingHandler cancels a booking for either party.
func CancelBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.CancelBooking(c.Request.Context(), middleware.UserID(c), c.Param("id"))
		if err != nil {
			switch {
			case errors.Is(err, booking.ErrBookingNotFound), errors.Is(err, booking.ErrNotBookingParty):
				utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			default:
				utils.JSONError(c, http.StatusBadRequest, "Failed to cancel booking", err.Error())
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
