// File: handlers/webhook.go
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"yardly/config"
	"yardly/services/booking"
	"yardly/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// maxWebhookBytes bounds the Stripe event body.
const maxWebhookBytes = 64 << 10

// StripeWebhookHandler processes checkout lifecycle events. Signature
// verification happens here; the booking service handles idempotency, so
// Stripe's retries are safe.
func StripeWebhookHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes))
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Failed to read webhook body", err.Error())
			return
		}

		event, err := webhook.ConstructEvent(payload,
			c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
		if err != nil {
			logger.Warn("rejected webhook with bad signature", zap.Error(err))
			utils.JSONError(c, http.StatusBadRequest, "Invalid webhook signature", "")
			return
		}

		switch event.Type {
		case "checkout.session.completed", "checkout.session.expired":
			var sess stripe.CheckoutSession
			if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
				utils.JSONError(c, http.StatusBadRequest, "Malformed checkout session event", err.Error())
				return
			}
			if event.Type == "checkout.session.completed" {
				err = svc.ConfirmCheckout(c.Request.Context(), sess.ID)
			} else {
				err = svc.ExpireCheckout(c.Request.Context(), sess.ID)
			}
			if err != nil {
				if errors.Is(err, booking.ErrBookingNotFound) {
					// Not one of ours; acknowledge so Stripe stops retrying.
					logger.Warn("webhook for unknown checkout session",
						zap.String("sessionId", sess.ID))
					c.JSON(http.StatusOK, gin.H{"status": "ignored"})
					return
				}
				logger.Error("failed to process checkout event",
					zap.String("type", string(event.Type)), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "processing failed"})
				return
			}
		default:
			logger.Debug("ignoring webhook event", zap.String("type", string(event.Type)))
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
