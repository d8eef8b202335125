// File: handlers/chat.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"yardly/middleware"
	"yardly/models"
	"yardly/services/chat"
	"yardly/utils"

	"github.com/gin-gonic/gin"
)

// SendMessageHandler starts or continues a conversation about a listing.
func SendMessageHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid message payload", err.Error())
			return
		}
		msg, err := svc.SendMessage(c.Request.Context(), middleware.UserID(c), req)
		if err != nil {
			if errors.Is(err, chat.ErrSelfChat) {
				utils.JSONError(c, http.StatusForbidden, "You cannot message your own listing", "")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "Failed to send message", err.Error())
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}

// SendReplyHandler posts into an existing conversation.
func SendReplyHandler(svc chat.ChatService) gin.HandlerFunc {
	type payload struct {
		Body string `json:"body" binding:"required"`
	}
	return func(c *gin.Context) {
		var req payload
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid message payload", err.Error())
			return
		}
		msg, err := svc.SendReply(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Body)
		if err != nil {
			if errors.Is(err, chat.ErrConversationNotFound) {
				utils.JSONError(c, http.StatusNotFound, "Conversation not found", "")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "Failed to send message", err.Error())
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}

// ListConversationsHandler returns the caller's conversation cards.
func ListConversationsHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cards, err := svc.ListConversations(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch conversations", err.Error())
			return
		}
		c.JSON(http.StatusOK, cards)
	}
}

// ListMessagesHandler returns a conversation's messages in send order.
func ListMessagesHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := int64(100)
		if raw := c.Query("limit"); raw != "" {
			if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 && v <= 500 {
				limit = v
			}
		}
		msgs, err := svc.ListMessages(c.Request.Context(), middleware.UserID(c), c.Param("id"), limit)
		if err != nil {
			if errors.Is(err, chat.ErrConversationNotFound) {
				utils.JSONError(c, http.StatusNotFound, "Conversation not found", "")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch messages", err.Error())
			return
		}
		c.JSON(http.StatusOK, msgs)
	}
}

// MarkReadHandler zeroes the caller's unread count for a conversation.
func MarkReadHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.MarkRead(c.Request.Context(), middleware.UserID(c), c.Param("id"))
		if err != nil {
			if errors.Is(err, chat.ErrConversationNotFound) {
				utils.JSONError(c, http.StatusNotFound, "Conversation not found", "")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "Failed to mark conversation read", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
