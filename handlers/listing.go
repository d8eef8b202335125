// File: handlers/listing.go
package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"yardly/middleware"
	"yardly/models"
	"yardly/services/listing"
	"yardly/utils"

	"github.com/gin-gonic/gin"
)

// maxPhotoBytes caps listing photo uploads.
const maxPhotoBytes = 10 << 20

// CreateListingHandler publishes a new yard owned by the caller.
func CreateListingHandler(svc listing.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req listing.CreateListingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid listing payload", err.Error())
			return
		}
		l, err := svc.CreateListing(c.Request.Context(), middleware.UserID(c), req)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create listing", err.Error())
			return
		}
		c.JSON(http.StatusCreated, l)
	}
}

// GetListingHandler returns one listing by ID.
func GetListingHandler(svc listing.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		l, err := svc.GetListing(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, listing.ErrListingNotFound) {
				utils.JSONError(c, http.StatusNotFound, "Listing not found", "")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch listing", err.Error())
			return
		}
		c.JSON(http.StatusOK, l)
	}
}

// UpdateListingHandler updates the caller's listing.
func UpdateListingHandler(svc listing.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req listing.UpdateListingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid listing payload", err.Error())
			return
		}
		l, err := svc.UpdateListing(c.Request.Context(), middleware.UserID(c), c.Param("id"), req)
		if err != nil {
			if errors.Is(err, listing.ErrListingNotFound) {
				utils.JSONError(c, http.StatusNotFound, "Listing not found", "")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update listing", err.Error())
			return
		}
		c.JSON(http.StatusOK, l)
	}
}

// DeleteListingHandler removes the caller's listing.
func DeleteListingHandler(svc listing.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.DeleteListing(c.Request.Context(), middleware.UserID(c), c.Param("id"))
		if err != nil {
			if errors.Is(err, listing.ErrListingNotFound) {
				utils.JSONError(c, http.StatusNotFound, "Listing not found", "")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "Failed to delete listing", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ListOwnListingsHandler returns the caller's listings.
func ListOwnListingsHandler(svc listing.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ls, err := svc.ListOwnListings(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch listings", err.Error())
			return
		}
		c.JSON(http.StatusOK, ls)
	}
}

// BrowseListingsHandler returns active listings, optionally filtered by city.
func BrowseListingsHandler(svc listing.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := int64(50)
		if raw := c.Query("limit"); raw != "" {
			if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 && v <= 200 {
				limit = v
			}
		}
		ls, err := svc.Browse(c.Request.Context(), c.Query("city"), limit)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to browse listings", err.Error())
			return
		}
		c.JSON(http.StatusOK, ls)
	}
}

// SetAvailabilityHandler configures a listing's recurring schedule.
func SetAvailabilityHandler(svc listing.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SetAvailabilityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid availability payload", err.Error())
			return
		}
		err := svc.SetAvailability(c.Request.Context(), middleware.UserID(c), c.Param("id"), req)
		if err != nil {
			if errors.Is(err, listing.ErrListingNotFound) {
				utils.JSONError(c, http.StatusNotFound, "Listing not found", "")
				return
			}
			utils.JSONError(c, http.StatusBadRequest, "Invalid availability", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// UploadPhotoHandler stores a listing photo and returns its delivery URL.
func UploadPhotoHandler(svc listing.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, _, err := c.Request.FormFile("photo")
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Missing photo file", err.Error())
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Failed to read photo", err.Error())
			return
		}
		if len(data) > maxPhotoBytes {
			utils.JSONError(c, http.StatusRequestEntityTooLarge, "Photo exceeds the 10MB limit", "")
			return
		}

		url, err := svc.UploadPhoto(c.Request.Context(), middleware.UserID(c), c.Param("id"), data)
		if err != nil {
			if errors.Is(err, listing.ErrListingNotFound) {
				utils.JSONError(c, http.StatusNotFound, "Listing not found", "")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "Failed to upload photo", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
