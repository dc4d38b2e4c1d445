package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/services"
)

// respondError maps service-layer errors to HTTP statuses. Unrecognized errors
// are logged server-side and surface as a generic 500 so driver/query details
// never reach the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingField):
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
	case errors.Is(err, services.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date range"})
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status value"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	case errors.Is(err, services.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
	case errors.Is(err, services.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, services.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "service request not found"})
	case errors.Is(err, services.ErrDuplicateAccount):
		c.JSON(http.StatusConflict, gin.H{"error": "username or email already registered"})
	case errors.Is(err, services.ErrDuplicateRoom):
		c.JSON(http.StatusConflict, gin.H{"error": "room number already exists"})
	case errors.Is(err, services.ErrRoomBooked):
		c.JSON(http.StatusConflict, gin.H{"error": "room is currently booked and cannot be deleted"})
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
