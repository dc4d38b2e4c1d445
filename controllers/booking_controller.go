// controllers/booking_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/middleware"
	"hotel-reservation-backend/services"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// GetRooms handles GET /api/bookings/rooms.
func (bc *BookingController) GetRooms(c *gin.Context) {
	rooms, err := bc.BookingSvc.AvailableRooms()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// BookRoom handles POST /api/bookings/book-room.
func (bc *BookingController) BookRoom(c *gin.Context) {
	var req services.BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	result, err := bc.BookingSvc.BookRoom(middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Room booked successfully",
		"bookingId":    result.BookingID,
		"total_price":  result.TotalPrice,
		"pointsEarned": result.PointsEarned,
	})
}

// MyBookings handles GET /api/bookings/my-bookings.
func (bc *BookingController) MyBookings(c *gin.Context) {
	list, err := bc.BookingSvc.BookingsForUser(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CancelBooking handles DELETE /api/bookings/cancel/:id (owner only).
func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	if err := bc.BookingSvc.Cancel(middleware.UserID(c), uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled and room is now available"})
}
