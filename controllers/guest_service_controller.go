package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotel-reservation-backend/middleware"
	"hotel-reservation-backend/services"
)

type GuestServiceController struct {
	GuestSvc *services.GuestServiceService
}

func NewGuestServiceController(svc *services.GuestServiceService) *GuestServiceController {
	return &GuestServiceController{GuestSvc: svc}
}

type addServicePayload struct {
	BookingID   uint            `json:"booking_id"`
	ServiceName string          `json:"service_name"`
	Cost        decimal.Decimal `json:"cost"`
}

func paramBookingID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return 0, false
	}
	return uint(id), true
}

// Add handles POST /api/guest-services/add.
func (gc *GuestServiceController) Add(c *gin.Context) {
	var payload addServicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	row, err := gc.GuestSvc.Add(payload.BookingID, payload.ServiceName, payload.Cost)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Guest service request added successfully",
		"id":      row.ID,
	})
}

// Total handles GET /api/guest-services/total/:booking_id.
func (gc *GuestServiceController) Total(c *gin.Context) {
	bookingID, ok := paramBookingID(c, "booking_id")
	if !ok {
		return
	}

	total, err := gc.GuestSvc.TotalForBooking(bookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking_id":    bookingID,
		"total_charges": total,
	})
}

// ListForBooking handles GET /api/guest-services/:id, where :id is a booking
// id. Admins may read any booking; everyone else only their own.
func (gc *GuestServiceController) ListForBooking(c *gin.Context) {
	bookingID, ok := paramBookingID(c, "id")
	if !ok {
		return
	}

	rows, err := gc.GuestSvc.ListForBooking(middleware.UserID(c), middleware.IsAdmin(c), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Charges handles GET /api/guest-services/charges/:booking_id.
func (gc *GuestServiceController) Charges(c *gin.Context) {
	bookingID, ok := paramBookingID(c, "booking_id")
	if !ok {
		return
	}

	charges, err := gc.GuestSvc.ChargesForBooking(middleware.UserID(c), middleware.IsAdmin(c), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, charges)
}

type serviceStatusPayload struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/guest-services/:id/status (admin only).
func (gc *GuestServiceController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	var payload serviceStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := gc.GuestSvc.UpdateStatus(uint(id), payload.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service status updated successfully"})
}
