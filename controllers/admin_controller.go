// controllers/admin_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/services"
)

type AdminController struct {
	AdminSvc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{AdminSvc: svc}
}

// Revenue handles GET /api/admin/revenue: booking and service revenue summed
// independently, then combined.
func (ac *AdminController) Revenue(c *gin.Context) {
	report, err := ac.AdminSvc.Revenue()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// TotalRevenue handles GET /api/admin/total-revenue: completed guest services
// only. A different aggregation than Revenue, kept as its own endpoint.
func (ac *AdminController) TotalRevenue(c *gin.Context) {
	total, err := ac.AdminSvc.CompletedServiceRevenue()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_revenue": total})
}

// ListUsers handles GET /api/admin/users.
func (ac *AdminController) ListUsers(c *gin.Context) {
	users, err := ac.AdminSvc.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UserInfo handles GET /api/admin/user-info?usernameOrEmail=...
func (ac *AdminController) UserInfo(c *gin.Context) {
	user, err := ac.AdminSvc.UserInfo(c.Query("usernameOrEmail"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UserBookings handles GET /api/admin/user-bookings?usernameOrEmail=...
func (ac *AdminController) UserBookings(c *gin.Context) {
	bookings, err := ac.AdminSvc.UserBookings(c.Query("usernameOrEmail"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CheckRoomAvailability handles GET /api/admin/check-room-availability?room_number=...
// The stored flag and the live overlap check are reported separately.
func (ac *AdminController) CheckRoomAvailability(c *gin.Context) {
	availability, err := ac.AdminSvc.CheckRoomAvailability(c.Query("room_number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, availability)
}

// BookingDetails handles GET /api/admin/booking-details/:id.
func (ac *AdminController) BookingDetails(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	details, dErr := ac.AdminSvc.BookingDetails(uint(id))
	if dErr != nil {
		respondError(c, dErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": details})
}

// AddRoom handles POST /api/admin/add-room.
func (ac *AdminController) AddRoom(c *gin.Context) {
	var in services.AddRoomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	room, err := ac.AdminSvc.AddRoom(in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Room added successfully",
		"room":    room,
	})
}

// DeleteRoom handles DELETE /api/admin/rooms/:room_number.
func (ac *AdminController) DeleteRoom(c *gin.Context) {
	if err := ac.AdminSvc.DeleteRoom(c.Param("room_number")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
