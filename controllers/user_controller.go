package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/middleware"
	"hotel-reservation-backend/services"
)

type UserController struct {
	UserSvc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{UserSvc: svc}
}

// Profile handles GET /api/users/profile for the logged-in account.
func (uc *UserController) Profile(c *gin.Context) {
	user, err := uc.UserSvc.Profile(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
