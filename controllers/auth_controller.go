package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/services"
)

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

type registerPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	IDNumber string `json:"id_number"`
	Address  string `json:"address"`
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register.
func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	user, err := ac.AuthSvc.Register(services.RegisterInput{
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
		Name:     payload.Name,
		Phone:    payload.Phone,
		IDNumber: payload.IDNumber,
		Address:  payload.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"id":      user.ID,
	})
}

// Login handles POST /api/auth/login. Bad usernames and bad passwords get the
// same response so accounts cannot be enumerated.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	token, _, err := ac.AuthSvc.Login(payload.Username, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}
