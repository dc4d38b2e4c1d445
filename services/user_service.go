package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hotel-reservation-backend/models"
)

// UserService exposes the logged-in account's own profile.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Profile returns the caller's profile fields; the credential hash never
// leaves the model thanks to its JSON tag.
func (s *UserService) Profile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	return &user, nil
}
