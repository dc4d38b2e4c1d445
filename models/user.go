package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Username string `gorm:"uniqueIndex;size:150" json:"username"`
	Email    string `gorm:"uniqueIndex;size:255" json:"email"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON

	Name     string `gorm:"size:255" json:"name"`
	Phone    string `gorm:"size:50" json:"phone"`
	IDNumber string `gorm:"column:id_number;size:64" json:"id_number"`
	Address  string `gorm:"type:text" json:"address"`

	// Adjusted only by completed bookings, never negative.
	LoyaltyPoints int64 `gorm:"column:loyalty_points;default:0" json:"loyalty_points"`

	IsAdmin bool `gorm:"column:is_admin;default:false" json:"is_admin"`
}
