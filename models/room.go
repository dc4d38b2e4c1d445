package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	RoomNumber string `gorm:"column:room_number;uniqueIndex;size:50" json:"room_number"`
	Type       string `gorm:"size:100" json:"type"`

	// Nightly price before the seasonal adjustment.
	BasePrice decimal.Decimal `gorm:"column:base_price;type:decimal(10,2)" json:"base_price"`

	// Manually managed flag; independent of booking overlap.
	IsAvailable bool `gorm:"column:is_available;default:true" json:"is_available"`
}
