package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Booking rows are hard-deleted on cancellation, so no soft-delete column here.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	UserID uint `gorm:"index;column:user_id" json:"user_id"`
	RoomID uint `gorm:"index;column:room_id" json:"room_id"`

	CheckIn  datatypes.Date `gorm:"column:check_in" json:"check_in"`
	CheckOut datatypes.Date `gorm:"column:check_out" json:"check_out"`

	// Computed at creation time; never recomputed when services are added later.
	TotalPrice decimal.Decimal `gorm:"column:total_price;type:decimal(10,2)" json:"total_price"`

	Status string `gorm:"size:64;default:Active" json:"status"`

	User     User           `gorm:"foreignKey:UserID" json:"-"`
	Room     Room           `gorm:"foreignKey:RoomID" json:"-"`
	Services []GuestService `gorm:"foreignKey:BookingID" json:"services,omitempty"`
}
