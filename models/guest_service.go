package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ServiceStatusPending    = "Pending"
	ServiceStatusInProgress = "In Progress"
	ServiceStatusCompleted  = "Completed"
	ServiceStatusCancelled  = "Cancelled"
)

type GuestService struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	BookingID uint `gorm:"index;column:booking_id" json:"booking_id"`

	ServiceName string          `gorm:"column:service_name;size:255" json:"service_name"`
	Cost        decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost"`
	Status      string          `gorm:"size:32;default:Pending" json:"status"`
}

// ValidServiceStatus reports whether s is one of the allowed status transitions.
func ValidServiceStatus(s string) bool {
	switch s {
	case ServiceStatusPending, ServiceStatusInProgress, ServiceStatusCompleted, ServiceStatusCancelled:
		return true
	}
	return false
}
