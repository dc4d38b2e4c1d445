// services/guest_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-reservation-backend/models"
)

// GuestServiceService manages per-booking service requests (room service,
// laundry and the like) added outside the booking transaction.
type GuestServiceService struct {
	DB *gorm.DB
}

func NewGuestServiceService(db *gorm.DB) *GuestServiceService {
	return &GuestServiceService{DB: db}
}

// Add records a service request against an existing booking. The owning
// booking's total_price is deliberately left alone.
func (s *GuestServiceService) Add(bookingID uint, serviceName string, cost decimal.Decimal) (*models.GuestService, error) {
	serviceName = strings.TrimSpace(serviceName)
	if bookingID == 0 || serviceName == "" {
		return nil, ErrMissingField
	}
	if cost.Sign() < 0 {
		return nil, ErrMissingField
	}

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}

	row := models.GuestService{
		BookingID:   bookingID,
		ServiceName: serviceName,
		Cost:        cost,
		Status:      models.ServiceStatusPending,
	}
	if err := s.DB.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to add service request: %w", err)
	}
	return &row, nil
}

// ownsBooking checks that the booking exists and belongs to callerID. Admins
// skip the ownership restriction.
func (s *GuestServiceService) ownsBooking(callerID uint, isAdmin bool, bookingID uint) error {
	q := s.DB.Model(&models.Booking{}).Where("id = ?", bookingID)
	if !isAdmin {
		q = q.Where("user_id = ?", callerID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to verify booking ownership: %w", err)
	}
	if count == 0 {
		return ErrForbidden
	}
	return nil
}

// ListForBooking returns all service requests on a booking. Regular users may
// only read their own bookings.
func (s *GuestServiceService) ListForBooking(callerID uint, isAdmin bool, bookingID uint) ([]models.GuestService, error) {
	if err := s.ownsBooking(callerID, isAdmin, bookingID); err != nil {
		return nil, err
	}

	var rows []models.GuestService
	if err := s.DB.Where("booking_id = ?", bookingID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch service requests: %w", err)
	}
	return rows, nil
}

// TotalForBooking sums service costs for one booking, zero when it has none.
func (s *GuestServiceService) TotalForBooking(bookingID uint) (decimal.Decimal, error) {
	var row struct {
		Total decimal.NullDecimal
	}
	err := s.DB.Model(&models.GuestService{}).
		Where("booking_id = ?", bookingID).
		Select("SUM(cost) AS total").
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to calculate total charges: %w", err)
	}
	if !row.Total.Valid {
		return decimal.Zero, nil
	}
	return row.Total.Decimal, nil
}

// BookingCharges is the combined room + services bill for one booking.
type BookingCharges struct {
	BookingID    uint            `json:"booking_id"`
	UserID       uint            `json:"user_id"`
	RoomTotal    decimal.Decimal `json:"room_total"`
	ServiceTotal decimal.Decimal `json:"service_total"`
	TotalCharges decimal.Decimal `json:"total_charges"`
}

// ChargesForBooking reports the booking total plus accumulated service costs.
// Services added after booking creation show up here without changing the
// stored booking total.
func (s *GuestServiceService) ChargesForBooking(callerID uint, isAdmin bool, bookingID uint) (*BookingCharges, error) {
	if err := s.ownsBooking(callerID, isAdmin, bookingID); err != nil {
		return nil, err
	}

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}

	serviceTotal, err := s.TotalForBooking(bookingID)
	if err != nil {
		return nil, err
	}

	return &BookingCharges{
		BookingID:    booking.ID,
		UserID:       booking.UserID,
		RoomTotal:    booking.TotalPrice,
		ServiceTotal: serviceTotal,
		TotalCharges: booking.TotalPrice.Add(serviceTotal),
	}, nil
}

// UpdateStatus moves a service request between the allowed states.
func (s *GuestServiceService) UpdateStatus(serviceID uint, status string) error {
	if !models.ValidServiceStatus(status) {
		return ErrInvalidStatus
	}

	var row models.GuestService
	if err := s.DB.First(&row, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceNotFound
		}
		return fmt.Errorf("failed to look up service request: %w", err)
	}

	if err := s.DB.Model(&row).Update("status", status).Error; err != nil {
		return fmt.Errorf("failed to update service status: %w", err)
	}
	return nil
}
