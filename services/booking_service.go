// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-reservation-backend/models"
)

// BookingService owns the booking workflow: pricing a stay and persisting the
// booking, its service line items and the loyalty credit in one transaction.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// ServiceSelection is one requested add-on. The cost is taken as submitted and
// not checked against a canonical price list.
type ServiceSelection struct {
	ServiceName string          `json:"service_name"`
	Cost        decimal.Decimal `json:"cost"`
}

type BookRoomRequest struct {
	RoomID        uint               `json:"room_id"`
	CheckIn       string             `json:"check_in"`
	CheckOut      string             `json:"check_out"`
	GuestServices []ServiceSelection `json:"guest_services"`
}

type BookRoomResult struct {
	BookingID    uint            `json:"bookingId"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	PointsEarned int64           `json:"pointsEarned"`
}

func parseStayDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDateRange
}

// BookRoom prices the stay and runs the booking write as a single transaction:
// booking row, guest-service rows and the loyalty-point credit either all
// become visible together or none do.
//
// Two concurrent bookings for overlapping dates on the same room are not
// prevented here, and the room's availability flag is left untouched on
// creation; both are accepted limitations of the current data model.
func (s *BookingService) BookRoom(userID uint, req BookRoomRequest) (*BookRoomResult, error) {
	if req.RoomID == 0 || strings.TrimSpace(req.CheckIn) == "" || strings.TrimSpace(req.CheckOut) == "" {
		return nil, ErrMissingField
	}

	checkIn, err := parseStayDate(req.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseStayDate(req.CheckOut)
	if err != nil {
		return nil, err
	}

	var room models.Room
	if err := s.DB.First(&room, req.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("room price lookup failed: %w", err)
	}

	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return nil, ErrInvalidDateRange
	}

	costs := make([]decimal.Decimal, 0, len(req.GuestServices))
	for _, sel := range req.GuestServices {
		costs = append(costs, sel.Cost)
	}
	quote := QuoteStay(room.BasePrice, checkIn, nights, costs)
	points := LoyaltyPoints(quote.Total)

	var bookingID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		booking := models.Booking{
			UserID:     userID,
			RoomID:     room.ID,
			CheckIn:    datatypes.Date(checkIn),
			CheckOut:   datatypes.Date(checkOut),
			TotalPrice: quote.Total,
			Status:     "Active",
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("booking insert failed: %w", err)
		}
		bookingID = booking.ID

		if len(req.GuestServices) > 0 {
			rows := make([]models.GuestService, 0, len(req.GuestServices))
			for _, sel := range req.GuestServices {
				rows = append(rows, models.GuestService{
					BookingID:   booking.ID,
					ServiceName: strings.TrimSpace(sel.ServiceName),
					Cost:        sel.Cost,
					Status:      models.ServiceStatusPending,
				})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("guest services insert failed: %w", err)
			}
		}

		if points > 0 {
			if err := tx.Model(&models.User{}).
				Where("id = ?", userID).
				UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", points)).Error; err != nil {
				return fmt.Errorf("failed to update loyalty points: %w", err)
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &BookRoomResult{
		BookingID:    bookingID,
		TotalPrice:   quote.Total,
		PointsEarned: points,
	}, nil
}

// AvailableRooms lists rooms whose availability flag is set. The flag is manual
// bookkeeping and may disagree with the live booking table.
func (s *BookingService) AvailableRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("is_available = ?", true).Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	return rooms, nil
}

// UserBooking is the caller-facing view of one of their bookings.
type UserBooking struct {
	ID         uint            `json:"id"`
	RoomNumber string          `json:"room_number"`
	CheckIn    time.Time       `json:"check_in"`
	CheckOut   time.Time       `json:"check_out"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
}

func (s *BookingService) BookingsForUser(userID uint) ([]UserBooking, error) {
	var list []UserBooking
	err := s.DB.Table("bookings").
		Select("bookings.id, rooms.room_number, bookings.check_in, bookings.check_out, bookings.total_price, bookings.status").
		Joins("JOIN rooms ON bookings.room_id = rooms.id").
		Where("bookings.user_id = ?", userID).
		Order("bookings.check_in").
		Scan(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return list, nil
}

// Cancel hard-deletes the caller's booking and unconditionally marks the room
// available again. A second cancel of the same id reports booking_not_found.
func (s *BookingService) Cancel(userID, bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Where("id = ? AND user_id = ?", bookingID, userID).First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to look up booking: %w", err)
		}

		if err := tx.Delete(&models.Booking{}, booking.ID).Error; err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", booking.RoomID).
			Update("is_available", true).Error; err != nil {
			return fmt.Errorf("failed to release room: %w", err)
		}

		return nil
	})
}
