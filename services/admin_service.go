// services/admin_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-reservation-backend/models"
)

// AdminService holds the admin-facing reports and room management. The report
// queries are read-only aggregations; nothing here mutates bookings.
type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

func nullableSum(db *gorm.DB, model interface{}, column string, conds ...interface{}) (decimal.Decimal, error) {
	var row struct {
		Total decimal.NullDecimal
	}
	q := db.Model(model)
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	if err := q.Select("SUM(" + column + ") AS total").Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	if !row.Total.Valid {
		return decimal.Zero, nil
	}
	return row.Total.Decimal, nil
}

// RevenueReport sums bookings and guest services independently, then adds them.
type RevenueReport struct {
	Booking  decimal.Decimal `json:"booking"`
	Services decimal.Decimal `json:"services"`
	Total    decimal.Decimal `json:"total"`
}

func (s *AdminService) Revenue() (*RevenueReport, error) {
	bookingRevenue, err := nullableSum(s.DB, &models.Booking{}, "total_price")
	if err != nil {
		return nil, fmt.Errorf("failed to calculate booking revenue: %w", err)
	}
	serviceRevenue, err := nullableSum(s.DB, &models.GuestService{}, "cost")
	if err != nil {
		return nil, fmt.Errorf("failed to calculate service revenue: %w", err)
	}

	return &RevenueReport{
		Booking:  bookingRevenue,
		Services: serviceRevenue,
		Total:    bookingRevenue.Add(serviceRevenue),
	}, nil
}

// CompletedServiceRevenue sums only completed guest services. This is a
// separate report from Revenue, which counts every service regardless of state.
func (s *AdminService) CompletedServiceRevenue() (decimal.Decimal, error) {
	total, err := nullableSum(s.DB, &models.GuestService{}, "cost", "status = ?", models.ServiceStatusCompleted)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to calculate completed service revenue: %w", err)
	}
	return total, nil
}

func (s *AdminService) findUserByLogin(usernameOrEmail string) (*models.User, error) {
	usernameOrEmail = strings.TrimSpace(usernameOrEmail)
	if usernameOrEmail == "" {
		return nil, ErrMissingField
	}

	var user models.User
	err := s.DB.Where("username = ? OR email = ?", usernameOrEmail, usernameOrEmail).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}

// UserInfo returns a user's profile by username or email, hash excluded.
func (s *AdminService) UserInfo(usernameOrEmail string) (*models.User, error) {
	return s.findUserByLogin(usernameOrEmail)
}

// ListUsers returns every account, hashes excluded via the model's JSON tags.
func (s *AdminService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// ServiceLine is one guest-service entry nested under a booking in reports.
type ServiceLine struct {
	Name string          `json:"name"`
	Cost decimal.Decimal `json:"cost"`
}

// UserBookingReport is one booking with its nested service lines.
type UserBookingReport struct {
	BookingID  uint            `json:"booking_id"`
	RoomNumber string          `json:"room_number"`
	RoomType   string          `json:"type"`
	CheckIn    time.Time       `json:"check_in"`
	CheckOut   time.Time       `json:"check_out"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Services   []ServiceLine   `json:"services"`
}

// UserBookings resolves a user by username or email and returns their bookings
// with nested guest-service lines.
func (s *AdminService) UserBookings(usernameOrEmail string) ([]UserBookingReport, error) {
	user, err := s.findUserByLogin(usernameOrEmail)
	if err != nil {
		return nil, err
	}

	var bookings []UserBookingReport
	err = s.DB.Table("bookings").
		Select("bookings.id AS booking_id, rooms.room_number, rooms.type AS room_type, bookings.check_in, bookings.check_out, bookings.total_price").
		Joins("JOIN rooms ON bookings.room_id = rooms.id").
		Where("bookings.user_id = ?", user.ID).
		Scan(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	if len(bookings) == 0 {
		return []UserBookingReport{}, nil
	}

	ids := make([]uint, 0, len(bookings))
	index := make(map[uint]int, len(bookings))
	for i := range bookings {
		bookings[i].Services = []ServiceLine{}
		ids = append(ids, bookings[i].BookingID)
		index[bookings[i].BookingID] = i
	}

	var services []models.GuestService
	if err := s.DB.Where("booking_id IN ?", ids).Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch guest services: %w", err)
	}
	for _, svc := range services {
		if i, ok := index[svc.BookingID]; ok {
			bookings[i].Services = append(bookings[i].Services, ServiceLine{Name: svc.ServiceName, Cost: svc.Cost})
		}
	}

	return bookings, nil
}

// RoomAvailability reports the stored availability flag and the live overlap
// check side by side. The two can disagree, so they are never merged.
type RoomAvailability struct {
	RoomNumber      string `json:"room_number"`
	Type            string `json:"type"`
	IsAvailable     bool   `json:"is_available"`
	CurrentlyBooked bool   `json:"currently_booked"`
}

func (s *AdminService) CheckRoomAvailability(roomNumber string) (*RoomAvailability, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return nil, ErrMissingField
	}

	var room models.Room
	if err := s.DB.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to look up room: %w", err)
	}

	var overlapping int64
	err := s.DB.Model(&models.Booking{}).
		Where("room_id = ? AND CURDATE() BETWEEN check_in AND check_out", room.ID).
		Count(&overlapping).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check bookings: %w", err)
	}

	return &RoomAvailability{
		RoomNumber:      room.RoomNumber,
		Type:            room.Type,
		IsAvailable:     room.IsAvailable,
		CurrentlyBooked: overlapping > 0,
	}, nil
}

// BookingDetails is the joined booking + customer + room admin view.
type BookingDetails struct {
	BookingID     uint            `json:"booking_id"`
	CheckIn       time.Time       `json:"check_in"`
	CheckOut      time.Time       `json:"check_out"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	BookingStatus string          `json:"booking_status"`
	UserID        uint            `json:"user_id"`
	CustomerName  string          `json:"customer_name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	RoomNumber    string          `json:"room_number"`
	RoomType      string          `json:"room_type"`
	BasePrice     decimal.Decimal `json:"base_price"`
	IsAvailable   bool            `json:"is_available"`
}

func (s *AdminService) BookingDetails(bookingID uint) (*BookingDetails, error) {
	var details BookingDetails
	err := s.DB.Table("bookings").
		Select(`bookings.id AS booking_id, bookings.check_in, bookings.check_out,
			bookings.total_price, bookings.status AS booking_status,
			users.id AS user_id, users.name AS customer_name, users.email, users.phone,
			rooms.room_number, rooms.type AS room_type, rooms.base_price, rooms.is_available`).
		Joins("JOIN users ON bookings.user_id = users.id").
		Joins("JOIN rooms ON bookings.room_id = rooms.id").
		Where("bookings.id = ?", bookingID).
		Scan(&details).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking details: %w", err)
	}
	if details.BookingID == 0 {
		return nil, ErrBookingNotFound
	}
	return &details, nil
}

type AddRoomInput struct {
	RoomNumber  string          `json:"room_number"`
	Type        string          `json:"type"`
	BasePrice   decimal.Decimal `json:"base_price"`
	IsAvailable *bool           `json:"is_available"`
}

func (s *AdminService) AddRoom(in AddRoomInput) (*models.Room, error) {
	in.RoomNumber = strings.TrimSpace(in.RoomNumber)
	if in.RoomNumber == "" || in.BasePrice.Sign() <= 0 {
		return nil, ErrMissingField
	}

	room := models.Room{
		RoomNumber:  in.RoomNumber,
		Type:        strings.TrimSpace(in.Type),
		BasePrice:   in.BasePrice,
		IsAvailable: true,
	}
	if in.IsAvailable != nil {
		room.IsAvailable = *in.IsAvailable
	}

	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrDuplicateRoom
		}
		return nil, fmt.Errorf("failed to add room: %w", err)
	}
	return &room, nil
}

// DeleteRoom removes a room by its human-facing number, refusing while any
// booking still references it.
func (s *AdminService) DeleteRoom(roomNumber string) error {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return ErrMissingField
	}

	var room models.Room
	if err := s.DB.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("failed to look up room: %w", err)
	}

	var referencing int64
	if err := s.DB.Model(&models.Booking{}).Where("room_id = ?", room.ID).Count(&referencing).Error; err != nil {
		return fmt.Errorf("failed to check room bookings: %w", err)
	}
	if referencing > 0 {
		return ErrRoomBooked
	}

	if err := s.DB.Delete(&models.Room{}, room.ID).Error; err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}
