package services

import (
	"errors"
	"strings"

	mysqldrv "github.com/go-sql-driver/mysql"
)

// Sentinel errors shared across the service layer. Controllers map these to
// HTTP statuses; anything not listed here surfaces as a generic storage error.
var (
	ErrMissingField       = errors.New("missing_required_field")
	ErrInvalidDateRange   = errors.New("invalid_date_range")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrDuplicateAccount   = errors.New("account_already_exists")
	ErrDuplicateRoom      = errors.New("room_already_exists")
	ErrRoomNotFound       = errors.New("room_not_found")
	ErrBookingNotFound    = errors.New("booking_not_found")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrServiceNotFound    = errors.New("service_request_not_found")
	ErrInvalidStatus      = errors.New("invalid_status")
	ErrRoomBooked         = errors.New("room_currently_booked")
	ErrForbidden          = errors.New("access_denied")
)

func isDuplicateEntry(err error) bool {
	var myErr *mysqldrv.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique")
}
