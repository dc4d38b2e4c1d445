package services_test

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"hotel-reservation-backend/services"
)

func TestBookRoom_Success(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewBookingService(db)

	mock.ExpectQuery("SELECT \\* FROM `rooms`").
		WillReturnRows(sqlmock.NewRows(roomColumns).AddRow(3, "101", "Deluxe", "100.00", true))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `bookings`").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO `guest_services`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE `users` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := svc.BookRoom(42, services.BookRoomRequest{
		RoomID:   3,
		CheckIn:  "2025-07-01",
		CheckOut: "2025-07-04",
		GuestServices: []services.ServiceSelection{
			{ServiceName: "Spa", Cost: decimal.NewFromInt(60)},
		},
	})

	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.Equal(t, uint(7), result.BookingID)
		assert.True(t, decimal.NewFromInt(420).Equal(result.TotalPrice), "total %s", result.TotalPrice)
		assert.Equal(t, int64(200), result.PointsEarned)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRoom_NoPointsBelowThreshold(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewBookingService(db)

	// 49/night in regular season, one night, no services: total 49, no credit.
	mock.ExpectQuery("SELECT \\* FROM `rooms`").
		WillReturnRows(sqlmock.NewRows(roomColumns).AddRow(3, "101", "Standard", "49.00", true))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `bookings`").WillReturnResult(sqlmock.NewResult(8, 1))
	mock.ExpectCommit()

	result, err := svc.BookRoom(42, services.BookRoomRequest{
		RoomID:   3,
		CheckIn:  "2025-03-10",
		CheckOut: "2025-03-11",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.Equal(t, int64(0), result.PointsEarned)
		assert.True(t, decimal.NewFromInt(49).Equal(result.TotalPrice), "total %s", result.TotalPrice)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRoom_ServiceInsertFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewBookingService(db)

	mock.ExpectQuery("SELECT \\* FROM `rooms`").
		WillReturnRows(sqlmock.NewRows(roomColumns).AddRow(3, "101", "Deluxe", "100.00", true))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `bookings`").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO `guest_services`").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	result, err := svc.BookRoom(42, services.BookRoomRequest{
		RoomID:   3,
		CheckIn:  "2025-07-01",
		CheckOut: "2025-07-04",
		GuestServices: []services.ServiceSelection{
			{ServiceName: "Spa", Cost: decimal.NewFromInt(60)},
		},
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	// No loyalty update and no commit may follow the failed insert.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRoom_MissingFields(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewBookingService(db)

	_, err := svc.BookRoom(42, services.BookRoomRequest{CheckIn: "2025-07-01", CheckOut: "2025-07-04"})
	assert.ErrorIs(t, err, services.ErrMissingField)

	_, err = svc.BookRoom(42, services.BookRoomRequest{RoomID: 3, CheckOut: "2025-07-04"})
	assert.ErrorIs(t, err, services.ErrMissingField)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRoom_InvalidDateRange(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewBookingService(db)

	// Zero-night and negative stays fail after the room lookup, before any write.
	for _, checkOut := range []string{"2025-07-01", "2025-06-28"} {
		mock.ExpectQuery("SELECT \\* FROM `rooms`").
			WillReturnRows(sqlmock.NewRows(roomColumns).AddRow(3, "101", "Deluxe", "100.00", true))

		_, err := svc.BookRoom(42, services.BookRoomRequest{
			RoomID:   3,
			CheckIn:  "2025-07-01",
			CheckOut: checkOut,
		})
		assert.ErrorIs(t, err, services.ErrInvalidDateRange)
	}

	_, err := svc.BookRoom(42, services.BookRoomRequest{
		RoomID:   3,
		CheckIn:  "not-a-date",
		CheckOut: "2025-07-04",
	})
	assert.ErrorIs(t, err, services.ErrInvalidDateRange)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRoom_RoomNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewBookingService(db)

	mock.ExpectQuery("SELECT \\* FROM `rooms`").
		WillReturnRows(sqlmock.NewRows(roomColumns))

	_, err := svc.BookRoom(42, services.BookRoomRequest{
		RoomID:   99,
		CheckIn:  "2025-07-01",
		CheckOut: "2025-07-04",
	})
	assert.ErrorIs(t, err, services.ErrRoomNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel_DeletesAndReleasesRoom(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewBookingService(db)

	bookingColumns := []string{"id", "user_id", "room_id", "total_price", "status"}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `bookings`").
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(7, 42, 3, "420.00", "Active"))
	mock.ExpectExec("DELETE FROM `bookings`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `rooms` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, svc.Cancel(42, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel_SecondAttemptNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewBookingService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "room_id"}))
	mock.ExpectRollback()

	err := svc.Cancel(42, 7)
	assert.ErrorIs(t, err, services.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
