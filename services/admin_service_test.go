package services_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"hotel-reservation-backend/services"
)

func TestRevenue_SumsBookingsAndServicesSeparately(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewAdminService(db)

	mock.ExpectQuery("SELECT SUM\\(total_price\\)").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("500.00"))
	mock.ExpectQuery("SELECT SUM\\(cost\\)").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("75.50"))

	report, err := svc.Revenue()
	assert.NoError(t, err)
	if assert.NotNil(t, report) {
		assert.True(t, decimal.NewFromInt(500).Equal(report.Booking), "booking %s", report.Booking)
		assert.True(t, decimal.RequireFromString("75.50").Equal(report.Services), "services %s", report.Services)
		assert.True(t, decimal.RequireFromString("575.50").Equal(report.Total), "total %s", report.Total)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenue_EmptyTables(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewAdminService(db)

	mock.ExpectQuery("SELECT SUM\\(total_price\\)").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(nil))
	mock.ExpectQuery("SELECT SUM\\(cost\\)").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(nil))

	report, err := svc.Revenue()
	assert.NoError(t, err)
	if assert.NotNil(t, report) {
		assert.True(t, report.Booking.IsZero())
		assert.True(t, report.Services.IsZero())
		assert.True(t, report.Total.IsZero())
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompletedServiceRevenue_FiltersByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewAdminService(db)

	mock.ExpectQuery("SELECT SUM\\(cost\\)").
		WithArgs("Completed").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("120.00"))

	total, err := svc.CompletedServiceRevenue()
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(120).Equal(total), "got %s", total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckRoomAvailability_ReportsBothSignals(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewAdminService(db)

	// Flag says available while a live booking overlaps today: both surfaced.
	mock.ExpectQuery("SELECT \\* FROM `rooms`").
		WillReturnRows(sqlmock.NewRows(roomColumns).AddRow(3, "101", "Deluxe", "100.00", true))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	availability, err := svc.CheckRoomAvailability("101")
	assert.NoError(t, err)
	if assert.NotNil(t, availability) {
		assert.True(t, availability.IsAvailable)
		assert.True(t, availability.CurrentlyBooked)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckRoomAvailability_RoomMissing(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewAdminService(db)

	mock.ExpectQuery("SELECT \\* FROM `rooms`").
		WillReturnRows(sqlmock.NewRows(roomColumns))

	_, err := svc.CheckRoomAvailability("999")
	assert.ErrorIs(t, err, services.ErrRoomNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRoom_RefusedWhileBooked(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewAdminService(db)

	mock.ExpectQuery("SELECT \\* FROM `rooms`").
		WillReturnRows(sqlmock.NewRows(roomColumns).AddRow(3, "101", "Deluxe", "100.00", false))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))

	err := svc.DeleteRoom("101")
	assert.ErrorIs(t, err, services.ErrRoomBooked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRoom_OK(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewAdminService(db)

	mock.ExpectQuery("SELECT \\* FROM `rooms`").
		WillReturnRows(sqlmock.NewRows(roomColumns).AddRow(3, "101", "Deluxe", "100.00", true))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `rooms`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, svc.DeleteRoom("101"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
