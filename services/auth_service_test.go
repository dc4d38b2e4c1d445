package services_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/services"
)

var testSecret = []byte("test-signing-secret")

var userColumns = []string{"id", "username", "password", "is_admin"}

func TestLogin_UnknownUserAndWrongPasswordFailAlike(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewAuthService(db, testSecret, bcrypt.MinCost, time.Hour)

	// Unknown username.
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, _, err := svc.Login("ghost", "whatever")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Known username, wrong password.
	hash, hashErr := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	if hashErr != nil {
		t.Fatalf("failed to hash: %v", hashErr)
	}
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "guest", string(hash), false))

	_, _, err = svc.Login("guest", "wrong-password")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_Success(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewAuthService(db, testSecret, bcrypt.MinCost, time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(42, "guest", string(hash), true))

	token, user, loginErr := svc.Login("guest", "s3cret")
	assert.NoError(t, loginErr)
	assert.NotEmpty(t, token)
	if assert.NotNil(t, user) {
		assert.Equal(t, uint(42), user.ID)
	}

	claims := &services.AuthClaims{}
	parsed, parseErr := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	assert.NoError(t, parseErr)
	assert.True(t, parsed.Valid)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssueToken_OneHourValidity(t *testing.T) {
	svc := services.NewAuthService(nil, testSecret, bcrypt.MinCost, time.Hour)

	token, err := svc.IssueToken(&models.User{ID: 7})
	assert.NoError(t, err)

	claims := &services.AuthClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	assert.NoError(t, err)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 59*time.Minute)
	assert.LessOrEqual(t, remaining, time.Hour)
}

func TestRegister_MissingFields(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewAuthService(db, testSecret, bcrypt.MinCost, time.Hour)

	_, err := svc.Register(services.RegisterInput{Username: "guest", Email: "g@example.com"})
	assert.ErrorIs(t, err, services.ErrMissingField)

	_, err = svc.Register(services.RegisterInput{Username: "guest", Password: "pw"})
	assert.ErrorIs(t, err, services.ErrMissingField)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_DuplicateAccount(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewAuthService(db, testSecret, bcrypt.MinCost, time.Hour)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&mysqldrv.MySQLError{Number: 1062, Message: "Duplicate entry 'guest'"})
	mock.ExpectRollback()

	_, err := svc.Register(services.RegisterInput{
		Username: "guest",
		Email:    "guest@example.com",
		Password: "pw",
	})
	assert.ErrorIs(t, err, services.ErrDuplicateAccount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
