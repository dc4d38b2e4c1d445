package config

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-reservation-backend/models"
)

// ConnectDatabase opens the MySQL connection and migrates the schema. The
// handle is returned, not stored globally, so components receive it explicitly.
//
// Foreign key constraint creation is disabled: bookings are hard-deleted on
// cancellation while their guest_services rows stay behind, matching the
// existing schema's behavior.
func ConnectDatabase(dsn string) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:                                   gormLogger,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
		&models.GuestService{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// SeedAdmin ensures a bootstrap admin account exists. Credentials come from
// ADMIN_USERNAME/ADMIN_PASSWORD; skipped entirely when they are unset.
func SeedAdmin(db *gorm.DB, bcryptCost int) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}

	var count int64
	db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		log.Printf("warning: failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Username: username,
		Email:    username,
		Password: string(hash),
		Name:     "Administrator",
		IsAdmin:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("warning: failed to seed admin account: %v", err)
		return
	}
	log.Println("Default admin account seeded")
}
